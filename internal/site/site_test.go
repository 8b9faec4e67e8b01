package site

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kuberbiotech/kuber-web/internal/brochure"
	"github.com/kuberbiotech/kuber-web/internal/content"
	"github.com/kuberbiotech/kuber-web/internal/flash"
	"github.com/kuberbiotech/kuber-web/internal/language"
	"github.com/kuberbiotech/kuber-web/internal/web/viewtest"
)

type staticBrochures []brochure.Brochure

func (s staticBrochures) List(context.Context) []brochure.Brochure { return s }

func newApp() (*fiber.App, *viewtest.Recorder) {
	rec := &viewtest.Recorder{}
	app := fiber.New(fiber.Config{Views: rec})
	app.Use(language.Middleware(false))

	s := New(staticBrochures{{ID: "b1", Title: "Product Catalogue"}}, false)
	s.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	NewHandler(s).RegisterPublicRoutes(app)
	app.Get("/notify", func(c *fiber.Ctx) error {
		return flash.RedirectBack(c, false, flash.Success(content.MsgContactSent))
	})
	return app, rec
}

func do(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return res
}

func TestPages(t *testing.T) {
	app, rec := newApp()
	tree := content.Resolve(language.English)

	for path, want := range map[string]string{"/": "home", "/about": "about", "/gallery": "gallery"} {
		res := do(t, app, httptest.NewRequest("GET", path, nil))
		if res.StatusCode != fiber.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, res.StatusCode)
		}
		r := rec.Last(t)
		if r.Name != want {
			t.Fatalf("%s rendered %q", path, r.Name)
		}
		if r.Data["Year"] != 2025 {
			t.Fatalf("unexpected year %v", r.Data["Year"])
		}
		links := r.Data["Brochures"].([]BrochureLink)
		if len(links) != 1 || links[0].Href != "/brochures/b1/download" {
			t.Fatalf("unexpected brochure links %+v", links)
		}
	}

	do(t, app, httptest.NewRequest("GET", "/about", nil))
	r := rec.Last(t)
	if r.Data["Title"] != tree.About.Title {
		t.Fatalf("unexpected title %v", r.Data["Title"])
	}
	for _, n := range r.Data["Nav"].([]NavLink) {
		if n.Active != (n.Path == "/about") {
			t.Fatalf("unexpected active state for %s", n.Path)
		}
	}
}

func TestLanguageSwitchPersistsAcrossRequests(t *testing.T) {
	app, rec := newApp()

	req := httptest.NewRequest("POST", "/language", strings.NewReader("lang=mr"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	req.Header.Set(fiber.HeaderReferer, "http://example.com/about")
	req.Host = "example.com"
	res := do(t, app, req)
	if res.StatusCode != fiber.StatusSeeOther || res.Header.Get(fiber.HeaderLocation) != "/about" {
		t.Fatalf("expected redirect back to /about, got %d %q", res.StatusCode, res.Header.Get(fiber.HeaderLocation))
	}

	var langCookie *http.Cookie
	for _, ck := range res.Cookies() {
		if ck.Name == language.CookiePrefix+language.StorageKey {
			langCookie = ck
		}
	}
	if langCookie == nil || langCookie.Value != "mr" {
		t.Fatalf("language cookie not set: %+v", res.Cookies())
	}

	req = httptest.NewRequest("GET", "/about", nil)
	req.AddCookie(&http.Cookie{Name: langCookie.Name, Value: langCookie.Value})
	do(t, app, req)

	r := rec.Last(t)
	if r.Data["Lang"] != language.Marathi {
		t.Fatalf("expected marathi, got %v", r.Data["Lang"])
	}
	want := []string{"मुख्यपृष्ठ", "आमच्याबद्दल", "उत्पादने", "गॅलरी", "संपर्क"}
	nav := r.Data["Nav"].([]NavLink)
	if len(nav) != len(want) {
		t.Fatalf("expected %d nav links, got %d", len(want), len(nav))
	}
	for i, n := range nav {
		if n.Name != want[i] {
			t.Fatalf("nav[%d] = %q, want %q", i, n.Name, want[i])
		}
	}
	for _, o := range r.Data["Languages"].([]LanguageOption) {
		if o.Active != (o.Code == "mr") {
			t.Fatalf("unexpected switcher state %+v", o)
		}
	}
}

func TestLanguageSwitchRejectsUnknownAndForeignReferer(t *testing.T) {
	app, _ := newApp()

	req := httptest.NewRequest("POST", "/language", strings.NewReader("lang=fr"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	req.Header.Set(fiber.HeaderReferer, "https://evil.example/phish")
	res := do(t, app, req)
	if res.Header.Get(fiber.HeaderLocation) != "/" {
		t.Fatalf("foreign referer must fall back to /, got %q", res.Header.Get(fiber.HeaderLocation))
	}
	for _, ck := range res.Cookies() {
		if ck.Name == language.CookiePrefix+language.StorageKey {
			t.Fatalf("unknown language must not be stored")
		}
	}
}

func TestFlashIsLocalizedOnce(t *testing.T) {
	app, rec := newApp()

	res := do(t, app, httptest.NewRequest("GET", "/notify", nil))

	req := httptest.NewRequest("GET", "/?lang=mr", nil)
	for _, ck := range res.Cookies() {
		req.AddCookie(ck)
	}
	do(t, app, req)
	banner, ok := rec.Last(t).Data["Flash"].(flash.Banner)
	want := content.Resolve(language.Marathi).Message(content.MsgContactSent)
	if !ok || banner.Kind != flash.KindSuccess || banner.Text != want {
		t.Fatalf("unexpected banner %+v", banner)
	}
}

func TestGalleryTilesCycle(t *testing.T) {
	tiles := GalleryTiles(content.Gallery{Categories: []string{"a", "b", "c", "d", "e", "f"}})
	if len(tiles) != 6 {
		t.Fatalf("expected 6 tiles, got %d", len(tiles))
	}
	if tiles[5].Image != tiles[0].Image || tiles[4].Icon != tiles[0].Icon {
		t.Fatalf("images and icons should cycle: %+v", tiles)
	}
}
