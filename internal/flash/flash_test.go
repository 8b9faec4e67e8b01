package flash

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/kuberbiotech/kuber-web/internal/kv"
)

func TestWriteThenReadAndClear(t *testing.T) {
	store := kv.NewMemoryStore(nil)
	Write(store, Success(" product_added "))

	n, ok := ReadAndClear(store)
	if !ok || n.Kind != KindSuccess || n.Key != "product_added" {
		t.Fatalf("unexpected notice %+v ok=%v", n, ok)
	}
	if _, ok := ReadAndClear(store); ok {
		t.Fatalf("notice must be one-shot")
	}
}

func TestInvalidNoticesAreDropped(t *testing.T) {
	store := kv.NewMemoryStore(nil)
	Write(store, Notice{Kind: "loud", Key: "x"})
	Write(store, Notice{Kind: KindError, Key: "  "})
	if _, err := store.Get(Key); err == nil {
		t.Fatalf("invalid notices must not be stored")
	}

	_ = store.Set(Key, "%%%not-base64")
	if _, ok := ReadAndClear(store); ok {
		t.Fatalf("corrupt payload must be ignored")
	}
	if _, err := store.Get(Key); err == nil {
		t.Fatalf("corrupt payload must still be cleared")
	}
}

func TestCookieRoundTrip(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		Write(Store(c, false), Error("contact_failed"))
		return c.Redirect("/next", fiber.StatusSeeOther)
	})
	app.Get("/next", func(c *fiber.Ctx) error {
		n, ok := ReadAndClear(Store(c, false))
		if !ok {
			return c.SendString("none")
		}
		return c.SendString(string(n.Kind) + ":" + n.Key)
	})

	res, err := app.Test(httptest.NewRequest("POST", "/", nil))
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	var cookie string
	for _, v := range res.Header.Values("Set-Cookie") {
		if strings.HasPrefix(v, "site_flash=") {
			cookie = strings.SplitN(v, ";", 2)[0]
		}
	}
	if cookie == "" {
		t.Fatalf("expected site_flash cookie, got %v", res.Header.Values("Set-Cookie"))
	}

	req := httptest.NewRequest("GET", "/next", nil)
	req.Header.Set("Cookie", cookie)
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	buf := make([]byte, 64)
	n, _ := res.Body.Read(buf)
	if got := string(buf[:n]); got != "error:contact_failed" {
		t.Fatalf("unexpected notice %q", got)
	}
	cleared := false
	for _, v := range res.Header.Values("Set-Cookie") {
		if strings.HasPrefix(v, "site_flash=;") || strings.Contains(v, "site_flash=; ") {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected flash cookie to be cleared, got %v", res.Header.Values("Set-Cookie"))
	}
}

func TestLocalReferer(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(LocalReferer(c, "/home")) })

	cases := map[string]string{
		"":                            "/home",
		"/about?lang=mr":              "/about?lang=mr",
		"http://example.com/products": "/products",
		"https://evil.test/phish":     "/home",
		"//evil.test/x":               "/home",
	}
	for ref, want := range cases {
		req := httptest.NewRequest("GET", "http://example.com/", nil)
		if ref != "" {
			req.Header.Set("Referer", ref)
		}
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		buf := make([]byte, 64)
		n, _ := res.Body.Read(buf)
		if got := string(buf[:n]); got != want {
			t.Errorf("referer %q: got %q, want %q", ref, got, want)
		}
	}
}
