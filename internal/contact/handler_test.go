package contact

import (
	"context"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-faster/errors"
	"github.com/gofiber/fiber/v2"

	"github.com/kuberbiotech/kuber-web/internal/gateway"
	"github.com/kuberbiotech/kuber-web/internal/language"
	"github.com/kuberbiotech/kuber-web/internal/web/viewtest"
)

type fakeSender struct {
	calls []gateway.ContactRequest
	err   error
}

func (f *fakeSender) CreateContact(_ context.Context, req gateway.ContactRequest) error {
	f.calls = append(f.calls, req)
	return f.err
}

func newApp(s Sender) (*fiber.App, *viewtest.Recorder) {
	rec := &viewtest.Recorder{}
	app := fiber.New(fiber.Config{Views: rec})
	app.Use(language.Middleware(false))
	NewHandler(s, viewtest.Layout{}, false).RegisterPublicRoutes(app)
	return app, rec
}

func post(t *testing.T, app *fiber.App, target string, form url.Values) int {
	t.Helper()
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return res.StatusCode
}

func TestPostContact_Success(t *testing.T) {
	s := &fakeSender{}
	app, _ := newApp(s)

	status := post(t, app, "/contact", url.Values{"name": {" Asha "}, "email": {"asha@example.com"}, "message": {"Need a dealer"}})
	if status != fiber.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", status)
	}
	if len(s.calls) != 1 {
		t.Fatalf("expected one backend call, got %d", len(s.calls))
	}
	if got := s.calls[0]; got.Name != "Asha" || got.Email != "asha@example.com" || got.Message != "Need a dealer" {
		t.Fatalf("unexpected payload %+v", got)
	}
}

func TestPostContact_ValidationHappensBeforeAnyCall(t *testing.T) {
	s := &fakeSender{}
	app, rec := newApp(s)

	status := post(t, app, "/contact?lang=mr", url.Values{"name": {"Asha"}, "email": {""}, "message": {"x"}})
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if got := rec.Last(t).Data["Error"]; got != "कृपया तुमचे नाव, ईमेल आणि संदेश भरा." {
		t.Fatalf("unexpected error %v", got)
	}

	post(t, app, "/contact", url.Values{"name": {"Asha"}, "email": {"not-an-email"}, "message": {"x"}})
	if got := rec.Last(t).Data["Error"]; got != "Please enter a valid email address." {
		t.Fatalf("unexpected error %v", got)
	}
	if len(s.calls) != 0 {
		t.Fatalf("invalid forms must not reach the backend")
	}
}

func TestPostContact_BackendFailureKeepsForm(t *testing.T) {
	s := &fakeSender{err: errors.New("down")}
	app, rec := newApp(s)

	status := post(t, app, "/contact", url.Values{"name": {"Asha"}, "email": {"asha@example.com"}, "message": {"hello"}})
	if status != fiber.StatusBadGateway {
		t.Fatalf("expected 502, got %d", status)
	}
	r := rec.Last(t)
	if r.Data["Error"] != "Failed to send message. Please try again." {
		t.Fatalf("unexpected error %v", r.Data["Error"])
	}
	if r.Data["Form"].(Form).Message != "hello" {
		t.Fatalf("form values must be kept on failure")
	}
}

func TestGetContact(t *testing.T) {
	app, rec := newApp(&fakeSender{})
	res, err := app.Test(httptest.NewRequest("GET", "/contact", nil))
	if err != nil || res.StatusCode != fiber.StatusOK {
		t.Fatalf("unexpected response %v %v", res, err)
	}
	if r := rec.Last(t); r.Name != "contact" || r.Data["Title"] != "Contact Us" {
		t.Fatalf("unexpected render %+v", r)
	}
}

func TestDecode(t *testing.T) {
	subs := Decode([]byte(`{"data":[{"_id":"c1","name":"Asha","email":"a@b.c","message":"hi","createdAt":"2025-01-02T03:04:05Z"},{"_id":"c2","name":"Ravi","phone":9850244123,"message":"call me"}]}`))
	if len(subs) != 2 {
		t.Fatalf("expected two submissions, got %d", len(subs))
	}
	if subs[0].Created().Year() != 2025 || subs[1].Email != "" || subs[1].Phone != "9850244123" {
		t.Fatalf("unexpected submissions %+v", subs)
	}
}
