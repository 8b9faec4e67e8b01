// Package flash provides one-time notices persisted across redirects.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kuberbiotech/kuber-web/internal/kv"
)

// Key is the storage key of the notice; with the site cookie prefix the
// cookie is "site_flash".
const Key = "flash"

// CookiePrefix matches the other site cookies.
const CookiePrefix = "site_"

// Kind classifies notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notice references a content message key; it is localized when rendered.
type Notice struct {
	Kind Kind   `json:"kind"`
	Key  string `json:"key"`
}

// Banner is a notice localized for display.
type Banner struct {
	Kind Kind
	Text string
}

// Localize resolves the notice text with message.
func (n Notice) Localize(message func(key string) string) Banner {
	return Banner{Kind: n.Kind, Text: message(n.Key)}
}

func Success(key string) Notice { return Notice{Kind: KindSuccess, Key: key} }

func Error(key string) Notice { return Notice{Kind: KindError, Key: key} }

// Store returns the cookie-backed store flash notices live in.
func Store(c *fiber.Ctx, secure bool) kv.Store {
	return kv.NewCookieStore(c, kv.CookieOptions{Prefix: CookiePrefix, Secure: secure, HTTPOnly: true})
}

// Write stores a notice for the next page render.
func Write(store kv.Store, notice Notice) {
	normalized, ok := normalizeNotice(notice)
	if !ok {
		return
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return
	}
	_ = store.Set(Key, base64.RawURLEncoding.EncodeToString(payload))
}

// ReadAndClear returns the pending notice, if any, and removes it.
func ReadAndClear(store kv.Store) (Notice, bool) {
	raw, err := store.Get(Key)
	if err != nil {
		return Notice{}, false
	}
	_ = store.Delete(Key)
	return decodeNotice(raw)
}

func decodeNotice(raw string) (Notice, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Notice{}, false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(decoded, &notice); err != nil {
		return Notice{}, false
	}
	return normalizeNotice(notice)
}

func normalizeNotice(notice Notice) (Notice, bool) {
	notice.Key = strings.TrimSpace(notice.Key)
	if notice.Key == "" {
		return Notice{}, false
	}
	notice.Kind = Kind(strings.ToLower(strings.TrimSpace(string(notice.Kind))))
	switch notice.Kind {
	case KindSuccess, KindInfo, KindWarning, KindError:
		return notice, true
	default:
		return Notice{}, false
	}
}

// RedirectBack stores notice and redirects to the Referer when it points into
// this site, else to "/".
func RedirectBack(c *fiber.Ctx, secure bool, notice Notice) error {
	Write(Store(c, secure), notice)
	return c.Redirect(LocalReferer(c, "/"), fiber.StatusSeeOther)
}

// LocalReferer returns the path of the Referer header when it is on this
// host, else fallback.
func LocalReferer(c *fiber.Ctx, fallback string) string {
	ref := c.Get(fiber.HeaderReferer)
	if ref == "" {
		return fallback
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Host != "" && u.Host != c.Hostname()) {
		return fallback
	}
	p := u.RequestURI()
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return fallback
	}
	return p
}
