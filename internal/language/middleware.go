package language

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kuberbiotech/kuber-web/internal/kv"
)

const (
	// QueryParam selects a language on any page.
	QueryParam = "lang"
	// CookiePrefix namespaces the preference cookie ("site_lang").
	CookiePrefix = "site_"

	localsKey = "language.store"
)

// Middleware installs a per-request Store backed by the preference cookie and
// applies a ?lang= selection when present. The Content-Language header follows
// every change made while the request is handled.
func Middleware(secure bool) fiber.Handler {
	opts := kv.CookieOptions{Prefix: CookiePrefix, MaxAge: 365 * 24 * time.Hour, Secure: secure}
	return func(c *fiber.Ctx) error {
		store := NewStore(kv.NewCookieStore(c, opts))
		c.Set(fiber.HeaderContentLanguage, store.Get().String())
		unsubscribe := store.Subscribe(func(l Lang) {
			c.Set(fiber.HeaderContentLanguage, l.String())
		})
		defer unsubscribe()

		if l, ok := Parse(c.Query(QueryParam)); ok && l != store.Get() {
			store.Set(l)
		}
		c.Locals(localsKey, store)
		return c.Next()
	}
}

// FromCtx returns the request's Store, or a default-language store when the
// middleware is not installed.
func FromCtx(c *fiber.Ctx) *Store {
	if s, ok := c.Locals(localsKey).(*Store); ok && s != nil {
		return s
	}
	return NewStore(nil)
}
