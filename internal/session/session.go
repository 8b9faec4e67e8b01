// Package session keeps per-browser server-side values keyed by an opaque
// session cookie. The admin bearer credential lives here.
package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/kuberbiotech/kuber-web/internal/kv"
)

const (
	// CookieName carries the opaque session identifier.
	CookieName = "site_sid"

	localsKey = "session.store"
)

// Store exposes one session's values through the kv.Store interface.
type Store struct {
	repo Repository
	sid  string
}

func NewStore(repo Repository, sid string) *Store {
	return &Store{repo: repo, sid: sid}
}

// ID returns the session identifier.
func (s *Store) ID() string { return s.sid }

func (s *Store) Get(key string) (string, error) {
	return s.repo.Get(s.sid, key)
}

func (s *Store) Set(key, value string) error {
	return s.repo.Set(s.sid, key, value)
}

func (s *Store) Delete(key string) error {
	return s.repo.Delete(s.sid, key)
}

// Options configures the session cookie.
type Options struct {
	Secure bool
	MaxAge time.Duration
}

// Middleware ensures every request carries a session id and exposes its store
// through FromCtx.
func Middleware(repo Repository, opts Options) fiber.Handler {
	if opts.MaxAge == 0 {
		opts.MaxAge = 30 * 24 * time.Hour
	}
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(CookieName)
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     CookieName,
				Value:    sid,
				Path:     "/",
				MaxAge:   int(opts.MaxAge.Seconds()),
				Secure:   opts.Secure,
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(localsKey, NewStore(repo, sid))
		return c.Next()
	}
}

// FromCtx returns the session store installed by Middleware. Without the
// middleware it returns an empty, request-scoped memory store.
func FromCtx(c *fiber.Ctx) kv.Store {
	if s, ok := c.Locals(localsKey).(*Store); ok && s != nil {
		return s
	}
	return kv.NewMemoryStore(nil)
}
