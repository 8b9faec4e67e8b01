package kv

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieOptions controls the attributes of cookies written by a CookieStore.
type CookieOptions struct {
	Prefix   string
	MaxAge   time.Duration
	Secure   bool
	HTTPOnly bool
}

// CookieStore persists values as cookies on the current request/response pair.
// Values written during the request are visible to later reads on the same store.
type CookieStore struct {
	c       *fiber.Ctx
	opts    CookieOptions
	pending map[string]*string
}

func NewCookieStore(c *fiber.Ctx, opts CookieOptions) *CookieStore {
	return &CookieStore{c: c, opts: opts, pending: map[string]*string{}}
}

func (s *CookieStore) name(key string) string {
	return s.opts.Prefix + key
}

func (s *CookieStore) Get(key string) (string, error) {
	if v, ok := s.pending[key]; ok {
		if v == nil {
			return "", ErrNotFound
		}
		return *v, nil
	}
	v := s.c.Cookies(s.name(key))
	if v == "" {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *CookieStore) Set(key, value string) error {
	s.c.Cookie(&fiber.Cookie{
		Name:     s.name(key),
		Value:    value,
		Path:     "/",
		MaxAge:   int(s.opts.MaxAge.Seconds()),
		Secure:   s.opts.Secure,
		HTTPOnly: s.opts.HTTPOnly,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	s.pending[key] = &value
	return nil
}

func (s *CookieStore) Delete(key string) error {
	s.c.Cookie(&fiber.Cookie{
		Name:     s.name(key),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   s.opts.Secure,
		HTTPOnly: s.opts.HTTPOnly,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	s.pending[key] = nil
	return nil
}
