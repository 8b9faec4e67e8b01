// Package language holds the UI language preference shared by every page.
package language

import (
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/text/language"

	"github.com/kuberbiotech/kuber-web/internal/kv"
)

// Lang is a supported UI language code.
type Lang string

const (
	English Lang = "en"
	Marathi Lang = "mr"

	// Default is used whenever no valid preference is stored.
	Default = English

	// StorageKey is the key the preference is persisted under.
	StorageKey = "lang"
)

// All lists the supported languages in selector order.
var All = []Lang{English, Marathi}

// Parse canonicalizes a BCP 47 tag ("mr-IN", "EN") to a supported Lang.
func Parse(value string) (Lang, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch Lang(base.String()) {
	case English:
		return English, true
	case Marathi:
		return Marathi, true
	}
	return "", false
}

// Tag returns the x/text language tag for l.
func (l Lang) Tag() language.Tag {
	if l == Marathi {
		return language.Marathi
	}
	return language.English
}

func (l Lang) String() string { return string(l) }

// Store is the language preference for one browser. Set is the single writer;
// subscribers are notified after every change.
type Store struct {
	mu      sync.RWMutex
	lang    Lang
	persist kv.Store
	subs    map[int]func(Lang)
	nextSub int
}

// NewStore loads the preference from persist. Missing, unreadable or unknown
// values fall back to Default.
func NewStore(persist kv.Store) *Store {
	s := &Store{lang: Default, persist: persist, subs: map[int]func(Lang){}}
	if persist == nil {
		return s
	}
	raw, err := persist.Get(StorageKey)
	if err != nil {
		return s
	}
	if l, ok := Parse(raw); ok {
		s.lang = l
	}
	return s
}

// Get returns the current preference.
func (s *Store) Get() Lang {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// Set replaces the preference, persists it and notifies subscribers.
// Values other than the supported codes are ignored.
func (s *Store) Set(l Lang) {
	if l != English && l != Marathi {
		return
	}
	s.mu.Lock()
	s.lang = l
	subs := make([]func(Lang), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	if s.persist != nil {
		if err := s.persist.Set(StorageKey, string(l)); err != nil {
			log.Warnw("persist language preference", "lang", l, "error", err)
		}
	}
	for _, fn := range subs {
		fn(l)
	}
}

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (s *Store) Subscribe(fn func(Lang)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
