// Package viewtest provides a fiber.Views implementation that records what
// handlers render, for handler tests.
package viewtest

import (
	"io"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// Render is one recorded c.Render call.
type Render struct {
	Name string
	Data fiber.Map
}

// Recorder writes the template name as the body and keeps the bound data.
type Recorder struct {
	mu      sync.Mutex
	renders []Render
}

func (r *Recorder) Load() error { return nil }

func (r *Recorder) Render(w io.Writer, name string, binding interface{}, _ ...string) error {
	data, _ := binding.(fiber.Map)
	r.mu.Lock()
	r.renders = append(r.renders, Render{Name: name, Data: data})
	r.mu.Unlock()
	_, err := io.WriteString(w, name)
	return err
}

// Last returns the most recent render or fails the test.
func (r *Recorder) Last(t testing.TB) Render {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.renders) == 0 {
		t.Fatalf("nothing was rendered")
	}
	return r.renders[len(r.renders)-1]
}

// Count returns how many renders were recorded.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.renders)
}

// Layout is a page layout stub returning an empty base map.
type Layout struct{}

func (Layout) Base(*fiber.Ctx) fiber.Map { return fiber.Map{} }

func (Layout) Bare(*fiber.Ctx) fiber.Map { return fiber.Map{} }
