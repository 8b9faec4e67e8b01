// Package site builds the page chrome shared by every public page and serves
// the static content pages.
package site

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kuberbiotech/kuber-web/internal/brochure"
	"github.com/kuberbiotech/kuber-web/internal/content"
	"github.com/kuberbiotech/kuber-web/internal/flash"
	"github.com/kuberbiotech/kuber-web/internal/icon"
	"github.com/kuberbiotech/kuber-web/internal/language"
)

// BrochureSource lists the brochures shown in the header.
type BrochureSource interface {
	List(ctx context.Context) []brochure.Brochure
}

type Site struct {
	brochures BrochureSource
	secure    bool
	now       func() time.Time
}

func New(brochures BrochureSource, secureCookies bool) *Site {
	return &Site{brochures: brochures, secure: secureCookies, now: time.Now}
}

// NavLink is one header navigation entry.
type NavLink struct {
	Name   string
	Path   string
	Icon   icon.Key
	Active bool
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Code   string
	Name   string
	Active bool
}

// BrochureLink is one header download entry.
type BrochureLink struct {
	Title string
	Href  string
}

// Bare returns the page data every page needs: the content tree, the
// language switcher and the pending flash banner. It makes no backend call.
func (s *Site) Bare(c *fiber.Ctx) fiber.Map {
	lang := language.FromCtx(c).Get()
	tree := content.Resolve(lang)

	data := fiber.Map{
		"T":         tree,
		"Lang":      lang,
		"Languages": languageOptions(tree, lang),
		"Path":      c.Path(),
		"Year":      s.now().Year(),
	}
	if n, ok := flash.ReadAndClear(flash.Store(c, s.secure)); ok {
		data["Flash"] = n.Localize(tree.Message)
	}
	return data
}

// Chrome is Bare plus the navigation. Error pages use it.
func (s *Site) Chrome(c *fiber.Ctx) fiber.Map {
	data := s.Bare(c)
	data["Nav"] = navLinks(data["T"].(content.Tree), c.Path())
	return data
}

// Base is Chrome plus the header brochures.
func (s *Site) Base(c *fiber.Ctx) fiber.Map {
	data := s.Chrome(c)

	var links []BrochureLink
	if s.brochures != nil {
		for _, b := range s.brochures.List(c.UserContext()) {
			links = append(links, BrochureLink{Title: b.Label(), Href: "/brochures/" + b.ID + "/download"})
		}
	}
	data["Brochures"] = links
	return data
}

func navLinks(tree content.Tree, path string) []NavLink {
	out := make([]NavLink, 0, len(tree.Nav))
	for _, n := range tree.Nav {
		out = append(out, NavLink{Name: n.Name, Path: n.Path, Icon: n.Icon, Active: isActive(n.Path, path)})
	}
	return out
}

func isActive(navPath, path string) bool {
	if navPath == "/" {
		return path == "/"
	}
	return path == navPath || strings.HasPrefix(path, navPath+"/")
}

func languageOptions(tree content.Tree, current language.Lang) []LanguageOption {
	out := make([]LanguageOption, 0, len(language.All))
	for _, l := range language.All {
		name := tree.LanguageNames[string(l)]
		if name == "" {
			name = string(l)
		}
		out = append(out, LanguageOption{Code: string(l), Name: name, Active: l == current})
	}
	return out
}
