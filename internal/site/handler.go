package site

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/kuberbiotech/kuber-web/internal/content"
	"github.com/kuberbiotech/kuber-web/internal/flash"
	"github.com/kuberbiotech/kuber-web/internal/language"
)

type Handler struct {
	site *Site
}

func NewHandler(site *Site) *Handler {
	return &Handler{site: site}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/", h.page("home", func(t content.Tree, _ fiber.Map) string { return t.Company }))
	app.Get("/about", h.page("about", func(t content.Tree, _ fiber.Map) string { return t.About.Title }))
	app.Get("/gallery", h.page("gallery", func(t content.Tree, data fiber.Map) string {
		data["Tiles"] = GalleryTiles(t.Gallery)
		return t.Gallery.Title
	}))
	app.Post("/language", h.setLanguage)
}

// page renders a static content page; fill adds page data and returns the title.
func (h *Handler) page(name string, fill func(content.Tree, fiber.Map) string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data := h.site.Base(c)
		data["Title"] = fill(data["T"].(content.Tree), data)
		return c.Render(name, data)
	}
}

// setLanguage stores the chosen language and returns to the page the switch
// was used on. Unknown values leave the preference unchanged.
func (h *Handler) setLanguage(c *fiber.Ctx) error {
	store := language.FromCtx(c)
	if l, ok := language.Parse(c.FormValue("lang")); ok {
		store.Set(l)
	} else {
		log.Warnw("unsupported language", "value", c.FormValue("lang"))
	}
	return c.Redirect(flash.LocalReferer(c, "/"), fiber.StatusSeeOther)
}
