package product

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kuberbiotech/kuber-web/internal/content"
	"github.com/kuberbiotech/kuber-web/internal/language"
)

// Layout supplies the data shared by every public page.
type Layout interface {
	Base(c *fiber.Ctx) fiber.Map
}

type Handler struct {
	service *Service
	layout  Layout
}

func NewHandler(service *Service, layout Layout) *Handler {
	return &Handler{service: service, layout: layout}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/products", h.getProducts)
}

// Tab is one category switch on the catalog page. Switching is done by the
// page itself; Active only picks the tab shown first.
type Tab struct {
	Category Category
	Slug     string
	Label    string
	Active   bool
}

// Bucket is the card list behind one tab.
type Bucket struct {
	Slug  string
	Cards []Card
	Empty string
}

// getProducts lists the catalog once and renders every bucket, so tab
// switches and carousel steps never reach the backend.
func (h *Handler) getProducts(c *fiber.Ctx) error {
	lang := language.FromCtx(c).Get()
	tree := content.Resolve(lang)

	active, ok := ParseCategory(c.Query("tab"))
	if !ok {
		active = Granule
	}

	data := h.layout.Base(c)
	data["Title"] = tree.Products.Title
	data["Tabs"] = tabs(tree, active)

	catalog := h.service.Load(c.UserContext())
	switch {
	case catalog.State == StateFailed:
		data["Error"] = tree.Message(catalog.ErrorKey)
	case len(catalog.Products) == 0:
		data["Empty"] = tree.Products.NoProducts
	default:
		buckets := make([]Bucket, 0, len(AllowedCategories))
		for _, cat := range AllowedCategories {
			b := Bucket{
				Slug:  cat.Slug(),
				Cards: BuildCards(catalog.Bucket(cat), lang, cat, tree.Products.DefaultName),
			}
			if len(b.Cards) == 0 {
				b.Empty = tree.Products.NoCategory
			}
			buckets = append(buckets, b)
		}
		data["Buckets"] = buckets
	}
	return c.Render("products", data)
}

func tabs(tree content.Tree, active Category) []Tab {
	labels := map[Category]string{
		Granule: tree.Products.GranuleProducts,
		Liquid:  tree.Products.LiquidProducts,
	}
	out := make([]Tab, 0, len(AllowedCategories))
	for _, cat := range AllowedCategories {
		out = append(out, Tab{
			Category: cat,
			Slug:     cat.Slug(),
			Label:    labels[cat],
			Active:   cat == active,
		})
	}
	return out
}
