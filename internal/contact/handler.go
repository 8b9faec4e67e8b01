package contact

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/kuberbiotech/kuber-web/internal/content"
	"github.com/kuberbiotech/kuber-web/internal/flash"
	"github.com/kuberbiotech/kuber-web/internal/gateway"
	"github.com/kuberbiotech/kuber-web/internal/language"
)

// Sender forwards a submission to the backend.
type Sender interface {
	CreateContact(ctx context.Context, req gateway.ContactRequest) error
}

// Layout supplies the data shared by every public page.
type Layout interface {
	Base(c *fiber.Ctx) fiber.Map
}

type Handler struct {
	sender Sender
	layout Layout
	secure bool
}

func NewHandler(sender Sender, layout Layout, secureCookies bool) *Handler {
	return &Handler{sender: sender, layout: layout, secure: secureCookies}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/contact", h.getContact)
	app.Post("/contact", h.postContact)
}

func (h *Handler) getContact(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, Form{}, "")
}

func (h *Handler) postContact(c *fiber.Ctx) error {
	var form Form
	if err := c.BodyParser(&form); err != nil {
		return h.render(c, fiber.StatusBadRequest, Form{}, content.MsgContactRequired)
	}
	if key := form.Validate(); key != "" {
		return h.render(c, fiber.StatusBadRequest, form, key)
	}
	if err := h.sender.CreateContact(c.UserContext(), form.Request()); err != nil {
		log.Errorw("send contact", "resource", "contacts", "error", err)
		return h.render(c, fiber.StatusBadGateway, form, content.MsgContactFailed)
	}
	flash.Write(flash.Store(c, h.secure), flash.Success(content.MsgContactSent))
	return c.Redirect("/contact", fiber.StatusSeeOther)
}

func (h *Handler) render(c *fiber.Ctx, status int, form Form, errKey string) error {
	tree := content.Resolve(language.FromCtx(c).Get())
	data := h.layout.Base(c)
	data["Title"] = tree.Contact.Title
	data["Form"] = form
	if errKey != "" {
		data["Error"] = tree.Message(errKey)
	}
	return c.Status(status).Render("contact", data)
}
