package brochure

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/kuberbiotech/kuber-web/internal/content"
	"github.com/kuberbiotech/kuber-web/internal/flash"
	"github.com/kuberbiotech/kuber-web/internal/gateway"
)

// Downloader fetches one brochure's bytes.
type Downloader interface {
	DownloadBrochure(ctx context.Context, id string) (gateway.Download, error)
}

type Handler struct {
	downloader Downloader
	secure     bool
}

func NewHandler(downloader Downloader, secureCookies bool) *Handler {
	return &Handler{downloader: downloader, secure: secureCookies}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/brochures/:id/download", h.download)
}

func (h *Handler) download(c *fiber.Ctx) error {
	d, err := h.downloader.DownloadBrochure(c.UserContext(), c.Params("id"))
	if err != nil {
		log.Errorw("download brochure", "resource", "brochures", "id", c.Params("id"), "error", err)
		return flash.RedirectBack(c, h.secure, flash.Error(content.MsgBrochureDownload))
	}
	c.Attachment(d.Filename)
	c.Set(fiber.HeaderContentType, d.ContentType)
	return c.Send(d.Data)
}

