package web

import (
	"net/http"

	"github.com/go-faster/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kuberbiotech/kuber-web/internal/admin"
	"github.com/kuberbiotech/kuber-web/internal/brochure"
	"github.com/kuberbiotech/kuber-web/internal/config"
	"github.com/kuberbiotech/kuber-web/internal/contact"
	"github.com/kuberbiotech/kuber-web/internal/content"
	"github.com/kuberbiotech/kuber-web/internal/flash"
	"github.com/kuberbiotech/kuber-web/internal/gateway"
	"github.com/kuberbiotech/kuber-web/internal/language"
	"github.com/kuberbiotech/kuber-web/internal/product"
	"github.com/kuberbiotech/kuber-web/internal/session"
	"github.com/kuberbiotech/kuber-web/internal/site"
)

// Options are the collaborators of the application.
type Options struct {
	Config   config.Config
	Client   *gateway.Client
	Sessions session.Repository
	// Views defaults to the embedded HTML engine.
	Views fiber.Views
	// AccessLog enables the request logger middleware.
	AccessLog bool
}

// New builds the application with every route registered.
func New(opts Options) *fiber.App {
	cfg := opts.Config
	views := opts.Views
	if views == nil {
		views = NewEngine()
	}
	secure := cfg.CookieSecure
	client := opts.Client

	st := site.New(brochure.NewService(client), secure)
	app := fiber.New(fiber.Config{
		Views:                 views,
		ViewsLayout:           MainLayout,
		BodyLimit:             cfg.BodyLimit,
		ErrorHandler:          errorHandler(st, secure),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New())
	}
	app.Use("/assets", filesystem.New(filesystem.Config{
		Root:   http.FS(sub(assetsFS, "assets")),
		MaxAge: 3600,
	}))
	if cfg.StaticDir != "" {
		app.Static("/static", cfg.StaticDir)
	}

	app.Use(session.Middleware(opts.Sessions, session.Options{Secure: secure}))
	app.Use(language.Middleware(secure))

	site.NewHandler(st).RegisterPublicRoutes(app)

	catalog := product.NewService(product.NewGatewayRepository(client, cfg.CatalogLimit))
	product.NewHandler(catalog, st).RegisterPublicRoutes(app)

	contact.NewHandler(client, st, secure).RegisterPublicRoutes(app)
	brochure.NewHandler(client, secure).RegisterPublicRoutes(app)

	// public admin routes must be registered before the guarded group
	adm := admin.NewHandler(client, st, cfg.CatalogLimit, secure)
	adm.RegisterPublicRoutes(app)
	adm.RegisterProtectedRoutes(app)

	app.Use(func(*fiber.Ctx) error { return fiber.ErrNotFound })
	return app
}

// errorHandler renders the localized error page. Details stay in the log.
// A brochure over the body limit never reaches its handler, so it is sent
// back to the brochures tab with the size notice instead.
func errorHandler(st *site.Site, secure bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		if code == fiber.StatusRequestEntityTooLarge && c.Method() == fiber.MethodPost && c.Path() == "/admin/brochures" {
			log.Warnw("brochure over body limit", "error", err)
			flash.Write(flash.Store(c, secure), flash.Error(content.MsgBrochureTooLarge))
			return c.Redirect("/admin/dashboard?tab=brochures", fiber.StatusSeeOther)
		}

		key := content.MsgGenericError
		if code == fiber.StatusNotFound {
			key = content.MsgNotFound
		}
		if code >= fiber.StatusInternalServerError {
			log.Errorw("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		}

		tree := content.Resolve(language.FromCtx(c).Get())
		data := st.Chrome(c)
		data["Title"] = tree.Message(key)
		data["Status"] = code
		data["Message"] = tree.Message(key)
		if rerr := c.Status(code).Render("error", data, MainLayout); rerr != nil {
			log.Errorw("render error page", "error", rerr)
			c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
			return c.Status(code).SendString(tree.Message(key))
		}
		return nil
	}
}
