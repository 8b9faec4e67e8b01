package admin

import (
	"context"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/kuberbiotech/kuber-web/internal/content"
	"github.com/kuberbiotech/kuber-web/internal/flash"
	"github.com/kuberbiotech/kuber-web/internal/gateway"
	"github.com/kuberbiotech/kuber-web/internal/icon"
	"github.com/kuberbiotech/kuber-web/internal/kv"
	"github.com/kuberbiotech/kuber-web/internal/language"
	"github.com/kuberbiotech/kuber-web/internal/product"
	"github.com/kuberbiotech/kuber-web/internal/session"
)

// LayoutName is the layout wrapping every admin page.
const LayoutName = "layouts/admin"

// Backend is everything the admin pages need from the gateway.
type Backend interface {
	Gateway
	Login(ctx context.Context, creds gateway.Credentials) (gateway.Token, error)
}

// Layout supplies the page data shared by admin pages.
type Layout interface {
	Bare(c *fiber.Ctx) fiber.Map
}

type Handler struct {
	backend func(c *fiber.Ctx) Backend
	layout  Layout
	limit   int
	secure  bool
}

// NewHandler binds client to each request's session so backend calls carry
// that browser's credential.
func NewHandler(client *gateway.Client, layout Layout, catalogLimit int, secureCookies bool) *Handler {
	return &Handler{
		backend: func(c *fiber.Ctx) Backend { return client.WithCredentials(session.FromCtx(c)) },
		layout:  layout,
		limit:   catalogLimit,
		secure:  secureCookies,
	}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/admin", h.getLogin)
	app.Post("/admin/login", h.postLogin)
	app.Post("/admin/logout", h.postLogout)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	g := app.Group("/admin", h.requireCredential)
	g.Get("/dashboard", h.getDashboard)
	g.Get("/products/new", h.newProduct)
	g.Get("/products/:id/edit", h.editProduct)
	g.Post("/products/preview", h.previewProduct)
	g.Post("/products", h.createProduct)
	g.Post("/products/:id", h.updateProduct)
	g.Post("/brochures", h.uploadBrochure)
	g.Post("/delete/:kind/:id", h.confirmDelete)
	g.Get("/contacts/export.xlsx", h.exportContacts)
}

func credential(c *fiber.Ctx) string {
	v, err := session.FromCtx(c).Get(gateway.TokenKey)
	if err != nil {
		return ""
	}
	return v
}

// requireCredential only checks that a credential is stored; the backend
// decides whether it is still valid.
func (h *Handler) requireCredential(c *fiber.Ctx) error {
	if credential(c) == "" {
		flash.Write(h.flashStore(c), flash.Error(content.MsgLoginRequired))
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}
	return c.Next()
}

func (h *Handler) flashStore(c *fiber.Ctx) kv.Store { return flash.Store(c, h.secure) }

func (h *Handler) page(c *fiber.Ctx, title string) fiber.Map {
	data := h.layout.Bare(c)
	data["Title"] = title
	if id, ok := IdentityFromToken(credential(c)); ok {
		data["Identity"] = id
	}
	return data
}

func (h *Handler) getLogin(c *fiber.Ctx) error {
	if credential(c) != "" {
		return c.Redirect("/admin/dashboard", fiber.StatusSeeOther)
	}
	return h.renderLogin(c, fiber.StatusOK, "", "")
}

func (h *Handler) renderLogin(c *fiber.Ctx, status int, email, errKey string) error {
	tree := content.Resolve(language.FromCtx(c).Get())
	data := h.layout.Bare(c)
	data["Title"] = tree.Admin.LoginTitle
	data["Email"] = email
	if errKey != "" {
		data["Error"] = tree.Message(errKey)
	}
	return c.Status(status).Render("admin/login", data, LayoutName)
}

func (h *Handler) postLogin(c *fiber.Ctx) error {
	var creds gateway.Credentials
	if err := c.BodyParser(&creds); err != nil || strings.TrimSpace(creds.Email) == "" || creds.Password == "" {
		return h.renderLogin(c, fiber.StatusBadRequest, creds.Email, content.MsgLoginFailed)
	}
	creds.Email = strings.TrimSpace(creds.Email)
	token, err := h.backend(c).Login(c.UserContext(), creds)
	if err != nil {
		log.Warnw("admin login", "email", creds.Email, "error", err)
		return h.renderLogin(c, fiber.StatusUnauthorized, creds.Email, content.MsgLoginFailed)
	}
	if err := session.FromCtx(c).Set(gateway.TokenKey, string(token)); err != nil {
		log.Errorw("store credential", "error", err)
		return h.renderLogin(c, fiber.StatusInternalServerError, creds.Email, content.MsgGenericError)
	}
	return c.Redirect("/admin/dashboard", fiber.StatusSeeOther)
}

// postLogout forgets the local credential only; the backend session, if any,
// is left to the backend.
func (h *Handler) postLogout(c *fiber.Ctx) error {
	if err := session.FromCtx(c).Delete(gateway.TokenKey); err != nil {
		log.Warnw("forget credential", "error", err)
	}
	return c.Redirect("/admin", fiber.StatusSeeOther)
}

func (h *Handler) dashboard(c *fiber.Ctx) *Dashboard {
	return NewDashboard(h.backend(c), h.limit)
}

func activeKind(s string) Kind {
	switch s {
	case KindContact.Tab():
		return KindContact
	case KindBrochure.Tab():
		return KindBrochure
	}
	return KindProduct
}

func (h *Handler) getDashboard(c *fiber.Ctx) error {
	d := h.dashboard(c)
	d.Load(c.UserContext())
	return h.renderDashboard(c, d, activeKind(c.Query("tab")))
}

// renderDashboard shows the tab of kind from the lists d already holds. Each
// delete confirmation is part of the page, so opening or cancelling one sends
// no request.
func (h *Handler) renderDashboard(c *fiber.Ctx, d *Dashboard, kind Kind) error {
	lang := language.FromCtx(c).Get()
	tree := content.Resolve(lang)

	data := h.page(c, tree.Admin.Title)
	if d.Message.Key != "" {
		data["Flash"] = d.Message.Localize(tree.Message)
	}
	data["Tab"] = kind.Tab()
	data["Dashboard"] = d
	data["Rows"] = productRows(d.Products, lang)
	data["Confirmations"] = d.Confirmations(kind, lang)
	data["BrochureField"] = gateway.BrochureFileField
	return c.Render("admin/dashboard", data, LayoutName)
}

// ProductRow is one product line in the dashboard table.
type ProductRow struct {
	ID          string
	Name        string
	Description string
	Category    string
	Thumbnail   string
}

func productRows(ps []product.Product, lang language.Lang) []ProductRow {
	rows := make([]ProductRow, 0, len(ps))
	for _, p := range ps {
		row := ProductRow{
			ID:          p.ID,
			Name:        p.Name.Resolve(lang),
			Description: p.Description.Resolve(lang),
			Category:    p.Category.Resolve(lang),
		}
		row.Thumbnail = productImages(p).Current()
		rows = append(rows, row)
	}
	return rows
}

func productImages(p product.Product) product.Card {
	return product.NewCard("", nil, icon.None, p.Images, p.Image, 0)
}

// formView is what the product form shows besides its fields.
type formView struct {
	previews []Preview
	// existing are the images of the edited product; an edit never changes them.
	existing []string
	errKey   string
}

func (h *Handler) renderForm(c *fiber.Ctx, status int, id string, form ProductForm, v formView) error {
	t := content.Resolve(language.FromCtx(c).Get())
	title := t.Admin.AddProduct
	if id != "" {
		title = t.Admin.EditProduct
	}
	data := h.page(c, title)
	data["ProductID"] = id
	data["Form"] = form
	data["Categories"] = categoryOptions(t)
	data["Previews"] = v.previews
	data["Existing"] = v.existing
	data["StagedField"] = StagedField
	if v.errKey != "" {
		data["Error"] = t.Message(v.errKey)
	}
	return c.Status(status).Render("admin/product_form", data, LayoutName)
}

// CategoryOption is one choice of the category select.
type CategoryOption struct {
	Value string
	Label string
}

func categoryOptions(t content.Tree) []CategoryOption {
	return []CategoryOption{
		{Value: string(product.Granule), Label: t.Products.GranuleProducts},
		{Value: string(product.Liquid), Label: t.Products.LiquidProducts},
	}
}

func (h *Handler) newProduct(c *fiber.Ctx) error {
	return h.renderForm(c, fiber.StatusOK, "", ProductForm{Category: string(product.Granule)}, formView{})
}

func (h *Handler) editProduct(c *fiber.Ctx) error {
	d := h.dashboard(c)
	d.ReloadProducts(c.UserContext())
	p, ok := d.FindProduct(c.Params("id"))
	if !ok {
		flash.Write(h.flashStore(c), flash.Error(content.MsgNotFound))
		return c.Redirect("/admin/dashboard?tab=products", fiber.StatusSeeOther)
	}
	return h.renderForm(c, fiber.StatusOK, p.ID, PrefillForm(p), formView{existing: productImages(p).Images})
}

// productImagesOf picks the images a product form carries: freshly attached
// files win over images staged by an earlier preview.
func productImagesOf(c *fiber.Ctx) ([]gateway.File, error) {
	files, err := formFiles(c, "images")
	if err != nil || len(files) > 0 {
		return files, err
	}
	staged := formValues(c, StagedField)
	out := make([]gateway.File, 0, len(staged))
	for _, s := range staged {
		f, err := Unstage(s)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func (h *Handler) previewProduct(c *fiber.Ctx) error {
	var form ProductForm
	_ = c.BodyParser(&form)
	files, err := productImagesOf(c)
	if err != nil {
		return h.renderForm(c, fiber.StatusBadRequest, "", form, formView{errKey: content.MsgPreviewFailed})
	}
	d := h.dashboard(c)
	if err := d.BuildPreviews(c.UserContext(), files); err != nil {
		log.Warnw("build previews", "error", err)
		return h.renderForm(c, fiber.StatusBadRequest, "", form, formView{errKey: content.MsgPreviewFailed})
	}
	return h.renderForm(c, fiber.StatusOK, "", form, formView{previews: d.Previews})
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	var form ProductForm
	if err := c.BodyParser(&form); err != nil {
		return h.renderForm(c, fiber.StatusBadRequest, "", form, formView{errKey: content.MsgProductRequired})
	}
	images, err := productImagesOf(c)
	if err != nil {
		return h.renderForm(c, fiber.StatusBadRequest, "", form, formView{errKey: content.MsgProductAddFailed})
	}
	if key := form.Validate(); key != "" {
		v := formView{errKey: key}
		if len(images) > 0 {
			d := h.dashboard(c)
			if d.BuildPreviews(c.UserContext(), images) == nil {
				v.previews = d.Previews
			}
		}
		return h.renderForm(c, fiber.StatusBadRequest, "", form, v)
	}
	d := h.dashboard(c)
	d.CreateProduct(c.UserContext(), form, images)
	return h.finish(c, d, KindProduct)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	var form ProductForm
	if err := c.BodyParser(&form); err != nil {
		return h.renderForm(c, fiber.StatusBadRequest, id, form, formView{errKey: content.MsgProductRequired})
	}
	if key := form.Validate(); key != "" {
		return h.renderForm(c, fiber.StatusBadRequest, id, form, formView{existing: formValues(c, "existing"), errKey: key})
	}
	d := h.dashboard(c)
	d.UpdateProduct(c.UserContext(), id, form)
	return h.finish(c, d, KindProduct)
}

func (h *Handler) uploadBrochure(c *fiber.Ctx) error {
	d := h.dashboard(c)
	files, err := formFiles(c, gateway.BrochureFileField)
	switch {
	case err != nil || len(files) == 0:
		d.SelectBrochure(gateway.File{})
	default:
		d.SelectBrochure(files[0])
	}
	d.UploadBrochure(c.UserContext(), strings.TrimSpace(c.FormValue("title")))
	return h.finish(c, d, KindBrochure)
}

func (h *Handler) confirmDelete(c *fiber.Ctx) error {
	kind, ok := ParseKind(c.Params("kind"))
	if !ok {
		return fiber.ErrNotFound
	}
	d := h.dashboard(c)
	d.RequestDelete(kind, c.Params("id"), "")
	d.Confirm(c.UserContext())
	return h.finish(c, d, kind)
}

// finish shows the tab of kind with the outcome of the mutation. The mutation
// already re-listed its resource; it is listed here only when the mutation was
// refused before reaching the backend.
func (h *Handler) finish(c *fiber.Ctx, d *Dashboard, kind Kind) error {
	if !d.Listed(kind) {
		d.Reload(c.UserContext(), kind)
	}
	return h.renderDashboard(c, d, kind)
}

func (h *Handler) exportContacts(c *fiber.Ctx) error {
	d := h.dashboard(c)
	d.ReloadContacts(c.UserContext())
	data, err := ContactsXLSX(d.Contacts, content.Resolve(language.FromCtx(c).Get()))
	if err != nil {
		log.Errorw("export contacts", "resource", "contacts", "error", err)
		flash.Write(h.flashStore(c), flash.Error(content.MsgExportFailed))
		return c.Redirect("/admin/dashboard?tab=contacts", fiber.StatusSeeOther)
	}
	c.Attachment("contacts.xlsx")
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(data)
}

// formValues returns every value of field, from a multipart or urlencoded body.
func formValues(c *fiber.Ctx, field string) []string {
	if form, err := c.MultipartForm(); err == nil {
		return form.Value[field]
	}
	var out []string
	for _, v := range c.Request().PostArgs().PeekMulti(field) {
		out = append(out, string(v))
	}
	return out
}

// formFiles reads the uploaded files of field, skipping empty file inputs.
func formFiles(c *fiber.Ctx, field string) ([]gateway.File, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	headers := form.File[field]
	out := make([]gateway.File, 0, len(headers))
	for _, fh := range headers {
		if fh.Filename == "" && fh.Size == 0 {
			continue
		}
		f, err := readFile(fh)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func readFile(fh *multipart.FileHeader) (gateway.File, error) {
	r, err := fh.Open()
	if err != nil {
		return gateway.File{}, err
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return gateway.File{}, err
	}
	return gateway.File{Name: fh.Filename, ContentType: fh.Header.Get(fiber.HeaderContentType), Data: data}, nil
}
