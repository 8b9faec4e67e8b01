// Package admin implements the back-office dashboard: listing, creating,
// editing and deleting products, contacts and brochures through the backend.
package admin

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/sync/errgroup"

	"github.com/kuberbiotech/kuber-web/internal/brochure"
	"github.com/kuberbiotech/kuber-web/internal/contact"
	"github.com/kuberbiotech/kuber-web/internal/content"
	"github.com/kuberbiotech/kuber-web/internal/flash"
	"github.com/kuberbiotech/kuber-web/internal/gateway"
	"github.com/kuberbiotech/kuber-web/internal/language"
	"github.com/kuberbiotech/kuber-web/internal/product"
)

// Gateway is the backend surface the dashboard drives.
type Gateway interface {
	ListProducts(ctx context.Context, p gateway.ListProductsParams) ([]byte, error)
	CreateProduct(ctx context.Context, req gateway.CreateProductRequest) error
	UpdateProduct(ctx context.Context, id string, req gateway.UpdateProductRequest) error
	DeleteProduct(ctx context.Context, id string) error
	ListContacts(ctx context.Context) ([]byte, error)
	DeleteContact(ctx context.Context, id string) error
	ListBrochures(ctx context.Context) ([]byte, error)
	UploadBrochure(ctx context.Context, req gateway.UploadBrochureRequest) error
	DeleteBrochure(ctx context.Context, id string) error
}

// Kind names the resource a delete targets.
type Kind string

const (
	KindProduct  Kind = "product"
	KindContact  Kind = "contact"
	KindBrochure Kind = "brochure"
)

func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindProduct, KindContact, KindBrochure:
		return Kind(s), true
	}
	return "", false
}

// Tab is the dashboard tab listing this kind.
func (k Kind) Tab() string { return string(k) + "s" }

// Confirmation is a delete awaiting the user's decision.
type Confirmation struct {
	Kind        Kind
	ID          string
	DisplayName string
}

// Dashboard holds one admin view's state. Each mutation is followed by exactly
// one re-list of the affected resource, started after the mutation returns.
type Dashboard struct {
	gw    Gateway
	limit int

	Products  []product.Product
	Contacts  []contact.Submission
	Brochures []brochure.Brochure

	// Message is the outcome of the latest operation; its Key is empty when
	// nothing happened yet.
	Message  flash.Notice
	Pending  *Confirmation
	Selected *gateway.File
	Previews []Preview

	productsListed  bool
	contactsListed  bool
	brochuresListed bool
}

func NewDashboard(gw Gateway, catalogLimit int) *Dashboard {
	return &Dashboard{gw: gw, limit: catalogLimit}
}

// Load fetches the three lists concurrently. A failed list stays empty.
func (d *Dashboard) Load(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error { d.ReloadProducts(ctx); return nil })
	g.Go(func() error { d.ReloadContacts(ctx); return nil })
	g.Go(func() error { d.ReloadBrochures(ctx); return nil })
	_ = g.Wait()
}

// Reload lists the resource of kind again.
func (d *Dashboard) Reload(ctx context.Context, kind Kind) {
	switch kind {
	case KindProduct:
		d.ReloadProducts(ctx)
	case KindContact:
		d.ReloadContacts(ctx)
	case KindBrochure:
		d.ReloadBrochures(ctx)
	}
}

// Listed reports whether the resource of kind was listed, successfully or not.
func (d *Dashboard) Listed(kind Kind) bool {
	switch kind {
	case KindProduct:
		return d.productsListed
	case KindContact:
		return d.contactsListed
	case KindBrochure:
		return d.brochuresListed
	}
	return false
}

func (d *Dashboard) ReloadProducts(ctx context.Context) {
	d.productsListed = true
	body, err := d.gw.ListProducts(ctx, gateway.ListProductsParams{Page: 1, Limit: d.limit})
	if err != nil {
		log.Warnw("list", "resource", "products", "error", err)
		d.Products = []product.Product{}
		return
	}
	d.Products = product.Decode(body)
}

func (d *Dashboard) ReloadContacts(ctx context.Context) {
	d.contactsListed = true
	body, err := d.gw.ListContacts(ctx)
	if err != nil {
		log.Warnw("list", "resource", "contacts", "error", err)
		d.Contacts = []contact.Submission{}
		return
	}
	d.Contacts = contact.Decode(body)
}

func (d *Dashboard) ReloadBrochures(ctx context.Context) {
	d.brochuresListed = true
	body, err := d.gw.ListBrochures(ctx)
	if err != nil {
		log.Warnw("list", "resource", "brochures", "error", err)
		d.Brochures = []brochure.Brochure{}
		return
	}
	d.Brochures = brochure.Decode(body)
}

// CreateProduct validates form and sends it with images as multipart.
// It reports whether the backend accepted the product.
func (d *Dashboard) CreateProduct(ctx context.Context, form ProductForm, images []gateway.File) bool {
	if key := form.Validate(); key != "" {
		d.Message = flash.Error(key)
		return false
	}
	err := d.gw.CreateProduct(ctx, form.CreateRequest(images))
	d.settle(err, "products", content.MsgProductAdded, content.MsgProductAddFailed)
	d.ReloadProducts(ctx)
	return err == nil
}

// UpdateProduct sends the renamed JSON fields; images are never part of an edit.
func (d *Dashboard) UpdateProduct(ctx context.Context, id string, form ProductForm) bool {
	if key := form.Validate(); key != "" {
		d.Message = flash.Error(key)
		return false
	}
	err := d.gw.UpdateProduct(ctx, id, form.UpdateRequest())
	d.settle(err, "products", content.MsgProductUpdated, content.MsgProductUpdateFailed)
	d.ReloadProducts(ctx)
	return err == nil
}

// SelectBrochure validates f and keeps it for UploadBrochure. A rejected file
// clears the selection and sets the error message.
func (d *Dashboard) SelectBrochure(f gateway.File) bool {
	if err := brochure.Validate(f); err != nil {
		d.Selected = nil
		d.Message = flash.Error(brochureErrorKey(err))
		return false
	}
	d.Selected = &f
	return true
}

// UploadBrochure sends the selected file. Without a valid selection nothing
// is sent.
func (d *Dashboard) UploadBrochure(ctx context.Context, title string) bool {
	if d.Selected == nil {
		if d.Message.Key == "" {
			d.Message = flash.Error(content.MsgBrochureMissing)
		}
		return false
	}
	err := d.gw.UploadBrochure(ctx, gateway.UploadBrochureRequest{File: *d.Selected, Title: title})
	d.settle(err, "brochures", content.MsgBrochureUploaded, content.MsgBrochureUploadFailed)
	if err == nil {
		d.Selected = nil
	}
	d.ReloadBrochures(ctx)
	return err == nil
}

// RequestDelete opens the confirmation for one item.
func (d *Dashboard) RequestDelete(kind Kind, id, displayName string) {
	d.Pending = &Confirmation{Kind: kind, ID: id, DisplayName: displayName}
}

// Cancel closes the confirmation without any backend call.
func (d *Dashboard) Cancel() {
	d.Pending = nil
}

// Confirm performs the pending delete and re-lists that resource. Without a
// pending confirmation it does nothing.
func (d *Dashboard) Confirm(ctx context.Context) bool {
	p := d.Pending
	if p == nil {
		return false
	}
	d.Pending = nil

	var err error
	switch p.Kind {
	case KindProduct:
		err = d.gw.DeleteProduct(ctx, p.ID)
		d.settle(err, "products", content.MsgProductDeleted, content.MsgProductDeleteFailed)
		d.ReloadProducts(ctx)
	case KindContact:
		err = d.gw.DeleteContact(ctx, p.ID)
		d.settle(err, "contacts", content.MsgContactDeleted, content.MsgContactDeleteFailed)
		d.ReloadContacts(ctx)
	case KindBrochure:
		err = d.gw.DeleteBrochure(ctx, p.ID)
		d.settle(err, "brochures", content.MsgBrochureDeleted, content.MsgBrochureDeleteFailed)
		d.ReloadBrochures(ctx)
	default:
		return false
	}
	return err == nil
}

// Confirmations prepares one delete confirmation per listed item of kind.
func (d *Dashboard) Confirmations(kind Kind, lang language.Lang) []Confirmation {
	var out []Confirmation
	add := func(id, name string) {
		out = append(out, Confirmation{Kind: kind, ID: id, DisplayName: name})
	}
	switch kind {
	case KindProduct:
		for _, p := range d.Products {
			add(p.ID, p.Name.Resolve(lang))
		}
	case KindContact:
		for _, c := range d.Contacts {
			add(c.ID, c.Name)
		}
	case KindBrochure:
		for _, b := range d.Brochures {
			add(b.ID, b.Label())
		}
	}
	return out
}

// FindProduct returns the listed product with id.
func (d *Dashboard) FindProduct(id string) (product.Product, bool) {
	for _, p := range d.Products {
		if p.ID == id {
			return p, true
		}
	}
	return product.Product{}, false
}

func (d *Dashboard) settle(err error, resource, okKey, failKey string) {
	if err != nil {
		log.Errorw("mutation failed", "resource", resource, "error", err)
		d.Message = flash.Error(failKey)
		return
	}
	d.Message = flash.Success(okKey)
}

func brochureErrorKey(err error) string {
	switch {
	case errors.Is(err, brochure.ErrNotPDF):
		return content.MsgBrochureNotPDF
	case errors.Is(err, brochure.ErrTooLarge):
		return content.MsgBrochureTooLarge
	default:
		return content.MsgBrochureMissing
	}
}
