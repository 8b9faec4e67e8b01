package admin

import (
	"strings"

	"github.com/kuberbiotech/kuber-web/internal/content"
	"github.com/kuberbiotech/kuber-web/internal/gateway"
	"github.com/kuberbiotech/kuber-web/internal/language"
	"github.com/kuberbiotech/kuber-web/internal/localized"
	"github.com/kuberbiotech/kuber-web/internal/product"
)

// ProductForm is the create/edit form. Category holds the canonical English
// category string.
type ProductForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Category    string `form:"category"`
}

func (f ProductForm) trimmed() ProductForm {
	return ProductForm{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		Category:    strings.TrimSpace(f.Category),
	}
}

// Validate returns the content message key of the problem, or "".
func (f ProductForm) Validate() string {
	f = f.trimmed()
	if f.Name == "" || f.Description == "" {
		return content.MsgProductRequired
	}
	if _, ok := product.ParseCategory(f.Category); !ok {
		return content.MsgProductRequired
	}
	return ""
}

func (f ProductForm) category() string {
	c, _ := product.ParseCategory(f.trimmed().Category)
	return string(c)
}

// CreateRequest builds the multipart create payload.
func (f ProductForm) CreateRequest(images []gateway.File) gateway.CreateProductRequest {
	f = f.trimmed()
	return gateway.CreateProductRequest{
		Name:        f.Name,
		Description: f.Description,
		Category:    f.category(),
		Images:      images,
	}
}

// UpdateRequest builds the JSON edit payload.
func (f ProductForm) UpdateRequest() gateway.UpdateProductRequest {
	f = f.trimmed()
	return gateway.UpdateProductRequest{
		NewName:        f.Name,
		NewDescription: f.Description,
		NewCategory:    f.category(),
	}
}

// PrefillForm fills the edit form from a product, preferring the English
// value, then Marathi, then whatever comes first.
func PrefillForm(p product.Product) ProductForm {
	return ProductForm{
		Name:        editValue(p.Name),
		Description: editValue(p.Description),
		Category:    editValue(p.Category),
	}
}

func editValue(t localized.Text) string {
	for _, l := range []language.Lang{language.English, language.Marathi} {
		if v, ok := t.Value(string(l)); ok && v != "" {
			return v
		}
	}
	return t.Resolve(language.English)
}
