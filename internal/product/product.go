package product

import (
	"github.com/tidwall/gjson"

	"github.com/kuberbiotech/kuber-web/internal/envelope"
	"github.com/kuberbiotech/kuber-web/internal/icon"
	"github.com/kuberbiotech/kuber-web/internal/localized"
)

// Product is a catalog entry as served by the backend. Name, Description and
// Category may each be plain strings or per-language mappings.
type Product struct {
	ID          string
	Name        localized.Text
	Description localized.Text
	Category    localized.Text
	// Images is the current list form; Image is the legacy single URL.
	Images    []string
	Image     string
	CreatedAt string
}

// Category is the canonical English category string used for bucketing.
type Category string

const (
	Granule Category = "Granule Products"
	Liquid  Category = "Liquid Products"
)

// AllowedCategories lists the categories in tab order.
var AllowedCategories = []Category{Granule, Liquid}

// ParseCategory accepts either the canonical string or the tab slug.
func ParseCategory(s string) (Category, bool) {
	switch s {
	case string(Granule), "granule":
		return Granule, true
	case string(Liquid), "liquid":
		return Liquid, true
	}
	return "", false
}

// Slug is the short form used in ?tab=.
func (c Category) Slug() string {
	if c == Liquid {
		return "liquid"
	}
	return "granule"
}

// Icon is the placeholder shown on cards without images.
func (c Category) Icon() icon.Key {
	if c == Liquid {
		return icon.Droplet
	}
	return icon.Leaf
}

// In reports whether p belongs to c. Only the English form is compared, so
// membership does not depend on the UI language.
func (p Product) In(c Category) bool {
	return p.Category.English() == string(c)
}

// FromResult maps one backend item to a Product.
func FromResult(r gjson.Result) Product {
	p := Product{
		ID:          firstString(r, "_id", "id"),
		Name:        localized.FromResult(r.Get("name")),
		Description: localized.FromResult(r.Get("description")),
		Category:    localized.FromResult(r.Get("category")),
		CreatedAt:   firstString(r, "createdAt"),
	}
	if imgs := r.Get("images"); imgs.IsArray() {
		imgs.ForEach(func(_, v gjson.Result) bool {
			if u := imageURL(v); u != "" {
				p.Images = append(p.Images, u)
			}
			return true
		})
	}
	p.Image = imageURL(r.Get("image"))
	return p
}

// Decode normalizes a list response into products.
func Decode(body []byte) []Product {
	return envelope.Decode(body, envelope.Products, FromResult)
}

func imageURL(v gjson.Result) string {
	switch {
	case v.Type == gjson.String:
		return v.String()
	case v.IsObject():
		return firstString(v, "url", "secure_url")
	}
	return ""
}

func firstString(r gjson.Result, paths ...string) string {
	for _, p := range paths {
		v := r.Get(p)
		if v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
		if v.Type == gjson.Number {
			return v.Raw
		}
	}
	return ""
}
