package product

import (
	"strconv"

	"github.com/kuberbiotech/kuber-web/internal/icon"
	"github.com/kuberbiotech/kuber-web/internal/language"
)

// Card is the render model of one product tile.
type Card struct {
	ID       string
	Name     string
	Benefits []string
	Icon     icon.Key
	Images   []string
	Carousel Carousel
}

// Slide is one image of a card carousel. PrevID and NextID name the slides a
// step away, wrapping at both ends.
type Slide struct {
	ID     string
	Image  string
	Pos    int
	PrevID string
	NextID string
	Shown  bool
}

// NewCard combines images (preferred when non-empty) or the single legacy
// image into the card's image list.
func NewCard(name string, benefits []string, ic icon.Key, images []string, image string, index int) Card {
	var list []string
	switch {
	case len(images) > 0:
		list = append(list, images...)
	case image != "":
		list = []string{image}
	}
	return Card{
		Name:     name,
		Benefits: benefits,
		Icon:     ic,
		Images:   list,
		Carousel: NewCarousel(len(list), index),
	}
}

// Current returns the image at the carousel index, or "" without images.
func (c Card) Current() string {
	if len(c.Images) == 0 {
		return ""
	}
	return c.Images[c.Carousel.Index()]
}

// Slides lays out every image so the page can step through them without a
// request. The carousel's current index is the one shown first.
func (c Card) Slides() []Slide {
	out := make([]Slide, 0, len(c.Images))
	for i, img := range c.Images {
		at := NewCarousel(len(c.Images), i)
		out = append(out, Slide{
			ID:     c.slideID(i),
			Image:  img,
			Pos:    i + 1,
			PrevID: c.slideID(at.Prev().Index()),
			NextID: c.slideID(at.Next().Index()),
			Shown:  i == c.Carousel.Index(),
		})
	}
	return out
}

func (c Card) slideID(i int) string { return "p-" + c.ID + "-" + strconv.Itoa(i) }

// ShowNav reports whether prev/next controls apply.
func (c Card) ShowNav() bool { return len(c.Images) > 1 }

// ShowIcon reports whether the category icon replaces the image.
func (c Card) ShowIcon() bool { return len(c.Images) == 0 }

// BuildCards resolves products for lang, each carousel at its first image.
// defaultName replaces empty names.
func BuildCards(products []Product, lang language.Lang, cat Category, defaultName string) []Card {
	cards := make([]Card, 0, len(products))
	for _, p := range products {
		name := p.Name.Resolve(lang)
		if name == "" {
			name = defaultName
		}
		var benefits []string
		if d := p.Description.Resolve(lang); d != "" {
			benefits = []string{d}
		}
		card := NewCard(name, benefits, cat.Icon(), p.Images, p.Image, 0)
		card.ID = p.ID
		cards = append(cards, card)
	}
	return cards
}
