package site

import (
	"github.com/kuberbiotech/kuber-web/internal/content"
	"github.com/kuberbiotech/kuber-web/internal/icon"
)

var (
	galleryIcons  = []icon.Key{icon.Camera, icon.Image, icon.Smile, icon.Zap, icon.Camera}
	galleryImages = []string{
		"/static/img/product-packaging.png",
		"/static/img/field.jpg",
		"/static/img/before-and-after.jpg",
		"/static/img/farmer-success-stories.jpg",
		"/static/img/events-and-workshops.jpg",
	}
)

// GalleryTile is one category of the gallery page.
type GalleryTile struct {
	Title string
	Image string
	Icon  icon.Key
}

// GalleryTiles pairs each gallery category with its picture and icon,
// cycling through both when there are more categories.
func GalleryTiles(g content.Gallery) []GalleryTile {
	out := make([]GalleryTile, 0, len(g.Categories))
	for i, c := range g.Categories {
		out = append(out, GalleryTile{
			Title: c,
			Image: galleryImages[i%len(galleryImages)],
			Icon:  galleryIcons[i%len(galleryIcons)],
		})
	}
	return out
}
