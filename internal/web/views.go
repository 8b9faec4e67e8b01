// Package web assembles the Fiber application: embedded views, static
// assets, middleware and the route table.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"

	"github.com/kuberbiotech/kuber-web/internal/icon"
)

//go:embed views
var viewsFS embed.FS

//go:embed assets
var assetsFS embed.FS

// MainLayout wraps every public page.
const MainLayout = "layouts/main"

// NewEngine returns the HTML engine over the embedded views.
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(sub(viewsFS, "views")), ".html")
	engine.AddFuncMap(Funcs())
	return engine
}

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"icon": renderIcon,
	}
}

// renderIcon accepts an icon.Key or an icon name.
func renderIcon(v any, class string) template.HTML {
	switch k := v.(type) {
	case icon.Key:
		return k.SVG(class)
	case string:
		if key, ok := icon.Parse(k); ok {
			return key.SVG(class)
		}
	}
	return ""
}

func sub(fsys embed.FS, dir string) fs.FS {
	s, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return s
}
