// Package icon maps a closed set of icon keys to inline SVG markup.
package icon

import (
	"fmt"
	"html/template"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"
)

// Key identifies one icon. The zero value is None and renders nothing.
type Key int

const (
	None Key = iota
	Leaf
	Droplet
	Scale
	Zap
	Target
	Factory
	Users
	Store
	Mail
	Phone
	MapPin
	Camera
	Image
	Smile
	CheckCircle
	ChevronLeft
	ChevronRight
	Download
	Trash
	Edit
	Package
	LogOut
)

var names = [...]string{
	None:         "",
	Leaf:         "Leaf",
	Droplet:      "Droplet",
	Scale:        "Scale",
	Zap:          "Zap",
	Target:       "Target",
	Factory:      "Factory",
	Users:        "Users",
	Store:        "Store",
	Mail:         "Mail",
	Phone:        "Phone",
	MapPin:       "MapPin",
	Camera:       "Camera",
	Image:        "Image",
	Smile:        "Smile",
	CheckCircle:  "CheckCircle",
	ChevronLeft:  "ChevronLeft",
	ChevronRight: "ChevronRight",
	Download:     "Download",
	Trash:        "Trash",
	Edit:         "Edit",
	Package:      "Package",
	LogOut:       "LogOut",
}

// paths holds the SVG body of each icon (24x24 viewBox, stroked).
var paths = [...]string{
	None:         ``,
	Leaf:         `<path d="M11 20A7 7 0 0 1 9.8 6.1C15.5 5 17 4.48 19 2c1 2 2 4.18 2 8 0 5.5-4.78 10-10 10Z"/><path d="M2 21c0-3 1.85-5.36 5.08-6"/>`,
	Droplet:      `<path d="M12 22a7 7 0 0 0 7-7c0-2-1-3.9-3-5.5s-3.5-4-4-6.5c-.5 2.5-2 4.9-4 6.5C6 11.1 5 13 5 15a7 7 0 0 0 7 7z"/>`,
	Scale:        `<path d="m16 16 3-8 3 8c-.87.65-1.92 1-3 1s-2.13-.35-3-1Z"/><path d="m2 16 3-8 3 8c-.87.65-1.92 1-3 1s-2.13-.35-3-1Z"/><path d="M7 21h10"/><path d="M12 3v18"/><path d="M3 7h2c2 0 5-1 7-2 2 1 5 2 7 2h2"/>`,
	Zap:          `<path d="M13 2 3 14h9l-1 8 10-12h-9l1-8z"/>`,
	Target:       `<circle cx="12" cy="12" r="10"/><circle cx="12" cy="12" r="6"/><circle cx="12" cy="12" r="2"/>`,
	Factory:      `<path d="M2 20a2 2 0 0 0 2 2h16a2 2 0 0 0 2-2V8l-7 5V8l-7 5V4a2 2 0 0 0-2-2H4a2 2 0 0 0-2 2Z"/>`,
	Users:        `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,
	Store:        `<path d="m2 7 4.41-4.41A2 2 0 0 1 7.83 2h8.34a2 2 0 0 1 1.42.59L22 7"/><path d="M4 12v8a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2v-8"/><path d="M2 7h20"/>`,
	Mail:         `<rect width="20" height="16" x="2" y="4" rx="2"/><path d="m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"/>`,
	Phone:        `<path d="M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72c.13.96.36 1.9.7 2.81a2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45c.91.34 1.85.57 2.81.7A2 2 0 0 1 22 16.92z"/>`,
	MapPin:       `<path d="M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z"/><circle cx="12" cy="10" r="3"/>`,
	Camera:       `<path d="M14.5 4h-5L7 7H4a2 2 0 0 0-2 2v9a2 2 0 0 0 2 2h16a2 2 0 0 0 2-2V9a2 2 0 0 0-2-2h-3l-2.5-3z"/><circle cx="12" cy="13" r="3"/>`,
	Image:        `<rect width="18" height="18" x="3" y="3" rx="2"/><circle cx="9" cy="9" r="2"/><path d="m21 15-3.09-3.09a2 2 0 0 0-2.82 0L6 21"/>`,
	Smile:        `<circle cx="12" cy="12" r="10"/><path d="M8 14s1.5 2 4 2 4-2 4-2"/><line x1="9" x2="9.01" y1="9" y2="9"/><line x1="15" x2="15.01" y1="9" y2="9"/>`,
	CheckCircle:  `<path d="M22 11.08V12a10 10 0 1 1-5.93-9.14"/><path d="m9 11 3 3L22 4"/>`,
	ChevronLeft:  `<path d="m15 18-6-6 6-6"/>`,
	ChevronRight: `<path d="m9 18 6-6-6-6"/>`,
	Download:     `<path d="M21 15v4a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2v-4"/><path d="m7 10 5 5 5-5"/><path d="M12 15V3"/>`,
	Trash:        `<path d="M3 6h18"/><path d="M19 6v14c0 1-1 2-2 2H7c-1 0-2-1-2-2V6"/><path d="M8 6V4c0-1 1-2 2-2h4c1 0 2 1 2 2v2"/>`,
	Edit:         `<path d="M12 20h9"/><path d="M16.5 3.5a2.12 2.12 0 0 1 3 3L7 19l-4 1 1-4Z"/>`,
	Package:      `<path d="m7.5 4.27 9 5.15"/><path d="M21 8a2 2 0 0 0-1-1.73l-7-4a2 2 0 0 0-2 0l-7 4A2 2 0 0 0 3 8v8a2 2 0 0 0 1 1.73l7 4a2 2 0 0 0 2 0l7-4A2 2 0 0 0 21 16Z"/><path d="m3.3 7 8.7 5 8.7-5"/><path d="M12 22V12"/>`,
	LogOut:       `<path d="M9 21H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h4"/><path d="m16 17 5-5-5-5"/><path d="M21 12H9"/>`,
}

func (k Key) valid() bool { return k >= 0 && int(k) < len(names) }

func (k Key) String() string {
	if !k.valid() {
		return fmt.Sprintf("icon.Key(%d)", int(k))
	}
	return names[k]
}

// Parse maps an icon name ("Leaf") to its Key.
func Parse(name string) (Key, bool) {
	for i, n := range names {
		if n != "" && n == name {
			return Key(i), true
		}
	}
	return None, false
}

// SVG renders the icon with the given CSS class. None renders nothing.
func (k Key) SVG(class string) template.HTML {
	if k == None || !k.valid() {
		return ""
	}
	return template.HTML(`<svg xmlns="http://www.w3.org/2000/svg" class="` + template.HTMLEscapeString(class) +
		`" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">` +
		paths[k] + `</svg>`)
}

// UnmarshalYAML decodes an icon name, rejecting unknown names.
func (k *Key) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	parsed, ok := Parse(name)
	if !ok {
		return errors.Errorf("unknown icon %q at line %d", name, node.Line)
	}
	*k = parsed
	return nil
}
