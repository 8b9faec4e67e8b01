// Package envelope extracts the item list from backend responses whose
// envelope differs between deployments.
package envelope

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/tidwall/gjson"
)

// Resource names a backend collection. It doubles as the key looked up
// under "data" for named envelopes.
type Resource string

const (
	Products  Resource = "products"
	Contacts  Resource = "contacts"
	Brochures Resource = "brochures"
)

// Shape records which envelope variant a body matched.
type Shape int

const (
	// ShapeUnrecognized: nothing matched; the item list is empty.
	ShapeUnrecognized Shape = iota
	// ShapeNestedData: {"data": [..., [items], ...]}.
	ShapeNestedData
	// ShapeData: {"data": [items]}.
	ShapeData
	// ShapeNamed: {"data": {"<resource>": [items]}}.
	ShapeNamed
	// ShapeBare: [items].
	ShapeBare
)

func (s Shape) String() string {
	switch s {
	case ShapeNestedData:
		return "nested-data"
	case ShapeData:
		return "data"
	case ShapeNamed:
		return "named"
	case ShapeBare:
		return "bare"
	}
	return "unrecognized"
}

// Result is the outcome of normalizing one body. Items only holds objects.
type Result struct {
	Shape Shape
	Items []gjson.Result
}

// Normalize selects the item list from body. It never fails: bodies that are
// empty, invalid or of an unknown shape yield ShapeUnrecognized.
func Normalize(body []byte, resource Resource) Result {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return Result{Shape: ShapeUnrecognized}
	}
	root := gjson.ParseBytes(body)

	data := root.Get("data")
	if data.IsArray() {
		elems := data.Array()
		for _, e := range elems {
			if e.IsArray() {
				return Result{Shape: ShapeNestedData, Items: objects(e.Array())}
			}
		}
		return Result{Shape: ShapeData, Items: objects(elems)}
	}
	if data.IsObject() {
		if named := data.Get(string(resource)); named.IsArray() {
			return Result{Shape: ShapeNamed, Items: objects(named.Array())}
		}
	}
	if root.IsArray() {
		return Result{Shape: ShapeBare, Items: objects(root.Array())}
	}
	return Result{Shape: ShapeUnrecognized}
}

func objects(in []gjson.Result) []gjson.Result {
	out := make([]gjson.Result, 0, len(in))
	for _, r := range in {
		if r.IsObject() {
			out = append(out, r)
		}
	}
	return out
}

// Decode normalizes body and converts every item with fn. An unrecognized
// envelope is logged and decodes to an empty, non-nil slice.
func Decode[T any](body []byte, resource Resource, fn func(gjson.Result) T) []T {
	res := Normalize(body, resource)
	if res.Shape == ShapeUnrecognized {
		log.Warnw("unrecognized response envelope", "resource", string(resource), "bytes", len(body))
	}
	out := make([]T, 0, len(res.Items))
	for _, item := range res.Items {
		out = append(out, fn(item))
	}
	return out
}
