// Package localized models text that may carry one string per UI language.
package localized

import (
	"github.com/tidwall/gjson"

	"github.com/kuberbiotech/kuber-web/internal/language"
)

type entry struct {
	lang  string
	value string
}

// Text is either a plain string or an ordered language -> string mapping.
// The zero value resolves to "".
type Text struct {
	plain   string
	entries []entry
}

// Plain returns a Text that ignores the requested language.
func Plain(s string) Text { return Text{plain: s} }

// Map returns a Text from language/value pairs, in the given order.
func Map(pairs ...string) Text {
	t := Text{}
	for i := 0; i+1 < len(pairs); i += 2 {
		t.entries = append(t.entries, entry{lang: pairs[i], value: pairs[i+1]})
	}
	return t
}

// IsMap reports whether t carries per-language values.
func (t Text) IsMap() bool { return t.entries != nil }

// Value returns the value stored under lang.
func (t Text) Value(lang string) (string, bool) {
	for _, e := range t.entries {
		if e.lang == lang {
			return e.value, true
		}
	}
	return "", false
}

// Resolve picks the display string for lang: the lang value, then English,
// then the first non-empty value in document order, then "".
func (t Text) Resolve(lang language.Lang) string {
	if !t.IsMap() {
		return t.plain
	}
	if v, ok := t.Value(string(lang)); ok && v != "" {
		return v
	}
	if v, ok := t.Value(string(language.English)); ok && v != "" {
		return v
	}
	for _, e := range t.entries {
		if e.value != "" {
			return e.value
		}
	}
	return ""
}

// English returns the canonical English form used for comparisons: the plain
// string, or the "en" value of a mapping.
func (t Text) English() string {
	if !t.IsMap() {
		return t.plain
	}
	v, _ := t.Value(string(language.English))
	return v
}

// UnmarshalJSON accepts a string or an object of strings. Any other shape
// decodes to the empty Text rather than failing.
func (t *Text) UnmarshalJSON(data []byte) error {
	*t = FromResult(gjson.ParseBytes(data))
	return nil
}

// FromResult builds a Text from an already parsed JSON value.
func FromResult(r gjson.Result) Text {
	switch {
	case r.Type == gjson.String:
		return Plain(r.String())
	case r.IsObject():
		t := Text{entries: []entry{}}
		r.ForEach(func(key, value gjson.Result) bool {
			if value.Type == gjson.String {
				t.entries = append(t.entries, entry{lang: key.String(), value: value.String()})
			}
			return true
		})
		return t
	default:
		return Text{}
	}
}
