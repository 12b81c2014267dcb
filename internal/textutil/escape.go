package textutil

import (
	"fmt"
	"reflect"
	"strings"
)

// markupReplacer handles the five markup-significant characters. The ampersand
// comes first so entities produced by later pairs are never re-escaped.
var markupReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape converts value to markup-safe text. Nil values (including typed nil
// pointers) become the empty string; anything else is stringified first.
func Escape(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return EscapeString(v)
	case fmt.Stringer:
		if isNil(value) {
			return ""
		}
		return EscapeString(v.String())
	}
	if isNil(value) {
		return ""
	}
	return EscapeString(fmt.Sprint(value))
}

// EscapeString escapes s for inclusion in element content or quoted attributes.
func EscapeString(s string) string {
	if s == "" {
		return ""
	}
	return markupReplacer.Replace(s)
}

func isNil(value any) bool {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
