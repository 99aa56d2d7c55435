// Package htmlsanitize cleans text that arrives from outside the app before
// it is placed into rendered markup.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes every element and attribute.
var strict = bluemonday.StrictPolicy()

// PlainText strips all markup from s and returns unescaped text, ready to be
// escaped exactly once by html/template.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
