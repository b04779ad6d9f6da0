// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize wraps bluemonday with the two policies the site
// needs: a UGC policy for editable page fragments (formatting survives,
// scripts do not) and a strict policy for contact-form fields that are
// interpolated into outbound email HTML.
package htmlsanitize

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicy    = newUGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

func newUGCPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	// Editable fragments may carry simple table layouts.
	p.AllowTables()
	return p
}

// Sanitize cleans HTML destined for editable page content. Safe formatting
// (paragraphs, emphasis, links, tables) is preserved; scripts, event
// handlers, and javascript: URLs are stripped.
func Sanitize(s string) string {
	return ugcPolicy.Sanitize(s)
}

// StripTags removes all markup and returns the remaining plain text.
// bluemonday entity-escapes what it keeps; the escaping is undone here so
// the result is real text, not HTML. Callers embedding it in HTML escape
// it themselves (html/template does). Used on contact-form fields before
// they are rendered into the notification email.
func StripTags(s string) string {
	return html.UnescapeString(strictPolicy.Sanitize(s))
}
