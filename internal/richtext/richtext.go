// Package richtext sanitizes the rich-text HTML the admin editor produces
// before it is rendered anywhere.
package richtext

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicy   = bluemonday.UGCPolicy()
	strictPlain = bluemonday.StrictPolicy()
)

// Sanitize keeps the user-generated-content subset of HTML (formatting,
// links, lists) and strips everything else.
func Sanitize(html string) string {
	return ugcPolicy.Sanitize(html)
}

// Plain strips all markup, for terminal output and plain-text summaries.
func Plain(html string) string {
	return strings.TrimSpace(strictPlain.Sanitize(html))
}
