package content

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	summaryPolicy = bluemonday.StrictPolicy()
	spacesRe      = regexp.MustCompile(`\s+`)
)

// CleanSummary strips markup and entity escaping from a feed summary and
// collapses whitespace. Feed summaries routinely embed tracking pixels,
// inline styles and double-escaped entities.
func CleanSummary(summary string) string {
	text := summaryPolicy.Sanitize(summary)
	text = html.UnescapeString(text)
	text = spacesRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
