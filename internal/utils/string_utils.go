package utils

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	reScript = regexp.MustCompile(`(?i)<script[^>]*>[\s\S]*?</script>`)
	reStyle  = regexp.MustCompile(`(?i)<style[^>]*>[\s\S]*?</style>`)
)

// SanitizeText strips HTML tags, script/style content, and decodes entities.
// Classifier output is untrusted free text and goes through here before it
// is grouped or rendered.
func SanitizeText(s string) string {
	// 1. Decode HTML entities first (e.g. &lt; -> <) so tags are recognized
	s = html.UnescapeString(s)

	// 2. Remove script and style blocks content
	s = reScript.ReplaceAllString(s, "")
	s = reStyle.ReplaceAllString(s, "")

	// 3. Strip tags using bluemonday
	p := bluemonday.StripTagsPolicy()
	s = p.Sanitize(s)

	// 4. Decode entities again, bluemonday may have re-escaped them
	s = html.UnescapeString(s)

	// 5. Collapse extra whitespace
	s = strings.Join(strings.Fields(s), " ")

	return strings.ToValidUTF8(s, "")
}

// NormalizeTopic produces the canonical form of a topic label used for
// grouping and for sensitive-topic matching: sanitized and lowercased.
func NormalizeTopic(s string) string {
	return strings.ToLower(SanitizeText(s))
}
