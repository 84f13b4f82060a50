package utils

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reScript     = regexp.MustCompile(`(?i)<script[^>]*>[\s\S]*?</script>`)
	reStyle      = regexp.MustCompile(`(?i)<style[^>]*>[\s\S]*?</style>`)
	reSlugStrip  = regexp.MustCompile(`[^a-z0-9\s-]`)
	reWhitespace = regexp.MustCompile(`\s+`)
	reDashes     = regexp.MustCompile(`-+`)

	stripTags = bluemonday.StrictPolicy()
)

// SanitizeHTML strips HTML tags, script/style content, and decodes entities.
// Line breaks are kept so multi-line notes survive.
func SanitizeHTML(s string) string {
	// Decode first so escaped tags are recognised
	s = html.UnescapeString(s)

	s = reScript.ReplaceAllString(s, "")
	s = reStyle.ReplaceAllString(s, "")
	s = stripTags.Sanitize(s)

	// bluemonday escapes what it keeps; we store plain text
	s = html.UnescapeString(s)

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// RemoveAccents folds accented letters to their base form (é -> e).
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Slug turns a company name into its partner URL segment.
func Slug(name string) string {
	s := strings.ToLower(RemoveAccents(name))
	s = reSlugStrip.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = reWhitespace.ReplaceAllString(s, "-")
	s = reDashes.ReplaceAllString(s, "-")
	return s
}

// CEOSlug is the partner slug suffixed with the lower-cased counselor id.
func CEOSlug(name, counselorID string) string {
	return Slug(name) + "-" + strings.ToLower(counselorID)
}
