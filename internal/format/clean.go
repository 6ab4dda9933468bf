package format

import (
	"regexp"
	"strings"
)

var (
	reExcessNewlines  = regexp.MustCompile(`\n{3,}`)
	reTrailingSpace   = regexp.MustCompile(`(?m)[ \t]+$`)
	reExcessEmphasis  = regexp.MustCompile(`\*{3,}`)
	reUnicodeBullets  = regexp.MustCompile(`(?m)^([ \t]*)[•◦○][ \t]*`)
	reNumberedSpacing = regexp.MustCompile(`(?m)^([ \t]*\d+)\.[ \t]*(\S)`)
	reHTMLComments    = regexp.MustCompile(`(?s)<!--.*?-->`)
	reHeaderSpacing   = regexp.MustCompile(`(?m)^(#{1,6})([^#\s])`)
)

// Clean normalizes raw provider text before section parsing:
// collapses runs of blank lines, strips trailing whitespace, tames
// repeated emphasis markers, converts unicode bullets to "-",
// normalizes numbered-list and header spacing, and drops HTML comments.
func Clean(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")

	s = reHTMLComments.ReplaceAllString(s, "")
	s = reTrailingSpace.ReplaceAllString(s, "")
	s = reExcessEmphasis.ReplaceAllString(s, "**")
	s = reUnicodeBullets.ReplaceAllString(s, "${1}- ")
	s = reNumberedSpacing.ReplaceAllString(s, "${1}. ${2}")
	s = reHeaderSpacing.ReplaceAllString(s, "${1} ${2}")
	s = reExcessNewlines.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}
