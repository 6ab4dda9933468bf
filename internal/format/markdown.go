package format

import (
	"regexp"
	"strings"
)

var (
	// The marker must not be the start of a horizontal rule.
	reBulletSpacing  = regexp.MustCompile(`(?m)^([ \t]*)-([^-\s])`)
	reEmptyBullet    = regexp.MustCompile(`(?m)^[ \t]*(-|\d+\.)[ \t]*$\n?`)
	reNormHeader     = regexp.MustCompile(`(?m)^(#{1,6})[ \t]+`)
	reTripleNewlines = regexp.MustCompile(`\n{3,}`)
)

// NormalizeMarkdown tidies assembled markdown: consistent header and
// list-marker spacing, no empty list items, no runs of blank lines,
// and exactly one trailing newline.
func NormalizeMarkdown(md string) string {
	if md == "" {
		return ""
	}

	s := reNormHeader.ReplaceAllString(md, "$1 ")
	s = reBulletSpacing.ReplaceAllString(s, "$1- $2")
	s = reEmptyBullet.ReplaceAllString(s, "")
	s = reTripleNewlines.ReplaceAllString(s, "\n\n")
	s = strings.TrimSpace(s)

	return s + "\n"
}
