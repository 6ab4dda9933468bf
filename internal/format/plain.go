package format

import (
	"regexp"
	"strings"
)

var (
	rePlainHeader = regexp.MustCompile(`(?m)^#{1,6} `)
	rePlainQuote  = regexp.MustCompile(`(?m)^> ?`)
	rePlainBullet = regexp.MustCompile(`(?m)^([ \t]*)- `)
	rePlainFence  = regexp.MustCompile("(?m)^```\\w*$\n?")
	rePlainBold   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	rePlainItalic = regexp.MustCompile(`\*([^*]+)\*`)
	rePlainCode   = regexp.MustCompile("`([^`]+)`")
	rePlainLink   = regexp.MustCompile(`\[([^\]]+)\]\([^)\s]+\)`)
	rePlainRule   = regexp.MustCompile(`(?m)^(-{3,}|\*{3,}|_{3,})$\n?`)
	rePlainHash   = regexp.MustCompile(`[#*` + "`" + `]`)
)

// RenderPlain strips all markdown syntax, keeping list content as
// "• "-prefixed lines and collapsing excess blank lines.
func RenderPlain(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}

	s := rePlainFence.ReplaceAllString(md, "")
	s = rePlainRule.ReplaceAllString(s, "")
	s = rePlainHeader.ReplaceAllString(s, "")
	s = rePlainQuote.ReplaceAllString(s, "")
	s = rePlainLink.ReplaceAllString(s, "$1")
	s = rePlainBold.ReplaceAllString(s, "$1")
	s = rePlainItalic.ReplaceAllString(s, "$1")
	s = rePlainCode.ReplaceAllString(s, "$1")
	s = rePlainBullet.ReplaceAllString(s, "${1}• ")
	// Stray markers left by unbalanced emphasis or fences.
	s = rePlainHash.ReplaceAllString(s, "")
	s = reTripleNewlines.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}
