package format

import (
	"strings"
)

// Format runs the full pipeline: clean, split into sections, reassemble
// for the audience, normalize markdown, render HTML and plain text, and
// extract structure. It never fails: internal parsing panics degrade to
// treating the whole input as one untitled section, and RawText always
// carries the unmodified input.
func Format(rawText string, mode Mode) (ans Answer) {
	ans.RawText = rawText
	if strings.TrimSpace(rawText) == "" {
		return ans
	}

	defer func() {
		if r := recover(); r != nil {
			ans = degraded(rawText)
		}
	}()

	cleaned := Clean(rawText)
	sections := SplitSections(cleaned)

	ans.Markdown = NormalizeMarkdown(Assemble(sections, mode))
	ans.HTML = RenderHTML(ans.Markdown)
	ans.PlainText = RenderPlain(ans.Markdown)
	ans.Structure = ExtractStructure(sections)

	return ans
}

// degraded treats the whole input as one untitled plain-text section.
func degraded(rawText string) Answer {
	text := strings.TrimSpace(rawText)
	return Answer{
		Markdown:  text + "\n",
		PlainText: text,
		RawText:   rawText,
	}
}
