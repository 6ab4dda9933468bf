package format

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

var (
	reHTMLHeader   = regexp.MustCompile(`^(#{1,6}) (.+)$`)
	reRule         = regexp.MustCompile(`^(-{3,}|\*{3,}|_{3,})$`)
	reBulletItem   = regexp.MustCompile(`^- (.*)$`)
	reNumberedItem = regexp.MustCompile(`^\d+\. (.*)$`)
	reQuoteLine    = regexp.MustCompile(`^> ?(.*)$`)
	reCodeFence    = regexp.MustCompile("^```(\\w*)$")

	reInlineCode = regexp.MustCompile("`([^`]+)`")
	reBold       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	reItalic     = regexp.MustCompile(`\*([^*]+)\*`)
	reLink       = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)
)

// RenderHTML converts normalized markdown to HTML. Headers, emphasis,
// fenced and inline code, blockquotes, links, horizontal rules and
// lists are supported; remaining text is wrapped in paragraphs.
// Block-level elements are never themselves wrapped in paragraphs, and
// links open in a new tab with rel="noopener".
func RenderHTML(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}

	r := htmlRenderer{}
	for _, line := range strings.Split(md, "\n") {
		r.feed(line)
	}
	r.flushAll()

	return strings.Join(r.out, "\n")
}

type htmlRenderer struct {
	out []string

	para  []string
	items []string
	quote []string

	inCode    bool
	codeLang  string
	codeLines []string
	ordered   bool
}

func (r *htmlRenderer) feed(line string) {
	if m := reCodeFence.FindStringSubmatch(line); m != nil {
		if r.inCode {
			r.flushCode()
		} else {
			r.flushPara()
			r.flushList()
			r.flushQuote()
			r.inCode = true
			r.codeLang = m[1]
		}
		return
	}
	if r.inCode {
		r.codeLines = append(r.codeLines, line)
		return
	}

	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		r.flushPara()
		r.flushList()
		r.flushQuote()

	case reHTMLHeader.MatchString(trimmed):
		r.flushPara()
		r.flushList()
		r.flushQuote()
		m := reHTMLHeader.FindStringSubmatch(trimmed)
		level := len(m[1])
		r.out = append(r.out, fmt.Sprintf("<h%d>%s</h%d>", level, renderInline(m[2]), level))

	case reRule.MatchString(trimmed):
		r.flushPara()
		r.flushList()
		r.flushQuote()
		r.out = append(r.out, "<hr>")

	case reQuoteLine.MatchString(trimmed):
		r.flushPara()
		r.flushList()
		m := reQuoteLine.FindStringSubmatch(trimmed)
		r.quote = append(r.quote, m[1])

	case reBulletItem.MatchString(trimmed):
		r.flushPara()
		r.flushQuote()
		if len(r.items) > 0 && r.ordered {
			r.flushList()
		}
		m := reBulletItem.FindStringSubmatch(trimmed)
		r.ordered = false
		r.items = append(r.items, m[1])

	case reNumberedItem.MatchString(trimmed):
		r.flushPara()
		r.flushQuote()
		if len(r.items) > 0 && !r.ordered {
			r.flushList()
		}
		m := reNumberedItem.FindStringSubmatch(trimmed)
		r.ordered = true
		r.items = append(r.items, m[1])

	default:
		r.flushList()
		r.flushQuote()
		r.para = append(r.para, trimmed)
	}
}

func (r *htmlRenderer) flushAll() {
	if r.inCode {
		r.flushCode()
	}
	r.flushPara()
	r.flushList()
	r.flushQuote()
}

func (r *htmlRenderer) flushPara() {
	if len(r.para) == 0 {
		return
	}
	r.out = append(r.out, "<p>"+renderInline(strings.Join(r.para, " "))+"</p>")
	r.para = nil
}

func (r *htmlRenderer) flushList() {
	if len(r.items) == 0 {
		return
	}
	tag := "ul"
	if r.ordered {
		tag = "ol"
	}
	var b strings.Builder
	b.WriteString("<" + tag + ">")
	for _, item := range r.items {
		b.WriteString("<li>" + renderInline(item) + "</li>")
	}
	b.WriteString("</" + tag + ">")
	r.out = append(r.out, b.String())
	r.items = nil
	r.ordered = false
}

func (r *htmlRenderer) flushQuote() {
	if len(r.quote) == 0 {
		return
	}
	r.out = append(r.out, "<blockquote><p>"+renderInline(strings.Join(r.quote, " "))+"</p></blockquote>")
	r.quote = nil
}

func (r *htmlRenderer) flushCode() {
	var b strings.Builder
	b.WriteString("<pre><code")
	if r.codeLang != "" {
		b.WriteString(` class="language-` + r.codeLang + `"`)
	}
	b.WriteString(">")
	b.WriteString(html.EscapeString(strings.Join(r.codeLines, "\n")))
	b.WriteString("</code></pre>")
	r.out = append(r.out, b.String())
	r.inCode = false
	r.codeLang = ""
	r.codeLines = nil
}

// renderInline escapes the line and applies inline markdown: code
// spans, bold, italic, then links.
func renderInline(s string) string {
	s = html.EscapeString(s)
	s = reInlineCode.ReplaceAllString(s, "<code>$1</code>")
	s = reBold.ReplaceAllString(s, "<strong>$1</strong>")
	s = reItalic.ReplaceAllString(s, "<em>$1</em>")
	s = reLink.ReplaceAllString(s, `<a href="$2" target="_blank" rel="noopener">$1</a>`)
	return s
}
