package format

import (
	"regexp"
	"strings"
)

const (
	summaryLimit = 200
	listCap      = 5
)

var (
	takeawayHeadings = []string{"takeaway", "key point", "summary"}
	nextStepHeadings = []string{"next step", "further", "practice"}

	reListItem    = regexp.MustCompile(`(?m)^[ \t]*(?:-|\d+\.) +(.+)$`)
	reSentenceEnd = regexp.MustCompile(`[.!?]`)
)

// ExtractStructure pulls the answer skeleton out of parsed sections:
// title, a short summary, and capped takeaway/next-step lists.
func ExtractStructure(sections []Section) Structure {
	var st Structure

	for _, s := range sections {
		if s.Heading != "" {
			st.Title = s.Heading
			break
		}
	}

	for _, s := range sections {
		if s.Content != "" {
			st.Summary = truncate(s.Content, summaryLimit)
			break
		}
	}

	st.KeyTakeaways = cap5(bulletsUnder(sections, takeawayHeadings))
	if len(st.KeyTakeaways) == 0 {
		st.KeyTakeaways = cap5(conceptSentences(sections))
	}
	st.NextSteps = cap5(bulletsUnder(sections, nextStepHeadings))

	return st
}

// bulletsUnder collects list items from the first section whose heading
// contains one of the given keywords.
func bulletsUnder(sections []Section, keywords []string) []string {
	for _, s := range sections {
		h := strings.ToLower(s.Heading)
		if h == "" {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(h, kw) {
				return listItems(s.Content)
			}
		}
	}
	return nil
}

func listItems(content string) []string {
	var items []string
	for _, m := range reListItem.FindAllStringSubmatch(content, -1) {
		item := strings.TrimSpace(m[1])
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// conceptSentences falls back to the first substantial sentences of a
// concept section when no takeaway list exists.
func conceptSentences(sections []Section) []string {
	for _, s := range sections {
		if s.Type != SectionConcept || s.Content == "" {
			continue
		}
		var out []string
		for _, sentence := range splitSentences(s.Content) {
			if len(sentence) > 20 {
				out = append(out, sentence)
			}
			if len(out) == 3 {
				break
			}
		}
		return out
	}
	return nil
}

func splitSentences(text string) []string {
	text = strings.Join(strings.Fields(text), " ")
	var sentences []string
	start := 0
	for _, loc := range reSentenceEnd.FindAllStringIndex(text, -1) {
		s := strings.TrimSpace(text[start:loc[1]])
		if s != "" {
			sentences = append(sentences, s)
		}
		start = loc[1]
	}
	if rest := strings.TrimSpace(text[start:]); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit]))
}

func cap5(items []string) []string {
	if len(items) > listCap {
		return items[:listCap]
	}
	return items
}
