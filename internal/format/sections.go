package format

import (
	"regexp"
	"strings"
)

var reHeader = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// sectionRule classifies a section by keywords in its heading.
// Rules are data, evaluated in order; first match wins.
type sectionRule struct {
	keywords []string
	typ      SectionType
}

var sectionRules = []sectionRule{
	{[]string{"example", "demonstration", "worked"}, SectionExample},
	{[]string{"formula", "equation", "math"}, SectionMath},
	{[]string{"practice", "exercise"}, SectionPractice},
	{[]string{"error", "mistake", "misconception"}, SectionError},
	{[]string{"solution", "answer"}, SectionSolution},
	{[]string{"strength", "did well", "well done"}, SectionStrength},
	{[]string{"improve"}, SectionImprovement},
	{[]string{"feedback", "assessment"}, SectionFeedback},
	{[]string{"approach", "strategy", "method"}, SectionApproach},
	{[]string{"resource", "reference", "reading"}, SectionResource},
	{[]string{"concept", "definition", "overview", "intro", "theory", "background"}, SectionConcept},
}

// classify assigns a section type from its heading. Sections without a
// matching rule (or without a heading) are plain text.
func classify(heading string) SectionType {
	h := strings.ToLower(heading)
	if h == "" {
		return SectionText
	}
	for _, rule := range sectionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(h, kw) {
				return rule.typ
			}
		}
	}
	return SectionText
}

// SplitSections scans cleaned text line by line. A markdown header
// opens a new section and closes the previous one; text before any
// header forms a section with an empty heading. Section order is
// preserved from the source.
func SplitSections(cleaned string) []Section {
	if cleaned == "" {
		return nil
	}

	var sections []Section
	current := Section{}
	var body []string

	flush := func() {
		current.Content = strings.TrimSpace(strings.Join(body, "\n"))
		if current.Heading != "" || current.Content != "" {
			current.Type = classify(current.Heading)
			sections = append(sections, current)
		}
		current = Section{}
		body = body[:0]
	}

	for _, line := range strings.Split(cleaned, "\n") {
		if m := reHeader.FindStringSubmatch(line); m != nil {
			flush()
			current.Heading = strings.TrimSpace(m[2])
			continue
		}
		body = append(body, line)
	}
	flush()

	return sections
}
