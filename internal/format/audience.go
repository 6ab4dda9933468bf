package format

import (
	"fmt"
	"strings"
)

const hintReminder = "**Remember:** Work through the hints yourself before asking for the full solution — the struggle is where the learning happens.\n\n**Next Step:** Attempt the problem using the hints above, then come back if you're still stuck."

// Assemble rebuilds sections into audience-specific markdown.
func Assemble(sections []Section, mode Mode) string {
	switch mode {
	case ModeTeach:
		return assembleTeach(sections)
	case ModeQuestion:
		return assembleQuestion(sections)
	case ModeHint:
		return assembleHint(sections)
	case ModeReview:
		return assembleReview(sections)
	default:
		return assembleExplanation(sections)
	}
}

// assembleTeach orders a lesson: concepts, mathematical framework,
// worked examples, everything uncategorized, practice problems, then
// resources. Empty groups are omitted.
func assembleTeach(sections []Section) string {
	byType := make(map[SectionType][]Section)
	var others []Section
	for _, s := range sections {
		switch s.Type {
		case SectionConcept, SectionMath, SectionExample, SectionPractice, SectionResource:
			byType[s.Type] = append(byType[s.Type], s)
		default:
			others = append(others, s)
		}
	}

	var b strings.Builder
	for _, s := range byType[SectionConcept] {
		writeSection(&b, s, 2)
	}
	writeGroup(&b, "Mathematical Framework", byType[SectionMath])
	writeExamples(&b, byType[SectionExample])
	for _, s := range others {
		writeSection(&b, s, 2)
	}
	writeGroup(&b, "Practice Problems", byType[SectionPractice])
	writeGroup(&b, "Further Resources", byType[SectionResource])

	return strings.TrimSpace(b.String())
}

// assembleQuestion promotes the solution-like section to an "Answer"
// heading at the top; all remaining sections follow in original order.
func assembleQuestion(sections []Section) string {
	answerIdx := -1
	for i, s := range sections {
		if s.Type == SectionSolution {
			answerIdx = i
			break
		}
	}

	var b strings.Builder
	if answerIdx >= 0 {
		b.WriteString("## Answer\n\n")
		if sections[answerIdx].Content != "" {
			b.WriteString(sections[answerIdx].Content)
			b.WriteString("\n\n")
		}
	}
	for i, s := range sections {
		if i == answerIdx {
			continue
		}
		writeSection(&b, s, 2)
	}

	return strings.TrimSpace(b.String())
}

// assembleHint scaffolds guidance without giving the answer away:
// problem restatement, key concepts, suggested approach, step-by-step
// hints, then everything else, closed by a fixed self-attempt reminder.
func assembleHint(sections []Section) string {
	var (
		understanding []Section
		concepts      []Section
		approaches    []Section
		steps         []Section
		rest          []Section
	)
	for i, s := range sections {
		h := strings.ToLower(s.Heading)
		switch {
		case strings.Contains(h, "step") || strings.Contains(h, "hint"):
			steps = append(steps, s)
		case s.Type == SectionConcept:
			concepts = append(concepts, s)
		case s.Type == SectionApproach:
			approaches = append(approaches, s)
		case i == 0 && s.Heading == "":
			understanding = append(understanding, s)
		default:
			rest = append(rest, s)
		}
	}

	var b strings.Builder
	writeGroup(&b, "Understanding the Problem", understanding)
	writeGroup(&b, "Key Concepts Involved", concepts)
	writeGroup(&b, "Suggested Approach", approaches)
	writeGroup(&b, "Step-by-Step Hints", steps)
	for _, s := range rest {
		writeSection(&b, s, 2)
	}
	b.WriteString("---\n\n")
	b.WriteString(hintReminder)
	b.WriteString("\n\n")

	return strings.TrimSpace(b.String())
}

// assembleReview scaffolds work feedback: overall assessment,
// strengths, errors, the correct solution, how to improve, then
// everything else.
func assembleReview(sections []Section) string {
	byType := make(map[SectionType][]Section)
	var rest []Section
	for _, s := range sections {
		switch s.Type {
		case SectionFeedback, SectionStrength, SectionError, SectionSolution, SectionImprovement:
			byType[s.Type] = append(byType[s.Type], s)
		default:
			rest = append(rest, s)
		}
	}

	// Without an explicit assessment section the leading untitled text
	// serves as the overall assessment.
	assessment := byType[SectionFeedback]
	if len(assessment) == 0 && len(rest) > 0 && rest[0].Heading == "" {
		assessment = rest[:1]
		rest = rest[1:]
	}

	var b strings.Builder
	writeGroup(&b, "Overall Assessment", assessment)
	writeGroup(&b, "✅ What You Did Well", byType[SectionStrength])
	writeGroup(&b, "❌ Errors Found", byType[SectionError])
	writeGroup(&b, "Correct Solution", byType[SectionSolution])
	writeGroup(&b, "How to Improve", byType[SectionImprovement])
	for _, s := range rest {
		writeSection(&b, s, 2)
	}

	return strings.TrimSpace(b.String())
}

// assembleExplanation keeps the original order, re-headed at a uniform
// level.
func assembleExplanation(sections []Section) string {
	var b strings.Builder
	for _, s := range sections {
		writeSection(&b, s, 2)
	}
	return strings.TrimSpace(b.String())
}

// writeSection emits one section at the given heading level.
func writeSection(b *strings.Builder, s Section, level int) {
	if s.Heading != "" {
		b.WriteString(strings.Repeat("#", level))
		b.WriteString(" ")
		b.WriteString(s.Heading)
		b.WriteString("\n\n")
	}
	if s.Content != "" {
		b.WriteString(s.Content)
		b.WriteString("\n\n")
	}
}

// writeGroup emits a synthesized level-2 heading wrapping the given
// sections, their own headings demoted one level. Empty groups are
// omitted.
func writeGroup(b *strings.Builder, heading string, sections []Section) {
	if len(sections) == 0 {
		return
	}
	b.WriteString("## ")
	b.WriteString(heading)
	b.WriteString("\n\n")
	for _, s := range sections {
		writeSection(b, s, 3)
	}
}

// writeExamples wraps example sections in a "Worked Examples" group,
// numbering them when there is more than one.
func writeExamples(b *strings.Builder, examples []Section) {
	if len(examples) == 0 {
		return
	}
	b.WriteString("## Worked Examples\n\n")
	for i, s := range examples {
		if len(examples) > 1 {
			if s.Heading != "" {
				s.Heading = fmt.Sprintf("Example %d: %s", i+1, s.Heading)
			} else {
				s.Heading = fmt.Sprintf("Example %d", i+1)
			}
		}
		writeSection(b, s, 3)
	}
}
