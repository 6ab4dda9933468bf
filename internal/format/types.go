// Package format turns raw provider output into a structured,
// multi-format answer: cleaned markdown reassembled for an audience,
// rendered HTML, plain text, and extracted structure. It never fails
// outward — parsing problems degrade to a single untitled section so
// callers always receive at least PlainText and RawText.
package format

// Mode is the answer's rhetorical purpose. It drives section
// reassembly order.
type Mode string

const (
	ModeTeach       Mode = "teach"
	ModeQuestion    Mode = "question"
	ModeHint        Mode = "hint"
	ModeReview      Mode = "review"
	ModeExplanation Mode = "explanation"
)

// ParseMode normalizes a mode string, defaulting to explanation.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeTeach, ModeQuestion, ModeHint, ModeReview, ModeExplanation:
		return Mode(s)
	}
	return ModeExplanation
}

// SectionType is the semantic class of a section, derived from its
// heading.
type SectionType string

const (
	SectionConcept     SectionType = "concept"
	SectionMath        SectionType = "math"
	SectionExample     SectionType = "example"
	SectionPractice    SectionType = "practice"
	SectionResource    SectionType = "resource"
	SectionSolution    SectionType = "solution"
	SectionError       SectionType = "error"
	SectionStrength    SectionType = "strength"
	SectionImprovement SectionType = "improvement"
	SectionFeedback    SectionType = "feedback"
	SectionApproach    SectionType = "approach"
	SectionText        SectionType = "text"
)

// Section is a contiguous block of answer text under one (possibly
// empty) heading. Order within a slice reflects source document order.
type Section struct {
	Heading string
	Content string
	Type    SectionType
}

// Structure is the extracted skeleton of an answer.
type Structure struct {
	Title        string
	Summary      string
	KeyTakeaways []string // capped at 5
	NextSteps    []string // capped at 5
}

// Answer is the terminal artifact returned to the caller.
// RawText is always the unmodified provider output, even when
// formatting partially failed.
type Answer struct {
	Markdown  string
	HTML      string
	PlainText string
	Structure Structure
	RawText   string
}
