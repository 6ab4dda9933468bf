package format

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractStructure(t *testing.T) {
	sections := SplitSections(
		"# Photosynthesis\n\nPlants convert light into chemical energy.\n\n# Key Takeaways\n\n- light reactions make ATP\n- the Calvin cycle fixes carbon\n\n# Next Steps\n\n- draw the chloroplast\n1. review the light reactions",
	)
	st := ExtractStructure(sections)

	if st.Title != "Photosynthesis" {
		t.Fatalf("Title = %q, want %q", st.Title, "Photosynthesis")
	}
	if st.Summary != "Plants convert light into chemical energy." {
		t.Fatalf("Summary = %q", st.Summary)
	}
	wantTakeaways := []string{"light reactions make ATP", "the Calvin cycle fixes carbon"}
	if !reflect.DeepEqual(st.KeyTakeaways, wantTakeaways) {
		t.Fatalf("KeyTakeaways = %v, want %v", st.KeyTakeaways, wantTakeaways)
	}
	wantSteps := []string{"draw the chloroplast", "review the light reactions"}
	if !reflect.DeepEqual(st.NextSteps, wantSteps) {
		t.Fatalf("NextSteps = %v, want %v", st.NextSteps, wantSteps)
	}
}

func TestExtractStructure_CapsListsAtFive(t *testing.T) {
	var b strings.Builder
	b.WriteString("# Summary\n\n")
	for i := range 7 {
		b.WriteString("- takeaway number ")
		b.WriteByte('1' + byte(i))
		b.WriteString("\n")
	}
	st := ExtractStructure(SplitSections(b.String()))

	if len(st.KeyTakeaways) != 5 {
		t.Fatalf("KeyTakeaways length = %d, want 5", len(st.KeyTakeaways))
	}
	if st.KeyTakeaways[0] != "takeaway number 1" || st.KeyTakeaways[4] != "takeaway number 5" {
		t.Fatalf("capping dropped the wrong items: %v", st.KeyTakeaways)
	}
}

func TestExtractStructure_ConceptSentenceFallback(t *testing.T) {
	sections := SplitSections(
		"# Key Concepts\n\nA derivative measures instantaneous rate of change. It is the slope of the tangent line. Short. The limit definition formalizes this idea precisely. Another long sentence that should not appear in output.",
	)
	st := ExtractStructure(sections)

	want := []string{
		"A derivative measures instantaneous rate of change.",
		"It is the slope of the tangent line.",
		"The limit definition formalizes this idea precisely.",
	}
	if !reflect.DeepEqual(st.KeyTakeaways, want) {
		t.Fatalf("KeyTakeaways = %v, want %v", st.KeyTakeaways, want)
	}
}

func TestExtractStructure_SummaryTruncatedAt200Runes(t *testing.T) {
	long := strings.Repeat("é", 300)
	st := ExtractStructure(SplitSections("# Title\n\n" + long))

	if got := len([]rune(st.Summary)); got != 200 {
		t.Fatalf("Summary rune length = %d, want 200", got)
	}
}

func TestExtractStructure_Empty(t *testing.T) {
	st := ExtractStructure(nil)
	if st.Title != "" || st.Summary != "" || st.KeyTakeaways != nil || st.NextSteps != nil {
		t.Fatalf("empty input should yield zero structure: %+v", st)
	}
}

func TestExtractStructure_TitleFromFirstHeadedSection(t *testing.T) {
	sections := SplitSections("untitled intro text first\n\n# Real Title\n\nBody.")
	st := ExtractStructure(sections)

	if st.Title != "Real Title" {
		t.Fatalf("Title = %q, want %q", st.Title, "Real Title")
	}
	// Summary still comes from the first section with content.
	if st.Summary != "untitled intro text first" {
		t.Fatalf("Summary = %q", st.Summary)
	}
}
