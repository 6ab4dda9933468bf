package format

import (
	"strings"
	"testing"
)

func TestAssembleTeach_OrdersLesson(t *testing.T) {
	sections := SplitSections(
		"# Practice Problems\n\nTry these.\n\n# Key Concepts\n\nA limit describes behavior.\n\n# Worked Example\n\nCompute the limit.\n\n# Further Reading\n\n- a textbook",
	)
	out := Assemble(sections, ModeTeach)

	concepts := strings.Index(out, "Key Concepts")
	examples := strings.Index(out, "## Worked Examples")
	practice := strings.Index(out, "## Practice Problems")
	resources := strings.Index(out, "## Further Resources")
	for name, idx := range map[string]int{
		"concepts": concepts, "examples": examples, "practice": practice, "resources": resources,
	} {
		if idx < 0 {
			t.Fatalf("%s group missing from teach output:\n%s", name, out)
		}
	}
	if !(concepts < examples && examples < practice && practice < resources) {
		t.Fatalf("teach ordering wrong (concepts=%d examples=%d practice=%d resources=%d):\n%s",
			concepts, examples, practice, resources, out)
	}
}

func TestAssembleTeach_NumbersMultipleExamples(t *testing.T) {
	sections := SplitSections("# Example One\n\nFirst.\n\n# Second Example\n\nSecond.")
	out := Assemble(sections, ModeTeach)

	if !strings.Contains(out, "Example 1: Example One") || !strings.Contains(out, "Example 2: Second Example") {
		t.Fatalf("examples not numbered:\n%s", out)
	}
}

func TestAssembleTeach_SingleExampleUnnumbered(t *testing.T) {
	sections := SplitSections("# Worked Example\n\nOnly one.")
	out := Assemble(sections, ModeTeach)

	if strings.Contains(out, "Example 1") {
		t.Fatalf("single example should not be numbered:\n%s", out)
	}
	if !strings.Contains(out, "### Worked Example") {
		t.Fatalf("example heading missing:\n%s", out)
	}
}

func TestAssembleQuestion_PromotesSolution(t *testing.T) {
	sections := SplitSections("# Background\n\nSome context.\n\n# Solution\n\nx equals 4.\n\n# Check\n\nPlug it back in.")
	out := Assemble(sections, ModeQuestion)

	if !strings.HasPrefix(out, "## Answer\n\nx equals 4.") {
		t.Fatalf("solution not promoted to top:\n%s", out)
	}
	// Remaining sections keep their original order.
	if strings.Index(out, "Background") > strings.Index(out, "Check") {
		t.Fatalf("remaining sections out of order:\n%s", out)
	}
}

func TestAssembleQuestion_NoSolutionSection(t *testing.T) {
	sections := SplitSections("# Background\n\nNo solution here.")
	out := Assemble(sections, ModeQuestion)

	if strings.Contains(out, "## Answer") {
		t.Fatalf("Answer heading fabricated without a solution section:\n%s", out)
	}
}

func TestAssembleHint_ScaffoldsAndAppendsReminder(t *testing.T) {
	sections := SplitSections(
		"You need to isolate the variable.\n\n# Key Concepts\n\nInverse operations.\n\n# Step 1\n\nSubtract 3.\n\n# Step 2\n\nDivide by 2.",
	)
	out := Assemble(sections, ModeHint)

	for _, heading := range []string{
		"## Understanding the Problem",
		"## Key Concepts Involved",
		"## Step-by-Step Hints",
	} {
		if !strings.Contains(out, heading) {
			t.Fatalf("hint output missing %q:\n%s", heading, out)
		}
	}
	if !strings.Contains(out, "**Remember:**") || !strings.Contains(out, "**Next Step:**") {
		t.Fatalf("hint reminder missing:\n%s", out)
	}
	if !strings.Contains(out, "---") {
		t.Fatalf("reminder separator missing:\n%s", out)
	}
}

func TestAssembleHint_ReminderAlwaysPresent(t *testing.T) {
	out := Assemble(SplitSections("just one plain hint"), ModeHint)
	if !strings.Contains(out, "**Remember:**") {
		t.Fatalf("reminder missing for minimal input:\n%s", out)
	}
}

func TestAssembleReview_GroupsFeedback(t *testing.T) {
	sections := SplitSections(
		"# Strengths\n\nClear setup.\n\n# Errors Found\n\nSign mistake in step 2.\n\n# Correct Solution\n\nx equals 7.\n\n# How to Improve\n\nCheck signs.",
	)
	out := Assemble(sections, ModeReview)

	strengths := strings.Index(out, "## ✅ What You Did Well")
	errs := strings.Index(out, "## ❌ Errors Found")
	solution := strings.Index(out, "## Correct Solution")
	improve := strings.Index(out, "## How to Improve")
	if strengths < 0 || errs < 0 || solution < 0 || improve < 0 {
		t.Fatalf("review groups missing:\n%s", out)
	}
	if !(strengths < errs && errs < solution && solution < improve) {
		t.Fatalf("review ordering wrong:\n%s", out)
	}
}

func TestAssembleReview_LeadingTextBecomesAssessment(t *testing.T) {
	sections := SplitSections("Good attempt overall.\n\n# Errors Found\n\nArithmetic slip.")
	out := Assemble(sections, ModeReview)

	assessment := strings.Index(out, "## Overall Assessment")
	if assessment < 0 {
		t.Fatalf("leading text not promoted to assessment:\n%s", out)
	}
	if !strings.Contains(out, "Good attempt overall.") {
		t.Fatalf("assessment content lost:\n%s", out)
	}
	if assessment > strings.Index(out, "## ❌ Errors Found") {
		t.Fatalf("assessment should lead:\n%s", out)
	}
}

func TestAssembleExplanation_PreservesOrder(t *testing.T) {
	sections := SplitSections("# Zeta\n\nLast topic first.\n\n# Alpha\n\nSecond topic.")
	out := Assemble(sections, ModeExplanation)

	if strings.Index(out, "Zeta") > strings.Index(out, "Alpha") {
		t.Fatalf("explanation reordered sections:\n%s", out)
	}
	if !strings.Contains(out, "## Zeta") || !strings.Contains(out, "## Alpha") {
		t.Fatalf("headings not normalized to level 2:\n%s", out)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"teach", ModeTeach},
		{"question", ModeQuestion},
		{"hint", ModeHint},
		{"review", ModeReview},
		{"explanation", ModeExplanation},
		{"", ModeExplanation},
		{"nonsense", ModeExplanation},
	}
	for _, tt := range tests {
		if got := ParseMode(tt.in); got != tt.want {
			t.Fatalf("ParseMode(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
