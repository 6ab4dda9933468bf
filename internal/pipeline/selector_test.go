package pipeline

import (
	"testing"
)

func TestSelectModel_KeywordRules(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     Tier
	}{
		{"debug goes expert", "My loop won't terminate, help me debug it", TierExpert},
		{"algorithm goes expert", "algorithm", TierExpert},
		{"algorithm beats length rule", "Dijkstra algorithm?", TierExpert},
		{"code keyword", "Can you review this code for my assignment please, it is long", TierExpert},
		{"python keyword", "I wrote a python script that fails on line 3", TierExpert},
		{"explain goes smart", "Please explain photosynthesis to me in detail for my exam", TierSmart},
		{"why goes smart", "Why does ice float on top of liquid water in a glass", TierSmart},
		{"compare goes smart", "Compare mitosis and meiosis across all of their phases", TierSmart},
		{"what goes balanced", "what is the capital of France and its population today exactly", TierBalanced},
		{"define goes balanced", "Define osmosis for a grade eight science class assignment due", TierBalanced},
		{"coding beats reasoning", "explain this function", TierExpert},
		{"reasoning beats descriptive", "explain what osmosis is", TierSmart},
		{"short unmatched goes fast", "Capital of France?", TierFast},
		{"long unmatched goes balanced", "I have been wondering for a very long time about the capital of France", TierBalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectModel(tt.question)
			if got.Tier != tt.want {
				t.Fatalf("SelectModel(%q).Tier = %s, want %s", tt.question, got.Tier, tt.want)
			}
		})
	}
}

func TestSelectModel_CaseInsensitive(t *testing.T) {
	lower := SelectModel("help me debug this")
	upper := SelectModel("HELP ME DEBUG THIS")
	if lower != upper {
		t.Fatalf("selection differs by case: %+v vs %+v", lower, upper)
	}
	if lower.Tier != TierExpert {
		t.Fatalf("expected expert tier, got %s", lower.Tier)
	}
}

func TestSelectModel_Deterministic(t *testing.T) {
	q := "Why do heavier objects not fall faster than lighter ones?"
	first := SelectModel(q)
	for range 10 {
		if got := SelectModel(q); got != first {
			t.Fatalf("selection not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestSelectModel_AlwaysReturnsModel(t *testing.T) {
	for _, q := range []string{"", "   ", "x", "what what what"} {
		sel := SelectModel(q)
		if sel.Model == "" || sel.Tier == "" || sel.Label == "" {
			t.Fatalf("SelectModel(%q) returned incomplete selection: %+v", q, sel)
		}
	}
}

func TestSelectModel_ShortQuestionBoundary(t *testing.T) {
	// Nine tokens, no keywords: fast.
	nine := "one two three four five six seven eight nine"
	if got := SelectModel(nine).Tier; got != TierFast {
		t.Fatalf("nine tokens: got %s, want %s", got, TierFast)
	}
	// Ten tokens, no keywords: balanced default.
	ten := nine + " ten"
	if got := SelectModel(ten).Tier; got != TierBalanced {
		t.Fatalf("ten tokens: got %s, want %s", got, TierBalanced)
	}
}
