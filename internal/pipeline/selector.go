package pipeline

import (
	"strings"
)

// Tier is a named class of model capability chosen heuristically from
// question text.
type Tier string

const (
	TierFast     Tier = "fast"
	TierBalanced Tier = "balanced"
	TierSmart    Tier = "smart"
	TierExpert   Tier = "expert"
)

// Selection is the outcome of model selection for one question.
type Selection struct {
	Tier  Tier
	Model string
	Label string
}

// tierRule routes a question to a tier by keyword matching.
// Rules are data, evaluated in order; first match wins.
type tierRule struct {
	tier     Tier
	keywords []string
}

var tierRules = []tierRule{
	{TierExpert, []string{
		"code", "function", "debug", "algorithm", "program", "compile",
		"syntax", "python", "javascript", "java", "golang", "sql",
	}},
	{TierSmart, []string{
		"explain", "why", "how", "analyze", "analyse", "compare",
		"theory", "prove", "derive", "reason",
	}},
	{TierBalanced, []string{
		"what", "describe", "define", "list", "summarize", "summarise",
		"tell me about",
	}},
}

// shortQuestionTokens is the token count below which an unmatched
// question drops to the fast tier.
const shortQuestionTokens = 10

var tierModels = map[Tier]Selection{
	TierFast:     {TierFast, "gpt-4.1-nano", "Quick Answers"},
	TierBalanced: {TierBalanced, "gpt-4.1-mini", "Everyday Tutor"},
	TierSmart:    {TierSmart, "gpt-4.1", "Deep Reasoning"},
	TierExpert:   {TierExpert, "gpt-4o", "Code & Algorithms"},
}

// SelectModel picks a model tier for a question. Pure and
// deterministic: case-insensitive keyword rules in fixed priority
// order, then a short-question check, then the balanced default. The
// fallback provider ignores this selection entirely and always uses
// its fixed model.
func SelectModel(questionText string) Selection {
	q := strings.ToLower(questionText)

	for _, rule := range tierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				return tierModels[rule.tier]
			}
		}
	}

	if len(strings.Fields(questionText)) < shortQuestionTokens {
		return tierModels[TierFast]
	}

	return tierModels[TierBalanced]
}
