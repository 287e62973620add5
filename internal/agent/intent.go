package agent

import "strings"

// Intent is the classified purpose of a question.
type Intent string

const (
	IntentExplainRisk       Intent = "EXPLAIN_RISK"
	IntentHighRiskCustomers Intent = "HIGH_RISK_CUSTOMERS"
	IntentRecommendActions  Intent = "RECOMMEND_ACTIONS"
	IntentGeneralInsight    Intent = "GENERAL_INSIGHT"
)

// intentRule pairs a predicate over the lower-cased question with the intent it selects.
type intentRule struct {
	match  func(q string) bool
	intent Intent
}

func containsAny(terms ...string) func(string) bool {
	return func(q string) bool {
		for _, term := range terms {
			if strings.Contains(q, term) {
				return true
			}
		}
		return false
	}
}

// Rules are evaluated in order; the first match wins.
var intentRules = []intentRule{
	{match: containsAny("why"), intent: IntentExplainRisk},
	{match: containsAny("who", "which customers"), intent: IntentHighRiskCustomers},
	{match: containsAny("action", "what should we do"), intent: IntentRecommendActions},
}

// Classify maps a question to an intent. Every input maps to exactly one intent.
func Classify(question string) Intent {
	q := strings.ToLower(question)
	for _, rule := range intentRules {
		if rule.match(q) {
			return rule.intent
		}
	}
	return IntentGeneralInsight
}
