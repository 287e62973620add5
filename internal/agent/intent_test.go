package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     Intent
	}{
		{name: "why", question: "Why is this customer risky?", want: IntentExplainRisk},
		{name: "why beats action", question: "Why should we take action?", want: IntentExplainRisk},
		{name: "why beats who", question: "WHY and WHO?", want: IntentExplainRisk},
		{name: "who", question: "Who is about to churn?", want: IntentHighRiskCustomers},
		{name: "which customers", question: "Which customers need attention?", want: IntentHighRiskCustomers},
		{name: "who beats action", question: "Who needs action first?", want: IntentHighRiskCustomers},
		{name: "action", question: "What actions should we take today?", want: IntentRecommendActions},
		{name: "what should we do", question: "What should we do today?", want: IntentRecommendActions},
		{name: "fallback", question: "How is the portfolio looking?", want: IntentGeneralInsight},
		{name: "empty", question: "", want: IntentGeneralInsight},
		{name: "substring match", question: "Summarize the whole base", want: IntentHighRiskCustomers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.question))
		})
	}
}
