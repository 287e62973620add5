package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ops-assistant/internal/riskstore"
)

func TestExplainIncludesIdentifiersAndRoundedScore(t *testing.T) {
	rec := riskstore.RiskRecord{CustomerID: "C042", Score: 0.8734, Bucket: "Medium Risk", Drivers: "late payment"}

	text := Explain(rec)
	assert.Contains(t, text, "C042")
	assert.Contains(t, text, "medium risk")
	assert.Contains(t, text, "(0.87)")
	assert.Contains(t, text, "late payment")
	assert.Contains(t, text, "logistic regression")
}

func TestExplainAlwaysUsesTwoDecimals(t *testing.T) {
	assert.Contains(t, Explain(riskstore.RiskRecord{CustomerID: "C1", Score: 0.9, Bucket: "High Risk"}), "(0.90)")
	assert.Contains(t, Explain(riskstore.RiskRecord{CustomerID: "C1", Score: 1.005, Bucket: "High Risk"}), "(1.00)")
}

func TestFormatResponseNumbersActions(t *testing.T) {
	out := FormatResponse("C001", "Explanation.", []string{"First.", "Second."})

	want := "Customer C001 – Risk Assessment\n\nExplanation.\n\nRecommended Actions:\n1. First.\n2. Second.\n"
	assert.Equal(t, want, out)
}
