package agent

import (
	"fmt"
	"strings"
)

// FormatResponse combines an explanation and its actions into the display text.
func FormatResponse(customerID, explanation string, actions []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Customer %s – Risk Assessment\n\n", customerID)
	b.WriteString(explanation)
	b.WriteString("\n\nRecommended Actions:\n")
	for i, action := range actions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, action)
	}
	return b.String()
}
