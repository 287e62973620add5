package agent

import (
	"fmt"
	"strings"

	"ops-assistant/internal/riskstore"
)

// Explain renders the prose risk explanation for one customer.
func Explain(rec riskstore.RiskRecord) string {
	return fmt.Sprintf(
		"Customer %s is currently classified as %s. "+
			"This risk score (%.2f) is calculated by combining multiple operational "+
			"and billing factors using weights derived from a logistic regression model "+
			"trained on historical churn data. "+
			"The most influential factors contributing to this score are: %s.",
		rec.CustomerID,
		strings.ToLower(rec.Bucket),
		rec.Score,
		rec.Drivers,
	)
}
