package agent

import (
	"strings"

	"ops-assistant/internal/riskstore"
)

const (
	ActionPaymentOutreach = "Reach out with a proactive payment reminder or offer flexible payment options."
	ActionPrioritySupport = "Assign priority customer support to address service issues."
	ActionReliability     = "Investigate infrastructure reliability for this customer."
	ActionMonitor         = "Monitor the customer closely for any emerging risk signals."
)

type actionRule struct {
	match  func(drivers string) bool
	action string
}

// Rules are independent; every matching rule contributes its action in this order.
var actionRules = []actionRule{
	{match: containsAny("payment"), action: ActionPaymentOutreach},
	{match: containsAny("service", "tickets"), action: ActionPrioritySupport},
	{match: containsAny("outage"), action: ActionReliability},
}

// RecommendActions derives operational actions from a customer's risk drivers.
// The result is never empty.
func RecommendActions(rec riskstore.RiskRecord) []string {
	drivers := strings.ToLower(rec.Drivers)
	actions := make([]string, 0, len(actionRules))
	for _, rule := range actionRules {
		if rule.match(drivers) {
			actions = append(actions, rule.action)
		}
	}
	if len(actions) == 0 {
		actions = append(actions, ActionMonitor)
	}
	return actions
}
