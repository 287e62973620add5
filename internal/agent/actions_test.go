package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ops-assistant/internal/riskstore"
)

func TestRecommendActions(t *testing.T) {
	tests := []struct {
		name    string
		drivers string
		want    []string
	}{
		{name: "payment and tickets", drivers: "Late payment and service tickets", want: []string{ActionPaymentOutreach, ActionPrioritySupport}},
		{name: "tickets only", drivers: "many open TICKETS", want: []string{ActionPrioritySupport}},
		{name: "all rules", drivers: "outage, payment delays, service complaints", want: []string{ActionPaymentOutreach, ActionPrioritySupport, ActionReliability}},
		{name: "outage", drivers: "Repeated outage in region", want: []string{ActionReliability}},
		{name: "fallback", drivers: "declining usage", want: []string{ActionMonitor}},
		{name: "empty drivers", drivers: "", want: []string{ActionMonitor}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecommendActions(riskstore.RiskRecord{Drivers: tt.drivers})
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got)
		})
	}
}
