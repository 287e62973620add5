package agent

import (
	"strings"

	"ops-assistant/internal/riskstore"
)

// RiskReader is the read-only view of the risk table the dispatcher needs.
type RiskReader interface {
	ByBucket(bucket string) []riskstore.RiskRecord
	ByCustomerID(id string) []riskstore.RiskRecord
	Describe() riskstore.Summary
}

// ResultKind discriminates AnalysisResult.
type ResultKind string

const (
	ResultRecords ResultKind = "records"
	ResultSummary ResultKind = "summary"
)

// AnalysisResult is either a set of rows or aggregate statistics.
type AnalysisResult struct {
	Kind    ResultKind
	Records []riskstore.RiskRecord
	Summary riskstore.Summary
}

// Dispatcher runs the data retrieval for an intent.
type Dispatcher struct {
	Store RiskReader
}

// Analyze returns the rows or statistics an intent needs. Empty record sets
// are a valid outcome.
func (d Dispatcher) Analyze(intent Intent, customerID string) AnalysisResult {
	customerID = strings.TrimSpace(customerID)
	switch {
	case intent == IntentHighRiskCustomers, intent == IntentRecommendActions:
		return AnalysisResult{Kind: ResultRecords, Records: d.Store.ByBucket(riskstore.BucketHighRisk)}
	case intent == IntentExplainRisk && customerID != "":
		return AnalysisResult{Kind: ResultRecords, Records: d.Store.ByCustomerID(customerID)}
	default:
		return AnalysisResult{Kind: ResultSummary, Summary: d.Store.Describe()}
	}
}
