package agent

import (
	"sort"
	"strings"
	"time"

	"ops-assistant/internal/riskstore"
	"ops-assistant/internal/shared/metrics"
)

const (
	DefaultTopK = 10
	MaxTopK     = 100

	AdvisoryMessage     = "Focus immediately on high-risk customers with payment delays and repeated service issues."
	ClarificationPrompt = "Please clarify your question so I can assist you better."
)

// ResponseKind discriminates Response.
type ResponseKind string

const (
	ResponseText    ResponseKind = "text"
	ResponseRecords ResponseKind = "records"
)

// Response is what the agent hands back to its caller: display text, or an
// ordered list of customer rows for the caller to serialize.
type Response struct {
	Kind    ResponseKind
	Intent  Intent
	Text    string
	Records []riskstore.RiskRecord
}

// Query is one question put to the agent. CustomerID and TopK are optional;
// zero values mean absent.
type Query struct {
	Question   string
	CustomerID string
	TopK       int
}

// Agent composes classification, analysis and response building.
type Agent struct {
	dispatcher  Dispatcher
	defaultTopK int
	maxTopK     int
	now         func() time.Time
}

// Options bounds the number of rows returned for ranking questions.
type Options struct {
	DefaultTopK int
	MaxTopK     int
}

// New builds an Agent over store. Non-positive options fall back to
// DefaultTopK and MaxTopK.
func New(store RiskReader, opts Options) *Agent {
	if opts.DefaultTopK <= 0 {
		opts.DefaultTopK = DefaultTopK
	}
	if opts.MaxTopK <= 0 {
		opts.MaxTopK = MaxTopK
	}
	if opts.DefaultTopK > opts.MaxTopK {
		opts.DefaultTopK = opts.MaxTopK
	}
	return &Agent{
		dispatcher:  Dispatcher{Store: store},
		defaultTopK: opts.DefaultTopK,
		maxTopK:     opts.MaxTopK,
		now:         time.Now,
	}
}

// Handle answers a question. It never fails: missing or unknown customers
// and unrecognized questions produce the clarification prompt.
func (a *Agent) Handle(q Query) Response {
	start := a.now()
	intent := Classify(q.Question)
	result := a.dispatcher.Analyze(intent, q.CustomerID)

	resp, outcome := a.respond(intent, q, result)
	metrics.ObserveAgentRequest(string(intent), outcome, a.now().Sub(start))
	return resp
}

func (a *Agent) respond(intent Intent, q Query, result AnalysisResult) (Response, string) {
	switch {
	case intent == IntentExplainRisk && result.Kind == ResultRecords && len(result.Records) > 0:
		rec := result.Records[0]
		text := FormatResponse(strings.TrimSpace(q.CustomerID), Explain(rec), RecommendActions(rec))
		return Response{Kind: ResponseText, Intent: intent, Text: text}, "explained"
	case intent == IntentHighRiskCustomers:
		records := topByScore(result.Records, a.resolveTopK(q))
		return Response{Kind: ResponseRecords, Intent: intent, Records: records}, "ranked"
	case intent == IntentRecommendActions:
		return Response{Kind: ResponseText, Intent: intent, Text: AdvisoryMessage}, "advised"
	default:
		outcome := "clarify"
		if intent == IntentExplainRisk {
			outcome = "customer_not_found"
		}
		return Response{Kind: ResponseText, Intent: intent, Text: ClarificationPrompt}, outcome
	}
}

// resolveTopK prefers an explicit positive TopK, then a "top N" phrase in
// the question, then the configured default. The result is capped at maxTopK.
func (a *Agent) resolveTopK(q Query) int {
	k := a.defaultTopK
	if q.TopK > 0 {
		k = q.TopK
	} else if n, ok := ExtractTopN(q.Question); ok {
		k = n
	}
	if k > a.maxTopK {
		k = a.maxTopK
	}
	return k
}

func topByScore(records []riskstore.RiskRecord, k int) []riskstore.RiskRecord {
	sorted := make([]riskstore.RiskRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if len(sorted) > k {
		sorted = sorted[:k]
	}
	return sorted
}
