package riskstore

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"ops-assistant/internal/shared/telemetry"
)

// QuarantinedRow records a row rejected at load time.
type QuarantinedRow struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// LoadReport summarizes a Load call.
type LoadReport struct {
	Source       string           `json:"source"`
	RowsRead     int              `json:"rows_read"`
	RowsAccepted int              `json:"rows_accepted"`
	Quarantined  []QuarantinedRow `json:"quarantined,omitempty"`
	DuplicateIDs []string         `json:"duplicate_ids,omitempty"`
}

// Load reads every row from src, validates it and builds a Store.
// Malformed rows are quarantined rather than failing later requests.
func Load(ctx context.Context, src Source) (*Store, LoadReport, error) {
	report := LoadReport{Source: src.Name()}

	raw, err := src.Rows(ctx)
	if err != nil {
		return nil, report, fmt.Errorf("load %s: %w", src.Name(), err)
	}
	report.RowsRead = len(raw)

	records := make([]RiskRecord, 0, len(raw))
	seen := make(map[string]int, len(raw))
	for _, row := range raw {
		rec, err := parseRow(row)
		if err != nil {
			report.Quarantined = append(report.Quarantined, QuarantinedRow{Line: row.Line, Reason: err.Error()})
			continue
		}
		seen[rec.CustomerID]++
		if seen[rec.CustomerID] == 2 {
			report.DuplicateIDs = append(report.DuplicateIDs, rec.CustomerID)
		}
		records = append(records, rec)
	}
	report.RowsAccepted = len(records)

	for _, q := range report.Quarantined {
		telemetry.Warn("riskstore.row_quarantined", map[string]any{
			"source": report.Source,
			"line":   q.Line,
			"reason": q.Reason,
		})
	}
	if len(report.DuplicateIDs) > 0 {
		telemetry.Warn("riskstore.duplicate_ids", map[string]any{
			"source":        report.Source,
			"duplicate_ids": report.DuplicateIDs,
		})
	}

	if len(records) == 0 {
		return nil, report, fmt.Errorf("load %s: %w", src.Name(), ErrEmptyDataset)
	}

	store := New(records)
	store.source = report.Source
	return store, report, nil
}

func parseRow(row RawRow) (RiskRecord, error) {
	if row.Malformed != "" {
		return RiskRecord{}, fmt.Errorf("malformed row: %s", row.Malformed)
	}
	id := strings.TrimSpace(row.CustomerID)
	if id == "" {
		return RiskRecord{}, errors.New("customer_id is empty")
	}
	rawScore := strings.TrimSpace(row.Score)
	score, err := strconv.ParseFloat(rawScore, 64)
	if err != nil {
		return RiskRecord{}, fmt.Errorf("risk_score_lr %q is not numeric", rawScore)
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return RiskRecord{}, fmt.Errorf("risk_score_lr %q is not finite", rawScore)
	}
	bucket := strings.TrimSpace(row.Bucket)
	if bucket == "" {
		return RiskRecord{}, errors.New("risk_bucket_lr is empty")
	}
	return RiskRecord{
		CustomerID: id,
		Score:      score,
		Bucket:     bucket,
		Drivers:    strings.TrimSpace(row.Drivers),
	}, nil
}
