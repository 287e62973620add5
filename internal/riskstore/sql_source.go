package riskstore

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// SQLSource reads the risk table from Postgres or SQLite. Rows keep the
// order the database scans them in, matching a CSV export of the same table.
type SQLSource struct {
	DB    *sql.DB
	Table string
}

// Name implements Source.
func (s SQLSource) Name() string {
	return "sql:" + s.Table
}

// Rows implements Source.
func (s SQLSource) Rows(ctx context.Context) ([]RawRow, error) {
	if !tableNamePattern.MatchString(s.Table) {
		return nil, fmt.Errorf("invalid risk table name %q", s.Table)
	}
	query := fmt.Sprintf(
		`SELECT customer_id, CAST(risk_score_lr AS TEXT), risk_bucket_lr, COALESCE(risk_drivers, '') FROM %s`,
		s.Table,
	)
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query risk table: %w", err)
	}
	defer rows.Close()

	var out []RawRow
	line := 0
	for rows.Next() {
		line++
		var (
			id, bucket, drivers sql.NullString
			score               sql.NullString
		)
		if err := rows.Scan(&id, &score, &bucket, &drivers); err != nil {
			return nil, fmt.Errorf("scan risk row %d: %w", line, err)
		}
		out = append(out, RawRow{
			Line:       line,
			CustomerID: id.String,
			Score:      score.String,
			Bucket:     bucket.String,
			Drivers:    drivers.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate risk rows: %w", err)
	}
	return out, nil
}
