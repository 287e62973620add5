package riskstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"ops-assistant/internal/shared/storage/object"
)

// RawRow is an unvalidated row as read from a source. Line is the 1-based
// position of the row in the source, used when reporting quarantined rows.
// Malformed is set when the row could not be parsed at all.
type RawRow struct {
	Line       int
	CustomerID string
	Score      string
	Bucket     string
	Drivers    string
	Malformed  string
}

// Source yields the raw rows of the risk table.
type Source interface {
	Name() string
	Rows(ctx context.Context) ([]RawRow, error)
}

var requiredColumns = []string{ColumnCustomerID, ColumnScore, ColumnBucket, ColumnDrivers}

// ReadCSV parses a CSV risk export. Columns are located by header name;
// extra columns are ignored. A data record that fails to parse is returned
// as a Malformed row and reading continues with the next record.
func ReadCSV(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read csv header: %w", ErrEmptyDataset)
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		index[strings.ToLower(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	field := func(record []string, col string) string {
		i := index[col]
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []RawRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			rows = append(rows, RawRow{Line: parseErr.StartLine, Malformed: parseErr.Err.Error()})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, RawRow{
			Line:       line,
			CustomerID: field(record, ColumnCustomerID),
			Score:      field(record, ColumnScore),
			Bucket:     field(record, ColumnBucket),
			Drivers:    field(record, ColumnDrivers),
		})
	}
	return rows, nil
}

// FileSource reads a CSV export from the local filesystem.
type FileSource struct {
	Path string
}

// Name implements Source.
func (s FileSource) Name() string {
	return "file:" + s.Path
}

// Rows implements Source.
func (s FileSource) Rows(ctx context.Context) ([]RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open risk data: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ObjectSource reads a CSV export from an object store (local directory or S3).
type ObjectSource struct {
	Store object.Reader
	Key   string
}

// Name implements Source.
func (s ObjectSource) Name() string {
	return "object:" + s.Key
}

// Rows implements Source.
func (s ObjectSource) Rows(ctx context.Context) ([]RawRow, error) {
	rc, err := s.Store.Open(ctx, s.Key)
	if err != nil {
		return nil, fmt.Errorf("open risk object: %w", err)
	}
	defer rc.Close()
	return ReadCSV(rc)
}
