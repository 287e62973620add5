package riskstore

import "errors"

var (
	ErrEmptyDataset  = errors.New("risk dataset has no valid rows")
	ErrMissingColumn = errors.New("risk dataset is missing a required column")
)
