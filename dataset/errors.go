package dataset

import "errors"

var (
	// ErrNoData is returned when no complete row could be read.
	ErrNoData = errors.New("dataset: no valid rows")

	// ErrUnknownColumn is returned when a requested column is not in the header.
	ErrUnknownColumn = errors.New("dataset: unknown column")

	// ErrNoFeatures is returned when no feature column remains.
	ErrNoFeatures = errors.New("dataset: no feature columns")
)
