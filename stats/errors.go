package stats

import "errors"

var (
	// ErrTooShort is returned when a series has too few observations for a test.
	ErrTooShort = errors.New("stats: series too short")

	// ErrZeroVariance is returned when a statistic is undefined because the
	// series does not vary.
	ErrZeroVariance = errors.New("stats: zero variance")

	// ErrInvalidLag is returned for a lag count below 1.
	ErrInvalidLag = errors.New("stats: lag must be at least 1")

	// ErrUnknownTrend is returned for a Trend other than TrendConstant or
	// TrendLinear.
	ErrUnknownTrend = errors.New("stats: unknown trend")
)
