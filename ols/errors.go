package ols

import "errors"

var (
	// ErrEmptyInput is returned when the response or design matrix is empty.
	ErrEmptyInput = errors.New("ols: empty input")

	// ErrDimensionMismatch is returned when the design matrix rows and the
	// response disagree in count, when rows differ in length, or when a
	// prediction row does not match the fitted parameter count.
	ErrDimensionMismatch = errors.New("ols: dimension mismatch")

	// ErrInsufficientObservations is returned when the number of observations
	// does not exceed the number of parameters.
	ErrInsufficientObservations = errors.New("ols: observations must exceed parameters")

	// ErrNonFinite is returned when an input value is NaN or ±Inf.
	ErrNonFinite = errors.New("ols: NaN or Inf in input")

	// ErrSingularDesignMatrix is returned when XᵗX is singular or too badly
	// conditioned to invert, typically because of collinear columns.
	ErrSingularDesignMatrix = errors.New("ols: singular design matrix")

	// ErrInvalidAlpha is returned for a confidence level outside (0, 1).
	ErrInvalidAlpha = errors.New("ols: alpha must be in (0, 1)")
)
