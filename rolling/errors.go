package rolling

import "errors"

var (
	// ErrWindowTooSmall is returned when the window is shorter than 2.
	ErrWindowTooSmall = errors.New("rolling: window must be at least 2")

	// ErrInsufficientData is returned when the series is shorter than the window.
	ErrInsufficientData = errors.New("rolling: series shorter than window")

	// ErrIndexOutOfRange is returned for a coefficient index outside [0, k).
	ErrIndexOutOfRange = errors.New("rolling: coefficient index out of range")
)
