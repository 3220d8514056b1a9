package dataset

import (
	"slices"
	"time"
)

// Dataset is a response vector and a design matrix with aligned rows.
type Dataset struct {
	Timestamps   []time.Time // empty unless every row carried a parseable date
	Response     []float64
	Design       [][]float64
	ResponseName string
	Features     []string
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Response)
}

// Slice returns rows start to end (exclusive) as a deep copy. Bounds are
// clamped to the dataset.
func (d *Dataset) Slice(start, end int) *Dataset {
	start = max(start, 0)
	end = min(end, d.Len())
	out := &Dataset{
		ResponseName: d.ResponseName,
		Features:     slices.Clone(d.Features),
	}
	if start >= end {
		return out
	}

	out.Response = slices.Clone(d.Response[start:end])
	out.Design = make([][]float64, end-start)
	for i := range out.Design {
		out.Design[i] = slices.Clone(d.Design[start+i])
	}
	if len(d.Timestamps) == d.Len() {
		out.Timestamps = slices.Clone(d.Timestamps[start:end])
	}
	return out
}
