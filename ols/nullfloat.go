package ols

import "strconv"

// NullFloat is a float64 that may be undefined.
//
// It is the single representation of a statistic that has no value, such as
// R² for a constant response. The zero value is undefined.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// Undefined is the undefined NullFloat.
var Undefined = NullFloat{}

// Defined returns a valid NullFloat holding v.
func Defined(v float64) NullFloat {
	return NullFloat{Float64: v, Valid: true}
}

// Get returns the value and whether it is defined.
func (n NullFloat) Get() (float64, bool) {
	return n.Float64, n.Valid
}

// OrElse returns the value if defined and def otherwise.
func (n NullFloat) OrElse(def float64) float64 {
	if !n.Valid {
		return def
	}
	return n.Float64
}

func (n NullFloat) String() string {
	if !n.Valid {
		return "undefined"
	}
	return strconv.FormatFloat(n.Float64, 'g', -1, 64)
}
