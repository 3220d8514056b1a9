package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ACF calculates the autocorrelation function for lags 0 to maxLag.
// maxLag is clamped to len(values) − 1.
func ACF(values []float64, maxLag int) ([]float64, error) {
	n := len(values)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil, fmt.Errorf("%w: %d observations", ErrTooShort, n)
	}

	mean := stat.Mean(values, nil)
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	if variance == 0 {
		return nil, ErrZeroVariance
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (values[i] - mean) * (values[i-k] - mean)
		}
		acf[k] = sum / variance
	}
	return acf, nil
}

// PACF calculates the partial autocorrelation function for lags 0 to maxLag
// with the Durbin-Levinson recursion. Index 0 is always 1.
func PACF(values []float64, maxLag int) ([]float64, error) {
	if maxLag < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLag, maxLag)
	}
	acf, err := ACF(values, maxLag)
	if err != nil {
		return nil, err
	}
	maxLag = len(acf) - 1

	pacf := make([]float64, maxLag+1)
	pacf[0] = 1
	if maxLag == 0 {
		return pacf, nil
	}

	// phi holds the coefficients of the AR(k−1) fit; next those of AR(k).
	phi := make([]float64, maxLag+1)
	next := make([]float64, maxLag+1)
	phi[1] = acf[1]
	pacf[1] = acf[1]
	for k := 2; k <= maxLag; k++ {
		num, den := acf[k], 1.0
		for j := 1; j < k; j++ {
			num -= phi[j] * acf[k-j]
			den -= phi[j] * acf[j]
		}
		if den == 0 {
			break
		}
		pacf[k] = num / den

		next[k] = pacf[k]
		for j := 1; j < k; j++ {
			next[j] = phi[j] - pacf[k]*phi[k-j]
		}
		phi, next = next, phi
	}
	return pacf, nil
}

// Correlogram is an ACF or PACF together with its white-noise bound.
type Correlogram struct {
	Lags      []int
	Values    []float64
	ConfBound float64
}

// Significant returns the lags whose value exceeds the bound.
func (c *Correlogram) Significant() []int {
	return SignificantLags(c.Values, c.ConfBound)
}

// ACFWithConfidence returns the ACF of values with the bound from
// ACFConfidenceBound.
func ACFWithConfidence(values []float64, maxLag int) (*Correlogram, error) {
	acf, err := ACF(values, maxLag)
	if err != nil {
		return nil, err
	}
	return newCorrelogram(acf, len(values)), nil
}

// PACFWithConfidence returns the PACF of values with the bound from
// ACFConfidenceBound.
func PACFWithConfidence(values []float64, maxLag int) (*Correlogram, error) {
	pacf, err := PACF(values, maxLag)
	if err != nil {
		return nil, err
	}
	return newCorrelogram(pacf, len(values)), nil
}

func newCorrelogram(values []float64, n int) *Correlogram {
	lags := make([]int, len(values))
	for i := range lags {
		lags[i] = i
	}
	return &Correlogram{Lags: lags, Values: values, ConfBound: ACFConfidenceBound(n)}
}

// ACFConfidenceBound returns the approximate 95% bound ±1.96/√n for
// autocorrelations of white noise.
func ACFConfidenceBound(n int) float64 {
	return 1.96 / math.Sqrt(float64(n))
}

// SignificantLags returns the lags (excluding 0) whose autocorrelation
// exceeds bound in absolute value.
func SignificantLags(acf []float64, bound float64) []int {
	var significant []int
	for i := 1; i < len(acf); i++ {
		if math.Abs(acf[i]) > bound {
			significant = append(significant, i)
		}
	}
	return significant
}
