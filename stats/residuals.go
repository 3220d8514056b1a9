package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// PortmanteauResult is the result of a Ljung-Box or Box-Pierce test.
type PortmanteauResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	DOF       int
}

// LjungBox tests for autocorrelation in residuals up to lag lags.
// The null hypothesis is no autocorrelation. fitdf is the number of
// parameters estimated by the model that produced the residuals and is
// subtracted from the degrees of freedom.
func LjungBox(residuals []float64, lags, fitdf int) (*PortmanteauResult, error) {
	return portmanteau(residuals, lags, fitdf, func(acf []float64, n int) float64 {
		q := 0.0
		for k := 1; k < len(acf); k++ {
			q += acf[k] * acf[k] / float64(n-k)
		}
		return q * float64(n*(n+2))
	})
}

// BoxPierce is the original, simpler form of the Ljung-Box test.
func BoxPierce(residuals []float64, lags, fitdf int) (*PortmanteauResult, error) {
	return portmanteau(residuals, lags, fitdf, func(acf []float64, n int) float64 {
		q := 0.0
		for k := 1; k < len(acf); k++ {
			q += acf[k] * acf[k]
		}
		return q * float64(n)
	})
}

func portmanteau(residuals []float64, lags, fitdf int, statistic func([]float64, int) float64) (*PortmanteauResult, error) {
	n := len(residuals)
	if lags < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLag, lags)
	}
	if n < 3 {
		return nil, fmt.Errorf("%w: %d observations", ErrTooShort, n)
	}
	if lags >= n {
		lags = n - 1
	}

	acf, err := ACF(residuals, lags)
	if err != nil {
		return nil, err
	}
	q := statistic(acf, n)

	dof := max(lags-fitdf, 1)
	chi := distuv.ChiSquared{K: float64(dof)}
	return &PortmanteauResult{
		Statistic: q,
		PValue:    chi.Survival(q),
		Lags:      lags,
		DOF:       dof,
	}, nil
}

// DurbinWatson calculates the Durbin-Watson statistic for first-order
// autocorrelation. d ≈ 2 means none, d < 2 positive and d > 2 negative
// autocorrelation.
func DurbinWatson(residuals []float64) (float64, error) {
	n := len(residuals)
	if n < 2 {
		return 0, fmt.Errorf("%w: %d observations", ErrTooShort, n)
	}

	num := 0.0
	for i := 1; i < n; i++ {
		d := residuals[i] - residuals[i-1]
		num += d * d
	}
	den := floats.Dot(residuals, residuals)
	if den == 0 {
		return 0, ErrZeroVariance
	}
	return num / den, nil
}

// JarqueBeraResult is the result of a Jarque-Bera normality test.
type JarqueBeraResult struct {
	Statistic float64
	PValue    float64
	Skewness  float64
	Kurtosis  float64
}

// JarqueBera tests whether residuals are normally distributed using their
// sample skewness and kurtosis. Kurtosis is reported as is, not in excess
// of 3.
func JarqueBera(residuals []float64) (*JarqueBeraResult, error) {
	n := len(residuals)
	if n < 3 {
		return nil, fmt.Errorf("%w: %d observations", ErrTooShort, n)
	}

	m2 := stat.Moment(2, residuals, nil)
	if m2 == 0 {
		return nil, ErrZeroVariance
	}
	skew := stat.Moment(3, residuals, nil) / math.Pow(m2, 1.5)
	kurt := stat.Moment(4, residuals, nil) / (m2 * m2)

	jb := float64(n) / 6 * (skew*skew + (kurt-3)*(kurt-3)/4)
	chi := distuv.ChiSquared{K: 2}
	return &JarqueBeraResult{
		Statistic: jb,
		PValue:    chi.Survival(jb),
		Skewness:  skew,
		Kurtosis:  kurt,
	}, nil
}
