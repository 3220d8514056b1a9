package stats

import (
	"fmt"
	"math"

	"github.com/sartorproj/goregress/ols"
)

// Trend selects the deterministic terms removed before a stationarity test.
type Trend string

const (
	// TrendConstant removes the mean (level stationarity).
	TrendConstant Trend = "c"
	// TrendLinear removes a constant and a linear time trend.
	TrendLinear Trend = "ct"
)

// ADFResult represents the result of an Augmented Dickey-Fuller test.
type ADFResult struct {
	Statistic    float64
	PValue       float64
	Lags         int
	NObs         int
	CriticalVals map[string]float64 // Critical values at 1%, 5%, 10%
	IsStationary bool
}

// ADF performs the Augmented Dickey-Fuller test for a unit root.
// The null hypothesis is that the series has a unit root (is non-stationary).
// If the p-value is below 0.05 the null is rejected.
//
// The test regresses Δyₜ on a constant, yₜ₋₁ and maxLag lagged differences;
// the statistic is the t-statistic of the yₜ₋₁ coefficient. maxLag ≤ 0
// selects ⌊(n−1)^(1/3)⌋.
func ADF(values []float64, maxLag int) (*ADFResult, error) {
	n := len(values)
	if n < 10 {
		return nil, fmt.Errorf("%w: %d observations, need 10", ErrTooShort, n)
	}

	if maxLag <= 0 {
		maxLag = int(math.Floor(math.Pow(float64(n-1), 1.0/3.0)))
	}
	if maxLag >= n-1 {
		maxLag = n - 2
	}

	diff := difference(values)

	nObs := n - maxLag - 1
	if nObs < 10 {
		return nil, fmt.Errorf("%w: %d usable observations after %d lags", ErrTooShort, nObs, maxLag)
	}

	// Δy_t = α + β·y_{t-1} + Σ γ_j·Δy_{t-j} + ε
	y := make([]float64, nObs)
	x := make([][]float64, nObs)
	for i := range y {
		t := i + maxLag
		y[i] = diff[t]
		row := make([]float64, 1+maxLag)
		row[0] = values[t]
		for j := 1; j <= maxLag; j++ {
			row[j] = diff[t-j]
		}
		x[i] = row
	}

	model, err := ols.Fit(y, x)
	if err != nil {
		return nil, fmt.Errorf("adf regression: %w", err)
	}
	tStat := model.TStatistics()[1]
	pValue := mackinnonPValue(tStat)

	return &ADFResult{
		Statistic:    tStat,
		PValue:       pValue,
		Lags:         maxLag,
		NObs:         nObs,
		CriticalVals: unitRootCriticalVals(),
		IsStationary: pValue < 0.05,
	}, nil
}

// KPSSResult represents the result of a KPSS test.
type KPSSResult struct {
	Statistic    float64
	PValue       float64
	Lags         int
	Trend        Trend
	CriticalVals map[string]float64
	IsStationary bool
}

// KPSS performs the Kwiatkowski-Phillips-Schmidt-Shin test. Unlike ADF, the
// null hypothesis is that the series is stationary around the deterministic
// terms selected by trend; a p-value below 0.05 rejects stationarity.
//
// The series is detrended with ols.Fit and the statistic is built from the
// partial sums of the residuals and their Newey-West long-run variance.
// nlags ≤ 0 selects ⌈12·(n/100)^(1/4)⌉.
func KPSS(values []float64, trend Trend, nlags int) (*KPSSResult, error) {
	n := len(values)
	if n < 10 {
		return nil, fmt.Errorf("%w: %d observations, need 10", ErrTooShort, n)
	}
	if trend != TrendConstant && trend != TrendLinear {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTrend, trend)
	}
	if nlags <= 0 {
		nlags = int(math.Ceil(12 * math.Pow(float64(n)/100, 0.25)))
	}
	nlags = min(nlags, n-1)

	x := make([][]float64, n)
	for i := range x {
		if trend == TrendLinear {
			x[i] = []float64{float64(i)}
		} else {
			x[i] = []float64{}
		}
	}
	model, err := ols.Fit(values, x)
	if err != nil {
		return nil, fmt.Errorf("kpss detrending: %w", err)
	}
	resid := model.Residuals()

	_, lambda2 := longRunVariance(resid, nlags)
	if lambda2 <= 0 {
		return nil, ErrZeroVariance
	}

	eta := 0.0
	partial := 0.0
	for _, r := range resid {
		partial += r
		eta += partial * partial
	}
	nf := float64(n)
	statistic := eta / (nf * nf * lambda2)

	pValue := kpssPValue(statistic, trend)
	return &KPSSResult{
		Statistic:    statistic,
		PValue:       pValue,
		Lags:         nlags,
		Trend:        trend,
		CriticalVals: kpssCriticalVals(trend),
		IsStationary: pValue >= 0.05,
	}, nil
}

// PhillipsPerronResult represents the result of a Phillips-Perron test.
type PhillipsPerronResult struct {
	Statistic    float64
	PValue       float64
	Lags         int
	NObs         int
	CriticalVals map[string]float64
	IsStationary bool
}

// PhillipsPerron performs the Phillips-Perron unit-root test. It fits
// Δyₜ = α + β·yₜ₋₁ + ε without lagged differences and corrects the
// t-statistic of β for serial correlation with a Newey-West long-run
// variance (the Zt statistic). nlags ≤ 0 selects ⌊4·(n/100)^(1/4)⌋.
func PhillipsPerron(values []float64, nlags int) (*PhillipsPerronResult, error) {
	n := len(values)
	if n < 10 {
		return nil, fmt.Errorf("%w: %d observations, need 10", ErrTooShort, n)
	}
	if nlags <= 0 {
		nlags = max(int(math.Floor(4*math.Pow(float64(n)/100, 0.25))), 1)
	}

	nObs := n - 1
	nlags = min(nlags, nObs-1)
	y := difference(values)
	x := make([][]float64, nObs)
	for i := range x {
		x[i] = []float64{values[i]}
	}

	model, err := ols.Fit(y, x)
	if err != nil {
		return nil, fmt.Errorf("phillips-perron regression: %w", err)
	}

	gamma0, lambda2 := longRunVariance(model.Residuals(), nlags)
	if lambda2 <= 0 {
		return nil, ErrZeroVariance
	}
	tStat := model.TStatistics()[1]
	se := model.StandardErrors()[1]
	s := math.Sqrt(model.ResidualVariance())
	lambda := math.Sqrt(lambda2)

	zt := math.Sqrt(gamma0/lambda2)*tStat - (lambda2-gamma0)*float64(nObs)*se/(2*lambda*s)

	pValue := mackinnonPValue(zt)
	return &PhillipsPerronResult{
		Statistic:    zt,
		PValue:       pValue,
		Lags:         nlags,
		NObs:         nObs,
		CriticalVals: unitRootCriticalVals(),
		IsStationary: pValue < 0.05,
	}, nil
}

func difference(values []float64) []float64 {
	diff := make([]float64, len(values)-1)
	for i := range diff {
		diff[i] = values[i+1] - values[i]
	}
	return diff
}

// longRunVariance returns the residual variance γ₀ and the Newey-West
// estimate λ² with Bartlett weights up to nlags.
func longRunVariance(resid []float64, nlags int) (gamma0, lambda2 float64) {
	n := float64(len(resid))
	for _, r := range resid {
		gamma0 += r * r
	}
	gamma0 /= n

	lambda2 = gamma0
	for l := 1; l <= nlags; l++ {
		cov := 0.0
		for i := l; i < len(resid); i++ {
			cov += resid[i] * resid[i-l]
		}
		weight := 1 - float64(l)/float64(nlags+1)
		lambda2 += 2 * weight * cov / n
	}
	return gamma0, lambda2
}

func unitRootCriticalVals() map[string]float64 {
	return map[string]float64{
		"1%":  -3.43,
		"5%":  -2.86,
		"10%": -2.57,
	}
}

func kpssCriticalVals(trend Trend) map[string]float64 {
	if trend == TrendLinear {
		return map[string]float64{"10%": 0.119, "5%": 0.146, "2.5%": 0.176, "1%": 0.216}
	}
	return map[string]float64{"10%": 0.347, "5%": 0.463, "2.5%": 0.574, "1%": 0.739}
}

// knot is a (statistic, p-value) point of a tabulated null distribution.
type knot struct{ stat, p float64 }

// Asymptotic MacKinnon (1994) quantiles of the constant-only unit-root
// statistic, in increasing order of the statistic.
var mackinnonKnots = []knot{
	{-3.96, 0.001},
	{-3.43, 0.01},
	{-2.86, 0.05},
	{-2.57, 0.10},
	{-1.94, 0.25},
	{-1.62, 0.50},
}

// Kwiatkowski et al. (1992) upper-tail quantiles.
var (
	kpssLevelKnots = []knot{{0.347, 0.10}, {0.463, 0.05}, {0.574, 0.025}, {0.739, 0.01}}
	kpssTrendKnots = []knot{{0.119, 0.10}, {0.146, 0.05}, {0.176, 0.025}, {0.216, 0.01}}
)

// mackinnonPValue approximates the p-value of a constant-only ADF or
// Phillips-Perron statistic by linear interpolation between the tabulated
// quantiles. Beyond the last quantile it rises linearly towards 0.99.
func mackinnonPValue(stat float64) float64 {
	last := mackinnonKnots[len(mackinnonKnots)-1]
	if stat > last.stat {
		return math.Min(last.p+(stat-last.stat)*0.25, 0.99)
	}
	return interpolate(mackinnonKnots, stat)
}

// kpssPValue approximates the p-value of a KPSS statistic the same way.
// Below the 10% quantile it rises linearly and is capped at 0.99.
func kpssPValue(stat float64, trend Trend) float64 {
	knots, slope := kpssLevelKnots, 0.5
	if trend == TrendLinear {
		knots, slope = kpssTrendKnots, 2
	}
	if first := knots[0]; stat < first.stat {
		return math.Min(first.p+(first.stat-stat)*slope, 0.99)
	}
	return interpolate(knots, stat)
}

// interpolate evaluates the piecewise linear curve through knots, sorted by
// stat, and clamps to the end points outside their range.
func interpolate(knots []knot, stat float64) float64 {
	if stat <= knots[0].stat {
		return knots[0].p
	}
	for i := 1; i < len(knots); i++ {
		lo, hi := knots[i-1], knots[i]
		if stat <= hi.stat {
			frac := (stat - lo.stat) / (hi.stat - lo.stat)
			return lo.p + frac*(hi.p-lo.p)
		}
	}
	return knots[len(knots)-1].p
}
