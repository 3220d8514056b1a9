package ols

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// perfectFitTolerance bounds SSres relative to the total sum of squares
// below which the fit is treated as exact.
const perfectFitTolerance = 1e-24

// FTestResult is the overall F-test that every slope coefficient is zero.
//
// FStatistic and PValue are undefined when DFRegression or DFResidual is not
// positive, or when the model fits the data exactly.
type FTestResult struct {
	FStatistic   NullFloat
	PValue       NullFloat
	DFRegression int
	DFResidual   int
}

// computeFTest builds the F test from the regression and residual sums of
// squares. total is SStot with an intercept and Σy² without one.
func computeFTest(n, k int, intercept bool, ssReg, ssRes, total float64) FTestResult {
	dfReg := k
	if intercept {
		dfReg--
	}
	dfRes := n - k
	res := FTestResult{DFRegression: dfReg, DFResidual: dfRes}
	if dfReg <= 0 || dfRes <= 0 || isPerfectFit(ssRes, total) {
		return res
	}

	f := (math.Max(ssReg, 0) / float64(dfReg)) / (ssRes / float64(dfRes))
	dist := distuv.F{D1: float64(dfReg), D2: float64(dfRes)}
	res.FStatistic = Defined(f)
	res.PValue = Defined(dist.Survival(f))
	return res
}

// isPerfectFit reports whether the residuals are floating-point residue.
// A zero total means the response is reproduced by the intercept alone.
func isPerfectFit(ssRes, total float64) bool {
	return total == 0 || ssRes <= perfectFitTolerance*total
}

// twoTailedPValue returns P(|T| ≥ |t|) for Student's t with df degrees of
// freedom. The survival function keeps it strictly decreasing in |t| far
// into the tail, where 1 − CDF would round to zero.
func twoTailedPValue(t, df float64) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return math.Min(2*dist.Survival(math.Abs(t)), 1)
}

// ConfidenceIntervals returns the (1 − alpha) confidence interval of every
// coefficient as [lower, upper] pairs.
func (m *Model) ConfidenceIntervals(alpha float64) ([][2]float64, error) {
	if !(alpha > 0 && alpha < 1) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidAlpha, alpha)
	}
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(m.DFResidual())}
	q := dist.Quantile(1 - alpha/2)

	ci := make([][2]float64, m.nParams)
	for j, b := range m.coeffs {
		half := q * m.stdErrs[j]
		ci[j] = [2]float64{b - half, b + half}
	}
	return ci, nil
}

// Predict evaluates the fitted model on new rows. Each row holds the
// predictors only; the intercept is added when the model has one.
func (m *Model) Predict(rows [][]float64) ([]float64, error) {
	k0 := m.nParams
	if m.intercept {
		k0--
	}
	out := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) != k0 {
			return nil, fmt.Errorf("%w: row %d has %d columns, model expects %d", ErrDimensionMismatch, i, len(row), k0)
		}
		out[i] = m.evaluate(row)
	}
	return out, nil
}
