package ols

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// InterceptLabel is the label of the constant term in summaries.
const InterceptLabel = "intercept"

// Model is a fitted ordinary least squares regression.
//
// A Model never changes after Fit returns it. Refitting requires a new call
// to Fit.
type Model struct {
	nObs      int
	nParams   int
	intercept bool
	labels    []string

	coeffs  []float64
	fitted  []float64
	resids  []float64
	stdErrs []float64
	tStats  []float64
	pValues []float64

	ssTot       float64
	ssRes       float64
	rSquared    NullFloat
	adjRSquared NullFloat
	sigma2      float64
	logLik      float64
	covariance  *mat.Dense
	fTest       FTestResult
}

type config struct {
	intercept bool
	names     []string
}

// Option configures Fit.
type Option func(*config)

// WithIntercept controls whether a constant column is prepended to the
// design matrix. The default is true.
func WithIntercept(include bool) Option {
	return func(c *config) {
		c.intercept = include
	}
}

// WithNames sets the labels of the predictors, excluding the intercept.
// The number of names must equal the number of design matrix columns.
func WithNames(names ...string) Option {
	return func(c *config) {
		c.names = slices.Clone(names)
	}
}

// Fit fits y = Xβ + ε by ordinary least squares.
//
// x holds one row per observation. Input is validated in order: empty input,
// row count, row lengths, observations versus parameters, finiteness. Only
// then is XᵗX formed and inverted; failure to invert yields
// ErrSingularDesignMatrix.
func Fit(y []float64, x [][]float64, opts ...Option) (*Model, error) {
	cfg := config{intercept: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(y) == 0 || len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d design rows for %d responses", ErrDimensionMismatch, len(x), len(y))
	}
	k0 := len(x[0])
	for i, row := range x {
		if len(row) != k0 {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), k0)
		}
	}

	n := len(y)
	k := k0
	if cfg.intercept {
		k++
	}
	if k == 0 {
		return nil, fmt.Errorf("%w: no regressors", ErrEmptyInput)
	}
	if n <= k {
		return nil, fmt.Errorf("%w: n=%d, k=%d", ErrInsufficientObservations, n, k)
	}
	if cfg.names != nil && len(cfg.names) != k0 {
		return nil, fmt.Errorf("%w: %d names for %d predictors", ErrDimensionMismatch, len(cfg.names), k0)
	}
	if err := checkFinite(y, x); err != nil {
		return nil, err
	}

	design := mat.NewDense(n, k, nil)
	for i, row := range x {
		j := 0
		if cfg.intercept {
			design.Set(i, 0, 1)
			j = 1
		}
		for c, v := range row {
			design.Set(i, j+c, v)
		}
	}
	response := mat.NewVecDense(n, slices.Clone(y))

	var xtx mat.Dense
	xtx.Mul(design.T(), design)

	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingularDesignMatrix, err)
	}

	var xty, beta mat.VecDense
	xty.MulVec(design.T(), response)
	beta.MulVec(&xtxInv, &xty)

	m := &Model{
		nObs:      n,
		nParams:   k,
		intercept: cfg.intercept,
		labels:    makeLabels(cfg.intercept, k0, cfg.names),
		coeffs:    make([]float64, k),
	}
	for j := range m.coeffs {
		m.coeffs[j] = beta.AtVec(j)
	}

	m.fitted = make([]float64, n)
	m.resids = make([]float64, n)
	for i, row := range x {
		m.fitted[i] = m.evaluate(row)
		m.resids[i] = y[i] - m.fitted[i]
	}

	m.infer(y, &xtxInv)
	return m, nil
}

// infer derives every statistic that depends on the coefficients.
func (m *Model) infer(y []float64, xtxInv *mat.Dense) {
	n, k := m.nObs, m.nParams
	df := float64(n - k)

	// A constant response has exactly zero total variance even when the
	// floating-point mean is off by an ulp.
	if slices.Min(y) != slices.Max(y) {
		mean := stat.Mean(y, nil)
		for _, v := range y {
			d := v - mean
			m.ssTot += d * d
		}
	}
	m.ssRes = floats.Dot(m.resids, m.resids)

	if m.ssTot > 0 {
		r2 := 1 - m.ssRes/m.ssTot
		m.rSquared = Defined(r2)
		m.adjRSquared = Defined(1 - (1-r2)*float64(n-1)/df)
	}

	m.sigma2 = m.ssRes / df
	m.covariance = mat.NewDense(k, k, nil)
	m.covariance.Scale(m.sigma2, xtxInv)

	m.stdErrs = make([]float64, k)
	m.tStats = make([]float64, k)
	m.pValues = make([]float64, k)
	for j := 0; j < k; j++ {
		se := math.Sqrt(math.Max(m.covariance.At(j, j), 0))
		m.stdErrs[j] = se
		if se != 0 {
			m.tStats[j] = m.coeffs[j] / se
		}
		m.pValues[j] = twoTailedPValue(m.tStats[j], df)
	}

	nf := float64(n)
	m.logLik = -nf / 2 * (math.Log(2*math.Pi) + math.Log(m.ssRes/nf) + 1)

	// Without an intercept the F test is about the uncentered sums of squares.
	ssReg, total := m.ssTot-m.ssRes, m.ssTot
	if !m.intercept {
		ssReg, total = floats.Dot(m.fitted, m.fitted), floats.Dot(y, y)
	}
	m.fTest = computeFTest(n, k, m.intercept, ssReg, m.ssRes, total)
}

// evaluate returns the prediction for one design row without intercept.
// Fit and Predict share it so that predicting on the training design
// reproduces the fitted values exactly.
func (m *Model) evaluate(row []float64) float64 {
	v := 0.0
	j := 0
	if m.intercept {
		v = m.coeffs[0]
		j = 1
	}
	for c, xv := range row {
		v += m.coeffs[j+c] * xv
	}
	return v
}

func checkFinite(y []float64, x [][]float64) error {
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: response %d", ErrNonFinite, i)
		}
	}
	for i, row := range x {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: design row %d column %d", ErrNonFinite, i, j)
			}
		}
	}
	return nil
}

func makeLabels(intercept bool, k0 int, names []string) []string {
	labels := make([]string, 0, k0+1)
	if intercept {
		labels = append(labels, InterceptLabel)
	}
	if names != nil {
		return append(labels, names...)
	}
	for j := 1; j <= k0; j++ {
		labels = append(labels, "x"+strconv.Itoa(j))
	}
	return labels
}

// Coefficients returns β. Index 0 is the intercept when present.
func (m *Model) Coefficients() []float64 { return slices.Clone(m.coeffs) }

// FittedValues returns ŷ = Xβ, one value per observation.
func (m *Model) FittedValues() []float64 { return slices.Clone(m.fitted) }

// Residuals returns y − ŷ.
func (m *Model) Residuals() []float64 { return slices.Clone(m.resids) }

// StandardErrors returns the coefficient standard errors.
func (m *Model) StandardErrors() []float64 { return slices.Clone(m.stdErrs) }

// TStatistics returns β/SE per coefficient, 0 where SE is 0.
func (m *Model) TStatistics() []float64 { return slices.Clone(m.tStats) }

// PValues returns the two-tailed p-values of the t-statistics.
func (m *Model) PValues() []float64 { return slices.Clone(m.pValues) }

// RSquared returns the coefficient of determination. It is undefined when
// the response has zero total variance. It is not clamped to [0, 1].
func (m *Model) RSquared() NullFloat { return m.rSquared }

// AdjustedRSquared returns R² penalised for the number of parameters.
// It is undefined whenever RSquared is.
func (m *Model) AdjustedRSquared() NullFloat { return m.adjRSquared }

// NObs returns the number of observations n.
func (m *Model) NObs() int { return m.nObs }

// NParams returns the number of parameters k, including the intercept.
func (m *Model) NParams() int { return m.nParams }

// DFResidual returns n − k.
func (m *Model) DFResidual() int { return m.nObs - m.nParams }

// HasIntercept reports whether the model includes a constant term.
func (m *Model) HasIntercept() bool { return m.intercept }

// Labels returns the coefficient labels.
func (m *Model) Labels() []string { return slices.Clone(m.labels) }

// ResidualVariance returns σ² = SSres/(n − k).
func (m *Model) ResidualVariance() float64 { return m.sigma2 }

// LogLikelihood returns the Gaussian log-likelihood at the fitted
// coefficients. It is +Inf for a perfect fit.
func (m *Model) LogLikelihood() float64 { return m.logLik }

// AIC returns the Akaike information criterion.
func (m *Model) AIC() float64 { return -2*m.logLik + 2*float64(m.nParams) }

// BIC returns the Bayesian information criterion.
func (m *Model) BIC() float64 {
	return -2*m.logLik + float64(m.nParams)*math.Log(float64(m.nObs))
}

// AICc returns AIC with the small-sample correction 2k(k+1)/(n−k−1).
// It is +Inf when n−k−1 ≤ 0.
func (m *Model) AICc() float64 {
	n, k := float64(m.nObs), float64(m.nParams)
	if n-k-1 <= 0 {
		return math.Inf(1)
	}
	return m.AIC() + 2*k*(k+1)/(n-k-1)
}

// Covariance returns a copy of the coefficient covariance matrix σ²(XᵗX)⁻¹.
func (m *Model) Covariance() *mat.Dense { return mat.DenseCopyOf(m.covariance) }

// FTest returns the overall significance test of the slope coefficients.
func (m *Model) FTest() FTestResult { return m.fTest }
