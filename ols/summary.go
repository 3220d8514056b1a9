package ols

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// CoefficientSummary describes one estimated coefficient.
type CoefficientSummary struct {
	Label      string
	Estimate   float64
	StdError   float64
	TStatistic float64
	PValue     float64
}

// Summary is a structured report of a fitted model.
type Summary struct {
	NObs             int
	NParams          int
	DFResidual       int
	RSquared         NullFloat
	AdjustedRSquared NullFloat
	FTest            FTestResult
	Sigma2           float64
	LogLik           float64
	AIC              float64
	BIC              float64
	Coefficients     []CoefficientSummary
}

// Summary returns a report of the fitted model. Coefficients are labelled
// "intercept" (when present) followed by x1, x2, ... or the WithNames labels.
func (m *Model) Summary() *Summary {
	coeffs := make([]CoefficientSummary, m.nParams)
	for j := range coeffs {
		coeffs[j] = CoefficientSummary{
			Label:      m.labels[j],
			Estimate:   m.coeffs[j],
			StdError:   m.stdErrs[j],
			TStatistic: m.tStats[j],
			PValue:     m.pValues[j],
		}
	}

	return &Summary{
		NObs:             m.nObs,
		NParams:          m.nParams,
		DFResidual:       m.DFResidual(),
		RSquared:         m.rSquared,
		AdjustedRSquared: m.adjRSquared,
		FTest:            m.fTest,
		Sigma2:           m.sigma2,
		LogLik:           m.logLik,
		AIC:              m.AIC(),
		BIC:              m.BIC(),
		Coefficients:     coeffs,
	}
}

// String renders the summary as a fixed-width text table.
func (s *Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "OLS Regression Results\n")
	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", 64))
	fmt.Fprintf(&b, "Observations: %-10d R-squared:      %s\n", s.NObs, formatNull(s.RSquared))
	fmt.Fprintf(&b, "Parameters:   %-10d Adj. R-squared: %s\n", s.NParams, formatNull(s.AdjustedRSquared))
	fmt.Fprintf(&b, "Df Residuals: %-10d F-statistic:    %s\n", s.DFResidual, formatNull(s.FTest.FStatistic))
	fmt.Fprintf(&b, "Df Model:     %-10d Prob (F):       %s\n", s.FTest.DFRegression, formatNull(s.FTest.PValue))
	fmt.Fprintf(&b, "Log-Lik:      %-10.4f AIC: %.4f  BIC: %.4f\n", s.LogLik, s.AIC, s.BIC)
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 64))

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "\tcoef\tstd err\tt\tP>|t|\t")
	for _, c := range s.Coefficients {
		fmt.Fprintf(w, "%s\t%.6f\t%.6f\t%.4f\t%.4f\t\n", c.Label, c.Estimate, c.StdError, c.TStatistic, c.PValue)
	}
	w.Flush()

	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", 64))
	return b.String()
}

func formatNull(v NullFloat) string {
	if !v.Valid {
		return v.String()
	}
	return fmt.Sprintf("%.4f", v.Float64)
}
