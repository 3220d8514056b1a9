// Package ols implements ordinary least squares regression with full
// statistical inference.
//
// A Model is fitted once, eagerly, from a response vector and a design
// matrix. Every statistic (coefficients, fitted values, residuals, R²,
// standard errors, t-statistics, p-values and the overall F-test) is derived
// during Fit, so all accessors are O(1) and cannot fail afterwards.
//
// # Basic Usage
//
//	y := []float64{2.5, 5.0, 7.5, 10.0, 12.5}
//	x := [][]float64{{1}, {2}, {3}, {4}, {5}}
//
//	model, err := ols.Fit(y, x)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(model.Coefficients()) // ≈ [0 2.5]
//	fmt.Println(model.Summary())
//
// An intercept column of 1.0 is prepended to every row unless the model is
// fitted with WithIntercept(false).
//
// # Undefined Statistics
//
// Some statistics are undefined on legitimate input: R² when the response is
// constant, and the F-test on a perfect fit or when there are no slope terms.
// These are returned as NullFloat values with Valid set to false. They are
// never coerced to 0 or 1.
//
// # Errors
//
// Malformed input is rejected before any matrix work with ErrEmptyInput,
// ErrDimensionMismatch, ErrInsufficientObservations or ErrNonFinite. A design
// whose cross-product XᵗX cannot be inverted fails with
// ErrSingularDesignMatrix. Match them with errors.Is.
//
// ErrSingularDesignMatrix also covers designs that are solvable in exact
// arithmetic but whose XᵗX has a condition number above
// mat.ConditionTolerance. A typical case is a badly scaled regressor next to
// the intercept, such as raw Unix timestamps; centering or rescaling the
// column fixes it. The wrapped error is a mat.Condition value.
package ols
