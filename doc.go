// Package goregress provides ordinary least squares regression with full
// statistical inference, and rolling-window regression built on top of it.
//
// # Features
//
//   - OLS fitting by the normal equations with optional intercept
//   - Standard errors, t-statistics, two-tailed p-values and confidence intervals
//   - R², adjusted R², overall F test, log-likelihood, AIC, AICc and BIC
//   - Rolling regression over every fixed-length window, with per-window
//     failure isolation and optional parallel fitting
//   - Residual diagnostics (Durbin-Watson, Ljung-Box, Box-Pierce, Jarque-Bera)
//     and the Augmented Dickey-Fuller unit-root test
//   - CSV loading of a response and its regressors
//
// # Quick Start
//
// Fit a single regression:
//
//	model, err := ols.Fit(y, x)
//	if err != nil {
//		return err
//	}
//	fmt.Println(model.Summary())
//
// Fit a regression over every window of 60 observations:
//
//	f, err := rolling.New(y, x, 60, rolling.WithWorkers(4))
//	if err != nil {
//		return err
//	}
//	betas, _ := f.CoefficientSeries(1)
//
// Quantities that are not defined for a particular fit, such as R² for a
// constant response or the F test of an intercept-only model, are reported
// as an invalid ols.NullFloat rather than as 0 or NaN.
//
// # Packages
//
//   - ols: single OLS fit and its inference
//   - rolling: rolling-window OLS
//   - stats: residual diagnostics and stationarity tests
//   - dataset: CSV loading
//
// The regress command in cmd/regress exposes fit and rolling from the shell.
//
// # References
//
//   - Greene, W. H. (2018). Econometric Analysis, 8th ed.
//   - Box, G. E. P., & Jenkins, G. M. (1976). Time Series Analysis: Forecasting and Control
package goregress
