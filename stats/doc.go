// Package stats provides residual diagnostics for fitted regressions.
//
// The tests operate on plain residual slices, so they apply equally to the
// residuals of an ols.Model and to any other series.
//
// # Residual Diagnostics
//
//	model, _ := ols.Fit(y, x)
//	diag, err := stats.Diagnose(model, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("DW=%.3f LB p=%.3f JB p=%.3f\n",
//	    diag.DurbinWatson, diag.LjungBox.PValue, diag.JarqueBera.PValue)
//
// Individual tests are available as well:
//
//	// Durbin-Watson: d ≈ 2 means no first-order autocorrelation
//	dw, _ := stats.DurbinWatson(residuals)
//
//	// Ljung-Box: H0 is no autocorrelation up to the given lag
//	lb, _ := stats.LjungBox(residuals, 10, 0)
//
//	// Jarque-Bera: H0 is normally distributed residuals
//	jb, _ := stats.JarqueBera(residuals)
//
// # Stationarity
//
// The Augmented Dickey-Fuller test regresses the first difference on the
// lagged level and lagged differences with ols.Fit:
//
//	adf, err := stats.ADF(series, 0)
//	// H0: the series has a unit root (non-stationary)
//
// Phillips-Perron tests the same null without lagged differences, correcting
// for serial correlation instead. KPSS reverses the null and is best used
// alongside ADF:
//
//	pp, _ := stats.PhillipsPerron(series, 0)
//	kpss, _ := stats.KPSS(series, stats.TrendConstant, 0)
//	// H0 for KPSS: the series is stationary
//
// # Correlograms
//
//	acf, _ := stats.ACFWithConfidence(residuals, 20)
//	pacf, _ := stats.PACFWithConfidence(residuals, 20)
//	fmt.Println(acf.Significant(), pacf.Significant())
package stats
