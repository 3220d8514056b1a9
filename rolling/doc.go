// Package rolling fits ordinary least squares regressions over sliding
// windows of a longer series.
//
// For a series of n observations and a window of w, New fits n − w + 1
// independent models, one per window start. Consecutive windows overlap by
// w − 1 observations, which yields a smoothly evolving coefficient
// trajectory.
//
// # Failure Isolation
//
// A window whose fit fails, typically with ols.ErrSingularDesignMatrix when a
// short span has no variation in a predictor, is recorded as a failed Window
// and the scan continues. Only construction-time validation and context
// cancellation abort New.
//
// # Basic Usage
//
//	fitter, err := rolling.New(y, x, 60, rolling.WithWorkers(runtime.NumCPU()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	beta, _ := fitter.CoefficientSeries(1)
//	for i, b := range beta {
//	    if v, ok := b.Get(); ok {
//	        fmt.Println(i, v)
//	    }
//	}
//
// Windows can be fitted concurrently with WithWorkers. Results are always
// ordered by window start.
package rolling
