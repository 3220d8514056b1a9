package rolling

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sartorproj/goregress/ols"
)

// Window is the outcome of one window fit.
//
// Start and End are inclusive indices into the original series, so
// End − Start equals the window size minus one. Exactly one of Model and Err
// is set.
type Window struct {
	Start int
	End   int
	Model *ols.Model
	Err   error
}

// OK reports whether the window was fitted successfully.
func (w Window) OK() bool {
	return w.Err == nil
}

// Fitter holds the per-window fits of a rolling regression.
type Fitter struct {
	window    int
	nParams   int
	intercept bool
	results   []Window
}

type config struct {
	intercept bool
	workers   int
	logger    logrus.FieldLogger
	metrics   *Metrics
}

// Option configures New.
type Option func(*config)

// WithIntercept controls whether every window model includes a constant
// term. The default is true.
func WithIntercept(include bool) Option {
	return func(c *config) {
		c.intercept = include
	}
}

// WithWorkers fits up to n windows concurrently. Values below 2 fit
// sequentially.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithLogger sets the logger for failed windows and scan summaries.
// By default nothing is logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithMetrics records every window fit to m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// New fits a model over every window of the series. See NewContext.
func New(y []float64, x [][]float64, window int, opts ...Option) (*Fitter, error) {
	return NewContext(context.Background(), y, x, window, opts...)
}

// NewContext fits a model over every window of length window in (y, x).
//
// It fails with ErrWindowTooSmall when window < 2, with ErrInsufficientData
// when len(y) < window, and with ols.ErrDimensionMismatch when x and y have
// different lengths or the rows of x differ in length. Individual window
// failures do not fail the scan; they are reported through Results. If ctx is
// cancelled before every window is fitted, NewContext returns the context
// error.
func NewContext(ctx context.Context, y []float64, x [][]float64, window int, opts ...Option) (*Fitter, error) {
	cfg := config{intercept: true, workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.logger = l
	}

	if window < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrWindowTooSmall, window)
	}
	if len(y) < window {
		return nil, fmt.Errorf("%w: %d observations, window %d", ErrInsufficientData, len(y), window)
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d design rows for %d responses", ols.ErrDimensionMismatch, len(x), len(y))
	}
	for i, row := range x {
		if len(row) != len(x[0]) {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ols.ErrDimensionMismatch, i, len(row), len(x[0]))
		}
	}

	f := &Fitter{
		window:    window,
		nParams:   len(x[0]),
		intercept: cfg.intercept,
		results:   make([]Window, len(y)-window+1),
	}
	if cfg.intercept {
		f.nParams++
	}

	start := time.Now()
	if err := f.scan(ctx, y, x, &cfg); err != nil {
		return nil, err
	}

	cfg.logger.WithFields(logrus.Fields{
		"windows":  len(f.results),
		"failed":   len(f.Failures()),
		"window":   window,
		"workers":  cfg.workers,
		"duration": time.Since(start),
	}).Info("rolling scan complete")
	return f, nil
}

func (f *Fitter) scan(ctx context.Context, y []float64, x [][]float64, cfg *config) error {
	if cfg.workers < 2 {
		for i := range f.results {
			if err := ctx.Err(); err != nil {
				return err
			}
			f.results[i] = f.fit(y, x, i, cfg)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i := range f.results {
		if gctx.Err() != nil {
			break
		}
		i := i
		// Each goroutine owns results[i]; no other state is shared.
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f.results[i] = f.fit(y, x, i, cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (f *Fitter) fit(y []float64, x [][]float64, start int, cfg *config) Window {
	end := start + f.window
	began := time.Now()
	m, err := ols.Fit(y[start:end], x[start:end], ols.WithIntercept(f.intercept))
	cfg.metrics.observe(err, time.Since(began))

	if err != nil {
		cfg.logger.WithFields(logrus.Fields{
			"start": start,
			"end":   end - 1,
		}).WithError(err).Debug("window fit failed")
	}
	return Window{Start: start, End: end - 1, Model: m, Err: err}
}

// Results returns every window outcome ordered by start index.
func (f *Fitter) Results() []Window {
	return slices.Clone(f.results)
}

// Failures returns the windows whose fit failed.
func (f *Fitter) Failures() []Window {
	var failed []Window
	for _, w := range f.results {
		if !w.OK() {
			failed = append(failed, w)
		}
	}
	return failed
}

// Len returns the number of windows, n − window + 1.
func (f *Fitter) Len() int { return len(f.results) }

// WindowSize returns the window length.
func (f *Fitter) WindowSize() int { return f.window }

// NumParams returns the number of coefficients per window model.
func (f *Fitter) NumParams() int { return f.nParams }

// HasIntercept reports whether window models include a constant term.
func (f *Fitter) HasIntercept() bool { return f.intercept }

// CoefficientSeries returns coefficient i of every window. Failed windows
// are undefined.
func (f *Fitter) CoefficientSeries(i int) ([]ols.NullFloat, error) {
	return f.paramSeries(i, (*ols.Model).Coefficients)
}

// StandardErrorSeries returns the standard error of coefficient i per window.
func (f *Fitter) StandardErrorSeries(i int) ([]ols.NullFloat, error) {
	return f.paramSeries(i, (*ols.Model).StandardErrors)
}

// TStatisticSeries returns the t-statistic of coefficient i per window.
func (f *Fitter) TStatisticSeries(i int) ([]ols.NullFloat, error) {
	return f.paramSeries(i, (*ols.Model).TStatistics)
}

// PValueSeries returns the p-value of coefficient i per window.
func (f *Fitter) PValueSeries(i int) ([]ols.NullFloat, error) {
	return f.paramSeries(i, (*ols.Model).PValues)
}

// RSquaredSeries returns R² per window. Failed windows and windows with a
// constant response are undefined.
func (f *Fitter) RSquaredSeries() []ols.NullFloat {
	return f.modelSeries((*ols.Model).RSquared)
}

// AdjustedRSquaredSeries returns adjusted R² per window.
func (f *Fitter) AdjustedRSquaredSeries() []ols.NullFloat {
	return f.modelSeries((*ols.Model).AdjustedRSquared)
}

func (f *Fitter) paramSeries(i int, get func(*ols.Model) []float64) ([]ols.NullFloat, error) {
	if i < 0 || i >= f.nParams {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, f.nParams)
	}
	out := make([]ols.NullFloat, len(f.results))
	for w, res := range f.results {
		if res.OK() {
			out[w] = ols.Defined(get(res.Model)[i])
		}
	}
	return out, nil
}

func (f *Fitter) modelSeries(get func(*ols.Model) ols.NullFloat) []ols.NullFloat {
	out := make([]ols.NullFloat, len(f.results))
	for w, res := range f.results {
		if res.OK() {
			out[w] = get(res.Model)
		}
	}
	return out
}
