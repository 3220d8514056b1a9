package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sartorproj/goregress/dataset"
	"github.com/sartorproj/goregress/ols"
	"github.com/sartorproj/goregress/rolling"
)

var errWindowRequired = errors.New("--window is required")

func newRollingCmd(a *app) *cobra.Command {
	var (
		out     string
		metrics bool
	)
	defaults := DefaultConfig()
	cmd := &cobra.Command{
		Use:   "rolling <csv>",
		Short: "Fit OLS over every window of a series and write per-window estimates as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			var reg *prometheus.Registry
			if metrics {
				reg = prometheus.NewRegistry()
			}
			if err := a.runRolling(cmd, w, args[0], reg); err != nil {
				return err
			}
			if reg != nil {
				return dumpMetrics(cmd.ErrOrStderr(), reg)
			}
			return nil
		},
	}
	cmd.Flags().Int("window", defaults.Window, "window length (at least 2)")
	cmd.Flags().Int("workers", defaults.Workers, "windows fitted concurrently")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "print Prometheus metrics to stderr after the run")
	return cmd
}

func (a *app) runRolling(cmd *cobra.Command, w io.Writer, path string, reg *prometheus.Registry) error {
	if a.cfg.Window == 0 {
		return errWindowRequired
	}
	ds, err := a.load(path)
	if err != nil {
		return err
	}

	opts := []rolling.Option{
		rolling.WithIntercept(!a.cfg.NoIntercept),
		rolling.WithWorkers(a.cfg.Workers),
		rolling.WithLogger(a.log.WithField("file", path)),
	}
	if reg != nil {
		m, err := rolling.NewMetrics(reg)
		if err != nil {
			return err
		}
		opts = append(opts, rolling.WithMetrics(m))
	}

	f, err := rolling.NewContext(cmd.Context(), ds.Response, ds.Design, a.cfg.Window, opts...)
	if err != nil {
		return fmt.Errorf("rolling %s: %w", path, err)
	}
	if failed := len(f.Failures()); failed > 0 {
		a.log.WithFields(logrus.Fields{"failed": failed, "windows": f.Len()}).Warn("some windows could not be fitted")
	}
	return writeWindows(w, ds, f)
}

// writeWindows writes one CSV row per window. Undefined values are left
// empty.
func writeWindows(w io.Writer, ds *dataset.Dataset, f *rolling.Fitter) error {
	labels := ds.Features
	if f.HasIntercept() {
		labels = append([]string{ols.InterceptLabel}, labels...)
	}

	header := []string{"start", "end", "date", "ok", "error"}
	header = append(header, labels...)
	header = append(header, "r2", "adj_r2")

	coeffs := make([][]ols.NullFloat, f.NumParams())
	for j := range coeffs {
		var err error
		if coeffs[j], err = f.CoefficientSeries(j); err != nil {
			return err
		}
	}
	r2 := f.RSquaredSeries()
	adj := f.AdjustedRSquaredSeries()

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, win := range f.Results() {
		date := ""
		if ds.Timestamps != nil {
			date = ds.Timestamps[win.End].Format("2006-01-02")
		}
		msg := ""
		if !win.OK() {
			msg = win.Err.Error()
		}
		record := []string{
			strconv.Itoa(win.Start),
			strconv.Itoa(win.End),
			date,
			strconv.FormatBool(win.OK()),
			msg,
		}
		for j := range coeffs {
			record = append(record, formatCell(coeffs[j][i]))
		}
		record = append(record, formatCell(r2[i]), formatCell(adj[i]))
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(v ols.NullFloat) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'g', 10, 64)
}

func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
