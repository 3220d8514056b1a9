package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sartorproj/goregress/ols"
	"github.com/sartorproj/goregress/stats"
)

func newFitCmd(a *app) *cobra.Command {
	defaults := DefaultConfig()
	cmd := &cobra.Command{
		Use:   "fit <csv>",
		Short: "Fit a single OLS regression and print its summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFit(cmd.OutOrStdout(), args[0])
		},
	}
	cmd.Flags().Int("lags", defaults.Lags, "Ljung-Box lags")
	cmd.Flags().Float64("alpha", defaults.Alpha, "significance level of the confidence intervals")
	return cmd
}

func (a *app) runFit(w io.Writer, path string) error {
	ds, err := a.load(path)
	if err != nil {
		return err
	}

	m, err := ols.Fit(ds.Response, ds.Design,
		ols.WithIntercept(!a.cfg.NoIntercept),
		ols.WithNames(ds.Features...),
	)
	if err != nil {
		return fmt.Errorf("fit %s: %w", path, err)
	}

	fmt.Fprintf(w, "Response: %s\n\n", ds.ResponseName)
	fmt.Fprint(w, m.Summary().String())

	ci, err := m.ConfidenceIntervals(a.cfg.Alpha)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%g%% confidence intervals\n", 100*(1-a.cfg.Alpha))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for j, label := range m.Labels() {
		fmt.Fprintf(tw, "%s\t%.6g\t%.6g\n", label, ci[j][0], ci[j][1])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	diag, err := stats.Diagnose(m, a.cfg.Lags)
	if errors.Is(err, stats.ErrZeroVariance) || errors.Is(err, stats.ErrTooShort) {
		a.log.WithError(err).Warn("residual diagnostics skipped")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nResidual diagnostics")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Durbin-Watson\t%.4f\t\n", diag.DurbinWatson)
	fmt.Fprintf(tw, "Ljung-Box Q(%d)\t%.4f\tp=%.4g\n", diag.LjungBox.Lags, diag.LjungBox.Statistic, diag.LjungBox.PValue)
	fmt.Fprintf(tw, "Jarque-Bera\t%.4f\tp=%.4g\n", diag.JarqueBera.Statistic, diag.JarqueBera.PValue)
	fmt.Fprintf(tw, "Significant PACF lags\t%v\t\n", diag.PACF.Significant())
	return tw.Flush()
}
