package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sartorproj/goregress/dataset"
)

// app carries the resolved configuration and logger into subcommands.
type app struct {
	configPath string
	cfg        *Config
	log        *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	defaults := DefaultConfig()

	cmd := &cobra.Command{
		Use:           "regress",
		Short:         "Ordinary least squares and rolling regression on CSV data",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.resolve(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file")
	flags.String("response", defaults.Response, "response column")
	flags.StringSlice("features", nil, "feature columns (default: all other columns)")
	flags.String("date-column", "", "date column (auto-detected when empty)")
	flags.String("delimiter", defaults.Delimiter, "field delimiter")
	flags.Bool("no-intercept", false, "fit without a constant term")
	flags.String("log-level", defaults.LogLevel, "log level (trace, debug, info, warn, error)")

	cmd.AddCommand(newFitCmd(a), newRollingCmd(a))
	return cmd
}

// resolve loads the config file, applies explicitly set flags and validates
// the result.
func (a *app) resolve(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("response") {
		cfg.Response, _ = flags.GetString("response")
	}
	if flags.Changed("features") {
		cfg.Features, _ = flags.GetStringSlice("features")
	}
	if flags.Changed("date-column") {
		cfg.DateColumn, _ = flags.GetString("date-column")
	}
	if flags.Changed("delimiter") {
		cfg.Delimiter, _ = flags.GetString("delimiter")
	}
	if flags.Changed("no-intercept") {
		cfg.NoIntercept, _ = flags.GetBool("no-intercept")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("lags") {
		cfg.Lags, _ = flags.GetInt("lags")
	}
	if flags.Changed("window") {
		cfg.Window, _ = flags.GetInt("window")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("alpha") {
		cfg.Alpha, _ = flags.GetFloat64("alpha")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger.SetOutput(cmd.ErrOrStderr())

	a.cfg = cfg
	a.log = logger
	return nil
}

func (a *app) load(path string) (*dataset.Dataset, error) {
	opts := dataset.DefaultCSVOptions()
	opts.ResponseColumn = a.cfg.Response
	opts.FeatureColumns = a.cfg.Features
	opts.DateColumn = a.cfg.DateColumn
	opts.Delimiter = []rune(a.cfg.Delimiter)[0]

	ds, err := dataset.LoadCSV(path, opts)
	if err != nil {
		return nil, err
	}
	a.log.WithFields(logrus.Fields{
		"file":     path,
		"rows":     ds.Len(),
		"response": ds.ResponseName,
		"features": ds.Features,
	}).Debug("dataset loaded")
	return ds, nil
}
