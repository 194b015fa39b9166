package main

import (
	"io"

	"github.com/alexisbeaulieu97/countrydash/internal/config"
	"github.com/alexisbeaulieu97/countrydash/internal/country"
	"github.com/alexisbeaulieu97/countrydash/internal/dashboard"
	"github.com/alexisbeaulieu97/countrydash/internal/dataset"
	"github.com/alexisbeaulieu97/countrydash/internal/logger"
)

// AppContext bundles what every command needs: the resolved config, a
// logger and the loaded countries.
type AppContext struct {
	Config    *config.Config
	Logger    *logger.Logger
	Countries []country.Country
	Source    string
}

// logTarget selects where command logs go.
type logTarget struct {
	// writer is used unless the config names a log file and preferFile is set.
	writer     io.Writer
	preferFile bool
}

// newAppContext resolves configuration (flags over config file over
// defaults), builds the logger and loads the dataset.
func newAppContext(operation string, flags *rootFlags, target logTarget) (*AppContext, error) {
	cfg, err := config.LoadOrDefault(flags.configPath)
	if err != nil {
		return nil, newCommandError(operation, "loading configuration", err, "Check the --config file syntax and values.")
	}
	if err := applyFlagOverrides(cfg, flags); err != nil {
		return nil, newCommandError(operation, "applying command-line flags", err, "Use --theme light|dark and --view grid|table.")
	}

	log, err := newCommandLogger(cfg, target)
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "Check logging.level and logging.file in your config.")
	}

	countries, source, err := dataset.LoadOrDefault(cfg.Dataset)
	if err != nil {
		log.Error(err, "dataset load failed", "source", cfg.Dataset)
		_ = log.Close()
		return nil, newCommandError(operation, "loading country data", err, "Check that the dataset exists and every record has a name and region.")
	}
	log.Debug("dataset loaded", "source", source, "count", len(countries))

	return &AppContext{Config: cfg, Logger: log, Countries: countries, Source: source}, nil
}

func applyFlagOverrides(cfg *config.Config, flags *rootFlags) error {
	if flags.dataPath != "" {
		cfg.Dataset = flags.dataPath
	}
	if flags.theme != "" {
		cfg.Theme = flags.theme
	}
	if flags.view != "" {
		cfg.View = flags.view
	}
	if flags.region != "" {
		cfg.Region = flags.region
	}
	if flags.verbose {
		cfg.Logging.Level = "debug"
	}

	if _, err := dashboard.ParseTheme(cfg.Theme); err != nil {
		return err
	}
	if _, err := dashboard.ParseViewMode(cfg.View); err != nil {
		return err
	}
	return nil
}

func newCommandLogger(cfg *config.Config, target logTarget) (*logger.Logger, error) {
	opts := logger.Options{
		Level:         cfg.Logging.Level,
		HumanReadable: cfg.Logging.HumanReadable,
		Writer:        target.writer,
	}
	if target.preferFile {
		if cfg.Logging.File == "" {
			return logger.Discard(), nil
		}
		opts.File = cfg.Logging.File
	}
	return logger.New(opts)
}

// StateOptions converts the resolved config into initial dashboard state.
func (a *AppContext) StateOptions() []dashboard.Option {
	// Values were checked by applyFlagOverrides.
	theme, _ := dashboard.ParseTheme(a.Config.Theme)
	view, _ := dashboard.ParseViewMode(a.Config.View)

	return []dashboard.Option{
		dashboard.WithTheme(theme),
		dashboard.WithViewMode(view),
		dashboard.WithRegion(a.Config.Region),
	}
}

// Region returns the resolved region filter.
func (a *AppContext) Region() string {
	if a.Config.Region == "" {
		return country.AllRegions
	}
	return a.Config.Region
}

// Close releases the logger.
func (a *AppContext) Close() error {
	return a.Logger.Close()
}
