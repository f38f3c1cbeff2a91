package cli

import (
	"errors"
	"log/slog"

	"github.com/alexanderramin/courseload/internal/config"
	"github.com/alexanderramin/courseload/internal/logging"
	"github.com/alexanderramin/courseload/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings shared by CLI commands. Fields left
// nil are filled from the config file and environment before a command runs.
type App struct {
	Estimator service.EstimateService
	Rates     service.RateService
	Config    *config.Config
	Logger    *slog.Logger

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
	Version       string

	configPath string
	verbose    bool
	closers    []func() error
}

// NewRootCmd creates the top-level "courseload" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "courseload",
		Short:         "Estimate weekly student workload for a course",
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Close()
		},
	}

	root.PersistentFlags().StringVar(&app.configPath, "config", "", "Config file (default $HOME/.courseload/config.yaml)")
	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Write debug logs to stderr")

	root.AddCommand(
		newEstimateCmd(app),
		newRatesCmd(app),
		newServeCmd(app),
	)

	return root
}

func (a *App) setup(cmd *cobra.Command) error {
	if a.Config == nil {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.Config = &cfg
	}
	if a.Logger == nil {
		logger, closeFn, err := logging.New(a.Config.Log, cmd.ErrOrStderr(), a.verbose)
		if err != nil {
			return err
		}
		a.Logger = logger
		a.closers = append(a.closers, closeFn)
	}
	if a.Estimator == nil {
		a.Estimator = service.NewEstimateService(service.NewLogUseCaseObserver(a.Logger))
	}
	if a.Rates == nil {
		a.Rates = service.NewRateService()
	}
	return nil
}

// Close releases the log file opened during setup. It is safe to call more
// than once.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}
