package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/countrydash/internal/country"
	"github.com/alexisbeaulieu97/countrydash/internal/dashboard"
	"github.com/alexisbeaulieu97/countrydash/internal/dataset"
	tuidashboard "github.com/alexisbeaulieu97/countrydash/internal/tui/dashboard"
)

var (
	errNotInteractive = errors.New("the dashboard requires an interactive terminal")
	errNoDatasetFile  = errors.New("the embedded dataset cannot be watched")
)

func newDashboardCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Launch the interactive dashboard",
		Long:  `Launch the interactive TUI dashboard to browse countries by region in a grid or table view.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, flags)
		},
	}

	return cmd
}

func runDashboard(cmd *cobra.Command, flags *rootFlags) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("launch dashboard", "checking terminal", errNotInteractive, "Use 'countrydash list' for non-interactive output.")
	}

	// The TUI owns stdout, so logs only go to the configured file.
	app, err := newAppContext("launch dashboard", flags, logTarget{preferFile: true})
	if err != nil {
		return err
	}
	defer app.Close()

	app.Logger.Info("launching dashboard", "source", app.Source, "count", len(app.Countries), "region", app.Region())

	state := dashboard.NewState(app.Countries, app.StateOptions()...)
	m := tuidashboard.NewModel(state, tuidashboard.Options{
		Source: app.Source,
		Reload: reloadFunc(app.Config.Dataset),
		Logger: app.Logger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())

	if flags.watch {
		stop, err := watchDataset(cmd.Context(), app, p)
		if err != nil {
			return newCommandError("launch dashboard", "watching the dataset", err, "Pass --data with a JSON or YAML file, or drop --watch.")
		}
		defer stop()
	}

	if _, err := p.Run(); err != nil {
		app.Logger.Error(err, "dashboard execution failed")
		return fmt.Errorf("failed to run dashboard: %w", err)
	}

	app.Logger.Info("dashboard closed")
	return nil
}

func reloadFunc(path string) tuidashboard.ReloadFunc {
	return func() ([]country.Country, string, error) {
		return dataset.LoadOrDefault(path)
	}
}

// watchDataset pushes a reload into the running program whenever the
// dataset file changes. The returned func stops the watcher.
func watchDataset(ctx context.Context, app *AppContext, p *tea.Program) (func(), error) {
	if app.Config.Dataset == "" {
		return nil, errNoDatasetFile
	}

	w, err := dataset.NewWatcher(app.Config.Dataset, dataset.DefaultDebounce, app.Logger)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	reload := reloadFunc(app.Config.Dataset)
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx, func() {
			app.Logger.Info("dataset changed, reloading", "path", w.Path())
			p.Send(tuidashboard.LoadMsg(reload))
		})
	}()
	app.Logger.Info("watching dataset", "path", w.Path())

	return func() {
		cancel()
		<-done
		_ = w.Close()
	}, nil
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
