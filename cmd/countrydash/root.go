package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	dataPath   string
	theme      string
	view       string
	region     string
	verbose    bool
	watch      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "countrydash",
		Short:         "Browse country data in an interactive terminal dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the dashboard
			return runDashboard(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a countrydash YAML config")
	cmd.PersistentFlags().StringVarP(&flags.dataPath, "data", "d", "", "Country dataset (.json, .yaml); defaults to the embedded dataset")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Initial theme: light or dark")
	cmd.PersistentFlags().StringVar(&flags.view, "view", "", "Initial view: grid or table")
	cmd.PersistentFlags().StringVarP(&flags.region, "region", "r", "", "Region filter (\"All\" disables filtering)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVarP(&flags.watch, "watch", "w", false, "Reload the dashboard when the dataset file changes")

	cmd.AddCommand(newDashboardCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newRegionsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
