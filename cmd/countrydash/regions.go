package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/countrydash/internal/country"
)

func newRegionsCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "Show the region filter options with country counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegions(cmd, flags)
		},
	}

	return cmd
}

func runRegions(cmd *cobra.Command, flags *rootFlags) error {
	app, err := newAppContext("list regions", flags, logTarget{writer: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	defer app.Close()

	counts := country.CountByRegion(app.Countries)
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "REGION\tCOUNTRIES")
	for _, region := range country.RegionOptions(app.Countries) {
		count := counts[region]
		if region == country.AllRegions {
			count = len(app.Countries)
		}
		fmt.Fprintf(writer, "%s\t%d\n", region, count)
	}

	return writer.Flush()
}
