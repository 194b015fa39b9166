package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/countrydash/internal/country"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List countries, optionally filtered by region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, flags *rootFlags, opts *listOptions) error {
	app, err := newAppContext("list", flags, logTarget{writer: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	defer app.Close()

	region := app.Region()
	countries := country.Filter(app.Countries, region)
	app.Logger.Debug("countries filtered", "region", region, "visible", len(countries), "total", len(app.Countries))

	if opts.jsonOutput {
		return renderListJSON(cmd, region, countries)
	}

	if len(countries) == 0 {
		return renderEmptyList(cmd, region)
	}

	return renderListTable(cmd, countries)
}

func renderEmptyList(cmd *cobra.Command, region string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "No countries found in region %q.\n", region)
	fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'countrydash regions' to see the available regions.")
	return nil
}

func renderListTable(cmd *cobra.Command, countries []country.Country) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "NAME\tCAPITAL\tREGION\tPOPULATION")

	for _, c := range countries {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
			c.Name,
			c.DisplayCapital(),
			c.Region,
			country.FormatPopulation(c.Population),
		)
	}

	return writer.Flush()
}

type listJSONPayload struct {
	Version   string            `json:"version"`
	Region    string            `json:"region"`
	Count     int               `json:"count"`
	Countries []country.Country `json:"countries"`
}

func renderListJSON(cmd *cobra.Command, region string, countries []country.Country) error {
	payload := listJSONPayload{
		Version:   "1.0",
		Region:    region,
		Count:     len(countries),
		Countries: countries,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
