package main

import (
	"fmt"

	"job-mapper/internal/app"

	"github.com/spf13/cobra"
)

func newExportCmd(rs *runtimeState) *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the job map without opening the window",
		Long: "Write the job map without opening the window.\n\n" +
			"Loads the job data file, renders every job as a map marker and " +
			"prints the absolute path of the written document.",
		Example: `  # Write job_map.html next to jobs.csv
  job-mapper export

  # Use another data file and open the result
  job-mapper export --data ~/jobs/2024.csv --open`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.ExportMap(rs.cfg, rs.log, open)
			if path != "" {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "open the map in the default browser")
	return cmd
}
