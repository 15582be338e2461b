package main

import (
	"fmt"

	"job-mapper/internal/config"

	"github.com/spf13/cobra"
)

func newConfigCmd(rs *runtimeState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage job-mapper configuration",
		Long: "Manage job-mapper configuration.\n\n" +
			"Configuration is stored as TOML at ~/.config/job-mapper/config.toml " +
			"by default. Every key may also be set with a JOBMAP_ environment " +
			"variable, e.g. JOBMAP_MAP_ZOOM=4.",
	}

	cmd.AddCommand(newConfigInitCmd(rs))
	cmd.AddCommand(newConfigShowCmd(rs))
	return cmd
}

func newConfigInitCmd(rs *runtimeState) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		// The file may not exist or may be invalid; only the path is needed
		PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
		PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			path := rs.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newConfigShowCmd(rs *runtimeState) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if rs.usedFile != "" {
				fmt.Fprintf(out, "# loaded from %s\n", rs.usedFile)
			} else {
				fmt.Fprintln(out, "# no config file found, showing defaults")
			}
			return config.Encode(out, rs.cfg)
		},
	}
}
