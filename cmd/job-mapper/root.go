package main

import (
	"fmt"
	"io"

	"job-mapper/internal/app"
	"job-mapper/internal/config"
	"job-mapper/internal/logger"

	"github.com/spf13/cobra"
)

// runtimeState is shared by the root command and its subcommands
type runtimeState struct {
	configPath string
	dataFile   string
	mapFile    string

	cfg       *config.Config
	usedFile  string
	log       logger.Logger
	logCloser io.Closer
}

func newRootCmd() *cobra.Command {
	rs := &runtimeState{}

	root := &cobra.Command{
		Use:   "job-mapper",
		Short: "Track job openings and plot them on a map",
		Long: "Job Mapper keeps a list of job openings in a CSV file and renders them " +
			"as markers on an interactive map.\n\n" +
			"Running without a subcommand opens the desktop window.",
		SilenceErrors:      true,
		SilenceUsage:       true,
		PersistentPreRunE:  rs.initialize,
		PersistentPostRunE: rs.finish,
		RunE:               rs.runGUI,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&rs.configPath, "config", "", "config file (default $JOBMAP_CONFIG or ~/.config/job-mapper/config.toml)")
	flags.StringVar(&rs.dataFile, "data", "", "job data CSV file, overrides data_file")
	flags.StringVar(&rs.mapFile, "map", "", "map output file, overrides map_file")

	root.AddCommand(newExportCmd(rs))
	root.AddCommand(newConfigCmd(rs))
	root.AddCommand(newVersionCmd())

	return root
}

func (rs *runtimeState) initialize(cmd *cobra.Command, args []string) error {
	path := rs.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, used, err := config.Load(path)
	if err != nil {
		return err
	}
	if rs.dataFile != "" {
		cfg.DataFile = rs.dataFile
	}
	if rs.mapFile != "" {
		cfg.MapFile = rs.mapFile
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	log, closer := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		File:    cfg.LogPath(),
		Console: cmd.ErrOrStderr(),
	})

	rs.cfg = cfg
	rs.usedFile = used
	rs.log = log
	rs.logCloser = closer

	log.Debug("CLI", "configuration loaded", map[string]interface{}{
		"config_file": used,
		"command":     cmd.Name(),
	})
	return nil
}

func (rs *runtimeState) finish(cmd *cobra.Command, args []string) error {
	if rs.logCloser != nil {
		return rs.logCloser.Close()
	}
	return nil
}

func (rs *runtimeState) runGUI(cmd *cobra.Command, args []string) error {
	application, err := app.NewApplication(rs.cfg, rs.log)
	if err != nil {
		rs.log.Error("CLI", err, map[string]interface{}{
			"data_file": rs.cfg.DataPath(),
		})
		return fmt.Errorf("failed to start: %w", err)
	}
	return application.Run()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  cobra.NoArgs,
		// Version needs neither config nor logging
		PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
		PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", app.AppName, app.Version)
			return nil
		},
	}
}
