// Package config loads the job mapper settings from a TOML file, the
// JOBMAP_ environment and built-in defaults, in that order of precedence
// below explicit command-line flags.
package config

import (
	"os"
	"path/filepath"

	"job-mapper/internal/mapexport"
)

// Config is the typed application configuration
type Config struct {
	DataFile      string       `mapstructure:"data_file" toml:"data_file"`
	MapFile       string       `mapstructure:"map_file" toml:"map_file"`
	LogLevel      string       `mapstructure:"log_level" toml:"log_level"`
	LogFile       string       `mapstructure:"log_file" toml:"log_file"`
	WatchDataFile bool         `mapstructure:"watch_data_file" toml:"watch_data_file"`
	Map           MapConfig    `mapstructure:"map" toml:"map"`
	Window        WindowConfig `mapstructure:"window" toml:"window"`
}

// MapConfig controls the exported Leaflet map
type MapConfig struct {
	CenterLat   float64 `mapstructure:"center_lat" toml:"center_lat"`
	CenterLon   float64 `mapstructure:"center_lon" toml:"center_lon"`
	Zoom        int     `mapstructure:"zoom" toml:"zoom"`
	TileURL     string  `mapstructure:"tile_url" toml:"tile_url"`
	Attribution string  `mapstructure:"attribution" toml:"attribution"`
}

type WindowConfig struct {
	Width  float32 `mapstructure:"width" toml:"width"`
	Height float32 `mapstructure:"height" toml:"height"`
}

// ExporterOptions converts the map section for the exporter
func (m MapConfig) ExporterOptions() mapexport.Options {
	return mapexport.Options{
		CenterLat:   m.CenterLat,
		CenterLon:   m.CenterLon,
		Zoom:        m.Zoom,
		TileURL:     m.TileURL,
		Attribution: m.Attribution,
		Title:       mapexport.DefaultTitle,
	}
}

// DataPath returns the data file with a leading ~ expanded
func (c *Config) DataPath() string {
	return expandHome(c.DataFile)
}

func (c *Config) MapPath() string {
	return expandHome(c.MapFile)
}

func (c *Config) LogPath() string {
	return expandHome(c.LogFile)
}

// DefaultPath returns the config file location used when neither a flag
// nor JOBMAP_CONFIG names one
func DefaultPath() string {
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.toml")
	}
	return filepath.Join(home, ".config", "job-mapper", "config.toml")
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	// Only expand "~" or "~/..."
	if len(path) > 1 && path[1] != '/' && path[1] != filepath.Separator {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return home
	}
	return filepath.Join(home, path[2:])
}
