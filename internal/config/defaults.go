package config

import (
	"job-mapper/internal/mapexport"

	"github.com/spf13/viper"
)

const (
	EnvPrefix     = "JOBMAP"
	EnvConfigPath = "JOBMAP_CONFIG"
)

// Default configuration values.
const (
	DefaultDataFile      = "jobs.csv"
	DefaultMapFile       = "job_map.html"
	DefaultLogLevel      = "info"
	DefaultLogFile       = ""
	DefaultWatchDataFile = false

	DefaultWindowWidth  = 900
	DefaultWindowHeight = 640
)

// NewDefaultConfig returns the configuration used when no file exists
func NewDefaultConfig() Config {
	return Config{
		DataFile:      DefaultDataFile,
		MapFile:       DefaultMapFile,
		LogLevel:      DefaultLogLevel,
		LogFile:       DefaultLogFile,
		WatchDataFile: DefaultWatchDataFile,
		Map: MapConfig{
			CenterLat:   mapexport.DefaultCenterLat,
			CenterLon:   mapexport.DefaultCenterLon,
			Zoom:        mapexport.DefaultZoom,
			TileURL:     mapexport.DefaultTileURL,
			Attribution: mapexport.DefaultAttribution,
		},
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
	}
}

// setViperDefaults registers all default configuration values with a viper instance.
func setViperDefaults(v *viper.Viper) {
	def := NewDefaultConfig()

	v.SetDefault("data_file", def.DataFile)
	v.SetDefault("map_file", def.MapFile)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("watch_data_file", def.WatchDataFile)

	// Map defaults
	v.SetDefault("map.center_lat", def.Map.CenterLat)
	v.SetDefault("map.center_lon", def.Map.CenterLon)
	v.SetDefault("map.zoom", def.Map.Zoom)
	v.SetDefault("map.tile_url", def.Map.TileURL)
	v.SetDefault("map.attribution", def.Map.Attribution)

	// Window defaults
	v.SetDefault("window.width", def.Window.Width)
	v.SetDefault("window.height", def.Window.Height)
}
