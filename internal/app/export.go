package app

import (
	"fmt"

	"job-mapper/internal/config"
	"job-mapper/internal/logger"
	"job-mapper/internal/mapexport"

	fyneapp "fyne.io/fyne/v2/app"
)

// ExportMap loads the data file and writes the map without opening a
// window. When open is set the map is handed to the system browser.
func ExportMap(cfg *config.Config, log logger.Logger, open bool) (string, error) {
	service := NewJobService(cfg, log)
	if err := service.Load(); err != nil {
		return "", fmt.Errorf("load jobs: %w", err)
	}

	path, err := service.ExportMap()
	if err != nil {
		return "", err
	}

	if open {
		if err := fyneapp.NewWithID(AppID).OpenURL(mapexport.FileURL(path)); err != nil {
			return path, fmt.Errorf("open map: %w", err)
		}
	}
	return path, nil
}
