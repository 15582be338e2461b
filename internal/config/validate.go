package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a config validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation failures.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var b strings.Builder
	b.WriteString("config validation failed:\n")
	for _, err := range e {
		b.WriteString("  - ")
		b.WriteString(err.Error())
		b.WriteString("\n")
	}
	return b.String()
}

var validLogLevels = map[string]bool{
	"trace":   true,
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate checks the configuration for errors.
// Returns ValidationErrors if validation fails.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if strings.TrimSpace(cfg.DataFile) == "" {
		errs = append(errs, ValidationError{Field: "data_file", Message: "must not be empty"})
	}
	if strings.TrimSpace(cfg.MapFile) == "" {
		errs = append(errs, ValidationError{Field: "map_file", Message: "must not be empty"})
	}
	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		errs = append(errs, ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("unknown level %q", cfg.LogLevel),
		})
	}

	if cfg.Map.Zoom < 0 || cfg.Map.Zoom > 19 {
		errs = append(errs, ValidationError{
			Field:   "map.zoom",
			Message: fmt.Sprintf("must be between 0 and 19, got %d", cfg.Map.Zoom),
		})
	}
	if cfg.Map.CenterLat < -90 || cfg.Map.CenterLat > 90 {
		errs = append(errs, ValidationError{
			Field:   "map.center_lat",
			Message: fmt.Sprintf("must be between -90 and 90, got %g", cfg.Map.CenterLat),
		})
	}
	if cfg.Map.CenterLon < -180 || cfg.Map.CenterLon > 180 {
		errs = append(errs, ValidationError{
			Field:   "map.center_lon",
			Message: fmt.Sprintf("must be between -180 and 180, got %g", cfg.Map.CenterLon),
		})
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		errs = append(errs, ValidationError{
			Field:   "window",
			Message: fmt.Sprintf("size must be positive, got %gx%g", cfg.Window.Width, cfg.Window.Height),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
