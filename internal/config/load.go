package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

// Load reads the configuration at path. A missing file is not an error;
// defaults and JOBMAP_ environment variables still apply. The returned
// string is the file actually read, empty when none was.
func Load(path string) (*Config, string, error) {
	v := viper.New()
	v.SetConfigType("toml")

	// Setup environment variable support
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Register default values
	setViperDefaults(v)

	used := ""
	if path != "" {
		path = expandHome(path)
		_, err := os.Stat(path)
		switch {
		case err == nil:
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, "", fmt.Errorf("failed to read config from %s: %w", path, err)
			}
			used = path
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, "", fmt.Errorf("failed to stat config %s: %w", path, err)
		}
	}

	cfg, err := unmarshalConfig(v)
	if err != nil {
		return nil, "", err
	}
	return cfg, used, nil
}

// unmarshalConfig converts viper config to typed Config struct.
func unmarshalConfig(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Encode writes cfg as TOML
func Encode(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ErrConfigExists is returned by WriteDefault when the file is present and
// overwrite was not requested
var ErrConfigExists = errors.New("config file already exists")

// WriteDefault writes the default configuration to path, creating parent
// directories as needed
func WriteDefault(path string, overwrite bool) error {
	path = expandHome(path)

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	cfg := NewDefaultConfig()
	if err := Encode(f, &cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
