package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user preferences loaded from ~/.config/jyotish/config.toml.
// All fields are optional; zero values defer to the built-in defaults.
type Config struct {
	// Ayanamsa is the default sidereal zero point (lahiri, raman,
	// krishnamurti, fagan_bradley).
	Ayanamsa string `toml:"ayanamsa"`

	// Mode is the default aspect mode (rasi or degree).
	Mode string `toml:"mode"`

	// Locations are named birth place presets for the --location flag.
	Locations map[string]Location `toml:"locations"`
}

// Location is a named birth place preset.
type Location struct {
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
	UTCOffset float64 `toml:"utc_offset"`
}

// configPath returns the config file path (~/.config/jyotish/config.toml).
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads the config file if it exists. A missing file is not an
// error; a malformed one is.
func LoadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, nil
	}
	return loadConfigFile(path)
}

func loadConfigFile(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
