// Package config resolves the tool's configuration from command-line
// flags, environment variables, and the optional .eza.yaml file, with
// an explicit priority order. The resolved result feeds theme assembly;
// nothing here parses color specifications itself.
package config

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// AppConfig is the optional .eza.yaml file in the working directory or
// the user's config directory.
type AppConfig struct {
	Color      string `yaml:"color"`       // "always", "auto" or "never"
	ColorScale bool   `yaml:"color_scale"` // graduated size coloring
	ThemeFile  string `yaml:"theme_file"`  // path to a YAML theme file
}

// ConfigFileName is looked up in the working directory first, then in
// the user config directory.
const ConfigFileName = ".eza.yaml"

// LoadConfig loads .eza.yaml, returning defaults when no file exists.
// A file that exists but fails to parse is reported and ignored: a
// broken config must not take the listing down with it.
func LoadConfig() *AppConfig {
	appCfg := &AppConfig{Color: "auto"}

	path := findConfigFile()
	if path == "" {
		return appCfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("couldn't read config file")
		return appCfg
	}
	if err := yaml.Unmarshal(data, appCfg); err != nil {
		log.Warn().Str("path", path).Err(err).Msg("couldn't parse config file")
		return &AppConfig{Color: "auto"}
	}
	if appCfg.Color == "" {
		appCfg.Color = "auto"
	}

	return appCfg
}

func findConfigFile() string {
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName
	}
	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, "eza", ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
