package config

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/vladdoster/eza/internal/theme"
)

// Configuration resolution follows an explicit priority order. Higher
// priority sources override lower ones.
//
// Priority order (highest to lowest):
//  1. CLI flags (--color, --color-scale, --theme)
//  2. Environment variables (NO_COLOR, CLICOLOR_FORCE, EZA_COLOR_SCALE)
//  3. .eza.yaml configuration file
//  4. Defaults (automatic color, flat size coloring, no theme file)
//
// The color definition strings themselves (LS_COLORS, EZA_COLORS) have
// no flag or file equivalent; they are environment-only by convention.

// CliFlags holds the values of command-line flags, plus markers for
// whether each was explicitly set by the user.
type CliFlags struct {
	Color      string
	ColorScale bool
	ThemeFile  string

	ColorSet      bool
	ColorScaleSet bool
	ThemeFileSet  bool
}

// Environ is the slice of environment lookups resolution needs,
// narrowed to a function so tests can inject their own environment.
type Environ func(key string) (string, bool)

// Resolved is the final configuration after applying all priority
// rules, with source metadata kept for debugging.
type Resolved struct {
	UseColor    theme.UseColor
	ColorScale  theme.ColorScaleOptions
	Definitions theme.Definitions
	FileTheme   *theme.FileTheme

	ColorSource string // "cli", "env", "file" or "default"
	ScaleSource string
	ThemeSource string
}

// Resolve resolves configuration from all sources. This is the single
// source of truth for resolution order.
func Resolve(flags CliFlags, env Environ) (*Resolved, error) {
	appCfg := LoadConfig()

	resolved := &Resolved{
		ColorSource: "default",
		ScaleSource: "default",
		ThemeSource: "default",
	}

	// Color policy: CLI > env > file > default.
	switch {
	case flags.ColorSet:
		mode, err := ParseUseColor(flags.Color)
		if err != nil {
			return nil, err
		}
		resolved.UseColor = mode
		resolved.ColorSource = "cli"
	case envNoColor(env):
		resolved.UseColor = theme.ColorNever
		resolved.ColorSource = "env"
	case envForceColor(env):
		resolved.UseColor = theme.ColorAlways
		resolved.ColorSource = "env"
	default:
		mode, err := ParseUseColor(appCfg.Color)
		if err != nil {
			log.Warn().Str("color", appCfg.Color).Msg("unknown color mode in config file")
			mode = theme.ColorAutomatic
		} else if appCfg.Color != "auto" {
			resolved.ColorSource = "file"
		}
		resolved.UseColor = mode
	}

	// Color scale: CLI > env > file > default.
	switch {
	case flags.ColorScaleSet:
		resolved.ColorScale = theme.ColorScaleOptions{Size: flags.ColorScale}
		resolved.ScaleSource = "cli"
	case envSet(env, "EZA_COLOR_SCALE"):
		resolved.ColorScale = theme.ColorScaleOptions{Size: true}
		resolved.ScaleSource = "env"
	case appCfg.ColorScale:
		resolved.ColorScale = theme.ColorScaleOptions{Size: true}
		resolved.ScaleSource = "file"
	}

	// Theme file: CLI > file config > none.
	themePath := ""
	switch {
	case flags.ThemeFileSet:
		themePath = flags.ThemeFile
		resolved.ThemeSource = "cli"
	case appCfg.ThemeFile != "":
		themePath = appCfg.ThemeFile
		resolved.ThemeSource = "file"
	}
	if themePath != "" {
		ft, err := theme.LoadFileTheme(themePath)
		if err != nil {
			// Advisory only: a bad theme file degrades to defaults.
			log.Warn().Err(err).Msg("couldn't load theme file")
			resolved.ThemeSource = "default"
		} else {
			resolved.FileTheme = ft
		}
	}

	// The definition strings are read as-is; absence and emptiness are
	// equivalent for parsing.
	ls, _ := env("LS_COLORS")
	eza, _ := env("EZA_COLORS")
	resolved.Definitions = theme.Definitions{LS: ls, Eza: eza}

	return resolved, nil
}

// Options assembles the theme options the renderer hands to ToTheme.
func (r *Resolved) Options() theme.Options {
	return theme.Options{
		UseColor:    r.UseColor,
		ColorScale:  r.ColorScale,
		Definitions: r.Definitions,
		FileTheme:   r.FileTheme,
	}
}

// ParseUseColor parses a --color flag value.
func ParseUseColor(value string) (theme.UseColor, error) {
	switch value {
	case "always", "force":
		return theme.ColorAlways, nil
	case "auto", "automatic", "":
		return theme.ColorAutomatic, nil
	case "never", "none":
		return theme.ColorNever, nil
	default:
		return theme.ColorAutomatic, fmt.Errorf("unknown color mode %q (expected always, auto or never)", value)
	}
}

// envNoColor honors the NO_COLOR convention: any non-empty value
// disables color, unless CLICOLOR_FORCE overrides it.
func envNoColor(env Environ) bool {
	return envSet(env, "NO_COLOR") && !envSet(env, "CLICOLOR_FORCE")
}

func envForceColor(env Environ) bool {
	return envSet(env, "CLICOLOR_FORCE")
}

func envSet(env Environ, key string) bool {
	v, ok := env(key)
	return ok && v != "" && v != "0"
}
