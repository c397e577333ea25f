// Package theme turns the two color specification strings into a
// table of named UI styles and a per-file style resolver. It is pure
// computation: no environment access, no terminal access. The caller
// hands it the raw strings, the color policy, and whether output goes
// to a terminal; it hands back an immutable Theme.
package theme

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/rs/zerolog/log"

	"github.com/vladdoster/eza/internal/filetype"
	"github.com/vladdoster/eza/internal/style"
)

// UseColor says under what circumstances output should be colored.
// Automatic colors only when output goes to a terminal, so piping into
// grep or less keeps working.
type UseColor int

const (
	// ColorAutomatic colors when the output is a terminal.
	ColorAutomatic UseColor = iota

	// ColorAlways colors even when output is piped.
	ColorAlways

	// ColorNever never colors, terminal or not.
	ColorNever
)

// Definitions carries the two raw specification strings. LS follows
// the legacy convention; Eza is the tool-specific superset processed
// second, so its entries win. Either or both may be empty.
type Definitions struct {
	LS  string
	Eza string
}

// Options is everything needed to assemble a Theme.
type Options struct {
	UseColor    UseColor
	ColorScale  ColorScaleOptions
	Definitions Definitions

	// FileTheme optionally overrides default slots before the
	// specification strings are applied, so definitions still win.
	FileTheme *FileTheme
}

// Theme is the assembled result: the slot table plus the resolver
// chosen for it. Immutable once built; safe to share across
// concurrent per-file lookups.
type Theme struct {
	UI UIStyles

	resolver fileStyle
}

// fileStyle answers "what style paints this file's name". One
// implementation per resolver variant, chosen once at assembly time so
// the per-file path is a single dynamic call.
type fileStyle interface {
	style(name string, ui *UIStyles) (style.Style, bool)
}

// ToTheme assembles the Theme for one rendering pass. With color
// disabled by policy, the specification strings are never parsed and
// every lookup resolves to no style.
func (o Options) ToTheme(isatty bool) *Theme {
	if o.UseColor == ColorNever || (o.UseColor == ColorAutomatic && !isatty) {
		return &Theme{UI: PlainUIStyles(), resolver: noFileStyle{}}
	}

	ui := DefaultUIStyles(o.ColorScale)

	var exts extensionMappings
	if o.FileTheme != nil {
		o.FileTheme.applyTo(&ui, &exts)
	}
	useDefaultFileTypes := o.Definitions.parseColorVars(&ui, &exts)

	var resolver fileStyle
	switch {
	case exts.isEmpty() && !useDefaultFileTypes:
		resolver = noFileStyle{}
	case exts.isEmpty():
		resolver = builtinFileTypes{}
	case !useDefaultFileTypes:
		resolver = &exts
	default:
		resolver = fallbackFileStyle{first: &exts, second: builtinFileTypes{}}
	}

	return &Theme{UI: ui, resolver: resolver}
}

// parseColorVars splits both specification strings into key=value
// pairs, writing recognized UI codes into ui and appending everything
// else to exts as glob mappings. Returns whether the built-in
// file-type coloring stays active: an extended string that is exactly
// "reset" or starts with "reset:" switches it off, though its
// remaining pairs are still processed.
func (d Definitions) parseColorVars(ui *UIStyles, exts *extensionMappings) bool {
	if d.LS != "" {
		eachPair(d.LS, func(p pair) {
			if ui.setLS(p) {
				return
			}
			exts.addPattern(p)
		})
	}

	useDefaultFileTypes := true

	if d.Eza != "" {
		if d.Eza == "reset" || strings.HasPrefix(d.Eza, "reset:") {
			useDefaultFileTypes = false
		}

		eachPair(d.Eza, func(p pair) {
			if ui.setLS(p) || ui.setExt(p) {
				return
			}
			exts.addPattern(p)
		})
	}

	return useDefaultFileTypes
}

// addPattern compiles the pair's key as a glob pattern and appends it.
// A pattern that fails to compile is dropped with a diagnostic; it
// never aborts parsing of the remaining specification.
func (m *extensionMappings) addPattern(p pair) {
	g, err := glob.Compile(p.key)
	if err != nil {
		log.Warn().Str("pattern", p.key).Err(err).Msg("couldn't parse glob pattern")
		return
	}
	m.add(p.key, g, p.toStyle())
}

// noFileStyle always resolves to no style.
type noFileStyle struct{}

func (noFileStyle) style(string, *UIStyles) (style.Style, bool) {
	return style.Style{}, false
}

// builtinFileTypes resolves through the built-in classifier and the
// file-type slots of the table.
type builtinFileTypes struct{}

func (builtinFileTypes) style(name string, ui *UIStyles) (style.Style, bool) {
	switch filetype.Classify(name) {
	case filetype.Image:
		return ui.FileType.Image, true
	case filetype.Video:
		return ui.FileType.Video, true
	case filetype.Music:
		return ui.FileType.Music, true
	case filetype.Lossless:
		return ui.FileType.Lossless, true
	case filetype.Crypto:
		return ui.FileType.Crypto, true
	case filetype.Document:
		return ui.FileType.Document, true
	case filetype.Compressed:
		return ui.FileType.Compressed, true
	case filetype.Temp:
		return ui.FileType.Temp, true
	case filetype.Compiled:
		return ui.FileType.Compiled, true
	case filetype.Build:
		return ui.FileType.Build, true
	case filetype.Source:
		return ui.FileType.Source, true
	default:
		return style.Style{}, false
	}
}

// fallbackFileStyle tries the first resolver and falls back to the
// second. This is strict first-match, not a merge: when the user's
// glob mappings claim a name, the built-in classification never runs.
type fallbackFileStyle struct {
	first  fileStyle
	second fileStyle
}

func (f fallbackFileStyle) style(name string, ui *UIStyles) (style.Style, bool) {
	if s, ok := f.first.style(name, ui); ok {
		return s, true
	}
	return f.second.style(name, ui)
}

// FileNameStyle resolves the style for a file name, reporting whether
// any mapping or classification matched.
func (t *Theme) FileNameStyle(name string) (style.Style, bool) {
	return t.resolver.style(name, &t.UI)
}

// FileStyleOrNormal resolves the style for a file name, falling back
// to the normal file-kind slot when nothing matched.
func (t *Theme) FileStyleOrNormal(name string) style.Style {
	if s, ok := t.resolver.style(name, &t.UI); ok {
		return s
	}
	return t.UI.FileKinds.Normal
}

// BrokenFilename is the broken-symlink style amended by the
// broken-path overlay.
func (t *Theme) BrokenFilename() style.Style {
	return applyOverlay(t.UI.BrokenSymlink, t.UI.BrokenPathOverlay)
}

// BrokenControlChar is the control-character style amended by the
// broken-path overlay, so control characters inside a broken target
// path keep the overlay's emphasis.
func (t *Theme) BrokenControlChar() style.Style {
	return applyOverlay(t.UI.ControlChar, t.UI.BrokenPathOverlay)
}

// applyOverlay amends base with overlay: the overlay's colors replace
// the base's only where the overlay sets one, and every attribute set
// on either side stays set. Overlays add emphasis, they never remove
// it.
func applyOverlay(base, overlay style.Style) style.Style {
	if overlay.Foreground.IsSet() {
		base.Foreground = overlay.Foreground
	}
	if overlay.Background.IsSet() {
		base.Background = overlay.Background
	}

	base.Bold = base.Bold || overlay.Bold
	base.Dim = base.Dim || overlay.Dim
	base.Italic = base.Italic || overlay.Italic
	base.Underline = base.Underline || overlay.Underline
	base.Blink = base.Blink || overlay.Blink
	base.Reverse = base.Reverse || overlay.Reverse
	base.Hidden = base.Hidden || overlay.Hidden
	base.Strikethrough = base.Strikethrough || overlay.Strikethrough

	return base
}
