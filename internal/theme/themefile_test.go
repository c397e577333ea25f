package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladdoster/eza/internal/style"
)

func TestParseFileTheme_When_WellFormed(t *testing.T) {
	t.Parallel()

	ft, err := ParseFileTheme([]byte(`
di: "1;34"
ur: "38;5;100"
"*.log": "38;5;244"
`))
	require.NoError(t, err)

	var ui UIStyles
	var exts extensionMappings
	ft.applyTo(&ui, &exts)

	assert.Equal(t, style.Blue.Bold(), ui.FileKinds.Directory)
	assert.Equal(t, style.Fixed(100).Normal(), ui.Perms.UserRead)
	assert.Equal(t,
		[]extEntry{{"*.log", style.Fixed(244).Normal()}},
		collectExts(exts))
}

func TestParseFileTheme_When_Empty(t *testing.T) {
	t.Parallel()

	ft, err := ParseFileTheme(nil)
	require.NoError(t, err)
	assert.Empty(t, ft.pairs)
}

func TestParseFileTheme_When_NotAMapping(t *testing.T) {
	t.Parallel()

	_, err := ParseFileTheme([]byte("- di\n- ln\n"))
	assert.Error(t, err)

	_, err = ParseFileTheme([]byte("di: [1, 34]\n"))
	assert.NoError(t, err, "malformed entries are skipped, not fatal")
}

func TestToTheme_When_FileThemeProvided(t *testing.T) {
	t.Parallel()

	ft, err := ParseFileTheme([]byte("di: \"35\"\nfi: \"32\"\n"))
	require.NoError(t, err)

	th := Options{
		UseColor:    ColorAlways,
		FileTheme:   ft,
		Definitions: Definitions{Eza: "di=33"},
	}.ToTheme(false)

	// Specification strings are applied after the theme file.
	assert.Equal(t, style.Yellow.Normal(), th.UI.FileKinds.Directory)
	assert.Equal(t, style.Green.Normal(), th.UI.FileKinds.Normal)
}

func TestToTheme_When_FileThemeAddsGlobs(t *testing.T) {
	t.Parallel()

	ft, err := ParseFileTheme([]byte("\"*.log\": \"31\"\n"))
	require.NoError(t, err)

	th := Options{
		UseColor:    ColorAlways,
		FileTheme:   ft,
		Definitions: Definitions{Eza: "*.log=32"},
	}.ToTheme(false)

	// Environment entries are later declarations, so they win.
	s, ok := th.FileNameStyle("build.log")
	require.True(t, ok)
	assert.Equal(t, style.Green.Normal(), s)
}
