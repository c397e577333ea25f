package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladdoster/eza/internal/theme"
)

func fakeEnv(vars map[string]string) Environ {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestResolve_When_NothingSet(t *testing.T) {
	t.Parallel()

	r, err := Resolve(CliFlags{}, fakeEnv(nil))
	require.NoError(t, err)

	assert.Equal(t, theme.ColorAutomatic, r.UseColor)
	assert.Equal(t, "default", r.ColorSource)
	assert.False(t, r.ColorScale.Size)
	assert.Equal(t, theme.Definitions{}, r.Definitions)
	assert.Nil(t, r.FileTheme)
}

func TestResolve_When_CliBeatsEnvironment(t *testing.T) {
	t.Parallel()

	env := fakeEnv(map[string]string{"NO_COLOR": "1"})
	r, err := Resolve(CliFlags{Color: "always", ColorSet: true}, env)
	require.NoError(t, err)

	assert.Equal(t, theme.ColorAlways, r.UseColor)
	assert.Equal(t, "cli", r.ColorSource)
}

func TestResolve_When_NoColorEnvironment(t *testing.T) {
	t.Parallel()

	r, err := Resolve(CliFlags{}, fakeEnv(map[string]string{"NO_COLOR": "1"}))
	require.NoError(t, err)
	assert.Equal(t, theme.ColorNever, r.UseColor)
	assert.Equal(t, "env", r.ColorSource)

	// CLICOLOR_FORCE wins over NO_COLOR.
	r, err = Resolve(CliFlags{}, fakeEnv(map[string]string{"NO_COLOR": "1", "CLICOLOR_FORCE": "1"}))
	require.NoError(t, err)
	assert.Equal(t, theme.ColorAlways, r.UseColor)
}

func TestResolve_When_DefinitionsInEnvironment(t *testing.T) {
	t.Parallel()

	env := fakeEnv(map[string]string{
		"LS_COLORS":  "di=34:*.txt=31",
		"EZA_COLORS": "ur=33",
	})
	r, err := Resolve(CliFlags{}, env)
	require.NoError(t, err)

	assert.Equal(t, theme.Definitions{LS: "di=34:*.txt=31", Eza: "ur=33"}, r.Definitions)
}

func TestResolve_When_ColorScaleFromEnvironment(t *testing.T) {
	t.Parallel()

	r, err := Resolve(CliFlags{}, fakeEnv(map[string]string{"EZA_COLOR_SCALE": "1"}))
	require.NoError(t, err)
	assert.True(t, r.ColorScale.Size)
	assert.Equal(t, "env", r.ScaleSource)

	// An explicit CLI off wins over the environment.
	r, err = Resolve(
		CliFlags{ColorScale: false, ColorScaleSet: true},
		fakeEnv(map[string]string{"EZA_COLOR_SCALE": "1"}),
	)
	require.NoError(t, err)
	assert.False(t, r.ColorScale.Size)
	assert.Equal(t, "cli", r.ScaleSource)
}

func TestResolve_When_BadColorFlag(t *testing.T) {
	t.Parallel()

	_, err := Resolve(CliFlags{Color: "sometimes", ColorSet: true}, fakeEnv(nil))
	assert.Error(t, err)
}

func TestResolve_When_MissingThemeFile(t *testing.T) {
	t.Parallel()

	r, err := Resolve(CliFlags{ThemeFile: "no/such/theme.yml", ThemeFileSet: true}, fakeEnv(nil))
	require.NoError(t, err, "a bad theme file is advisory, not fatal")
	assert.Nil(t, r.FileTheme)
	assert.Equal(t, "default", r.ThemeSource)
}

func TestParseUseColor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value   string
		want    theme.UseColor
		wantErr bool
	}{
		{"always", theme.ColorAlways, false},
		{"auto", theme.ColorAutomatic, false},
		{"automatic", theme.ColorAutomatic, false},
		{"never", theme.ColorNever, false},
		{"", theme.ColorAutomatic, false},
		{"banana", theme.ColorAutomatic, true},
	}

	for _, tc := range cases {
		got, err := ParseUseColor(tc.value)
		if tc.wantErr {
			assert.Error(t, err, "value %q", tc.value)
			continue
		}
		require.NoError(t, err, "value %q", tc.value)
		assert.Equal(t, tc.want, got, "value %q", tc.value)
	}
}
