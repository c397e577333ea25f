package theme

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// FileTheme is an optional YAML theme file: a mapping from the same
// keys the specification strings accept (UI codes or glob patterns) to
// SGR code sequences. It is applied to the default table before the
// environment strings, so anything the environment sets still wins.
//
//	di: "1;34"
//	"*.log": "38;5;244"
type FileTheme struct {
	pairs []pair
}

// LoadFileTheme reads and parses a theme file.
func LoadFileTheme(path string) (*FileTheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	ft, err := ParseFileTheme(data)
	if err != nil {
		return nil, fmt.Errorf("theme file %s: %w", path, err)
	}
	return ft, nil
}

// ParseFileTheme parses theme file contents. Entry order is preserved
// because glob entries obey the same last-declared-wins rule as the
// specification strings.
func ParseFileTheme(data []byte) (*FileTheme, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	ft := &FileTheme{}
	if len(doc.Content) == 0 {
		return ft, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("must be a mapping of keys to code sequences")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode ||
			key.Value == "" || value.Value == "" {
			log.Warn().Str("key", key.Value).Msg("ignoring malformed theme file entry")
			continue
		}
		ft.pairs = append(ft.pairs, pair{key: key.Value, value: value.Value})
	}

	return ft, nil
}

// applyTo writes the theme file's entries through the same code tables
// and glob collection the specification strings use.
func (ft *FileTheme) applyTo(ui *UIStyles, exts *extensionMappings) {
	for _, p := range ft.pairs {
		if ui.setLS(p) || ui.setExt(p) {
			continue
		}
		exts.addPattern(p)
	}
}
