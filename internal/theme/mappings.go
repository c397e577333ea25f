package theme

import (
	"github.com/gobwas/glob"

	"github.com/vladdoster/eza/internal/style"
)

// extensionMapping associates one compiled glob pattern with the style
// that paints matching file names.
type extensionMapping struct {
	pattern string
	matcher glob.Glob
	style   style.Style
}

// extensionMappings is the ordered list of glob associations collected
// while parsing, legacy-string entries first. Insertion order is
// load-bearing: lookup walks the list backwards so that patterns
// declared later override patterns declared earlier, the same
// precedence rule the scalar slots enforce at write time.
type extensionMappings struct {
	entries []extensionMapping
}

func (m *extensionMappings) add(pattern string, matcher glob.Glob, s style.Style) {
	m.entries = append(m.entries, extensionMapping{pattern: pattern, matcher: matcher, style: s})
}

func (m *extensionMappings) isEmpty() bool {
	return len(m.entries) == 0
}

func (m *extensionMappings) style(name string, _ *UIStyles) (style.Style, bool) {
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].matcher.Match(name) {
			return m.entries[i].style, true
		}
	}
	return style.Style{}, false
}
