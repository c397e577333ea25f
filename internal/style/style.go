package style

// Style describes how a piece of terminal output should be painted:
// an optional foreground color, an optional background color, and the
// eight independent SGR attributes. The zero value is the plain style.
//
// Styles are immutable values. Parsing and composition always produce
// a new Style rather than mutating one in place.
type Style struct {
	Foreground Color
	Background Color

	Bold          bool
	Dim           bool
	Italic        bool
	Underline     bool
	Blink         bool
	Reverse       bool
	Hidden        bool
	Strikethrough bool
}

// IsPlain reports whether s carries no color and no attributes.
func (s Style) IsPlain() bool {
	return s == Style{}
}

// On returns a copy of s with the background painted in bg.
func (s Style) On(bg Color) Style {
	s.Background = bg
	return s
}

// Underlined returns a copy of s with the underline attribute set.
func (s Style) Underlined() Style {
	s.Underline = true
	return s
}
