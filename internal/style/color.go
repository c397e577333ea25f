// Package style defines the color and style values the theme engine
// resolves file names and UI elements to. Values are plain comparable
// structs so that resolved styles can be copied, compared, and composed
// without allocation.
package style

import (
	"fmt"
	"strconv"
)

type colorKind uint8

const (
	colorNone colorKind = iota
	colorBasic
	colorIndexed
	colorRGB
)

// Color is an optional terminal color. The zero value means "no color",
// which is distinct from any palette entry: a style with an unset color
// leaves the terminal's default in place.
type Color struct {
	kind    colorKind
	index   uint8 // basic palette entry (0-15) or 256-color index
	r, g, b uint8
}

// The standard ANSI palette entries.
var (
	Black  = Color{kind: colorBasic, index: 0}
	Red    = Color{kind: colorBasic, index: 1}
	Green  = Color{kind: colorBasic, index: 2}
	Yellow = Color{kind: colorBasic, index: 3}
	Blue   = Color{kind: colorBasic, index: 4}
	Purple = Color{kind: colorBasic, index: 5}
	Cyan   = Color{kind: colorBasic, index: 6}
	White  = Color{kind: colorBasic, index: 7}
)

// Fixed returns an entry of the 256-color palette.
func Fixed(n uint8) Color {
	return Color{kind: colorIndexed, index: n}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// IsSet reports whether c names an actual color rather than the
// terminal default.
func (c Color) IsSet() bool {
	return c.kind != colorNone
}

// String returns the color in the form terminal libraries accept: a
// palette index ("4", "118") or a hex triplet ("#ff8000"). The unset
// color renders as the empty string.
func (c Color) String() string {
	switch c.kind {
	case colorBasic, colorIndexed:
		return strconv.Itoa(int(c.index))
	case colorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	default:
		return ""
	}
}

// Normal returns a style painting the foreground in c with no attributes.
func (c Color) Normal() Style {
	return Style{Foreground: c}
}

// Bold returns a bold style painting the foreground in c.
func (c Color) Bold() Style {
	return Style{Foreground: c, Bold: true}
}

// Underline returns an underlined style painting the foreground in c.
func (c Color) Underline() Style {
	return Style{Foreground: c, Underline: true}
}
