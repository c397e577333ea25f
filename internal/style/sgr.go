package style

import (
	"strconv"
	"strings"
)

// ParseSGR interprets a semicolon-separated sequence of SGR numeric
// codes, like the value half of an LS_COLORS pair, and returns the
// style it describes.
//
// Recognized codes: the attribute codes 1 (bold), 2 (dim), 3 (italic),
// 4 (underline), 5 (blink), 7 (reverse), 8 (hidden) and
// 9 (strikethrough); the 16-color foreground and background codes
// 30-37, 90-97, 40-47 and 100-107; the palette forms 38;5;N and
// 48;5;N; the true-color forms 38;2;R;G;B and 48;2;R;G;B; and the
// default-color codes 39 and 49, which clear an accumulated
// foreground or background.
//
// Parsing is best-effort and never fails: codes that are unrecognized
// or malformed are skipped individually, so an empty or garbage input
// yields the plain style.
func ParseSGR(value string) Style {
	var s Style

	codes := strings.Split(value, ";")
	for i := 0; i < len(codes); i++ {
		n, err := strconv.Atoi(codes[i])
		if err != nil || n < 0 {
			continue
		}

		switch {
		case n == 1:
			s.Bold = true
		case n == 2:
			s.Dim = true
		case n == 3:
			s.Italic = true
		case n == 4:
			s.Underline = true
		case n == 5:
			s.Blink = true
		case n == 7:
			s.Reverse = true
		case n == 8:
			s.Hidden = true
		case n == 9:
			s.Strikethrough = true

		case n >= 30 && n <= 37:
			s.Foreground = Color{kind: colorBasic, index: uint8(n - 30)}
		case n >= 90 && n <= 97:
			s.Foreground = Fixed(uint8(n - 90 + 8))
		case n == 39:
			s.Foreground = Color{}

		case n >= 40 && n <= 47:
			s.Background = Color{kind: colorBasic, index: uint8(n - 40)}
		case n >= 100 && n <= 107:
			s.Background = Fixed(uint8(n - 100 + 8))
		case n == 49:
			s.Background = Color{}

		case n == 38 || n == 48:
			c, consumed, ok := parseExtendedColor(codes[i+1:])
			i += consumed
			if !ok {
				continue
			}
			if n == 38 {
				s.Foreground = c
			} else {
				s.Background = c
			}
		}
	}

	return s
}

// parseExtendedColor handles the tail of a 38;… or 48;… form. It
// returns the color, how many codes it consumed, and whether the form
// was complete and well-formed. Consumed codes are swallowed even when
// the form is malformed, matching how the established convention is
// parsed elsewhere: "38;5;garbage" eats three codes and sets nothing.
func parseExtendedColor(rest []string) (Color, int, bool) {
	if len(rest) == 0 {
		return Color{}, 0, false
	}

	switch rest[0] {
	case "5":
		if len(rest) < 2 {
			return Color{}, len(rest), false
		}
		n, ok := parseByte(rest[1])
		if !ok {
			return Color{}, 2, false
		}
		return Fixed(n), 2, true

	case "2":
		if len(rest) < 4 {
			return Color{}, len(rest), false
		}
		r, okR := parseByte(rest[1])
		g, okG := parseByte(rest[2])
		b, okB := parseByte(rest[3])
		if !okR || !okG || !okB {
			return Color{}, 4, false
		}
		return RGB(r, g, b), 4, true

	default:
		// Unknown discriminator: it is consumed, the codes after it
		// are interpreted normally.
		return Color{}, 1, false
	}
}

func parseByte(s string) (uint8, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return 0, false
	}
	return uint8(n), true
}
