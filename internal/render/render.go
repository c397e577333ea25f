// Package render turns resolved styles into painted terminal text via
// lipgloss. It is the only place the engine touches escape sequences;
// everything upstream works on style values.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vladdoster/eza/internal/style"
)

// Lipgloss converts a resolved style into a lipgloss style.
func Lipgloss(s style.Style) lipgloss.Style {
	ls := lipgloss.NewStyle()

	if s.Foreground.IsSet() {
		ls = ls.Foreground(lipgloss.Color(s.Foreground.String()))
	}
	if s.Background.IsSet() {
		ls = ls.Background(lipgloss.Color(s.Background.String()))
	}

	if s.Bold {
		ls = ls.Bold(true)
	}
	if s.Dim {
		ls = ls.Faint(true)
	}
	if s.Italic {
		ls = ls.Italic(true)
	}
	if s.Underline {
		ls = ls.Underline(true)
	}
	if s.Blink {
		ls = ls.Blink(true)
	}
	if s.Reverse {
		ls = ls.Reverse(true)
	}
	if s.Strikethrough {
		ls = ls.Strikethrough(true)
	}
	// lipgloss has no hidden attribute; conceal is rare enough that
	// dropping it beats hand-rolling sequences here.

	return ls
}

// Paint renders text in the given style. Plain styles pass the text
// through untouched.
func Paint(s style.Style, text string) string {
	if s.IsPlain() {
		return text
	}
	return Lipgloss(s).Render(text)
}
