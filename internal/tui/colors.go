package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// SetColorEnabled overrides TTY detection. Tests use this together with a
// pinned termenv color profile.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

func render(color string, text string) string {
	if !colorEnabled {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Render(text)
}

// ColorRed colors text red
func ColorRed(text string) string {
	return render("1", text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	return render("2", text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return render("3", text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	return render("6", text)
}

// ColorDim colors text gray
func ColorDim(text string) string {
	return render("8", text)
}
