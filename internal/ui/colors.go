// Package ui provides terminal output styling for the wf CLI.
// The route codec itself never prints; all user-facing rendering goes
// through here so color handling stays in one place.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Lipgloss styles for consistent terminal output.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // Cyan
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // Blue
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // Gray
	boldStyle    = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

// colorEnabled is decided once at startup: styled output only when stdout is
// a terminal and NO_COLOR is unset.
var colorEnabled = os.Getenv("NO_COLOR") == "" &&
	(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))

// SetColorEnabled overrides color detection (useful for testing and --json).
func SetColorEnabled(on bool) {
	colorEnabled = on
}

func render(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}

// Themed color functions.
func Success(text string) string { return render(successStyle, "✓ "+text) }
func Error(text string) string   { return render(errorStyle, "✗ "+text) }
func Warning(text string) string { return render(warningStyle, "⚠ "+text) }
func Info(text string) string    { return render(infoStyle, "ℹ "+text) }
func Primary(text string) string { return render(primaryStyle, text) }
func Dim(text string) string     { return render(dimStyle, text) }
func Bold(text string) string    { return render(boldStyle, text) }
func Header(text string) string  { return render(headerStyle, text) }
