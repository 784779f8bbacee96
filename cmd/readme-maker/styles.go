package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

var (
	// headerStyle is used for section headers.
	headerStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// previewStyle frames the generated README.
	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Foreground(colorText).
			Padding(0, 1)

	// pickerCursorStyle highlights the picker row under the cursor.
	pickerCursorStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	pickerSelectedStyle = lipgloss.NewStyle().
				Foreground(colorGreen)
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf(format, args...)))
}

// printWarn writes to stderr so warnings never mix with markdown on stdout.
func printWarn(format string, args ...any) {
	fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf(format, args...)))
}

// preview returns the README framed for terminal display.
func preview(markdown string) string {
	title := headerStyle.Render("Preview / Generated README.md")
	return title + "\n" + previewStyle.Render(strings.TrimRight(markdown, "\n"))
}
