package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. All ANSI 256 colors used in the CLI are named here.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, packages.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" and "valid" statuses.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "overwritten" status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "invalid" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorAndroid is the accent used for headings and the wizard theme.
	ColorAndroid = lipgloss.Color("113")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (project names, paths, packages).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome and descriptions.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleHeading styles section headings.
	StyleHeading = lipgloss.NewStyle().Bold(true).Foreground(ColorAndroid)
)

// Status values shown next to generated output.
const (
	StatusCreated     = "created"
	StatusOverwritten = "overwritten"
	StatusValid       = "valid"
	StatusInvalid     = "invalid"
)

// StatusStyle returns the style for a status string. Unknown statuses are unstyled.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated, StatusValid:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusOverwritten:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusInvalid:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// vetLabelWidth is the column at which vet check details start.
const vetLabelWidth = 28

// FormatVetCheck renders a passed check with an optional dim detail aligned
// to a fixed column.
func FormatVetCheck(label, detail string) string {
	line := FormatCheckmark(label)
	if detail == "" {
		return line
	}
	padding := vetLabelWidth - len(label)
	if padding < 2 {
		padding = 2
	}
	return line + strings.Repeat(" ", padding) + StyleDim.Render(detail)
}

// FormatStatusLine renders a noun followed by a color-coded status.
func FormatStatusLine(noun, status string) string {
	return StyleNoun.Render(noun) + " " + StatusStyle(status).Render(status)
}
