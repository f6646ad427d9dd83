package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// centered wraps content in the standard 80-column centered row.
func centered(content string) string {
	return lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(content)
}

// renderField draws one labeled input row with the focus border and an
// optional per-field error line underneath.
func renderField(label, value string, focused, masked bool, errMsg string) string {
	labelCell := LabelStyle.Width(18).Render(label + ":")

	inputStyle := InputStyle
	if focused {
		inputStyle = FocusedInputStyle
	}
	shown := value
	if masked {
		shown = strings.Repeat("•", len([]rune(value)))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Left, labelCell, inputStyle.Width(46).Render(shown))

	out := centered(row)
	if errMsg != "" {
		out += "\n" + centered(ErrorStyle.Render(errMsg))
	}
	return out
}

// formatDate renders a nullable timestamp as a short date, "N/A" when null.
func formatDate(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("Jan 2, 2006")
}

// formatDateTime renders a nullable timestamp with time of day.
func formatDateTime(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("January 2, 2006 15:04")
}
