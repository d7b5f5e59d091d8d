package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
)

func printSuccess(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, successStyle.Render("✓ "+fmt.Sprintf(format, a...)))
}

func printFailure(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, failureStyle.Render("✗ "+fmt.Sprintf(format, a...)))
}

func printWarning(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, warnStyle.Render("⚠ "+fmt.Sprintf(format, a...)))
}
