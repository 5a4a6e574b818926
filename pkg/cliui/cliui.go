// Package cliui provides reusable terminal UI helpers (styles, marks,
// forecast rendering) for wezza CLI commands.
package cliui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zoryamba/wezza/pkg/weather"
)

var (
	SuccessMark = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Render("✓")
	FailMark    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("✗")

	HeaderStyle = lipgloss.NewStyle().Bold(true)
	NameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	DimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	KeyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	ValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	WarnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Mark returns a ✓ for nil errors or ✗ for non-nil errors.
func Mark(err error) string {
	if err != nil {
		return FailMark
	}
	return SuccessMark
}

// RenderForecast formats a forecast for terminal display.
func RenderForecast(f weather.Forecast) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n  %s  %s %s\n",
		HeaderStyle.Render(f.Location),
		f.Date.Format(weather.DateLayout),
		DimStyle.Render("via "+f.Provider),
	)
	fmt.Fprintf(&b, "  %s\n", f.Summary)
	fmt.Fprintf(&b, "  %s %s  %s %s\n",
		KeyStyle.Render("min"),
		ValueStyle.Render(formatTemp(f.TempMin, f.Unit)),
		KeyStyle.Render("max"),
		ValueStyle.Render(formatTemp(f.TempMax, f.Unit)),
	)

	return b.String()
}

func formatTemp(v float64, u weather.Unit) string {
	return fmt.Sprintf("%.1f%s", v, u.Symbol())
}
