package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("6")).Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Bold(true)

	fieldStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	focusedFieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

	buttonStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Padding(0, 1)
	focusedButtonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")).Bold(true).Padding(0, 1)

	selectedRowStyle = lipgloss.NewStyle().Reverse(true)
	incomeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	expenseStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func button(label string, focused bool) string {
	if focused {
		return focusedButtonStyle.Render("[ " + label + " ]")
	}
	return buttonStyle.Render("[ " + label + " ]")
}

// centered places content in the middle of the terminal when its size is
// known.
func centered(width, height int, content string) string {
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
