package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(lipgloss.Color("231"))
	labelStyle     = lipgloss.NewStyle().Width(10).Foreground(lipgloss.Color("245"))
	focusedLabel   = labelStyle.Foreground(lipgloss.Color("212"))
	nameStyle      = lipgloss.NewStyle().Bold(true)
	priceStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	featuredStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	currentPage    = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
	otherPage      = lipgloss.NewStyle().Padding(0, 1)
	spinnerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
)
