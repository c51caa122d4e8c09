package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// StyleManager encapsulates the pager chrome styles
type StyleManager struct {
	Title   lipgloss.Style
	Status  lipgloss.Style
	Dim     lipgloss.Style
	Divider lipgloss.Style
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Divider: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Global style manager instance
var styles = DefaultStyles()
