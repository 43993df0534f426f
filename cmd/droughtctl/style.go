package main

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent  lipgloss.Color = "#800080"
	colorSuccess lipgloss.Color = "#2e7d32"
	colorError   lipgloss.Color = "#c62828"
	colorMuted   lipgloss.Color = "#6c757d"
)

var (
	styleOK     = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	styleFail   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	styleTitle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleHeader = lipgloss.NewStyle().Bold(true).Underline(true)
	styleMuted  = lipgloss.NewStyle().Foreground(colorMuted)
	styleBar    = lipgloss.NewStyle().Foreground(colorMuted)
	styleMarked = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
)
