package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	success lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	muted   lipgloss.Style
}

func newStyles() styles {
	return styles{
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")).Bold(true),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Bold(true),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	}
}

func (s styles) rule() string {
	return s.muted.Render(strings.Repeat("-", 30))
}
