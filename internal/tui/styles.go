// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-account-sync/internal/notify"
	"github.com/MKhiriev/go-account-sync/internal/service"
)

var (
	appStyle         = lipgloss.NewStyle().Padding(1, 2)
	titleStyle       = lipgloss.NewStyle().Bold(true)
	helpStyle        = lipgloss.NewStyle().Faint(true)
	tabStyle         = lipgloss.NewStyle().Padding(0, 1).Faint(true)
	activeTabStyle   = lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true)
	selectedRowStyle = lipgloss.NewStyle().Reverse(true)
	deletionRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	badgeBaseStyle   = lipgloss.NewStyle().Padding(0, 1).Bold(true)
)

var badgeColors = map[string]lipgloss.Color{
	service.StatusClassAccent:  lipgloss.Color("12"),
	service.StatusClassWarning: lipgloss.Color("11"),
	service.StatusClassSuccess: lipgloss.Color("10"),
}

var toastColors = map[notify.Level]lipgloss.Color{
	notify.LevelInfo:    lipgloss.Color("12"),
	notify.LevelSuccess: lipgloss.Color("10"),
	notify.LevelWarning: lipgloss.Color("11"),
	notify.LevelError:   lipgloss.Color("9"),
}

func badgeStyle(class string) lipgloss.Style {
	if c, ok := badgeColors[class]; ok {
		return badgeBaseStyle.Foreground(c)
	}
	return badgeBaseStyle
}

func toastStyle(level notify.Level) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(toastColors[level])
}
