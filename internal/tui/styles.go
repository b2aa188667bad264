package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorCyan      = lipgloss.Color("#7FDBFF")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan).
			MarginTop(1).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			PaddingRight(2)

	cellStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			PaddingRight(2)

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true).
			MarginTop(1)
)

const logo = `
  ██╗ ██████╗███████╗ ██████╗██╗   ██╗██████╗ ███████╗
  ██║██╔════╝██╔════╝██╔════╝██║   ██║██╔══██╗██╔════╝
  ██║██║     █████╗  ██║     ██║   ██║██████╔╝█████╗
  ██║██║     ██╔══╝  ██║     ██║   ██║██╔══██╗██╔══╝
  ██║╚██████╗███████╗╚██████╗╚██████╔╝██████╔╝███████╗
  ╚═╝ ╚═════╝╚══════╝ ╚═════╝ ╚═════╝ ╚═════╝ ╚══════╝
`
