package tui

import (
	reststats "codeberg.org/icecube/server/api/rest/stats"
	"github.com/charmbracelet/bubbles/spinner"
)

// main dashboard model
type Model struct {
	width   int
	height  int
	loading bool
	err     error
	spinner spinner.Model
	client  *StatsClient
	report  reststats.Report
	dates   []string // report keys, most recent first
}

// sent when a stats fetch completes
type StatsLoadedMsg struct {
	report reststats.Report
}

// sent when a stats fetch fails
type StatsErrorMsg struct {
	err error
}
