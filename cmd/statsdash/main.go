package main

import (
	"fmt"
	"os"

	"codeberg.org/icecube/server/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	dashboard := tui.NewDashboard()
	p := tea.NewProgram(dashboard, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running statsdash: %v\n", err)
		os.Exit(1)
	}
}
