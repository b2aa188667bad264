package tui

import (
	"fmt"
	"sort"
	"strings"

	reststats "codeberg.org/icecube/server/api/rest/stats"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// days requested from the stats endpoint per refresh
const dashboardDayLimit = 30

func NewDashboard() *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return &Model{
		loading: true,
		spinner: s,
		client:  NewStatsClient(),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.client.FetchCmd(dashboardDayLimit))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "r":
			m.loading = true
			m.err = nil

			return m, tea.Batch(m.spinner.Tick, m.client.FetchCmd(dashboardDayLimit))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case StatsLoadedMsg:
		m.loading = false
		m.report = msg.report
		m.dates = sortedDates(msg.report)

	case StatsErrorMsg:
		m.loading = false
		m.err = msg.err

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(fmt.Sprintf("\n  %s fetching stats...\n", m.spinner.View()))

	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("\n  error: %v\n", m.err)))

	case len(m.dates) == 0:
		b.WriteString("\n  no stats recorded yet\n")

	default:
		b.WriteString(m.tableView())
	}

	b.WriteString(helpStyle.Render("\n  r refresh • q quit\n"))

	return b.String()
}

func (m *Model) tableView() string {
	rows := []string{renderRow(headerStyle, "DATE", "VIEWS", "SIGNUPS", "DUPES", "ERRORS")}

	var totalViews, totalSignups int

	for _, date := range m.dates {
		day := m.report[date]
		totalViews += day.PageViews
		totalSignups += day.EmailSubmissions

		rows = append(rows, renderRow(
			cellStyle,
			date,
			fmt.Sprintf("%d", day.PageViews),
			fmt.Sprintf("%d", day.EmailSubmissions),
			fmt.Sprintf("%d", day.EmailDuplicates),
			fmt.Sprintf("%d", day.EmailErrors),
		))
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	totals := totalStyle.Render(fmt.Sprintf("  %d views, %d signups over %d days", totalViews, totalSignups, len(m.dates)))

	return lipgloss.JoinVertical(lipgloss.Left, table, "", totals)
}

func renderRow(style lipgloss.Style, cols ...string) string {
	cells := make([]string, 0, len(cols))

	for i, col := range cols {
		width := 10
		if i == 0 {
			width = 14
		}

		cells = append(cells, style.Width(width).Render(col))
	}

	return "  " + lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// report keys sorted most recent first
func sortedDates(report reststats.Report) []string {
	dates := make([]string, 0, len(report))

	for date := range report {
		dates = append(dates, date)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	return dates
}
