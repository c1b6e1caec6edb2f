package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ddrozdov/twocars/internal/storage"
)

type scoreboardKeys struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

var defaultScoreboardKeys = scoreboardKeys{
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	scoreboardTitle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("15")).Padding(0, 1)
	scoreboardStats = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).Padding(0, 1)
)

// Scoreboard is a standalone model that lists the recorded runs of one game.
type Scoreboard struct {
	title string
	stats storage.GameStats
	table table.Model
	help  help.Model
	keys  scoreboardKeys
}

func NewScoreboard(title string, entries []storage.ScoreEntry, stats storage.GameStats) Scoreboard {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 14},
		{Title: "Score", Width: 8},
		{Title: "When", Width: 18},
	}

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			e.Player,
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	return Scoreboard{
		title: title,
		stats: stats,
		table: t,
		help:  help.New(),
		keys:  defaultScoreboardKeys,
	}
}

func (s Scoreboard) Init() tea.Cmd {
	return nil
}

func (s Scoreboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, s.keys.Quit) {
			return s, tea.Quit
		}
	}
	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

func (s Scoreboard) View() string {
	header := scoreboardTitle.Render(s.title)
	stats := scoreboardStats.Render(fmt.Sprintf(
		"plays %d  best %d  avg %.1f",
		s.stats.Plays, s.stats.BestScore, s.stats.AvgScore,
	))
	return header + "\n" + stats + "\n" + s.table.View() + "\n" + s.help.View(s.keys) + "\n"
}
