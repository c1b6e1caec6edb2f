// Package tui hosts games in the terminal: a Bubble Tea model drives the
// fixed 60 Hz loop, maps keys and mouse clicks to game actions and paints
// the game's screen buffer with lipgloss.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/ddrozdov/twocars/internal/audio"
	"github.com/ddrozdov/twocars/internal/core"
	"github.com/ddrozdov/twocars/internal/games/twocars"
	"github.com/ddrozdov/twocars/internal/registry"
	"github.com/ddrozdov/twocars/internal/storage"
)

// hudRows is the number of screen rows the game reserves above the scaled
// playfield; mouse clicks below it map into virtual-pixel space.
const hudRows = 1

// Model hosts one game instance. Input accumulates into a frame between
// ticks; each TickMsg steps the simulation exactly once with everything
// gathered since the previous tick.
type Model struct {
	game   registry.Game
	screen *core.Screen
	frame  core.InputFrame
	cfg    core.RuntimeConfig

	sound  *audio.Player
	store  *storage.Store
	player string

	width, height int
	recorded      bool
	quitting      bool
}

// NewModel creates a model around an already-reset game. The store may be
// nil to skip run history.
func NewModel(game registry.Game, cfg core.RuntimeConfig, sound *audio.Player, store *storage.Store, player string) *Model {
	if sound == nil {
		sound = audio.Silent()
	}
	return &Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		frame:  core.NewInputFrame(),
		cfg:    cfg,
		sound:  sound,
		store:  store,
		player: player,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

func (m *Model) Init() tea.Cmd {
	return Tick(m.cfg.TickRate)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		a := MapKey(msg)
		if a == core.ActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		if a != core.ActionNone {
			m.frame.Set(a)
		}
		m.frame.AnyKey = true

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			vx, vy := m.toVirtual(msg.X, msg.Y)
			m.frame.SetClick(vx, vy)
		}

	case TickMsg:
		res := m.game.Step(m.frame)
		m.frame.Clear()

		for _, e := range res.Events {
			m.sound.Play(e)
		}
		m.recordRun(res.State)

		return m, Tick(m.cfg.TickRate)
	}

	return m, nil
}

// toVirtual inverts the renderer's playfield scaling so a click on a drawn
// button lands inside that button's virtual rect.
func (m *Model) toVirtual(x, y int) (int, int) {
	fieldH := core.Max(1, m.height-hudRows)
	vx := x * twocars.VirtualWidth / core.Max(1, m.width)
	vy := (y - hudRows) * twocars.VirtualHeight / fieldH
	return vx, core.Max(0, vy)
}

// recordRun appends the finished run to the score history, once per game
// over.
func (m *Model) recordRun(st core.GameState) {
	if !st.GameOver {
		m.recorded = false
		return
	}
	if m.recorded || m.store == nil {
		return
	}
	m.recorded = true
	if err := m.store.SaveScore(m.game.ID(), m.player, st.Score); err != nil {
		log.Error("record run", "game", m.game.ID(), "err", err)
	}
}

func (m *Model) View() string {
	if m.quitting {
		return "bye!\n"
	}
	m.game.Render(m.screen)
	return renderScreen(m.screen)
}
