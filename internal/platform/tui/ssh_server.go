package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/ddrozdov/twocars/internal/audio"
	"github.com/ddrozdov/twocars/internal/core"
	"github.com/ddrozdov/twocars/internal/registry"
	"github.com/ddrozdov/twocars/internal/storage"
)

// SSHConfig configures the game-over-SSH server.
type SSHConfig struct {
	Host        string
	Port        int
	HostKeyPath string
	GameID      string
	TickRate    int
	Store       *storage.Store
}

// NewSSHServer builds a wish server that hands each SSH session its own
// game instance, sized to the session's terminal. Sessions are independent:
// each runs its own single-goroutine simulation. Audio stays off, the sound
// device belongs to the host.
func NewSSHServer(cfg SSHConfig) (*ssh.Server, error) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return wish.NewServer(
		wish.WithAddress(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithMiddleware(
			bm.Middleware(sessionHandler(cfg)),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	)
}

func sessionHandler(cfg SSHConfig) bm.Handler {
	return func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, _ := s.Pty()

		game, err := registry.Create(cfg.GameID)
		if err != nil {
			log.Error("create game for session", "game", cfg.GameID, "err", err)
			return nil, nil
		}

		rc := core.DefaultConfig()
		rc.TickRate = cfg.TickRate
		rc.Seed = time.Now().UnixNano()
		if pty.Window.Width > 0 {
			rc.ScreenW = pty.Window.Width
		}
		if pty.Window.Height > 0 {
			rc.ScreenH = pty.Window.Height
		}
		game.Reset(rc)

		player := s.User()
		if player == "" {
			player = "player"
		}

		m := NewModel(game, rc, audio.Silent(), cfg.Store, player)
		return m, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	}
}
