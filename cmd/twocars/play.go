package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ddrozdov/twocars/internal/audio"
	"github.com/ddrozdov/twocars/internal/core"
	"github.com/ddrozdov/twocars/internal/games/twocars"
	"github.com/ddrozdov/twocars/internal/platform/tui"
	"github.com/ddrozdov/twocars/internal/registry"
	"github.com/ddrozdov/twocars/internal/storage"
)

var flagNoSound bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Two Cars",
	RunE: func(cmd *cobra.Command, args []string) error {
		twocars.SetConfigPath(flagConfig)
		twocars.SetHighscoreStore(storage.NewHighscoreFile(savePath()))

		store := openHistory()
		if store != nil {
			defer store.Close()
		}

		game, err := registry.Create("twocars")
		if err != nil {
			return err
		}

		rc := core.DefaultConfig()
		rc.TickRate = flagFPS
		rc.Seed = runtimeSeed()
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			rc.ScreenW = w
			rc.ScreenH = h
		}
		game.Reset(rc)

		sound := audio.Silent()
		if !flagNoSound {
			sound = audio.NewPlayer()
		}
		defer sound.Close()

		m := tui.NewModel(game, rc, sound, store, playerName())
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
		_, err = p.Run()
		return err
	},
}

func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}

func init() {
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "disable sound effects")
	rootCmd.AddCommand(playCmd)
}
