package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ddrozdov/twocars/internal/platform/tui"
	"github.com/ddrozdov/twocars/internal/storage"
)

var (
	flagBoard bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs and the all-time best",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.Open(dbPath())
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.TopScores("twocars", flagLimit)
		if err != nil {
			return err
		}
		stats, err := store.GetGameStats("twocars")
		if err != nil {
			return err
		}

		if flagBoard {
			board := tui.NewScoreboard("Two Cars — top runs", entries, stats)
			_, err := tea.NewProgram(board, tea.WithAltScreen()).Run()
			return err
		}

		best, err := storage.NewHighscoreFile(savePath()).Load()
		if err != nil {
			return err
		}

		fmt.Printf("all-time best: %d\n", best)
		fmt.Printf("recorded runs: %d (avg %.1f)\n\n", stats.Plays, stats.AvgScore)
		for i, e := range entries {
			fmt.Printf("%2d. %-14s %6d  %s\n",
				i+1, e.Player, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "number of runs to show")
	rootCmd.AddCommand(scoresCmd)
}
