// Command twocars runs the Two Cars arcade game in the terminal.
package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ddrozdov/twocars/internal/storage"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDB     string
	flagSave   string
	flagConfig string
)

var rootCmd = &cobra.Command{
	Use:   "twocars",
	Short: "Two Cars in your terminal",
	Long: `Two cars, four lanes, one keyboard. Steer the blue car with A and
the red car with D: catch every circle, dodge every box, and watch the road
speed up while you last.`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "simulation ticks per second")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 picks one from the clock)")
	pf.StringVar(&flagDB, "db", "", "score history database path")
	pf.StringVar(&flagSave, "save", "", "highscore file path")
	pf.StringVar(&flagConfig, "config", "", "game config file path")
}

func dbPath() string {
	if flagDB != "" {
		return flagDB
	}
	return storage.DefaultDBPath()
}

func savePath() string {
	if flagSave != "" {
		return flagSave
	}
	return storage.DefaultHighscorePath()
}

func runtimeSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// openHistory opens the run-history database. History is optional: on
// failure the game still runs, it just records nothing.
func openHistory() *storage.Store {
	store, err := storage.Open(dbPath())
	if err != nil {
		log.Warn("score history unavailable", "err", err)
		return nil
	}
	return store
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
