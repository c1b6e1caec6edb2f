package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ddrozdov/twocars/internal/storage"
)

var flagHistory bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe the saved highscore",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.Remove(savePath()); err != nil && !os.IsNotExist(err) {
			return err
		}
		fmt.Println("highscore cleared")

		if flagHistory {
			store, err := storage.Open(dbPath())
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.ClearScores("twocars"); err != nil {
				return err
			}
			fmt.Println("run history cleared")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&flagHistory, "history", false, "also clear the run history database")
	rootCmd.AddCommand(resetCmd)
}
