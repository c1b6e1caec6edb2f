package main

import (
	"fmt"

	"github.com/spf13/cobra"

	// games register themselves in init()
	_ "github.com/ddrozdov/twocars/internal/games/twocars"
	"github.com/ddrozdov/twocars/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available games",
	Run: func(cmd *cobra.Command, args []string) {
		for _, info := range registry.List() {
			fmt.Printf("%-12s %s\n", info.ID, info.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
