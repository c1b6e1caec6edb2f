package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/spf13/cobra"

	"github.com/ddrozdov/twocars/internal/games/twocars"
	"github.com/ddrozdov/twocars/internal/platform/tui"
	"github.com/ddrozdov/twocars/internal/storage"
)

var (
	flagHost string
	flagPort int
	flagKey  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve Two Cars over SSH",
	Long: `Run an SSH server where every connecting session gets its own game.
Scores from all sessions land in the shared history database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		twocars.SetConfigPath(flagConfig)
		twocars.SetHighscoreStore(storage.NewHighscoreFile(savePath()))

		store := openHistory()
		if store != nil {
			defer store.Close()
		}

		srv, err := tui.NewSSHServer(tui.SSHConfig{
			Host:        flagHost,
			Port:        flagPort,
			HostKeyPath: flagKey,
			GameID:      "twocars",
			TickRate:    flagFPS,
			Store:       store,
		})
		if err != nil {
			return err
		}

		done := make(chan os.Signal, 1)
		signal.Notify(done, os.Interrupt, syscall.SIGTERM)

		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
				log.Error("ssh server", "err", err)
				done <- os.Interrupt
			}
		}()
		log.Info("serving Two Cars over SSH", "host", flagHost, "port", flagPort)

		<-done
		log.Info("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagHost, "host", "0.0.0.0", "address to listen on")
	serveCmd.Flags().IntVar(&flagPort, "port", 2222, "port to listen on")
	serveCmd.Flags().StringVar(&flagKey, "key", ".ssh/twocars_ed25519", "host key path")
	rootCmd.AddCommand(serveCmd)
}
