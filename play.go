package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/presentation/terminal"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a hotseat game in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := initConfig(cmd)
			if err != nil {
				return err
			}

			// logs go to stderr so they never mix with the board
			logger := initLogger(conf, os.Stderr)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			game := tictactoe.NewGameController(logger, tictactoe.NewGameState())
			renderer := terminal.NewRenderer(cmd.OutOrStdout())

			return terminal.Play(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), game, renderer)
		},
	}
}
