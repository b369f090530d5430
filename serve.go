package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	app "github.com/rocketscienceinc/tictactoe-timetravel/internal"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP and WebSocket game server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := initConfig(cmd)
			if err != nil {
				return err
			}

			if port, _ := cmd.Flags().GetString("port"); port != "" {
				conf.HTTPPort = port
			}

			logger := initLogger(conf, os.Stdout)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err = app.RunApp(ctx, logger, conf); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (overrides config)")

	return serveCmd
}
