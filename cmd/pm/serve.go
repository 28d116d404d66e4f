package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prompt-mirror/pm/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analyze/rewrite JSON API",
	Long: `Serve starts an HTTP server exposing the analysis pipeline:

  POST /api/analyze   {"text": ...} -> analysis, rewrite, notices
  GET  /api/presets   bundled example prompts
  POST /api/download  {"rewrite": ...} -> text/plain attachment
  GET  /health

With --remote, requests are first offered to the configured provider; its
output is validated and any failure falls back to the local result.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		capability, err := buildCapability()
		if err != nil {
			return err
		}

		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.New(serveAddr, capability, logger).ListenAndServe(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
}
