package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/mdtools/internal/api"
	"github.com/dgallion1/mdtools/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the upload web front end",
	Long: `Serve starts an HTTP server with a small upload form and JSON API:
POST /api/convert converts an uploaded Markdown file, POST /api/edit
applies a heading edit. Settings come from MDTOOLS_* environment
variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

		cfg := config.Load()
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		srv := api.NewServer(log, cfg)

		httpServer := &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      srv,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		// Graceful shutdown.
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh
			log.Info("shutting down...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			httpServer.Shutdown(shutdownCtx)
		}()

		log.Info("starting mdtools server", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("port", "", "listen port (default: MDTOOLS_PORT or 8090)")

	rootCmd.AddCommand(serveCmd)
}
