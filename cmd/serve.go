package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/SumYin/formula-booklet-website/internal/config"
	"github.com/SumYin/formula-booklet-website/internal/effects"
	"github.com/SumYin/formula-booklet-website/internal/handlers"
)

func newServeCmd() *cobra.Command {
	var port string
	var dir string
	var effectsPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the booklet website",
		Long: `Starts the booklet website on the specified port.

The home page lists every PDF in the booklet directory with its name and year
parsed from the filename. Each booklet is downloadable under /booklets/.`,
		Example: `  # Serve ./booklets on the default port 8888
  booklet-site serve

  # Serve a different directory on port 3000
  booklet-site serve --port 3000 --dir /srv/booklets

  # Override the keyword-to-effect rules
  booklet-site serve --effects effects.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mapper := effects.Default()
			if effectsPath != "" {
				rules, err := effects.LoadRules(effectsPath)
				if err != nil {
					return fmt.Errorf("failed to load effect rules: %w", err)
				}
				mapper = effects.New(rules)
			}

			handler := handlers.New(config.FromEnv(), dir, mapper)

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: handler.Routes(),
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Booklet site available", "addr", addr, "url", "http://localhost"+addr, "dir", dir)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")
	cmd.Flags().StringVarP(&dir, "dir", "d", "booklets", "Directory containing the booklet PDFs")
	cmd.Flags().StringVar(&effectsPath, "effects", "", "YAML file with keyword-to-effect rules (replaces the built-in rules)")

	return cmd
}
