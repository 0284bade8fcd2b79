package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"resiosctl/api"
	"resiosctl/api/router/handlers"
	"resiosctl/config"
	"resiosctl/logger"

	"github.com/spf13/cobra"
)

var serverPort string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Serves the console operations as a JSON API under /api",
	Long: `Starts the console API server. Route, session, draft and settings
operations are served under /api. Press Ctrl+C to shut it down gracefully.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port := serverPort
		if !cmd.Flags().Changed("port") {
			port = config.AppConfig.Server.Port
		}
		if port == "" {
			logger.Error("Server Command: Server port is empty after checking flag and config, defaulting to 8779")
			port = "8779"
		}

		var cosmos handlers.Remote
		client, err := newRemoteClient()
		if err != nil {
			logger.Warn("Server Command: No usable Cosmos server (%v). Server-backed endpoints answer 503 until remote.url is set.", err)
		} else {
			cosmos = client
		}

		server := &http.Server{
			Addr: ":" + port,
			Handler: api.NewServerHandler(api.Options{
				Remote:      cosmos,
				CORSOrigins: config.AppConfig.Server.CORSOrigins,
			}),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("Server Command: Listening on :%s", port)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				logger.Error("Server Command: ListenAndServe error: %v", err)
				return err
			}
			return nil
		case <-ctx.Done():
			logger.Info("Server Command: Received shutdown signal. Initiating shutdown...")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server Command: Graceful shutdown failed: %v", err)
			return err
		}
		logger.Info("Server Command: Gracefully stopped.")
		return nil
	},
}

func init() {
	serverCmd.Flags().StringVarP(&serverPort, "port", "p", "8779", "Port for the API server (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
