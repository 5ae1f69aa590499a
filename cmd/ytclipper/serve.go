package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/ytclipper/ytclipper/internal/api"
	"github.com/ytclipper/ytclipper/internal/config"
	"github.com/ytclipper/ytclipper/internal/logging"
	"github.com/ytclipper/ytclipper/internal/session"
	"github.com/ytclipper/ytclipper/internal/ui"
	"github.com/ytclipper/ytclipper/internal/youtube"
)

func newServeCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the clip builder web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *envFile)
		},
	}
}

func runServe(parent context.Context, envFile string) error {
	startTime := time.Now()
	if parent == nil {
		parent = context.Background()
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewLogger(cfg.LogLevel())
	logger.Info("starting ytclipper",
		"version", config.Version,
		"addr", cfg.Addr(),
		"public_url", cfg.LocalURL(),
		"session_ttl", cfg.SessionTTL().String(),
	)

	registry := session.NewRegistry(cfg.DefaultVideo(), logging.WithComponent(logger, "sessions"))
	manager := session.NewManager(session.NewCookieStore(cfg.SessionKey()), registry, logger)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	janitor := session.NewJanitor(registry, cfg.SessionTTL(), logging.WithComponent(logger, "janitor"))
	go janitor.Start(ctx)

	apiServer := api.NewServer(api.ServerConfig{
		Addr:      cfg.Addr(),
		PublicURL: cfg.PublicURL(),
		Player:    youtube.NewPlayer(cfg.PlayerDomain()),
		Sessions:  manager,
		Logger:    logger,
		StartTime: startTime,
		Version:   config.Version,
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- apiServer.Start()
	}()

	fmt.Printf("\n  YouTube Clipper v%s\n  Open %s/ in your browser\n\n", config.Version, cfg.LocalURL())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	quitCh := make(chan struct{})

	if cfg.Headless() {
		logger.Info("running in headless mode (no system tray)")
	} else {
		tray := ui.NewTray(ui.TrayConfig{
			Sessions:  registry,
			PublicURL: cfg.LocalURL(),
			Logger:    logging.WithComponent(logger, "tray"),
			OnQuit: func() {
				close(quitCh)
			},
		})
		go tray.Run(ctx)
	}

	var runErr error
	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig)
	case <-quitCh:
	case <-parent.Done():
	case err := <-serverErr:
		if err != nil {
			runErr = fmt.Errorf("HTTP server error: %w", err)
		}
	}

	logger.Info("initiating graceful shutdown")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown HTTP server", "error", err)
	}

	logger.Info("shutdown complete")
	return runErr
}
