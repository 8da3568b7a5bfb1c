package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/atelierhq/atelier/internal/sqlite"
	"github.com/atelierhq/atelier/internal/transport"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the reference collaborator service",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureDBDir(cfg.DB.Path); err != nil {
			return fmt.Errorf("preparing database path: %w", err)
		}

		db, err := sqlite.New(cfg.DB.Path)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		if err := db.RunMigrations(); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}

		users := sqlite.NewUserStore(db)
		st := transport.Stores{
			Users:    users,
			Projects: sqlite.NewProjectStore(db),
			Assets:   sqlite.NewAssetStore(db),
			Comments: sqlite.NewCommentStore(db),
			Invites:  sqlite.NewInviteStore(db),
			Activity: sqlite.NewActivityStore(db),
		}

		srv := transport.NewServer(st, logger)
		router := transport.NewRouter(srv, users)

		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		httpServer := &http.Server{
			Addr:    addr,
			Handler: router,
		}

		go func() {
			logger.Info("server listening", "addr", addr)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("server error", "error", err)
			}
		}()

		waitForShutdown(httpServer)
		return nil
	},
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
