// Package app boots the API server with database-backed components.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/monacap/trading-backend/internal/config"
	"github.com/monacap/trading-backend/internal/db"
	"github.com/monacap/trading-backend/internal/http/api"
	"github.com/monacap/trading-backend/internal/jobs"
	"github.com/monacap/trading-backend/internal/oauth"
)

// shutdownTimeout bounds the drain of in-flight requests on shutdown.
const shutdownTimeout = 10 * time.Second

// RunServer opens the database, migrates and seeds it, starts the session
// sweeper, and serves the API until ctx is cancelled.
func RunServer(ctx context.Context, cfg config.AppConfig, port int) error {
	configPath := config.ResolveConfigPath(cfg.ConfigPath)

	dsn, errDSN := config.LoadDatabaseDSN(configPath)
	if errDSN != nil {
		return errDSN
	}
	conn, errOpen := db.Open(dsn)
	if errOpen != nil {
		return errOpen
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return errMigrate
	}
	if errSeed := db.Seed(conn, config.LoadAdminSeedConfig(configPath)); errSeed != nil {
		return errSeed
	}

	sessionCfg, _ := config.LoadSessionConfig(configPath)
	oauthCfg, _ := config.LoadOAuthConfig(configPath)
	if oauthCfg.SessionDataURL == "" {
		log.Warn("oauth session-data-url not configured; /api/auth/google will reject all requests")
	}

	sweeper := jobs.NewSessionSweeper(conn)
	if errSweeper := sweeper.Start(); errSweeper != nil {
		return fmt.Errorf("start session sweeper: %w", errSweeper)
	}
	defer sweeper.Stop()

	engine := api.NewRouter(conn, sessionCfg, oauth.NewClient(oauthCfg.SessionDataURL))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", server.Addr).Info("api server listening")
		if errServe := server.ListenAndServe(); errServe != nil && !errors.Is(errServe, http.ErrServerClosed) {
			errCh <- errServe
			return
		}
		errCh <- nil
	}()

	select {
	case errServe := <-errCh:
		return errServe
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if errShutdown := server.Shutdown(shutdownCtx); errShutdown != nil {
		return fmt.Errorf("shutdown: %w", errShutdown)
	}
	return <-errCh
}
