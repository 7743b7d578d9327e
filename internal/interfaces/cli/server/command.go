// Package server provides the cobra command that runs the HTTP API server.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"patchbay/internal/infrastructure/config"
	"patchbay/internal/infrastructure/database"
	"patchbay/internal/infrastructure/migration"
	httpinterface "patchbay/internal/interfaces/http"
	"patchbay/internal/shared/constants"
	"patchbay/internal/shared/logger"
)

// NewCommand creates the server command.
func NewCommand() *cobra.Command {
	var env string
	var debug bool

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(env, debug)
		},
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "environment (development, test, production)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	return cmd
}

func run(env string, debug bool) error {
	ginMode := mapEnvToGinMode(env)

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The env flag lands in server.mode as the raw environment name; gin
	// only accepts its own mode strings.
	cfg.Server.Mode = ginMode

	if err := logger.Init(&cfg.Logger, debug); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	log := logger.NewLogger()

	gin.SetMode(cfg.Server.Mode)

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}()
	db := database.Get()

	manager := migration.NewManager(env)
	if err := manager.Migrate(db, migration.AutoMigrateModels()...); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	router := httpinterface.NewRouter(cfg, db, log)

	srv := &http.Server{
		Addr:    cfg.Server.GetAddr(),
		Handler: router,
	}

	go func() {
		log.Infow("starting HTTP server", "addr", srv.Addr, "env", env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorw("HTTP server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Infow("server stopped")
	return nil
}

// mapEnvToGinMode translates an environment name into one of gin's mode
// strings.
func mapEnvToGinMode(environment string) string {
	switch environment {
	case constants.EnvProduction, "prod":
		return gin.ReleaseMode
	case constants.EnvDevelopment, "dev":
		return gin.DebugMode
	case constants.EnvTest, "testing":
		return gin.TestMode
	case gin.DebugMode, gin.ReleaseMode:
		return environment
	default:
		return gin.DebugMode
	}
}
