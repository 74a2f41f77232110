package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grishaff/LuminaShare/internal/api"
	"github.com/grishaff/LuminaShare/internal/config"
	"github.com/grishaff/LuminaShare/internal/database"
	"github.com/grishaff/LuminaShare/internal/handler"
	"github.com/grishaff/LuminaShare/internal/logger"
	"github.com/grishaff/LuminaShare/internal/middleware"
	"github.com/grishaff/LuminaShare/internal/services"
	"github.com/grishaff/LuminaShare/internal/store"
)

func main() {
	if err := run(); err != nil {
		logger.Error("%v", err)
		logger.Sync()
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}
	if err := logger.Init(cfg.LogMode); err != nil {
		return fmt.Errorf("could not init logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(ctx, cfg)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	images, err := services.NewImageStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("image storage: %w", err)
	}
	if c, ok := images.(io.Closer); ok {
		defer c.Close()
	}

	// Initialize routes
	h := handler.New(store.NewPostgres(db), images, cfg)
	router := api.SetupRouter(h)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.CORSMiddleware(cfg.CORSOrigin)(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Success("Server starting on port %s", cfg.Port)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
