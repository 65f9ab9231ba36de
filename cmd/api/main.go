package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/todoism/todoism-go/internal/config"
	"github.com/todoism/todoism-go/internal/crypto"
	"github.com/todoism/todoism-go/internal/handler"
	"github.com/todoism/todoism-go/internal/logger"
	"github.com/todoism/todoism-go/internal/repository"
	"github.com/todoism/todoism-go/internal/service"
	"go.uber.org/zap"
)

func main() {
	dotenvErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	if dotenvErr != nil {
		log.Warn("no .env file found, using environment variables")
	}

	db, err := repository.NewDB(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("database connection failed", zap.String("driver", cfg.DatabaseDriver), zap.Error(err))
	}
	defer db.Close()

	if err := repository.Migrate(context.Background(), db, cfg.DatabaseDriver); err != nil {
		log.Fatal("database migration failed", zap.Error(err))
	}

	signer := crypto.NewTokenSigner(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(repository.NewUserRepository(db), signer)
	itemService := service.NewItemService(repository.NewItemRepository(db), cfg.ItemsPerPage)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, cfg.DatabaseDriver),
	)

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: handler.NewRouter(handler.Deps{
			Config:   cfg,
			Logger:   log,
			Registry: reg,
			Auth:     authService,
			Items:    itemService,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env), zap.String("driver", cfg.DatabaseDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced shutdown", zap.Error(err))
		return
	}

	log.Info("server stopped")
}
