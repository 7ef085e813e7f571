package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/melodia-school/melodia-back/internal/api"
	"github.com/melodia-school/melodia-back/internal/config"
	"github.com/melodia-school/melodia-back/internal/cron"
	"github.com/melodia-school/melodia-back/internal/db"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using system env")
	}

	cfg := config.Load()

	if err := db.Init(cfg.Database.DSN()); err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}

	r := api.SetupRouter(cfg, logger)

	jobs := cron.StartJobs(cfg, logger)
	defer jobs.Stop()

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Info("server running", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
