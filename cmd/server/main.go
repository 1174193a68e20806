// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"nextcard-intake/internal/common/config"
	"nextcard-intake/internal/common/database"
	"nextcard-intake/internal/common/logger"
	"nextcard-intake/internal/intake"
	"nextcard-intake/internal/server"
	"nextcard-intake/internal/telegram"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	zapLog.Info("Starting intake server...")

	cfg, err := config.Load()
	if err != nil {
		// Missing Telegram credentials land here: refuse to start.
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.NewZapAdapter(zapLog)

	redisClient := database.NewRedis(cfg.RateLimit.Redis)
	defer redisClient.Close()
	if err := redisClient.Ping(context.Background()); err != nil {
		// The limiter fails open, so a missing Redis degrades throttling
		// without blocking intake.
		zapLog.Warn("redis unavailable, rate limiting degraded", zap.Error(err))
	}

	tgClient := telegram.NewClient(cfg.Telegram)
	dispatcher := intake.NewDispatcher(tgClient, log)
	service := intake.NewService(dispatcher, log)

	handler := server.NewHandler(service, log)
	limiter := server.NewRateLimiter(
		redisClient.Client,
		cfg.RateLimit.SubmitPerMinute,
		config.GetDuration(cfg.RateLimit.Window),
		log,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      server.NewRouter(handler, limiter, log, cfg.Server.StaticDir),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zapLog.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
}
