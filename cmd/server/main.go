package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"medicare-api/internal/config"
	"medicare-api/internal/handler"
	"medicare-api/internal/middleware"
	"medicare-api/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := newLogger(cfg.Env)
	defer log.Sync()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	// database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db", zap.Error(err))
	}
	defer pool.Close()
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("db ping", zap.Error(err))
	}
	log.Info("connected to postgres")

	// run migrations
	if migration, err := os.ReadFile("db/migrations/001_init.sql"); err != nil {
		log.Warn("migration file not found, skipping", zap.Error(err))
	} else if _, err := pool.Exec(context.Background(), string(migration)); err != nil {
		log.Warn("migration", zap.Error(err))
	} else {
		log.Info("migration applied")
	}

	st := store.New(pool)
	h := handler.New(cfg, st, log)
	rl := middleware.NewRateLimiter(5, 10)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: h.Router(rl),
	}
	go func() {
		log.Info("http listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http", zap.Error(err))
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Info("shutting down")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}

func newLogger(env string) *zap.Logger {
	if env == "production" {
		log, _ := zap.NewProduction()
		return log
	}
	log, _ := zap.NewDevelopment()
	return log
}
