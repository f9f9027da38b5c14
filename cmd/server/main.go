// cmd/server/main.go
package main

import (
	"context"
	"math/rand/v2"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/busride/lobby-service/internal/config"
	"github.com/busride/lobby-service/internal/database"
	"github.com/busride/lobby-service/internal/docstore"
	"github.com/busride/lobby-service/internal/handlers"
	"github.com/busride/lobby-service/internal/identity"
	"github.com/busride/lobby-service/internal/lobby"
	"github.com/busride/lobby-service/internal/middleware"
)

func main() {
	logger := logrus.New()
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(lvl)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()

	var store lobby.Store
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		pg, err := database.Connect(ctx, logger, cfg.Postgres.URL)
		if err != nil {
			logger.Fatalf("postgres: %v", err)
		}
		defer pg.Close()
		store = pg
	default:
		ds := docstore.New(logger, &redis.Options{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			Password: cfg.Redis.Password,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := ds.Ping(pingCtx)
		cancel()
		if err != nil {
			logger.Fatalf("redis: %v", err)
		}
		defer ds.Close()
		store = ds
	}

	svc := lobby.NewService(logger, store, lobby.NewCodeGenerator(lobby.RandFunc(rand.IntN)))
	srv := handlers.NewServer(logger, svc)

	mux := http.NewServeMux()
	srv.Routes(mux)

	var resolver identity.Resolver = identity.HeaderResolver{}
	if cfg.JWTSigningKey != "" {
		resolver = identity.TokenResolver{SigningKey: []byte(cfg.JWTSigningKey)}
	}

	handler := middleware.RequestID(
		identity.Middleware(logger, resolver)(
			middleware.Logging(logger)(mux),
		),
	)

	server := &http.Server{
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	l, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		logger.Fatalf("failed to listen: %v", err)
	}
	logger.Infof("listening on %s", l.Addr())

	errc := make(chan error, 1)
	go func() {
		errc <- server.Serve(l)
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	select {
	case err := <-errc:
		logger.Errorf("failed to serve: %v", err)
	case sig := <-sigs:
		logger.Infof("terminating: %v", sig)
	}
}
