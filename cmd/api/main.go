package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/alorahq/marketplace/internal/auth"
	"github.com/alorahq/marketplace/internal/catalog"
	"github.com/alorahq/marketplace/internal/config"
	"github.com/alorahq/marketplace/internal/httpx"
	"github.com/alorahq/marketplace/internal/identity"
	kafkax "github.com/alorahq/marketplace/internal/kafka"
	"github.com/alorahq/marketplace/internal/orders"
	"github.com/alorahq/marketplace/internal/postgres"
	"github.com/alorahq/marketplace/internal/redisx"
	"github.com/alorahq/marketplace/internal/storage"
)

func main() {
	_ = godotenv.Load()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		slog.Error("db connect failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer for order lifecycle events
	prod := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderEvents, 1024)
	prod.Start(ctx)

	// Uploads
	uploads, err := storage.NewDisk(cfg.UploadDir)
	if err != nil {
		slog.Error("upload dir unavailable", "error", err)
		os.Exit(1)
	}

	tokens := auth.NewTokens(cfg.JWTSecret)

	// Services
	identitySvc := &identity.Service{Store: &identity.Repo{DB: db}, Tokens: tokens}
	catalogSvc := &catalog.Service{Store: &catalog.Repo{DB: db}, Redis: rdb}
	ordersSvc := &orders.Service{
		Store:       &orders.Repo{DB: db},
		Redis:       rdb,
		Producer:    prod,
		ServiceName: cfg.ServiceName,
	}

	// Router
	router := httpx.NewRouter()
	httpx.Mount(router, tokens,
		&httpx.IdentityHandler{Service: identitySvc},
		&httpx.CatalogHandler{Service: catalogSvc, Uploads: uploads},
		&httpx.OrdersHandler{Service: ordersSvc},
		cfg.UploadDir,
	)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		slog.Info("HTTP listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	slog.Info("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close() // stop intake; the loop drains buffered events and exits
	prod.WaitClosed()
}
