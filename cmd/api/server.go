package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/andesbooks/inventory-api/internal/api/middlewares"
	"github.com/andesbooks/inventory-api/internal/api/router"
	"github.com/andesbooks/inventory-api/internal/config"
	"github.com/andesbooks/inventory-api/internal/exchange"
	"github.com/andesbooks/inventory-api/internal/pricing"
	"github.com/andesbooks/inventory-api/internal/repository/sqlconnect"
	storebooks "github.com/andesbooks/inventory-api/internal/store/books"
	"github.com/andesbooks/inventory-api/pkg/utils"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := sqlconnect.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Postgres connection failed: %v", err)
	}
	defer db.Close()
	fmt.Println("Connected to Postgres")

	calc := pricing.New(
		storebooks.Store{DB: db},
		exchange.NewClient(cfg.ExchangeRateURL, cfg.RequestTimeout),
		pricing.Config{
			TargetCurrency: cfg.LocalCurrency,
			ProfitMargin:   cfg.ProfitMargin,
		},
	)

	// Redis-backed limiter when configured, in-process otherwise.
	limiter := utils.Middleware(middlewares.Throttle(5, 20))
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		if opt.TLSConfig != nil { // rediss:// URLs
			opt.TLSConfig.MinVersion = tls.VersionTLS12
		}
		rdb := redis.NewClient(opt)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Redis connection failed: %v", err)
		}
		fmt.Println("Connected to Redis")
		limiter = middlewares.NewRedisFixedWindow(rdb, 300, time.Minute, middlewares.PerIPKey("rl")).Middleware
	}

	handler := utils.ApplyMiddleware(
		router.Router(db, calc),
		middlewares.Recovery,
		middlewares.RequestID,
		middlewares.ResponseTime,
		middlewares.SecurityHeaders,
		middlewares.Cors,
		limiter,
	)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	fmt.Println("Server is running on", cfg.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalln("Error starting server:", err)
	}
}
