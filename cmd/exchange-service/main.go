package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/config"
	delivery "github.com/LavaJover/shvark-exchange-service/internal/delivery/http"
	"github.com/LavaJover/shvark-exchange-service/internal/delivery/http/handlers"
	ratelimit "github.com/LavaJover/shvark-exchange-service/internal/delivery/http/middleware"
	publisher "github.com/LavaJover/shvark-exchange-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-exchange-service/internal/usecase"
	orderusecase "github.com/LavaJover/shvark-exchange-service/internal/usecase/order"
	"github.com/LavaJover/shvark-exchange-service/internal/usecase/token"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg.LogConfig)

	// Init database
	db := postgres.MustInitDB(cfg)
	if path := os.Getenv("MIGRATIONS_PATH"); path != "" {
		if err := migrate.RunMigrations(db, path); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := publisher.NewDefaultKafkaPublisher(brokers, cfg.KafkaService.Topic)
	defer pub.Close()

	// Init repos
	orderRepo := repository.NewDefaultOrderRepository(db)
	addressRepo := repository.NewDefaultAddressRepository(db)
	rateRepo := repository.NewDefaultRateRepository(db)
	settingsRepo := repository.NewDefaultSettingsRepository(db)

	// Init metrics
	orderMetrics := metrics.NewOrderMetrics()

	// Init token authority
	tokens, err := token.NewAuthority()
	if err != nil {
		log.Fatalf("failed to init token authority: %v", err)
	}

	// Init usecases
	orderUc := orderusecase.NewDefaultOrderUsecase(
		orderRepo,
		addressRepo,
		rateRepo,
		settingsRepo,
		pub,
		orderMetrics,
		tokens,
		cfg.Orders.ConfirmationsRequired,
	)
	addressUc := usecase.NewDefaultAddressUsecase(addressRepo)
	rateUc := usecase.NewDefaultRateUsecase(rateRepo)
	settingsUc := usecase.NewDefaultSettingsUsecase(settingsRepo)

	// Init HTTP server
	limiter := ratelimit.NewLimiter(
		cfg.Throttle.MaxRequests,
		time.Duration(cfg.Throttle.WindowSeconds)*time.Second,
	)
	server := delivery.NewServer(delivery.Deps{
		Orders:     handlers.NewOrderHandler(orderUc),
		Rates:      handlers.NewRateHandler(rateUc),
		Admin:      handlers.NewAdminHandler(orderUc, addressUc, rateUc, settingsUc),
		Limiter:    limiter,
		Metrics:    orderMetrics,
		AdminToken: cfg.AdminAPI.Token,
	})

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := http.ListenAndServe(addr, server.Router); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

func setupLogger(cfg config.LogConfig) {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
