package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/meditrip/backend/internal/config"
	"github.com/meditrip/backend/internal/db"
	"github.com/meditrip/backend/internal/events"
	apphttp "github.com/meditrip/backend/internal/http"
	"github.com/meditrip/backend/internal/http/handlers"
	"github.com/meditrip/backend/internal/repositories"
	"github.com/meditrip/backend/internal/services"
	"github.com/meditrip/backend/internal/walletdash"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	profileRepo := repositories.NewProfileRepo(pool)
	walletRepo := repositories.NewWalletRepo(pool)
	practiceRepo := repositories.NewPracticeRepo(pool)
	serviceRepo := repositories.NewServiceRepo(pool)
	purchaseRepo := repositories.NewPurchaseRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// WalletDash client
	wdClient := walletdash.NewClient(
		cfg.WalletDashBaseURL,
		cfg.WalletDashTimeout,
		walletdash.ZapObserver{Log: log.Named("walletdash")},
		log,
	)

	// Services
	registrationService := services.NewRegistrationService(profileRepo, walletRepo, wdClient, auditRepo, publisher, log)
	practiceService := services.NewPracticeService(practiceRepo, serviceRepo, profileRepo, walletRepo, wdClient, auditRepo, log)
	purchaseService := services.NewPurchaseService(serviceRepo, profileRepo, purchaseRepo, wdClient, auditRepo, publisher, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(registrationService, cfg, log)
	profileHandler := handlers.NewProfileHandler(profileRepo, walletRepo, purchaseRepo, wdClient, log)
	practiceHandler := handlers.NewPracticeHandler(practiceService, practiceRepo, serviceRepo, log)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService, log)
	catalogHandler := handlers.NewCatalogHandler(serviceRepo, log)
	statusHandler := handlers.NewStatusHandler(wdClient, log)
	wsHub := handlers.NewWSHub(cfg, subscriber, log)

	// Start WS hub
	wsHub.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, authHandler, profileHandler, practiceHandler, purchaseHandler, catalogHandler, statusHandler, wsHub)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
