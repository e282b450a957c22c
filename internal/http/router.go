package http

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/meditrip/backend/internal/config"
	"github.com/meditrip/backend/internal/http/handlers"
	"github.com/meditrip/backend/internal/middleware"
	"github.com/meditrip/backend/internal/rbac"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	practiceHandler *handlers.PracticeHandler,
	purchaseHandler *handlers.PurchaseHandler,
	catalogHandler *handlers.CatalogHandler,
	statusHandler *handlers.StatusHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Registration (public)
	api.Post("/auth/register", authHandler.Register)

	// Rate-limited public endpoints
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute))

	// Meta (public, no auth required)
	metaHandler := handlers.NewMetaHandler()
	api.Get("/meta/specialties", metaHandler.GetSpecialties)
	api.Get("/meta/countries", metaHandler.GetCountries)

	// Public catalog
	api.Get("/catalog/services", catalogHandler.ListServices)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	// Profile
	protected.Get("/me", profileHandler.GetMe)
	protected.Patch("/me/onboarding", profileHandler.UpdateOnboarding)
	protected.Get("/me/wallet", profileHandler.GetWallet)
	protected.Get("/me/wallet/claim-status", profileHandler.GetClaimStatus)
	protected.Get("/me/purchases", profileHandler.MyPurchases)

	// Practices and services (doctor side)
	protected.Post("/practices", middleware.RequirePermission(rbac.PermCreatePractice), practiceHandler.CreatePractice)
	protected.Get("/practices/my", practiceHandler.MyPractices)
	protected.Get("/practices/:id/services", practiceHandler.GetPracticeServices)
	protected.Post("/services", middleware.RequirePermission(rbac.PermCreateService), practiceHandler.CreateService)

	// Purchases (patient side)
	protected.Post("/services/:id/purchase", middleware.RequirePermission(rbac.PermPurchaseService), purchaseHandler.Purchase)

	// WalletDash status pass-throughs
	protected.Get("/status/walletdash", statusHandler.WalletDashHealth)
	protected.Get("/status/oracle", statusHandler.OracleHealth)
	protected.Get("/analytics/user-types", middleware.RequirePermission(rbac.PermViewAnalytics), statusHandler.UserTypeAnalytics)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
