package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meditrip/backend/internal/config"
	"github.com/meditrip/backend/internal/db"
	"github.com/meditrip/backend/internal/events"
	"github.com/meditrip/backend/internal/repositories"
	"github.com/meditrip/backend/internal/services"
	"github.com/meditrip/backend/internal/walletdash"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repos
	profileRepo := repositories.NewProfileRepo(pool)
	walletRepo := repositories.NewWalletRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	// Services
	publisher := events.NewRedisPublisher(rdb, log)
	wdClient := walletdash.NewClient(
		cfg.WalletDashBaseURL,
		cfg.WalletDashTimeout,
		walletdash.ZapObserver{Log: log.Named("walletdash")},
		log,
	)
	registrationService := services.NewRegistrationService(profileRepo, walletRepo, wdClient, auditRepo, publisher, log)

	log.Info("worker started")

	walletRetryTicker := time.NewTicker(cfg.WalletRetryInterval)
	claimSweepTicker := time.NewTicker(cfg.ClaimSweepInterval)
	defer walletRetryTicker.Stop()
	defer claimSweepTicker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-walletRetryTicker.C:
			runWalletRetries(ctx, profileRepo, registrationService, log)
		case <-claimSweepTicker.C:
			runClaimSweep(ctx, walletRepo, wdClient, publisher, log)
		case <-sigCh:
			log.Info("shutting down worker")
			cancel()
			return
		case <-ctx.Done():
			return
		}
	}
}

// runWalletRetries re-attempts wallet creation for profiles whose wallet was
// never provisioned (registration returned a wallet-service error).
func runWalletRetries(ctx context.Context, profileRepo *repositories.ProfileRepo, registrationService *services.RegistrationService, log *zap.Logger) {
	profiles, err := profileRepo.ListWalletPending(ctx, 50)
	if err != nil {
		log.Error("failed to list wallet-pending profiles", zap.Error(err))
		return
	}

	for _, profile := range profiles {
		log.Info("retrying wallet creation", zap.String("profile_id", profile.ID.String()))
		if err := registrationService.RetryWalletCreation(ctx, profile.ID); err != nil {
			log.Warn("wallet retry failed", zap.String("profile_id", profile.ID.String()), zap.Error(err))
		}
	}
}

// runClaimSweep mirrors the remote claim state onto local wallet rows so the
// UI can stop showing claim instructions once custody has been transferred.
func runClaimSweep(ctx context.Context, walletRepo *repositories.WalletRepo, wdClient *walletdash.Client, publisher events.Publisher, log *zap.Logger) {
	wallets, err := walletRepo.ListUnclaimed(ctx, 100)
	if err != nil {
		log.Error("failed to list unclaimed wallets", zap.Error(err))
		return
	}

	for _, wallet := range wallets {
		status, err := wdClient.ClaimStatus(ctx, wallet.ClaimToken)
		if err != nil {
			log.Warn("claim status check failed", zap.String("wallet_id", wallet.ID.String()), zap.Error(err))
			continue
		}
		if !status.Claimed {
			continue
		}

		if err := walletRepo.MarkClaimed(ctx, wallet.ID); err != nil {
			log.Error("failed to mark wallet claimed", zap.String("wallet_id", wallet.ID.String()), zap.Error(err))
			continue
		}

		log.Info("wallet claimed", zap.String("wallet_id", wallet.ID.String()))
		_ = publisher.Publish(ctx, events.StreamWallet, events.Event{
			Type: events.EventWalletClaimed,
			Payload: map[string]any{
				"profile_id":     wallet.ProfileID.String(),
				"wallet_address": wallet.WalletAddress,
			},
		})

		time.Sleep(200 * time.Millisecond) // soft rate limit against WalletDash
	}
}
