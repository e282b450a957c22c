package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meditrip/backend/internal/models"
)

type WalletRepo struct {
	pool *pgxpool.Pool
}

func NewWalletRepo(pool *pgxpool.Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

func (r *WalletRepo) Store(ctx context.Context, w *models.Wallet) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO blockchain_wallets (
			profile_id, wallet_address, claim_token, user_id, user_type,
			funding_amount_strk, funding_transaction_hash, ready_for_transactions, claimed
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false)
		RETURNING id, created_at
	`, w.ProfileID, w.WalletAddress, w.ClaimToken, w.UserID, w.UserType,
		w.FundingAmountSTRK, w.FundingTransactionHash, w.ReadyForTransactions,
	).Scan(&w.ID, &w.CreatedAt)
}

func (r *WalletRepo) GetByProfileID(ctx context.Context, profileID uuid.UUID) (*models.Wallet, error) {
	var w models.Wallet
	err := r.pool.QueryRow(ctx, `
		SELECT id, profile_id, wallet_address, claim_token, user_id, user_type,
		       funding_amount_strk, funding_transaction_hash, ready_for_transactions, claimed, created_at
		FROM blockchain_wallets WHERE profile_id = $1
	`, profileID).Scan(
		&w.ID, &w.ProfileID, &w.WalletAddress, &w.ClaimToken, &w.UserID, &w.UserType,
		&w.FundingAmountSTRK, &w.FundingTransactionHash, &w.ReadyForTransactions, &w.Claimed, &w.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WalletRepo) MarkClaimed(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE blockchain_wallets SET claimed = true WHERE id = $1`, id)
	return err
}

// ListUnclaimed returns wallets still held in custody, for the claim sweep.
func (r *WalletRepo) ListUnclaimed(ctx context.Context, limit int) ([]models.Wallet, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, profile_id, wallet_address, claim_token, user_id, user_type,
		       funding_amount_strk, funding_transaction_hash, ready_for_transactions, claimed, created_at
		FROM blockchain_wallets WHERE claimed = false
		ORDER BY created_at ASC LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wallets []models.Wallet
	for rows.Next() {
		var w models.Wallet
		if err := rows.Scan(
			&w.ID, &w.ProfileID, &w.WalletAddress, &w.ClaimToken, &w.UserID, &w.UserType,
			&w.FundingAmountSTRK, &w.FundingTransactionHash, &w.ReadyForTransactions, &w.Claimed, &w.CreatedAt,
		); err != nil {
			return nil, err
		}
		wallets = append(wallets, w)
	}
	return wallets, rows.Err()
}
