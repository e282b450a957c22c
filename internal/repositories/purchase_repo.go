package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meditrip/backend/internal/models"
)

type PurchaseRepo struct {
	pool *pgxpool.Pool
}

func NewPurchaseRepo(pool *pgxpool.Pool) *PurchaseRepo {
	return &PurchaseRepo{pool: pool}
}

func (r *PurchaseRepo) Create(ctx context.Context, p *models.Purchase) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO service_purchases (
			service_id, patient_id, backend_purchase_id, transaction_hash,
			amount_usd, amount_strk, medic_amount, treasury_amount, liquidity_amount, rewards_amount,
			status, completed
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`, p.ServiceID, p.PatientID, p.BackendPurchaseID, p.TransactionHash,
		p.AmountUSD, p.AmountSTRK, p.MedicAmount, p.TreasuryAmount, p.LiquidityAmount, p.RewardsAmount,
		p.Status, p.Completed,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *PurchaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Purchase, error) {
	var p models.Purchase
	err := r.pool.QueryRow(ctx, `
		SELECT id, service_id, patient_id, backend_purchase_id, transaction_hash,
		       amount_usd, amount_strk, medic_amount, treasury_amount, liquidity_amount, rewards_amount,
		       status, completed, created_at
		FROM service_purchases WHERE id = $1
	`, id).Scan(
		&p.ID, &p.ServiceID, &p.PatientID, &p.BackendPurchaseID, &p.TransactionHash,
		&p.AmountUSD, &p.AmountSTRK, &p.MedicAmount, &p.TreasuryAmount, &p.LiquidityAmount, &p.RewardsAmount,
		&p.Status, &p.Completed, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PurchaseRepo) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]models.Purchase, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, service_id, patient_id, backend_purchase_id, transaction_hash,
		       amount_usd, amount_strk, medic_amount, treasury_amount, liquidity_amount, rewards_amount,
		       status, completed, created_at
		FROM service_purchases WHERE patient_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3
	`, patientID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []models.Purchase
	for rows.Next() {
		var p models.Purchase
		if err := rows.Scan(
			&p.ID, &p.ServiceID, &p.PatientID, &p.BackendPurchaseID, &p.TransactionHash,
			&p.AmountUSD, &p.AmountSTRK, &p.MedicAmount, &p.TreasuryAmount, &p.LiquidityAmount, &p.RewardsAmount,
			&p.Status, &p.Completed, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}
