package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meditrip/backend/internal/models"
)

type PracticeRepo struct {
	pool *pgxpool.Pool
}

func NewPracticeRepo(pool *pgxpool.Pool) *PracticeRepo {
	return &PracticeRepo{pool: pool}
}

func (r *PracticeRepo) Create(ctx context.Context, p *models.Practice) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO medical_practices (doctor_id, wallet_id, backend_practice_id, name, specialty, location, contract_address, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, p.DoctorID, p.WalletID, p.BackendPracticeID, p.Name, p.Specialty, p.Location, p.ContractAddress, p.Active).Scan(&p.ID, &p.CreatedAt)
}

func (r *PracticeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Practice, error) {
	var p models.Practice
	err := r.pool.QueryRow(ctx, `
		SELECT id, doctor_id, wallet_id, backend_practice_id, name, specialty, location, contract_address, active, created_at
		FROM medical_practices WHERE id = $1
	`, id).Scan(
		&p.ID, &p.DoctorID, &p.WalletID, &p.BackendPracticeID, &p.Name,
		&p.Specialty, &p.Location, &p.ContractAddress, &p.Active, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PracticeRepo) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]models.Practice, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, doctor_id, wallet_id, backend_practice_id, name, specialty, location, contract_address, active, created_at
		FROM medical_practices WHERE doctor_id = $1
		ORDER BY created_at DESC
	`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var practices []models.Practice
	for rows.Next() {
		var p models.Practice
		if err := rows.Scan(
			&p.ID, &p.DoctorID, &p.WalletID, &p.BackendPracticeID, &p.Name,
			&p.Specialty, &p.Location, &p.ContractAddress, &p.Active, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		practices = append(practices, p)
	}
	return practices, rows.Err()
}
