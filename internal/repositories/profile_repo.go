package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meditrip/backend/internal/models"
)

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// Create inserts a profile and, for doctors, the doctor_profiles row in one
// transaction so a doctor row can never exist without its base profile.
func (r *ProfileRepo) Create(ctx context.Context, p *models.Profile, d *models.DoctorProfile) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO profiles (id, first_name, last_name, email, user_type, country, blockchain_user_type, wallet_status, onboarding_step, onboarding_completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`, p.ID, p.FirstName, p.LastName, p.Email, p.UserType, p.Country, p.BlockchainUserType, p.WalletStatus, p.OnboardingStep, p.OnboardingCompleted).Scan(&p.CreatedAt)
	if err != nil {
		return err
	}

	if d != nil {
		_, err = tx.Exec(ctx, `
			INSERT INTO doctor_profiles (id, specialty, bio, country, city, verification_status)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, d.ID, d.Specialty, d.Bio, d.Country, d.City, d.VerificationStatus)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *ProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var p models.Profile
	err := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, user_type, country, blockchain_user_type, wallet_status, onboarding_step, onboarding_completed, created_at
		FROM profiles WHERE id = $1
	`, id).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.UserType, &p.Country,
		&p.BlockchainUserType, &p.WalletStatus, &p.OnboardingStep, &p.OnboardingCompleted, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepo) GetDoctorProfile(ctx context.Context, id uuid.UUID) (*models.DoctorProfile, error) {
	var d models.DoctorProfile
	err := r.pool.QueryRow(ctx, `
		SELECT id, specialty, bio, country, city, verification_status
		FROM doctor_profiles WHERE id = $1
	`, id).Scan(&d.ID, &d.Specialty, &d.Bio, &d.Country, &d.City, &d.VerificationStatus)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *ProfileRepo) SetWalletStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx, `UPDATE profiles SET wallet_status = $1 WHERE id = $2`, status, id)
	return err
}

// ListWalletPending returns profiles whose wallet creation has not succeeded yet,
// oldest first, for the worker retry sweep.
func (r *ProfileRepo) ListWalletPending(ctx context.Context, limit int) ([]models.Profile, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, first_name, last_name, email, user_type, country, blockchain_user_type, wallet_status, onboarding_step, onboarding_completed, created_at
		FROM profiles WHERE wallet_status = $1
		ORDER BY created_at ASC LIMIT $2
	`, models.WalletStatusPending, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(
			&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.UserType, &p.Country,
			&p.BlockchainUserType, &p.WalletStatus, &p.OnboardingStep, &p.OnboardingCompleted, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *ProfileRepo) UpdateOnboarding(ctx context.Context, id uuid.UUID, step int, completed bool) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE profiles SET onboarding_step = $1, onboarding_completed = $2 WHERE id = $3
	`, step, completed, id)
	return err
}
