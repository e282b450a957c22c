package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meditrip/backend/internal/models"
)

type ServiceRepo struct {
	pool *pgxpool.Pool
}

func NewServiceRepo(pool *pgxpool.Pool) *ServiceRepo {
	return &ServiceRepo{pool: pool}
}

func (r *ServiceRepo) Create(ctx context.Context, s *models.Service) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO medical_services (doctor_id, practice_id, name, description, price_usd, backend_service_id, service_contract_address, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, s.DoctorID, s.PracticeID, s.Name, s.Description, s.PriceUSD, s.BackendServiceID, s.ServiceContractAddress, s.Active).Scan(&s.ID, &s.CreatedAt)
}

func (r *ServiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	var s models.Service
	err := r.pool.QueryRow(ctx, `
		SELECT id, doctor_id, practice_id, name, description, price_usd, backend_service_id, service_contract_address, active, created_at
		FROM medical_services WHERE id = $1
	`, id).Scan(
		&s.ID, &s.DoctorID, &s.PracticeID, &s.Name, &s.Description,
		&s.PriceUSD, &s.BackendServiceID, &s.ServiceContractAddress, &s.Active, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepo) ListByPractice(ctx context.Context, practiceID uuid.UUID) ([]models.Service, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, doctor_id, practice_id, name, description, price_usd, backend_service_id, service_contract_address, active, created_at
		FROM medical_services WHERE practice_id = $1 AND active = true
		ORDER BY created_at DESC
	`, practiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanServices(rows)
}

// ListAvailable returns all active services joined with their practice and
// doctor for the public catalog.
func (r *ServiceRepo) ListAvailable(ctx context.Context, limit, offset int) ([]models.ServiceListing, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT s.id, s.doctor_id, s.practice_id, s.name, s.description, s.price_usd,
		       s.backend_service_id, s.service_contract_address, s.active, s.created_at,
		       mp.name, mp.location, mp.specialty, p.first_name, p.last_name
		FROM medical_services s
		JOIN medical_practices mp ON mp.id = s.practice_id
		JOIN profiles p ON p.id = s.doctor_id
		WHERE s.active = true AND mp.active = true
		ORDER BY s.created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []models.ServiceListing
	for rows.Next() {
		var l models.ServiceListing
		if err := rows.Scan(
			&l.ID, &l.DoctorID, &l.PracticeID, &l.Name, &l.Description, &l.PriceUSD,
			&l.BackendServiceID, &l.ServiceContractAddress, &l.Active, &l.CreatedAt,
			&l.PracticeName, &l.PracticeLocation, &l.PracticeSpecialty,
			&l.DoctorFirstName, &l.DoctorLastName,
		); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

type serviceRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanServices(rows serviceRows) ([]models.Service, error) {
	var services []models.Service
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(
			&s.ID, &s.DoctorID, &s.PracticeID, &s.Name, &s.Description,
			&s.PriceUSD, &s.BackendServiceID, &s.ServiceContractAddress, &s.Active, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}
