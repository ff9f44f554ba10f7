package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/vershina/sportclub/internal/models"
)

type ServiceInput struct {
	Name        string
	Description *string
	Price       float64
	Duration    *string
	Section     models.Section
}

type ServiceRepository struct {
	db DBTX
}

func NewServiceRepository(db DBTX) *ServiceRepository {
	return &ServiceRepository{db: db}
}

const serviceColumns = `id, name, description, price::float8, duration, section`

func (r *ServiceRepository) Create(ctx context.Context, input ServiceInput) (*models.Service, error) {
	query := `
		INSERT INTO services (name, description, price, duration, section)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + serviceColumns
	return scanService(r.db.QueryRow(ctx, query,
		input.Name,
		input.Description,
		input.Price,
		input.Duration,
		input.Section,
	))
}

func (r *ServiceRepository) Update(ctx context.Context, id int64, input ServiceInput) (*models.Service, error) {
	query := `
		UPDATE services
		SET name = $1,
			description = $2,
			price = $3,
			duration = $4,
			section = $5
		WHERE id = $6
		RETURNING ` + serviceColumns
	return scanService(r.db.QueryRow(ctx, query,
		input.Name,
		input.Description,
		input.Price,
		input.Duration,
		input.Section,
		id,
	))
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*models.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`
	return scanService(r.db.QueryRow(ctx, query, id))
}

func (r *ServiceRepository) ListBySection(ctx context.Context, section models.Section) ([]models.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE section = $1 ORDER BY name, id`
	return r.list(ctx, query, section)
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, `DELETE FROM services WHERE id = $1`, id)
}

func (r *ServiceRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&total)
	return total, err
}

func (r *ServiceRepository) list(ctx context.Context, query string, args ...any) ([]models.Service, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]models.Service, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, *service)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}

func scanService(row pgx.Row) (*models.Service, error) {
	var service models.Service
	err := row.Scan(
		&service.ID,
		&service.Name,
		&service.Description,
		&service.Price,
		&service.Duration,
		&service.Section,
	)
	if err != nil {
		return nil, err
	}
	return &service, nil
}
