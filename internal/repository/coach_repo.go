package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/vershina/sportclub/internal/models"
)

type CoachInput struct {
	Name           string
	Experience     *string
	Specialization *string
	Section        models.Section
	PhotoURL       *string
	PhotoHandle    *string
}

type CoachRepository struct {
	db DBTX
}

func NewCoachRepository(db DBTX) *CoachRepository {
	return &CoachRepository{db: db}
}

const coachColumns = `id, name, experience, specialization, photo_path, photo_handle, section`

func (r *CoachRepository) Create(ctx context.Context, input CoachInput) (*models.Coach, error) {
	query := `
		INSERT INTO coaches (name, experience, specialization, section, photo_path, photo_handle)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + coachColumns
	return scanCoach(r.db.QueryRow(ctx, query,
		input.Name,
		input.Experience,
		input.Specialization,
		input.Section,
		input.PhotoURL,
		input.PhotoHandle,
	))
}

// Update overwrites the text fields. The photo columns are only touched when
// input carries a new photo.
func (r *CoachRepository) Update(ctx context.Context, id int64, input CoachInput) (*models.Coach, error) {
	query := `
		UPDATE coaches
		SET name = $1,
			experience = $2,
			specialization = $3,
			section = $4,
			photo_path = COALESCE($5, photo_path),
			photo_handle = CASE WHEN $5::text IS NULL THEN photo_handle ELSE $6 END
		WHERE id = $7
		RETURNING ` + coachColumns
	return scanCoach(r.db.QueryRow(ctx, query,
		input.Name,
		input.Experience,
		input.Specialization,
		input.Section,
		input.PhotoURL,
		input.PhotoHandle,
		id,
	))
}

func (r *CoachRepository) GetByID(ctx context.Context, id int64) (*models.Coach, error) {
	query := `SELECT ` + coachColumns + ` FROM coaches WHERE id = $1`
	return scanCoach(r.db.QueryRow(ctx, query, id))
}

func (r *CoachRepository) List(ctx context.Context) ([]models.Coach, error) {
	query := `SELECT ` + coachColumns + ` FROM coaches ORDER BY name, id`
	return r.list(ctx, query)
}

func (r *CoachRepository) ListBySection(ctx context.Context, section models.Section) ([]models.Coach, error) {
	query := `SELECT ` + coachColumns + ` FROM coaches WHERE section = $1 ORDER BY name, id`
	return r.list(ctx, query, section)
}

func (r *CoachRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, `DELETE FROM coaches WHERE id = $1`, id)
}

func (r *CoachRepository) list(ctx context.Context, query string, args ...any) ([]models.Coach, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coaches := make([]models.Coach, 0)
	for rows.Next() {
		coach, err := scanCoach(rows)
		if err != nil {
			return nil, err
		}
		coaches = append(coaches, *coach)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return coaches, nil
}

func scanCoach(row pgx.Row) (*models.Coach, error) {
	var coach models.Coach
	err := row.Scan(
		&coach.ID,
		&coach.Name,
		&coach.Experience,
		&coach.Specialization,
		&coach.PhotoURL,
		&coach.PhotoHandle,
		&coach.Section,
	)
	if err != nil {
		return nil, err
	}
	return &coach, nil
}
