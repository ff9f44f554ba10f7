package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/vershina/sportclub/internal/models"
)

type CourseInput struct {
	Title       string
	YoutubeID   string
	Description *string
}

type CourseRepository struct {
	db DBTX
}

func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseColumns = `id, title, youtube_id, description`

func (r *CourseRepository) Create(ctx context.Context, input CourseInput) (*models.Course, error) {
	query := `
		INSERT INTO courses (title, youtube_id, description)
		VALUES ($1, $2, $3)
		RETURNING ` + courseColumns
	return scanCourse(r.db.QueryRow(ctx, query, input.Title, input.YoutubeID, input.Description))
}

func (r *CourseRepository) Update(ctx context.Context, id int64, input CourseInput) (*models.Course, error) {
	query := `
		UPDATE courses
		SET title = $1,
			youtube_id = $2,
			description = $3
		WHERE id = $4
		RETURNING ` + courseColumns
	return scanCourse(r.db.QueryRow(ctx, query, input.Title, input.YoutubeID, input.Description, id))
}

func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`
	return scanCourse(r.db.QueryRow(ctx, query, id))
}

func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY id DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, `DELETE FROM courses WHERE id = $1`, id)
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(&course.ID, &course.Title, &course.YoutubeID, &course.Description)
	if err != nil {
		return nil, err
	}
	return &course, nil
}
