package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/vershina/sportclub/internal/models"
)

type NewsInput struct {
	Title       string
	Content     string
	ImageURL    *string
	ImageHandle *string
}

type NewsRepository struct {
	db DBTX
}

func NewNewsRepository(db DBTX) *NewsRepository {
	return &NewsRepository{db: db}
}

const newsColumns = `id, title, content, pub_date, image_path, image_handle`

func (r *NewsRepository) Create(ctx context.Context, input NewsInput) (*models.NewsArticle, error) {
	query := `
		INSERT INTO news_articles (title, content, image_path, image_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + newsColumns
	return scanNews(r.db.QueryRow(ctx, query,
		input.Title,
		input.Content,
		input.ImageURL,
		input.ImageHandle,
	))
}

func (r *NewsRepository) Update(ctx context.Context, id int64, input NewsInput) (*models.NewsArticle, error) {
	query := `
		UPDATE news_articles
		SET title = $1,
			content = $2,
			image_path = COALESCE($3, image_path),
			image_handle = CASE WHEN $3::text IS NULL THEN image_handle ELSE $4 END
		WHERE id = $5
		RETURNING ` + newsColumns
	return scanNews(r.db.QueryRow(ctx, query,
		input.Title,
		input.Content,
		input.ImageURL,
		input.ImageHandle,
		id,
	))
}

func (r *NewsRepository) GetByID(ctx context.Context, id int64) (*models.NewsArticle, error) {
	query := `SELECT ` + newsColumns + ` FROM news_articles WHERE id = $1`
	return scanNews(r.db.QueryRow(ctx, query, id))
}

// List returns the newest articles first. A limit of 0 means no limit.
func (r *NewsRepository) List(ctx context.Context, limit, offset int) ([]models.NewsArticle, error) {
	query := `
		SELECT ` + newsColumns + `
		FROM news_articles
		ORDER BY pub_date DESC, id DESC
		LIMIT NULLIF($1, 0) OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := make([]models.NewsArticle, 0)
	for rows.Next() {
		article, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *article)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

func (r *NewsRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM news_articles`).Scan(&total)
	return total, err
}

func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, `DELETE FROM news_articles WHERE id = $1`, id)
}

func scanNews(row pgx.Row) (*models.NewsArticle, error) {
	var article models.NewsArticle
	err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.PubDate,
		&article.ImageURL,
		&article.ImageHandle,
	)
	if err != nil {
		return nil, err
	}
	return &article, nil
}
