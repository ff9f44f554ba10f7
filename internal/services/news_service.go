package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/vershina/sportclub/internal/models"
	"github.com/vershina/sportclub/internal/repository"
)

const maxNewsTitleLen = 200

type newsStore interface {
	Create(ctx context.Context, input repository.NewsInput) (*models.NewsArticle, error)
	Update(ctx context.Context, id int64, input repository.NewsInput) (*models.NewsArticle, error)
	GetByID(ctx context.Context, id int64) (*models.NewsArticle, error)
	List(ctx context.Context, limit, offset int) ([]models.NewsArticle, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id int64) error
}

type NewsForm struct {
	Title   string
	Content string
}

type NewsService struct {
	repo  newsStore
	media imageStore
}

func NewNewsService(repo newsStore, media imageStore) *NewsService {
	return &NewsService{repo: repo, media: media}
}

func (s *NewsService) Latest(ctx context.Context, limit int) ([]models.NewsArticle, error) {
	return s.repo.List(ctx, limit, 0)
}

func (s *NewsService) List(ctx context.Context) ([]models.NewsArticle, error) {
	return s.repo.List(ctx, 0, 0)
}

func (s *NewsService) Page(ctx context.Context, page, limit int) ([]models.NewsArticle, int, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	// Pages past the end are empty. Checking first keeps the offset from
	// overflowing on huge page numbers.
	if limit > 0 && page-1 > total/limit {
		return nil, total, nil
	}
	articles, err := s.repo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (s *NewsService) Get(ctx context.Context, id int64) (*models.NewsArticle, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *NewsService) Create(ctx context.Context, form NewsForm, image *multipart.FileHeader) (*models.NewsArticle, error) {
	input, err := newsInputFromForm(form)
	if err != nil {
		return nil, err
	}

	stored := s.media.Store(ctx, image, NewsImages)
	input.ImageURL, input.ImageHandle = imageColumns(stored)

	article, err := s.repo.Create(ctx, input)
	if err != nil {
		if stored != nil {
			s.media.Delete(ctx, *stored)
		}
		return nil, err
	}
	return article, nil
}

func (s *NewsService) Update(ctx context.Context, id int64, form NewsForm, image *multipart.FileHeader) (*models.NewsArticle, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	input, err := newsInputFromForm(form)
	if err != nil {
		return nil, err
	}

	stored := s.media.Store(ctx, image, NewsImages)
	input.ImageURL, input.ImageHandle = imageColumns(stored)

	article, err := s.repo.Update(ctx, id, input)
	if err != nil {
		if stored != nil {
			s.media.Delete(ctx, *stored)
		}
		return nil, err
	}

	if stored != nil {
		if previous := current.Image(); previous.URL != "" && previous.URL != stored.URL {
			s.media.Delete(ctx, previous)
		}
	}
	return article, nil
}

func (s *NewsService) Delete(ctx context.Context, id int64) error {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.media.Delete(ctx, article.Image())
	return nil
}

func newsInputFromForm(form NewsForm) (repository.NewsInput, error) {
	title := strings.TrimSpace(form.Title)
	content := strings.TrimSpace(form.Content)
	if title == "" || content == "" {
		return repository.NewsInput{}, invalid("Заголовок и текст новости обязательны.")
	}
	if longerThan(title, maxNewsTitleLen) {
		return repository.NewsInput{}, invalid(fmt.Sprintf("Заголовок не длиннее %d символов.", maxNewsTitleLen))
	}
	return repository.NewsInput{Title: title, Content: content}, nil
}
