package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/vershina/sportclub/internal/models"
	"github.com/vershina/sportclub/internal/repository"
)

const (
	maxCourseTitleLen = 150
	maxYoutubeIDLen   = 50
)

type courseStore interface {
	Create(ctx context.Context, input repository.CourseInput) (*models.Course, error)
	Update(ctx context.Context, id int64, input repository.CourseInput) (*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context) ([]models.Course, error)
	Delete(ctx context.Context, id int64) error
}

type CourseForm struct {
	Title       string
	YoutubeID   string
	Description string
}

type CourseService struct {
	repo courseStore
}

func NewCourseService(repo courseStore) *CourseService {
	return &CourseService{repo: repo}
}

func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	return s.repo.List(ctx)
}

func (s *CourseService) Get(ctx context.Context, id int64) (*models.Course, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CourseService) Create(ctx context.Context, form CourseForm) (*models.Course, error) {
	input, err := courseInputFromForm(form)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, input)
}

func (s *CourseService) Update(ctx context.Context, id int64, form CourseForm) (*models.Course, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	input, err := courseInputFromForm(form)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, input)
}

func (s *CourseService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func courseInputFromForm(form CourseForm) (repository.CourseInput, error) {
	title := strings.TrimSpace(form.Title)
	youtubeID := normalizeYoutubeID(form.YoutubeID)
	if title == "" || youtubeID == "" {
		return repository.CourseInput{}, invalid("Название и YouTube ID обязательны.")
	}
	if longerThan(title, maxCourseTitleLen) {
		return repository.CourseInput{}, invalid(fmt.Sprintf("Название не длиннее %d символов.", maxCourseTitleLen))
	}
	if longerThan(youtubeID, maxYoutubeIDLen) {
		return repository.CourseInput{}, invalid("Похоже, это не YouTube ID.")
	}
	return repository.CourseInput{
		Title:       title,
		YoutubeID:   youtubeID,
		Description: optionalText(form.Description),
	}, nil
}

// normalizeYoutubeID accepts a bare video id or a pasted watch/share/embed
// link and returns the id.
func normalizeYoutubeID(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "/") {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return raw
	}

	host := strings.TrimPrefix(strings.ToLower(parsed.Host), "www.")
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	switch {
	case host == "youtu.be" && segments[0] != "":
		return segments[0]
	case strings.HasSuffix(host, "youtube.com") && parsed.Query().Get("v") != "":
		return parsed.Query().Get("v")
	case strings.HasSuffix(host, "youtube.com") && len(segments) == 2 && (segments[0] == "embed" || segments[0] == "shorts"):
		return segments[1]
	default:
		return raw
	}
}
