package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/vershina/sportclub/internal/models"
	"github.com/vershina/sportclub/internal/repository"
)

const (
	maxCoachNameLen           = 100
	maxCoachSpecializationLen = 200
)

type coachStore interface {
	Create(ctx context.Context, input repository.CoachInput) (*models.Coach, error)
	Update(ctx context.Context, id int64, input repository.CoachInput) (*models.Coach, error)
	GetByID(ctx context.Context, id int64) (*models.Coach, error)
	List(ctx context.Context) ([]models.Coach, error)
	ListBySection(ctx context.Context, section models.Section) ([]models.Coach, error)
	Delete(ctx context.Context, id int64) error
}

type CoachForm struct {
	Name           string
	Experience     string
	Specialization string
	Section        string
}

type CoachService struct {
	repo  coachStore
	media imageStore
}

func NewCoachService(repo coachStore, media imageStore) *CoachService {
	return &CoachService{repo: repo, media: media}
}

func (s *CoachService) List(ctx context.Context) ([]models.Coach, error) {
	return s.repo.List(ctx)
}

func (s *CoachService) ListBySection(ctx context.Context, section models.Section) ([]models.Coach, error) {
	return s.repo.ListBySection(ctx, section)
}

func (s *CoachService) Get(ctx context.Context, id int64) (*models.Coach, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CoachService) Create(ctx context.Context, form CoachForm, photo *multipart.FileHeader) (*models.Coach, error) {
	input, err := coachInputFromForm(form)
	if err != nil {
		return nil, err
	}

	stored := s.media.Store(ctx, photo, CoachPhotos)
	input.PhotoURL, input.PhotoHandle = imageColumns(stored)

	coach, err := s.repo.Create(ctx, input)
	if err != nil {
		if stored != nil {
			s.media.Delete(ctx, *stored)
		}
		return nil, err
	}
	return coach, nil
}

// Update replaces the text fields. A new photo replaces the old one, which is
// then removed from storage.
func (s *CoachService) Update(ctx context.Context, id int64, form CoachForm, photo *multipart.FileHeader) (*models.Coach, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	input, err := coachInputFromForm(form)
	if err != nil {
		return nil, err
	}

	stored := s.media.Store(ctx, photo, CoachPhotos)
	input.PhotoURL, input.PhotoHandle = imageColumns(stored)

	coach, err := s.repo.Update(ctx, id, input)
	if err != nil {
		if stored != nil {
			s.media.Delete(ctx, *stored)
		}
		return nil, err
	}

	if stored != nil {
		if previous := current.Photo(); previous.URL != "" && previous.URL != stored.URL {
			s.media.Delete(ctx, previous)
		}
	}
	return coach, nil
}

func (s *CoachService) Delete(ctx context.Context, id int64) error {
	coach, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.media.Delete(ctx, coach.Photo())
	return nil
}

func coachInputFromForm(form CoachForm) (repository.CoachInput, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" || strings.TrimSpace(form.Section) == "" {
		return repository.CoachInput{}, invalid("Имя и секция обязательны.")
	}
	section, ok := models.ParseSection(form.Section)
	if !ok {
		return repository.CoachInput{}, invalid("Секция должна быть ski или gym.")
	}
	if longerThan(name, maxCoachNameLen) {
		return repository.CoachInput{}, invalid(fmt.Sprintf("Имя не длиннее %d символов.", maxCoachNameLen))
	}
	if longerThan(strings.TrimSpace(form.Specialization), maxCoachSpecializationLen) {
		return repository.CoachInput{}, invalid(fmt.Sprintf("Специализация не длиннее %d символов.", maxCoachSpecializationLen))
	}

	return repository.CoachInput{
		Name:           name,
		Experience:     optionalText(form.Experience),
		Specialization: optionalText(form.Specialization),
		Section:        section,
	}, nil
}
