package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vershina/sportclub/internal/models"
	"github.com/vershina/sportclub/internal/repository"
)

const (
	maxServiceNameLen     = 150
	maxServiceDurationLen = 50
	// NUMERIC(10, 2)
	maxServicePrice = 1e8
)

type serviceStore interface {
	Create(ctx context.Context, input repository.ServiceInput) (*models.Service, error)
	Update(ctx context.Context, id int64, input repository.ServiceInput) (*models.Service, error)
	GetByID(ctx context.Context, id int64) (*models.Service, error)
	ListBySection(ctx context.Context, section models.Section) ([]models.Service, error)
	Delete(ctx context.Context, id int64) error
}

type ServiceForm struct {
	Name        string
	Description string
	Price       string
	Duration    string
	Section     string
}

// ServiceCatalog manages the priced services shown on the facility pages.
type ServiceCatalog struct {
	repo serviceStore
}

func NewServiceCatalog(repo serviceStore) *ServiceCatalog {
	return &ServiceCatalog{repo: repo}
}

func (s *ServiceCatalog) ListBySection(ctx context.Context, section models.Section) ([]models.Service, error) {
	return s.repo.ListBySection(ctx, section)
}

func (s *ServiceCatalog) Get(ctx context.Context, id int64) (*models.Service, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ServiceCatalog) Create(ctx context.Context, form ServiceForm) (*models.Service, error) {
	input, err := serviceInputFromForm(form)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, input)
}

func (s *ServiceCatalog) Update(ctx context.Context, id int64, form ServiceForm) (*models.Service, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	input, err := serviceInputFromForm(form)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, input)
}

func (s *ServiceCatalog) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func serviceInputFromForm(form ServiceForm) (repository.ServiceInput, error) {
	name := strings.TrimSpace(form.Name)
	rawPrice := strings.TrimSpace(form.Price)
	if name == "" || rawPrice == "" || strings.TrimSpace(form.Section) == "" {
		return repository.ServiceInput{}, invalid("Название, цена и секция обязательны.")
	}

	section, ok := models.ParseSection(form.Section)
	if !ok {
		return repository.ServiceInput{}, invalid("Секция должна быть ski или gym.")
	}

	if longerThan(name, maxServiceNameLen) {
		return repository.ServiceInput{}, invalid(fmt.Sprintf("Название не длиннее %d символов.", maxServiceNameLen))
	}
	if longerThan(strings.TrimSpace(form.Duration), maxServiceDurationLen) {
		return repository.ServiceInput{}, invalid(fmt.Sprintf("Длительность не длиннее %d символов.", maxServiceDurationLen))
	}

	price, err := parsePrice(rawPrice)
	if err != nil {
		return repository.ServiceInput{}, err
	}

	return repository.ServiceInput{
		Name:        name,
		Description: optionalText(form.Description),
		Price:       price,
		Duration:    optionalText(form.Duration),
		Section:     section,
	}, nil
}

// parsePrice accepts both "1500.50" and "1500,50" and a space as thousands
// separator.
func parsePrice(raw string) (float64, error) {
	normalized := strings.ReplaceAll(strings.ReplaceAll(raw, " ", ""), ",", ".")
	price, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, invalid("Цена должна быть числом.")
	}
	if price < 0 {
		return 0, invalid("Цена не может быть отрицательной.")
	}
	price = math.Round(price*100) / 100
	if price >= maxServicePrice {
		return 0, invalid("Цена слишком большая.")
	}
	return price, nil
}
