package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"financas-api/internal/models"
	"financas-api/internal/repositories"
)

var (
	ErrCategoryExists    = errors.New("category already exists")
	ErrEmptyCategoryName = errors.New("category name is required")
)

// CategoryService manages spending categories. Reads degrade to the
// built-in fallback list when the store is unreachable so the dashboard
// keeps rendering.
type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		metrics:      metrics,
		logger:       logger,
	}
}

// Create adds a new category with a unique, non-empty name
func (s *CategoryService) Create(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCategoryName
	}

	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryAlreadyExists) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("category_created", nil)
	}
	s.logger.Info("category created", slog.String("name", name))
	return category, nil
}

// List returns all categories. A store failure is not fatal: the
// built-in fallback names are served and fallback is reported true.
func (s *CategoryService) List() ([]models.Category, bool, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		s.logger.Error("category store unreachable, serving fallback list",
			slog.String("error", err.Error()))
		if s.metrics != nil {
			s.metrics.IncrementCounter("category_fallback", nil)
		}

		fallback := make([]models.Category, 0, len(models.FallbackCategoryNames()))
		for _, name := range models.FallbackCategoryNames() {
			fallback = append(fallback, models.Category{Name: name})
		}
		return fallback, true, nil
	}

	return categories, false, nil
}
