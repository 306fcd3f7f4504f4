package services

import (
	"errors"
	"log/slog"
	"testing"

	"financas-api/internal/models"
	"financas-api/internal/repositories"
	"financas-api/internal/repositories/repository_mocks"
	"financas-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	categoryRepo *repository_mocks.MockCategoryRepositoryInterface
	metrics      *service_mocks.MockMetricsRecorderInterface
	service      CategoryServiceInterface
}

func (s *CategoryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewCategoryService(s.categoryRepo, s.metrics, slog.Default())
}

func (s *CategoryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) TestCreate_Success() {
	s.categoryRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(category *models.Category) error {
		s.Equal("Alimentação", category.Name)
		return nil
	}).Times(1)
	s.metrics.EXPECT().IncrementCounter("category_created", nil).Times(1)

	category, err := s.service.Create("Alimentação")

	s.NoError(err)
	s.Require().NotNil(category)
	s.Equal("Alimentação", category.Name)
}

func (s *CategoryServiceTestSuite) TestCreate_TrimsName() {
	s.categoryRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(category *models.Category) error {
		s.Equal("Transporte", category.Name)
		return nil
	}).Times(1)
	s.metrics.EXPECT().IncrementCounter("category_created", nil).Times(1)

	category, err := s.service.Create("  Transporte  ")

	s.NoError(err)
	s.Equal("Transporte", category.Name)
}

func (s *CategoryServiceTestSuite) TestCreate_EmptyName() {
	for _, name := range []string{"", "   "} {
		category, err := s.service.Create(name)
		s.ErrorIs(err, ErrEmptyCategoryName)
		s.Nil(category)
	}
}

func (s *CategoryServiceTestSuite) TestCreate_Duplicate() {
	s.categoryRepo.EXPECT().Create(gomock.Any()).Return(repositories.ErrCategoryAlreadyExists).Times(1)

	category, err := s.service.Create("Alimentação")

	s.ErrorIs(err, ErrCategoryExists)
	s.Nil(category)
}

func (s *CategoryServiceTestSuite) TestList_Success() {
	stored := []models.Category{
		{Name: "Alimentação"},
		{Name: "Transporte"},
	}

	s.categoryRepo.EXPECT().GetAll().Return(stored, nil).Times(1)

	categories, fallback, err := s.service.List()

	s.NoError(err)
	s.False(fallback)
	s.Equal(stored, categories)
}

func (s *CategoryServiceTestSuite) TestList_FallsBackWhenStoreUnreachable() {
	s.categoryRepo.EXPECT().GetAll().Return(nil, errors.New("connection refused")).Times(1)
	s.metrics.EXPECT().IncrementCounter("category_fallback", nil).Times(1)

	categories, fallback, err := s.service.List()

	s.NoError(err)
	s.True(fallback)

	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
	}
	s.Equal(models.FallbackCategoryNames(), names)
}
