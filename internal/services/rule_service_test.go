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

type RuleServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	ruleRepo *repository_mocks.MockRuleRepositoryInterface
	metrics  *service_mocks.MockMetricsRecorderInterface
	service  RuleServiceInterface
}

func (s *RuleServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ruleRepo = repository_mocks.NewMockRuleRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewRuleService(s.ruleRepo, s.metrics, slog.Default())
}

func (s *RuleServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRuleServiceSuite(t *testing.T) {
	suite.Run(t, new(RuleServiceTestSuite))
}

func (s *RuleServiceTestSuite) TestCreate_Success() {
	s.ruleRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(rule *models.Rule) error {
		s.Equal("ifood", rule.Keyword)
		s.Equal("Alimentação", rule.Category)
		rule.ID = 1
		return nil
	}).Times(1)
	s.metrics.EXPECT().IncrementCounter("rule_created", nil).Times(1)

	rule, err := s.service.Create("ifood", "Alimentação")

	s.NoError(err)
	s.Require().NotNil(rule)
	s.Equal(int64(1), rule.ID)
}

func (s *RuleServiceTestSuite) TestCreate_TrimsFields() {
	s.ruleRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(rule *models.Rule) error {
		s.Equal("uber", rule.Keyword)
		s.Equal("Transporte", rule.Category)
		return nil
	}).Times(1)
	s.metrics.EXPECT().IncrementCounter("rule_created", nil).Times(1)

	_, err := s.service.Create("  uber ", " Transporte ")

	s.NoError(err)
}

func (s *RuleServiceTestSuite) TestCreate_EmptyKeyword() {
	rule, err := s.service.Create("   ", "Alimentação")

	s.ErrorIs(err, models.ErrEmptyRuleKeyword)
	s.Nil(rule)
}

func (s *RuleServiceTestSuite) TestCreate_EmptyCategory() {
	rule, err := s.service.Create("ifood", "")

	s.ErrorIs(err, models.ErrEmptyRuleCategory)
	s.Nil(rule)
}

func (s *RuleServiceTestSuite) TestList_PreservesEvaluationOrder() {
	stored := []models.Rule{
		{ID: 1, Keyword: "ifood", Category: "Alimentação"},
		{ID: 2, Keyword: "uber", Category: "Transporte"},
	}

	s.ruleRepo.EXPECT().GetAll().Return(stored, nil).Times(1)

	rules, err := s.service.List()

	s.NoError(err)
	s.Equal(stored, rules)
}

func (s *RuleServiceTestSuite) TestDelete_Success() {
	s.ruleRepo.EXPECT().Delete(int64(7)).Return(nil).Times(1)

	s.NoError(s.service.Delete(7))
}

func (s *RuleServiceTestSuite) TestDelete_NotFound() {
	s.ruleRepo.EXPECT().Delete(int64(99)).Return(repositories.ErrRuleNotFound).Times(1)

	s.ErrorIs(s.service.Delete(99), ErrRuleNotFound)
}

func (s *RuleServiceTestSuite) TestDelete_RepositoryError() {
	s.ruleRepo.EXPECT().Delete(int64(7)).Return(errors.New("locked")).Times(1)

	err := s.service.Delete(7)
	s.Error(err)
	s.NotErrorIs(err, ErrRuleNotFound)
}
