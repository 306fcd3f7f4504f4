package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type PasswordServiceTestSuite struct {
	suite.Suite
	service PasswordServiceInterface
}

func (s *PasswordServiceTestSuite) SetupTest() {
	// MinCost keeps the bcrypt rounds cheap for tests
	s.service = NewPasswordService(bcrypt.MinCost)
}

func TestPasswordServiceSuite(t *testing.T) {
	suite.Run(t, new(PasswordServiceTestSuite))
}

func (s *PasswordServiceTestSuite) TestValidatePassword() {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid password", "SenhaForte1", nil},
		{"minimum length", "Abcdef12", nil},
		{"empty", "", ErrPasswordEmpty},
		{"too short", "Abc1", ErrPasswordTooShort},
		{"too long", "A1" + strings.Repeat("a", 71), ErrPasswordTooLong},
		{"no uppercase", "senhaforte1", ErrPasswordNoUppercase},
		{"no lowercase", "SENHAFORTE1", ErrPasswordNoLowercase},
		{"no number", "SenhaForte", ErrPasswordNoNumber},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := s.service.ValidatePassword(tt.password)
			if tt.wantErr == nil {
				s.NoError(err)
			} else {
				s.ErrorIs(err, tt.wantErr)
			}
		})
	}
}

func (s *PasswordServiceTestSuite) TestHashPassword() {
	hash, err := s.service.HashPassword("SenhaForte1")

	s.NoError(err)
	s.NotEmpty(hash)
	s.NotEqual("SenhaForte1", hash)
	s.True(s.service.ComparePassword("SenhaForte1", hash))
}

func (s *PasswordServiceTestSuite) TestHashPassword_InvalidPassword() {
	hash, err := s.service.HashPassword("weak")

	s.Error(err)
	s.Empty(hash)
}

func (s *PasswordServiceTestSuite) TestHashPasswordWithoutValidation() {
	// Policy violations are accepted here, only bcrypt limits apply
	hash, err := s.service.HashPasswordWithoutValidation("abc")

	s.NoError(err)
	s.True(s.service.ComparePassword("abc", hash))
}

func (s *PasswordServiceTestSuite) TestHashPasswordWithoutValidation_Empty() {
	hash, err := s.service.HashPasswordWithoutValidation("")

	s.ErrorIs(err, ErrPasswordEmpty)
	s.Empty(hash)
}

func (s *PasswordServiceTestSuite) TestHashPasswordWithoutValidation_TooLong() {
	hash, err := s.service.HashPasswordWithoutValidation(strings.Repeat("a", 73))

	s.ErrorIs(err, ErrPasswordTooLong)
	s.Empty(hash)
}

func (s *PasswordServiceTestSuite) TestComparePassword_Mismatch() {
	hash, err := s.service.HashPassword("SenhaForte1")
	s.Require().NoError(err)

	s.False(s.service.ComparePassword("SenhaForte2", hash))
	s.False(s.service.ComparePassword("SenhaForte1", "not-a-hash"))
}

func (s *PasswordServiceTestSuite) TestNewPasswordService_InvalidCostFallsBack() {
	service := NewPasswordService(-1)

	hash, err := service.HashPasswordWithoutValidation("abc")
	s.NoError(err)

	cost, err := bcrypt.Cost([]byte(hash))
	s.NoError(err)
	s.Equal(DefaultBCryptCost, cost)
}
