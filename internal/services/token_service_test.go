package services

import (
	"crypto/rsa"
	"testing"
	"time"

	"financas-api/internal/config"
	"financas-api/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	privateKey    *rsa.PrivateKey
	publicKey     *rsa.PublicKey
	service       TokenServiceInterface
	issuer        string
	tokenDuration time.Duration
}

// SetupTest runs before each test
func (s *TokenServiceTestSuite) SetupTest() {
	var err error
	s.privateKey, s.publicKey, err = config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.issuer = "financas-api-test"
	s.tokenDuration = 24 * time.Hour

	s.service = NewTokenService(&config.JWTConfig{
		PrivateKey:    s.privateKey,
		PublicKey:     s.publicKey,
		Issuer:        s.issuer,
		TokenDuration: s.tokenDuration,
	})
}

// TestTokenServiceSuite runs the test suite
func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) testUser() *models.User {
	return &models.User{
		ID:    uuid.New(),
		Email: "operator@example.com",
	}
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken() {
	user := s.testUser()

	tokenString, expiresAt, err := s.service.GenerateAccessToken(user)

	s.NoError(err)
	s.NotEmpty(tokenString)
	s.WithinDuration(time.Now().Add(s.tokenDuration), expiresAt, 5*time.Second)
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken_NilUser() {
	tokenString, _, err := s.service.GenerateAccessToken(nil)

	s.Error(err)
	s.Empty(tokenString)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_RoundTrip() {
	user := s.testUser()

	tokenString, _, err := s.service.GenerateAccessToken(user)
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(tokenString)

	s.NoError(err)
	s.Require().NotNil(claims)
	s.Equal(user.ID.String(), claims.UserID)
	s.Equal(user.Email, claims.Email)
	s.Equal(user.Email, claims.Subject)
	s.Equal(s.issuer, claims.Issuer)
	s.Equal(TokenTypeAccess, claims.TokenType)
	s.NotEmpty(claims.ID)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_EmptyToken() {
	claims, err := s.service.ValidateAccessToken("")

	s.ErrorIs(err, ErrEmptyToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Malformed() {
	claims, err := s.service.ValidateAccessToken("not.a.token")

	s.ErrorIs(err, ErrInvalidToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Expired() {
	now := time.Now()
	claims := models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   "operator@example.com",
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			NotBefore: jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		},
		UserID:    uuid.New().String(),
		Email:     "operator@example.com",
		TokenType: TokenTypeAccess,
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	s.Require().NoError(err)

	parsed, err := s.service.ValidateAccessToken(tokenString)

	s.ErrorIs(err, ErrExpiredToken)
	s.Nil(parsed)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_WrongIssuer() {
	other := NewTokenService(&config.JWTConfig{
		PrivateKey:    s.privateKey,
		PublicKey:     s.publicKey,
		Issuer:        "someone-else",
		TokenDuration: s.tokenDuration,
	})

	tokenString, _, err := other.GenerateAccessToken(s.testUser())
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(tokenString)

	s.ErrorIs(err, ErrInvalidIssuer)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_WrongTokenType() {
	now := time.Now()
	claims := models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   "operator@example.com",
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			NotBefore: jwt.NewNumericDate(now),
		},
		UserID:    uuid.New().String(),
		Email:     "operator@example.com",
		TokenType: "refresh",
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	s.Require().NoError(err)

	parsed, err := s.service.ValidateAccessToken(tokenString)

	s.ErrorIs(err, ErrInvalidTokenType)
	s.Nil(parsed)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_WrongSigningMethod() {
	now := time.Now()
	claims := models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		TokenType: TokenTypeAccess,
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("hmac-secret"))
	s.Require().NoError(err)

	parsed, err := s.service.ValidateAccessToken(tokenString)

	s.Error(err)
	s.Nil(parsed)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_WrongKey() {
	otherPrivate, _, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	other := NewTokenService(&config.JWTConfig{
		PrivateKey:    otherPrivate,
		PublicKey:     &otherPrivate.PublicKey,
		Issuer:        s.issuer,
		TokenDuration: s.tokenDuration,
	})

	tokenString, _, err := other.GenerateAccessToken(s.testUser())
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(tokenString)

	s.ErrorIs(err, ErrInvalidToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	tests := []struct {
		name     string
		header   string
		expected string
		wantErr  bool
	}{
		{"valid bearer header", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase bearer", "bearer abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
		{"missing scheme", "abc.def.ghi", "", true},
		{"wrong scheme", "Basic abc.def.ghi", "", true},
		{"bearer with empty token", "Bearer ", "", true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			token, err := s.service.ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				s.ErrorIs(err, ErrInvalidAuthHeader)
				s.Empty(token)
			} else {
				s.NoError(err)
				s.Equal(tt.expected, token)
			}
		})
	}
}
