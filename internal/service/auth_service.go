package service

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/karripar/personal-project-s25/internal/config"
	"github.com/karripar/personal-project-s25/internal/domain"
)

// AuthService verifies access tokens minted by the auth server. Issuance,
// refresh and user management all live there; both binaries here only
// need the claims.
type AuthService interface {
	ValidateAccessToken(token string) (*domain.TokenUser, error)
}

type Claims struct {
	UserID    int64  `json:"user_id"`
	LevelName string `json:"level_name"`
	jwt.RegisteredClaims
}

type authService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

func (s *authService) ValidateAccessToken(tokenString string) (*domain.TokenUser, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid or expired token: %w", domain.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims: %w", domain.ErrUnauthorized)
	}

	return &domain.TokenUser{UserID: claims.UserID, LevelName: claims.LevelName}, nil
}
