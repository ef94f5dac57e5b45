package jwt

import (
	"errors"
	"time"

	"hospital-replica-sync/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ScopeSync allows triggering a sync run.
const ScopeSync = "sync"

var (
	ErrAuthDisabled = errors.New("auth secret is not configured")
	ErrInvalidToken = errors.New("invalid token")
)

type Claims struct {
	Scope   string `json:"scope"`
	TokenID string `json:"token_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.AuthConfig
}

func NewJWTService(cfg config.AuthConfig) *JWTService {
	return &JWTService{config: cfg}
}

// Enabled reports whether a signing secret is configured.
func (s *JWTService) Enabled() bool {
	return s.config.Secret != ""
}

func (s *JWTService) GenerateSyncToken(subject string) (string, string, error) {
	if !s.Enabled() {
		return "", "", ErrAuthDisabled
	}

	tokenID := uuid.New().String()
	now := time.Now()
	claims := Claims{
		Scope:   ScopeSync,
		TokenID: tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if !s.Enabled() {
		return nil, ErrAuthDisabled
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *JWTService) GetTokenExpiry() time.Duration {
	return s.config.TokenExpiry
}
