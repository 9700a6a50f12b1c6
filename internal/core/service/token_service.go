package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/poscentral/website-api/internal/core/domain"
	"github.com/poscentral/website-api/internal/core/ports"
)

// TokenService signs and verifies the HS256 access/refresh pair. Access and
// refresh tokens are signed with separate secrets so one can never be
// presented in place of the other.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

type tokenClaims struct {
	UserID uint   `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (s *TokenService) SignAccessToken(c ports.Claims) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.accessTTL)
	token, err := s.sign(c, "", expiresAt, s.accessSecret)
	return token, expiresAt, err
}

func (s *TokenService) SignRefreshToken(c ports.Claims) (string, string, error) {
	jti := uuid.NewString()
	token, err := s.sign(c, jti, time.Now().Add(s.refreshTTL), s.refreshSecret)
	return token, jti, err
}

func (s *TokenService) sign(c ports.Claims, jti string, expiresAt time.Time, secret []byte) (string, error) {
	claims := tokenClaims{
		UserID: c.UserID,
		Email:  c.Email,
		Role:   c.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   c.Email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (s *TokenService) VerifyAccessToken(token string) (*ports.Claims, error) {
	claims, err := s.verify(token, s.accessSecret)
	if err != nil {
		return nil, err
	}
	return &ports.Claims{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}

func (s *TokenService) VerifyRefreshToken(token string) (*ports.RefreshClaims, error) {
	claims, err := s.verify(token, s.refreshSecret)
	if err != nil {
		return nil, err
	}
	return &ports.RefreshClaims{
		Claims:    ports.Claims{UserID: claims.UserID, Email: claims.Email, Role: claims.Role},
		JTI:       claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *TokenService) verify(token string, secret []byte) (*tokenClaims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// RefreshTTL exposes the refresh lifetime so the rotation ledger can expire
// its entries alongside the tokens they track.
func (s *TokenService) RefreshTTL() time.Duration {
	return s.refreshTTL
}
