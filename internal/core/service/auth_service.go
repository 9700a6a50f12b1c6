package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/poscentral/website-api/internal/core/domain"
	"github.com/poscentral/website-api/internal/core/ports"
)

// AuthService implements login and the refresh-token rotation lifecycle.
// The server holds no session state: access validity is the signature plus
// expiry, and the ledger only records which refresh jtis have been spent.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	ledger ports.TokenLedger
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, ledger ports.TokenLedger, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, ledger: ledger, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Active {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("user_id", user.ID).Str("role", user.Role).Msg("admin logged in")
	return &ports.LoginResult{User: user, Tokens: *pair}, nil
}

// Refresh rotates the credential pair. The presented refresh token must
// verify, must not have been spent already, and its subject must still exist
// and be active.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	ok, err := s.ledger.Consume(ctx, claims.JTI, s.tokens.RefreshTTL())
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Warn().Uint("user_id", claims.UserID).Msg("replay of rotated refresh token")
		return nil, domain.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	if !user.Active {
		return nil, domain.ErrInvalidToken
	}

	return s.issuePair(user)
}

// Logout spends the refresh token so it cannot be used again. An already
// invalid token is not an error; the client ends up logged out either way.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil
	}
	_, err = s.ledger.Consume(ctx, claims.JTI, s.tokens.RefreshTTL())
	return err
}

func (s *AuthService) Me(ctx context.Context, userID uint) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) issuePair(user *domain.User) (*ports.TokenPair, error) {
	claims := ports.Claims{UserID: user.ID, Email: user.Email, Role: user.Role}

	access, expiresAt, err := s.tokens.SignAccessToken(claims)
	if err != nil {
		return nil, err
	}
	refresh, _, err := s.tokens.SignRefreshToken(claims)
	if err != nil {
		return nil, err
	}

	return &ports.TokenPair{
		AccessToken:     access,
		RefreshToken:    refresh,
		AccessExpiresAt: expiresAt,
	}, nil
}
