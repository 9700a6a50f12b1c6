package ports

import (
	"context"
	"time"

	"github.com/poscentral/website-api/internal/core/domain"
)

// Claims is the identity embedded in every signed token.
type Claims struct {
	UserID uint
	Email  string
	Role   string
}

// RefreshClaims extends Claims with the rotation identifier carried only by
// refresh tokens.
type RefreshClaims struct {
	Claims
	JTI       string
	ExpiresAt time.Time
}

// TokenPair is the credential pair handed to the client on login and refresh.
type TokenPair struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
}

// TokenService signs and verifies the access/refresh credential pair.
// Verification is pure computation; validity is determined entirely by the
// signature and the embedded expiry.
type TokenService interface {
	SignAccessToken(c Claims) (token string, expiresAt time.Time, err error)
	SignRefreshToken(c Claims) (token string, jti string, err error)
	VerifyAccessToken(token string) (*Claims, error)
	VerifyRefreshToken(token string) (*RefreshClaims, error)
	RefreshTTL() time.Duration
}

// TokenLedger records refresh-token rotation. Consume marks a jti as spent
// and reports whether this caller won; a second Consume of the same jti
// returns false, which rejects replays of rotated tokens.
type TokenLedger interface {
	Consume(ctx context.Context, jti string, ttl time.Duration) (bool, error)
}

// UserRepository persists admin accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	User   *domain.User
	Tokens TokenPair
}

// CreateUserInput carries the fields for a new admin account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput carries a partial admin-account update. Nil fields are
// left untouched.
type UpdateUserInput struct {
	Name     *string
	Password *string
	Role     *string
	Active   *bool
}

// AuthService authenticates admins and manages the credential lifecycle.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Refresh verifies the refresh token, re-confirms the subject is still
	// active, rotates the pair, and invalidates the presented token.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// Logout invalidates the presented refresh token.
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, userID uint) (*domain.User, error)
}

// UserService is the super_admin-only account management surface.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id uint, in UpdateUserInput) (*domain.User, error)
	Deactivate(ctx context.Context, id uint) error
}
