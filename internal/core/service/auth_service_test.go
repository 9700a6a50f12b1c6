package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/poscentral/website-api/internal/core/domain"
)

type stubUserRepo struct {
	byID    map[uint]*domain.User
	byEmail map[string]*domain.User
	nextID  uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[uint]*domain.User), byEmail: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.byEmail[user.Email]; exists {
		return domain.ErrEmailTaken
	}
	user.ID = r.nextID
	r.nextID++
	r.byID[user.ID] = cloneUser(user)
	r.byEmail[user.Email] = r.byID[user.ID]
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	existing, ok := r.byID[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byEmail, existing.Email)
	*existing = *user
	r.byEmail[existing.Email] = existing
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, *u)
	}
	return out, nil
}

// stubLedger spends jtis in memory.
type stubLedger struct {
	spent map[string]bool
	err   error
}

func newStubLedger() *stubLedger {
	return &stubLedger{spent: make(map[string]bool)}
}

func (l *stubLedger) Consume(_ context.Context, jti string, _ time.Duration) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	if l.spent[jti] {
		return false, nil
	}
	l.spent[jti] = true
	return true, nil
}

func seedUser(t *testing.T, repo *stubUserRepo, email, password, role string, active bool) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &domain.User{Name: "Test Admin", Email: email, PasswordHash: string(hash), Role: role, Active: active}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func newAuthFixture(t *testing.T) (*AuthService, *stubUserRepo, *stubLedger) {
	t.Helper()
	repo := newStubUserRepo()
	ledger := newStubLedger()
	tokens := NewTokenService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	return NewAuthService(repo, tokens, ledger, zerolog.Nop()), repo, ledger
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	seedUser(t, repo, "carol@example.com", "s3cret", domain.RoleAdmin, true)

	result, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Tokens.AccessToken == "" || result.Tokens.RefreshToken == "" {
		t.Fatalf("expected a full token pair, got %+v", result.Tokens)
	}
	if result.User.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %+v", result.User)
	}
	if !result.Tokens.AccessExpiresAt.After(time.Now()) {
		t.Fatalf("access expiry in the past: %v", result.Tokens.AccessExpiresAt)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	seedUser(t, repo, "dave@example.com", "goodpass", domain.RoleAdmin, true)

	if _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailIsIndistinguishable(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	if _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	seedUser(t, repo, "gone@example.com", "pass1234", domain.RoleAdmin, false)

	if _, err := svc.Login(context.Background(), "gone@example.com", "pass1234"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for inactive user, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	if _, err := svc.Login(context.Background(), "", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "a@b.c", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Refresh_RotatesPair(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	seedUser(t, repo, "carol@example.com", "s3cret", domain.RoleAdmin, true)

	result, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	pair, err := svc.Refresh(context.Background(), result.Tokens.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected a full rotated pair")
	}
	if pair.RefreshToken == result.Tokens.RefreshToken {
		t.Fatalf("expected a new refresh token after rotation")
	}
}

func TestAuthService_Refresh_ReplayRejected(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	seedUser(t, repo, "carol@example.com", "s3cret", domain.RoleAdmin, true)

	result, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), result.Tokens.RefreshToken); err != nil {
		t.Fatalf("first refresh failed: %v", err)
	}
	if _, err := svc.Refresh(context.Background(), result.Tokens.RefreshToken); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken on replay, got %v", err)
	}
}

func TestAuthService_Refresh_DeactivatedSubject(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	user := seedUser(t, repo, "carol@example.com", "s3cret", domain.RoleAdmin, true)

	result, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	stored := repo.byID[user.ID]
	stored.Active = false

	if _, err := svc.Refresh(context.Background(), result.Tokens.RefreshToken); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for deactivated subject, got %v", err)
	}
}

func TestAuthService_Refresh_GarbageToken(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	if _, err := svc.Refresh(context.Background(), "not-a-token"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_Logout_SpendsToken(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	seedUser(t, repo, "carol@example.com", "s3cret", domain.RoleAdmin, true)

	result, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), result.Tokens.RefreshToken); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := svc.Refresh(context.Background(), result.Tokens.RefreshToken); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken after logout, got %v", err)
	}
}

func TestAuthService_Logout_InvalidTokenIsNoop(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	if err := svc.Logout(context.Background(), "garbage"); err != nil {
		t.Fatalf("expected nil for invalid token, got %v", err)
	}
}

func TestAuthService_Me(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	user := seedUser(t, repo, "carol@example.com", "s3cret", domain.RoleAdmin, true)

	got, err := svc.Me(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	if got.Email != user.Email {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := svc.Me(context.Background(), 999); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
