package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/poscentral/website-api/internal/core/domain"
	"github.com/poscentral/website-api/internal/core/ports"
)

func newUserFixture() (*UserService, *stubUserRepo) {
	repo := newStubUserRepo()
	return NewUserService(repo, zerolog.Nop()), repo
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	svc, _ := newUserFixture()

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "pass1234",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if user.PasswordHash == "pass1234" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass1234")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if !user.Active {
		t.Fatalf("expected new account active")
	}
}

func TestUserService_Create_Validation(t *testing.T) {
	svc, _ := newUserFixture()

	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Email: "", Password: "x", Role: domain.RoleAdmin}); err != domain.ErrInvalidUserInput {
		t.Fatalf("expected ErrInvalidUserInput for empty email, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Email: "a@b.c", Password: "x", Role: "owner"}); err != domain.ErrInvalidUserInput {
		t.Fatalf("expected ErrInvalidUserInput for unknown role, got %v", err)
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	svc, _ := newUserFixture()

	in := ports.CreateUserInput{Email: "bob@example.com", Password: "pass1234", Role: domain.RoleAdmin}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), in); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Update_PartialFields(t *testing.T) {
	svc, _ := newUserFixture()

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "pass1234",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	role := domain.RoleSuperAdmin
	updated, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Role: &role})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != domain.RoleSuperAdmin {
		t.Fatalf("expected role promoted, got %q", updated.Role)
	}
	if updated.Name != "Alice" || updated.Email != "alice@example.com" {
		t.Fatalf("expected untouched fields preserved: %+v", updated)
	}

	bad := "owner"
	if _, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Role: &bad}); err != domain.ErrInvalidUserInput {
		t.Fatalf("expected ErrInvalidUserInput for unknown role, got %v", err)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc, _ := newUserFixture()

	name := "Ghost"
	if _, err := svc.Update(context.Background(), 404, ports.UpdateUserInput{Name: &name}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Deactivate(t *testing.T) {
	svc, repo := newUserFixture()

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Email:    "alice@example.com",
		Password: "pass1234",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Deactivate(context.Background(), user.ID); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	stored, err := repo.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if stored.Active {
		t.Fatalf("expected account inactive after deactivate")
	}

	if err := svc.Deactivate(context.Background(), 404); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
