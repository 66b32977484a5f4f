package services_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/auxilium-app/auxilium/internal/auth"
	apperrors "github.com/auxilium-app/auxilium/internal/errors"
	"github.com/auxilium-app/auxilium/internal/logger"
	"github.com/auxilium-app/auxilium/internal/models"
	"github.com/auxilium-app/auxilium/internal/repository/mock"
	"github.com/auxilium-app/auxilium/internal/services"
	"github.com/auxilium-app/auxilium/internal/testutil"
)

const testBcryptCost = 4 // min cost keeps the suite fast

func newUserService(t *testing.T) (*services.UserService, *mock.Repository) {
	t.Helper()
	repo := mock.NewRepository(testutil.NewTestRepository(t))
	return services.NewUserService(logger.New(), repo, testBcryptCost), repo
}

func createTestUser(t *testing.T, svc *services.UserService) *models.User {
	t.Helper()
	user, err := svc.Create(context.Background(), services.CreateUserInput{
		Email:       "jane@example.com",
		Password:    "s3cret",
		FirstName:   "Jane",
		LastName:    "Doe",
		Course:      "DIT",
		AdminNumber: "A001",
		RoleID:      models.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// ==================== Create Tests ====================

func TestUserCreate(t *testing.T) {
	svc, _ := newUserService(t)
	user := createTestUser(t, svc)

	if user.RoleID != models.RoleAdmin {
		t.Errorf("expected role %d, got %d", models.RoleAdmin, user.RoleID)
	}
	if user.Password == "s3cret" {
		t.Error("password must be stored hashed")
	}
	if !auth.CheckPassword(user.Password, "s3cret") {
		t.Error("stored hash should verify against the plaintext")
	}
}

func TestUserCreateValidation(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input services.CreateUserInput
	}{
		{"missing email", services.CreateUserInput{Password: "x", FirstName: "A", AdminNumber: "A001"}},
		{"missing password", services.CreateUserInput{Email: "a@b.c", FirstName: "A", AdminNumber: "A001"}},
		{"missing first name", services.CreateUserInput{Email: "a@b.c", Password: "x", AdminNumber: "A001"}},
		{"missing admin number", services.CreateUserInput{Email: "a@b.c", Password: "x", FirstName: "A"}},
		{"unknown role", services.CreateUserInput{Email: "a@b.c", Password: "x", FirstName: "A", AdminNumber: "A001", RoleID: 99}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.input)
			if apperrors.KindOf(err) != apperrors.ErrValidation {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUserCreateDuplicate(t *testing.T) {
	svc, _ := newUserService(t)
	createTestUser(t, svc)

	_, err := svc.Create(context.Background(), services.CreateUserInput{
		Email:       "jane@example.com",
		Password:    "other",
		FirstName:   "Janet",
		AdminNumber: "A002",
	})
	if apperrors.KindOf(err) != apperrors.ErrConflict {
		t.Errorf("expected conflict for duplicate email, got %v", err)
	}
}

// ==================== Authenticate Tests ====================

func TestAuthenticate(t *testing.T) {
	svc, _ := newUserService(t)
	created := createTestUser(t, svc)

	user, err := svc.Authenticate(context.Background(), "jane@example.com", "s3cret")
	if err != nil {
		t.Fatalf("failed to authenticate: %v", err)
	}
	if user.UserID != created.UserID {
		t.Errorf("expected user %s, got %s", created.UserID, user.UserID)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc, _ := newUserService(t)
	createTestUser(t, svc)

	_, err := svc.Authenticate(context.Background(), "jane@example.com", "wrong")
	if apperrors.KindOf(err) != apperrors.ErrValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc, _ := newUserService(t)
	createTestUser(t, svc)

	// Unknown email and wrong password must be indistinguishable
	_, unknownErr := svc.Authenticate(context.Background(), "nobody@example.com", "s3cret")
	_, wrongErr := svc.Authenticate(context.Background(), "jane@example.com", "wrong")

	if apperrors.KindOf(unknownErr) != apperrors.ErrValidation {
		t.Errorf("expected validation error, got %v", unknownErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("error messages differ: %q vs %q", unknownErr.Error(), wrongErr.Error())
	}
}

func TestAuthenticateEmptyCredentials(t *testing.T) {
	svc, _ := newUserService(t)

	if _, err := svc.Authenticate(context.Background(), "", ""); apperrors.KindOf(err) != apperrors.ErrValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestAuthenticateRepositoryError(t *testing.T) {
	svc, repo := newUserService(t)
	repo.GetUserByEmailError = fmt.Errorf("database locked")

	_, err := svc.Authenticate(context.Background(), "jane@example.com", "s3cret")
	if !stderrors.Is(err, repo.GetUserByEmailError) {
		t.Errorf("expected repository error to propagate, got %v", err)
	}
}

// ==================== Get Tests ====================

func TestUserGetWithProfile(t *testing.T) {
	svc, _ := newUserService(t)
	created := createTestUser(t, svc)

	account, err := svc.GetWithProfile(context.Background(), created.UserID)
	if err != nil {
		t.Fatalf("failed to get account: %v", err)
	}
	if account.User.Email != "jane@example.com" {
		t.Errorf("unexpected user: %+v", account.User)
	}
	if account.Profile.AdminNumber != "A001" || account.Profile.Course != "DIT" {
		t.Errorf("unexpected profile: %+v", account.Profile)
	}
}

func TestUserGetNotFound(t *testing.T) {
	svc, _ := newUserService(t)

	if _, err := svc.Get(context.Background(), "no-such-user"); apperrors.KindOf(err) != apperrors.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetWithProfile(context.Background(), "no-such-user"); apperrors.KindOf(err) != apperrors.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCountWithRole(t *testing.T) {
	svc, _ := newUserService(t)
	createTestUser(t, svc)

	count, err := svc.CountWithRole(context.Background(), models.RoleAdmin)
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 admin, got %d", count)
	}
}
