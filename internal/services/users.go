package services

import (
	"context"
	stderrors "errors"

	"github.com/auxilium-app/auxilium/internal/auth"
	"github.com/auxilium-app/auxilium/internal/errors"
	"github.com/auxilium-app/auxilium/internal/logger"
	"github.com/auxilium-app/auxilium/internal/models"
	"github.com/auxilium-app/auxilium/internal/repository"
)

// UserServiceRepository defines the repository methods needed by UserService
type UserServiceRepository interface {
	repository.UserRepository
	repository.ProfileRepository
}

// UserService handles account-related business logic
type UserService struct {
	log        logger.Logger
	repo       UserServiceRepository
	bcryptCost int
}

// NewUserService creates a new UserService
func NewUserService(log logger.Logger, repo UserServiceRepository, bcryptCost int) *UserService {
	return &UserService{log: log, repo: repo, bcryptCost: bcryptCost}
}

// CreateUserInput carries the fields for a new account
type CreateUserInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Course      string `json:"course"`
	IChat       string `json:"ichat"`
	AdminNumber string `json:"admin_number"`
	RoleID      int    `json:"role_id"`
}

// UserAccount bundles a user with their profile
type UserAccount struct {
	User    *models.User    `json:"user"`
	Profile *models.Profile `json:"profile"`
}

// Authenticate verifies credentials and returns the matching active user.
// Invalid email, password or account status all produce the same error
// so callers cannot probe for registered addresses.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, errors.Validation("email and password are required")
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.Validation("invalid credentials provided")
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) || user.StatusID != models.StatusActive {
		return nil, errors.Validation("invalid credentials provided")
	}

	return user, nil
}

// Create registers a new user with a linked profile and role
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*models.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, errors.Validation("email and password are required")
	}
	if input.FirstName == "" || input.AdminNumber == "" {
		return nil, errors.Validation("first name and admin number are required")
	}
	switch input.RoleID {
	case 0, models.RoleUser, models.RoleAdmin, models.RoleSuperadmin:
	default:
		return nil, errors.Validationf("unknown role id %d", input.RoleID)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to hash password")
	}

	user, err := s.repo.CreateUser(ctx, repository.CreateUserArgs{
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Course:       input.Course,
		IChat:        input.IChat,
		AdminNumber:  input.AdminNumber,
		RoleID:       input.RoleID,
	})
	if err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, errors.Conflict("email or admin number already registered")
		}
		return nil, err
	}

	s.log.Info("user created", "user_id", user.UserID, "role_id", user.RoleID)
	return user, nil
}

// Get returns a user by ID
func (s *UserService) Get(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

// GetWithProfile returns a user together with their profile
func (s *UserService) GetWithProfile(ctx context.Context, userID string) (*UserAccount, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.repo.GetProfileByID(ctx, user.ProfileID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFound("profile not found")
		}
		return nil, err
	}
	return &UserAccount{User: user, Profile: profile}, nil
}

// CountWithRole counts accounts holding a role (used for bootstrap checks)
func (s *UserService) CountWithRole(ctx context.Context, roleID int) (int, error) {
	return s.repo.CountUsersWithRole(ctx, roleID)
}
