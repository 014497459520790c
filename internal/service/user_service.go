package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/platform/logger"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// bcryptCost is the work factor used for password hashing.
const bcryptCost = bcrypt.DefaultCost

// UserService provides account operations: registration, credential
// verification, and profile lookup.
type UserService interface {
	// SignUp registers a new account. The plaintext password is hashed with
	// bcrypt before it reaches the store; the role defaults to learner when
	// empty. Returns store.ErrEmailExists if the email is already taken.
	SignUp(ctx context.Context, email, password, role, name, company string) (*domain.User, error)

	// Login verifies the email/password pair and returns the matching user.
	// Returns ErrInvalidCredentials on any mismatch; unknown email and wrong
	// password are not distinguished.
	Login(ctx context.Context, email, password string) (*domain.User, error)

	// GetByID retrieves a user's profile.
	// Returns store.ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Verify interface compliance at compile time
var _ UserService = (*userServiceImpl)(nil)

// userServiceImpl implements the UserService interface.
type userServiceImpl struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewUserService creates a new UserService implementation.
func NewUserService(users store.UserStore, logger *slog.Logger) UserService {
	if users == nil {
		panic("users cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		users:  users,
		logger: logger.With(slog.String("component", "user_service")),
	}
}

// SignUp implements UserService.SignUp.
func (s *userServiceImpl) SignUp(
	ctx context.Context,
	email, password, role, name, company string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(email, password, role, name, company)
	if err != nil {
		log.Warn("signup validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcryptCost)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = string(hash)
	user.Password = ""

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return nil, store.ErrEmailExists
		}
		log.Error("failed to create user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user registered",
		slog.Int64("user_id", user.ID),
		slog.String("role", string(user.Role)))
	return user, nil
}

// Login implements UserService.Login.
func (s *userServiceImpl) Login(ctx context.Context, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login attempt for unknown email")
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user for login", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		log.Debug("login password mismatch", slog.Int64("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	log.Info("user logged in",
		slog.Int64("user_id", user.ID),
		slog.String("role", string(user.Role)))
	return user, nil
}

// GetByID implements UserService.GetByID.
func (s *userServiceImpl) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if id <= 0 {
		return nil, fmt.Errorf("%w: user ID must be positive", domain.ErrInvalidID)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
