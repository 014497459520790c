package domain

import (
	"errors"
	"strings"
	"time"
)

// User-specific validation errors.
var (
	// ErrUserEmailEmpty is returned when a user's email is empty.
	ErrUserEmailEmpty = errors.New("user email cannot be empty")

	// ErrUserPasswordTooShort is returned when a plaintext password does not
	// meet the minimum length requirement.
	ErrUserPasswordTooShort = errors.New("password must be at least 8 characters")

	// ErrUserNameEmpty is returned when a user's display name is empty.
	ErrUserNameEmpty = errors.New("user name cannot be empty")
)

// minPasswordLength is the minimum accepted plaintext password length.
const minPasswordLength = 8

// User represents an account holder. Password holds the plaintext only
// between request decoding and hashing; it is never persisted or serialized.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	HashedPassword string    `json:"-"`
	Role           Role      `json:"role"`
	Name           string    `json:"name"`
	Company        string    `json:"company,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a user with the given credentials and profile fields. The
// role defaults to learner when empty. Returns an error if validation fails.
func NewUser(email, password, role, name, company string) (*User, error) {
	parsedRole := RoleLearner
	if strings.TrimSpace(role) != "" {
		var err error
		parsedRole, err = ParseRole(role)
		if err != nil {
			return nil, err
		}
	}

	user := &User{
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Password:  password,
		Role:      parsedRole,
		Name:      strings.TrimSpace(name),
		Company:   strings.TrimSpace(company),
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data. Password length is only
// enforced while a plaintext password is present.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrUserEmailEmpty
	}

	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}

	if u.Password != "" && len(u.Password) < minPasswordLength {
		return ErrUserPasswordTooShort
	}

	if u.Name == "" {
		return ErrUserNameEmpty
	}

	switch u.Role {
	case RoleAdmin, RoleLearner:
	default:
		return ErrInvalidRole
	}

	return nil
}
