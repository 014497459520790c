package domain

import (
	"fmt"
	"strings"
)

// Role is the closed set of actor roles known to the system.
type Role string

// Possible role values.
const (
	RoleAdmin   Role = "ADMIN"
	RoleLearner Role = "LEARNER"
)

// ParseRole maps a case-insensitive role name onto the closed role set.
// Returns ErrInvalidRole for anything outside {admin, learner}.
func ParseRole(value string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case string(RoleAdmin):
		return RoleAdmin, nil
	case string(RoleLearner):
		return RoleLearner, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, value)
	}
}

// Actor is the authenticated identity a request acts as. It is resolved once
// per request from the identity headers and threaded explicitly into every
// service call; there is no ambient session state.
type Actor struct {
	UserID int64 `json:"user_id"`
	Role   Role  `json:"role"`
}

// IsAdmin reports whether the actor holds the administrator role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// IsLearner reports whether the actor holds the learner role.
func (a Actor) IsLearner() bool {
	return a.Role == RoleLearner
}

// Validate checks that the actor carries a positive user ID and a known role.
func (a Actor) Validate() error {
	if a.UserID <= 0 {
		return fmt.Errorf("%w: actor user ID must be positive", ErrInvalidID)
	}
	switch a.Role {
	case RoleAdmin, RoleLearner:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRole, a.Role)
	}
}
