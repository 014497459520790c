package middleware

import (
	"net/http"
	"strconv"

	"github.com/coursetrack/coursetrack-api/internal/api"
	"github.com/coursetrack/coursetrack-api/internal/api/shared"
	"github.com/coursetrack/coursetrack-api/internal/domain"
)

// Identity headers. Every authenticated request carries both; upstream infra
// is trusted to have verified them.
const (
	UserIDHeader = "X-User-Id"
	RoleHeader   = "X-Role"
)

// IdentityMiddleware resolves the request actor from the identity headers and
// stores it in the context. A missing header is an authentication failure; a
// present but unparsable value is a validation failure.
func IdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDValue := r.Header.Get(UserIDHeader)
		if userIDValue == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized,
				api.CodeUnauthorized, "Missing "+UserIDHeader)
			return
		}

		roleValue := r.Header.Get(RoleHeader)
		if roleValue == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized,
				api.CodeUnauthorized, "Missing "+RoleHeader)
			return
		}

		userID, err := strconv.ParseInt(userIDValue, 10, 64)
		if err != nil || userID <= 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest,
				api.CodeValidation, "Invalid "+UserIDHeader)
			return
		}

		role, err := domain.ParseRole(roleValue)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest,
				api.CodeValidation, "Invalid "+RoleHeader)
			return
		}

		actor := domain.Actor{UserID: userID, Role: role}
		next.ServeHTTP(w, r.WithContext(shared.SetActor(r.Context(), actor)))
	})
}

// RequireAdmin rejects requests whose actor does not hold the administrator
// role. It must run after IdentityMiddleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := shared.GetActor(r.Context())
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized,
				api.CodeUnauthorized, "Authentication required")
			return
		}
		if !actor.IsAdmin() {
			shared.RespondWithError(w, r, http.StatusForbidden,
				api.CodeForbidden, "Admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
