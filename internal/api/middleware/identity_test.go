package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursetrack/coursetrack-api/internal/api"
	"github.com/coursetrack/coursetrack-api/internal/api/shared"
	"github.com/coursetrack/coursetrack-api/internal/domain"
)

// identityProbe records the actor the middleware resolved.
func identityProbe(actor *domain.Actor, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if a, ok := shared.GetActor(r.Context()); ok {
			*actor = a
		}
		w.WriteHeader(http.StatusOK)
	})
}

func doIdentityRequest(t *testing.T, handler http.Handler, userID, role string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if userID != "" {
		req.Header.Set(UserIDHeader, userID)
	}
	if role != "" {
		req.Header.Set(RoleHeader, role)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()

	var resp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestIdentityMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("resolves actor from headers", func(t *testing.T) {
		t.Parallel()

		var actor domain.Actor
		var called bool
		handler := IdentityMiddleware(identityProbe(&actor, &called))

		rec := doIdentityRequest(t, handler, "42", "LEARNER")
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, called)
		assert.Equal(t, int64(42), actor.UserID)
		assert.Equal(t, domain.RoleLearner, actor.Role)
	})

	t.Run("role parsing is case-insensitive", func(t *testing.T) {
		t.Parallel()

		var actor domain.Actor
		var called bool
		handler := IdentityMiddleware(identityProbe(&actor, &called))

		rec := doIdentityRequest(t, handler, "1", "admin")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.RoleAdmin, actor.Role)
	})

	t.Run("missing user ID header is unauthorized", func(t *testing.T) {
		t.Parallel()

		var actor domain.Actor
		var called bool
		handler := IdentityMiddleware(identityProbe(&actor, &called))

		rec := doIdentityRequest(t, handler, "", "LEARNER")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)

		resp := decodeError(t, rec)
		assert.Equal(t, api.CodeUnauthorized, resp.Code)
		assert.Equal(t, "Missing X-User-Id", resp.Message)
	})

	t.Run("missing role header is unauthorized", func(t *testing.T) {
		t.Parallel()

		var actor domain.Actor
		var called bool
		handler := IdentityMiddleware(identityProbe(&actor, &called))

		rec := doIdentityRequest(t, handler, "42", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Missing X-Role", decodeError(t, rec).Message)
	})

	t.Run("unparsable user ID fails validation", func(t *testing.T) {
		t.Parallel()

		var actor domain.Actor
		var called bool
		handler := IdentityMiddleware(identityProbe(&actor, &called))

		for _, bad := range []string{"abc", "0", "-5"} {
			rec := doIdentityRequest(t, handler, bad, "LEARNER")
			require.Equal(t, http.StatusBadRequest, rec.Code, "user ID %q", bad)
			assert.Equal(t, api.CodeValidation, decodeError(t, rec).Code)
		}
		assert.False(t, called)
	})

	t.Run("unknown role fails validation", func(t *testing.T) {
		t.Parallel()

		var actor domain.Actor
		var called bool
		handler := IdentityMiddleware(identityProbe(&actor, &called))

		rec := doIdentityRequest(t, handler, "42", "SUPERUSER")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid X-Role", decodeError(t, rec).Message)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	t.Run("admin passes", func(t *testing.T) {
		t.Parallel()

		var actor domain.Actor
		var called bool
		handler := IdentityMiddleware(RequireAdmin(identityProbe(&actor, &called)))

		rec := doIdentityRequest(t, handler, "1", "ADMIN")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
	})

	t.Run("learner is forbidden", func(t *testing.T) {
		t.Parallel()

		var actor domain.Actor
		var called bool
		handler := IdentityMiddleware(RequireAdmin(identityProbe(&actor, &called)))

		rec := doIdentityRequest(t, handler, "10", "LEARNER")
		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, called)

		resp := decodeError(t, rec)
		assert.Equal(t, api.CodeForbidden, resp.Code)
		assert.Equal(t, "Admin role required", resp.Message)
	})

	t.Run("no actor in context is unauthorized", func(t *testing.T) {
		t.Parallel()

		var actor domain.Actor
		var called bool
		handler := RequireAdmin(identityProbe(&actor, &called))

		rec := doIdentityRequest(t, handler, "", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})
}
