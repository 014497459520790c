package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/coursetrack/coursetrack-api/internal/api/shared"
	"github.com/coursetrack/coursetrack-api/internal/domain"
)

// withActor returns middleware that injects a fixed actor, standing in for
// the identity middleware.
func withActor(actor domain.Actor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(shared.SetActor(r.Context(), actor)))
		})
	}
}

// newTestRouter builds a chi router with the given middleware so path
// parameters resolve the way they do in production.
func newTestRouter(mw ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	for _, m := range mw {
		r.Use(m)
	}
	return r
}

// doJSON performs a request with an optional JSON body against the router.
func doJSON(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeErrorResponse unmarshals the standard error envelope.
func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()

	var resp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
