package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/coursetrack/coursetrack-api/internal/api/shared"
	"github.com/coursetrack/coursetrack-api/internal/domain"
)

// dateLayout is the wire format for report period bounds.
const dateLayout = "2006-01-02"

// getActor extracts the request actor placed in the context by the identity
// middleware. It writes a 401 response and returns false when absent.
func getActor(w http.ResponseWriter, r *http.Request) (domain.Actor, bool) {
	actor, ok := shared.GetActor(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized,
			CodeUnauthorized, "Authentication required")
		return domain.Actor{}, false
	}
	return actor, true
}

// getPathID extracts a positive integer ID from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrValidation, paramName)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidID, paramName)
	}

	return id, nil
}

// queryInt64 parses an optional positive integer query parameter. A missing
// or empty parameter yields nil.
func queryInt64(r *http.Request, name string) (*int64, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidID, name)
	}

	return &id, nil
}

// queryDate parses a required yyyy-mm-dd query parameter.
func queryDate(r *http.Request, name string) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", domain.ErrValidation, name)
	}

	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date for %s (yyyy-mm-dd)", domain.ErrValidation, name)
	}

	return date, nil
}

// decodeAndValidate decodes the JSON request body into v and runs struct
// validation. On failure it writes a 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidation, "Invalid request format")
		return false
	}

	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidation, "Validation error: "+err.Error())
		return false
	}

	return true
}
