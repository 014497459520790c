package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/mocks"
	"github.com/coursetrack/coursetrack-api/internal/service"
)

func newGuideRouter(t *testing.T, actor domain.Actor) (http.Handler, *mocks.MockGuideStore) {
	t.Helper()

	guideStore := mocks.NewMockGuideStore()
	handler := NewGuideHandler(service.NewGuideService(guideStore, nil), nil)

	r := newTestRouter(withActor(actor))
	r.Get("/guides", handler.List)
	return r, guideStore
}

func TestGuideHandler_List(t *testing.T) {
	t.Parallel()

	t.Run("learner receives own guides", func(t *testing.T) {
		t.Parallel()

		router, guideStore := newGuideRouter(t, domain.Actor{UserID: 10, Role: domain.RoleLearner})
		guideStore.Guides = []*domain.Guide{
			{ID: 1, UserID: 10, UserName: "Learner Ten", CourseID: 1, CourseTitle: "Go Basics", GuideText: "Review slices"},
			{ID: 2, UserID: 11, UserName: "Learner Eleven", CourseID: 1, CourseTitle: "Go Basics", GuideText: "Review maps"},
		}

		rec := doJSON(t, router, http.MethodGet, "/guides", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var guides []*domain.Guide
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &guides))
		require.Len(t, guides, 1)
		assert.Equal(t, int64(10), guides[0].UserID)
		assert.Contains(t, rec.Body.String(), `"guide_text":"Review slices"`)
	})

	t.Run("learner userId filter is ignored in favor of self", func(t *testing.T) {
		t.Parallel()

		router, guideStore := newGuideRouter(t, domain.Actor{UserID: 10, Role: domain.RoleLearner})
		var captured *int64
		guideStore.ListFn = func(ctx context.Context, userID *int64) ([]*domain.Guide, error) {
			captured = userID
			return []*domain.Guide{}, nil
		}

		rec := doJSON(t, router, http.MethodGet, "/guides?userId=99", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, captured)
		assert.Equal(t, int64(10), *captured)
	})

	t.Run("admin filters by learner", func(t *testing.T) {
		t.Parallel()

		router, guideStore := newGuideRouter(t, domain.Actor{UserID: 1, Role: domain.RoleAdmin})
		guideStore.Guides = []*domain.Guide{
			{ID: 1, UserID: 10, GuideText: "Review slices"},
			{ID: 2, UserID: 11, GuideText: "Review maps"},
		}

		rec := doJSON(t, router, http.MethodGet, "/guides?userId=11", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var guides []*domain.Guide
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &guides))
		require.Len(t, guides, 1)
		assert.Equal(t, int64(11), guides[0].UserID)
	})

	t.Run("malformed userId fails validation", func(t *testing.T) {
		t.Parallel()

		router, _ := newGuideRouter(t, domain.Actor{UserID: 1, Role: domain.RoleAdmin})

		rec := doJSON(t, router, http.MethodGet, "/guides?userId=abc", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, CodeValidation, decodeErrorResponse(t, rec).Code)
	})
}
