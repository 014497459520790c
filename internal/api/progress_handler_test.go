package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/mocks"
	"github.com/coursetrack/coursetrack-api/internal/service"
)

func newProgressRouter(t *testing.T, actor domain.Actor) (http.Handler, *mocks.MockProgressStore, *domain.Enrollment) {
	t.Helper()

	courses := mocks.NewMockCourseStore()
	require.NoError(t, courses.Create(context.Background(), &domain.Course{Title: "Go Basics"}))

	enrollments := mocks.NewMockEnrollmentStore()
	enrollment, err := enrollments.Enroll(context.Background(), 10, 1)
	require.NoError(t, err)

	progress := mocks.NewMockProgressStore()
	progressService := service.NewProgressService(
		progress,
		service.NewEnrollmentService(enrollments, courses, nil),
		nil,
	)
	handler := NewProgressHandler(progressService, nil)

	r := newTestRouter(withActor(actor))
	r.Post("/progress", handler.Report)
	r.Get("/progress", handler.List)
	r.Get("/lessons/watched", handler.ListWatched)
	return r, progress, enrollment
}

func TestProgressHandler_Report(t *testing.T) {
	t.Parallel()

	learner := domain.Actor{UserID: 10, Role: domain.RoleLearner}

	t.Run("records progress", func(t *testing.T) {
		t.Parallel()

		router, _, enrollment := newProgressRouter(t, learner)

		rec := doJSON(t, router, http.MethodPost, "/progress", ProgressUpdateRequest{
			EnrollmentID:    enrollment.ID,
			LessonID:        3,
			ProgressPercent: 100,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var record domain.Progress
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
		assert.Equal(t, 100.0, record.ProgressPercent)
		assert.NotNil(t, record.CompletedAt)
	})

	t.Run("foreign enrollment is forbidden", func(t *testing.T) {
		t.Parallel()

		router, _, enrollment := newProgressRouter(t, domain.Actor{UserID: 11, Role: domain.RoleLearner})

		rec := doJSON(t, router, http.MethodPost, "/progress", ProgressUpdateRequest{
			EnrollmentID:    enrollment.ID,
			LessonID:        3,
			ProgressPercent: 50,
		})
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("percentage above 100 fails validation", func(t *testing.T) {
		t.Parallel()

		router, _, enrollment := newProgressRouter(t, learner)

		rec := doJSON(t, router, http.MethodPost, "/progress", ProgressUpdateRequest{
			EnrollmentID:    enrollment.ID,
			LessonID:        3,
			ProgressPercent: 101,
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProgressHandler_List(t *testing.T) {
	t.Parallel()

	learner := domain.Actor{UserID: 10, Role: domain.RoleLearner}

	t.Run("lists records for an owned enrollment", func(t *testing.T) {
		t.Parallel()

		router, progress, enrollment := newProgressRouter(t, learner)
		_, err := progress.Upsert(context.Background(), enrollment.ID, 3, 40, false)
		require.NoError(t, err)

		rec := doJSON(t, router, http.MethodGet,
			fmt.Sprintf("/progress?enrollmentId=%d", enrollment.ID), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var records []*domain.Progress
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
		assert.Len(t, records, 1)
	})

	t.Run("missing enrollmentId fails validation", func(t *testing.T) {
		t.Parallel()

		router, _, _ := newProgressRouter(t, learner)

		rec := doJSON(t, router, http.MethodGet, "/progress", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, CodeValidation, decodeErrorResponse(t, rec).Code)
	})
}

func TestProgressHandler_ListWatched(t *testing.T) {
	t.Parallel()

	t.Run("learner sees own watched lessons", func(t *testing.T) {
		t.Parallel()

		router, progress, _ := newProgressRouter(t, domain.Actor{UserID: 10, Role: domain.RoleLearner})
		progress.Watched = []*domain.WatchedLesson{
			{LessonID: 3, CourseID: 1, CourseTitle: "Go Basics", LessonTitle: "Slices", ProgressPercent: 80},
		}

		rec := doJSON(t, router, http.MethodGet, "/lessons/watched", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"lesson_title":"Slices"`)
	})

	t.Run("learner targeting another user is forbidden", func(t *testing.T) {
		t.Parallel()

		router, _, _ := newProgressRouter(t, domain.Actor{UserID: 10, Role: domain.RoleLearner})

		rec := doJSON(t, router, http.MethodGet, "/lessons/watched?userId=99", nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}
