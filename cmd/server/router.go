package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/coursetrack/coursetrack-api/internal/api"
	apimiddleware "github.com/coursetrack/coursetrack-api/internal/api/middleware"
)

// routerHandlers bundles the HTTP handlers the router mounts.
type routerHandlers struct {
	users       *api.UserHandler
	courses     *api.CourseHandler
	lessons     *api.LessonHandler
	enrollments *api.EnrollmentHandler
	progress    *api.ProgressHandler
	boards      *api.BoardHandler
	reports     *api.ReportHandler
	guides      *api.GuideHandler
	ai          *api.AIHandler
}

// newRouter assembles the HTTP routing table. Signup, login, and the course
// catalog reads are public; everything else requires the identity headers.
// Catalog and board mutations additionally require the admin role; the
// enrollment-decision and report endpoints enforce admin inside their
// services.
func newRouter(h routerHandlers) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		// Public routes.
		r.Post("/signup", h.users.Signup)
		r.Post("/auth/login", h.users.Login)
		r.Get("/courses", h.courses.List)
		r.Get("/courses/{id}", h.courses.Detail)
		r.Get("/lessons/public", h.lessons.ListPublic)

		// Routes requiring a resolved actor.
		r.Group(func(r chi.Router) {
			r.Use(apimiddleware.IdentityMiddleware)

			r.Get("/users/me", h.users.Me)

			r.Post("/enroll", h.enrollments.Enroll)
			r.Get("/enroll/pending", h.enrollments.ListPending)
			r.Post("/enroll/{id}/approve", h.enrollments.Approve)
			r.Post("/enroll/{id}/reject", h.enrollments.Reject)

			r.Post("/progress", h.progress.Report)
			r.Get("/progress", h.progress.List)
			r.Get("/lessons/watched", h.progress.ListWatched)

			r.Get("/boards", h.boards.List)
			r.Get("/boards/{id}", h.boards.Detail)

			r.Get("/guides", h.guides.List)

			r.Post("/ai/summary", h.ai.Summary)
			r.Post("/ai/quiz", h.ai.Quiz)

			r.Get("/reports/course-period", h.reports.CoursePeriod)
			r.Get("/reports/course-period.csv", h.reports.CoursePeriodCSV)
			r.Get("/reports/course-completion", h.reports.CourseCompletion)
			r.Get("/reports/course-completion.csv", h.reports.CourseCompletionCSV)
			r.Get("/reports/learner-progress", h.reports.LearnerProgress)

			// Admin-only management routes.
			r.Group(func(r chi.Router) {
				r.Use(apimiddleware.RequireAdmin)

				r.Post("/courses", h.courses.Create)
				r.Put("/courses/{id}", h.courses.Update)
				r.Delete("/courses/{id}", h.courses.Delete)

				r.Get("/lessons", h.lessons.List)
				r.Get("/lessons/{id}", h.lessons.Detail)
				r.Post("/lessons", h.lessons.Create)
				r.Put("/lessons/{id}", h.lessons.Update)
				r.Delete("/lessons/{id}", h.lessons.Delete)

				r.Post("/boards", h.boards.Create)
				r.Put("/boards/{id}", h.boards.Update)
				r.Delete("/boards/{id}", h.boards.Delete)
			})
		})
	})

	return r
}
