package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/coursetrack/coursetrack-api/internal/api"
	"github.com/coursetrack/coursetrack-api/internal/config"
	"github.com/coursetrack/coursetrack-api/internal/generation"
	"github.com/coursetrack/coursetrack-api/internal/platform/gemini"
	"github.com/coursetrack/coursetrack-api/internal/platform/postgres"
	"github.com/coursetrack/coursetrack-api/internal/service"
	"github.com/coursetrack/coursetrack-api/internal/service/reporting"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// termination signal before the server is forced closed.
const shutdownTimeout = 10 * time.Second

// application holds the wired dependency graph for one server process.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB
	router http.Handler
}

// newApplication builds the full dependency graph: database, stores,
// services, and HTTP handlers. The AI generator is optional; when no API key
// is configured the AI endpoints report an external API error instead.
func newApplication(ctx context.Context, cfg *config.Config, log *slog.Logger) (*application, error) {
	db, err := setupDatabase(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}

	// Stores.
	userStore := postgres.NewUserStore(db, log)
	courseStore := postgres.NewCourseStore(db, log)
	lessonStore := postgres.NewLessonStore(db, log)
	enrollmentStore := postgres.NewEnrollmentStore(db, log)
	progressStore := postgres.NewProgressStore(db, log)
	reportStore := postgres.NewReportStore(db, log)
	boardStore := postgres.NewBoardStore(db, log)
	guideStore := postgres.NewGuideStore(db, log)
	aiLogStore := postgres.NewAILogStore(db, log)

	// Services.
	userService := service.NewUserService(userStore, log)
	enrollmentService := service.NewEnrollmentService(enrollmentStore, courseStore, log)
	progressService := service.NewProgressService(progressStore, enrollmentService, log)
	reportingService := reporting.NewService(reportStore, log)
	guideService := service.NewGuideService(guideStore, log)

	var generator generation.Generator
	if cfg.AI.GeminiAPIKey != "" {
		geminiGenerator, err := gemini.NewGenerator(ctx, log, cfg.AI)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize AI generator: %w", err)
		}
		generator = geminiGenerator
	} else {
		log.Warn("no AI API key configured, AI endpoints will report an external API error")
	}
	aiService := service.NewAIService(generator, aiLogStore, log)

	// Handlers.
	handlers := routerHandlers{
		users:       api.NewUserHandler(userService, log),
		courses:     api.NewCourseHandler(courseStore, log),
		lessons:     api.NewLessonHandler(lessonStore, log),
		enrollments: api.NewEnrollmentHandler(enrollmentService, log),
		progress:    api.NewProgressHandler(progressService, log),
		boards:      api.NewBoardHandler(boardStore, log),
		reports:     api.NewReportHandler(reportingService, log),
		guides:      api.NewGuideHandler(guideService, log),
		ai:          api.NewAIHandler(aiService, log),
	}

	return &application{
		config: cfg,
		logger: log,
		db:     db,
		router: newRouter(handlers),
	}, nil
}

// RunMigrations applies any pending database migrations.
func (app *application) RunMigrations(ctx context.Context) error {
	return runMigrations(ctx, app.db, app.logger)
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func (app *application) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	app.logger.Info("shutdown signal received, draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	app.logger.Info("server stopped")
	return nil
}

// Close releases resources held by the application.
func (app *application) Close() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database",
				slog.String("error", err.Error()))
		}
	}
}
