package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/taskhive/taskhive/internal/application/auth"
	"github.com/taskhive/taskhive/internal/application/dashboard"
	"github.com/taskhive/taskhive/internal/application/project"
	"github.com/taskhive/taskhive/internal/application/task"
	"github.com/taskhive/taskhive/internal/config"
	infraauth "github.com/taskhive/taskhive/internal/infrastructure/auth"
	httprouter "github.com/taskhive/taskhive/internal/infrastructure/http"
	"github.com/taskhive/taskhive/internal/infrastructure/http/handlers"
	"github.com/taskhive/taskhive/internal/infrastructure/http/middleware"
	"github.com/taskhive/taskhive/internal/infrastructure/persistence/postgres"
	"github.com/taskhive/taskhive/internal/infrastructure/security"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}

	userRepo := postgres.NewUserRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)

	hasher := security.NewArgon2Hasher(security.Argon2Params{
		Memory:      cfg.Argon2.Memory,
		Iterations:  cfg.Argon2.Iterations,
		Parallelism: cfg.Argon2.Parallelism,
		SaltLength:  16,
		KeyLength:   32,
	})
	issuer := infraauth.NewTokenIssuer([]byte(cfg.JWT.Secret), cfg.JWT.Issuer, cfg.JWT.Audience)

	registerUC := auth.NewRegister(userRepo, hasher, issuer, cfg.JWT.Expiry)
	loginUC := auth.NewLogin(userRepo, hasher, issuer, cfg.JWT.Expiry)
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, userRepo, log)

	projectsHandler := handlers.NewProjectsHandler(
		project.NewCreateProject(projectRepo),
		project.NewGetProject(projectRepo),
		project.NewListProjects(projectRepo),
		project.NewUpdateProject(projectRepo),
		project.NewDeleteProject(projectRepo),
		log,
	)
	tasksHandler := handlers.NewTasksHandler(
		task.NewCreateTask(taskRepo, projectRepo),
		task.NewGetTask(taskRepo),
		task.NewListTasks(taskRepo),
		task.NewListProjectTasks(taskRepo, projectRepo),
		task.NewUpdateTask(taskRepo, projectRepo),
		task.NewDeleteTask(taskRepo),
		log,
	)
	dashboardHandler := handlers.NewDashboardHandler(
		dashboard.NewStats(taskRepo),
		dashboard.NewProjectStats(taskRepo),
		log,
	)
	healthHandler := handlers.NewHealthHandler(pool)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.RateLimit.RatePerIP)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.Secure.IsDevelopment))
	corsMiddleware := middleware.CORS(cfg.CORS.AllowedOrigins, nil, nil)
	requireAuth := middleware.NewAuthValidator(issuer).Handler

	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:      authHandler,
		ProjectsHandler:  projectsHandler,
		TasksHandler:     tasksHandler,
		DashboardHandler: dashboardHandler,
		HealthHandler:    healthHandler,
		RequireAuth:      requireAuth,
		Log:              log,
		Secure:           secureMiddleware,
		CORS:             corsMiddleware,
		IPRateLimit:      ipLimit,
		Metrics:          cfg.Server.Metrics,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
