package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"careerconnect/internal/app"
	"careerconnect/internal/artifact"
	"careerconnect/internal/config"
	"careerconnect/internal/database"
	apphttp "careerconnect/internal/http"
	"careerconnect/internal/http/handlers"
	"careerconnect/internal/http/metrics"
	httpmw "careerconnect/internal/http/middleware"
	"careerconnect/internal/observability"
	"careerconnect/internal/repository/postgres"
	"careerconnect/internal/security"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	db, err := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	}, logger.Zerolog())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	userRepo := postgres.NewUserRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	interviewRepo := postgres.NewInterviewRepository(db)

	artifacts, err := artifact.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}

	jwtProvider := security.NewJWTProvider(cfg.JWTSecret)

	authService := app.NewAuthService(userRepo, jwtProvider, cfg.TokenTTL)
	profileService := app.NewProfileService(userRepo, jobRepo, artifacts)
	jobService := app.NewJobService(jobRepo, userRepo)
	applicationService := app.NewApplicationService(applicationRepo, jobRepo, userRepo)
	interviewService := app.NewInterviewService(interviewRepo, applicationRepo, jobRepo)

	var limiter httpmw.Limiter = httpmw.NewRateLimiter()
	if cfg.RedisAddr != "" {
		limiter = httpmw.NewRedisLimiter(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}

	collector := metrics.NewCollector()

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:        handlers.NewAuthHandler(authService),
		ProfileHandler:     handlers.NewProfileHandler(profileService),
		JobHandler:         handlers.NewJobHandler(jobService),
		ApplicationHandler: handlers.NewApplicationHandler(applicationService, limiter),
		InterviewHandler:   handlers.NewInterviewHandler(interviewService),
		MetricsHandler:     handlers.NewMetricsHandler(collector),
		AuthMiddleware:     httpmw.NewAuthMiddleware(jwtProvider),
		Metrics:            collector,
		Logger:             logger.Zerolog(),
		RequestTimeout:     cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
