package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobtracker-backend/config"
	_ "go-jobtracker-backend/docs" // Important for Swagger
	v1 "go-jobtracker-backend/internal/delivery/http/v1"
	"go-jobtracker-backend/internal/repository/postgres"
	"go-jobtracker-backend/internal/usecase"
	"go-jobtracker-backend/pkg/auth"
	"go-jobtracker-backend/pkg/database"
	"go-jobtracker-backend/pkg/logger"
	"go-jobtracker-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Job Tracker API
// @version         1.0
// @description     Personal job-application tracker backend.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job tracker backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(context.Background(), cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Repositories
	jobRepo := postgres.NewJobRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)

	// 5. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	jobUC := usecase.NewJobUsecase(jobRepo)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)

	// 6. Setup Auth Provider (JWKS, used for RS256 tokens)
	jwksProvider := auth.NewProvider(cfg.JWKSURL)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		JobUC:        jobUC,
		InterviewUC:  interviewUC,
		ProfileUC:    profileUC,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
