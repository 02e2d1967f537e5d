package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/swoleapp/swole-api/internal/config"
	"github.com/swoleapp/swole-api/internal/database"
	"github.com/swoleapp/swole-api/internal/handler"
	"github.com/swoleapp/swole-api/internal/middleware"
	"github.com/swoleapp/swole-api/internal/repository"
	"github.com/swoleapp/swole-api/internal/service"
	"github.com/swoleapp/swole-api/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}
	if err := database.Apply(context.Background(), db); err != nil {
		logger.Fatalf("Failed to bootstrap schema: %v", err)
	}

	// Initialize layers
	workouts := repository.NewWorkoutRepository(db)
	exercises := repository.NewExerciseRepository(db)
	sets := repository.NewSetRepository(db)
	users := repository.NewUserRepository(db)

	var mailer *email.Sender
	if cfg.SMTPConfigured() {
		mailer = email.NewSender(cfg, logger)
	}
	auth := service.NewAuthService(users, cfg, logger, mailer)
	h := handler.NewHandler(workouts, exercises, sets, auth, logger)

	if err := database.EnsureSeedUser(context.Background(), cfg, users, auth); err != nil {
		logger.Fatalf("Failed to seed default user: %v", err)
	}

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v2").Subrouter()

	// Public routes
	api.HandleFunc("/users/create", h.CreateUsers).Methods("POST")
	api.HandleFunc("/auth/token", h.Token).Methods("POST")

	// Protected routes
	authRouter := api.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.NewAuthMiddleware(auth, logger).Handler)
	authRouter.HandleFunc("/users/profile", h.Profile).Methods("POST")
	authRouter.HandleFunc("/workouts/all", h.AllWorkouts).Methods("POST")
	authRouter.HandleFunc("/workouts/detail", h.WorkoutDetail).Methods("POST")
	authRouter.HandleFunc("/workouts/create", h.CreateWorkouts).Methods("POST")
	authRouter.HandleFunc("/workouts/update", h.UpdateWorkouts).Methods("POST")
	authRouter.HandleFunc("/workouts/delete", h.DeleteWorkouts).Methods("POST")
	authRouter.HandleFunc("/workouts/add-exercises", h.AddExercisesToWorkouts).Methods("POST")
	authRouter.HandleFunc("/workouts/copy", h.CopyWorkouts).Methods("POST")
	authRouter.HandleFunc("/exercises/all", h.AllExercises).Methods("POST")
	authRouter.HandleFunc("/exercises/detail", h.ExerciseDetail).Methods("POST")
	authRouter.HandleFunc("/exercises/create", h.CreateExercises).Methods("POST")
	authRouter.HandleFunc("/exercises/update", h.UpdateExercises).Methods("POST")
	authRouter.HandleFunc("/exercises/delete", h.DeleteExercises).Methods("POST")
	authRouter.HandleFunc("/exercises/progress", h.ExerciseProgress).Methods("POST")
	authRouter.HandleFunc("/sets/all", h.AllSets).Methods("POST")
	authRouter.HandleFunc("/sets/add", h.AddSets).Methods("POST")
	authRouter.HandleFunc("/sets/update", h.UpdateSet).Methods("POST")
	authRouter.HandleFunc("/sets/delete", h.DeleteSet).Methods("POST")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
