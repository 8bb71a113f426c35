package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"labfeedback-backend/internal/catalog"
	"labfeedback-backend/internal/database"
	"labfeedback-backend/internal/handlers"
	customMiddleware "labfeedback-backend/internal/middleware"
	"labfeedback-backend/internal/models"
	"labfeedback-backend/internal/notify"
	"labfeedback-backend/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env (ignore error in production — env vars set directly)
	_ = godotenv.Load()

	// Required env vars
	mongoURI := getEnv("MONGODB_URI", "")
	dbName := getEnv("DB_NAME", "labfeedback")
	jwtSecret := getEnv("JWT_SECRET", "")
	port := getEnv("PORT", "8080")
	adminUsername := getEnv("ADMIN_USERNAME", "admin")
	adminPassword := getEnv("ADMIN_PASSWORD", "")

	if mongoURI == "" {
		log.Fatal("❌ MONGODB_URI is required")
	}
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET is required")
	}
	if adminPassword == "" {
		log.Fatal("❌ ADMIN_PASSWORD is required")
	}

	// Connect to MongoDB
	if err := database.Connect(mongoURI, dbName); err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}
	defer database.Disconnect(context.Background())

	// Initialize repositories
	feedbackRepo := repository.NewFeedbackRepo()
	userRepo := repository.NewUserRepo()
	labRepo := repository.NewLabRepo()
	adminRepo := repository.NewAdminRepo()

	// Ensure indexes
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := feedbackRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create feedback indexes: %v", err)
	}
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create user indexes: %v", err)
	}
	if err := labRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create lab indexes: %v", err)
	}
	if err := adminRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create admin indexes: %v", err)
	}

	// Product lookup for submission validation
	products := catalog.BuildIndex(catalog.Labs())

	// Completion email (logs instead of sending when RESEND_API_KEY is unset)
	notifier := notify.NewMailer(os.Getenv("RESEND_API_KEY"), getEnv("FROM_EMAIL", "noreply@labfeedback.local"))

	adminSeed := models.Admin{
		Username:    adminUsername,
		Password:    adminPassword,
		Permissions: []string{"leaderboard", "feedback_view", "analytics"},
	}

	// Initialize handlers
	feedbackHandler := handlers.NewFeedbackHandler(feedbackRepo, userRepo, products, notifier)
	progressHandler := handlers.NewProgressHandler(userRepo)
	labHandler := handlers.NewLabHandler(labRepo)
	initHandler := handlers.NewInitHandler(labRepo, adminRepo, adminSeed)
	adminHandler := handlers.NewAdminHandler(adminRepo, feedbackRepo, userRepo, labRepo, jwtSecret)

	// Setup chi router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"labfeedback-backend"}`))
	})

	// Public routes
	r.Post("/feedback", feedbackHandler.Submit)
	r.Get("/feedback/stats", feedbackHandler.Stats)
	r.Get("/labs", labHandler.List)
	r.Get("/progress", progressHandler.GetProgress)
	r.Post("/init", initHandler.Initialize)
	r.Post("/admin/login", adminHandler.Login)

	// Admin routes (JWT required)
	r.Group(func(r chi.Router) {
		r.Use(customMiddleware.AdminAuth(jwtSecret))

		r.Get("/admin/feedback", adminHandler.ListFeedback)
		r.Get("/admin/feedback/export", adminHandler.ExportFeedback)
		r.Get("/admin/leaderboard", adminHandler.Leaderboard)
		r.Get("/admin/product-stats", adminHandler.ProductStats)
	})

	// Start server
	log.Printf("🚀 Lab feedback backend starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
