package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ourkidney/api-backend/internal/crypto"
	"github.com/ourkidney/api-backend/internal/database"
	"github.com/ourkidney/api-backend/internal/handlers"
	"github.com/ourkidney/api-backend/internal/models"
	"github.com/ourkidney/api-backend/internal/repositories"
	"github.com/ourkidney/api-backend/internal/router"
	"github.com/ourkidney/api-backend/internal/services"
)

// @title Our Kidney API
// @version 1.0
// @description Backend for the association website: public content, membership registration, and the admin panel.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	setupLogging()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logrus.Fatal("JWT_SECRET environment variable is required")
	}
	fromEmail := os.Getenv("SES_FROM_EMAIL")
	if fromEmail == "" {
		logrus.Fatal("SES_FROM_EMAIL environment variable is required")
	}
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	contactEmail := os.Getenv("CONTACT_EMAIL")
	if contactEmail == "" {
		contactEmail = fromEmail
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/ourkidney.db"
	}
	db, err := database.InitDB(database.DefaultConfig(dbPath))
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close(db)

	adminRepo := repositories.NewAdminRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	slideRepo := repositories.NewSlideRepository(db)
	partnerRepo := repositories.NewPartnerRepository(db)
	faqRepo := repositories.NewFAQRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	statementRepo := repositories.NewMissionVisionRepository(db)
	methodRepo := repositories.NewDonationMethodRepository(db)
	registrationRepo := repositories.NewRegistrationRepository(db)

	emailService, err := services.NewEmailService(&services.EmailConfig{
		FromEmail: fromEmail,
		Region:    os.Getenv("AWS_REGION"),
	})
	if err != nil {
		logrus.Fatalf("Failed to initialize email service: %v", err)
	}

	authService, err := services.NewAuthService(adminRepo, emailService, &services.AuthConfig{
		JWTSecret: jwtSecret,
		BaseURL:   baseURL,
	})
	if err != nil {
		logrus.Fatalf("Failed to initialize auth service: %v", err)
	}

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "./uploads"
	}
	uploadService, err := services.NewUploadService(uploadsDir)
	if err != nil {
		logrus.Fatalf("Failed to initialize upload service: %v", err)
	}

	cleanupService := services.NewCleanupService(adminRepo)
	cleanupService.Start()
	defer cleanupService.Stop()

	if err := seedAdmin(adminRepo); err != nil {
		logrus.Fatalf("Failed to seed admin account: %v", err)
	}

	h := &router.Handlers{
		Auth:           handlers.NewAuthHandler(authService),
		Admin:          handlers.NewAdminHandler(authService),
		Blog:           handlers.NewBlogHandler(blogRepo, uploadService),
		Slide:          handlers.NewSlideHandler(slideRepo, uploadService),
		Partner:        handlers.NewPartnerHandler(partnerRepo, uploadService),
		FAQ:            handlers.NewFAQHandler(faqRepo),
		Member:         handlers.NewMemberHandler(memberRepo),
		MissionVision:  handlers.NewMissionVisionHandler(statementRepo),
		DonationMethod: handlers.NewDonationMethodHandler(methodRepo),
		Registration:   handlers.NewRegistrationHandler(registrationRepo),
		Upload:         handlers.NewUploadHandler(uploadService),
		Contact:        handlers.NewContactHandler(emailService, contactEmail),
		Cleanup:        handlers.NewCleanupHandler(cleanupService),
	}

	engine := router.SetupRouter(h, authService, uploadsDir)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logrus.Infof("Server listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Forced shutdown: %v", err)
	}
	logrus.Info("Server stopped")
}

// setupLogging configures logrus. When LOG_FILE is set, output is
// mirrored to a size-rotated file.
func setupLogging() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logrus.SetLevel(level)
	}

	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		}
		logrus.SetOutput(io.MultiWriter(os.Stdout, rotator))
	}
}

// seedAdmin creates the initial admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD when no admin exists yet. Login is impossible
// otherwise on a fresh database.
func seedAdmin(adminRepo *repositories.AdminRepository) error {
	count, err := adminRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logrus.Warn("No admin account exists and ADMIN_EMAIL/ADMIN_PASSWORD are unset, skipping seed")
		return nil
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}
	if err := adminRepo.Create(&models.Admin{Email: email, PasswordHash: hash}); err != nil {
		return err
	}

	logrus.Infof("Seeded admin account %s", email)
	return nil
}
