package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "estatedesk-backend/internal/api/http"
	"estatedesk-backend/internal/config"
	"estatedesk-backend/internal/logger"
	"estatedesk-backend/internal/repository/postgres"
	"estatedesk-backend/internal/security"
	"estatedesk-backend/internal/service"
	"estatedesk-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting EstateDesk Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.Auth.JWTSecret)

	// Initialize CSV archive storage
	archive, err := storage.NewLocalArchive(cfg.Upload.ArchiveDir)
	if err != nil {
		logger.Error("Failed to initialize archive storage", "error", err, "dir", cfg.Upload.ArchiveDir)
		log.Fatalf("Failed to initialize archive storage: %v", err)
	}
	logger.Info("Archive storage ready", "dir", cfg.Upload.ArchiveDir)

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.Email.APIKey != "" {
		emailSvc = service.NewEmailService(cfg.Email)
		logger.Info("SendGrid notifications enabled", "from", cfg.Email.FromEmail)
	} else {
		logger.Warn("SendGrid API key not set, inquiry notifications disabled")
	}

	// Initialize Services
	propertySvc := service.NewPropertyService(store.PropertyRepository)
	bulkUploadSvc := service.NewBulkUploadService(
		store.PropertyRepository,
		store.MasterDataRepository,
		store.UploadRepository,
		archive,
	)
	masterDataSvc := service.NewMasterDataService(store.MasterDataRepository)
	contentSvc := service.NewContentService(store.ContentRepository)
	inquirySvc := service.NewInquiryService(store.InquiryRepository, emailSvc)

	// Build the router
	router := httpapi.NewRouter(httpapi.Services{
		Properties: propertySvc,
		BulkUpload: bulkUploadSvc,
		MasterData: masterDataSvc,
		Content:    contentSvc,
		Inquiries:  inquirySvc,

		MaxUploadBytes: cfg.Upload.MaxFileSizeMB * 1024 * 1024,
	}, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
