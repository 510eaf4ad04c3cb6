package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"goldcredit/cmd/internal/config"
	"goldcredit/cmd/internal/domain/sqlite"
	"goldcredit/cmd/internal/domain/sqlite/repository"
	"goldcredit/cmd/internal/http/handler"
	authmw "goldcredit/cmd/internal/http/middleware"
	"goldcredit/cmd/internal/infrastructure/minhareceita"
	"goldcredit/cmd/internal/service"
	"goldcredit/cmd/internal/service/jobs"
	"goldcredit/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	// Loads from .env, real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}
	cfg := config.Load()
	log.SetLevel(parseLogLevel(cfg.LogLevel))

	validate := validator.New()
	registerValidators(validate)

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		panic(err)
	}

	// Init SQLite
	db, err := sqlite.Init(cfg.DBPath)
	if err != nil {
		panic(err)
	}

	// Getting repos
	cedenteRepo := repository.NewCedenteRepository(db)
	checklistRepo := repository.NewChecklistRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)

	// Getting services
	documentService := service.NewDocumentService(checklistRepo, cedenteRepo)
	reconciler := service.NewReconciler(cedenteRepo, notifRepo, documentService)
	cedenteService := service.NewCedenteService(cedenteRepo, notifRepo, documentService, validate)
	notificationService := service.NewNotificationService(notifRepo, reconciler)
	userService := service.NewUserService(userRepo, validate, cfg.EmailDomain, cfg.JWTSecret)
	importService := service.NewImportService(cedenteRepo)
	companyService := service.NewCompanyService(minhareceita.NewClient(), companyRepo)

	backupService, err := service.NewBackupService(cfg.DBPath, cfg.BackupDir, cfg.BackupKeepDays)
	if err != nil {
		panic(err)
	}

	if err := userService.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		panic(err)
	}

	// Getting handlers
	cedenteRoutes := handler.NewCedenteDefault(cedenteService, documentService, importService)
	notificationRoutes := handler.NewNotificationDefault(notificationService)
	backupRoutes := handler.NewBackupDefault(backupService, validate)
	userRoutes := handler.NewUserDefault(userService)
	companyRoutes := handler.NewCompanyRoute(companyService)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("10M"))

	// Public
	e.POST("/api/users", userRoutes.Register)
	e.POST("/api/users/login", userRoutes.Login)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	auth := authmw.NewAuthMiddleware(&authmw.AuthMiddlewareConfig{
		UserRepo:  userRepo,
		JWTSecret: []byte(cfg.JWTSecret),
	})
	api := e.Group("/api", auth)

	api.GET("/users/me", userRoutes.Me)

	// Cedentes
	api.GET("/cedentes", cedenteRoutes.GetCedentes)
	api.GET("/cedentes/:id", cedenteRoutes.GetCedente)
	api.POST("/cedentes", cedenteRoutes.CreateCedente)
	api.PUT("/cedentes/:id", cedenteRoutes.UpdateCedente)
	api.DELETE("/cedentes/:id", cedenteRoutes.DeleteCedente)
	api.GET("/cedentes/:id/checklist", cedenteRoutes.GetChecklist)
	api.PUT("/cedentes/:id/checklist", cedenteRoutes.SaveChecklist)
	api.GET("/statistics", cedenteRoutes.GetStatistics)
	api.POST("/cedentes/import", cedenteRoutes.ImportCedentes, authmw.AdminOnly)

	// Notifications
	api.GET("/notifications", notificationRoutes.GetUnread)
	api.GET("/notifications/count", notificationRoutes.CountUnread)
	api.POST("/notifications/:id/read", notificationRoutes.MarkRead)
	api.POST("/notifications/read-all", notificationRoutes.MarkAllRead)
	api.POST("/notifications/run-checks", notificationRoutes.RunChecks)

	// Backups
	api.POST("/backups", backupRoutes.CreateBackup, authmw.AdminOnly)
	api.GET("/backups", backupRoutes.ListBackups, authmw.AdminOnly)
	api.POST("/backups/restore", backupRoutes.RestoreBackup, authmw.AdminOnly)
	api.GET("/backups/stats", backupRoutes.GetStats, authmw.AdminOnly)

	// Company registry lookup
	api.GET("/companies/:cnpj", companyRoutes.GetCompany)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go jobs.NewDailyBackupJob(backupService, cfg.BackupHour, cfg.BackupMinute).Start(ctx)
	go jobs.NewReconcileJob(reconciler, cfg.ReconcileInterval, cfg.ReconcileCooldown).Start(ctx)
	go jobs.NewCompanyCacheCleaner(companyRepo, cfg.CompanyCacheTTL).Start(ctx)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Infof("http server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("forced shutdown: %v", err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("hasupper", validators.HasUpper)
	_ = validate.RegisterValidation("haslower", validators.HasLower)
	_ = validate.RegisterValidation("hasdigit", validators.HasDigit)
	_ = validate.RegisterValidation("hasspecial", validators.HasSpecial)
	_ = validate.RegisterValidation("cpfcnpj", validators.CPFCNPJ)
}

func parseLogLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
