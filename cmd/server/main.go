package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "complaintdesk/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"complaintdesk/internal/auth"
	"complaintdesk/internal/cache"
	"complaintdesk/internal/config"
	"complaintdesk/internal/db"
	"complaintdesk/internal/handler"
	"complaintdesk/internal/logger"
	"complaintdesk/internal/repository"
	"complaintdesk/internal/router"
	"complaintdesk/internal/service"
)

// @title Complaint Desk API
// @version 1.0
// @description College complaint management API with departments, anonymous complaints and JWT authentication.
// @host localhost:8000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	gormDB, err := db.Open(cfg, log)
	if err != nil {
		log.Fatal("database init", zap.Error(err))
	}

	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			log.Fatal("reset database", zap.Error(err))
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if !cacheClient.Enabled() {
		log.Info("redis not configured, department cache disabled")
	}

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	departmentRepo := repository.NewDepartmentRepository(gormDB)
	complaintRepo := repository.NewComplaintRepository(gormDB)

	// Auth components
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	enforcer, err := auth.NewEnforcer(gormDB)
	if err != nil {
		log.Fatal("policy enforcer", zap.Error(err))
	}

	// Services
	authService := service.NewAuthService(userRepo, hasher, jwtService)
	departmentService := service.NewDepartmentService(departmentRepo, cacheClient)
	complaintService := service.NewComplaintService(complaintRepo, departmentRepo, enforcer)

	seeder := service.NewSeedService(userRepo, departmentRepo, departmentService, hasher, service.AdminAccount{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Name:     cfg.AdminName,
	}, log)
	if _, err := seeder.Seed(context.Background()); err != nil {
		log.Fatal("seed", zap.Error(err))
	}

	// Handlers
	authHandler := handler.NewAuthHandler(authService, log)
	complaintHandler := handler.NewComplaintHandler(complaintService, log)
	departmentHandler := handler.NewDepartmentHandler(departmentService, log)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, log, jwtService, authHandler, complaintHandler, departmentHandler)

	log.Info("swagger documentation available", zap.String("url", swaggerURL(cfg)))

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info("http server started", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal("server start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = cacheClient.Close()
}

// swaggerURL builds the address of the swagger UI. SwaggerHost may already
// include a scheme.
func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return strings.TrimSuffix(host, "/") + "/swagger/index.html"
}
