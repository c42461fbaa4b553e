package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"complaintdesk/internal/auth"
	"complaintdesk/internal/cache"
	"complaintdesk/internal/config"
	"complaintdesk/internal/db"
	"complaintdesk/internal/logger"
	"complaintdesk/internal/repository"
	"complaintdesk/internal/service"
)

// Seeds the fixed departments and the bootstrap admin without starting the
// HTTP server. Safe to run repeatedly.
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

	log.Info("starting seed")

	gormDB, err := db.Open(cfg, log)
	if err != nil {
		log.Fatal("connect database", zap.Error(err))
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}
	if _, err := auth.NewEnforcer(gormDB); err != nil {
		log.Fatal("load policies", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() { _ = cacheClient.Close() }()

	departmentRepo := repository.NewDepartmentRepository(gormDB)
	seeder := service.NewSeedService(
		repository.NewUserRepository(gormDB),
		departmentRepo,
		service.NewDepartmentService(departmentRepo, cacheClient),
		auth.NewPasswordHasher(cfg.BcryptCost),
		service.AdminAccount{
			Email:    cfg.AdminEmail,
			Password: cfg.AdminPassword,
			Name:     cfg.AdminName,
		},
		log,
	)

	result, err := seeder.Seed(context.Background())
	if err != nil {
		log.Fatal("seed", zap.Error(err))
	}

	log.Info("seed completed",
		zap.Int("departments_created", result.DepartmentsCreated),
		zap.Bool("admin_created", result.AdminCreated),
	)
}
