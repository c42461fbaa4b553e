package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"complaintdesk/internal/model"
	"complaintdesk/internal/repository"
)

// AdminAccount describes the bootstrap admin user.
type AdminAccount struct {
	Email    string
	Password string
	Name     string
}

// SeedResult reports what a seed run created.
type SeedResult struct {
	DepartmentsCreated int
	AdminCreated       bool
}

// SeedService inserts the fixed departments and the admin account. Running it
// again never duplicates rows.
type SeedService struct {
	users       repository.UserRepository
	departments repository.DepartmentRepository
	deptService DepartmentService
	hasher      PasswordHasher
	admin       AdminAccount
	log         *zap.Logger
}

// NewSeedService creates a new seed service.
func NewSeedService(
	users repository.UserRepository,
	departments repository.DepartmentRepository,
	deptService DepartmentService,
	hasher PasswordHasher,
	admin AdminAccount,
	log *zap.Logger,
) *SeedService {
	return &SeedService{
		users:       users,
		departments: departments,
		deptService: deptService,
		hasher:      hasher,
		admin:       admin,
		log:         log,
	}
}

// Seed inserts missing departments and the admin account.
func (s *SeedService) Seed(ctx context.Context) (SeedResult, error) {
	var result SeedResult

	created, err := s.departments.EnsureNames(ctx, model.DefaultDepartments)
	if err != nil {
		return result, fmt.Errorf("seed departments: %w", err)
	}
	result.DepartmentsCreated = created
	if created > 0 {
		_ = s.deptService.Invalidate(ctx)
	}

	digest, err := s.hasher.Hash(s.admin.Password)
	if err != nil {
		return result, fmt.Errorf("seed admin: %w", err)
	}
	result.AdminCreated, err = s.users.CreateIfAbsent(ctx, &model.User{
		Email:        s.admin.Email,
		Name:         s.admin.Name,
		Role:         model.RoleAdmin,
		PasswordHash: digest,
	})
	if err != nil {
		return result, fmt.Errorf("seed admin: %w", err)
	}

	s.log.Info("seed completed",
		zap.Int("departments_created", result.DepartmentsCreated),
		zap.Bool("admin_created", result.AdminCreated),
		zap.String("admin_email", s.admin.Email),
	)
	return result, nil
}
