package service

import (
	"context"
	"encoding/json"
	"time"

	"complaintdesk/internal/cache"
	"complaintdesk/internal/model"
	"complaintdesk/internal/repository"
)

const (
	departmentsCacheKey = "departments:all"
	departmentsCacheTTL = 10 * time.Minute
)

// DepartmentService exposes department queries.
type DepartmentService interface {
	List(ctx context.Context) ([]model.Department, error)
	Invalidate(ctx context.Context) error
}

type departmentService struct {
	repo  repository.DepartmentRepository
	cache *cache.Client
}

// NewDepartmentService builds a DepartmentService with repository and cache.
func NewDepartmentService(repo repository.DepartmentRepository, cache *cache.Client) DepartmentService {
	return &departmentService{repo: repo, cache: cache}
}

// List returns all departments, serving from cache when possible.
func (s *departmentService) List(ctx context.Context) ([]model.Department, error) {
	if data, _ := s.cache.Get(ctx, departmentsCacheKey); data != nil {
		var cached []model.Department
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	departments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(departments); err == nil {
		_ = s.cache.Set(ctx, departmentsCacheKey, payload, departmentsCacheTTL)
	}
	return departments, nil
}

// Invalidate drops the cached department list.
func (s *departmentService) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, departmentsCacheKey)
}
