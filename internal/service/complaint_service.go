package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"complaintdesk/internal/auth"
	apperrors "complaintdesk/internal/errors"
	"complaintdesk/internal/model"
	"complaintdesk/internal/repository"
)

// Authorizer answers role based permission checks.
type Authorizer interface {
	Allowed(role, obj, act string) (bool, error)
}

// CreateComplaintInput carries the fields of a new complaint.
type CreateComplaintInput struct {
	Title        string
	Description  string
	DepartmentID uint
	Priority     string
	Anonymous    bool
}

// ComplaintService handles complaint operations.
type ComplaintService interface {
	Create(ctx context.Context, caller *model.User, in CreateComplaintInput) (*model.Complaint, error)
	List(ctx context.Context, caller *model.User) ([]model.ComplaintRecord, error)
	GetAnonymous(ctx context.Context, id string) (*model.ComplaintRecord, error)
	UpdateStatus(ctx context.Context, caller *model.User, id, status string) error
}

type complaintService struct {
	complaintRepo  repository.ComplaintRepository
	departmentRepo repository.DepartmentRepository
	authz          Authorizer
	newID          func() string
}

// NewComplaintService creates a new complaint service.
func NewComplaintService(
	complaintRepo repository.ComplaintRepository,
	departmentRepo repository.DepartmentRepository,
	authz Authorizer,
) ComplaintService {
	return &complaintService{
		complaintRepo:  complaintRepo,
		departmentRepo: departmentRepo,
		authz:          authz,
		newID:          uuid.NewString,
	}
}

// Create stores a new open complaint. Anonymous complaints keep no owner.
func (s *complaintService) Create(ctx context.Context, caller *model.User, in CreateComplaintInput) (*model.Complaint, error) {
	ok, err := s.departmentRepo.Exists(ctx, in.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("check department: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}

	priority := in.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	complaint := &model.Complaint{
		ID:           s.newID(),
		Title:        in.Title,
		Description:  in.Description,
		DepartmentID: in.DepartmentID,
		Priority:     priority,
		Status:       model.StatusOpen,
		Anonymous:    in.Anonymous,
	}
	if !in.Anonymous {
		ownerID := caller.ID
		complaint.UserID = &ownerID
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, fmt.Errorf("create complaint: %w", err)
	}
	return complaint, nil
}

// List returns every complaint for callers allowed to list all, and the
// caller's own complaints otherwise.
func (s *complaintService) List(ctx context.Context, caller *model.User) ([]model.ComplaintRecord, error) {
	all, err := s.authz.Allowed(string(caller.Role), auth.ObjectComplaint, auth.ActionListAll)
	if err != nil {
		return nil, err
	}
	if all {
		return s.complaintRepo.ListAll(ctx)
	}
	return s.complaintRepo.ListByOwner(ctx, caller.ID)
}

// GetAnonymous looks up an anonymous complaint by id. The id is the only
// credential required.
func (s *complaintService) GetAnonymous(ctx context.Context, id string) (*model.ComplaintRecord, error) {
	return s.complaintRepo.FindAnonymous(ctx, id)
}

// UpdateStatus sets the status of a complaint. Neither the complaint's
// existence nor the status value is checked.
func (s *complaintService) UpdateStatus(ctx context.Context, caller *model.User, id, status string) error {
	ok, err := s.authz.Allowed(string(caller.Role), auth.ObjectComplaint, auth.ActionUpdateStatus)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrForbidden
	}

	if _, err := s.complaintRepo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}
