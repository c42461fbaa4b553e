package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "complaintdesk/internal/errors"
	"complaintdesk/internal/model"
)

const complaintRecordColumns = "complaints.id, complaints.title, complaints.description, " +
	"complaints.department_id, departments.name AS department_name, complaints.priority, " +
	"complaints.status, complaints.anonymous, complaints.user_id, complaints.submission_date"

// ComplaintRepository defines complaint persistence operations.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *model.Complaint) error
	ListAll(ctx context.Context) ([]model.ComplaintRecord, error)
	ListByOwner(ctx context.Context, userID uint) ([]model.ComplaintRecord, error)
	FindAnonymous(ctx context.Context, id string) (*model.ComplaintRecord, error)
	UpdateStatus(ctx context.Context, id, status string) (int64, error)
}

type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new complaint repository.
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

// Create inserts a complaint without touching its associations.
func (r *complaintRepository) Create(ctx context.Context, complaint *model.Complaint) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(complaint).Error
}

// records selects complaints joined with their department name.
func (r *complaintRepository) records(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Complaint{}).
		Select(complaintRecordColumns).
		Joins("JOIN departments ON departments.id = complaints.department_id").
		Order("complaints.submission_date, complaints.id")
}

// ListAll returns every complaint.
func (r *complaintRepository) ListAll(ctx context.Context) ([]model.ComplaintRecord, error) {
	records := []model.ComplaintRecord{}
	if err := r.records(ctx).Scan(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListByOwner returns the complaints owned by userID. Anonymous complaints
// have no owner and never match.
func (r *complaintRepository) ListByOwner(ctx context.Context, userID uint) ([]model.ComplaintRecord, error) {
	records := []model.ComplaintRecord{}
	if err := r.records(ctx).Where("complaints.user_id = ?", userID).Scan(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindAnonymous returns the anonymous complaint with id.
func (r *complaintRepository) FindAnonymous(ctx context.Context, id string) (*model.ComplaintRecord, error) {
	var record model.ComplaintRecord
	res := r.records(ctx).
		Where("complaints.id = ? AND complaints.anonymous = ?", id, true).
		Limit(1).
		Scan(&record)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrComplaintNotFound
	}
	return &record, nil
}

// UpdateStatus sets the status of complaint id and returns the number of
// rows changed.
func (r *complaintRepository) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Complaint{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}
