package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"complaintdesk/internal/model"
)

// DepartmentRepository defines department persistence operations.
type DepartmentRepository interface {
	List(ctx context.Context) ([]model.Department, error)
	Exists(ctx context.Context, id uint) (bool, error)
	EnsureNames(ctx context.Context, names []string) (int, error)
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository.
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

// List returns every department ordered by id.
func (r *departmentRepository) List(ctx context.Context) ([]model.Department, error) {
	departments := []model.Department{}
	if err := r.db.WithContext(ctx).Order("id").Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

// Exists reports whether a department with id exists.
func (r *departmentRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Department{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// EnsureNames inserts the departments that do not exist yet, in order, and
// returns how many were created.
func (r *departmentRepository) EnsureNames(ctx context.Context, names []string) (int, error) {
	created := 0
	for _, name := range names {
		res := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(&model.Department{Name: name})
		if res.Error != nil {
			return created, res.Error
		}
		created += int(res.RowsAffected)
	}
	return created, nil
}
