package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"complaintdesk/internal/config"
	"complaintdesk/internal/db"
	apperrors "complaintdesk/internal/errors"
	"complaintdesk/internal/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		DBDriver: config.DriverSQLite,
		DBDSN:    filepath.Join(t.TempDir(), "repo.db") + "?_pragma=foreign_keys(1)",
	}
	gormDB, err := db.Open(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	return gormDB
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openTestDB(t))

	user := &model.User{Email: "a@college.edu", Name: "A", Role: model.RoleStudent, PasswordHash: "digest"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	err := repo.Create(ctx, &model.User{Email: "a@college.edu", Role: model.RoleStudent, PasswordHash: "other"})
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)

	found, err := repo.FindByEmail(ctx, "a@college.edu")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "digest", found.PasswordHash)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@college.edu", byID.Email)

	_, err = repo.FindByEmail(ctx, "missing@college.edu")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	_, err = repo.FindByID(ctx, 4242)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserRepository_CreateIfAbsent(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openTestDB(t))

	created, err := repo.CreateIfAbsent(ctx, &model.User{Email: "admin@college.edu", Role: model.RoleAdmin, PasswordHash: "first"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateIfAbsent(ctx, &model.User{Email: "admin@college.edu", Role: model.RoleAdmin, PasswordHash: "second"})
	require.NoError(t, err)
	assert.False(t, created)

	admin, err := repo.FindByEmail(ctx, "admin@college.edu")
	require.NoError(t, err)
	assert.Equal(t, "first", admin.PasswordHash)
}

func TestDepartmentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewDepartmentRepository(openTestDB(t))

	created, err := repo.EnsureNames(ctx, model.DefaultDepartments)
	require.NoError(t, err)
	assert.Equal(t, len(model.DefaultDepartments), created)

	created, err = repo.EnsureNames(ctx, model.DefaultDepartments)
	require.NoError(t, err)
	assert.Zero(t, created)

	departments, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, departments, len(model.DefaultDepartments))
	for i, name := range model.DefaultDepartments {
		assert.Equal(t, name, departments[i].Name)
	}

	ok, err := repo.Exists(ctx, departments[0].ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestComplaintRepository(t *testing.T) {
	ctx := context.Background()
	gormDB := openTestDB(t)
	users := NewUserRepository(gormDB)
	departments := NewDepartmentRepository(gormDB)
	complaints := NewComplaintRepository(gormDB)

	_, err := departments.EnsureNames(ctx, model.DefaultDepartments)
	require.NoError(t, err)
	depts, err := departments.List(ctx)
	require.NoError(t, err)

	owner := &model.User{Email: "owner@college.edu", Role: model.RoleStudent, PasswordHash: "x"}
	require.NoError(t, users.Create(ctx, owner))

	owned := &model.Complaint{
		ID:           uuid.NewString(),
		Title:        "Wifi down",
		Description:  "No signal on floor 3",
		DepartmentID: depts[1].ID,
		Priority:     model.PriorityHigh,
		Status:       model.StatusOpen,
		UserID:       &owner.ID,
	}
	anonymous := &model.Complaint{
		ID:           uuid.NewString(),
		Title:        "Cold food",
		DepartmentID: depts[3].ID,
		Priority:     model.PriorityMedium,
		Status:       model.StatusOpen,
		Anonymous:    true,
	}
	require.NoError(t, complaints.Create(ctx, owned))
	require.NoError(t, complaints.Create(ctx, anonymous))
	assert.WithinDuration(t, time.Now(), owned.SubmissionDate, time.Minute)

	all, err := complaints.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := complaints.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, owned.ID, mine[0].ID)
	assert.Equal(t, "IT", mine[0].DepartmentName)
	assert.Equal(t, model.PriorityHigh, mine[0].Priority)
	require.NotNil(t, mine[0].UserID)
	assert.Equal(t, owner.ID, *mine[0].UserID)

	record, err := complaints.FindAnonymous(ctx, anonymous.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mess", record.DepartmentName)
	assert.True(t, record.Anonymous)
	assert.Nil(t, record.UserID)

	_, err = complaints.FindAnonymous(ctx, owned.ID)
	assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)
	_, err = complaints.FindAnonymous(ctx, "does-not-exist")
	assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)

	rows, err := complaints.UpdateStatus(ctx, owned.ID, "resolved")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	mine, err = complaints.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "resolved", mine[0].Status)

	rows, err = complaints.UpdateStatus(ctx, "does-not-exist", "resolved")
	require.NoError(t, err)
	assert.Zero(t, rows)
}
