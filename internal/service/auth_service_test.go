package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"complaintdesk/internal/auth"
	apperrors "complaintdesk/internal/errors"
	"complaintdesk/internal/model"
)

func newTestAuthService(repo *MockUserRepository) (AuthService, *auth.JWTService) {
	jwtService := auth.NewJWTService("test-secret", time.Hour)
	return NewAuthService(repo, auth.NewPasswordHasher(bcrypt.MinCost), jwtService), jwtService
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		input         RegisterInput
		setupMock     func(*MockUserRepository)
		expectedRole  model.Role
		expectedError error
	}{
		{
			name:  "successful registration defaults role to student",
			input: RegisterInput{Email: "test@college.edu", Password: "password123", Name: "Test User"},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: model.RoleStudent,
		},
		{
			name:  "arbitrary role is stored as given",
			input: RegisterInput{Email: "staff@college.edu", Password: "password123", Role: "warden"},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: "warden",
		},
		{
			name:  "email already exists",
			input: RegisterInput{Email: "existing@college.edu", Password: "password123"},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(apperrors.ErrEmailTaken)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)
			service, _ := newTestAuthService(mockRepo)

			user, err := service.Register(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.input.Email, user.Email)
				assert.Equal(t, tt.input.Name, user.Name)
				assert.Equal(t, tt.expectedRole, user.Role)
				assert.NotEqual(t, tt.input.Password, user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.input.Password)))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register_StoreFailure(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("database is locked"))
	service, _ := newTestAuthService(mockRepo)

	_, err := service.Register(context.Background(), RegisterInput{Email: "a@college.edu", Password: "pw"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	digest, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &model.User{ID: 7, Email: "test@college.edu", Role: model.RoleStudent, PasswordHash: string(digest)}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@college.edu",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@college.edu").Return(stored, nil)
			},
		},
		{
			name:     "wrong password",
			email:    "test@college.edu",
			password: "password124",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@college.edu").Return(stored, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "notfound@college.edu",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "notfound@college.edu").Return(nil, apperrors.ErrUserNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)
			service, jwtService := newTestAuthService(mockRepo)

			token, user, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
				subject, err := jwtService.Verify(token)
				require.NoError(t, err)
				assert.Equal(t, tt.email, subject)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_ResolveUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "known@college.edu").Return(&model.User{ID: 3, Email: "known@college.edu"}, nil)
	mockRepo.On("FindByEmail", mock.Anything, "gone@college.edu").Return(nil, apperrors.ErrUserNotFound)
	service, _ := newTestAuthService(mockRepo)

	user, err := service.ResolveUser(context.Background(), "known@college.edu")
	require.NoError(t, err)
	assert.Equal(t, uint(3), user.ID)

	_, err = service.ResolveUser(context.Background(), "gone@college.edu")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
