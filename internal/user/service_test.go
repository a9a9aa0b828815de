package user

import (
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codingtracker/backend/internal/apperrors"
)

// mockGenerateJWT is a helper to override GenerateJWT in tests
var mockGenerateJWT func(id uint, username string) (string, error)

func TestMain(m *testing.M) {
	// Patch GenerateJWT for all tests
	orig := GenerateJWT
	GenerateJWT = func(id uint, username string) (string, error) {
		if mockGenerateJWT != nil {
			return mockGenerateJWT(id, username)
		}
		return orig(id, username)
	}
	code := m.Run()
	GenerateJWT = orig
	os.Exit(code)
}

func TestUserService_Register(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	created := User{ID: 1, Username: "ann", Email: "ann@x.com", Password: "$2a$14$digest"}
	mockRepo.On("CreateUser", "ann", "ann@x.com", "p").Return(&created, nil)

	result, err := service.Register(User{Username: "ann", Email: "ann@x.com", Password: "p"})
	assert.NoError(t, err)
	assert.Equal(t, uint(1), result.ID)
	assert.Equal(t, "ann", result.Username)
	assert.Empty(t, result.Password, "password digest must not leave the service")
	mockRepo.AssertExpectations(t)
}

func TestUserService_Register_Duplicate(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	mockRepo.On("CreateUser", "ann", "other@x.com", "p").Return(nil, ErrUserExists)

	_, err := service.Register(User{Username: "ann", Email: "other@x.com", Password: "p"})
	assert.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, "User already exists", appErr.Message)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Register_MissingFields(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	_, err := service.Register(User{Username: "ann", Password: "p"})
	assert.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	mockRepo.AssertNotCalled(t, "CreateUser")
}

func TestUserService_Login(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	stored := User{ID: 2, Username: "foo", Email: "foo@x.com"}
	mockRepo.On("ValidateUser", "foo@x.com", "bar").Return(&stored, nil)
	mockGenerateJWT = func(id uint, username string) (string, error) { return "tok456", nil }
	defer func() { mockGenerateJWT = nil }()

	resp, err := service.Login(LoginRequest{Identifier: "foo@x.com", Password: "bar"})
	assert.NoError(t, err)
	assert.Equal(t, "tok456", resp.Token)
	assert.Equal(t, "foo", resp.Username)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	mockRepo.On("ValidateUser", "foo", "nope").Return(nil, ErrInvalidPassword)

	resp, err := service.Login(LoginRequest{Identifier: "foo", Password: "nope"})
	assert.Error(t, err)
	assert.Nil(t, resp, "no token may be issued on a failed login")
	appErr, ok := err.(*apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Login_UnknownIdentifier(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	mockRepo.On("ValidateUser", "ghost", "p").Return(nil, ErrUserNotFound)

	_, err := service.Login(LoginRequest{Identifier: "ghost", Password: "p"})
	assert.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	assert.Equal(t, "User not found", appErr.Message)
	mockRepo.AssertExpectations(t)
}
