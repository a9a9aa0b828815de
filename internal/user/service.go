package user

import (
	"errors"
	"net/http"

	"github.com/codingtracker/backend/internal/apperrors"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new account. Username and email are unique across all
// users; the stored password is a bcrypt digest and is cleared from the
// returned identity.
func (u *UserService) Register(user User) (*User, error) {
	if user.Username == "" || user.Email == "" || user.Password == "" {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "Username, email and password required", nil)
	}

	created, err := u.repo.CreateUser(user.Username, user.Email, user.Password)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			return nil, apperrors.NewAppError(http.StatusBadRequest, "User already exists", err)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "Registration failed", err)
	}

	created.Password = ""
	return created, nil
}

// Login resolves the identifier (username or email), verifies the password
// and issues a signed token carrying the user's id and username.
func (u *UserService) Login(req LoginRequest) (*TokenResponse, error) {
	userRetrieved, err := u.repo.ValidateUser(req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperrors.NewAppError(http.StatusUnauthorized, "User not found", err)
		}
		if errors.Is(err, ErrInvalidPassword) {
			return nil, apperrors.NewAppError(http.StatusUnauthorized, "Invalid credentials", err)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "Login failed", err)
	}

	token, errJWT := GenerateJWT(userRetrieved.ID, userRetrieved.Username)
	if errJWT != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error creating jwt token", errJWT)
	}

	return &TokenResponse{Token: token, Username: userRetrieved.Username}, nil
}
