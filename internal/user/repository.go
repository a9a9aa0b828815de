package user

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/codingtracker/backend/pkg/db"
)

var (
	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

type UserRepository interface {
	CreateUser(username, email, password string) (*User, error)
	ValidateUser(identifier, password string) (*User, error)
}

type GormUserRepository struct{}

func NewUserRepository() *GormUserRepository {
	return &GormUserRepository{}
}

func (r *GormUserRepository) CreateUser(username, email, password string) (*User, error) {
	var exists User
	result := db.DB.Where("username = ? OR email = ?", username, email).First(&exists)
	if result.Error == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return nil, err
	}
	newUser := User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}

	if err := db.DB.Create(&newUser).Error; err != nil {
		// Two concurrent registrations can both pass the lookup above;
		// the unique indexes settle the race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return &newUser, nil
}

// ValidateUser resolves a user by username or email and checks the password
// against the stored bcrypt digest.
func (r *GormUserRepository) ValidateUser(identifier, password string) (*User, error) {
	var u User
	result := db.DB.Where("username = ? OR email = ?", identifier, identifier).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}

	return &u, nil
}
