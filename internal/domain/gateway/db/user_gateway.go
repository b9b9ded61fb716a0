package db

import (
	"errors"

	"pesisir-api/internal/domain/entity"
)

var (
	// ErrDuplicate is returned when a unique constraint on username or email fails.
	ErrDuplicate = errors.New("username or email already registered")
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
)

// UserGateway defines the persistence operations for accounts
type UserGateway interface {
	Create(user *entity.User) error
	FindByUsernameOrEmail(login string) (*entity.User, error)
	FindByID(id uint) (*entity.User, error)
	Update(user *entity.User) error
	UpdatePassword(id uint, hashedPassword string) error
}
