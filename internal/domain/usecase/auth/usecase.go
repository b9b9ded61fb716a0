package auth

import (
	"errors"

	"pesisir-api/internal/domain/entity"
	"pesisir-api/internal/domain/model"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidCredentials is returned when the login or password is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrWrongPassword is returned when the current password does not match.
	ErrWrongPassword = errors.New("current password does not match")
	// ErrNothingToUpdate is returned for an empty profile update.
	ErrNothingToUpdate = errors.New("no profile fields to update")
)

// Claims is the JWT payload carried by authenticated requests.
type Claims struct {
	UserID   uint   `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// UseCase implements the account service.
type UseCase interface {
	Register(request *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(request *model.LoginRequest) (*model.LoginResponse, error)
	Profile(userID uint) (*entity.User, error)
	UpdateProfile(userID uint, request *model.UpdateProfileRequest) (*entity.User, error)
	ChangePassword(userID uint, request *model.ChangePasswordRequest) error
	// ParseToken validates a signed token and returns its claims.
	ParseToken(token string) (*Claims, error)
}
