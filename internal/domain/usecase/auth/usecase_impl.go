package auth

import (
	"errors"
	"fmt"
	"time"

	"pesisir-api/internal/domain/entity"
	"pesisir-api/internal/domain/gateway/db"
	"pesisir-api/internal/domain/model"
	"pesisir-api/pkg/log"
	"pesisir-api/pkg/msg"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type authUseCase struct {
	userGateway db.UserGateway
	jwtSecret   []byte
	jwtExpiry   time.Duration
	now         func() time.Time
}

// NewAuthUseCase wires the account service. jwtExpiry defaults to seven days.
func NewAuthUseCase(userGateway db.UserGateway, jwtSecret string, jwtExpiry time.Duration) UseCase {
	if jwtExpiry <= 0 {
		jwtExpiry = 7 * 24 * time.Hour
	}
	return &authUseCase{
		userGateway: userGateway,
		jwtSecret:   []byte(jwtSecret),
		jwtExpiry:   jwtExpiry,
		now:         time.Now,
	}
}

// Register creates an account with a bcrypt-hashed password.
func (uc *authUseCase) Register(request *model.RegisterRequest) (*model.RegisterResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	fullName := request.FullName
	if fullName == "" {
		fullName = request.Username
	}

	user := &entity.User{
		Username: request.Username,
		Email:    request.Email,
		Password: string(hashed),
		FullName: fullName,
	}

	if err := uc.userGateway.Create(user); err != nil {
		return nil, err
	}

	log.Info("User registered", zap.String("username", user.Username))
	return &model.RegisterResponse{
		Message: msg.GetMessage("auth.register.success"),
		UserID:  user.ID,
	}, nil
}

// Login accepts a username or email plus password and returns a signed token.
func (uc *authUseCase) Login(request *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := uc.userGateway.FindByUsernameOrEmail(request.Username)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &model.LoginResponse{
		Message: msg.GetMessage("auth.login.success"),
		Token:   token,
		User:    user,
	}, nil
}

// Profile returns the account behind an authenticated request.
func (uc *authUseCase) Profile(userID uint) (*entity.User, error) {
	return uc.userGateway.FindByID(userID)
}

// UpdateProfile applies only the fields present in the request.
func (uc *authUseCase) UpdateProfile(userID uint, request *model.UpdateProfileRequest) (*entity.User, error) {
	if !request.HasUpdates() {
		return nil, ErrNothingToUpdate
	}

	user, err := uc.userGateway.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if request.FullName != nil {
		user.FullName = *request.FullName
	}
	if request.Email != nil {
		user.Email = *request.Email
	}
	if request.Institution != nil {
		user.Institution = *request.Institution
	}
	if request.FieldOfStudy != nil {
		user.FieldOfStudy = *request.FieldOfStudy
	}
	if request.Phone != nil {
		user.Phone = *request.Phone
	}
	if request.Bio != nil {
		user.Bio = *request.Bio
	}
	if request.ProfilePicture != nil {
		user.ProfilePicture = *request.ProfilePicture
	}

	if err := uc.userGateway.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

// ChangePassword verifies the current password before storing the new hash.
func (uc *authUseCase) ChangePassword(userID uint, request *model.ChangePasswordRequest) error {
	user, err := uc.userGateway.FindByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return uc.userGateway.UpdatePassword(userID, string(hashed))
}

// ParseToken validates a signed token and returns its claims.
func (uc *authUseCase) ParseToken(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return uc.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func (uc *authUseCase) generateToken(user *entity.User) (string, error) {
	now := uc.now()
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(uc.jwtExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(uc.jwtSecret)
}
