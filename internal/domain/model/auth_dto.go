package model

import "pesisir-api/internal/domain/entity"

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name"`
}

// RegisterResponse confirms a successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}

// LoginRequest carries the credentials; Username accepts username or email.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the signed token and the account profile.
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *entity.User `json:"user"`
}

// UpdateProfileRequest updates only the fields present in the payload.
type UpdateProfileRequest struct {
	FullName       *string `json:"full_name"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Institution    *string `json:"institution"`
	FieldOfStudy   *string `json:"field_of_study"`
	Phone          *string `json:"phone"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profile_picture"`
}

// HasUpdates reports whether at least one field is present.
func (r *UpdateProfileRequest) HasUpdates() bool {
	return r.FullName != nil || r.Email != nil || r.Institution != nil ||
		r.FieldOfStudy != nil || r.Phone != nil || r.Bio != nil || r.ProfilePicture != nil
}

// ChangePasswordRequest rotates the account password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// MessageResponse is a plain confirmation payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error payload shape shared by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ProfileResponse wraps the authenticated account profile.
type ProfileResponse struct {
	User *entity.User `json:"user"`
}

// UpdateProfileResponse confirms a profile update and echoes the new state.
type UpdateProfileResponse struct {
	Message string       `json:"message"`
	User    *entity.User `json:"user"`
}
