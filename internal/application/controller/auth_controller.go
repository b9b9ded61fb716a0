package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pesisir-api/internal/application/middleware"
	"pesisir-api/internal/domain/gateway/db"
	"pesisir-api/internal/domain/model"
	"pesisir-api/internal/domain/usecase/auth"
	"pesisir-api/pkg/msg"
)

type AuthController struct {
	api     *echo.Group
	useCase auth.UseCase
}

func NewAuthController(api *echo.Group, useCase auth.UseCase) *AuthController {
	return &AuthController{api: api, useCase: useCase}
}

// InitAuthRoutes initializes account routes
func (controller *AuthController) InitAuthRoutes() {
	controller.api.POST("/register", controller.Register)
	controller.api.POST("/login", controller.Login)

	protected := controller.api.Group("", middleware.RequireToken(controller.useCase))
	protected.GET("/profile", controller.GetProfile)
	protected.PUT("/profile", controller.UpdateProfile)
	protected.POST("/change-password", controller.ChangePassword)
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Account data"
// @Success 201 {object} model.RegisterResponse "Account created"
// @Failure 400 {object} model.ErrorResponse "Invalid payload or duplicate account"
// @Failure 500 {object} model.ErrorResponse "Server error"
// @Router /register [post]
func (controller *AuthController) Register(c echo.Context) error {
	request := new(model.RegisterRequest)
	if err := c.Bind(request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg.GetMessage("auth.error.missing-register-fields"),
		})
	}

	if err := c.Validate(request); err != nil {
		if failedField(err, "Password", "min") {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": msg.GetMessage("auth.error.password-too-short"),
			})
		}
		if failedField(err, "Email", "email") {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": msg.GetMessage("auth.error.invalid-email"),
			})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg.GetMessage("auth.error.missing-register-fields"),
		})
	}

	response, err := controller.useCase.Register(request)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": msg.GetMessage("auth.error.duplicate-user"),
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": msg.GetMessage("auth.error.server"),
		})
	}

	return c.JSON(http.StatusCreated, response)
}

// Login godoc
// @Summary Sign in with username or email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Credentials"
// @Success 200 {object} model.LoginResponse "Signed token and profile"
// @Failure 400 {object} model.ErrorResponse "Missing credentials"
// @Failure 401 {object} model.ErrorResponse "Wrong username or password"
// @Failure 500 {object} model.ErrorResponse "Server error"
// @Router /login [post]
func (controller *AuthController) Login(c echo.Context) error {
	request := new(model.LoginRequest)
	if err := c.Bind(request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg.GetMessage("auth.error.missing-login-fields"),
		})
	}

	if err := c.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg.GetMessage("auth.error.missing-login-fields"),
		})
	}

	response, err := controller.useCase.Login(request)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"error": msg.GetMessage("auth.error.invalid-credentials"),
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": msg.GetMessage("auth.error.server"),
		})
	}

	return c.JSON(http.StatusOK, response)
}

// GetProfile godoc
// @Summary Get the authenticated account profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ProfileResponse "Account profile"
// @Failure 401 {object} model.ErrorResponse "Missing token"
// @Failure 403 {object} model.ErrorResponse "Invalid token"
// @Failure 404 {object} model.ErrorResponse "Account not found"
// @Router /profile [get]
func (controller *AuthController) GetProfile(c echo.Context) error {
	user, err := controller.useCase.Profile(middleware.UserID(c))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": msg.GetMessage("auth.error.user-not-found"),
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": msg.GetMessage("auth.error.server"),
		})
	}

	return c.JSON(http.StatusOK, model.ProfileResponse{User: user})
}

// UpdateProfile godoc
// @Summary Update profile fields
// @Description Only the fields present in the payload change; omitted fields keep their value.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} model.UpdateProfileResponse "Updated profile"
// @Failure 400 {object} model.ErrorResponse "Empty payload or duplicate email"
// @Failure 404 {object} model.ErrorResponse "Account not found"
// @Failure 500 {object} model.ErrorResponse "Server error"
// @Router /profile [put]
func (controller *AuthController) UpdateProfile(c echo.Context) error {
	request := new(model.UpdateProfileRequest)
	if err := c.Bind(request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg.GetMessage("auth.error.nothing-to-update"),
		})
	}

	if err := c.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg.GetMessage("auth.error.invalid-email"),
		})
	}

	user, err := controller.useCase.UpdateProfile(middleware.UserID(c), request)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNothingToUpdate):
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": msg.GetMessage("auth.error.nothing-to-update"),
			})
		case errors.Is(err, db.ErrDuplicate):
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": msg.GetMessage("auth.error.duplicate-email"),
			})
		case errors.Is(err, db.ErrNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": msg.GetMessage("auth.error.user-not-found"),
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": msg.GetMessage("auth.error.server"),
		})
	}

	return c.JSON(http.StatusOK, model.UpdateProfileResponse{
		Message: msg.GetMessage("auth.profile.updated"),
		User:    user,
	})
}

// ChangePassword godoc
// @Summary Rotate the account password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} model.MessageResponse "Password changed"
// @Failure 400 {object} model.ErrorResponse "Missing fields or weak new password"
// @Failure 401 {object} model.ErrorResponse "Current password does not match"
// @Failure 404 {object} model.ErrorResponse "Account not found"
// @Router /change-password [post]
func (controller *AuthController) ChangePassword(c echo.Context) error {
	request := new(model.ChangePasswordRequest)
	if err := c.Bind(request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg.GetMessage("auth.error.missing-password-fields"),
		})
	}

	if err := c.Validate(request); err != nil {
		if failedField(err, "NewPassword", "min") {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": msg.GetMessage("auth.error.new-password-too-short"),
			})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg.GetMessage("auth.error.missing-password-fields"),
		})
	}

	if err := controller.useCase.ChangePassword(middleware.UserID(c), request); err != nil {
		switch {
		case errors.Is(err, auth.ErrWrongPassword):
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"error": msg.GetMessage("auth.error.wrong-password"),
			})
		case errors.Is(err, db.ErrNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": msg.GetMessage("auth.error.user-not-found"),
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": msg.GetMessage("auth.error.server"),
		})
	}

	return c.JSON(http.StatusOK, model.MessageResponse{
		Message: msg.GetMessage("auth.password.changed"),
	})
}
