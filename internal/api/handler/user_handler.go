package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskmate/taskmate-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateProfileRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Theme         *string `json:"theme" validate:"omitempty,oneof=light dark"`
	Notifications *bool   `json:"notifications"`
	Language      *string `json:"language"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

type uploadPictureRequest struct {
	ProfilePicture string `json:"profilePicture" validate:"required"`
}

// Profile returns the authenticated user, password scrubbed.
func (h *UserHandler) Profile(c echo.Context) error {
	userID, err := principalID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile mutates the supplied profile fields only. Password and
// picture never travel through this endpoint.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := principalID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), userID, ports.UpdateProfileInput{
		Name:          req.Name,
		Email:         req.Email,
		Theme:         req.Theme,
		Notifications: req.Notifications,
		Language:      req.Language,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ChangePassword verifies the current password before applying the new one.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, err := principalID(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userService.ChangePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "password changed"})
}

// UploadProfilePicture stores a data-URL encoded avatar.
func (h *UserHandler) UploadProfilePicture(c echo.Context) error {
	userID, err := principalID(c)
	if err != nil {
		return err
	}

	var req uploadPictureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.UpdateProfilePicture(c.Request().Context(), userID, req.ProfilePicture)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteProfilePicture clears the stored avatar.
func (h *UserHandler) DeleteProfilePicture(c echo.Context) error {
	userID, err := principalID(c)
	if err != nil {
		return err
	}

	if err := h.userService.DeleteProfilePicture(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "profile picture removed"})
}
