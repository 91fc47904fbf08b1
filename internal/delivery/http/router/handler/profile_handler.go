// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"nutribalance/internal/delivery/http/response"
	"nutribalance/internal/domain/entity"
	"nutribalance/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for the body-metrics handlers.
type ProfileHandler struct {
	uc     usecase.TrackerUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.TrackerUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// updateProfileRequest is a partial update; absent fields keep their value.
type updateProfileRequest struct {
	WeightKg      *float64 `json:"weight_kg" validate:"omitempty,gt=0"`
	HeightCm      *float64 `json:"height_cm" validate:"omitempty,gt=0"`
	Age           *int     `json:"age" validate:"omitempty,gt=0"`
	Gender        *string  `json:"gender" validate:"omitempty,oneof=male female"`
	ActivityLevel *float64 `json:"activity_level" validate:"omitempty,gt=0"`
	Goal          *string  `json:"goal" validate:"omitempty,oneof=loss maintenance gain"`
}

// GetProfile returns the current body-metrics profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.uc.Profile(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// UpdateProfile applies a partial update to the profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateProfileInput{
		WeightKg:      req.WeightKg,
		HeightCm:      req.HeightCm,
		Age:           req.Age,
		ActivityLevel: req.ActivityLevel,
	}
	if req.Gender != nil {
		gender := entity.Gender(*req.Gender)
		input.Gender = &gender
	}
	if req.Goal != nil {
		goal := entity.Goal(*req.Goal)
		input.Goal = &goal
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}
