package handler

import (
	"log/slog"
	"net/http"

	"nutribalance/internal/delivery/http/response"
	"nutribalance/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MealHandler holds dependencies for the meal-log handlers.
type MealHandler struct {
	uc     usecase.TrackerUsecase
	logger *slog.Logger
}

// NewMealHandler is the constructor for MealHandler, injected by Fx.
func NewMealHandler(uc usecase.TrackerUsecase, logger *slog.Logger) *MealHandler {
	return &MealHandler{
		uc:     uc,
		logger: logger,
	}
}

type recordMealRequest struct {
	Food     string  `json:"food" validate:"required"`
	Quantity float64 `json:"quantity" validate:"required,gt=0"`
}

// ListMeals returns the meal log, newest first.
func (h *MealHandler) ListMeals(c echo.Context) error {
	meals, err := h.uc.Meals(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, meals, "Meals retrieved successfully")
}

// RecordMeal resolves the named food against the reference table and logs a
// serving of it.
func (h *MealHandler) RecordMeal(c echo.Context) error {
	var req recordMealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	meal, err := h.uc.RecordMeal(c.Request().Context(), &usecase.RecordMealInput{
		Food:     req.Food,
		Quantity: req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, meal, "Meal recorded successfully")
}

// DeleteMeal removes a logged meal. Unknown ids are a silent no-op.
func (h *MealHandler) DeleteMeal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid meal id")
	}

	if err := h.uc.DeleteMeal(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Meal deleted successfully")
}
