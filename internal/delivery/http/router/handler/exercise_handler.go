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

// ExerciseHandler holds dependencies for the exercise-log handlers.
type ExerciseHandler struct {
	uc     usecase.TrackerUsecase
	logger *slog.Logger
}

// NewExerciseHandler is the constructor for ExerciseHandler, injected by Fx.
func NewExerciseHandler(uc usecase.TrackerUsecase, logger *slog.Logger) *ExerciseHandler {
	return &ExerciseHandler{
		uc:     uc,
		logger: logger,
	}
}

type recordExerciseRequest struct {
	TypeID      string  `json:"type_id" validate:"required"`
	DurationMin float64 `json:"duration_minutes" validate:"required,gt=0"`
}

// ListExercises returns the exercise log, newest first.
func (h *ExerciseHandler) ListExercises(c echo.Context) error {
	exercises, err := h.uc.Exercises(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, exercises, "Exercises retrieved successfully")
}

// RecordExercise logs a training session; the burn is derived from the MET
// value of the exercise type and the current body weight.
func (h *ExerciseHandler) RecordExercise(c echo.Context) error {
	var req recordExerciseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid exercise input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	exercise, err := h.uc.RecordExercise(c.Request().Context(), &usecase.RecordExerciseInput{
		TypeID:      req.TypeID,
		DurationMin: req.DurationMin,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, exercise, "Exercise recorded successfully")
}

// DeleteExercise removes a logged session. Unknown ids are a silent no-op.
func (h *ExerciseHandler) DeleteExercise(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid exercise id")
	}

	if err := h.uc.DeleteExercise(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Exercise deleted successfully")
}
