package handler

import (
	"log/slog"
	"net/http"

	"nutribalance/internal/delivery/http/response"
	"nutribalance/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SummaryHandler serves the derived energy-balance snapshot and the static
// reference tables.
type SummaryHandler struct {
	uc     usecase.TrackerUsecase
	logger *slog.Logger
}

// NewSummaryHandler is the constructor for SummaryHandler, injected by Fx.
func NewSummaryHandler(uc usecase.TrackerUsecase, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetSummary recomputes the energy-balance totals from current state.
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	summary, err := h.uc.Summary(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Summary computed successfully")
}

// SearchFoods lists the food reference entries, optionally filtered by a
// case-insensitive substring query.
func (h *SummaryHandler) SearchFoods(c echo.Context) error {
	foods, err := h.uc.SearchFoods(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, foods, "Foods retrieved successfully")
}

// ListExerciseTypes lists the exercise reference entries.
func (h *SummaryHandler) ListExerciseTypes(c echo.Context) error {
	exercises, err := h.uc.ExerciseTypes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, exercises, "Exercise types retrieved successfully")
}

// ListActivityLevels lists the activity multipliers for profile selection.
func (h *SummaryHandler) ListActivityLevels(c echo.Context) error {
	levels, err := h.uc.ActivityLevels(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, levels, "Activity levels retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
