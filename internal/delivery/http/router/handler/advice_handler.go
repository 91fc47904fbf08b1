package handler

import (
	"log/slog"
	"net/http"

	"nutribalance/internal/delivery/http/response"
	"nutribalance/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdviceHandler holds dependencies for the coaching handlers.
type AdviceHandler struct {
	uc     usecase.AdviceUsecase
	logger *slog.Logger
}

// NewAdviceHandler is the constructor for AdviceHandler, injected by Fx.
func NewAdviceHandler(uc usecase.AdviceUsecase, logger *slog.Logger) *AdviceHandler {
	return &AdviceHandler{
		uc:     uc,
		logger: logger,
	}
}

type askAdviceRequest struct {
	Question string `json:"question" validate:"required"`
}

type analyzeMealPhotoRequest struct {
	ImageBase64 string `json:"image_base64" validate:"required"`
	MimeType    string `json:"mime_type"`
}

// adviceReply is the response body for both coaching endpoints.
type adviceReply struct {
	Reply string `json:"reply"`
}

// Ask forwards a coaching question to the advisor.
func (h *AdviceHandler) Ask(c echo.Context) error {
	var req askAdviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid advice input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	reply, err := h.uc.Ask(c.Request().Context(), &usecase.AskAdviceInput{
		Question: req.Question,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, adviceReply{Reply: reply}, "Advice retrieved successfully")
}

// AnalyzeMealPhoto forwards a base64 encoded meal photo for estimation.
func (h *AdviceHandler) AnalyzeMealPhoto(c echo.Context) error {
	var req analyzeMealPhotoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid photo input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	reply, err := h.uc.AnalyzeMealPhoto(c.Request().Context(), &usecase.AnalyzeMealPhotoInput{
		ImageBase64: req.ImageBase64,
		MimeType:    req.MimeType,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, adviceReply{Reply: reply}, "Photo analyzed successfully")
}
