package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pulse/internal/delivery/http/response"
	"pulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	ScheduleUC usecase.ScheduleUsecase
	Logger     *slog.Logger
}

// AdminHandler holds dependencies for operator-facing handlers
type AdminHandler struct {
	scheduleUC usecase.ScheduleUsecase
	logger     *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		scheduleUC: params.ScheduleUC,
		logger:     params.Logger,
	}
}

// ResendRequest represents the request body for a manual notification resend
type ResendRequest struct {
	PatientID      string `json:"patient_id" validate:"required"`
	SurveyObjectID string `json:"survey_object_id" validate:"required"`
}

// Resend pushes one survey to a participant immediately
func (h *AdminHandler) Resend(c echo.Context) error {
	var req ResendRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resend input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.scheduleUC.Resend(c.Request().Context(), req.PatientID, req.SurveyObjectID, time.Now().UTC()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification resent successfully")
}
