package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pulse/internal/delivery/http/response"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC   usecase.DeviceUsecase
	ScheduleUC usecase.ScheduleUsecase
	Logger     *slog.Logger
}

// DeviceHandler holds dependencies for device-facing handlers
type DeviceHandler struct {
	deviceUC   usecase.DeviceUsecase
	scheduleUC usecase.ScheduleUsecase
	logger     *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC:   params.DeviceUC,
		scheduleUC: params.ScheduleUC,
		logger:     params.Logger,
	}
}

// SetFCMTokenRequest represents the request body for registering a push token.
// An empty fcm_token unregisters the participant's tokens.
type SetFCMTokenRequest struct {
	PatientID string `json:"patient_id" validate:"required"`
	FCMToken  string `json:"fcm_token"`
}

// CheckinRequest represents the request body for acknowledging a notification
type CheckinRequest struct {
	ScheduleID string `json:"schedule_id" validate:"required,uuid"`
}

// SetFCMToken handles push token registration
func (h *DeviceHandler) SetFCMToken(c echo.Context) error {
	var req SetFCMTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.deviceUC.SetFCMToken(c.Request().Context(), req.PatientID, req.FCMToken, time.Now().UTC()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "FCM token updated successfully")
}

// Checkin handles a device acknowledging a delivered notification
func (h *DeviceHandler) Checkin(c echo.Context) error {
	var req CheckinRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkin input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	scheduleID, err := uuid.Parse(req.ScheduleID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid schedule ID")
	}

	if err := h.scheduleUC.Checkin(c.Request().Context(), scheduleID, time.Now().UTC()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Checkin recorded successfully")
}

// AvailableSurveys handles the device's schedule poll
func (h *DeviceHandler) AvailableSurveys(c echo.Context) error {
	patientID := c.QueryParam("patient_id")
	if patientID == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "patient_id is required")
	}

	windows, err := h.deviceUC.AvailableSurveys(c.Request().Context(), patientID, time.Now().UTC())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, windows, "Available surveys retrieved successfully")
}
