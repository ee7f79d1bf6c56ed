package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/delivery/http/validator"
	mockUC "pulse/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceHandler(t *testing.T) (*DeviceHandler, *mockUC.MockDeviceUsecase, *mockUC.MockScheduleUsecase, *echo.Echo) {
	deviceUC := mockUC.NewMockDeviceUsecase(t)
	scheduleUC := mockUC.NewMockScheduleUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	h := &DeviceHandler{
		deviceUC:   deviceUC,
		scheduleUC: scheduleUC,
		logger:     logger,
	}

	e := echo.New()
	e.Validator = validator.New()

	return h, deviceUC, scheduleUC, e
}

func TestDeviceHandler_SetFCMToken(t *testing.T) {
	h, deviceUC, _, e := createTestDeviceHandler(t)

	deviceUC.EXPECT().SetFCMToken(mock.Anything, "patient-1", "token-1", mock.Anything).Return(nil)

	body := `{"patient_id":"patient-1","fcm_token":"token-1"}`
	req := httptest.NewRequest(http.MethodPost, "/device/fcm-token", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.SetFCMToken(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeviceHandler_SetFCMToken_MissingPatientID(t *testing.T) {
	h, deviceUC, _, e := createTestDeviceHandler(t)

	body := `{"fcm_token":"token-1"}`
	req := httptest.NewRequest(http.MethodPost, "/device/fcm-token", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.SetFCMToken(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	deviceUC.AssertNotCalled(t, "SetFCMToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeviceHandler_Checkin(t *testing.T) {
	h, _, scheduleUC, e := createTestDeviceHandler(t)

	scheduleID := uuid.New()
	scheduleUC.EXPECT().Checkin(mock.Anything, scheduleID, mock.Anything).Return(nil)

	body := `{"schedule_id":"` + scheduleID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/device/checkin", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Checkin(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeviceHandler_Checkin_UnknownSchedule(t *testing.T) {
	h, _, scheduleUC, e := createTestDeviceHandler(t)

	scheduleID := uuid.New()
	scheduleUC.EXPECT().Checkin(mock.Anything, scheduleID, mock.Anything).
		Return(domainerrors.ErrScheduleNotFound)

	body := `{"schedule_id":"` + scheduleID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/device/checkin", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Checkin(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeviceHandler_AvailableSurveys(t *testing.T) {
	h, deviceUC, _, e := createTestDeviceHandler(t)

	deviceUC.EXPECT().AvailableSurveys(mock.Anything, "patient-1", mock.Anything).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/device/surveys?patient_id=patient-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.AvailableSurveys(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeviceHandler_AvailableSurveys_MissingPatientID(t *testing.T) {
	h, deviceUC, _, e := createTestDeviceHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/device/surveys", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.AvailableSurveys(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	deviceUC.AssertNotCalled(t, "AvailableSurveys", mock.Anything, mock.Anything, mock.Anything)
}
