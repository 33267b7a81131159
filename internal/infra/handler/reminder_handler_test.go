package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/montagezeit/reminder-engine/internal/app"
	"github.com/montagezeit/reminder-engine/internal/domain"
	"github.com/montagezeit/reminder-engine/internal/infra/handler"
	"github.com/montagezeit/reminder-engine/internal/infra/location"
)

type handlerMocks struct {
	settings  *app.MockSettingsProvider
	scheduler *app.MockJobScheduler
	limiter   *app.MockPostponeLimiter
	alerts    *app.MockAlertDispatcher
}

type testClock struct {
	now time.Time
}

func (c testClock) Now() time.Time {
	return c.now
}

func setupTestRouter(t *testing.T, ctrl *gomock.Controller, provider app.PositionProvider) (*gin.Engine, *handlerMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mocks := &handlerMocks{
		settings:  app.NewMockSettingsProvider(ctrl),
		scheduler: app.NewMockJobScheduler(ctrl),
		limiter:   app.NewMockPostponeLimiter(ctrl),
		alerts:    app.NewMockAlertDispatcher(ctrl),
	}

	clock := testClock{now: time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)}

	if provider == nil {
		provider = location.NewUnavailableProvider()
	}

	orchestrator := app.NewReminderOrchestrator(mocks.settings, mocks.scheduler, clock)
	postponer := app.NewReminderPostponer(mocks.settings, mocks.limiter, mocks.scheduler, mocks.alerts, clock)
	acquirer := app.NewLocationAcquirer(provider, clock)

	h := handler.NewReminderHandler(orchestrator, postponer, acquirer)

	router := gin.New()
	api := router.Group("/api/v1")
	h.RegisterRoutes(api)

	return router, mocks
}

func TestScheduleAllHandlerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, mocks := setupTestRouter(t, ctrl, nil)

	mocks.settings.EXPECT().Current(gomock.Any()).Return(domain.DefaultReminderSettings(), nil)
	mocks.scheduler.EXPECT().
		UpsertPeriodic(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(4)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reminders/schedule", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestScheduleAllHandlerInternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, mocks := setupTestRouter(t, ctrl, nil)

	mocks.settings.EXPECT().Current(gomock.Any()).Return(domain.ReminderSettings{}, errors.New("store down"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reminders/schedule", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var response handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "internal_error", response.Error)
}

func TestCancelAllHandlerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, mocks := setupTestRouter(t, ctrl, nil)

	mocks.scheduler.EXPECT().Cancel(gomock.Any(), gomock.Any()).Return(nil).Times(4)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/reminders/schedule", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPostponeHandlerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, mocks := setupTestRouter(t, ctrl, nil)

	mocks.limiter.EXPECT().CanSchedule(gomock.Any(), gomock.Any()).Return(true, nil)
	mocks.limiter.EXPECT().Increment(gomock.Any(), gomock.Any()).Return(nil)
	mocks.scheduler.EXPECT().
		UpsertOneShot(gomock.Any(), "morning_reminder_postpone", 45*time.Minute, gomock.Any()).
		Return(nil)

	body, _ := json.Marshal(map[string]any{
		"reminder_type": "morning",
		"delay_minutes": 45,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reminders/postpone", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestPostponeHandlerLimitReached(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, mocks := setupTestRouter(t, ctrl, nil)

	mocks.limiter.EXPECT().CanSchedule(gomock.Any(), gomock.Any()).Return(false, nil)

	body, _ := json.Marshal(map[string]any{
		"reminder_type": "evening",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reminders/postpone", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var response handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "postpone_limit_reached", response.Error)
}

func TestPostponeHandlerValidation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{
			name: "missing reminder type",
			body: map[string]any{},
		},
		{
			name: "unknown reminder type",
			body: map[string]any{"reminder_type": "weekly"},
		},
		{
			name: "delay out of range",
			body: map[string]any{"reminder_type": "morning", "delay_minutes": 100000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			router, _ := setupTestRouter(t, ctrl, nil)

			body, _ := json.Marshal(tt.body)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/reminders/postpone", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var response handler.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, "validation_error", response.Error)
		})
	}
}

func TestAcquireLocationHandlerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := location.NewStaticProvider(location.StaticProviderConfig{
		Lat:            48.137,
		Lon:            11.575,
		AccuracyMeters: 50,
	})

	router, _ := setupTestRouter(t, ctrl, provider)

	body, _ := json.Marshal(map[string]any{
		"timeout_ms": 5000,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkin/location", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response handler.LocationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "success", response.Status)
	assert.Equal(t, 48.137, response.Lat)
	assert.Equal(t, 50.0, response.AccuracyMeters)
}

func TestAcquireLocationHandlerUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, _ := setupTestRouter(t, ctrl, nil)

	body, _ := json.Marshal(map[string]any{
		"timeout_ms": 1000,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkin/location", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response handler.LocationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "unavailable", response.Status)
}
