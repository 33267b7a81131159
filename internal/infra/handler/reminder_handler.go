package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/montagezeit/reminder-engine/internal/app"
)

type ReminderHandler struct {
	orchestrator app.ReminderOrchestrator
	postponer    app.ReminderPostponer
	acquirer     app.LocationAcquirer
}

func NewReminderHandler(
	orchestrator app.ReminderOrchestrator,
	postponer app.ReminderPostponer,
	acquirer app.LocationAcquirer,
) *ReminderHandler {
	return &ReminderHandler{
		orchestrator: orchestrator,
		postponer:    postponer,
		acquirer:     acquirer,
	}
}

// ScheduleAll re-registers every enabled reminder job. Called on boot, after
// a settings change and after a clock or timezone change; it is idempotent.
func (h *ReminderHandler) ScheduleAll(c *gin.Context) {
	slog.Info("handling schedule all request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	if err := h.orchestrator.ScheduleAll(c.Request.Context()); err != nil {
		h.handleError(c, err)

		return
	}

	slog.Info("reminder jobs scheduled")
	c.Status(http.StatusNoContent)
}

func (h *ReminderHandler) CancelAll(c *gin.Context) {
	slog.Info("handling cancel all request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	if err := h.orchestrator.CancelAll(c.Request.Context()); err != nil {
		h.handleError(c, err)

		return
	}

	slog.Info("reminder jobs cancelled")
	c.Status(http.StatusNoContent)
}

func (h *ReminderHandler) Postpone(c *gin.Context) {
	slog.Info("handling postpone request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req PostponeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("request validation failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Field:   "",
		})

		return
	}

	input := app.PostponeInput{
		ReminderType: req.ReminderType,
		DelayMinutes: req.DelayMinutes,
	}

	if err := h.postponer.Postpone(c.Request.Context(), input); err != nil {
		h.handleError(c, err)

		return
	}

	slog.Info("reminder postponed",
		"reminder_type", req.ReminderType,
	)
	c.Status(http.StatusAccepted)
}

func (h *ReminderHandler) AcquireLocation(c *gin.Context) {
	slog.Info("handling check-in location request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req AcquireLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("request validation failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Field:   "",
		})

		return
	}

	result := h.acquirer.Acquire(c.Request.Context(), time.Duration(req.TimeoutMs)*time.Millisecond)

	output := app.FromLocationResult(result)

	slog.Info("check-in location acquired",
		"status", output.Status,
	)
	c.JSON(http.StatusOK, FromLocationOutput(output))
}

func (h *ReminderHandler) handleError(c *gin.Context, err error) {
	var validationErr *app.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: validationErr.Message,
			Field:   validationErr.Field,
		})

		return
	}

	if errors.Is(err, app.ErrPostponeLimitReached) {
		c.JSON(http.StatusTooManyRequests, ErrorResponse{
			Error:   "postpone_limit_reached",
			Message: "daily postponement limit reached",
			Field:   "",
		})

		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "an internal error occurred",
		Field:   "",
	})
}

func (h *ReminderHandler) RegisterRoutes(router *gin.RouterGroup) {
	reminders := router.Group("/reminders")
	{
		reminders.POST("/schedule", h.ScheduleAll)
		reminders.DELETE("/schedule", h.CancelAll)
		reminders.POST("/postpone", h.Postpone)
	}

	checkin := router.Group("/checkin")
	{
		checkin.POST("/location", h.AcquireLocation)
	}
}
