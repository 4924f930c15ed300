package handler

import (
	"net/http"

	"learnalert/internal/application/dto"
	"learnalert/internal/application/service"
	"learnalert/internal/domain/constant"
	"learnalert/internal/infrastructure/notification"
	"learnalert/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StudyHandler handles scheduling and notification requests.
type StudyHandler struct {
	studyService service.StudyService
	dispatcher   *notification.Dispatcher
	log          logger.Logger
}

// NewStudyHandler creates a new StudyHandler.
func NewStudyHandler(
	studyService service.StudyService,
	dispatcher *notification.Dispatcher,
	log logger.Logger,
) *StudyHandler {
	return &StudyHandler{
		studyService: studyService,
		dispatcher:   dispatcher,
		log:          log,
	}
}

// Schedule handles POST /api/study/schedule.
func (h *StudyHandler) Schedule(c echo.Context) error {
	var req dto.ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.IntervalSeconds <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "interval_seconds must be positive")
	}
	resp, err := h.studyService.ScheduleDeck(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Stop handles POST /api/study/stop.
func (h *StudyHandler) Stop(c echo.Context) error {
	h.studyService.StopAll(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Countdown handles GET /api/study/countdown.
func (h *StudyHandler) Countdown(c echo.Context) error {
	return c.JSON(http.StatusOK, h.studyService.CountdownState(c.Request().Context()))
}

// Pending handles GET /api/notifications/pending.
func (h *StudyHandler) Pending(c echo.Context) error {
	return c.JSON(http.StatusOK, h.studyService.PendingNotifications(c.Request().Context()))
}

// Permission handles POST /api/notifications/permission.
func (h *StudyHandler) Permission(c echo.Context) error {
	granted := h.dispatcher.RequestPermission(c.Request().Context())
	return c.JSON(http.StatusOK, dto.PermissionResponse{Granted: granted})
}

// Action handles POST /api/notifications/actions.
func (h *StudyHandler) Action(c echo.Context) error {
	var req dto.ActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.dispatcher.SubmitAction(constant.Action(req.Action)); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusAccepted)
}
