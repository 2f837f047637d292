package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/crisiscenter/tracker/internal/core/domain"
	"github.com/crisiscenter/tracker/internal/core/ports"
)

// NoticeFeed is the read side of the operator notice feed.
type NoticeFeed interface {
	Recent(limit int) []domain.Notice
}

// EventHandler serves the activity log, facility events, and notices.
type EventHandler struct {
	engine ports.Engine
	feed   NoticeFeed
}

func NewEventHandler(engine ports.Engine, feed NoticeFeed) *EventHandler {
	return &EventHandler{engine: engine, feed: feed}
}

// Record handles POST /v1/events.
//
// @Summary      Record a facility event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      recordEventRequest  true  "Event"
// @Success      201   {object}  acceptedResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /v1/events [post]
func (h *EventHandler) Record(c echo.Context) error {
	var req recordEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.engine.RecordEvent(c.Request().Context(), req.Type, req.Comments); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, acceptedResponse{Message: "event recorded"})
}

// RecentLogs handles GET /v1/logs/recent.
//
// @Summary      Activity log lines from the last 24 hours
// @Tags         logs
// @Produce      json
// @Success      200  {object}  recentLogsResponse
// @Router       /v1/logs/recent [get]
func (h *EventHandler) RecentLogs(c echo.Context) error {
	entries := h.engine.RecentLogs()
	resp := recentLogsResponse{Data: make([]logEntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Data = append(resp.Data, logEntryResponse{Timestamp: e.Timestamp, Message: e.Message, Line: e.String()})
	}
	return c.JSON(http.StatusOK, resp)
}

// Notices handles GET /v1/notices.
//
// @Summary      Recent operator notices
// @Tags         notices
// @Produce      json
// @Param        limit  query     int  false  "Maximum notices to return"
// @Success      200    {object}  noticesResponse
// @Failure      400    {object}  ErrorResponse
// @Router       /v1/notices [get]
func (h *EventHandler) Notices(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = n
	}

	notices := h.feed.Recent(limit)
	resp := noticesResponse{Data: make([]noticeResponse, 0, len(notices))}
	for _, n := range notices {
		resp.Data = append(resp.Data, noticeResponse{
			Kind:       string(n.Kind),
			ClientName: n.ClientName,
			Message:    n.Message,
			At:         n.At,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
