package handler

import (
	"errors"
	"net/http"
	"strconv"

	"campus-events/internal/dto"
	"campus-events/internal/models"
	"campus-events/internal/service"

	"github.com/labstack/echo/v4"
)

type EventHandler struct {
	svc service.EventService
}

func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) RegisterRoutes(e *echo.Echo, auth, admin echo.MiddlewareFunc) {
	e.GET("/api/events", h.List)
	e.POST("/api/events", h.Create, auth, admin)
	e.PUT("/api/events/:id", h.Update, auth, admin)
	e.DELETE("/api/events/:id", h.Delete, auth, admin)
}

func (h *EventHandler) List(c echo.Context) error {
	events, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if events == nil {
		events = []models.EventWithCount{}
	}
	return c.JSON(http.StatusOK, dto.EventListResponse{Success: true, Events: events})
}

func (h *EventHandler) Create(c echo.Context) error {
	var req dto.EventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	event, err := h.svc.Create(c.Request().Context(), eventInput(req))
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.CreateEventResponse{
		Success: true,
		EventID: event.ID,
		Message: "Event created successfully",
	})
}

func (h *EventHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	var req dto.EventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.svc.Update(c.Request().Context(), uint(id), eventInput(req)); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Event updated successfully"})
}

func (h *EventHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	if err := h.svc.Delete(c.Request().Context(), uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Event deleted successfully"})
}

func eventInput(req dto.EventRequest) service.EventInput {
	return service.EventInput{
		Name:     req.Name,
		Location: req.Location,
		Date:     req.Date,
		Time:     req.Time,
		Capacity: req.Capacity,
	}
}
