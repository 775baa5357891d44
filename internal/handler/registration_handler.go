package handler

import (
	"errors"
	"net/http"
	"strconv"

	"campus-events/internal/dto"
	"campus-events/internal/middleware"
	"campus-events/internal/models"
	"campus-events/internal/service"

	"github.com/labstack/echo/v4"
)

type RegistrationHandler struct {
	svc service.RegistrationService
}

func NewRegistrationHandler(svc service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

func (h *RegistrationHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.POST("/api/register/:id", h.Register, auth)
	e.POST("/api/unregister/:id", h.Unregister, auth)
	e.GET("/api/my-registrations", h.ListMine, auth)
}

func (h *RegistrationHandler) Register(c echo.Context) error {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	claims := middleware.CurrentUser(c)
	if err := h.svc.Register(c.Request().Context(), claims.UserID, uint(eventID)); err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrAlreadyRegistered):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrEventFull):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Successfully registered!"})
}

func (h *RegistrationHandler) Unregister(c echo.Context) error {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	claims := middleware.CurrentUser(c)
	if err := h.svc.Unregister(c.Request().Context(), claims.UserID, uint(eventID)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Successfully unregistered"})
}

func (h *RegistrationHandler) ListMine(c echo.Context) error {
	claims := middleware.CurrentUser(c)
	registrations, err := h.svc.ListForUser(c.Request().Context(), claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if registrations == nil {
		registrations = []models.RegisteredEvent{}
	}

	return c.JSON(http.StatusOK, dto.RegistrationListResponse{Success: true, Registrations: registrations})
}
