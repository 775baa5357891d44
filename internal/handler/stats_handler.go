package handler

import (
	"net/http"

	"campus-events/internal/dto"
	"campus-events/internal/models"
	"campus-events/internal/service"

	"github.com/labstack/echo/v4"
)

type StatsHandler struct {
	svc service.StatsService
}

func NewStatsHandler(svc service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) RegisterRoutes(e *echo.Echo, auth, admin echo.MiddlewareFunc) {
	e.GET("/api/stats", h.Stats, auth, admin)
	e.GET("/api/all-users", h.ListUsers, auth, admin)
}

func (h *StatsHandler) Stats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.StatsResponse{Success: true, Stats: stats})
}

func (h *StatsHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListStudents(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if users == nil {
		users = []models.UserWithCount{}
	}
	return c.JSON(http.StatusOK, dto.UserListResponse{Success: true, Users: users})
}
