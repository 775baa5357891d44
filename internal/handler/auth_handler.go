package handler

import (
	"errors"
	"net/http"

	"campus-events/internal/dto"
	"campus-events/internal/middleware"
	"campus-events/internal/models"
	"campus-events/internal/service"
	"campus-events/pkg/session"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	svc      service.AuthService
	sessions *session.Manager
}

func NewAuthHandler(svc service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{svc: svc, sessions: sessions}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/login", h.Login)
	e.GET("/logout", h.Logout)
	e.GET("/api/user", h.CurrentUser, middleware.SessionAuthWithMessage(h.sessions, "Not logged in"))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	role := models.Role(req.Role)
	if req.Role == "" {
		role = models.RoleStudent
	}

	user, err := h.svc.Login(c.Request().Context(), req.Email, role)
	if err != nil {
		var mismatch *service.RoleMismatchError
		switch {
		case errors.Is(err, service.ErrEmptyEmail):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.As(err, &mismatch):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	token, err := h.sessions.Issue(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	c.SetCookie(h.sessions.Cookie(token))

	redirect := "/student"
	if user.Role == models.RoleAdmin {
		redirect = "/admin"
	}
	return c.JSON(http.StatusOK, dto.LoginResponse{Success: true, Redirect: redirect})
}

// Logout clears session state unconditionally, whether or not a valid
// session was presented.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if claims, err := h.sessions.Verify(c.Request().Context(), cookie.Value); err == nil {
			_ = h.sessions.Revoke(c.Request().Context(), claims)
		}
	}
	c.SetCookie(h.sessions.ClearCookie())
	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) CurrentUser(c echo.Context) error {
	claims := middleware.CurrentUser(c)
	return c.JSON(http.StatusOK, dto.UserResponse{
		Success: true,
		User: dto.UserInfo{
			ID:    claims.UserID,
			Name:  claims.Name,
			Email: claims.Email,
			Role:  claims.Role,
		},
	})
}
