package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campus-events/internal/dto"
	"campus-events/internal/middleware"
	"campus-events/internal/models"
	"campus-events/internal/service"
	"campus-events/pkg/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock RegistrationService ---

type mockRegistrationService struct {
	registerFn   func(ctx context.Context, userID, eventID uint) error
	unregisterFn func(ctx context.Context, userID, eventID uint) error
	listFn       func(ctx context.Context, userID uint) ([]models.RegisteredEvent, error)
}

func (m *mockRegistrationService) Register(ctx context.Context, userID, eventID uint) error {
	return m.registerFn(ctx, userID, eventID)
}
func (m *mockRegistrationService) Unregister(ctx context.Context, userID, eventID uint) error {
	return m.unregisterFn(ctx, userID, eventID)
}
func (m *mockRegistrationService) ListForUser(ctx context.Context, userID uint) ([]models.RegisteredEvent, error) {
	return m.listFn(ctx, userID)
}

func newSessionContext(t *testing.T, e *echo.Echo, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.SessionKey, &session.Claims{
		UserID: 8, Name: "Jane.doe", Email: "jane.doe@college.edu", Role: models.RoleStudent,
	})
	return c, rec
}

// --- Tests ---

func TestRegister_Handler_Success(t *testing.T) {
	var gotUser, gotEvent uint
	svc := &mockRegistrationService{
		registerFn: func(ctx context.Context, userID, eventID uint) error {
			gotUser, gotEvent = userID, eventID
			return nil
		},
	}

	e := newTestEcho()
	c, rec := newSessionContext(t, e, http.MethodPost, "/api/register/3")
	c.SetParamNames("id")
	c.SetParamValues("3")

	h := NewRegistrationHandler(svc)
	err := h.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(8), gotUser)
	assert.Equal(t, uint(3), gotEvent)
	assert.Contains(t, rec.Body.String(), "Successfully registered!")
}

func TestRegister_Handler_EventFull(t *testing.T) {
	svc := &mockRegistrationService{
		registerFn: func(ctx context.Context, userID, eventID uint) error {
			return service.ErrEventFull
		},
	}

	e := newTestEcho()
	c, _ := newSessionContext(t, e, http.MethodPost, "/api/register/3")
	c.SetParamNames("id")
	c.SetParamValues("3")

	h := NewRegistrationHandler(svc)
	err := h.Register(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
	assert.Equal(t, "Event is full", he.Message)
}

func TestRegister_Handler_AlreadyRegistered(t *testing.T) {
	svc := &mockRegistrationService{
		registerFn: func(ctx context.Context, userID, eventID uint) error {
			return service.ErrAlreadyRegistered
		},
	}

	e := newTestEcho()
	c, _ := newSessionContext(t, e, http.MethodPost, "/api/register/3")
	c.SetParamNames("id")
	c.SetParamValues("3")

	h := NewRegistrationHandler(svc)
	err := h.Register(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
	assert.Equal(t, "Already registered for this event", he.Message)
}

func TestRegister_Handler_EventNotFound(t *testing.T) {
	svc := &mockRegistrationService{
		registerFn: func(ctx context.Context, userID, eventID uint) error {
			return service.ErrEventNotFound
		},
	}

	e := newTestEcho()
	c, _ := newSessionContext(t, e, http.MethodPost, "/api/register/999")
	c.SetParamNames("id")
	c.SetParamValues("999")

	h := NewRegistrationHandler(svc)
	err := h.Register(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestRegister_Handler_InvalidEventID(t *testing.T) {
	e := newTestEcho()
	c, _ := newSessionContext(t, e, http.MethodPost, "/api/register/abc")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	h := NewRegistrationHandler(&mockRegistrationService{})
	err := h.Register(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestUnregister_Handler_Success(t *testing.T) {
	svc := &mockRegistrationService{
		unregisterFn: func(ctx context.Context, userID, eventID uint) error {
			return nil
		},
	}

	e := newTestEcho()
	c, rec := newSessionContext(t, e, http.MethodPost, "/api/unregister/3")
	c.SetParamNames("id")
	c.SetParamValues("3")

	h := NewRegistrationHandler(svc)
	err := h.Unregister(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Successfully unregistered")
}

func TestListMine_Handler_Success(t *testing.T) {
	svc := &mockRegistrationService{
		listFn: func(ctx context.Context, userID uint) ([]models.RegisteredEvent, error) {
			return []models.RegisteredEvent{
				{
					Event:        models.Event{ID: 1, Name: "Workshop on GenAI & LLMs", Date: "2026-02-20", Time: "14:00"},
					RegisteredAt: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
				},
			}, nil
		},
	}

	e := newTestEcho()
	c, rec := newSessionContext(t, e, http.MethodGet, "/api/my-registrations")

	h := NewRegistrationHandler(svc)
	err := h.ListMine(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.RegistrationListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Registrations, 1)
	assert.Equal(t, "Workshop on GenAI & LLMs", resp.Registrations[0].Name)
	assert.False(t, resp.Registrations[0].RegisteredAt.IsZero())
}

func TestListMine_Handler_EmptyIsArray(t *testing.T) {
	svc := &mockRegistrationService{
		listFn: func(ctx context.Context, userID uint) ([]models.RegisteredEvent, error) {
			return nil, nil
		},
	}

	e := newTestEcho()
	c, rec := newSessionContext(t, e, http.MethodGet, "/api/my-registrations")

	h := NewRegistrationHandler(svc)
	require.NoError(t, h.ListMine(c))
	assert.Contains(t, rec.Body.String(), `"registrations":[]`)
}
