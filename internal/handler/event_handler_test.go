package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campus-events/internal/dto"
	"campus-events/internal/models"
	"campus-events/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock EventService ---

type mockEventService struct {
	listFn   func(ctx context.Context) ([]models.EventWithCount, error)
	createFn func(ctx context.Context, input service.EventInput) (*models.Event, error)
	updateFn func(ctx context.Context, id uint, input service.EventInput) error
	deleteFn func(ctx context.Context, id uint) error
}

func (m *mockEventService) List(ctx context.Context) ([]models.EventWithCount, error) {
	return m.listFn(ctx)
}
func (m *mockEventService) Create(ctx context.Context, input service.EventInput) (*models.Event, error) {
	return m.createFn(ctx, input)
}
func (m *mockEventService) Update(ctx context.Context, id uint, input service.EventInput) error {
	return m.updateFn(ctx, id, input)
}
func (m *mockEventService) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

// --- Tests ---

func TestListEvents_Handler_Success(t *testing.T) {
	svc := &mockEventService{
		listFn: func(ctx context.Context) ([]models.EventWithCount, error) {
			return []models.EventWithCount{
				{Event: models.Event{ID: 1, Name: "Workshop on GenAI & LLMs", Capacity: "50"}, RegisteredCount: 12},
			}, nil
		},
	}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewEventHandler(svc)
	err := h.List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.EventListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, int64(12), resp.Events[0].RegisteredCount)
	assert.Equal(t, "50", resp.Events[0].Capacity)
}

func TestListEvents_Handler_EmptyIsArray(t *testing.T) {
	svc := &mockEventService{
		listFn: func(ctx context.Context) ([]models.EventWithCount, error) {
			return nil, nil
		},
	}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewEventHandler(svc)
	require.NoError(t, h.List(c))
	assert.Contains(t, rec.Body.String(), `"events":[]`)
}

func TestCreateEvent_Handler_Success(t *testing.T) {
	svc := &mockEventService{
		createFn: func(ctx context.Context, input service.EventInput) (*models.Event, error) {
			return &models.Event{ID: 5, Name: input.Name}, nil
		},
	}

	e := newTestEcho()
	body := `{"name":"Cultural Night 2026","location":"Open Air Theater","date":"2026-03-25","time":"18:30","capacity":"Unlimited"}`
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewEventHandler(svc)
	err := h.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.CreateEventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, uint(5), resp.EventID)
	assert.Equal(t, "Event created successfully", resp.Message)
}

func TestCreateEvent_Handler_MissingFields(t *testing.T) {
	svc := &mockEventService{
		createFn: func(ctx context.Context, input service.EventInput) (*models.Event, error) {
			return nil, service.ErrMissingFields
		},
	}

	e := newTestEcho()
	body := `{"name":"","date":"","time":""}`
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewEventHandler(svc)
	err := h.Create(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Equal(t, "Please fill all required fields", he.Message)
}

func TestUpdateEvent_Handler_Success(t *testing.T) {
	var gotID uint
	svc := &mockEventService{
		updateFn: func(ctx context.Context, id uint, input service.EventInput) error {
			gotID = id
			return nil
		},
	}

	e := newTestEcho()
	body := `{"name":"Sports Meet","date":"2026-04-10","time":"09:00","capacity":"500"}`
	req := httptest.NewRequest(http.MethodPut, "/api/events/3", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	h := NewEventHandler(svc)
	err := h.Update(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(3), gotID)
	assert.Contains(t, rec.Body.String(), "Event updated successfully")
}

func TestUpdateEvent_Handler_InvalidID(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPut, "/api/events/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	h := NewEventHandler(&mockEventService{})
	err := h.Update(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestDeleteEvent_Handler_Success(t *testing.T) {
	var gotID uint
	svc := &mockEventService{
		deleteFn: func(ctx context.Context, id uint) error {
			gotID = id
			return nil
		},
	}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/api/events/2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("2")

	h := NewEventHandler(svc)
	err := h.Delete(c)

	require.NoError(t, err)
	assert.Equal(t, uint(2), gotID)
	assert.Contains(t, rec.Body.String(), "Event deleted successfully")
}

func TestDeleteEvent_Handler_ServiceError(t *testing.T) {
	svc := &mockEventService{
		deleteFn: func(ctx context.Context, id uint) error {
			return errors.New("db error")
		},
	}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/api/events/2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("2")

	h := NewEventHandler(svc)
	err := h.Delete(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Code)
}
