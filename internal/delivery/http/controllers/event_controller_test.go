package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dragonfire/internal/delivery/http/middleware"
	"dragonfire/internal/domain"
)

type fakeEventService struct {
	events    []*domain.Event
	event     *domain.Event
	err       error
	callerID  string
	createdIn *domain.EventInput
	patchedID string
	deletedID string
}

func (f *fakeEventService) ListUpcoming(ctx context.Context) ([]*domain.Event, error) {
	return f.events, f.err
}

func (f *fakeEventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.event, nil
}

func (f *fakeEventService) Create(ctx context.Context, callerID string, in *domain.EventInput) (*domain.Event, error) {
	f.callerID = callerID
	f.createdIn = in
	if f.err != nil {
		return nil, f.err
	}
	return f.event, nil
}

func (f *fakeEventService) Update(ctx context.Context, callerID, id string, patch *domain.EventPatch) (*domain.Event, error) {
	f.callerID = callerID
	f.patchedID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.event, nil
}

func (f *fakeEventService) Delete(ctx context.Context, callerID, id string) (*domain.Event, error) {
	f.callerID = callerID
	f.deletedID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.event, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func withCaller(r *http.Request, callerID string) *http.Request {
	return r.WithContext(middleware.SetCallerID(r.Context(), callerID))
}

func decodeError(t *testing.T, body io.Reader) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp.Error
}

func TestListEvents(t *testing.T) {
	now := time.Now().UTC()

	t.Run("returns upcoming events", func(t *testing.T) {
		svc := &fakeEventService{events: []*domain.Event{
			{ID: "ev-1", Title: "Friday Night Magic", StartDatetime: now.Add(24 * time.Hour), EventType: domain.EventTypeWeekly},
		}}
		ctrl := NewEventController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		rec := httptest.NewRecorder()
		ctrl.ListEvents(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var events []*domain.Event
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&events))
		require.Len(t, events, 1)
		require.Equal(t, "ev-1", events[0].ID)
	})

	t.Run("empty list encodes as json array", func(t *testing.T) {
		svc := &fakeEventService{events: []*domain.Event{}}
		ctrl := NewEventController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		rec := httptest.NewRecorder()
		ctrl.ListEvents(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("query parameters narrow the list", func(t *testing.T) {
		svc := &fakeEventService{events: []*domain.Event{
			{ID: "ev-1", Title: "Friday Night Magic", StartDatetime: now.Add(24 * time.Hour), EventType: domain.EventTypeWeekly, GameTags: []string{"mtg"}},
			{ID: "ev-2", Title: "Regional Championship", StartDatetime: now.Add(48 * time.Hour), EventType: domain.EventTypeTournament, GameTags: []string{"pokemon"}},
		}}
		ctrl := NewEventController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodGet, "/events?type=tournament&window=next7", nil)
		rec := httptest.NewRecorder()
		ctrl.ListEvents(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var events []*domain.Event
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&events))
		require.Len(t, events, 1)
		require.Equal(t, "ev-2", events[0].ID)
	})

	t.Run("configuration failure surfaces as 500", func(t *testing.T) {
		svc := &fakeEventService{err: domain.ErrNotConfigured}
		ctrl := NewEventController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		rec := httptest.NewRecorder()
		ctrl.ListEvents(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, domain.ErrNotConfigured.Error(), decodeError(t, rec.Body))
	})
}

func TestGetEvent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEventService{event: &domain.Event{ID: "ev-1", Title: "Friday Night Magic"}}
		ctrl := NewEventController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodGet, "/events/ev-1", nil)
		req.SetPathValue("id", "ev-1")
		rec := httptest.NewRecorder()
		ctrl.GetEvent(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var e domain.Event
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&e))
		require.Equal(t, "ev-1", e.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEventService{err: domain.ErrNotFound}
		ctrl := NewEventController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodGet, "/events/missing", nil)
		req.SetPathValue("id", "missing")
		rec := httptest.NewRecorder()
		ctrl.GetEvent(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "event not found", decodeError(t, rec.Body))
	})
}

func TestCreateEvent(t *testing.T) {
	body := `{"title":"Friday Night Magic","start_datetime":"2026-03-06T19:00:00Z","event_type":"weekly","game_tags":["mtg"]}`

	t.Run("created", func(t *testing.T) {
		svc := &fakeEventService{event: &domain.Event{ID: "ev-1", Title: "Friday Night Magic"}}
		ctrl := NewEventController(testLogger(), svc)

		req := withCaller(httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body)), "admin-1")
		rec := httptest.NewRecorder()
		ctrl.CreateEvent(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "admin-1", svc.callerID)
		require.Equal(t, "Friday Night Magic", svc.createdIn.Title)
		require.Equal(t, []string{"mtg"}, svc.createdIn.GameTags)
	})

	t.Run("no caller identity", func(t *testing.T) {
		svc := &fakeEventService{}
		ctrl := NewEventController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
		rec := httptest.NewRecorder()
		ctrl.CreateEvent(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("caller not on allowlist", func(t *testing.T) {
		svc := &fakeEventService{err: domain.ErrUnauthorized}
		ctrl := NewEventController(testLogger(), svc)

		req := withCaller(httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body)), "stranger")
		rec := httptest.NewRecorder()
		ctrl.CreateEvent(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "unauthorized", decodeError(t, rec.Body))
	})

	t.Run("malformed json", func(t *testing.T) {
		svc := &fakeEventService{}
		ctrl := NewEventController(testLogger(), svc)

		req := withCaller(httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(`{"title":`)), "admin-1")
		rec := httptest.NewRecorder()
		ctrl.CreateEvent(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		svc := &fakeEventService{err: domain.ErrInvalidInput}
		ctrl := NewEventController(testLogger(), svc)

		req := withCaller(httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body)), "admin-1")
		rec := httptest.NewRecorder()
		ctrl.CreateEvent(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateEvent(t *testing.T) {
	body := `{"title":"New title"}`

	t.Run("updated", func(t *testing.T) {
		svc := &fakeEventService{event: &domain.Event{ID: "ev-1", Title: "New title"}}
		ctrl := NewEventController(testLogger(), svc)

		req := withCaller(httptest.NewRequest(http.MethodPut, "/events/ev-1", strings.NewReader(body)), "admin-1")
		req.SetPathValue("id", "ev-1")
		rec := httptest.NewRecorder()
		ctrl.UpdateEvent(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "ev-1", svc.patchedID)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEventService{err: domain.ErrNotFound}
		ctrl := NewEventController(testLogger(), svc)

		req := withCaller(httptest.NewRequest(http.MethodPut, "/events/missing", strings.NewReader(body)), "admin-1")
		req.SetPathValue("id", "missing")
		rec := httptest.NewRecorder()
		ctrl.UpdateEvent(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "event not found", decodeError(t, rec.Body))
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		svc := &fakeEventService{}
		ctrl := NewEventController(testLogger(), svc)

		req := withCaller(httptest.NewRequest(http.MethodPut, "/events/ev-1", strings.NewReader(`{"created_at":"2026-01-01T00:00:00Z"}`)), "admin-1")
		req.SetPathValue("id", "ev-1")
		rec := httptest.NewRecorder()
		ctrl.UpdateEvent(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteEvent(t *testing.T) {
	t.Run("returns prior state", func(t *testing.T) {
		svc := &fakeEventService{event: &domain.Event{ID: "ev-1", Title: "Friday Night Magic"}}
		ctrl := NewEventController(testLogger(), svc)

		req := withCaller(httptest.NewRequest(http.MethodDelete, "/events/ev-1", nil), "admin-1")
		req.SetPathValue("id", "ev-1")
		rec := httptest.NewRecorder()
		ctrl.DeleteEvent(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "ev-1", svc.deletedID)
		var e domain.Event
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&e))
		require.Equal(t, "Friday Night Magic", e.Title)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEventService{err: domain.ErrNotFound}
		ctrl := NewEventController(testLogger(), svc)

		req := withCaller(httptest.NewRequest(http.MethodDelete, "/events/missing", nil), "admin-1")
		req.SetPathValue("id", "missing")
		rec := httptest.NewRecorder()
		ctrl.DeleteEvent(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
