package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"dragonfire/internal/delivery/http/helpers"
	"dragonfire/internal/delivery/http/middleware"
	"dragonfire/internal/domain"
)

// CreateEventRequest is the request body for POST /events. ID is optional;
// one is generated when absent. created_at is never accepted from clients.
type CreateEventRequest struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      *string    `json:"description"`
	StartDatetime    time.Time  `json:"start_datetime"`
	EndDatetime      *time.Time `json:"end_datetime"`
	EventType        string     `json:"event_type"`
	GameTags         []string   `json:"game_tags"`
	EntryFee         *string    `json:"entry_fee"`
	RegistrationLink *string    `json:"registration_link"`
	ImageURL         *string    `json:"image_url"`
}

func (c CreateEventRequest) toInput() *domain.EventInput {
	return &domain.EventInput{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		StartDatetime:    c.StartDatetime,
		EndDatetime:      c.EndDatetime,
		EventType:        domain.EventType(c.EventType),
		GameTags:         c.GameTags,
		EntryFee:         c.EntryFee,
		RegistrationLink: c.RegistrationLink,
		ImageURL:         c.ImageURL,
	}
}

// UpdateEventRequest is the request body for PUT /events/{id}. All fields
// are optional; omitted fields are unchanged.
type UpdateEventRequest struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	StartDatetime    *time.Time `json:"start_datetime"`
	EndDatetime      *time.Time `json:"end_datetime"`
	EventType        *string    `json:"event_type"`
	GameTags         *[]string  `json:"game_tags"`
	EntryFee         *string    `json:"entry_fee"`
	RegistrationLink *string    `json:"registration_link"`
	ImageURL         *string    `json:"image_url"`
}

func (u UpdateEventRequest) toPatch() *domain.EventPatch {
	patch := &domain.EventPatch{
		Title:            u.Title,
		Description:      u.Description,
		StartDatetime:    u.StartDatetime,
		EndDatetime:      u.EndDatetime,
		GameTags:         u.GameTags,
		EntryFee:         u.EntryFee,
		RegistrationLink: u.RegistrationLink,
		ImageURL:         u.ImageURL,
	}
	if u.EventType != nil {
		t := domain.EventType(*u.EventType)
		patch.EventType = &t
	}
	return patch
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List upcoming events
// @Description Returns all events starting at or after the time of the call, ascending by start_datetime. Optional query parameters narrow the list in memory: search (case-insensitive over title and description), tag (game tag, "all" disables), type (event type, "all" disables), window (all, next7, next30).
// @Tags events
// @Produce json
// @Param search query string false "Free-text search"
// @Param tag query string false "Game tag"
// @Param type query string false "Event type"
// @Param window query string false "Date window: all, next7, next30"
// @Success 200 {array} domain.Event
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListUpcoming(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	q := r.URL.Query()
	filter := domain.EventFilter{
		SearchText: q.Get("search"),
		GameTag:    q.Get("tag"),
		EventType:  q.Get("type"),
		DateWindow: domain.DateWindow(q.Get("window")),
	}
	events = domain.FilterEvents(events, filter, time.Now().UTC())

	helpers.WriteJSON(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by id
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{id} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing id")
		return
	}
	event, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create an event
// @Description Inserts the event, or replaces an existing one with the same id (upsert). The caller identity must be on the admin allowlist.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event payload"
// @Success 201 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	callerID, ok := middleware.CallerIDFromContext(r.Context())
	if !ok {
		helpers.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	event, err := c.Service.Create(r.Context(), callerID, req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			helpers.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Replaces only the supplied fields on the event matching id. The caller identity must be on the admin allowlist.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param event body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing id")
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	callerID, ok := middleware.CallerIDFromContext(r.Context())
	if !ok {
		helpers.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	event, err := c.Service.Update(r.Context(), callerID, id, req.toPatch())
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			helpers.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "event not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Removes the event matching id and returns its prior state. The caller identity must be on the admin allowlist.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing id")
		return
	}
	callerID, ok := middleware.CallerIDFromContext(r.Context())
	if !ok {
		helpers.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	event, err := c.Service.Delete(r.Context(), callerID, id)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			helpers.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}
