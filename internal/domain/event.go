package domain

import (
	"context"
	"fmt"
	"time"
)

// EventType classifies a calendar entry.
type EventType string

const (
	EventTypeWeekly     EventType = "weekly"
	EventTypeOneTime    EventType = "one-time"
	EventTypeTournament EventType = "tournament"
)

// Valid reports whether t is one of the recognized event types.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeWeekly, EventTypeOneTime, EventTypeTournament:
		return true
	}
	return false
}

// Event is one calendar entry: a weekly recurring slot, a one-time
// happening, or a tournament.
// swagger:model Event
type Event struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      *string    `json:"description"`
	StartDatetime    time.Time  `json:"start_datetime"`
	EndDatetime      *time.Time `json:"end_datetime"`
	EventType        EventType  `json:"event_type"`
	GameTags         []string   `json:"game_tags"`
	EntryFee         *string    `json:"entry_fee"`
	RegistrationLink *string    `json:"registration_link"`
	ImageURL         *string    `json:"image_url"`
	CreatedAt        time.Time  `json:"created_at"`
}

// EventInput is the write payload for create. ID may be empty, in which case
// the service assigns one. CreatedAt is set by the store, never by callers.
type EventInput struct {
	ID               string
	Title            string
	Description      *string
	StartDatetime    time.Time
	EndDatetime      *time.Time
	EventType        EventType
	GameTags         []string
	EntryFee         *string
	RegistrationLink *string
	ImageURL         *string
}

// Validate applies the record contract: presence of title and
// start_datetime, membership of event_type. There is no cross-field
// validation; in particular end_datetime is not checked against
// start_datetime.
func (in *EventInput) Validate() error {
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if in.StartDatetime.IsZero() {
		return fmt.Errorf("%w: start_datetime is required", ErrInvalidInput)
	}
	if !in.EventType.Valid() {
		return fmt.Errorf("%w: event_type must be one of weekly, one-time, tournament", ErrInvalidInput)
	}
	return nil
}

// EventPatch carries only the fields supplied in an update; a nil field is
// left unchanged on the stored row.
type EventPatch struct {
	Title            *string
	Description      *string
	StartDatetime    *time.Time
	EndDatetime      *time.Time
	EventType        *EventType
	GameTags         *[]string
	EntryFee         *string
	RegistrationLink *string
	ImageURL         *string
}

// Validate applies the record contract to the supplied fields only.
func (p *EventPatch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}
	if p.EventType != nil && !p.EventType.Valid() {
		return fmt.Errorf("%w: event_type must be one of weekly, one-time, tournament", ErrInvalidInput)
	}
	return nil
}

// TrustLevel selects which store credential an operation runs under.
type TrustLevel string

const (
	// TrustRestricted is the public read-oriented credential.
	TrustRestricted TrustLevel = "restricted"
	// TrustElevated is the privileged read/write credential.
	TrustElevated TrustLevel = "elevated"
)

// EventRepository defines the event operations of a store handle.
type EventRepository interface {
	ListUpcoming(ctx context.Context, now time.Time) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Upsert(ctx context.Context, in *EventInput) (*Event, error)
	Update(ctx context.Context, id string, patch *EventPatch) (*Event, error)
	Delete(ctx context.Context, id string) (*Event, error)
}

// EventStore is a trust-scoped store handle. Close releases the underlying
// connection; every handle is acquired for a single unit of work.
type EventStore interface {
	EventRepository
	Close() error
}

// Gateway produces store handles scoped to a trust level. Acquire returns
// ErrNotConfigured when the endpoint or the matching credential is unset.
type Gateway interface {
	Acquire(level TrustLevel) (EventStore, error)
}

// EventService defines the business operations over events. Mutating
// operations take the caller identity and run it through the authorization
// allowlist before touching the store.
type EventService interface {
	ListUpcoming(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, callerID string, in *EventInput) (*Event, error)
	Update(ctx context.Context, callerID, id string, patch *EventPatch) (*Event, error)
	Delete(ctx context.Context, callerID, id string) (*Event, error)
}
