package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dragonfire/internal/adapters/auth"
	"dragonfire/internal/domain"
)

type eventService struct {
	gateway        domain.Gateway
	allowlist      string
	contextTimeout time.Duration
}

// NewEventService composes the gateway, the admin allowlist, and the event
// record contract into the five event access operations. Each operation
// acquires a trust-scoped handle, issues exactly one store round-trip, and
// releases the handle. Store errors pass through verbatim.
func NewEventService(gateway domain.Gateway, allowlist string, timeout time.Duration) domain.EventService {
	return &eventService{
		gateway:        gateway,
		allowlist:      allowlist,
		contextTimeout: timeout,
	}
}

func (s *eventService) ListUpcoming(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	store, err := s.gateway.Acquire(domain.TrustRestricted)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	// "Now" is evaluated once; nothing starting before this instant is
	// returned.
	events, err := store.ListUpcoming(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	store, err := s.gateway.Acquire(domain.TrustRestricted)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.GetByID(ctx, id)
}

func (s *eventService) Create(ctx context.Context, callerID string, in *domain.EventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !auth.IsAllowed(s.allowlist, callerID) {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
	}

	store, err := s.gateway.Acquire(domain.TrustElevated)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.Upsert(ctx, in)
}

func (s *eventService) Update(ctx context.Context, callerID, id string, patch *domain.EventPatch) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !auth.IsAllowed(s.allowlist, callerID) {
		return nil, domain.ErrUnauthorized
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	store, err := s.gateway.Acquire(domain.TrustElevated)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.Update(ctx, id, patch)
}

func (s *eventService) Delete(ctx context.Context, callerID, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !auth.IsAllowed(s.allowlist, callerID) {
		return nil, domain.ErrUnauthorized
	}

	store, err := s.gateway.Acquire(domain.TrustElevated)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.Delete(ctx, id)
}
