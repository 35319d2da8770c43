package postgres

import (
	"fmt"
	"net/url"
	"strings"

	"database/sql"

	_ "github.com/lib/pq"

	"dragonfire/config"
	"dragonfire/internal/domain"
)

// Gateway produces store handles scoped to a trust level. Configuration is
// injected once at construction and never re-read; each Acquire builds a
// fresh handle rather than sharing a cached client, so no mutable state is
// shared between units of work.
type Gateway struct {
	storeURL   string
	readKey    string
	serviceKey string
}

// NewGateway builds a Gateway from the loaded configuration.
func NewGateway(cfg *config.Config) *Gateway {
	return &Gateway{
		storeURL:   cfg.StoreURL,
		readKey:    cfg.StoreReadKey,
		serviceKey: cfg.StoreServiceKey,
	}
}

// Acquire opens a store handle authorized as the given trust level. It
// returns domain.ErrNotConfigured when the endpoint or the matching
// credential is unset; callers must surface that as a configuration failure
// instead of attempting the operation.
func (g *Gateway) Acquire(level domain.TrustLevel) (domain.EventStore, error) {
	dsn, err := g.DSN(level)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	return &eventRepository{DB: db}, nil
}

// DSN returns the connection string for the given trust level, for callers
// that need the raw URL (the migration runner).
func (g *Gateway) DSN(level domain.TrustLevel) (string, error) {
	key := g.readKey
	if level == domain.TrustElevated {
		key = g.serviceKey
	}
	if g.storeURL == "" || key == "" {
		return "", domain.ErrNotConfigured
	}
	return withCredential(g.storeURL, key)
}

// withCredential splices a user:password credential into the endpoint URL,
// replacing any userinfo already present.
func withCredential(endpoint, credential string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("store url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("store url %q: missing scheme or host", endpoint)
	}
	if user, pass, ok := strings.Cut(credential, ":"); ok {
		u.User = url.UserPassword(user, pass)
	} else {
		u.User = url.User(credential)
	}
	return u.String(), nil
}
