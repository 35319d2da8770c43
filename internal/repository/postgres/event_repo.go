package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"dragonfire/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository wraps an already opened handle. The gateway is the
// usual constructor; this one exists for tests and the seed tool.
func NewEventRepository(db *sql.DB) domain.EventStore {
	return &eventRepository{DB: db}
}

func (r *eventRepository) Close() error {
	return r.DB.Close()
}

const eventColumns = `id, title, description, start_datetime, end_datetime, event_type, game_tags, entry_fee, registration_link, image_url, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var descNull, feeNull, linkNull, imgNull sql.NullString
	var endNull sql.NullTime
	var eventType string
	var tags pq.StringArray
	err := row.Scan(
		&e.ID, &e.Title, &descNull, &e.StartDatetime, &endNull,
		&eventType, &tags, &feeNull, &linkNull, &imgNull, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.EventType = domain.EventType(eventType)
	if descNull.Valid {
		e.Description = &descNull.String
	}
	if endNull.Valid {
		e.EndDatetime = &endNull.Time
	}
	if feeNull.Valid {
		e.EntryFee = &feeNull.String
	}
	if linkNull.Valid {
		e.RegistrationLink = &linkNull.String
	}
	if imgNull.Valid {
		e.ImageURL = &imgNull.String
	}
	if tags != nil {
		e.GameTags = []string(tags)
	}
	return e, nil
}

func (r *eventRepository) ListUpcoming(ctx context.Context, now time.Time) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE start_datetime >= $1
		ORDER BY start_datetime ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// Upsert inserts the event or, when a row with the same id exists, replaces
// it. created_at is set by the store on insert and survives replacement.
func (r *eventRepository) Upsert(ctx context.Context, in *domain.EventInput) (*domain.Event, error) {
	query := `
		INSERT INTO events (id, title, description, start_datetime, end_datetime, event_type, game_tags, entry_fee, registration_link, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			start_datetime = EXCLUDED.start_datetime,
			end_datetime = EXCLUDED.end_datetime,
			event_type = EXCLUDED.event_type,
			game_tags = EXCLUDED.game_tags,
			entry_fee = EXCLUDED.entry_fee,
			registration_link = EXCLUDED.registration_link,
			image_url = EXCLUDED.image_url
		RETURNING ` + eventColumns
	row := r.DB.QueryRowContext(ctx, query,
		in.ID, in.Title, in.Description, in.StartDatetime, in.EndDatetime,
		string(in.EventType), pq.Array(in.GameTags), in.EntryFee, in.RegistrationLink, in.ImageURL,
	)
	return scanEvent(row)
}

// Update replaces only the supplied fields on the row matching id.
func (r *eventRepository) Update(ctx context.Context, id string, patch *domain.EventPatch) (*domain.Event, error) {
	setClauses := []string{}
	args := []interface{}{}
	n := 1
	if patch.Title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", n))
		args = append(args, *patch.Title)
		n++
	}
	if patch.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", n))
		args = append(args, *patch.Description)
		n++
	}
	if patch.StartDatetime != nil {
		setClauses = append(setClauses, fmt.Sprintf("start_datetime = $%d", n))
		args = append(args, *patch.StartDatetime)
		n++
	}
	if patch.EndDatetime != nil {
		setClauses = append(setClauses, fmt.Sprintf("end_datetime = $%d", n))
		args = append(args, *patch.EndDatetime)
		n++
	}
	if patch.EventType != nil {
		setClauses = append(setClauses, fmt.Sprintf("event_type = $%d", n))
		args = append(args, string(*patch.EventType))
		n++
	}
	if patch.GameTags != nil {
		setClauses = append(setClauses, fmt.Sprintf("game_tags = $%d", n))
		args = append(args, pq.Array(*patch.GameTags))
		n++
	}
	if patch.EntryFee != nil {
		setClauses = append(setClauses, fmt.Sprintf("entry_fee = $%d", n))
		args = append(args, *patch.EntryFee)
		n++
	}
	if patch.RegistrationLink != nil {
		setClauses = append(setClauses, fmt.Sprintf("registration_link = $%d", n))
		args = append(args, *patch.RegistrationLink)
		n++
	}
	if patch.ImageURL != nil {
		setClauses = append(setClauses, fmt.Sprintf("image_url = $%d", n))
		args = append(args, *patch.ImageURL)
		n++
	}
	if n == 1 {
		// No fields supplied; just fetch the current row.
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE events SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, eventColumns)
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// Delete removes the row matching id and returns its prior state.
func (r *eventRepository) Delete(ctx context.Context, id string) (*domain.Event, error) {
	query := `DELETE FROM events WHERE id = $1 RETURNING ` + eventColumns
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}
