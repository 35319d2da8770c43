package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEventInput_Validate(t *testing.T) {
	start := time.Date(2026, 9, 4, 19, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   EventInput
		wantErr bool
	}{
		{
			name:    "valid",
			input:   EventInput{Title: "Friday Night Magic", StartDatetime: start, EventType: EventTypeWeekly},
			wantErr: false,
		},
		{
			name:    "missing title",
			input:   EventInput{StartDatetime: start, EventType: EventTypeWeekly},
			wantErr: true,
		},
		{
			name:    "missing start",
			input:   EventInput{Title: "FNM", EventType: EventTypeWeekly},
			wantErr: true,
		},
		{
			name:    "unknown event type",
			input:   EventInput{Title: "FNM", StartDatetime: start, EventType: "monthly"},
			wantErr: true,
		},
		{
			name: "end before start is accepted",
			input: EventInput{
				Title:         "FNM",
				StartDatetime: start,
				EndDatetime:   timePtr(start.Add(-time.Hour)),
				EventType:     EventTypeOneTime,
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestEventPatch_Validate(t *testing.T) {
	empty := ""
	title := "Commander Night"
	badType := EventType("casual")
	goodType := EventTypeTournament

	tests := []struct {
		name    string
		patch   EventPatch
		wantErr bool
	}{
		{name: "empty patch", patch: EventPatch{}, wantErr: false},
		{name: "valid fields", patch: EventPatch{Title: &title, EventType: &goodType}, wantErr: false},
		{name: "empty title", patch: EventPatch{Title: &empty}, wantErr: true},
		{name: "unknown type", patch: EventPatch{EventType: &badType}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patch.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }
