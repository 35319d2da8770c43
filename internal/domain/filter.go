package domain

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FilterAll is the sentinel value that disables the game-tag and event-type
// filters.
const FilterAll = "all"

// DateWindow narrows events to a range starting at "now".
type DateWindow string

const (
	WindowAll    DateWindow = "all"
	WindowNext7  DateWindow = "next7"
	WindowNext30 DateWindow = "next30"
)

// EventFilter is the in-memory filter configuration applied to an already
// fetched event list. The zero value disables every filter; the events page
// without controls is exactly that degenerate configuration.
type EventFilter struct {
	SearchText string
	GameTag    string
	EventType  string
	DateWindow DateWindow
}

// FilterEvents returns the events matching every enabled predicate, in their
// original relative order. It is pure: the same events, filter, and now
// always yield the same subset, and the input is never mutated or re-sorted.
func FilterEvents(events []*Event, f EventFilter, now time.Time) []*Event {
	out := make([]*Event, 0, len(events))
	for _, e := range events {
		if matchesFilter(e, f, now) {
			out = append(out, e)
		}
	}
	return out
}

// searchFolder strips diacritics so "pokemon" finds "Pokémon".
var searchFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldSearch(s string) string {
	folded, _, err := transform.String(searchFolder, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

func matchesFilter(e *Event, f EventFilter, now time.Time) bool {
	if search := strings.TrimSpace(f.SearchText); search != "" {
		haystack := e.Title
		if e.Description != nil {
			haystack += " " + *e.Description
		}
		if !strings.Contains(foldSearch(haystack), foldSearch(search)) {
			return false
		}
	}

	if f.GameTag != "" && f.GameTag != FilterAll {
		found := false
		for _, tag := range e.GameTags {
			if tag == f.GameTag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.EventType != "" && f.EventType != FilterAll && string(e.EventType) != f.EventType {
		return false
	}

	switch f.DateWindow {
	case WindowNext7, WindowNext30:
		days := 7
		if f.DateWindow == WindowNext30 {
			days = 30
		}
		end := now.AddDate(0, 0, days)
		// Once a window is chosen, events strictly before now are excluded.
		if e.StartDatetime.Before(now) || e.StartDatetime.After(end) {
			return false
		}
	default:
		// "all", empty, and unrecognized tokens leave the date filter off.
	}

	return true
}
