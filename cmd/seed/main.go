// Command seed upserts a set of sample events through the elevated store
// credential. Running it twice is safe: rows are keyed on id.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"dragonfire/config"
	"dragonfire/internal/domain"
	"dragonfire/internal/repository/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	gateway := postgres.NewGateway(cfg)
	store, err := gateway.Acquire(domain.TrustElevated)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Store not configured. Ensure STORE_URL and STORE_SERVICE_KEY are set in .env")
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	events := sampleEvents()
	for _, in := range events {
		if _, err := store.Upsert(ctx, in); err != nil {
			fmt.Fprintln(os.Stderr, "Seed failed:", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Seeded %d events.\n", len(events))
}

func sampleEvents() []*domain.EventInput {
	return []*domain.EventInput{
		{
			ID:            "weekly-fnm-standard",
			Title:         "Friday Night Magic – Standard",
			Description:   ptr("Weekly Standard format. Friendly pods, new players welcome. Prize packs for top finishers."),
			StartDatetime: nextUpcoming(time.Friday, 19, 0),
			EndDatetime:   ptrTime(nextUpcoming(time.Friday, 22, 0)),
			EventType:     domain.EventTypeWeekly,
			GameTags:      []string{"Magic: The Gathering"},
			EntryFee:      ptr("$10"),
		},
		{
			ID:            "weekly-commander",
			Title:         "Commander Casual Night",
			Description:   ptr("Low-pressure Commander pods. Bring a deck or borrow a shop precon. Focus on inclusive play."),
			StartDatetime: nextUpcoming(time.Wednesday, 18, 30),
			EndDatetime:   ptrTime(nextUpcoming(time.Wednesday, 21, 30)),
			EventType:     domain.EventTypeWeekly,
			GameTags:      []string{"Magic: The Gathering"},
			EntryFee:      ptr("$5"),
		},
		{
			ID:            "pokemon-league",
			Title:         "Pokémon League Night",
			Description:   ptr("Weekly Pokémon TCG play. Great for juniors and casual play. Bring a standard-legal deck."),
			StartDatetime: nextUpcoming(time.Saturday, 13, 0),
			EndDatetime:   ptrTime(nextUpcoming(time.Saturday, 15, 0)),
			EventType:     domain.EventTypeWeekly,
			GameTags:      []string{"Pokémon TCG"},
			EntryFee:      ptr("$5"),
		},
		{
			ID:               "oneoff-mtg-pre-release",
			Title:            "MTG Pre-release: Emberfall",
			Description:      ptr("Sealed deck pre-release for the Emberfall set. 4 rounds, prize support for all participants."),
			StartDatetime:    daysFromNow(7, 18, 30),
			EndDatetime:      ptrTime(daysFromNow(7, 22, 0)),
			EventType:        domain.EventTypeOneTime,
			GameTags:         []string{"Magic: The Gathering"},
			EntryFee:         ptr("$35"),
			RegistrationLink: ptr("https://example.com/register/emberfall-pre"),
		},
		{
			ID:               "tournament-pkmn",
			Title:            "Pokémon Store Championship",
			Description:      ptr("Swiss rounds with cut to top 8. Bring a standard-legal deck and decklist. Judges on site."),
			StartDatetime:    daysFromNow(14, 12, 0),
			EndDatetime:      ptrTime(daysFromNow(14, 17, 0)),
			EventType:        domain.EventTypeTournament,
			GameTags:         []string{"Pokémon TCG"},
			EntryFee:         ptr("$20"),
			RegistrationLink: ptr("https://example.com/register/pkmn-champs"),
		},
	}
}

// nextUpcoming returns the next occurrence of weekday at hour:minute local
// time that is still in the future, up to a week out.
func nextUpcoming(weekday time.Weekday, hour, minute int) time.Time {
	now := time.Now()
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	delta := int(weekday - target.Weekday())
	if delta < 0 || (delta == 0 && !target.After(now)) {
		delta += 7
	}
	return target.AddDate(0, 0, delta)
}

func daysFromNow(days, hour, minute int) time.Time {
	now := time.Now()
	d := now.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, now.Location())
}

func ptr(s string) *string { return &s }

func ptrTime(t time.Time) *time.Time { return &t }
