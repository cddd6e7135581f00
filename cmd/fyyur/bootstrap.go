package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"fyyur/internal/store"
)

type seedVenue struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Genres             store.Genres
	FacebookLink       string
	WebsiteLink        string
	ImageLink          string
	SeekingTalent      bool
	SeekingDescription string
}

type seedArtist struct {
	Name               string
	City               string
	State              string
	Phone              string
	Genres             store.Genres
	FacebookLink       string
	WebsiteLink        string
	ImageLink          string
	SeekingVenue       bool
	SeekingDescription string
}

type seedShow struct {
	Venue     string
	Artist    string
	StartTime time.Time
}

var demoVenues = []seedVenue{
	{
		Name:               "The Musical Hop",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Phone:              "123-123-1234",
		Genres:             store.Genres{"Jazz", "Reggae", "Classical", "Folk"},
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		WebsiteLink:        "https://www.themusicalhop.com",
		ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?w=400",
		SeekingTalent:      true,
		SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
	},
	{
		Name:         "The Dueling Pianos Bar",
		City:         "New York",
		State:        "NY",
		Address:      "335 Delancey Street",
		Phone:        "914-003-1132",
		Genres:       store.Genres{"Classical", "R&B", "Hip-Hop"},
		FacebookLink: "https://www.facebook.com/theduelingpianos",
		WebsiteLink:  "https://www.theduelingpianos.com",
		ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?w=400",
	},
	{
		Name:         "Park Square Live Music & Coffee",
		City:         "San Francisco",
		State:        "CA",
		Address:      "34 Whiskey Moore Ave",
		Phone:        "415-000-1234",
		Genres:       store.Genres{"Rock n Roll", "Jazz", "Classical", "Folk"},
		FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		WebsiteLink:  "https://www.parksquarelivemusicandcoffee.com",
		ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?w=400",
	},
}

var demoArtists = []seedArtist{
	{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Genres:             store.Genres{"Rock n Roll"},
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		WebsiteLink:        "https://www.gunsnpetalsband.com",
		ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300",
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
	},
	{
		Name:         "Matt Quevedo",
		City:         "New York",
		State:        "NY",
		Phone:        "300-400-5000",
		Genres:       store.Genres{"Jazz"},
		FacebookLink: "https://www.facebook.com/mattquevedo923251523",
		ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?w=334",
	},
	{
		Name:      "The Wild Sax Band",
		City:      "San Francisco",
		State:     "CA",
		Phone:     "432-325-5432",
		Genres:    store.Genres{"Jazz", "Classical"},
		ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?w=794",
	},
}

var demoShows = []seedShow{
	{Venue: "The Musical Hop", Artist: "Guns N Petals", StartTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
	{Venue: "Park Square Live Music & Coffee", Artist: "Matt Quevedo", StartTime: time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)},
	{Venue: "Park Square Live Music & Coffee", Artist: "The Wild Sax Band", StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
	{Venue: "Park Square Live Music & Coffee", Artist: "The Wild Sax Band", StartTime: time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
	{Venue: "Park Square Live Music & Coffee", Artist: "The Wild Sax Band", StartTime: time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC)},
}

// seedDemoData loads the demo listings in one transaction. It does nothing
// when any venue or artist already exists.
func seedDemoData(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	var existing int
	if err := tx.QueryRowContext(ctx, `
		SELECT (SELECT COUNT(*) FROM venues) + (SELECT COUNT(*) FROM artists)
	`).Scan(&existing); err != nil {
		return fmt.Errorf("count existing listings: %w", err)
	}
	if existing > 0 {
		log.Info().Int("listings", existing).Msg("database not empty, skipping demo data")
		return nil
	}

	venueIDs := make(map[string]int64, len(demoVenues))
	for _, v := range demoVenues {
		var id int64
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO venues (name, city, state, address, phone, genres, facebook_link, website_link, image_link, seeking_talent, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id
		`, v.Name, v.City, v.State, v.Address, v.Phone, v.Genres,
			nullIfEmpty(v.FacebookLink), nullIfEmpty(v.WebsiteLink), nullIfEmpty(v.ImageLink),
			v.SeekingTalent, nullIfEmpty(v.SeekingDescription),
		).Scan(&id); err != nil {
			return fmt.Errorf("seed venue %q: %w", v.Name, err)
		}
		venueIDs[v.Name] = id
	}

	artistIDs := make(map[string]int64, len(demoArtists))
	for _, a := range demoArtists {
		var id int64
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO artists (name, city, state, phone, genres, facebook_link, website_link, image_link, seeking_venue, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id
		`, a.Name, nullIfEmpty(a.City), nullIfEmpty(a.State), nullIfEmpty(a.Phone), a.Genres,
			nullIfEmpty(a.FacebookLink), nullIfEmpty(a.WebsiteLink), nullIfEmpty(a.ImageLink),
			a.SeekingVenue, nullIfEmpty(a.SeekingDescription),
		).Scan(&id); err != nil {
			return fmt.Errorf("seed artist %q: %w", a.Name, err)
		}
		artistIDs[a.Name] = id
	}

	for _, sh := range demoShows {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO shows (artist_id, venue_id, start_time)
			VALUES ($1, $2, $3)
		`, artistIDs[sh.Artist], venueIDs[sh.Venue], sh.StartTime); err != nil {
			return fmt.Errorf("seed show %s at %s: %w", sh.Artist, sh.Venue, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	tx = nil

	log.Info().
		Int("venues", len(demoVenues)).
		Int("artists", len(demoArtists)).
		Int("shows", len(demoShows)).
		Msg("demo data loaded")
	return nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
