package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Venue is a place that can host shows.
type Venue struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone"`
	Genres             Genres    `json:"genres"`
	FacebookLink       string    `json:"facebook_link"`
	WebsiteLink        string    `json:"website_link"`
	ImageLink          string    `json:"image_link"`
	SeekingTalent      bool      `json:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description"`
	CreatedAt          time.Time `json:"created_at"`
}

// VenueListing is one venue row of the grouped venue index.
type VenueListing struct {
	ID            int64
	Name          string
	City          string
	State         string
	UpcomingShows int
}

// VenueShow is a show seen from its venue: the performing artist and the time.
type VenueShow struct {
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// VenueDetail is a venue with its shows split around the current time.
type VenueDetail struct {
	Venue
	PastShows     []VenueShow
	UpcomingShows []VenueShow
}

// ListVenuesByLocation returns every venue ordered by state, city and name,
// each with the number of shows still to come.
func (s *Store) ListVenuesByLocation(ctx context.Context) ([]VenueListing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.name, v.city, v.state, COUNT(sh.id)
		FROM venues v
		LEFT JOIN shows sh ON sh.venue_id = v.id AND sh.start_time > $1
		GROUP BY v.id, v.name, v.city, v.state
		ORDER BY v.state ASC, v.city ASC, v.name ASC, v.id ASC
	`, s.now())
	if err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}
	defer rows.Close()

	var venues []VenueListing
	for rows.Next() {
		var v VenueListing
		if err := rows.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.UpcomingShows); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venues: %w", err)
	}

	return venues, nil
}

// SearchVenues matches venue names case-insensitively against term.
func (s *Store) SearchVenues(ctx context.Context, term string) (SearchResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.name, COUNT(sh.id)
		FROM venues v
		LEFT JOIN shows sh ON sh.venue_id = v.id AND sh.start_time > $2
		WHERE v.name ILIKE $1
		GROUP BY v.id, v.name
		ORDER BY v.name ASC, v.id ASC
	`, likePattern(term), s.now())
	if err != nil {
		return SearchResult{}, fmt.Errorf("search venues: %w", err)
	}
	defer rows.Close()

	return scanSearchResult(rows)
}

// Venue retrieves a single venue by ID.
func (s *Store) Venue(ctx context.Context, id int64) (Venue, error) {
	return scanVenue(s.db.QueryRowContext(ctx, selectVenueByID, id))
}

// VenueDetail loads a venue and every show booked there.
func (s *Store) VenueDetail(ctx context.Context, id int64) (VenueDetail, error) {
	var detail VenueDetail
	now := s.now()

	err := s.readTx(ctx, func(tx *sql.Tx) error {
		venue, err := scanVenue(tx.QueryRowContext(ctx, selectVenueByID, id))
		if err != nil {
			return err
		}
		detail.Venue = venue

		rows, err := tx.QueryContext(ctx, `
			SELECT a.id, a.name, a.image_link, sh.start_time
			FROM shows sh
			JOIN artists a ON a.id = sh.artist_id
			WHERE sh.venue_id = $1
			ORDER BY sh.start_time ASC, sh.id ASC
		`, id)
		if err != nil {
			return fmt.Errorf("select venue shows: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				show  VenueShow
				image sql.NullString
			)
			if err := rows.Scan(&show.ArtistID, &show.ArtistName, &image, &show.StartTime); err != nil {
				return fmt.Errorf("scan venue show: %w", err)
			}
			show.ArtistImageLink = image.String
			if isUpcoming(show.StartTime, now) {
				detail.UpcomingShows = append(detail.UpcomingShows, show)
			} else {
				detail.PastShows = append(detail.PastShows, show)
			}
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate venue shows: %w", err)
		}
		return nil
	})
	if err != nil {
		return VenueDetail{}, err
	}

	return detail, nil
}

// RecentVenues returns the most recently listed venues, newest first.
func (s *Store) RecentVenues(ctx context.Context, limit int) ([]Venue, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, city, state, address, phone, genres,
		       facebook_link, website_link, image_link,
		       seeking_talent, seeking_description, created_at
		FROM venues
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("select recent venues: %w", err)
	}
	defer rows.Close()

	var venues []Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent venues: %w", err)
	}

	return venues, nil
}

// CreateVenue inserts a venue and returns its generated ID.
func (s *Store) CreateVenue(ctx context.Context, venue Venue) (int64, error) {
	var id int64
	err := s.withTx(ctx, "create venue", func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, `
			INSERT INTO venues (name, city, state, address, phone, genres,
			                    facebook_link, website_link, image_link,
			                    seeking_talent, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id
		`,
			venue.Name, venue.City, venue.State, venue.Address, venue.Phone, venue.Genres,
			nullString(venue.FacebookLink), nullString(venue.WebsiteLink), nullString(venue.ImageLink),
			venue.SeekingTalent, nullString(venue.SeekingDescription),
		).Scan(&id)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateVenue overwrites every mutable field of the venue.
func (s *Store) UpdateVenue(ctx context.Context, id int64, venue Venue) error {
	return s.withTx(ctx, "update venue", func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE venues
			SET name = $1, city = $2, state = $3, address = $4, phone = $5, genres = $6,
			    facebook_link = $7, website_link = $8, image_link = $9,
			    seeking_talent = $10, seeking_description = $11
			WHERE id = $12
		`,
			venue.Name, venue.City, venue.State, venue.Address, venue.Phone, venue.Genres,
			nullString(venue.FacebookLink), nullString(venue.WebsiteLink), nullString(venue.ImageLink),
			venue.SeekingTalent, nullString(venue.SeekingDescription), id,
		)
		if err != nil {
			return fmt.Errorf("update venue: %w", err)
		}
		return expectOneRow(result, ErrVenueNotFound)
	})
}

// DeleteVenue removes a venue. Venues that still have shows are kept and
// ErrHasShows is reported.
func (s *Store) DeleteVenue(ctx context.Context, id int64) error {
	return s.withTx(ctx, "delete venue", func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: %w", ErrHasShows, err)
			}
			return fmt.Errorf("delete venue: %w", err)
		}
		return expectOneRow(result, ErrVenueNotFound)
	})
}

const selectVenueByID = `
	SELECT id, name, city, state, address, phone, genres,
	       facebook_link, website_link, image_link,
	       seeking_talent, seeking_description, created_at
	FROM venues
	WHERE id = $1
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVenue(row rowScanner) (Venue, error) {
	var v Venue
	var facebook, website, image, seekingDescr sql.NullString
	err := row.Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.Genres,
		&facebook, &website, &image, &v.SeekingTalent, &seekingDescr, &v.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Venue{}, ErrVenueNotFound
	}
	if err != nil {
		return Venue{}, fmt.Errorf("scan venue: %w", err)
	}

	v.FacebookLink = facebook.String
	v.WebsiteLink = website.String
	v.ImageLink = image.String
	v.SeekingDescription = seekingDescr.String
	return v, nil
}

func expectOneRow(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

// isUpcoming reports whether a show starting at start is still to come at now.
func isUpcoming(start, now time.Time) bool {
	return start.After(now)
}
