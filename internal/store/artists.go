package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Artist is a performer who can be booked into shows.
type Artist struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone"`
	Genres             Genres    `json:"genres"`
	FacebookLink       string    `json:"facebook_link"`
	WebsiteLink        string    `json:"website_link"`
	ImageLink          string    `json:"image_link"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description"`
	CreatedAt          time.Time `json:"created_at"`
}

// ArtistSummary is the id and name pair used by listings and pick lists.
type ArtistSummary struct {
	ID   int64
	Name string
}

// ArtistShow is a show seen from its artist: the hosting venue and the time.
type ArtistShow struct {
	VenueID        int64
	VenueName      string
	VenueImageLink string
	StartTime      time.Time
}

// ArtistDetail is an artist with its shows split around the current time.
type ArtistDetail struct {
	Artist
	PastShows     []ArtistShow
	UpcomingShows []ArtistShow
}

// ListArtists returns the id and name of every artist.
func (s *Store) ListArtists(ctx context.Context) ([]ArtistSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name
		FROM artists
		ORDER BY name ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select artists: %w", err)
	}
	defer rows.Close()

	var artists []ArtistSummary
	for rows.Next() {
		var a ArtistSummary
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}

	return artists, nil
}

// SearchArtists matches artist names case-insensitively against term.
func (s *Store) SearchArtists(ctx context.Context, term string) (SearchResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.name, COUNT(sh.id)
		FROM artists a
		LEFT JOIN shows sh ON sh.artist_id = a.id AND sh.start_time > $2
		WHERE a.name ILIKE $1
		GROUP BY a.id, a.name
		ORDER BY a.name ASC, a.id ASC
	`, likePattern(term), s.now())
	if err != nil {
		return SearchResult{}, fmt.Errorf("search artists: %w", err)
	}
	defer rows.Close()

	return scanSearchResult(rows)
}

// Artist retrieves a single artist by ID.
func (s *Store) Artist(ctx context.Context, id int64) (Artist, error) {
	return scanArtist(s.db.QueryRowContext(ctx, selectArtistByID, id))
}

// ArtistDetail loads an artist and every show it plays.
func (s *Store) ArtistDetail(ctx context.Context, id int64) (ArtistDetail, error) {
	var detail ArtistDetail
	now := s.now()

	err := s.readTx(ctx, func(tx *sql.Tx) error {
		artist, err := scanArtist(tx.QueryRowContext(ctx, selectArtistByID, id))
		if err != nil {
			return err
		}
		detail.Artist = artist

		rows, err := tx.QueryContext(ctx, `
			SELECT v.id, v.name, v.image_link, sh.start_time
			FROM shows sh
			JOIN venues v ON v.id = sh.venue_id
			WHERE sh.artist_id = $1
			ORDER BY sh.start_time ASC, sh.id ASC
		`, id)
		if err != nil {
			return fmt.Errorf("select artist shows: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				show  ArtistShow
				image sql.NullString
			)
			if err := rows.Scan(&show.VenueID, &show.VenueName, &image, &show.StartTime); err != nil {
				return fmt.Errorf("scan artist show: %w", err)
			}
			show.VenueImageLink = image.String
			if isUpcoming(show.StartTime, now) {
				detail.UpcomingShows = append(detail.UpcomingShows, show)
			} else {
				detail.PastShows = append(detail.PastShows, show)
			}
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate artist shows: %w", err)
		}
		return nil
	})
	if err != nil {
		return ArtistDetail{}, err
	}

	return detail, nil
}

// RecentArtists returns the most recently listed artists, newest first.
func (s *Store) RecentArtists(ctx context.Context, limit int) ([]Artist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, city, state, phone, genres,
		       facebook_link, website_link, image_link,
		       seeking_venue, seeking_description, created_at
		FROM artists
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("select recent artists: %w", err)
	}
	defer rows.Close()

	var artists []Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent artists: %w", err)
	}

	return artists, nil
}

// CreateArtist inserts an artist and returns its generated ID.
func (s *Store) CreateArtist(ctx context.Context, artist Artist) (int64, error) {
	var id int64
	err := s.withTx(ctx, "create artist", func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, `
			INSERT INTO artists (name, city, state, phone, genres,
			                     facebook_link, website_link, image_link,
			                     seeking_venue, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id
		`,
			artist.Name, nullString(artist.City), nullString(artist.State), nullString(artist.Phone), artist.Genres,
			nullString(artist.FacebookLink), nullString(artist.WebsiteLink), nullString(artist.ImageLink),
			artist.SeekingVenue, nullString(artist.SeekingDescription),
		).Scan(&id)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateArtist overwrites every mutable field of the artist.
func (s *Store) UpdateArtist(ctx context.Context, id int64, artist Artist) error {
	return s.withTx(ctx, "update artist", func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE artists
			SET name = $1, city = $2, state = $3, phone = $4, genres = $5,
			    facebook_link = $6, website_link = $7, image_link = $8,
			    seeking_venue = $9, seeking_description = $10
			WHERE id = $11
		`,
			artist.Name, nullString(artist.City), nullString(artist.State), nullString(artist.Phone), artist.Genres,
			nullString(artist.FacebookLink), nullString(artist.WebsiteLink), nullString(artist.ImageLink),
			artist.SeekingVenue, nullString(artist.SeekingDescription), id,
		)
		if err != nil {
			return fmt.Errorf("update artist: %w", err)
		}
		return expectOneRow(result, ErrArtistNotFound)
	})
}

// DeleteArtist removes an artist. Artists that still have shows are kept and
// ErrHasShows is reported.
func (s *Store) DeleteArtist(ctx context.Context, id int64) error {
	return s.withTx(ctx, "delete artist", func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM artists WHERE id = $1`, id)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: %w", ErrHasShows, err)
			}
			return fmt.Errorf("delete artist: %w", err)
		}
		return expectOneRow(result, ErrArtistNotFound)
	})
}

const selectArtistByID = `
	SELECT id, name, city, state, phone, genres,
	       facebook_link, website_link, image_link,
	       seeking_venue, seeking_description, created_at
	FROM artists
	WHERE id = $1
`

func scanArtist(row rowScanner) (Artist, error) {
	var a Artist
	var city, state, phone, facebook, website, image, seekingDescr sql.NullString
	err := row.Scan(
		&a.ID, &a.Name, &city, &state, &phone, &a.Genres,
		&facebook, &website, &image, &a.SeekingVenue, &seekingDescr, &a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Artist{}, ErrArtistNotFound
	}
	if err != nil {
		return Artist{}, fmt.Errorf("scan artist: %w", err)
	}

	a.City = city.String
	a.State = state.String
	a.Phone = phone.String
	a.FacebookLink = facebook.String
	a.WebsiteLink = website.String
	a.ImageLink = image.String
	a.SeekingDescription = seekingDescr.String
	return a, nil
}
