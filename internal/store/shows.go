package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Show is a booking of one artist at one venue.
type Show struct {
	ID        int64     `json:"id"`
	ArtistID  int64     `json:"artist_id"`
	VenueID   int64     `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
}

// ShowListing is a show flattened together with both participants.
type ShowListing struct {
	ID              int64
	VenueID         int64
	VenueName       string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ListShows returns every show joined to its artist and venue.
func (s *Store) ListShows(ctx context.Context) ([]ShowListing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sh.id, v.id, v.name, a.id, a.name, a.image_link, sh.start_time
		FROM shows sh
		JOIN artists a ON a.id = sh.artist_id
		JOIN venues v ON v.id = sh.venue_id
		ORDER BY sh.start_time ASC, sh.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select shows: %w", err)
	}
	defer rows.Close()

	var shows []ShowListing
	for rows.Next() {
		var (
			show  ShowListing
			image sql.NullString
		)
		if err := rows.Scan(
			&show.ID, &show.VenueID, &show.VenueName,
			&show.ArtistID, &show.ArtistName, &image, &show.StartTime,
		); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		show.ArtistImageLink = image.String
		shows = append(shows, show)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shows: %w", err)
	}

	return shows, nil
}

// CreateShow books a show and returns its generated ID. The referenced
// artist and venue are checked by the foreign keys, not beforehand.
func (s *Store) CreateShow(ctx context.Context, show Show) (int64, error) {
	var id int64
	err := s.withTx(ctx, "create show", func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO shows (artist_id, venue_id, start_time)
			VALUES ($1, $2, $3)
			RETURNING id
		`, show.ArtistID, show.VenueID, show.StartTime).Scan(&id)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: %w", ErrUnknownParticipant, err)
			}
			return fmt.Errorf("insert show: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
