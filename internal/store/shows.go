package store

import (
	"context"
	"database/sql"
	"fmt"

	"fyyur/internal/models"
)

const showDetailsQuery = `
		SELECT
			s.id, s.artist_id, s.venue_id, s.start_time,
			v.name AS venue_name, v.image_link AS venue_image_link,
			a.name AS artist_name, a.image_link AS artist_image_link
		FROM shows s
		INNER JOIN venues v ON s.venue_id = v.id
		INNER JOIN artists a ON s.artist_id = a.id
`

// CreateShow books an artist at a venue. A reference to a missing artist or
// venue fails with a *ConstraintError and nothing is written.
func (s *Store) CreateShow(ctx context.Context, show models.Show) (models.Show, error) {
	if err := ValidateShow(show); err != nil {
		return models.Show{}, err
	}
	show.StartTime = show.StartTime.UTC()

	err := s.withTx(ctx, "create show", func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO shows (artist_id, venue_id, start_time)
			VALUES ($1, $2, $3)
			RETURNING id
		`, show.ArtistID, show.VenueID, show.StartTime).Scan(&show.ID)
		return classify("insert show", err)
	})
	if err != nil {
		return models.Show{}, err
	}

	return show, nil
}

// ListShowDetails returns every show joined to its venue and artist.
func (s *Store) ListShowDetails(ctx context.Context) ([]models.ShowWithDetails, error) {
	return s.queryShowDetails(ctx, "select shows", showDetailsQuery+`
		ORDER BY s.start_time ASC, s.id ASC
	`)
}

// ListShowsByVenue returns the shows booked at a venue.
func (s *Store) ListShowsByVenue(ctx context.Context, venueID int64) ([]models.ShowWithDetails, error) {
	return s.queryShowDetails(ctx, "select shows by venue", showDetailsQuery+`
		WHERE s.venue_id = $1
		ORDER BY s.start_time ASC, s.id ASC
	`, venueID)
}

// ListShowsByArtist returns the shows booked for an artist.
func (s *Store) ListShowsByArtist(ctx context.Context, artistID int64) ([]models.ShowWithDetails, error) {
	return s.queryShowDetails(ctx, "select shows by artist", showDetailsQuery+`
		WHERE s.artist_id = $1
		ORDER BY s.start_time ASC, s.id ASC
	`, artistID)
}

// CountShows returns the number of stored shows.
func (s *Store) CountShows(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows`).Scan(&count); err != nil {
		return 0, classify("count shows", err)
	}
	return count, nil
}

func (s *Store) queryShowDetails(ctx context.Context, op, query string, args ...any) ([]models.ShowWithDetails, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()

	shows := []models.ShowWithDetails{}
	for rows.Next() {
		var sh models.ShowWithDetails
		if err := rows.Scan(
			&sh.ID, &sh.ArtistID, &sh.VenueID, &sh.StartTime,
			&sh.VenueName, &sh.VenueImageLink,
			&sh.ArtistName, &sh.ArtistImageLink,
		); err != nil {
			return nil, classify(op, fmt.Errorf("scan show: %w", err))
		}
		shows = append(shows, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(op, fmt.Errorf("iterate shows: %w", err))
	}

	return shows, nil
}
