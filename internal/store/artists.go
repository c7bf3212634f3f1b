package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fyyur/internal/models"
)

const artistColumns = `id, name, city, state, phone, genres, image_link,
		       facebook_link, website_link, seeking_venues, seeking_description`

// CreateArtist inserts a new artist and returns it with its assigned id.
func (s *Store) CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error) {
	artist = NormalizeArtist(artist)
	if err := ValidateArtist(artist); err != nil {
		return models.Artist{}, err
	}

	err := s.withTx(ctx, "create artist", func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO artists (name, city, state, phone, genres, image_link,
			                     facebook_link, website_link, seeking_venues, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id
		`, artist.Name, artist.City, artist.State, artist.Phone, artist.Genres,
			artist.ImageLink, artist.FacebookLink, artist.WebsiteLink,
			artist.SeekingVenues, artist.SeekingDescription,
		).Scan(&artist.ID)
		return classify("insert artist", err)
	})
	if err != nil {
		return models.Artist{}, err
	}

	return artist, nil
}

// GetArtist retrieves a single artist by ID.
func (s *Store) GetArtist(ctx context.Context, id int64) (models.Artist, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+artistColumns+`
		FROM artists
		WHERE id = $1
	`, id)

	a, err := scanArtist(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Artist{}, &NotFoundError{Entity: "artist", ID: id}
	}
	if err != nil {
		return models.Artist{}, classify("select artist", err)
	}

	return a, nil
}

// UpdateArtist overwrites every mutable field of the artist with the given id.
func (s *Store) UpdateArtist(ctx context.Context, id int64, artist models.Artist) (models.Artist, error) {
	artist = NormalizeArtist(artist)
	if err := ValidateArtist(artist); err != nil {
		return models.Artist{}, err
	}

	var updated models.Artist
	err := s.withTx(ctx, "update artist", func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			UPDATE artists
			SET name = $1, city = $2, state = $3, phone = $4, genres = $5,
			    image_link = $6, facebook_link = $7, website_link = $8,
			    seeking_venues = $9, seeking_description = $10
			WHERE id = $11
			RETURNING `+artistColumns+`
		`, artist.Name, artist.City, artist.State, artist.Phone, artist.Genres,
			artist.ImageLink, artist.FacebookLink, artist.WebsiteLink,
			artist.SeekingVenues, artist.SeekingDescription, id,
		)

		a, err := scanArtist(row)
		if errors.Is(err, sql.ErrNoRows) {
			return &NotFoundError{Entity: "artist", ID: id}
		}
		if err != nil {
			return classify("update artist", err)
		}
		updated = a
		return nil
	})
	if err != nil {
		return models.Artist{}, err
	}

	return updated, nil
}

// ListArtists returns every artist ordered by name.
func (s *Store) ListArtists(ctx context.Context) ([]models.Artist, error) {
	return s.queryArtists(ctx, "select artists", `
		SELECT `+artistColumns+`
		FROM artists
		ORDER BY name ASC
	`)
}

// SearchArtists returns artists whose name contains term, ignoring case.
func (s *Store) SearchArtists(ctx context.Context, term string) ([]models.Artist, error) {
	return s.queryArtists(ctx, "search artists", `
		SELECT `+artistColumns+`
		FROM artists
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name ASC
	`, escapeLike(term))
}

func (s *Store) queryArtists(ctx context.Context, op, query string, args ...any) ([]models.Artist, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()

	artists := []models.Artist{}
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, classify(op, fmt.Errorf("scan artist: %w", err))
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(op, fmt.Errorf("iterate artists: %w", err))
	}

	return artists, nil
}

func scanArtist(row scanner) (models.Artist, error) {
	var a models.Artist
	err := row.Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.Genres,
		&a.ImageLink, &a.FacebookLink, &a.WebsiteLink,
		&a.SeekingVenues, &a.SeekingDescription,
	)
	return a, err
}
