package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fyyur/internal/models"
)

const venueColumns = `id, name, city, state, address, phone, genres, image_link,
		       facebook_link, website_link, seeking_talent, seeking_description`

// CreateVenue inserts a new venue and returns it with its assigned id.
func (s *Store) CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error) {
	venue = NormalizeVenue(venue)
	if err := ValidateVenue(venue); err != nil {
		return models.Venue{}, err
	}

	err := s.withTx(ctx, "create venue", func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO venues (name, city, state, address, phone, genres, image_link,
			                    facebook_link, website_link, seeking_talent, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id
		`, venue.Name, venue.City, venue.State, venue.Address, venue.Phone, venue.Genres,
			venue.ImageLink, venue.FacebookLink, venue.WebsiteLink,
			venue.SeekingTalent, venue.SeekingDescription,
		).Scan(&venue.ID)
		return classify("insert venue", err)
	})
	if err != nil {
		return models.Venue{}, err
	}

	return venue, nil
}

// GetVenue retrieves a single venue by ID.
func (s *Store) GetVenue(ctx context.Context, id int64) (models.Venue, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+venueColumns+`
		FROM venues
		WHERE id = $1
	`, id)

	v, err := scanVenue(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Venue{}, &NotFoundError{Entity: "venue", ID: id}
	}
	if err != nil {
		return models.Venue{}, classify("select venue", err)
	}

	return v, nil
}

// UpdateVenue overwrites every mutable field of the venue with the given id.
func (s *Store) UpdateVenue(ctx context.Context, id int64, venue models.Venue) (models.Venue, error) {
	venue = NormalizeVenue(venue)
	if err := ValidateVenue(venue); err != nil {
		return models.Venue{}, err
	}

	var updated models.Venue
	err := s.withTx(ctx, "update venue", func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			UPDATE venues
			SET name = $1, city = $2, state = $3, address = $4, phone = $5, genres = $6,
			    image_link = $7, facebook_link = $8, website_link = $9,
			    seeking_talent = $10, seeking_description = $11
			WHERE id = $12
			RETURNING `+venueColumns+`
		`, venue.Name, venue.City, venue.State, venue.Address, venue.Phone, venue.Genres,
			venue.ImageLink, venue.FacebookLink, venue.WebsiteLink,
			venue.SeekingTalent, venue.SeekingDescription, id,
		)

		v, err := scanVenue(row)
		if errors.Is(err, sql.ErrNoRows) {
			return &NotFoundError{Entity: "venue", ID: id}
		}
		if err != nil {
			return classify("update venue", err)
		}
		updated = v
		return nil
	})
	if err != nil {
		return models.Venue{}, err
	}

	return updated, nil
}

// ListVenues returns every venue ordered by state, city and name.
func (s *Store) ListVenues(ctx context.Context) ([]models.Venue, error) {
	return s.queryVenues(ctx, "select venues", `
		SELECT `+venueColumns+`
		FROM venues
		ORDER BY state ASC, city ASC, name ASC
	`)
}

// ListVenuesInArea returns the venues located in the given city and state.
func (s *Store) ListVenuesInArea(ctx context.Context, city, state string) ([]models.Venue, error) {
	return s.queryVenues(ctx, "select venues in area", `
		SELECT `+venueColumns+`
		FROM venues
		WHERE city = $1 AND state = $2
		ORDER BY name ASC
	`, city, state)
}

// SearchVenues returns venues whose name contains term, ignoring case.
func (s *Store) SearchVenues(ctx context.Context, term string) ([]models.Venue, error) {
	return s.queryVenues(ctx, "search venues", `
		SELECT `+venueColumns+`
		FROM venues
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name ASC
	`, escapeLike(term))
}

func (s *Store) queryVenues(ctx context.Context, op, query string, args ...any) ([]models.Venue, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()

	venues := []models.Venue{}
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, classify(op, fmt.Errorf("scan venue: %w", err))
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(op, fmt.Errorf("iterate venues: %w", err))
	}

	return venues, nil
}

func scanVenue(row scanner) (models.Venue, error) {
	var v models.Venue
	err := row.Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.Genres,
		&v.ImageLink, &v.FacebookLink, &v.WebsiteLink,
		&v.SeekingTalent, &v.SeekingDescription,
	)
	return v, err
}
