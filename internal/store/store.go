package store

import (
	"context"
	"database/sql"
	"strings"

	"fyyur/internal/models"
)

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// withTx runs fn inside a transaction. The transaction is rolled back on every
// path that does not reach a successful commit.
func (s *Store) withTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &StorageError{Op: op + ": begin tx", Err: err}
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return classify(op+": commit tx", err)
	}
	tx = nil

	return nil
}

// NormalizeVenue trims free-text identity fields and genre tags.
func NormalizeVenue(v models.Venue) models.Venue {
	v.Name = strings.TrimSpace(v.Name)
	v.City = strings.TrimSpace(v.City)
	v.State = strings.TrimSpace(v.State)
	v.Address = strings.TrimSpace(v.Address)
	v.Phone = strings.TrimSpace(v.Phone)
	v.Genres = v.Genres.Trimmed()
	return v
}

// NormalizeArtist trims free-text identity fields and genre tags.
func NormalizeArtist(a models.Artist) models.Artist {
	a.Name = strings.TrimSpace(a.Name)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	a.Phone = strings.TrimSpace(a.Phone)
	a.Genres = a.Genres.Trimmed()
	return a
}

// ValidateVenue checks the required venue fields.
func ValidateVenue(v models.Venue) error {
	switch {
	case strings.TrimSpace(v.Name) == "":
		return &ValidationError{Field: "name", Reason: "is required"}
	case strings.TrimSpace(v.City) == "":
		return &ValidationError{Field: "city", Reason: "is required"}
	case strings.TrimSpace(v.State) == "":
		return &ValidationError{Field: "state", Reason: "is required"}
	case strings.TrimSpace(v.Address) == "":
		return &ValidationError{Field: "address", Reason: "is required"}
	}
	return validateGenres(v.Genres)
}

// ValidateArtist checks the required artist fields.
func ValidateArtist(a models.Artist) error {
	switch {
	case strings.TrimSpace(a.Name) == "":
		return &ValidationError{Field: "name", Reason: "is required"}
	case strings.TrimSpace(a.City) == "":
		return &ValidationError{Field: "city", Reason: "is required"}
	case strings.TrimSpace(a.State) == "":
		return &ValidationError{Field: "state", Reason: "is required"}
	}
	return validateGenres(a.Genres)
}

// ValidateShow checks that both references and the start time are present.
func ValidateShow(sh models.Show) error {
	switch {
	case sh.ArtistID <= 0:
		return &ValidationError{Field: "artist_id", Reason: "is required"}
	case sh.VenueID <= 0:
		return &ValidationError{Field: "venue_id", Reason: "is required"}
	case sh.StartTime.IsZero():
		return &ValidationError{Field: "start_time", Reason: "is required"}
	}
	return nil
}

func validateGenres(g models.Genres) error {
	if len(g) == 0 {
		return &ValidationError{Field: "genres", Reason: "at least one genre is required"}
	}
	if g.HasBlank() {
		return &ValidationError{Field: "genres", Reason: "genre tags must not be blank"}
	}
	return nil
}

// escapeLike makes LIKE metacharacters in term match literally.
func escapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}
