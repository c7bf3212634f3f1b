// Package memory implements the directory store in process memory. It honours
// the same contracts as the Postgres store and is used by tests and by
// STORE=memory runs.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"fyyur/internal/models"
	"fyyur/internal/store"
)

// Store keeps venues, artists and shows in maps guarded by a single lock.
type Store struct {
	mu sync.RWMutex

	venues  map[int64]models.Venue
	artists map[int64]models.Artist
	shows   map[int64]models.Show

	lastVenueID  int64
	lastArtistID int64
	lastShowID   int64
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		venues:  make(map[int64]models.Venue),
		artists: make(map[int64]models.Artist),
		shows:   make(map[int64]models.Show),
	}
}

// CreateVenue inserts a new venue and returns it with its assigned id.
func (s *Store) CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}
	venue = store.NormalizeVenue(venue)
	if err := store.ValidateVenue(venue); err != nil {
		return models.Venue{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastVenueID++
	venue.ID = s.lastVenueID
	venue.Genres = slices.Clone(venue.Genres)
	s.venues[venue.ID] = venue

	return cloneVenue(venue), nil
}

// GetVenue retrieves a single venue by ID.
func (s *Store) GetVenue(ctx context.Context, id int64) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.venues[id]
	if !ok {
		return models.Venue{}, &store.NotFoundError{Entity: "venue", ID: id}
	}
	return cloneVenue(v), nil
}

// UpdateVenue overwrites every mutable field of the venue with the given id.
func (s *Store) UpdateVenue(ctx context.Context, id int64, venue models.Venue) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}
	venue = store.NormalizeVenue(venue)
	if err := store.ValidateVenue(venue); err != nil {
		return models.Venue{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.venues[id]; !ok {
		return models.Venue{}, &store.NotFoundError{Entity: "venue", ID: id}
	}
	venue.ID = id
	venue.Genres = slices.Clone(venue.Genres)
	s.venues[id] = venue

	return cloneVenue(venue), nil
}

// ListVenues returns every venue ordered by state, city and name.
func (s *Store) ListVenues(ctx context.Context) ([]models.Venue, error) {
	return s.filterVenues(ctx, func(models.Venue) bool { return true }, compareVenueArea)
}

// ListVenuesInArea returns the venues located in the given city and state.
func (s *Store) ListVenuesInArea(ctx context.Context, city, state string) ([]models.Venue, error) {
	return s.filterVenues(ctx, func(v models.Venue) bool {
		return v.City == city && v.State == state
	}, compareVenueName)
}

// SearchVenues returns venues whose name contains term, ignoring case.
func (s *Store) SearchVenues(ctx context.Context, term string) ([]models.Venue, error) {
	needle := fold(term)
	return s.filterVenues(ctx, func(v models.Venue) bool {
		return strings.Contains(fold(v.Name), needle)
	}, compareVenueName)
}

func (s *Store) filterVenues(ctx context.Context, keep func(models.Venue) bool, order func(a, b models.Venue) int) ([]models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	venues := []models.Venue{}
	for _, v := range s.venues {
		if keep(v) {
			venues = append(venues, cloneVenue(v))
		}
	}
	slices.SortFunc(venues, order)
	return venues, nil
}

// CreateArtist inserts a new artist and returns it with its assigned id.
func (s *Store) CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}
	artist = store.NormalizeArtist(artist)
	if err := store.ValidateArtist(artist); err != nil {
		return models.Artist{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastArtistID++
	artist.ID = s.lastArtistID
	artist.Genres = slices.Clone(artist.Genres)
	s.artists[artist.ID] = artist

	return cloneArtist(artist), nil
}

// GetArtist retrieves a single artist by ID.
func (s *Store) GetArtist(ctx context.Context, id int64) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.artists[id]
	if !ok {
		return models.Artist{}, &store.NotFoundError{Entity: "artist", ID: id}
	}
	return cloneArtist(a), nil
}

// UpdateArtist overwrites every mutable field of the artist with the given id.
func (s *Store) UpdateArtist(ctx context.Context, id int64, artist models.Artist) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}
	artist = store.NormalizeArtist(artist)
	if err := store.ValidateArtist(artist); err != nil {
		return models.Artist{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.artists[id]; !ok {
		return models.Artist{}, &store.NotFoundError{Entity: "artist", ID: id}
	}
	artist.ID = id
	artist.Genres = slices.Clone(artist.Genres)
	s.artists[id] = artist

	return cloneArtist(artist), nil
}

// ListArtists returns every artist ordered by name.
func (s *Store) ListArtists(ctx context.Context) ([]models.Artist, error) {
	return s.filterArtists(ctx, func(models.Artist) bool { return true })
}

// SearchArtists returns artists whose name contains term, ignoring case.
func (s *Store) SearchArtists(ctx context.Context, term string) ([]models.Artist, error) {
	needle := fold(term)
	return s.filterArtists(ctx, func(a models.Artist) bool {
		return strings.Contains(fold(a.Name), needle)
	})
}

func (s *Store) filterArtists(ctx context.Context, keep func(models.Artist) bool) ([]models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	artists := []models.Artist{}
	for _, a := range s.artists {
		if keep(a) {
			artists = append(artists, cloneArtist(a))
		}
	}
	slices.SortFunc(artists, func(a, b models.Artist) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return artists, nil
}

// CreateShow books an artist at a venue. Missing references fail with a
// *store.ConstraintError and leave the show set untouched.
func (s *Store) CreateShow(ctx context.Context, show models.Show) (models.Show, error) {
	if err := ctx.Err(); err != nil {
		return models.Show{}, err
	}
	if err := store.ValidateShow(show); err != nil {
		return models.Show{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.artists[show.ArtistID]; !ok {
		return models.Show{}, &store.ConstraintError{
			Constraint: "shows_artist_id_fkey",
			Err:        fmt.Errorf("artist %d does not exist", show.ArtistID),
		}
	}
	if _, ok := s.venues[show.VenueID]; !ok {
		return models.Show{}, &store.ConstraintError{
			Constraint: "shows_venue_id_fkey",
			Err:        fmt.Errorf("venue %d does not exist", show.VenueID),
		}
	}

	s.lastShowID++
	show.ID = s.lastShowID
	show.StartTime = show.StartTime.UTC()
	s.shows[show.ID] = show

	return show, nil
}

// ListShowDetails returns every show joined to its venue and artist.
func (s *Store) ListShowDetails(ctx context.Context) ([]models.ShowWithDetails, error) {
	return s.showDetails(ctx, func(models.Show) bool { return true })
}

// ListShowsByVenue returns the shows booked at a venue.
func (s *Store) ListShowsByVenue(ctx context.Context, venueID int64) ([]models.ShowWithDetails, error) {
	return s.showDetails(ctx, func(sh models.Show) bool { return sh.VenueID == venueID })
}

// ListShowsByArtist returns the shows booked for an artist.
func (s *Store) ListShowsByArtist(ctx context.Context, artistID int64) ([]models.ShowWithDetails, error) {
	return s.showDetails(ctx, func(sh models.Show) bool { return sh.ArtistID == artistID })
}

// CountShows returns the number of stored shows.
func (s *Store) CountShows(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.shows), nil
}

func (s *Store) showDetails(ctx context.Context, keep func(models.Show) bool) ([]models.ShowWithDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	shows := []models.ShowWithDetails{}
	for _, sh := range s.shows {
		if !keep(sh) {
			continue
		}
		v := s.venues[sh.VenueID]
		a := s.artists[sh.ArtistID]
		shows = append(shows, models.ShowWithDetails{
			Show:            sh,
			VenueName:       v.Name,
			VenueImageLink:  v.ImageLink,
			ArtistName:      a.Name,
			ArtistImageLink: a.ImageLink,
		})
	}
	slices.SortFunc(shows, func(a, b models.ShowWithDetails) int {
		if c := a.StartTime.Compare(b.StartTime); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return shows, nil
}

// fold applies Unicode case folding so that comparisons ignore case.
func fold(s string) string {
	return cases.Fold().String(s)
}

func compareVenueArea(a, b models.Venue) int {
	if c := strings.Compare(a.State, b.State); c != 0 {
		return c
	}
	if c := strings.Compare(a.City, b.City); c != 0 {
		return c
	}
	return compareVenueName(a, b)
}

func compareVenueName(a, b models.Venue) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func cloneVenue(v models.Venue) models.Venue {
	v.Genres = slices.Clone(v.Genres)
	return v
}

func cloneArtist(a models.Artist) models.Artist {
	a.Genres = slices.Clone(a.Genres)
	return a
}
