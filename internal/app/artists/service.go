package artists

import (
	"context"
	"time"

	"fyyur/internal/listing"
	"fyyur/internal/models"
)

// Store defines the persistence operations the artist workflows rely on.
type Store interface {
	CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error)
	GetArtist(ctx context.Context, id int64) (models.Artist, error)
	UpdateArtist(ctx context.Context, id int64, artist models.Artist) (models.Artist, error)
	ListArtists(ctx context.Context) ([]models.Artist, error)
	SearchArtists(ctx context.Context, term string) ([]models.Artist, error)
	ListShowDetails(ctx context.Context) ([]models.ShowWithDetails, error)
	ListShowsByArtist(ctx context.Context, artistID int64) ([]models.ShowWithDetails, error)
}

// Service provides artist-centric operations.
type Service interface {
	Create(ctx context.Context, artist models.Artist) (models.Artist, error)
	Get(ctx context.Context, id int64) (models.Artist, error)
	Update(ctx context.Context, id int64, artist models.Artist) (models.Artist, error)
	List(ctx context.Context) ([]listing.ArtistEntry, error)
	Search(ctx context.Context, term string) (listing.SearchResults, error)
	Detail(ctx context.Context, id int64) (listing.ArtistDetail, error)
}

type service struct {
	store Store
	now   func() time.Time
}

// New constructs an artist Service. A nil clock defaults to time.Now.
func New(store Store, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{store: store, now: now}
}

func (s *service) Create(ctx context.Context, artist models.Artist) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}
	return s.store.CreateArtist(ctx, artist)
}

func (s *service) Get(ctx context.Context, id int64) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}
	return s.store.GetArtist(ctx, id)
}

func (s *service) Update(ctx context.Context, id int64, artist models.Artist) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}
	return s.store.UpdateArtist(ctx, id, artist)
}

func (s *service) List(ctx context.Context) ([]listing.ArtistEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	artists, err := s.store.ListArtists(ctx)
	if err != nil {
		return nil, err
	}
	return listing.ArtistIndex(artists), nil
}

func (s *service) Search(ctx context.Context, term string) (listing.SearchResults, error) {
	if err := ctx.Err(); err != nil {
		return listing.SearchResults{}, err
	}

	artists, err := s.store.SearchArtists(ctx, term)
	if err != nil {
		return listing.SearchResults{}, err
	}
	shows, err := s.store.ListShowDetails(ctx)
	if err != nil {
		return listing.SearchResults{}, err
	}

	return listing.ArtistSearchResults(artists, shows, s.now()), nil
}

func (s *service) Detail(ctx context.Context, id int64) (listing.ArtistDetail, error) {
	if err := ctx.Err(); err != nil {
		return listing.ArtistDetail{}, err
	}

	artist, err := s.store.GetArtist(ctx, id)
	if err != nil {
		return listing.ArtistDetail{}, err
	}
	shows, err := s.store.ListShowsByArtist(ctx, id)
	if err != nil {
		return listing.ArtistDetail{}, err
	}

	return listing.ArtistDetailView(artist, shows, s.now()), nil
}
