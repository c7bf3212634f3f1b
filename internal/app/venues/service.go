package venues

import (
	"context"
	"time"

	"fyyur/internal/listing"
	"fyyur/internal/models"
)

// Store defines the persistence operations the venue workflows rely on.
type Store interface {
	CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error)
	GetVenue(ctx context.Context, id int64) (models.Venue, error)
	UpdateVenue(ctx context.Context, id int64, venue models.Venue) (models.Venue, error)
	ListVenues(ctx context.Context) ([]models.Venue, error)
	SearchVenues(ctx context.Context, term string) ([]models.Venue, error)
	ListShowDetails(ctx context.Context) ([]models.ShowWithDetails, error)
	ListShowsByVenue(ctx context.Context, venueID int64) ([]models.ShowWithDetails, error)
}

// Service coordinates venue-related operations.
type Service interface {
	Create(ctx context.Context, venue models.Venue) (models.Venue, error)
	Get(ctx context.Context, id int64) (models.Venue, error)
	Update(ctx context.Context, id int64, venue models.Venue) (models.Venue, error)
	ListByArea(ctx context.Context) ([]listing.AreaGroup, error)
	Search(ctx context.Context, term string) (listing.SearchResults, error)
	Detail(ctx context.Context, id int64) (listing.VenueDetail, error)
}

type service struct {
	store Store
	now   func() time.Time
}

// New constructs a venues Service. A nil clock defaults to time.Now.
func New(store Store, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{store: store, now: now}
}

func (s *service) Create(ctx context.Context, venue models.Venue) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}
	return s.store.CreateVenue(ctx, venue)
}

func (s *service) Get(ctx context.Context, id int64) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}
	return s.store.GetVenue(ctx, id)
}

func (s *service) Update(ctx context.Context, id int64, venue models.Venue) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}
	return s.store.UpdateVenue(ctx, id, venue)
}

func (s *service) ListByArea(ctx context.Context) ([]listing.AreaGroup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	venues, err := s.store.ListVenues(ctx)
	if err != nil {
		return nil, err
	}
	shows, err := s.store.ListShowDetails(ctx)
	if err != nil {
		return nil, err
	}

	return listing.GroupVenuesByArea(venues, shows, s.now()), nil
}

func (s *service) Search(ctx context.Context, term string) (listing.SearchResults, error) {
	if err := ctx.Err(); err != nil {
		return listing.SearchResults{}, err
	}

	venues, err := s.store.SearchVenues(ctx, term)
	if err != nil {
		return listing.SearchResults{}, err
	}
	shows, err := s.store.ListShowDetails(ctx)
	if err != nil {
		return listing.SearchResults{}, err
	}

	return listing.VenueSearchResults(venues, shows, s.now()), nil
}

func (s *service) Detail(ctx context.Context, id int64) (listing.VenueDetail, error) {
	if err := ctx.Err(); err != nil {
		return listing.VenueDetail{}, err
	}

	venue, err := s.store.GetVenue(ctx, id)
	if err != nil {
		return listing.VenueDetail{}, err
	}
	shows, err := s.store.ListShowsByVenue(ctx, id)
	if err != nil {
		return listing.VenueDetail{}, err
	}

	return listing.VenueDetailView(venue, shows, s.now()), nil
}
