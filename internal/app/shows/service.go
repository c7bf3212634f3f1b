package shows

import (
	"context"

	"fyyur/internal/listing"
	"fyyur/internal/models"
)

// Store defines persistence operations for shows.
type Store interface {
	CreateShow(ctx context.Context, show models.Show) (models.Show, error)
	ListShowDetails(ctx context.Context) ([]models.ShowWithDetails, error)
}

// Service coordinates show-related operations.
type Service interface {
	Create(ctx context.Context, show models.Show) (models.Show, error)
	List(ctx context.Context) ([]listing.ShowRow, error)
}

type service struct {
	store Store
}

// New constructs a shows Service.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, show models.Show) (models.Show, error) {
	if err := ctx.Err(); err != nil {
		return models.Show{}, err
	}
	return s.store.CreateShow(ctx, show)
}

func (s *service) List(ctx context.Context) ([]listing.ShowRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	shows, err := s.store.ListShowDetails(ctx)
	if err != nil {
		return nil, err
	}
	return listing.FlattenShows(shows), nil
}
