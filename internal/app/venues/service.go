package venues

import (
	"context"

	"fyyur/internal/forms"
	"fyyur/internal/store"
	"fyyur/internal/view"
)

// Store defines the persistence operations venues need.
type Store interface {
	ListVenuesByLocation(ctx context.Context) ([]store.VenueListing, error)
	SearchVenues(ctx context.Context, term string) (store.SearchResult, error)
	Venue(ctx context.Context, id int64) (store.Venue, error)
	VenueDetail(ctx context.Context, id int64) (store.VenueDetail, error)
	RecentVenues(ctx context.Context, limit int) ([]store.Venue, error)
	CreateVenue(ctx context.Context, venue store.Venue) (int64, error)
	UpdateVenue(ctx context.Context, id int64, venue store.Venue) error
	DeleteVenue(ctx context.Context, id int64) error
}

// Service coordinates venue pages and writes.
type Service interface {
	Areas(ctx context.Context) ([]view.Area, error)
	Search(ctx context.Context, term string) (view.SearchResults, error)
	Detail(ctx context.Context, id int64) (view.VenueDetail, error)
	EditForm(ctx context.Context, id int64) (view.VenueForm, error)
	Recent(ctx context.Context, limit int) ([]store.Venue, error)
	Create(ctx context.Context, in forms.VenueInput) (int64, error)
	Update(ctx context.Context, id int64, in forms.VenueInput) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs a venues Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Areas(ctx context.Context) ([]view.Area, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	listings, err := s.store.ListVenuesByLocation(ctx)
	if err != nil {
		return nil, err
	}
	return view.GroupByLocation(listings), nil
}

func (s *service) Search(ctx context.Context, term string) (view.SearchResults, error) {
	if err := ctx.Err(); err != nil {
		return view.SearchResults{}, err
	}
	result, err := s.store.SearchVenues(ctx, term)
	if err != nil {
		return view.SearchResults{}, err
	}
	return view.Search(term, result), nil
}

func (s *service) Detail(ctx context.Context, id int64) (view.VenueDetail, error) {
	if err := ctx.Err(); err != nil {
		return view.VenueDetail{}, err
	}
	detail, err := s.store.VenueDetail(ctx, id)
	if err != nil {
		return view.VenueDetail{}, err
	}
	return view.NewVenueDetail(detail), nil
}

func (s *service) EditForm(ctx context.Context, id int64) (view.VenueForm, error) {
	if err := ctx.Err(); err != nil {
		return view.VenueForm{}, err
	}
	venue, err := s.store.Venue(ctx, id)
	if err != nil {
		return view.VenueForm{}, err
	}
	return view.NewVenueForm(venue.ID, forms.VenueInputFrom(venue)), nil
}

func (s *service) Recent(ctx context.Context, limit int) ([]store.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.RecentVenues(ctx, limit)
}

// Create validates in and stores it, returning the new venue id. Invalid input
// is reported as forms.Errors without touching the store.
func (s *service) Create(ctx context.Context, in forms.VenueInput) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := forms.Check(in); err != nil {
		return 0, err
	}
	return s.store.CreateVenue(ctx, in.Venue())
}

func (s *service) Update(ctx context.Context, id int64, in forms.VenueInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := forms.Check(in); err != nil {
		return err
	}
	return s.store.UpdateVenue(ctx, id, in.Venue())
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteVenue(ctx, id)
}
