package shows

import (
	"context"
	"time"

	"fyyur/internal/forms"
	"fyyur/internal/store"
	"fyyur/internal/view"
)

// Store defines the persistence operations shows need.
type Store interface {
	ListShows(ctx context.Context) ([]store.ShowListing, error)
	ListArtists(ctx context.Context) ([]store.ArtistSummary, error)
	ListVenuesByLocation(ctx context.Context) ([]store.VenueListing, error)
	CreateShow(ctx context.Context, show store.Show) (int64, error)
}

// Service coordinates the show listing and bookings.
type Service interface {
	List(ctx context.Context) ([]view.ShowRow, error)
	Form(ctx context.Context, in forms.ShowInput) (view.ShowForm, error)
	Create(ctx context.Context, in forms.ShowInput) (int64, error)
}

type service struct {
	store Store
	loc   *time.Location
}

// New constructs a shows Service. Submitted start times without a zone are
// read in loc; nil means time.Local.
func New(store Store, loc *time.Location) Service {
	if loc == nil {
		loc = time.Local
	}
	return &service{store: store, loc: loc}
}

func (s *service) List(ctx context.Context) ([]view.ShowRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	shows, err := s.store.ListShows(ctx)
	if err != nil {
		return nil, err
	}
	return view.Shows(shows), nil
}

// Form builds the booking page with in prefilled and both pick lists loaded.
func (s *service) Form(ctx context.Context, in forms.ShowInput) (view.ShowForm, error) {
	if err := ctx.Err(); err != nil {
		return view.ShowForm{}, err
	}
	artists, err := s.store.ListArtists(ctx)
	if err != nil {
		return view.ShowForm{}, err
	}
	venues, err := s.store.ListVenuesByLocation(ctx)
	if err != nil {
		return view.ShowForm{}, err
	}
	return view.NewShowForm(in, view.Artists(artists), view.Venues(venues)), nil
}

func (s *service) Create(ctx context.Context, in forms.ShowInput) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	show, err := in.Show(s.loc)
	if err != nil {
		return 0, err
	}
	return s.store.CreateShow(ctx, show)
}
