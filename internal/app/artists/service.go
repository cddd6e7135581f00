package artists

import (
	"context"

	"fyyur/internal/forms"
	"fyyur/internal/store"
	"fyyur/internal/view"
)

// Store defines the persistence operations artists need.
type Store interface {
	ListArtists(ctx context.Context) ([]store.ArtistSummary, error)
	SearchArtists(ctx context.Context, term string) (store.SearchResult, error)
	Artist(ctx context.Context, id int64) (store.Artist, error)
	ArtistDetail(ctx context.Context, id int64) (store.ArtistDetail, error)
	RecentArtists(ctx context.Context, limit int) ([]store.Artist, error)
	CreateArtist(ctx context.Context, artist store.Artist) (int64, error)
	UpdateArtist(ctx context.Context, id int64, artist store.Artist) error
	DeleteArtist(ctx context.Context, id int64) error
}

// Service provides artist-centric operations.
type Service interface {
	List(ctx context.Context) ([]view.Item, error)
	Search(ctx context.Context, term string) (view.SearchResults, error)
	Detail(ctx context.Context, id int64) (view.ArtistDetail, error)
	EditForm(ctx context.Context, id int64) (view.ArtistForm, error)
	Recent(ctx context.Context, limit int) ([]store.Artist, error)
	Create(ctx context.Context, in forms.ArtistInput) (int64, error)
	Update(ctx context.Context, id int64, in forms.ArtistInput) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs an artist Service backed by the supplied store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]view.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	artists, err := s.store.ListArtists(ctx)
	if err != nil {
		return nil, err
	}
	return view.Artists(artists), nil
}

func (s *service) Search(ctx context.Context, term string) (view.SearchResults, error) {
	if err := ctx.Err(); err != nil {
		return view.SearchResults{}, err
	}
	result, err := s.store.SearchArtists(ctx, term)
	if err != nil {
		return view.SearchResults{}, err
	}
	return view.Search(term, result), nil
}

func (s *service) Detail(ctx context.Context, id int64) (view.ArtistDetail, error) {
	if err := ctx.Err(); err != nil {
		return view.ArtistDetail{}, err
	}
	detail, err := s.store.ArtistDetail(ctx, id)
	if err != nil {
		return view.ArtistDetail{}, err
	}
	return view.NewArtistDetail(detail), nil
}

func (s *service) EditForm(ctx context.Context, id int64) (view.ArtistForm, error) {
	if err := ctx.Err(); err != nil {
		return view.ArtistForm{}, err
	}
	artist, err := s.store.Artist(ctx, id)
	if err != nil {
		return view.ArtistForm{}, err
	}
	return view.NewArtistForm(artist.ID, forms.ArtistInputFrom(artist)), nil
}

func (s *service) Recent(ctx context.Context, limit int) ([]store.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.RecentArtists(ctx, limit)
}

func (s *service) Create(ctx context.Context, in forms.ArtistInput) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := forms.Check(in); err != nil {
		return 0, err
	}
	return s.store.CreateArtist(ctx, in.Artist())
}

func (s *service) Update(ctx context.Context, id int64, in forms.ArtistInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := forms.Check(in); err != nil {
		return err
	}
	return s.store.UpdateArtist(ctx, id, in.Artist())
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteArtist(ctx, id)
}
