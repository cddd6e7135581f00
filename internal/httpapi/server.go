package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fyyur/internal/flash"
	"fyyur/internal/forms"
	"fyyur/internal/store"
	"fyyur/internal/view"
)

// recentLimit is how many venues and artists the home page lists.
const recentLimit = 10

// VenueService describes venue pages and writes.
type VenueService interface {
	Areas(ctx context.Context) ([]view.Area, error)
	Search(ctx context.Context, term string) (view.SearchResults, error)
	Detail(ctx context.Context, id int64) (view.VenueDetail, error)
	EditForm(ctx context.Context, id int64) (view.VenueForm, error)
	Recent(ctx context.Context, limit int) ([]store.Venue, error)
	Create(ctx context.Context, in forms.VenueInput) (int64, error)
	Update(ctx context.Context, id int64, in forms.VenueInput) error
	Delete(ctx context.Context, id int64) error
}

// ArtistService describes artist pages and writes.
type ArtistService interface {
	List(ctx context.Context) ([]view.Item, error)
	Search(ctx context.Context, term string) (view.SearchResults, error)
	Detail(ctx context.Context, id int64) (view.ArtistDetail, error)
	EditForm(ctx context.Context, id int64) (view.ArtistForm, error)
	Recent(ctx context.Context, limit int) ([]store.Artist, error)
	Create(ctx context.Context, in forms.ArtistInput) (int64, error)
	Update(ctx context.Context, id int64, in forms.ArtistInput) error
	Delete(ctx context.Context, id int64) error
}

// ShowService describes the show listing and bookings.
type ShowService interface {
	List(ctx context.Context) ([]view.ShowRow, error)
	Form(ctx context.Context, in forms.ShowInput) (view.ShowForm, error)
	Create(ctx context.Context, in forms.ShowInput) (int64, error)
}

// FlashStore carries notices and rejected form values across a redirect.
type FlashStore interface {
	Set(w http.ResponseWriter, f flash.Flash) error
	Pop(w http.ResponseWriter, r *http.Request) flash.Flash
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	venues   VenueService
	artists  ArtistService
	shows    ShowService
	flashes  FlashStore
	renderer Renderer
}

// Option configures a Server.
type Option func(*Server)

// WithRenderer replaces the default JSON renderer.
func WithRenderer(r Renderer) Option {
	return func(s *Server) {
		if r != nil {
			s.renderer = r
		}
	}
}

// New configures a Server with the given services.
func New(venues VenueService, artists ArtistService, shows ShowService, flashes FlashStore, opts ...Option) *Server {
	s := &Server{
		venues:   venues,
		artists:  artists,
		shows:    shows,
		flashes:  flashes,
		renderer: JSONRenderer{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Routes exposes the HTTP handlers for the directory.
func (s *Server) Routes() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	router.HandleFunc("/", s.handleHome).Methods(http.MethodGet)

	router.HandleFunc("/venues", s.handleListVenues).Methods(http.MethodGet)
	router.HandleFunc("/venues/search", s.handleSearchVenues).Methods(http.MethodPost)
	router.HandleFunc("/venues/create", s.handleNewVenueForm).Methods(http.MethodGet)
	router.HandleFunc("/venues/create", s.handleCreateVenue).Methods(http.MethodPost)
	router.HandleFunc("/venues/{id:[0-9]+}", s.handleShowVenue).Methods(http.MethodGet)
	router.HandleFunc("/venues/{id:[0-9]+}/edit", s.handleEditVenueForm).Methods(http.MethodGet)
	router.HandleFunc("/venues/{id:[0-9]+}/edit", s.handleUpdateVenue).Methods(http.MethodPost)
	router.HandleFunc("/venues/{id:[0-9]+}", s.handleDeleteVenue).Methods(http.MethodDelete)
	router.HandleFunc("/venues/{id:[0-9]+}/delete", s.handleDeleteVenue).Methods(http.MethodDelete)

	router.HandleFunc("/artists", s.handleListArtists).Methods(http.MethodGet)
	router.HandleFunc("/artists/search", s.handleSearchArtists).Methods(http.MethodPost)
	router.HandleFunc("/artists/create", s.handleNewArtistForm).Methods(http.MethodGet)
	router.HandleFunc("/artists/create", s.handleCreateArtist).Methods(http.MethodPost)
	router.HandleFunc("/artists/{id:[0-9]+}", s.handleShowArtist).Methods(http.MethodGet)
	router.HandleFunc("/artists/{id:[0-9]+}/edit", s.handleEditArtistForm).Methods(http.MethodGet)
	router.HandleFunc("/artists/{id:[0-9]+}/edit", s.handleUpdateArtist).Methods(http.MethodPost)
	router.HandleFunc("/artists/{id:[0-9]+}", s.handleDeleteArtist).Methods(http.MethodDelete)
	router.HandleFunc("/artists/{id:[0-9]+}/delete", s.handleDeleteArtist).Methods(http.MethodDelete)

	router.HandleFunc("/shows", s.handleListShows).Methods(http.MethodGet)
	router.HandleFunc("/shows/create", s.handleNewShowForm).Methods(http.MethodGet)
	router.HandleFunc("/shows/create", s.handleCreateShow).Methods(http.MethodPost)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.render(w, r, http.StatusNotFound, "errors/404", nil, nil)
	})

	return router
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	venues, err := s.venues.Recent(r.Context(), recentLimit)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	artists, err := s.artists.Recent(r.Context(), recentLimit)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.render(w, r, http.StatusOK, "pages/home", view.NewHome(venues, artists), nil)
}

type errorResponse struct {
	Error string `json:"error"`
}

// pathID reads the digit-constrained {id} route variable.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
