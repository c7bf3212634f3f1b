package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fyyur/internal/http/middleware"
	"fyyur/internal/listing"
	"fyyur/internal/logging"
	"fyyur/internal/models"
	"fyyur/internal/store"
)

// VenueService describes venue workflows.
type VenueService interface {
	Create(ctx context.Context, venue models.Venue) (models.Venue, error)
	Get(ctx context.Context, id int64) (models.Venue, error)
	Update(ctx context.Context, id int64, venue models.Venue) (models.Venue, error)
	ListByArea(ctx context.Context) ([]listing.AreaGroup, error)
	Search(ctx context.Context, term string) (listing.SearchResults, error)
	Detail(ctx context.Context, id int64) (listing.VenueDetail, error)
}

// ArtistService describes artist workflows.
type ArtistService interface {
	Create(ctx context.Context, artist models.Artist) (models.Artist, error)
	Get(ctx context.Context, id int64) (models.Artist, error)
	Update(ctx context.Context, id int64, artist models.Artist) (models.Artist, error)
	List(ctx context.Context) ([]listing.ArtistEntry, error)
	Search(ctx context.Context, term string) (listing.SearchResults, error)
	Detail(ctx context.Context, id int64) (listing.ArtistDetail, error)
}

// ShowService describes show workflows.
type ShowService interface {
	Create(ctx context.Context, show models.Show) (models.Show, error)
	List(ctx context.Context) ([]listing.ShowRow, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	venues   VenueService
	artists  ArtistService
	shows    ShowService
	renderer Renderer
	now      func() time.Time
}

// Option customises a Server.
type Option func(*Server)

// WithRenderer replaces the default JSON renderer.
func WithRenderer(r Renderer) Option {
	return func(s *Server) { s.renderer = r }
}

// WithClock replaces time.Now, used to pre-fill the show form.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New configures a Server with the given services.
func New(venues VenueService, artists ArtistService, shows ShowService, opts ...Option) *Server {
	s := &Server{
		venues:   venues,
		artists:  artists,
		shows:    shows,
		renderer: JSONRenderer{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Routes exposes the HTTP handlers of the directory.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /{$}", s.handleHome)

	// Venue routes
	mux.HandleFunc("GET /venues", s.handleListVenues)
	mux.HandleFunc("POST /venues/search", s.handleSearchVenues)
	mux.HandleFunc("GET /venues/create", s.handleNewVenueForm)
	mux.HandleFunc("POST /venues/create", s.handleCreateVenue)
	mux.HandleFunc("GET /venues/{id}", s.handleShowVenue)
	mux.HandleFunc("DELETE /venues/{id}", s.handleDeleteVenue)
	mux.HandleFunc("GET /venues/{id}/edit", s.handleEditVenueForm)
	mux.HandleFunc("POST /venues/{id}/edit", s.handleUpdateVenue)

	// Artist routes
	mux.HandleFunc("GET /artists", s.handleListArtists)
	mux.HandleFunc("POST /artists/search", s.handleSearchArtists)
	mux.HandleFunc("GET /artists/create", s.handleNewArtistForm)
	mux.HandleFunc("POST /artists/create", s.handleCreateArtist)
	mux.HandleFunc("GET /artists/{id}", s.handleShowArtist)
	mux.HandleFunc("GET /artists/{id}/edit", s.handleEditArtistForm)
	mux.HandleFunc("POST /artists/{id}/edit", s.handleUpdateArtist)

	// Show routes
	mux.HandleFunc("GET /shows", s.handleListShows)
	mux.HandleFunc("GET /shows/create", s.handleNewShowForm)
	mux.HandleFunc("POST /shows/create", s.handleCreateShow)

	mux.HandleFunc("/", s.handleNotFound)

	return middleware.Recovery(s.handleServerError)(mux)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, viewHome, nil)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, viewNotFound, nil)
}

func (s *Server) handleServerError(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusInternalServerError, viewServerError, nil)
}

// render hands a page to the renderer, attaching any pending flash notice.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, view string, data any) {
	s.renderWithFlash(w, r, status, view, data, popFlash(w, r))
}

func (s *Server) renderWithFlash(w http.ResponseWriter, r *http.Request, status int, view string, data any, flash *Flash) {
	page := Page{View: view, Flash: flash, Data: data}
	if err := s.renderer.Render(w, status, page); err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Str("view", view).Msg("render page")
	}
}

// renderReadError maps a read-path failure onto the 404 or 500 page.
func (s *Server) renderReadError(w http.ResponseWriter, r *http.Request, err error, action string) {
	if errors.Is(err, store.ErrNotFound) {
		s.handleNotFound(w, r)
		return
	}
	logging.FromContext(r.Context()).Error().Err(err).Msg(action)
	s.handleServerError(w, r)
}

// renderWriteFailure logs a failed write and returns the caller to the home
// page with a generic notice.
func (s *Server) renderWriteFailure(w http.ResponseWriter, r *http.Request, err error, action, notice string) {
	event := logging.FromContext(r.Context()).Warn()
	if statusFor(err) >= http.StatusInternalServerError {
		event = logging.FromContext(r.Context()).Error()
	}
	event.Err(err).Msg(action)

	s.renderWithFlash(w, r, statusFor(err), viewHome, nil, &Flash{Category: flashDanger, Message: notice})
}

// statusFor maps the store error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrConstraint):
		return http.StatusConflict
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// pathID parses the {id} wildcard. Non-numeric ids never match a record.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// submittedName returns the trimmed name field used in notices.
func submittedName(r *http.Request) string {
	return strings.TrimSpace(r.PostForm.Get("name"))
}

// parseForm parses the request body, reporting failures as validation errors.
func parseForm(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return &store.ValidationError{Field: "form", Reason: err.Error()}
	}
	return nil
}
