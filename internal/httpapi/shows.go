package httpapi

import (
	"net/http"

	"fyyur/internal/forms"
)

func (s *Server) handleListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := s.shows.List(r.Context())
	if err != nil {
		s.renderReadError(w, r, err, "list shows")
		return
	}

	s.render(w, r, http.StatusOK, viewShows, map[string]any{"shows": shows})
}

func (s *Server) handleNewShowForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, viewNewShow, map[string]any{"form": forms.NewShowForm(s.now())})
}

func (s *Server) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	err := parseForm(r)
	if err == nil {
		err = s.createShow(r)
	}
	if err != nil {
		s.renderWriteFailure(w, r, err, "create show", "An error occurred. Show could not be listed.")
		return
	}

	s.renderWithFlash(w, r, http.StatusCreated, viewHome, nil, &Flash{
		Category: flashSuccess,
		Message:  "Show was successfully listed!",
	})
}

func (s *Server) createShow(r *http.Request) error {
	show, err := forms.ParseShow(r.PostForm)
	if err != nil {
		return err
	}
	_, err = s.shows.Create(r.Context(), show)
	return err
}
