package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"fyyur/internal/forms"
	"fyyur/internal/logging"
	"fyyur/internal/store"
)

func (s *Server) handleListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := s.venues.ListByArea(r.Context())
	if err != nil {
		s.renderReadError(w, r, err, "list venues")
		return
	}

	s.render(w, r, http.StatusOK, viewVenues, map[string]any{"areas": areas})
}

func (s *Server) handleSearchVenues(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		s.render(w, r, http.StatusBadRequest, viewHome, nil)
		return
	}
	term := r.PostForm.Get("search_term")

	results, err := s.venues.Search(r.Context(), term)
	if err != nil {
		s.renderReadError(w, r, err, "search venues")
		return
	}

	s.render(w, r, http.StatusOK, viewSearchVenues, map[string]any{
		"results":     results,
		"search_term": term,
	})
}

func (s *Server) handleShowVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	venue, err := s.venues.Detail(r.Context(), id)
	if err != nil {
		s.renderReadError(w, r, err, "show venue")
		return
	}

	s.render(w, r, http.StatusOK, viewShowVenue, map[string]any{"venue": venue})
}

func (s *Server) handleNewVenueForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, viewNewVenue, map[string]any{"form": forms.VenueForm{}})
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	err := parseForm(r)
	name := submittedName(r)
	if err == nil {
		err = s.createVenue(r)
	}
	if err != nil {
		s.renderWriteFailure(w, r, err, "create venue",
			fmt.Sprintf("An error occurred. Venue %s could not be listed.", name))
		return
	}

	s.renderWithFlash(w, r, http.StatusCreated, viewHome, nil, &Flash{
		Category: flashSuccess,
		Message:  fmt.Sprintf("Venue %s was successfully listed!", name),
	})
}

func (s *Server) createVenue(r *http.Request) error {
	venue, err := forms.ParseVenue(r.PostForm)
	if err != nil {
		return err
	}
	_, err = s.venues.Create(r.Context(), venue)
	return err
}

func (s *Server) handleEditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	venue, err := s.venues.Get(r.Context(), id)
	if err != nil {
		s.renderReadError(w, r, err, "load venue for edit")
		return
	}

	s.render(w, r, http.StatusOK, viewEditVenue, map[string]any{
		"form":  forms.VenueFormFrom(venue),
		"venue": venue,
	})
}

func (s *Server) handleUpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	err := parseForm(r)
	name := submittedName(r)
	if err == nil {
		err = s.updateVenue(r, id)
	}
	if errors.Is(err, store.ErrNotFound) {
		s.handleNotFound(w, r)
		return
	}
	if err != nil {
		s.renderWriteFailure(w, r, err, "update venue",
			fmt.Sprintf("An error occurred. Venue %s could not be updated.", name))
		return
	}

	setFlash(w, Flash{Category: flashSuccess, Message: fmt.Sprintf("Venue %s was successfully updated!", name)})
	http.Redirect(w, r, fmt.Sprintf("/venues/%d", id), http.StatusSeeOther)
}

func (s *Server) updateVenue(r *http.Request, id int64) error {
	venue, err := forms.ParseVenue(r.PostForm)
	if err != nil {
		return err
	}
	_, err = s.venues.Update(r.Context(), id, venue)
	return err
}

// handleDeleteVenue is not implemented: whether deleting a venue should
// cascade to its shows or be refused while shows exist is undecided.
func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	logging.FromContext(r.Context()).Warn().Str("id", r.PathValue("id")).Msg("venue deletion requested but not supported")
	w.WriteHeader(http.StatusNotImplemented)
}
