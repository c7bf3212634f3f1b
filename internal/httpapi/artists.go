package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"fyyur/internal/forms"
	"fyyur/internal/store"
)

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.artists.List(r.Context())
	if err != nil {
		s.renderReadError(w, r, err, "list artists")
		return
	}

	s.render(w, r, http.StatusOK, viewArtists, map[string]any{"artists": artists})
}

func (s *Server) handleSearchArtists(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		s.render(w, r, http.StatusBadRequest, viewHome, nil)
		return
	}
	term := r.PostForm.Get("search_term")

	results, err := s.artists.Search(r.Context(), term)
	if err != nil {
		s.renderReadError(w, r, err, "search artists")
		return
	}

	s.render(w, r, http.StatusOK, viewSearchArtists, map[string]any{
		"results":     results,
		"search_term": term,
	})
}

func (s *Server) handleShowArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	artist, err := s.artists.Detail(r.Context(), id)
	if err != nil {
		s.renderReadError(w, r, err, "show artist")
		return
	}

	s.render(w, r, http.StatusOK, viewShowArtist, map[string]any{"artist": artist})
}

func (s *Server) handleNewArtistForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, viewNewArtist, map[string]any{"form": forms.ArtistForm{}})
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	err := parseForm(r)
	name := submittedName(r)
	if err == nil {
		err = s.createArtist(r)
	}
	if err != nil {
		s.renderWriteFailure(w, r, err, "create artist",
			fmt.Sprintf("An error occurred. Artist %s could not be listed.", name))
		return
	}

	s.renderWithFlash(w, r, http.StatusCreated, viewHome, nil, &Flash{
		Category: flashSuccess,
		Message:  fmt.Sprintf("Artist %s was successfully listed!", name),
	})
}

func (s *Server) createArtist(r *http.Request) error {
	artist, err := forms.ParseArtist(r.PostForm)
	if err != nil {
		return err
	}
	_, err = s.artists.Create(r.Context(), artist)
	return err
}

func (s *Server) handleEditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	artist, err := s.artists.Get(r.Context(), id)
	if err != nil {
		s.renderReadError(w, r, err, "load artist for edit")
		return
	}

	s.render(w, r, http.StatusOK, viewEditArtist, map[string]any{
		"form":  forms.ArtistFormFrom(artist),
		"artist": artist,
	})
}

func (s *Server) handleUpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	err := parseForm(r)
	name := submittedName(r)
	if err == nil {
		err = s.updateArtist(r, id)
	}
	if errors.Is(err, store.ErrNotFound) {
		s.handleNotFound(w, r)
		return
	}
	if err != nil {
		s.renderWriteFailure(w, r, err, "update artist",
			fmt.Sprintf("An error occurred. Artist %s could not be updated.", name))
		return
	}

	setFlash(w, Flash{Category: flashSuccess, Message: fmt.Sprintf("Artist %s was successfully updated!", name)})
	http.Redirect(w, r, fmt.Sprintf("/artists/%d", id), http.StatusSeeOther)
}

func (s *Server) updateArtist(r *http.Request, id int64) error {
	artist, err := forms.ParseArtist(r.PostForm)
	if err != nil {
		return err
	}
	_, err = s.artists.Update(r.Context(), id, artist)
	return err
}
