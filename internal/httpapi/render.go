package httpapi

import (
	"encoding/json"
	"net/http"
)

// View names understood by a Renderer.
const (
	viewHome          = "pages/home"
	viewVenues        = "pages/venues"
	viewSearchVenues  = "pages/search_venues"
	viewShowVenue     = "pages/show_venue"
	viewNewVenue      = "forms/new_venue"
	viewEditVenue     = "forms/edit_venue"
	viewArtists       = "pages/artists"
	viewSearchArtists = "pages/search_artists"
	viewShowArtist    = "pages/show_artist"
	viewNewArtist     = "forms/new_artist"
	viewEditArtist    = "forms/edit_artist"
	viewShows         = "pages/shows"
	viewNewShow       = "forms/new_show"
	viewNotFound      = "errors/404"
	viewServerError   = "errors/500"
)

// Page is what a handler hands to the presentation layer.
type Page struct {
	View  string `json:"view"`
	Flash *Flash `json:"flash,omitempty"`
	Data  any    `json:"data,omitempty"`
}

// Renderer turns a page into a response body.
type Renderer interface {
	Render(w http.ResponseWriter, status int, page Page) error
}

// JSONRenderer writes pages as JSON documents.
type JSONRenderer struct{}

// Render implements Renderer.
func (JSONRenderer) Render(w http.ResponseWriter, status int, page Page) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(page)
}
