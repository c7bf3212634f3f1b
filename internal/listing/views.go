// Package listing derives the read-only views shown on listing and detail
// pages. Nothing here is persisted; every view is rebuilt from the current
// rows and an explicit "now".
package listing

import (
	"time"

	"fyyur/internal/models"
)

// Summary is a compact entry used by area listings and search results.
type Summary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// AreaGroup lists the venues sharing a (city, state) pair.
type AreaGroup struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

// SearchResults is the payload of a name search.
type SearchResults struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

// ArtistEntry is a row of the artist index.
type ArtistEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ShowSlot describes one show from the point of view of a venue or artist:
// the counterpart is the artist on a venue page and the venue on an artist page.
type ShowSlot struct {
	CounterpartID        int64     `json:"id"`
	CounterpartName      string    `json:"name"`
	CounterpartImageLink string    `json:"image_link,omitempty"`
	StartTime            time.Time `json:"start_time"`
}

// VenueDetail is the venue page view.
type VenueDetail struct {
	models.Venue
	PastShows          []ShowSlot `json:"past_shows"`
	UpcomingShows      []ShowSlot `json:"upcoming_shows"`
	PastShowsCount     int        `json:"past_shows_count"`
	UpcomingShowsCount int        `json:"upcoming_shows_count"`
}

// ArtistDetail is the artist page view.
type ArtistDetail struct {
	models.Artist
	PastShows          []ShowSlot `json:"past_shows"`
	UpcomingShows      []ShowSlot `json:"upcoming_shows"`
	PastShowsCount     int        `json:"past_shows_count"`
	UpcomingShowsCount int        `json:"upcoming_shows_count"`
}

// ShowRow is a row of the flat show listing.
type ShowRow struct {
	ShowID          int64     `json:"show_id"`
	VenueID         int64     `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link,omitempty"`
	StartTime       time.Time `json:"start_time"`
}
