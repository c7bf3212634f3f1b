package models

import "time"

// Show books an artist at a venue for a given start time.
type Show struct {
	ID        int64     `json:"id"`
	ArtistID  int64     `json:"artist_id"`
	VenueID   int64     `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
}

// ShowWithDetails includes the venue and artist columns needed by listings.
type ShowWithDetails struct {
	Show
	VenueName       string `json:"venue_name"`
	VenueImageLink  string `json:"venue_image_link,omitempty"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link,omitempty"`
}
