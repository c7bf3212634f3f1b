package models

// Artist represents a performer that can be booked at venues.
type Artist struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	City               string `json:"city"`
	State              string `json:"state"`
	Phone              string `json:"phone,omitempty"`
	Genres             Genres `json:"genres"`
	ImageLink          string `json:"image_link,omitempty"`
	FacebookLink       string `json:"facebook_link,omitempty"`
	WebsiteLink        string `json:"website_link,omitempty"`
	SeekingVenues      bool   `json:"seeking_venues"`
	SeekingDescription string `json:"seeking_description,omitempty"`
}
