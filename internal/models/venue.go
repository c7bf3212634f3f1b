package models

// Venue represents a music venue listed in the directory.
type Venue struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	City               string `json:"city"`
	State              string `json:"state"`
	Address            string `json:"address"`
	Phone              string `json:"phone,omitempty"`
	Genres             Genres `json:"genres"`
	ImageLink          string `json:"image_link,omitempty"`
	FacebookLink       string `json:"facebook_link,omitempty"`
	WebsiteLink        string `json:"website_link,omitempty"`
	SeekingTalent      bool   `json:"seeking_talent"`
	SeekingDescription string `json:"seeking_description,omitempty"`
}
