package forms

import (
	"net/url"
	"slices"

	"fyyur/internal/models"
)

// legacySeekingVenue is the checkbox name older artist forms submit.
const legacySeekingVenue = "seeking_venue"

// ArtistForm holds the submitted or pre-filled artist fields.
type ArtistForm struct {
	Name               string   `form:"name" json:"name" validate:"required,max=500"`
	City               string   `form:"city" json:"city" validate:"required,max=120"`
	State              string   `form:"state" json:"state" validate:"required,max=120"`
	Phone              string   `form:"phone" json:"phone" validate:"max=120"`
	Genres             []string `form:"genres" json:"genres" validate:"min=1,dive,required"`
	ImageLink          string   `form:"image_link" json:"image_link" validate:"max=500"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" validate:"max=120"`
	WebsiteLink        string   `form:"website_link" json:"website_link" validate:"max=500"`
	SeekingVenues      bool     `form:"seeking_venues" json:"seeking_venues"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

// DecodeArtist reads an artist form from submitted values without validating it.
func DecodeArtist(values url.Values) ArtistForm {
	return ArtistForm{
		Name:               trimmed(values, "name"),
		City:               trimmed(values, "city"),
		State:              trimmed(values, "state"),
		Phone:              trimmed(values, "phone"),
		Genres:             trimmedList(values, "genres"),
		ImageLink:          trimmed(values, "image_link"),
		FacebookLink:       trimmed(values, "facebook_link"),
		WebsiteLink:        trimmed(values, "website_link"),
		SeekingVenues:      checked(values, "seeking_venues", legacySeekingVenue),
		SeekingDescription: trimmed(values, "seeking_description"),
	}
}

// ParseArtist decodes, validates and coerces a submitted artist.
func ParseArtist(values url.Values) (models.Artist, error) {
	form := DecodeArtist(values)
	if err := check(form); err != nil {
		return models.Artist{}, err
	}
	return form.Artist()
}

// Artist converts the form into an entity, coercing the phone number.
func (f ArtistForm) Artist() (models.Artist, error) {
	phone, err := coercePhone(f.Phone)
	if err != nil {
		return models.Artist{}, err
	}
	return models.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              phone,
		Genres:             models.Genres(slices.Clone(f.Genres)),
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingVenues:      f.SeekingVenues,
		SeekingDescription: f.SeekingDescription,
	}, nil
}

// ArtistFormFrom pre-fills an edit form from a stored artist.
func ArtistFormFrom(a models.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             slices.Clone([]string(a.Genres)),
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.WebsiteLink,
		SeekingVenues:      a.SeekingVenues,
		SeekingDescription: a.SeekingDescription,
	}
}
