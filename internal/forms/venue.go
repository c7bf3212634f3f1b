package forms

import (
	"net/url"
	"slices"

	"fyyur/internal/models"
)

// VenueForm holds the submitted or pre-filled venue fields.
type VenueForm struct {
	Name               string   `form:"name" json:"name" validate:"required,max=500"`
	City               string   `form:"city" json:"city" validate:"required,max=120"`
	State              string   `form:"state" json:"state" validate:"required,max=120"`
	Address            string   `form:"address" json:"address" validate:"required,max=120"`
	Phone              string   `form:"phone" json:"phone" validate:"max=120"`
	Genres             []string `form:"genres" json:"genres" validate:"min=1,dive,required"`
	ImageLink          string   `form:"image_link" json:"image_link" validate:"max=500"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" validate:"max=120"`
	WebsiteLink        string   `form:"website_link" json:"website_link" validate:"max=500"`
	SeekingTalent      bool     `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

// DecodeVenue reads a venue form from submitted values without validating it.
func DecodeVenue(values url.Values) VenueForm {
	return VenueForm{
		Name:               trimmed(values, "name"),
		City:               trimmed(values, "city"),
		State:              trimmed(values, "state"),
		Address:            trimmed(values, "address"),
		Phone:              trimmed(values, "phone"),
		Genres:             trimmedList(values, "genres"),
		ImageLink:          trimmed(values, "image_link"),
		FacebookLink:       trimmed(values, "facebook_link"),
		WebsiteLink:        trimmed(values, "website_link"),
		SeekingTalent:      checked(values, "seeking_talent"),
		SeekingDescription: trimmed(values, "seeking_description"),
	}
}

// ParseVenue decodes, validates and coerces a submitted venue.
func ParseVenue(values url.Values) (models.Venue, error) {
	form := DecodeVenue(values)
	if err := check(form); err != nil {
		return models.Venue{}, err
	}
	return form.Venue()
}

// Venue converts the form into an entity, coercing the phone number.
func (f VenueForm) Venue() (models.Venue, error) {
	phone, err := coercePhone(f.Phone)
	if err != nil {
		return models.Venue{}, err
	}
	return models.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              phone,
		Genres:             models.Genres(slices.Clone(f.Genres)),
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}, nil
}

// VenueFormFrom pre-fills an edit form from a stored venue.
func VenueFormFrom(v models.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             slices.Clone([]string(v.Genres)),
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.WebsiteLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}
