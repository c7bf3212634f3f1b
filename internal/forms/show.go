package forms

import (
	"net/url"
	"strconv"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/store"
)

// StartTimeLayout is the layout used to pre-fill and, first, to parse start_time.
const StartTimeLayout = "2006-01-02 15:04:05"

var startTimeLayouts = []string{
	StartTimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// ShowForm holds the submitted or pre-filled show fields.
type ShowForm struct {
	ArtistID  string `form:"artist_id" json:"artist_id" validate:"required,number"`
	VenueID   string `form:"venue_id" json:"venue_id" validate:"required,number"`
	StartTime string `form:"start_time" json:"start_time" validate:"required"`
}

// NewShowForm returns an empty show form whose start time defaults to now.
func NewShowForm(now time.Time) ShowForm {
	return ShowForm{StartTime: now.UTC().Format(StartTimeLayout)}
}

// DecodeShow reads a show form from submitted values without validating it.
func DecodeShow(values url.Values) ShowForm {
	return ShowForm{
		ArtistID:  trimmed(values, "artist_id"),
		VenueID:   trimmed(values, "venue_id"),
		StartTime: trimmed(values, "start_time"),
	}
}

// ParseShow decodes, validates and coerces a submitted show.
func ParseShow(values url.Values) (models.Show, error) {
	form := DecodeShow(values)
	if err := check(form); err != nil {
		return models.Show{}, err
	}
	return form.Show()
}

// Show converts the form into an entity.
func (f ShowForm) Show() (models.Show, error) {
	artistID, err := strconv.ParseInt(f.ArtistID, 10, 64)
	if err != nil || artistID <= 0 {
		return models.Show{}, &store.ValidationError{Field: "artist_id", Reason: "must be a positive integer"}
	}
	venueID, err := strconv.ParseInt(f.VenueID, 10, 64)
	if err != nil || venueID <= 0 {
		return models.Show{}, &store.ValidationError{Field: "venue_id", Reason: "must be a positive integer"}
	}
	start, err := ParseStartTime(f.StartTime)
	if err != nil {
		return models.Show{}, err
	}

	return models.Show{ArtistID: artistID, VenueID: venueID, StartTime: start}, nil
}

// ParseStartTime accepts the layouts produced by date-time pickers and RFC 3339.
// Values without a zone are read as UTC.
func ParseStartTime(raw string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &store.ValidationError{Field: "start_time", Reason: "is not a valid date and time"}
}
