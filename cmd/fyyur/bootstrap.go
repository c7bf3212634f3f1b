package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"fyyur/internal/models"
)

// seedDemoData inserts the demo directory unless venues already exist.
func seedDemoData(ctx context.Context, ds directoryStore) error {
	existing, err := ds.ListVenues(ctx)
	if err != nil {
		return fmt.Errorf("check existing venues: %w", err)
	}
	if len(existing) > 0 {
		log.Info().Int("venues", len(existing)).Msg("directory not empty, skipping demo data")
		return nil
	}

	venueIDs := make(map[string]int64, len(demoVenues))
	for _, v := range demoVenues {
		created, err := ds.CreateVenue(ctx, v)
		if err != nil {
			return fmt.Errorf("seed venue %q: %w", v.Name, err)
		}
		venueIDs[v.Name] = created.ID
	}

	artistIDs := make(map[string]int64, len(demoArtists))
	for _, a := range demoArtists {
		created, err := ds.CreateArtist(ctx, a)
		if err != nil {
			return fmt.Errorf("seed artist %q: %w", a.Name, err)
		}
		artistIDs[a.Name] = created.ID
	}

	for _, sh := range demoShows {
		if _, err := ds.CreateShow(ctx, models.Show{
			ArtistID:  artistIDs[sh.artist],
			VenueID:   venueIDs[sh.venue],
			StartTime: sh.start,
		}); err != nil {
			return fmt.Errorf("seed show %s at %s: %w", sh.artist, sh.venue, err)
		}
	}

	log.Info().
		Int("venues", len(demoVenues)).
		Int("artists", len(demoArtists)).
		Int("shows", len(demoShows)).
		Msg("demo data inserted")
	return nil
}

var demoVenues = []models.Venue{
	{
		Name:               "The Musical Hop",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Phone:              "1231231234",
		Genres:             models.Genres{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
		ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=60",
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		WebsiteLink:        "https://www.themusicalhop.com",
		SeekingTalent:      true,
		SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
	},
	{
		Name:         "The Dueling Pianos Bar",
		City:         "New York",
		State:        "NY",
		Address:      "335 Delancey Street",
		Phone:        "9140031132",
		Genres:       models.Genres{"Classical", "R&B", "Hip-Hop"},
		ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?ixlib=rb-1.2.1&auto=format&fit=crop&w=750&q=80",
		FacebookLink: "https://www.facebook.com/theduelingpianos",
		WebsiteLink:  "https://www.theduelingpianos.com",
	},
	{
		Name:         "Park Square Live Music & Coffee",
		City:         "San Francisco",
		State:        "CA",
		Address:      "34 Whiskey Moore Ave",
		Phone:        "4150001234",
		Genres:       models.Genres{"Rock n Roll", "Jazz", "Classical", "Folk"},
		ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?ixlib=rb-1.2.1&auto=format&fit=crop&w=747&q=80",
		FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		WebsiteLink:  "https://www.parksquarelivemusicandcoffee.com",
	},
}

var demoArtists = []models.Artist{
	{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "3261235000",
		Genres:             models.Genres{"Rock n Roll"},
		ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80",
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		WebsiteLink:        "https://www.gunsnpetalsband.com",
		SeekingVenues:      true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
	},
	{
		Name:         "Matt Quevedo",
		City:         "New York",
		State:        "NY",
		Phone:        "3004005000",
		Genres:       models.Genres{"Jazz"},
		ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?ixlib=rb-1.2.1&auto=format&fit=crop&w=334&q=80",
		FacebookLink: "https://www.facebook.com/mattquevedo923251523",
	},
	{
		Name:      "The Wild Sax Band",
		City:      "San Francisco",
		State:     "CA",
		Phone:     "4323255432",
		Genres:    models.Genres{"Jazz", "Classical"},
		ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?ixlib=rb-1.2.1&auto=format&fit=crop&w=794&q=80",
	},
}

type demoShow struct {
	artist string
	venue  string
	start  time.Time
}

var demoShows = []demoShow{
	{artist: "Guns N Petals", venue: "The Musical Hop", start: time.Date(2019, time.May, 21, 21, 30, 0, 0, time.UTC)},
	{artist: "Matt Quevedo", venue: "Park Square Live Music & Coffee", start: time.Date(2019, time.June, 15, 23, 0, 0, 0, time.UTC)},
	{artist: "The Wild Sax Band", venue: "Park Square Live Music & Coffee", start: time.Date(2035, time.April, 1, 20, 0, 0, 0, time.UTC)},
	{artist: "The Wild Sax Band", venue: "Park Square Live Music & Coffee", start: time.Date(2035, time.April, 8, 20, 0, 0, 0, time.UTC)},
	{artist: "The Wild Sax Band", venue: "Park Square Live Music & Coffee", start: time.Date(2035, time.April, 15, 20, 0, 0, 0, time.UTC)},
}
