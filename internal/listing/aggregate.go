package listing

import (
	"slices"
	"strings"
	"time"

	"fyyur/internal/models"
)

// IsUpcoming reports whether a show starting at start is upcoming at now.
// A show starting exactly at now counts as upcoming.
func IsUpcoming(start, now time.Time) bool {
	return !start.Before(now)
}

// CountUpcomingByVenue counts upcoming shows per venue id.
func CountUpcomingByVenue(shows []models.ShowWithDetails, now time.Time) map[int64]int {
	counts := make(map[int64]int)
	for _, sh := range shows {
		if IsUpcoming(sh.StartTime, now) {
			counts[sh.VenueID]++
		}
	}
	return counts
}

// CountUpcomingByArtist counts upcoming shows per artist id.
func CountUpcomingByArtist(shows []models.ShowWithDetails, now time.Time) map[int64]int {
	counts := make(map[int64]int)
	for _, sh := range shows {
		if IsUpcoming(sh.StartTime, now) {
			counts[sh.ArtistID]++
		}
	}
	return counts
}

type areaKey struct {
	city  string
	state string
}

// GroupVenuesByArea returns one group per distinct (city, state) pair holding
// every venue in that area. Groups keep the first-seen order of venues, so a
// (state, city, name) sorted input yields groups in that order.
func GroupVenuesByArea(venues []models.Venue, shows []models.ShowWithDetails, now time.Time) []AreaGroup {
	counts := CountUpcomingByVenue(shows, now)

	groups := []AreaGroup{}
	index := make(map[areaKey]int)
	for _, v := range venues {
		key := areaKey{city: strings.TrimSpace(v.City), state: strings.TrimSpace(v.State)}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, AreaGroup{City: key.city, State: key.state, Venues: []Summary{}})
		}
		groups[i].Venues = append(groups[i].Venues, Summary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: counts[v.ID],
		})
	}
	return groups
}

// VenueSearchResults summarises matching venues with their upcoming show counts.
func VenueSearchResults(venues []models.Venue, shows []models.ShowWithDetails, now time.Time) SearchResults {
	counts := CountUpcomingByVenue(shows, now)
	data := make([]Summary, 0, len(venues))
	for _, v := range venues {
		data = append(data, Summary{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]})
	}
	return SearchResults{Count: len(data), Data: data}
}

// ArtistSearchResults summarises matching artists with their upcoming show counts.
func ArtistSearchResults(artists []models.Artist, shows []models.ShowWithDetails, now time.Time) SearchResults {
	counts := CountUpcomingByArtist(shows, now)
	data := make([]Summary, 0, len(artists))
	for _, a := range artists {
		data = append(data, Summary{ID: a.ID, Name: a.Name, NumUpcomingShows: counts[a.ID]})
	}
	return SearchResults{Count: len(data), Data: data}
}

// ArtistIndex lists artists by id and name.
func ArtistIndex(artists []models.Artist) []ArtistEntry {
	entries := make([]ArtistEntry, 0, len(artists))
	for _, a := range artists {
		entries = append(entries, ArtistEntry{ID: a.ID, Name: a.Name})
	}
	return entries
}

// VenueDetailView builds the venue page from the venue and its shows.
func VenueDetailView(venue models.Venue, shows []models.ShowWithDetails, now time.Time) VenueDetail {
	past, upcoming := partition(shows, now, func(sh models.ShowWithDetails) ShowSlot {
		return ShowSlot{
			CounterpartID:        sh.ArtistID,
			CounterpartName:      sh.ArtistName,
			CounterpartImageLink: sh.ArtistImageLink,
			StartTime:            sh.StartTime,
		}
	})

	venue.Genres = slices.Clone(venue.Genres)
	return VenueDetail{
		Venue:              venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

// ArtistDetailView builds the artist page from the artist and its shows.
func ArtistDetailView(artist models.Artist, shows []models.ShowWithDetails, now time.Time) ArtistDetail {
	past, upcoming := partition(shows, now, func(sh models.ShowWithDetails) ShowSlot {
		return ShowSlot{
			CounterpartID:        sh.VenueID,
			CounterpartName:      sh.VenueName,
			CounterpartImageLink: sh.VenueImageLink,
			StartTime:            sh.StartTime,
		}
	})

	artist.Genres = slices.Clone(artist.Genres)
	return ArtistDetail{
		Artist:             artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

// FlattenShows produces one row per show.
func FlattenShows(shows []models.ShowWithDetails) []ShowRow {
	rows := make([]ShowRow, 0, len(shows))
	for _, sh := range shows {
		rows = append(rows, ShowRow{
			ShowID:          sh.ID,
			VenueID:         sh.VenueID,
			VenueName:       sh.VenueName,
			ArtistID:        sh.ArtistID,
			ArtistName:      sh.ArtistName,
			ArtistImageLink: sh.ArtistImageLink,
			StartTime:       sh.StartTime,
		})
	}
	return rows
}

// partition splits shows into past and upcoming slots, each ordered by start time.
func partition(shows []models.ShowWithDetails, now time.Time, slot func(models.ShowWithDetails) ShowSlot) (past, upcoming []ShowSlot) {
	past = []ShowSlot{}
	upcoming = []ShowSlot{}
	for _, sh := range shows {
		if IsUpcoming(sh.StartTime, now) {
			upcoming = append(upcoming, slot(sh))
		} else {
			past = append(past, slot(sh))
		}
	}

	byStart := func(a, b ShowSlot) int { return a.StartTime.Compare(b.StartTime) }
	slices.SortStableFunc(past, byStart)
	slices.SortStableFunc(upcoming, byStart)
	return past, upcoming
}
