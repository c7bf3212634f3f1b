package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"fyyur/internal/app/artists"
	"fyyur/internal/app/shows"
	"fyyur/internal/app/venues"
	"fyyur/internal/listing"
	"fyyur/internal/models"
	"fyyur/internal/store/memory"
)

var testNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	store  *memory.Store
	server *Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st := memory.New()
	clock := func() time.Time { return testNow }
	server := New(
		venues.New(st, clock),
		artists.New(st, clock),
		shows.New(st),
		WithClock(clock),
	)
	return &testEnv{store: st, server: server}
}

func (e *testEnv) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	e.server.Routes().ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) post(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.do(t, req)
}

func (e *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	return e.do(t, httptest.NewRequest(http.MethodGet, path, nil))
}

func (e *testEnv) seedVenue(t *testing.T, name, city, state string) models.Venue {
	t.Helper()
	v, err := e.store.CreateVenue(context.Background(), models.Venue{
		Name: name, City: city, State: state, Address: "1 Main St",
		Genres: models.Genres{"Jazz"},
	})
	if err != nil {
		t.Fatalf("seed venue: %v", err)
	}
	return v
}

func (e *testEnv) seedArtist(t *testing.T, name string) models.Artist {
	t.Helper()
	a, err := e.store.CreateArtist(context.Background(), models.Artist{
		Name: name, City: "San Francisco", State: "CA",
		Genres: models.Genres{"Rock n Roll"},
	})
	if err != nil {
		t.Fatalf("seed artist: %v", err)
	}
	return a
}

func (e *testEnv) seedShow(t *testing.T, artistID, venueID int64, start time.Time) {
	t.Helper()
	if _, err := e.store.CreateShow(context.Background(), models.Show{
		ArtistID: artistID, VenueID: venueID, StartTime: start,
	}); err != nil {
		t.Fatalf("seed show: %v", err)
	}
}

type pageResponse[T any] struct {
	View  string `json:"view"`
	Flash *Flash `json:"flash"`
	Data  T      `json:"data"`
}

func decodePage[T any](t *testing.T, rr *httptest.ResponseRecorder) pageResponse[T] {
	t.Helper()
	var page pageResponse[T]
	if err := json.NewDecoder(rr.Body).Decode(&page); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return page
}

func venueForm(name string) url.Values {
	return url.Values{
		"name":    {name},
		"city":    {"San Francisco"},
		"state":   {"CA"},
		"address": {"1015 Folsom Street"},
		"phone":   {"123-123-1234"},
		"genres":  {"Jazz", "Reggae"},
	}
}

func artistForm(name string) url.Values {
	return url.Values{
		"name":   {name},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"genres": {"Rock n Roll"},
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	rr := env.get(t, "/health")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
}

func TestHome(t *testing.T) {
	env := newTestEnv(t)
	rr := env.get(t, "/")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if page := decodePage[any](t, rr); page.View != viewHome {
		t.Fatalf("expected view %q, got %q", viewHome, page.View)
	}
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	env := newTestEnv(t)
	rr := env.get(t, "/nowhere")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
	if page := decodePage[any](t, rr); page.View != viewNotFound {
		t.Fatalf("expected view %q, got %q", viewNotFound, page.View)
	}
}

func TestCreateVenueSuccess(t *testing.T) {
	env := newTestEnv(t)

	rr := env.post(t, "/venues/create", venueForm("The Musical Hop"))
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
	page := decodePage[any](t, rr)
	if page.View != viewHome {
		t.Fatalf("expected home view, got %q", page.View)
	}
	if page.Flash == nil || page.Flash.Category != flashSuccess || page.Flash.Message != "Venue The Musical Hop was successfully listed!" {
		t.Fatalf("unexpected flash: %#v", page.Flash)
	}

	v, err := env.store.GetVenue(context.Background(), 1)
	if err != nil {
		t.Fatalf("stored venue: %v", err)
	}
	if v.Phone != "1231231234" {
		t.Fatalf("expected phone digits, got %q", v.Phone)
	}
	if len(v.Genres) != 2 || v.Genres[0] != "Jazz" || v.Genres[1] != "Reggae" {
		t.Fatalf("unexpected genres: %#v", v.Genres)
	}
}

func TestCreateVenueValidationFailure(t *testing.T) {
	env := newTestEnv(t)

	form := venueForm("The Musical Hop")
	form.Del("genres")
	rr := env.post(t, "/venues/create", form)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
	page := decodePage[any](t, rr)
	if page.Flash == nil || page.Flash.Category != flashDanger {
		t.Fatalf("expected danger flash, got %#v", page.Flash)
	}
	if page.Flash.Message != "An error occurred. Venue The Musical Hop could not be listed." {
		t.Fatalf("unexpected flash message %q", page.Flash.Message)
	}

	all, _ := env.store.ListVenues(context.Background())
	if len(all) != 0 {
		t.Fatalf("expected no venues, got %d", len(all))
	}
}

func TestCreateVenueRejectsNonNumericPhone(t *testing.T) {
	env := newTestEnv(t)

	form := venueForm("The Musical Hop")
	form.Set("phone", "call me")
	rr := env.post(t, "/venues/create", form)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestListVenuesGroupsByArea(t *testing.T) {
	env := newTestEnv(t)
	hop := env.seedVenue(t, "The Musical Hop", "San Francisco", "CA")
	env.seedVenue(t, "Park Square Live Music & Coffee", "San Francisco", "CA")
	env.seedVenue(t, "The Dueling Pianos Bar", "New York", "NY")
	artist := env.seedArtist(t, "Guns N Petals")
	env.seedShow(t, artist.ID, hop.ID, testNow.Add(24*time.Hour))
	env.seedShow(t, artist.ID, hop.ID, testNow.Add(-24*time.Hour))

	rr := env.get(t, "/venues")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	page := decodePage[struct {
		Areas []listing.AreaGroup `json:"areas"`
	}](t, rr)

	areas := page.Data.Areas
	if len(areas) != 2 {
		t.Fatalf("expected 2 areas, got %#v", areas)
	}
	if areas[0].State != "CA" || len(areas[0].Venues) != 2 {
		t.Fatalf("unexpected first area: %#v", areas[0])
	}
	if areas[1].City != "New York" || len(areas[1].Venues) != 1 {
		t.Fatalf("unexpected second area: %#v", areas[1])
	}
	for _, v := range areas[0].Venues {
		if v.ID == hop.ID && v.NumUpcomingShows != 1 {
			t.Fatalf("expected 1 upcoming show for %q, got %d", v.Name, v.NumUpcomingShows)
		}
	}
}

func TestSearchVenuesIsCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	env.seedVenue(t, "The Musical Hop", "San Francisco", "CA")
	env.seedVenue(t, "Park Square Live Music & Coffee", "San Francisco", "CA")
	env.seedVenue(t, "The Dueling Pianos Bar", "New York", "NY")

	tests := []struct {
		term string
		want int
	}{
		{term: "Hop", want: 1},
		{term: "music", want: 2},
		{term: "", want: 3},
		{term: "100%", want: 0},
	}
	for _, tt := range tests {
		rr := env.post(t, "/venues/search", url.Values{"search_term": {tt.term}})
		if rr.Code != http.StatusOK {
			t.Fatalf("search %q: expected status 200, got %d", tt.term, rr.Code)
		}
		page := decodePage[struct {
			Results    listing.SearchResults `json:"results"`
			SearchTerm string                `json:"search_term"`
		}](t, rr)
		if page.Data.Results.Count != tt.want || len(page.Data.Results.Data) != tt.want {
			t.Fatalf("search %q: expected %d results, got %#v", tt.term, tt.want, page.Data.Results)
		}
		if page.Data.SearchTerm != tt.term {
			t.Fatalf("search %q: echoed term %q", tt.term, page.Data.SearchTerm)
		}
	}
}

func TestShowVenuePartitionsShows(t *testing.T) {
	env := newTestEnv(t)
	venue := env.seedVenue(t, "The Musical Hop", "San Francisco", "CA")
	artist := env.seedArtist(t, "Guns N Petals")
	env.seedShow(t, artist.ID, venue.ID, testNow.Add(48*time.Hour))
	env.seedShow(t, artist.ID, venue.ID, testNow.Add(-48*time.Hour))
	env.seedShow(t, artist.ID, venue.ID, testNow)

	rr := env.get(t, "/venues/1")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	page := decodePage[struct {
		Venue listing.VenueDetail `json:"venue"`
	}](t, rr)

	detail := page.Data.Venue
	if detail.Name != "The Musical Hop" {
		t.Fatalf("unexpected venue: %#v", detail.Venue)
	}
	if detail.PastShowsCount != 1 || len(detail.PastShows) != 1 {
		t.Fatalf("expected 1 past show, got %#v", detail.PastShows)
	}
	if detail.UpcomingShowsCount != 2 || len(detail.UpcomingShows) != 2 {
		t.Fatalf("expected 2 upcoming shows, got %#v", detail.UpcomingShows)
	}
	if detail.UpcomingShows[0].CounterpartName != "Guns N Petals" {
		t.Fatalf("expected artist as counterpart, got %#v", detail.UpcomingShows[0])
	}
	if !detail.UpcomingShows[0].StartTime.Before(detail.UpcomingShows[1].StartTime) {
		t.Fatalf("expected upcoming shows ordered by start time: %#v", detail.UpcomingShows)
	}
}

func TestShowVenueNotFound(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/venues/42", "/venues/abc", "/artists/42", "/venues/42/edit"} {
		rr := env.get(t, path)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("%s: expected status 404, got %d", path, rr.Code)
		}
		if page := decodePage[any](t, rr); page.View != viewNotFound {
			t.Fatalf("%s: expected view %q, got %q", path, viewNotFound, page.View)
		}
	}
}

func TestDeleteVenueNotImplemented(t *testing.T) {
	env := newTestEnv(t)
	env.seedVenue(t, "The Musical Hop", "San Francisco", "CA")

	rr := env.do(t, httptest.NewRequest(http.MethodDelete, "/venues/1", nil))
	if rr.Code != http.StatusNotImplemented {
		t.Fatalf("expected status 501, got %d", rr.Code)
	}
	if _, err := env.store.GetVenue(context.Background(), 1); err != nil {
		t.Fatalf("venue should remain: %v", err)
	}
}

func TestEditVenueFormPrefilled(t *testing.T) {
	env := newTestEnv(t)
	env.seedVenue(t, "The Musical Hop", "San Francisco", "CA")

	rr := env.get(t, "/venues/1/edit")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	page := decodePage[struct {
		Form  map[string]any `json:"form"`
		Venue models.Venue   `json:"venue"`
	}](t, rr)
	if page.View != viewEditVenue {
		t.Fatalf("expected view %q, got %q", viewEditVenue, page.View)
	}
	if page.Data.Form["name"] != "The Musical Hop" || page.Data.Venue.ID != 1 {
		t.Fatalf("unexpected edit payload: %#v", page.Data)
	}
}

func TestUpdateVenueRedirectsWithFlash(t *testing.T) {
	env := newTestEnv(t)
	venue := env.seedVenue(t, "The Musical Hop", "San Francisco", "CA")
	artist := env.seedArtist(t, "Guns N Petals")
	env.seedShow(t, artist.ID, venue.ID, testNow.Add(time.Hour))

	form := venueForm("The Musical Hop Reloaded")
	form.Set("seeking_talent", "y")
	rr := env.post(t, "/venues/1/edit", form)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d: %s", rr.Code, rr.Body.String())
	}
	if loc := rr.Header().Get("Location"); loc != "/venues/1" {
		t.Fatalf("expected redirect to /venues/1, got %q", loc)
	}

	req := httptest.NewRequest(http.MethodGet, "/venues/1", nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	follow := env.do(t, req)
	page := decodePage[struct {
		Venue listing.VenueDetail `json:"venue"`
	}](t, follow)

	if page.Flash == nil || page.Flash.Message != "Venue The Musical Hop Reloaded was successfully updated!" {
		t.Fatalf("unexpected flash: %#v", page.Flash)
	}
	if page.Data.Venue.ID != venue.ID || !page.Data.Venue.SeekingTalent {
		t.Fatalf("unexpected venue after update: %#v", page.Data.Venue.Venue)
	}
	if page.Data.Venue.UpcomingShowsCount != 1 {
		t.Fatalf("expected shows to survive the edit, got %d", page.Data.Venue.UpcomingShowsCount)
	}
}

func TestUpdateMissingVenueNotFound(t *testing.T) {
	env := newTestEnv(t)

	rr := env.post(t, "/venues/9/edit", venueForm("Ghost"))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
}

func TestUpdateVenueValidationFailureKeepsRecord(t *testing.T) {
	env := newTestEnv(t)
	env.seedVenue(t, "The Musical Hop", "San Francisco", "CA")

	form := venueForm("")
	rr := env.post(t, "/venues/1/edit", form)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
	v, err := env.store.GetVenue(context.Background(), 1)
	if err != nil || v.Name != "The Musical Hop" {
		t.Fatalf("venue should be unchanged: %#v, %v", v, err)
	}
}

func TestCreateArtistAcceptsLegacyCheckbox(t *testing.T) {
	env := newTestEnv(t)

	form := artistForm("Matt Quevado")
	form.Set("seeking_venue", "y")
	rr := env.post(t, "/artists/create", form)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
	a, err := env.store.GetArtist(context.Background(), 1)
	if err != nil {
		t.Fatalf("stored artist: %v", err)
	}
	if !a.SeekingVenues {
		t.Fatal("expected seeking venues to be set")
	}
}

func TestListAndSearchArtists(t *testing.T) {
	env := newTestEnv(t)
	env.seedArtist(t, "The Wild Sax Band")
	env.seedArtist(t, "Guns N Petals")
	env.seedArtist(t, "Matt Quevado")

	rr := env.get(t, "/artists")
	page := decodePage[struct {
		Artists []listing.ArtistEntry `json:"artists"`
	}](t, rr)
	if len(page.Data.Artists) != 3 || page.Data.Artists[0].Name != "Guns N Petals" {
		t.Fatalf("unexpected artist index: %#v", page.Data.Artists)
	}

	tests := []struct {
		term string
		want int
	}{
		{term: "A", want: 3},
		{term: "band", want: 1},
		{term: "zzz", want: 0},
	}
	for _, tt := range tests {
		rr := env.post(t, "/artists/search", url.Values{"search_term": {tt.term}})
		result := decodePage[struct {
			Results listing.SearchResults `json:"results"`
		}](t, rr)
		if result.Data.Results.Count != tt.want {
			t.Fatalf("search %q: expected %d, got %#v", tt.term, tt.want, result.Data.Results)
		}
	}
}

func TestShowArtistUsesVenueAsCounterpart(t *testing.T) {
	env := newTestEnv(t)
	venue := env.seedVenue(t, "The Musical Hop", "San Francisco", "CA")
	artist := env.seedArtist(t, "Guns N Petals")
	env.seedShow(t, artist.ID, venue.ID, testNow.Add(-time.Hour))

	rr := env.get(t, "/artists/1")
	page := decodePage[struct {
		Artist listing.ArtistDetail `json:"artist"`
	}](t, rr)
	detail := page.Data.Artist
	if detail.PastShowsCount != 1 || detail.UpcomingShowsCount != 0 {
		t.Fatalf("unexpected counts: %#v", detail)
	}
	if detail.PastShows[0].CounterpartID != venue.ID || detail.PastShows[0].CounterpartName != "The Musical Hop" {
		t.Fatalf("expected venue as counterpart, got %#v", detail.PastShows[0])
	}
}

func TestCreateShowSuccessAndListing(t *testing.T) {
	env := newTestEnv(t)
	env.seedVenue(t, "The Musical Hop", "San Francisco", "CA")
	env.seedArtist(t, "Guns N Petals")

	rr := env.post(t, "/shows/create", url.Values{
		"artist_id":  {"1"},
		"venue_id":   {"1"},
		"start_time": {"2035-04-01 20:00:00"},
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if page := decodePage[any](t, rr); page.Flash == nil || page.Flash.Message != "Show was successfully listed!" {
		t.Fatalf("unexpected flash: %#v", page.Flash)
	}

	list := env.get(t, "/shows")
	page := decodePage[struct {
		Shows []listing.ShowRow `json:"shows"`
	}](t, list)
	if len(page.Data.Shows) != 1 {
		t.Fatalf("expected 1 show, got %#v", page.Data.Shows)
	}
	row := page.Data.Shows[0]
	if row.VenueName != "The Musical Hop" || row.ArtistName != "Guns N Petals" {
		t.Fatalf("unexpected show row: %#v", row)
	}
	if !row.StartTime.Equal(time.Date(2035, time.April, 1, 20, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start time: %v", row.StartTime)
	}
}

func TestCreateShowUnknownArtistConflict(t *testing.T) {
	env := newTestEnv(t)
	env.seedVenue(t, "The Musical Hop", "San Francisco", "CA")

	rr := env.post(t, "/shows/create", url.Values{
		"artist_id":  {"7"},
		"venue_id":   {"1"},
		"start_time": {"2035-04-01 20:00:00"},
	})
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rr.Code)
	}
	page := decodePage[any](t, rr)
	if page.Flash == nil || page.Flash.Message != "An error occurred. Show could not be listed." {
		t.Fatalf("unexpected flash: %#v", page.Flash)
	}
	if n, _ := env.store.CountShows(context.Background()); n != 0 {
		t.Fatalf("expected no shows, got %d", n)
	}
}

func TestCreateShowBadStartTime(t *testing.T) {
	env := newTestEnv(t)

	rr := env.post(t, "/shows/create", url.Values{
		"artist_id":  {"1"},
		"venue_id":   {"1"},
		"start_time": {"next tuesday"},
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestNewShowFormDefaultsToNow(t *testing.T) {
	env := newTestEnv(t)

	rr := env.get(t, "/shows/create")
	page := decodePage[struct {
		Form map[string]string `json:"form"`
	}](t, rr)
	if got := page.Data.Form["start_time"]; got != "2024-06-01 12:00:00" {
		t.Fatalf("unexpected default start time %q", got)
	}
}
