package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"fyyur/internal/models"
)

var venueRowColumns = []string{
	"id", "name", "city", "state", "address", "phone", "genres", "image_link",
	"facebook_link", "website_link", "seeking_talent", "seeking_description",
}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func TestValidateVenue(t *testing.T) {
	valid := models.Venue{
		Name: "The Musical Hop", City: "San Francisco", State: "CA",
		Address: "1015 Folsom Street", Genres: models.Genres{"Jazz"},
	}

	tests := []struct {
		name      string
		mutate    func(v *models.Venue)
		wantField string
	}{
		{name: "valid venue"},
		{name: "missing name", mutate: func(v *models.Venue) { v.Name = "  " }, wantField: "name"},
		{name: "missing address", mutate: func(v *models.Venue) { v.Address = "" }, wantField: "address"},
		{name: "no genres", mutate: func(v *models.Venue) { v.Genres = nil }, wantField: "genres"},
		{name: "blank genre", mutate: func(v *models.Venue) { v.Genres = models.Genres{"Jazz", " "} }, wantField: "genres"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := valid
			if tc.mutate != nil {
				tc.mutate(&v)
			}
			err := ValidateVenue(v)
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("expected nil error but got %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Field != tc.wantField {
				t.Fatalf("expected validation error on %q, got %v", tc.wantField, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestCreateVenueSuccess(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO venues`)).
		WithArgs("The Musical Hop", "San Francisco", "CA", "1015 Folsom Street", "1231231234",
			sqlmock.AnyArg(), "", "", "", true, "Looking for local jazz").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	venue, err := s.CreateVenue(context.Background(), models.Venue{
		Name:               "  The Musical Hop ",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Phone:              "1231231234",
		Genres:             models.Genres{"Jazz", " Reggae "},
		SeekingTalent:      true,
		SeekingDescription: "Looking for local jazz",
	})
	if err != nil {
		t.Fatalf("CreateVenue returned error: %v", err)
	}
	if venue.ID != 1 || venue.Name != "The Musical Hop" {
		t.Fatalf("unexpected venue: %#v", venue)
	}
	if len(venue.Genres) != 2 || venue.Genres[1] != "Reggae" {
		t.Fatalf("expected trimmed genres in order, got %#v", venue.Genres)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateVenueValidationSkipsDatabase(t *testing.T) {
	s, mock := newMockStore(t)

	_, err := s.CreateVenue(context.Background(), models.Venue{Name: "No City"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database calls: %v", err)
	}
}

func TestCreateVenueBeginFailure(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	_, err := s.CreateVenue(context.Background(), models.Venue{
		Name: "Hop", City: "SF", State: "CA", Address: "1 St", Genres: models.Genres{"Jazz"},
	})
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestGetVenueSuccess(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM venues`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(venueRowColumns).AddRow(
			int64(1), "The Musical Hop", "San Francisco", "CA", "1015 Folsom Street", "1231231234",
			"{Jazz,Reggae,Swing}", "", "", "", true, "",
		))

	v, err := s.GetVenue(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetVenue returned error: %v", err)
	}
	want := []string{"Jazz", "Reggae", "Swing"}
	if len(v.Genres) != len(want) {
		t.Fatalf("expected genres %v, got %v", want, v.Genres)
	}
	for i := range want {
		if v.Genres[i] != want[i] {
			t.Fatalf("expected genres %v, got %v", want, v.Genres)
		}
	}
	if !v.SeekingTalent {
		t.Fatal("expected seeking talent")
	}
}

func TestGetVenueNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM venues`)).
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetVenue(context.Background(), 9)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err.Error() != "venue 9 not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestUpdateVenueNotFoundRollsBack(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE venues`)).
		WillReturnRows(sqlmock.NewRows(venueRowColumns))
	mock.ExpectRollback()

	_, err := s.UpdateVenue(context.Background(), 4, models.Venue{
		Name: "Hop", City: "SF", State: "CA", Address: "1 St", Genres: models.Genres{"Jazz"},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSearchVenuesEscapesWildcards(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE name ILIKE '%' || $1 || '%'`)).
		WithArgs(`100\%\_off`).
		WillReturnRows(sqlmock.NewRows(venueRowColumns))

	venues, err := s.SearchVenues(context.Background(), "100%_off")
	if err != nil {
		t.Fatalf("SearchVenues returned error: %v", err)
	}
	if venues == nil || len(venues) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", venues)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
