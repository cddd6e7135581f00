package forms

import (
	"net/url"
	"strconv"
	"time"

	"fyyur/internal/store"
)

// startTimeLayouts are tried in order when reading start_time.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ShowInput is a submitted show form. Raw strings are kept so a rejected
// form can be shown again exactly as typed.
type ShowInput struct {
	ArtistID  string `json:"artist_id"`
	VenueID   string `json:"venue_id"`
	StartTime string `json:"start_time"`
}

// ParseShow reads a show form from submitted values.
func ParseShow(values url.Values) ShowInput {
	return ShowInput{
		ArtistID:  text(values, "artist_id"),
		VenueID:   text(values, "venue_id"),
		StartTime: text(values, "start_time"),
	}
}

// Validate implements Form.
func (in ShowInput) Validate() Errors {
	errs := Errors{}
	checkID(errs, "artist_id", in.ArtistID)
	checkID(errs, "venue_id", in.VenueID)
	if in.StartTime == "" {
		errs.Add("start_time", msgRequired)
	} else if _, err := ParseStartTime(in.StartTime, time.Local); err != nil {
		errs.Add("start_time", msgDateTime)
	}
	return errs
}

// Show converts the form into a store record. Layouts without a zone are
// read in loc. It reports the validation errors when the form is invalid.
func (in ShowInput) Show(loc *time.Location) (store.Show, error) {
	if err := Check(in); err != nil {
		return store.Show{}, err
	}
	artistID, _ := strconv.ParseInt(in.ArtistID, 10, 64)
	venueID, _ := strconv.ParseInt(in.VenueID, 10, 64)
	start, _ := ParseStartTime(in.StartTime, loc)
	return store.Show{ArtistID: artistID, VenueID: venueID, StartTime: start}, nil
}

// Values encodes the form back into submitted values so it can be shown again.
func (in ShowInput) Values() url.Values {
	return url.Values{
		"artist_id":  {in.ArtistID},
		"venue_id":   {in.VenueID},
		"start_time": {in.StartTime},
	}
}

// ParseStartTime accepts the date-time layouts a show form may submit.
func ParseStartTime(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	var firstErr error
	for _, layout := range startTimeLayouts {
		t, err := time.ParseInLocation(layout, raw, loc)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

func checkID(errs Errors, field, raw string) {
	if raw == "" {
		errs.Add(field, msgRequired)
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		errs.Add(field, msgInteger)
	}
}
