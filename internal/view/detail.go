// Package view shapes store results into the structures pages are rendered
// from. Everything here is a pure function of its input.
package view

import (
	"time"

	"fyyur/internal/store"
)

const (
	// DetailTimeLayout formats show times on venue and artist pages.
	DetailTimeLayout = "2006-01-02 15:04:05"
	// ListingTimeLayout formats show times on the shows listing, always in UTC.
	ListingTimeLayout = "2006-01-02T15:04:05.000000Z"
)

// VenueShow is one show on a venue page.
type VenueShow struct {
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueDetail is the venue page.
type VenueDetail struct {
	ID                 int64       `json:"id"`
	Name               string      `json:"name"`
	Genres             []string    `json:"genres"`
	Address            string      `json:"address"`
	City               string      `json:"city"`
	State              string      `json:"state"`
	Phone              string      `json:"phone"`
	Website            string      `json:"website"`
	FacebookLink       string      `json:"facebook_link"`
	SeekingTalent      bool        `json:"seeking_talent"`
	SeekingDescription string      `json:"seeking_description"`
	ImageLink          string      `json:"image_link"`
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// NewVenueDetail builds the venue page from a venue and its partitioned shows.
func NewVenueDetail(d store.VenueDetail) VenueDetail {
	past := venueShows(d.PastShows)
	upcoming := venueShows(d.UpcomingShows)

	return VenueDetail{
		ID:                 d.ID,
		Name:               d.Name,
		Genres:             genreList(d.Genres),
		Address:            d.Address,
		City:               d.City,
		State:              d.State,
		Phone:              d.Phone,
		Website:            d.WebsiteLink,
		FacebookLink:       d.FacebookLink,
		SeekingTalent:      d.SeekingTalent,
		SeekingDescription: d.SeekingDescription,
		ImageLink:          d.ImageLink,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

func venueShows(shows []store.VenueShow) []VenueShow {
	out := make([]VenueShow, 0, len(shows))
	for _, sh := range shows {
		out = append(out, VenueShow{
			ArtistID:        sh.ArtistID,
			ArtistName:      sh.ArtistName,
			ArtistImageLink: sh.ArtistImageLink,
			StartTime:       sh.StartTime.Format(DetailTimeLayout),
		})
	}
	return out
}

// ArtistShow is one show on an artist page.
type ArtistShow struct {
	VenueID        int64  `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ArtistDetail is the artist page.
type ArtistDetail struct {
	ID                 int64        `json:"id"`
	Name               string       `json:"name"`
	Genres             []string     `json:"genres"`
	City               string       `json:"city"`
	State              string       `json:"state"`
	Phone              string       `json:"phone"`
	Website            string       `json:"website"`
	FacebookLink       string       `json:"facebook_link"`
	SeekingVenue       bool         `json:"seeking_venue"`
	SeekingDescription string       `json:"seeking_description"`
	ImageLink          string       `json:"image_link"`
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// NewArtistDetail builds the artist page from an artist and its partitioned shows.
func NewArtistDetail(d store.ArtistDetail) ArtistDetail {
	past := artistShows(d.PastShows)
	upcoming := artistShows(d.UpcomingShows)

	return ArtistDetail{
		ID:                 d.ID,
		Name:               d.Name,
		Genres:             genreList(d.Genres),
		City:               d.City,
		State:              d.State,
		Phone:              d.Phone,
		Website:            d.WebsiteLink,
		FacebookLink:       d.FacebookLink,
		SeekingVenue:       d.SeekingVenue,
		SeekingDescription: d.SeekingDescription,
		ImageLink:          d.ImageLink,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

func artistShows(shows []store.ArtistShow) []ArtistShow {
	out := make([]ArtistShow, 0, len(shows))
	for _, sh := range shows {
		out = append(out, ArtistShow{
			VenueID:        sh.VenueID,
			VenueName:      sh.VenueName,
			VenueImageLink: sh.VenueImageLink,
			StartTime:      sh.StartTime.Format(DetailTimeLayout),
		})
	}
	return out
}

// genreList never returns nil so pages always get a list.
func genreList(g store.Genres) []string {
	out := make([]string, 0, len(g))
	return append(out, g...)
}

func listingTime(t time.Time) string {
	return t.UTC().Format(ListingTimeLayout)
}
