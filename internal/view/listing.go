package view

import "fyyur/internal/store"

// Area groups the venues of one city.
type Area struct {
	City   string      `json:"city"`
	State  string      `json:"state"`
	Venues []AreaVenue `json:"venues"`
}

// AreaVenue is one venue inside an Area.
type AreaVenue struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// GroupByLocation buckets venues by city and state. Areas appear in the order
// their first venue does, and venues keep their order within an area.
func GroupByLocation(venues []store.VenueListing) []Area {
	type location struct{ city, state string }

	areas := make([]Area, 0)
	index := make(map[location]int)
	for _, v := range venues {
		key := location{city: v.City, state: v.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, Area{City: v.City, State: v.State, Venues: []AreaVenue{}})
		}
		areas[i].Venues = append(areas[i].Venues, AreaVenue{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: v.UpcomingShows,
		})
	}
	return areas
}

// Item is an id and name pair, used by the artist listing and pick lists.
type Item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Artists lists artists by id and name.
func Artists(artists []store.ArtistSummary) []Item {
	items := make([]Item, 0, len(artists))
	for _, a := range artists {
		items = append(items, Item{ID: a.ID, Name: a.Name})
	}
	return items
}

// Venues lists venues by id and name.
func Venues(venues []store.VenueListing) []Item {
	items := make([]Item, 0, len(venues))
	for _, v := range venues {
		items = append(items, Item{ID: v.ID, Name: v.Name})
	}
	return items
}

// ShowRow is one row of the shows listing.
type ShowRow struct {
	VenueID         int64  `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// Shows flattens the show listing.
func Shows(shows []store.ShowListing) []ShowRow {
	rows := make([]ShowRow, 0, len(shows))
	for _, sh := range shows {
		rows = append(rows, ShowRow{
			VenueID:         sh.VenueID,
			VenueName:       sh.VenueName,
			ArtistID:        sh.ArtistID,
			ArtistName:      sh.ArtistName,
			ArtistImageLink: sh.ArtistImageLink,
			StartTime:       listingTime(sh.StartTime),
		})
	}
	return rows
}

// SearchResults is the results page of a name search.
type SearchResults struct {
	SearchTerm string       `json:"search_term"`
	Count      int          `json:"count"`
	Data       []SearchItem `json:"data"`
}

// SearchItem is one match of a name search.
type SearchItem struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Search builds the results page for term.
func Search(term string, result store.SearchResult) SearchResults {
	data := make([]SearchItem, 0, len(result.Data))
	for _, m := range result.Data {
		data = append(data, SearchItem{ID: m.ID, Name: m.Name, NumUpcomingShows: m.UpcomingShows})
	}
	return SearchResults{SearchTerm: term, Count: result.Count, Data: data}
}

// Listed is a recently listed venue or artist on the home page.
type Listed struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	City      string `json:"city"`
	State     string `json:"state"`
	ImageLink string `json:"image_link"`
}

// Home is the landing page.
type Home struct {
	Venues  []Listed `json:"recent_venues"`
	Artists []Listed `json:"recent_artists"`
}

// NewHome builds the landing page from the newest venues and artists.
func NewHome(venues []store.Venue, artists []store.Artist) Home {
	home := Home{
		Venues:  make([]Listed, 0, len(venues)),
		Artists: make([]Listed, 0, len(artists)),
	}
	for _, v := range venues {
		home.Venues = append(home.Venues, Listed{ID: v.ID, Name: v.Name, City: v.City, State: v.State, ImageLink: v.ImageLink})
	}
	for _, a := range artists {
		home.Artists = append(home.Artists, Listed{ID: a.ID, Name: a.Name, City: a.City, State: a.State, ImageLink: a.ImageLink})
	}
	return home
}
