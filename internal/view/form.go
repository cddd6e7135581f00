package view

import "fyyur/internal/forms"

// Choices are the fixed vocabularies offered by the venue and artist forms.
type Choices struct {
	States []string `json:"states"`
	Genres []string `json:"genres"`
}

func defaultChoices() Choices {
	return Choices{
		States: append([]string{}, forms.States...),
		Genres: append([]string{}, forms.Genres...),
	}
}

// VenueForm is the create or edit page of a venue. ID is zero when creating.
type VenueForm struct {
	ID      int64            `json:"id,omitempty"`
	Form    forms.VenueInput `json:"form"`
	Choices Choices          `json:"choices"`
}

// NewVenueForm builds a venue form page prefilled with in.
func NewVenueForm(id int64, in forms.VenueInput) VenueForm {
	if in.Genres == nil {
		in.Genres = []string{}
	}
	return VenueForm{ID: id, Form: in, Choices: defaultChoices()}
}

// ArtistForm is the create or edit page of an artist. ID is zero when creating.
type ArtistForm struct {
	ID      int64             `json:"id,omitempty"`
	Form    forms.ArtistInput `json:"form"`
	Choices Choices           `json:"choices"`
}

// NewArtistForm builds an artist form page prefilled with in.
func NewArtistForm(id int64, in forms.ArtistInput) ArtistForm {
	if in.Genres == nil {
		in.Genres = []string{}
	}
	return ArtistForm{ID: id, Form: in, Choices: defaultChoices()}
}

// ShowForm is the page for booking a show.
type ShowForm struct {
	Form    forms.ShowInput `json:"form"`
	Artists []Item          `json:"artists"`
	Venues  []Item          `json:"venues"`
}

// NewShowForm builds the show form with its artist and venue pick lists.
func NewShowForm(in forms.ShowInput, artists, venues []Item) ShowForm {
	if artists == nil {
		artists = []Item{}
	}
	if venues == nil {
		venues = []Item{}
	}
	return ShowForm{Form: in, Artists: artists, Venues: venues}
}
