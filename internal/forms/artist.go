package forms

import (
	"net/url"

	"fyyur/internal/store"
)

// ArtistInput is a submitted artist form. Location and phone are optional
// but checked when given.
type ArtistInput struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	ImageLink          string   `json:"image_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

// ParseArtist reads an artist form from submitted values.
func ParseArtist(values url.Values) ArtistInput {
	return ArtistInput{
		Name:               text(values, "name"),
		City:               text(values, "city"),
		State:              text(values, "state"),
		Phone:              text(values, "phone"),
		Genres:             list(values, "genres"),
		FacebookLink:       text(values, "facebook_link"),
		WebsiteLink:        text(values, "website_link"),
		ImageLink:          text(values, "image_link"),
		SeekingVenue:       checked(values, "seeking_venue"),
		SeekingDescription: text(values, "seeking_description"),
	}
}

// ArtistInputFrom fills an artist form from a stored artist, for editing.
func ArtistInputFrom(a store.Artist) ArtistInput {
	return ArtistInput{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             append([]string{}, a.Genres...),
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.WebsiteLink,
		ImageLink:          a.ImageLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

// Validate implements Form.
func (in ArtistInput) Validate() Errors {
	errs := Errors{}
	requireText(errs, "name", in.Name, maxNameLength)
	checkLength(errs, "city", in.City, maxFieldLength)
	if in.State != "" {
		checkState(errs, "state", in.State)
	}
	if in.Phone != "" {
		checkPhone(errs, "phone", in.Phone)
	}
	checkGenres(errs, "genres", in.Genres)
	checkURL(errs, "facebook_link", in.FacebookLink, maxFieldLength)
	checkURL(errs, "website_link", in.WebsiteLink, maxFieldLength)
	checkURL(errs, "image_link", in.ImageLink, maxLongLength)
	checkLength(errs, "seeking_description", in.SeekingDescription, maxLongLength)
	return errs
}

// Artist converts a validated form into a store record.
func (in ArtistInput) Artist() store.Artist {
	return store.Artist{
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Phone:              in.Phone,
		Genres:             store.Genres(append([]string{}, in.Genres...)),
		FacebookLink:       in.FacebookLink,
		WebsiteLink:        in.WebsiteLink,
		ImageLink:          in.ImageLink,
		SeekingVenue:       in.SeekingVenue,
		SeekingDescription: in.SeekingDescription,
	}
}

// Values encodes the form back into submitted values so it can be shown again.
func (in ArtistInput) Values() url.Values {
	values := url.Values{
		"name":                {in.Name},
		"city":                {in.City},
		"state":               {in.State},
		"phone":               {in.Phone},
		"genres":              append([]string{}, in.Genres...),
		"facebook_link":       {in.FacebookLink},
		"website_link":        {in.WebsiteLink},
		"image_link":          {in.ImageLink},
		"seeking_description": {in.SeekingDescription},
	}
	if in.SeekingVenue {
		values.Set("seeking_venue", boolValue(true))
	}
	return values
}
