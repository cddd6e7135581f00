package forms

import (
	"net/url"

	"fyyur/internal/store"
)

// VenueInput is a submitted venue form.
type VenueInput struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	ImageLink          string   `json:"image_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

// ParseVenue reads a venue form from submitted values.
func ParseVenue(values url.Values) VenueInput {
	return VenueInput{
		Name:               text(values, "name"),
		City:               text(values, "city"),
		State:              text(values, "state"),
		Address:            text(values, "address"),
		Phone:              text(values, "phone"),
		Genres:             list(values, "genres"),
		FacebookLink:       text(values, "facebook_link"),
		WebsiteLink:        text(values, "website_link"),
		ImageLink:          text(values, "image_link"),
		SeekingTalent:      checked(values, "seeking_talent"),
		SeekingDescription: text(values, "seeking_description"),
	}
}

// VenueInputFrom fills a venue form from a stored venue, for editing.
func VenueInputFrom(v store.Venue) VenueInput {
	return VenueInput{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             append([]string{}, v.Genres...),
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.WebsiteLink,
		ImageLink:          v.ImageLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

// Validate implements Form.
func (in VenueInput) Validate() Errors {
	errs := Errors{}
	requireText(errs, "name", in.Name, maxNameLength)
	requireText(errs, "city", in.City, maxFieldLength)
	if in.State == "" {
		errs.Add("state", msgRequired)
	} else {
		checkState(errs, "state", in.State)
	}
	requireText(errs, "address", in.Address, maxFieldLength)
	if in.Phone == "" {
		errs.Add("phone", msgRequired)
	} else {
		checkPhone(errs, "phone", in.Phone)
	}
	checkGenres(errs, "genres", in.Genres)
	checkURL(errs, "facebook_link", in.FacebookLink, maxFieldLength)
	checkURL(errs, "website_link", in.WebsiteLink, maxFieldLength)
	checkURL(errs, "image_link", in.ImageLink, maxLongLength)
	checkLength(errs, "seeking_description", in.SeekingDescription, maxLongLength)
	return errs
}

// Venue converts a validated form into a store record.
func (in VenueInput) Venue() store.Venue {
	return store.Venue{
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Address:            in.Address,
		Phone:              in.Phone,
		Genres:             store.Genres(append([]string{}, in.Genres...)),
		FacebookLink:       in.FacebookLink,
		WebsiteLink:        in.WebsiteLink,
		ImageLink:          in.ImageLink,
		SeekingTalent:      in.SeekingTalent,
		SeekingDescription: in.SeekingDescription,
	}
}

// Values encodes the form back into submitted values so it can be shown again.
func (in VenueInput) Values() url.Values {
	values := url.Values{
		"name":                {in.Name},
		"city":                {in.City},
		"state":               {in.State},
		"address":             {in.Address},
		"phone":               {in.Phone},
		"genres":              append([]string{}, in.Genres...),
		"facebook_link":       {in.FacebookLink},
		"website_link":        {in.WebsiteLink},
		"image_link":          {in.ImageLink},
		"seeking_description": {in.SeekingDescription},
	}
	if in.SeekingTalent {
		values.Set("seeking_talent", boolValue(true))
	}
	return values
}
