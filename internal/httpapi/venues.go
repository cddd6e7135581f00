package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"fyyur/internal/forms"
	"fyyur/internal/view"
)

func (s *Server) handleListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := s.venues.Areas(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "pages/venues", map[string]any{"areas": areas}, nil)
}

func (s *Server) handleSearchVenues(w http.ResponseWriter, r *http.Request) {
	values, ok := s.parseForm(w, r)
	if !ok {
		return
	}

	results, err := s.venues.Search(r.Context(), strings.TrimSpace(values.Get("search_term")))
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "pages/search_venues", results, nil)
}

func (s *Server) handleShowVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.render(w, r, http.StatusNotFound, "errors/404", nil, nil)
		return
	}

	venue, err := s.venues.Detail(r.Context(), id)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "pages/show_venue", venue, nil)
}

func (s *Server) handleNewVenueForm(w http.ResponseWriter, r *http.Request) {
	pending := s.flashes.Pop(w, r)

	in := forms.VenueInput{}
	if len(pending.Form) > 0 {
		in = forms.ParseVenue(pending.Form)
	}
	s.render(w, r, http.StatusOK, "forms/new_venue", view.NewVenueForm(0, in), &pending)
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	values, ok := s.parseForm(w, r)
	if !ok {
		return
	}

	in := forms.ParseVenue(values)
	id, err := s.venues.Create(r.Context(), in)
	s.finish(w, r, submission{
		values:   in.Values(),
		formPath: "/venues/create",
		success:  "Venue " + in.Name + " was successfully listed!",
		failure:  "An error occurred. Venue " + in.Name + " could not be listed.",
	}, venuePath(id), err)
}

func (s *Server) handleEditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.render(w, r, http.StatusNotFound, "errors/404", nil, nil)
		return
	}

	page, err := s.venues.EditForm(r.Context(), id)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	pending := s.flashes.Pop(w, r)
	if len(pending.Form) > 0 {
		page = view.NewVenueForm(id, forms.ParseVenue(pending.Form))
	}
	s.render(w, r, http.StatusOK, "forms/edit_venue", page, &pending)
}

func (s *Server) handleUpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.render(w, r, http.StatusNotFound, "errors/404", nil, nil)
		return
	}
	values, ok := s.parseForm(w, r)
	if !ok {
		return
	}

	in := forms.ParseVenue(values)
	err := s.venues.Update(r.Context(), id, in)
	s.finish(w, r, submission{
		values:   in.Values(),
		formPath: venuePath(id) + "/edit",
		success:  "Venue " + in.Name + " was successfully edited!",
		failure:  "An error occurred. Venue " + in.Name + " could not be edited.",
	}, venuePath(id), err)
}

func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, deleteResponse{Error: "venue not found"})
		return
	}
	s.finishDelete(w, r, "venue", id, s.venues.Delete(r.Context(), id))
}

func venuePath(id int64) string {
	return "/venues/" + strconv.FormatInt(id, 10)
}
