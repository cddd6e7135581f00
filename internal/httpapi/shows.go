package httpapi

import (
	"net/http"

	"fyyur/internal/forms"
)

func (s *Server) handleListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := s.shows.List(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "pages/shows", map[string]any{"shows": shows}, nil)
}

func (s *Server) handleNewShowForm(w http.ResponseWriter, r *http.Request) {
	pending := s.flashes.Pop(w, r)

	in := forms.ShowInput{}
	if len(pending.Form) > 0 {
		in = forms.ParseShow(pending.Form)
	}

	page, err := s.shows.Form(r.Context(), in)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "forms/new_show", page, &pending)
}

func (s *Server) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	values, ok := s.parseForm(w, r)
	if !ok {
		return
	}

	in := forms.ParseShow(values)
	_, err := s.shows.Create(r.Context(), in)
	s.finish(w, r, submission{
		values:   in.Values(),
		formPath: "/shows/create",
		success:  "Show was successfully listed!",
		failure:  "An error occurred. Show could not be listed.",
	}, "/shows", err)
}
