package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"fyyur/internal/forms"
	"fyyur/internal/view"
)

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.artists.List(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "pages/artists", map[string]any{"artists": artists}, nil)
}

func (s *Server) handleSearchArtists(w http.ResponseWriter, r *http.Request) {
	values, ok := s.parseForm(w, r)
	if !ok {
		return
	}

	results, err := s.artists.Search(r.Context(), strings.TrimSpace(values.Get("search_term")))
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "pages/search_artists", results, nil)
}

func (s *Server) handleShowArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.render(w, r, http.StatusNotFound, "errors/404", nil, nil)
		return
	}

	artist, err := s.artists.Detail(r.Context(), id)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "pages/show_artist", artist, nil)
}

func (s *Server) handleNewArtistForm(w http.ResponseWriter, r *http.Request) {
	pending := s.flashes.Pop(w, r)

	in := forms.ArtistInput{}
	if len(pending.Form) > 0 {
		in = forms.ParseArtist(pending.Form)
	}
	s.render(w, r, http.StatusOK, "forms/new_artist", view.NewArtistForm(0, in), &pending)
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	values, ok := s.parseForm(w, r)
	if !ok {
		return
	}

	in := forms.ParseArtist(values)
	id, err := s.artists.Create(r.Context(), in)
	s.finish(w, r, submission{
		values:   in.Values(),
		formPath: "/artists/create",
		success:  "Artist " + in.Name + " was successfully listed!",
		failure:  "An error occurred. Artist " + in.Name + " could not be listed.",
	}, artistPath(id), err)
}

func (s *Server) handleEditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.render(w, r, http.StatusNotFound, "errors/404", nil, nil)
		return
	}

	page, err := s.artists.EditForm(r.Context(), id)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	pending := s.flashes.Pop(w, r)
	if len(pending.Form) > 0 {
		page = view.NewArtistForm(id, forms.ParseArtist(pending.Form))
	}
	s.render(w, r, http.StatusOK, "forms/edit_artist", page, &pending)
}

func (s *Server) handleUpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.render(w, r, http.StatusNotFound, "errors/404", nil, nil)
		return
	}
	values, ok := s.parseForm(w, r)
	if !ok {
		return
	}

	in := forms.ParseArtist(values)
	err := s.artists.Update(r.Context(), id, in)
	s.finish(w, r, submission{
		values:   in.Values(),
		formPath: artistPath(id) + "/edit",
		success:  "Artist " + in.Name + " was successfully edited!",
		failure:  "An error occurred. Artist " + in.Name + " could not be edited.",
	}, artistPath(id), err)
}

func (s *Server) handleDeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, deleteResponse{Error: "artist not found"})
		return
	}
	s.finishDelete(w, r, "artist", id, s.artists.Delete(r.Context(), id))
}

func artistPath(id int64) string {
	return "/artists/" + strconv.FormatInt(id, 10)
}
