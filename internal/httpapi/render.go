package httpapi

import (
	"errors"
	"net/http"

	"fyyur/internal/flash"
	"fyyur/internal/logging"
	"fyyur/internal/store"
)

// Page is everything a template needs to draw one response.
type Page struct {
	Template string          `json:"template"`
	Flashes  []flash.Message `json:"flashes"`
	Data     any             `json:"data,omitempty"`
}

// Renderer draws a Page. HTML templating plugs in here.
type Renderer interface {
	Render(w http.ResponseWriter, status int, page Page) error
}

// JSONRenderer writes the Page itself as JSON.
type JSONRenderer struct{}

// Render implements Renderer.
func (JSONRenderer) Render(w http.ResponseWriter, status int, page Page) error {
	writeJSON(w, status, page)
	return nil
}

// render draws template with data. Pending notices are consumed unless the
// caller already popped them and passes them in.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, template string, data any, pending *flash.Flash) {
	if pending == nil {
		f := s.flashes.Pop(w, r)
		pending = &f
	}

	messages := pending.Messages
	if messages == nil {
		messages = []flash.Message{}
	}

	page := Page{Template: template, Flashes: messages, Data: data}
	if err := s.renderer.Render(w, status, page); err != nil {
		logging.WithContext(r.Context()).Error().Err(err).Str("template", template).Msg("render page failed")
	}
}

// renderError draws the 404 page for missing records and the 500 page otherwise.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrNotFound) {
		s.render(w, r, http.StatusNotFound, "errors/404", nil, nil)
		return
	}

	logging.WithContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	s.render(w, r, http.StatusInternalServerError, "errors/500", nil, nil)
}
