package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"fyyur/internal/flash"
	"fyyur/internal/forms"
	"fyyur/internal/logging"
	"fyyur/internal/store"
)

// submission describes the redirects and notices of one form write.
type submission struct {
	values   url.Values // re-displayed when the write does not happen
	formPath string     // where to go back to without a usable Referer
	success  string
	failure  string
}

// finish moves a submission to its final state: done, rejected input or failed.
func (s *Server) finish(w http.ResponseWriter, r *http.Request, sub submission, target string, err error) {
	var invalid forms.Errors
	switch {
	case err == nil:
		s.setFlash(w, r, flash.Flash{Messages: []flash.Message{{Category: flash.Info, Text: sub.success}}})
		http.Redirect(w, r, target, http.StatusSeeOther)
	case errors.As(err, &invalid):
		messages := make([]flash.Message, 0, len(invalid))
		for _, text := range invalid.First() {
			messages = append(messages, flash.Message{Category: flash.Warning, Text: text})
		}
		s.setFlash(w, r, flash.Flash{Messages: messages, Form: sub.values})
		s.redirectBack(w, r, sub.formPath)
	case errors.Is(err, store.ErrNotFound):
		s.renderError(w, r, err)
	default:
		logging.WithContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("form write failed")
		s.setFlash(w, r, flash.Flash{
			Messages: []flash.Message{{Category: flash.Error, Text: sub.failure}},
			Form:     sub.values,
		})
		s.redirectBack(w, r, sub.formPath)
	}
}

// keptValueLength caps each re-displayed value when the full form does not
// fit in the flash cookie.
const keptValueLength = 120

// setFlash stores f. When it is too large the form values are shortened,
// then dropped, so the messages always get through.
func (s *Server) setFlash(w http.ResponseWriter, r *http.Request, f flash.Flash) {
	err := s.flashes.Set(w, f)
	if errors.Is(err, flash.ErrTooLarge) && len(f.Form) > 0 {
		f.Form = shortenValues(f.Form, keptValueLength)
		if err = s.flashes.Set(w, f); errors.Is(err, flash.ErrTooLarge) {
			f.Form = nil
			err = s.flashes.Set(w, f)
		}
	}
	if err != nil {
		logging.WithContext(r.Context()).Warn().Err(err).Msg("set flash failed")
	}
}

func shortenValues(values url.Values, max int) url.Values {
	out := make(url.Values, len(values))
	for key, vs := range values {
		kept := make([]string, len(vs))
		for i, v := range vs {
			if runes := []rune(v); len(runes) > max {
				v = string(runes[:max])
			}
			kept[i] = v
		}
		out[key] = kept
	}
	return out
}

// redirectBack returns to the Referer when it points at this site.
func (s *Server) redirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	target := fallback
	if ref, err := url.Parse(r.Referer()); err == nil && ref.Path != "" && (ref.Host == "" || ref.Host == r.Host) {
		target = ref.RequestURI()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// parseForm reads the submitted body, answering 400 itself when it cannot.
func (s *Server) parseForm(w http.ResponseWriter, r *http.Request) (url.Values, bool) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form body"})
		return nil, false
	}
	return r.PostForm, true
}

type deleteResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// finishDelete reports a delete as JSON and leaves a notice for the next page.
func (s *Server) finishDelete(w http.ResponseWriter, r *http.Request, kind string, id int64, err error) {
	if err == nil {
		s.setFlash(w, r, flash.Flash{Messages: []flash.Message{{
			Category: flash.Info,
			Text:     fmt.Sprintf("The %s (ID: %d) was successfully deleted!", kind, id),
		}}})
		writeJSON(w, http.StatusOK, deleteResponse{Success: true})
		return
	}

	status, message := http.StatusInternalServerError, fmt.Sprintf("could not delete %s", kind)
	switch {
	case errors.Is(err, store.ErrNotFound):
		status, message = http.StatusNotFound, fmt.Sprintf("%s not found", kind)
	case errors.Is(err, store.ErrHasShows):
		status, message = http.StatusConflict, fmt.Sprintf("%s still has shows", kind)
	default:
		logging.WithContext(r.Context()).Error().Err(err).Int64("id", id).Msgf("delete %s failed", kind)
	}

	s.setFlash(w, r, flash.Flash{Messages: []flash.Message{{
		Category: flash.Error,
		Text:     fmt.Sprintf("An error occurred. The %s (ID: %d) could not be deleted.", kind, id),
	}}})
	writeJSON(w, status, deleteResponse{Success: false, Error: message})
}
