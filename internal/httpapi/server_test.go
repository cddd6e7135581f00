package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/goleak"

	"fyyur/internal/flash"
	"fyyur/internal/forms"
	"fyyur/internal/store"
	"fyyur/internal/view"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubVenueService struct {
	detail    view.VenueDetail
	detailErr error

	editForm view.VenueForm

	createID  int64
	createErr error
	created   []forms.VenueInput

	updateErr error
	updated   map[int64]forms.VenueInput

	deleteErr error
	deleted   []int64

	searchTerm string
}

func (s *stubVenueService) Areas(context.Context) ([]view.Area, error) {
	return []view.Area{{City: "San Francisco", State: "CA", Venues: []view.AreaVenue{{ID: 1, Name: "The Musical Hop"}}}}, nil
}

func (s *stubVenueService) Search(_ context.Context, term string) (view.SearchResults, error) {
	s.searchTerm = term
	return view.SearchResults{SearchTerm: term, Data: []view.SearchItem{}}, nil
}

func (s *stubVenueService) Detail(context.Context, int64) (view.VenueDetail, error) {
	return s.detail, s.detailErr
}

func (s *stubVenueService) EditForm(_ context.Context, id int64) (view.VenueForm, error) {
	if s.detailErr != nil {
		return view.VenueForm{}, s.detailErr
	}
	return s.editForm, nil
}

func (s *stubVenueService) Recent(context.Context, int) ([]store.Venue, error) {
	return []store.Venue{{ID: 1, Name: "The Musical Hop"}}, nil
}

func (s *stubVenueService) Create(_ context.Context, in forms.VenueInput) (int64, error) {
	if err := forms.Check(in); err != nil {
		return 0, err
	}
	if s.createErr != nil {
		return 0, s.createErr
	}
	s.created = append(s.created, in)
	return s.createID, nil
}

func (s *stubVenueService) Update(_ context.Context, id int64, in forms.VenueInput) error {
	if err := forms.Check(in); err != nil {
		return err
	}
	if s.updateErr != nil {
		return s.updateErr
	}
	if s.updated == nil {
		s.updated = make(map[int64]forms.VenueInput)
	}
	s.updated[id] = in
	return nil
}

func (s *stubVenueService) Delete(_ context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

type stubArtistService struct {
	deleteErr  error
	searchTerm string
}

func (s *stubArtistService) List(context.Context) ([]view.Item, error) {
	return []view.Item{{ID: 4, Name: "Guns N Petals"}}, nil
}

func (s *stubArtistService) Search(_ context.Context, term string) (view.SearchResults, error) {
	s.searchTerm = term
	return view.SearchResults{
		SearchTerm: term,
		Count:      1,
		Data:       []view.SearchItem{{ID: 4, Name: "Guns N Petals", NumUpcomingShows: 1}},
	}, nil
}

func (s *stubArtistService) Detail(context.Context, int64) (view.ArtistDetail, error) {
	return view.ArtistDetail{}, store.ErrArtistNotFound
}

func (s *stubArtistService) EditForm(context.Context, int64) (view.ArtistForm, error) {
	return view.ArtistForm{}, store.ErrArtistNotFound
}

func (s *stubArtistService) Recent(context.Context, int) ([]store.Artist, error) {
	return nil, nil
}

func (s *stubArtistService) Create(_ context.Context, in forms.ArtistInput) (int64, error) {
	if err := forms.Check(in); err != nil {
		return 0, err
	}
	return 11, nil
}

func (s *stubArtistService) Update(context.Context, int64, forms.ArtistInput) error {
	return store.ErrArtistNotFound
}

func (s *stubArtistService) Delete(context.Context, int64) error {
	return s.deleteErr
}

type stubShowService struct {
	createErr error
	created   []forms.ShowInput
}

func (s *stubShowService) List(context.Context) ([]view.ShowRow, error) {
	return []view.ShowRow{{VenueID: 1, ArtistID: 4, StartTime: "2019-05-21T21:30:00.000000Z"}}, nil
}

func (s *stubShowService) Form(_ context.Context, in forms.ShowInput) (view.ShowForm, error) {
	return view.NewShowForm(in, nil, nil), nil
}

func (s *stubShowService) Create(_ context.Context, in forms.ShowInput) (int64, error) {
	if err := forms.Check(in); err != nil {
		return 0, err
	}
	if s.createErr != nil {
		return 0, s.createErr
	}
	s.created = append(s.created, in)
	return 1, nil
}

// memoryFlash keeps the last Set and hands back a preset flash on Pop.
type memoryFlash struct {
	set     *flash.Flash
	pending flash.Flash
}

func (m *memoryFlash) Set(_ http.ResponseWriter, f flash.Flash) error {
	m.set = &f
	return nil
}

func (m *memoryFlash) Pop(http.ResponseWriter, *http.Request) flash.Flash {
	f := m.pending
	m.pending = flash.Flash{}
	return f
}

type testServer struct {
	handler http.Handler
	venues  *stubVenueService
	artists *stubArtistService
	shows   *stubShowService
	flashes *memoryFlash
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		venues:  &stubVenueService{createID: 7},
		artists: &stubArtistService{},
		shows:   &stubShowService{},
		flashes: &memoryFlash{},
	}
	ts.handler = New(ts.venues, ts.artists, ts.shows, ts.flashes).Routes()
	return ts
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

type decodedPage struct {
	Template string          `json:"template"`
	Flashes  []flash.Message `json:"flashes"`
	Data     json.RawMessage `json:"data"`
}

func decodePage(t *testing.T, rr *httptest.ResponseRecorder) decodedPage {
	t.Helper()
	var page decodedPage
	if err := json.NewDecoder(rr.Body).Decode(&page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	return page
}

func fillmoreForm() url.Values {
	return url.Values{
		"name":    {"The Fillmore"},
		"city":    {"San Francisco"},
		"state":   {"CA"},
		"address": {"1805 Geary Blvd"},
		"phone":   {"4155671234"},
		"genres":  {"Rock"},
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	rr := ts.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "OK" {
		t.Fatalf("health = %d %q", rr.Code, rr.Body.String())
	}
}

func TestHome(t *testing.T) {
	ts := newTestServer(t)
	rr := ts.do(httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	page := decodePage(t, rr)
	if page.Template != "pages/home" {
		t.Fatalf("template = %q", page.Template)
	}

	var home view.Home
	if err := json.Unmarshal(page.Data, &home); err != nil {
		t.Fatalf("decode home: %v", err)
	}
	if len(home.Venues) != 1 || len(home.Artists) != 0 {
		t.Fatalf("unexpected home: %#v", home)
	}
}

func TestShowVenueDetail(t *testing.T) {
	ts := newTestServer(t)
	ts.venues.detail = view.NewVenueDetail(store.VenueDetail{Venue: store.Venue{ID: 7, Name: "The Fillmore", Genres: store.Genres{"Rock"}}})

	rr := ts.do(httptest.NewRequest(http.MethodGet, "/venues/7", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	page := decodePage(t, rr)
	var detail map[string]any
	if err := json.Unmarshal(page.Data, &detail); err != nil {
		t.Fatalf("decode detail: %v", err)
	}
	if detail["past_shows_count"] != float64(0) || detail["upcoming_shows_count"] != float64(0) {
		t.Fatalf("unexpected counts: %v", detail)
	}
	if page.Template != "pages/show_venue" {
		t.Fatalf("template = %q", page.Template)
	}
}

func TestShowVenueNotFound(t *testing.T) {
	ts := newTestServer(t)
	ts.venues.detailErr = store.ErrVenueNotFound

	rr := ts.do(httptest.NewRequest(http.MethodGet, "/venues/99", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
	if page := decodePage(t, rr); page.Template != "errors/404" {
		t.Fatalf("template = %q", page.Template)
	}
}

func TestNonNumericIDIsNotFound(t *testing.T) {
	ts := newTestServer(t)
	rr := ts.do(httptest.NewRequest(http.MethodGet, "/venues/abc", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
}

func TestShowVenueUnexpectedError(t *testing.T) {
	ts := newTestServer(t)
	ts.venues.detailErr = errors.New("connection reset")

	rr := ts.do(httptest.NewRequest(http.MethodGet, "/venues/1", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
}

func TestCreateVenueSuccess(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(postForm("/venues/create", fillmoreForm()))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/venues/7" {
		t.Fatalf("Location = %q", loc)
	}
	if len(ts.venues.created) != 1 || ts.venues.created[0].Name != "The Fillmore" {
		t.Fatalf("unexpected create: %#v", ts.venues.created)
	}

	msgs := ts.flashes.set.Messages
	if len(msgs) != 1 || msgs[0].Category != flash.Info || msgs[0].Text != "Venue The Fillmore was successfully listed!" {
		t.Fatalf("unexpected flash: %#v", msgs)
	}
}

func TestCreateVenueRejectedInput(t *testing.T) {
	ts := newTestServer(t)
	values := fillmoreForm()
	values.Set("phone", "12")
	values.Del("city")

	req := postForm("/venues/create", values)
	req.Header.Set("Referer", "http://example.com/venues/create?from=nav")
	rr := ts.do(req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/venues/create?from=nav" {
		t.Fatalf("Location = %q", loc)
	}
	if len(ts.venues.created) != 0 {
		t.Fatal("store was called for invalid input")
	}

	got := ts.flashes.set
	if len(got.Messages) != 2 {
		t.Fatalf("expected one message per invalid field, got %#v", got.Messages)
	}
	if got.Messages[0].Text != "This field is required." || got.Messages[1].Text != "Invalid phone number format." {
		t.Fatalf("unexpected messages: %#v", got.Messages)
	}
	for _, m := range got.Messages {
		if m.Category != flash.Warning {
			t.Fatalf("category = %q, want warning", m.Category)
		}
	}
	if got.Form.Get("name") != "The Fillmore" || got.Form.Get("phone") != "12" {
		t.Fatalf("form values not preserved: %v", got.Form)
	}
}

func TestCreateVenueRejectedWithoutReferer(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(postForm("/venues/create", url.Values{}))
	if loc := rr.Header().Get("Location"); loc != "/venues/create" {
		t.Fatalf("Location = %q", loc)
	}
}

func TestCreateVenueForeignRefererIgnored(t *testing.T) {
	ts := newTestServer(t)

	req := postForm("/venues/create", url.Values{})
	req.Header.Set("Referer", "https://elsewhere.example/phish")
	rr := ts.do(req)
	if loc := rr.Header().Get("Location"); loc != "/venues/create" {
		t.Fatalf("Location = %q", loc)
	}
}

func TestCreateVenueStoreFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.venues.createErr = &store.WriteConflictError{Op: "insert venue", Err: errors.New("deadlock detected")}

	req := postForm("/venues/create", fillmoreForm())
	req.Header.Set("Referer", "/venues/create")
	rr := ts.do(req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/venues/create" {
		t.Fatalf("Location = %q", loc)
	}
	msgs := ts.flashes.set.Messages
	if len(msgs) != 1 || msgs[0].Category != flash.Error || msgs[0].Text != "An error occurred. Venue The Fillmore could not be listed." {
		t.Fatalf("unexpected flash: %#v", msgs)
	}
}

func TestNewVenueFormPrefillsFromFlash(t *testing.T) {
	ts := newTestServer(t)
	ts.flashes.pending = flash.Flash{
		Messages: []flash.Message{{Category: flash.Warning, Text: "Invalid phone number format."}},
		Form:     url.Values{"name": {"The Fillmore"}, "phone": {"12"}},
	}

	rr := ts.do(httptest.NewRequest(http.MethodGet, "/venues/create", nil))
	page := decodePage(t, rr)

	if page.Template != "forms/new_venue" || len(page.Flashes) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
	var form view.VenueForm
	if err := json.Unmarshal(page.Data, &form); err != nil {
		t.Fatalf("decode form: %v", err)
	}
	if form.Form.Name != "The Fillmore" || form.Form.Phone != "12" {
		t.Fatalf("form not prefilled: %+v", form.Form)
	}
}

func TestEditVenueFormFromStore(t *testing.T) {
	ts := newTestServer(t)
	ts.venues.editForm = view.NewVenueForm(7, forms.VenueInput{Name: "The Fillmore"})

	rr := ts.do(httptest.NewRequest(http.MethodGet, "/venues/7/edit", nil))
	page := decodePage(t, rr)

	var form view.VenueForm
	if err := json.Unmarshal(page.Data, &form); err != nil {
		t.Fatalf("decode form: %v", err)
	}
	if page.Template != "forms/edit_venue" || form.ID != 7 || form.Form.Name != "The Fillmore" {
		t.Fatalf("unexpected edit page: %s %+v", page.Template, form)
	}
}

func TestUpdateVenueSuccess(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(postForm("/venues/7/edit", fillmoreForm()))
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/venues/7" {
		t.Fatalf("unexpected response: %d %q", rr.Code, rr.Header().Get("Location"))
	}
	if _, ok := ts.venues.updated[7]; !ok {
		t.Fatal("venue 7 not updated")
	}
	if text := ts.flashes.set.Messages[0].Text; text != "Venue The Fillmore was successfully edited!" {
		t.Fatalf("flash = %q", text)
	}
}

func TestUpdateVenueMissing(t *testing.T) {
	ts := newTestServer(t)
	ts.venues.updateErr = store.ErrVenueNotFound

	rr := ts.do(postForm("/venues/99/edit", fillmoreForm()))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
}

func TestDeleteVenue(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
		wantOK     bool
	}{
		{name: "success", path: "/venues/3", wantStatus: http.StatusOK, wantOK: true},
		{name: "legacy route", path: "/venues/3/delete", wantStatus: http.StatusOK, wantOK: true},
		{name: "missing", path: "/venues/3", err: store.ErrVenueNotFound, wantStatus: http.StatusNotFound},
		{
			name:       "has shows",
			path:       "/venues/3",
			err:        &store.WriteConflictError{Op: "delete venue", Err: store.ErrHasShows},
			wantStatus: http.StatusConflict,
		},
		{name: "storage failure", path: "/venues/3", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.venues.deleteErr = tt.err

			rr := ts.do(httptest.NewRequest(http.MethodDelete, tt.path, nil))
			if rr.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rr.Code)
			}

			var resp deleteResponse
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Success != tt.wantOK {
				t.Fatalf("success = %v, want %v", resp.Success, tt.wantOK)
			}
			if !tt.wantOK && resp.Error == "" {
				t.Fatal("failure without error message")
			}
		})
	}
}

func TestDeleteArtistWithShows(t *testing.T) {
	ts := newTestServer(t)
	ts.artists.deleteErr = &store.WriteConflictError{Op: "delete artist", Err: store.ErrHasShows}

	rr := ts.do(httptest.NewRequest(http.MethodDelete, "/artists/4/delete", nil))
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rr.Code)
	}
	if text := ts.flashes.set.Messages[0].Text; text != "An error occurred. The artist (ID: 4) could not be deleted." {
		t.Fatalf("flash = %q", text)
	}
}

func TestSearchArtists(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(postForm("/artists/search", url.Values{"search_term": {"  guns "}}))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if ts.artists.searchTerm != "guns" {
		t.Fatalf("search term = %q", ts.artists.searchTerm)
	}

	page := decodePage(t, rr)
	var results view.SearchResults
	if err := json.Unmarshal(page.Data, &results); err != nil {
		t.Fatalf("decode results: %v", err)
	}
	if results.Count != 1 || results.Data[0].Name != "Guns N Petals" {
		t.Fatalf("unexpected results: %#v", results)
	}
}

func TestSearchVenuesEmptyTerm(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(postForm("/venues/search", url.Values{}))
	if rr.Code != http.StatusOK || ts.venues.searchTerm != "" {
		t.Fatalf("unexpected search: %d %q", rr.Code, ts.venues.searchTerm)
	}
}

func TestShowArtistNotFound(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/artists/5", "/artists/5/edit"} {
		rr := ts.do(httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusNotFound {
			t.Fatalf("%s: expected status 404, got %d", path, rr.Code)
		}
	}
}

func TestCreateArtistRedirectsToDetail(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(postForm("/artists/create", url.Values{"name": {"Guns N Petals"}, "genres": {"Rock n Roll"}}))
	if rr.Header().Get("Location") != "/artists/11" {
		t.Fatalf("Location = %q", rr.Header().Get("Location"))
	}
}

func TestCreateShow(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(postForm("/shows/create", url.Values{
		"artist_id":  {"4"},
		"venue_id":   {"1"},
		"start_time": {"2035-04-01 20:00:00"},
	}))
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/shows" {
		t.Fatalf("unexpected response: %d %q", rr.Code, rr.Header().Get("Location"))
	}
	if text := ts.flashes.set.Messages[0].Text; text != "Show was successfully listed!" {
		t.Fatalf("flash = %q", text)
	}
}

func TestCreateShowUnknownArtist(t *testing.T) {
	ts := newTestServer(t)
	ts.shows.createErr = &store.WriteConflictError{Op: "insert show", Err: store.ErrUnknownParticipant}

	req := postForm("/shows/create", url.Values{
		"artist_id":  {"999"},
		"venue_id":   {"1"},
		"start_time": {"2035-04-01 20:00:00"},
	})
	req.Header.Set("Referer", "/shows/create")
	rr := ts.do(req)

	if rr.Header().Get("Location") != "/shows/create" {
		t.Fatalf("Location = %q", rr.Header().Get("Location"))
	}
	if text := ts.flashes.set.Messages[0].Text; text != "An error occurred. Show could not be listed." {
		t.Fatalf("flash = %q", text)
	}
	if ts.flashes.set.Form.Get("artist_id") != "999" {
		t.Fatalf("form values not preserved: %v", ts.flashes.set.Form)
	}
}

func TestListShows(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(httptest.NewRequest(http.MethodGet, "/shows", nil))
	page := decodePage(t, rr)
	if page.Template != "pages/shows" || page.Flashes == nil {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestWrongMethodIsRejected(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(httptest.NewRequest(http.MethodPut, "/venues/1", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rr.Code)
	}
}

// oversizedFlash rejects any flash that still carries form values.
type oversizedFlash struct {
	memoryFlash
	attempts int
}

func (o *oversizedFlash) Set(w http.ResponseWriter, f flash.Flash) error {
	o.attempts++
	if len(f.Form) > 0 {
		return flash.ErrTooLarge
	}
	return o.memoryFlash.Set(w, f)
}

func TestRejectedInputSurvivesCookieLimit(t *testing.T) {
	ts := newTestServer(t)
	flashes, err := flash.New("0123456789abcdef-test")
	if err != nil {
		t.Fatalf("flash.New: %v", err)
	}
	handler := New(ts.venues, ts.artists, ts.shows, flashes).Routes()

	values := fillmoreForm()
	values.Set("seeking_description", strings.Repeat("x", 3000))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, postForm("/venues/create", values))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", rr.Code)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one flash cookie, got %d", len(cookies))
	}
	if n := len(cookies[0].String()); n > 4096 {
		t.Fatalf("flash cookie is %d bytes", n)
	}

	next := httptest.NewRequest(http.MethodGet, "/venues/create", nil)
	next.AddCookie(cookies[0])
	got := flashes.Pop(httptest.NewRecorder(), next)

	if len(got.Messages) != 1 || got.Messages[0].Text != "Field cannot be longer than 500 characters." {
		t.Fatalf("unexpected messages: %#v", got.Messages)
	}
	if got.Form.Get("name") != "The Fillmore" {
		t.Fatalf("form values not preserved: %v", got.Form)
	}
	if n := len(got.Form.Get("seeking_description")); n != 120 {
		t.Fatalf("seeking_description kept %d characters, want 120", n)
	}
}

func TestRejectedInputDropsFormWhenStillTooLarge(t *testing.T) {
	ts := newTestServer(t)
	flashes := &oversizedFlash{}
	handler := New(ts.venues, ts.artists, ts.shows, flashes).Routes()

	values := fillmoreForm()
	values.Del("city")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, postForm("/venues/create", values))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", rr.Code)
	}
	if flashes.attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", flashes.attempts)
	}
	if flashes.set == nil || len(flashes.set.Messages) != 1 || flashes.set.Messages[0].Text != "This field is required." {
		t.Fatalf("messages lost: %#v", flashes.set)
	}
	if flashes.set.Form != nil {
		t.Fatalf("form should be dropped, got %v", flashes.set.Form)
	}
}

// recordingRenderer keeps the last page instead of writing it.
type recordingRenderer struct {
	status int
	page   Page
}

func (r *recordingRenderer) Render(w http.ResponseWriter, status int, page Page) error {
	r.status = status
	r.page = page
	w.WriteHeader(status)
	_, err := w.Write([]byte("<html>" + page.Template + "</html>"))
	return err
}

func TestCustomRenderer(t *testing.T) {
	ts := newTestServer(t)
	renderer := &recordingRenderer{}
	handler := New(ts.venues, ts.artists, ts.shows, ts.flashes, WithRenderer(renderer)).Routes()

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/venues", nil))

	if rr.Code != http.StatusOK || rr.Body.String() != "<html>pages/venues</html>" {
		t.Fatalf("response = %d %q", rr.Code, rr.Body.String())
	}
	if renderer.page.Template != "pages/venues" || renderer.status != http.StatusOK {
		t.Fatalf("unexpected page: %d %#v", renderer.status, renderer.page)
	}
	data, ok := renderer.page.Data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected data: %#v", renderer.page.Data)
	}
	areas, ok := data["areas"].([]view.Area)
	if !ok || len(areas) != 1 || areas[0].City != "San Francisco" {
		t.Fatalf("unexpected data: %#v", renderer.page.Data)
	}
	if renderer.page.Flashes == nil {
		t.Fatal("flashes should never be nil")
	}
}
