package store

import (
	"reflect"
	"testing"
)

func TestGenresRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		tags    []string
		encoded string
	}{
		{name: "single", tags: []string{"Rock"}, encoded: "{Rock}"},
		{name: "several", tags: []string{"Classical", "Hip-Hop", "R&B"}, encoded: "{Classical,Hip-Hop,R&B}"},
		{name: "spaces inside tags", tags: []string{"Rock n Roll", "Musical Theatre"}, encoded: "{Rock n Roll,Musical Theatre}"},
		{name: "empty", tags: []string{}, encoded: "{}"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := EncodeGenres(tc.tags)
			if got != tc.encoded {
				t.Fatalf("EncodeGenres = %q, want %q", got, tc.encoded)
			}
			back := DecodeGenres(got)
			if !reflect.DeepEqual([]string(back), tc.tags) {
				t.Fatalf("DecodeGenres = %#v, want %#v", back, tc.tags)
			}
		})
	}
}

func TestDecodeGenresLegacyQuoting(t *testing.T) {
	got := DecodeGenres(`{"Rock n Roll",Jazz}`)
	want := Genres{"Rock n Roll", "Jazz"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DecodeGenres = %#v, want %#v", got, want)
	}
}

func TestGenresScan(t *testing.T) {
	var g Genres
	if err := g.Scan([]byte("{Jazz,Soul}")); err != nil {
		t.Fatalf("Scan bytes: %v", err)
	}
	if !reflect.DeepEqual(g, Genres{"Jazz", "Soul"}) {
		t.Fatalf("unexpected genres %#v", g)
	}

	if err := g.Scan(nil); err != nil {
		t.Fatalf("Scan nil: %v", err)
	}
	if g == nil || len(g) != 0 {
		t.Fatalf("expected empty non-nil genres, got %#v", g)
	}

	if err := g.Scan(42); err == nil {
		t.Fatalf("expected error scanning int")
	}
}

func TestLikePatternEscapesMetacharacters(t *testing.T) {
	tests := map[string]string{
		"":         "%%",
		"Fillmore": "%Fillmore%",
		"50%":      `%50\%%`,
		"a_b":      `%a\_b%`,
		`back\`:    `%back\\%`,
	}
	for term, want := range tests {
		if got := likePattern(term); got != want {
			t.Errorf("likePattern(%q) = %q, want %q", term, got, want)
		}
	}
}
