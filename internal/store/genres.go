package store

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Genres is a tag list persisted as one brace-wrapped, comma-joined string:
// []string{"Jazz", "Rock n Roll"} <-> "{Jazz,Rock n Roll}". Tags must not
// contain commas.
type Genres []string

// Value implements driver.Valuer.
func (g Genres) Value() (driver.Value, error) {
	return EncodeGenres(g), nil
}

// Scan implements sql.Scanner.
func (g *Genres) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*g = Genres{}
	case string:
		*g = DecodeGenres(v)
	case []byte:
		*g = DecodeGenres(string(v))
	default:
		return fmt.Errorf("scan genres: unsupported type %T", src)
	}
	return nil
}

// EncodeGenres joins tags into the stored form, dropping blank entries.
func EncodeGenres(tags []string) string {
	kept := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			kept = append(kept, tag)
		}
	}
	return "{" + strings.Join(kept, ",") + "}"
}

// DecodeGenres splits a stored genres string back into tags. Rows written by
// a Postgres array cast quote tags containing spaces; the quotes are removed.
func DecodeGenres(raw string) Genres {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "{")
	raw = strings.TrimSuffix(raw, "}")
	if strings.TrimSpace(raw) == "" {
		return Genres{}
	}

	parts := strings.Split(raw, ",")
	tags := make(Genres, 0, len(parts))
	for _, part := range parts {
		part = strings.Trim(strings.TrimSpace(part), `"`)
		if part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}
