package store

import (
	"database/sql"
	"fmt"
)

// SearchMatch is one row of a name search.
type SearchMatch struct {
	ID            int64
	Name          string
	UpcomingShows int
}

// SearchResult holds the matches of a name search and their count.
type SearchResult struct {
	Count int
	Data  []SearchMatch
}

func scanSearchResult(rows *sql.Rows) (SearchResult, error) {
	var result SearchResult
	for rows.Next() {
		var m SearchMatch
		if err := rows.Scan(&m.ID, &m.Name, &m.UpcomingShows); err != nil {
			return SearchResult{}, fmt.Errorf("scan search match: %w", err)
		}
		result.Data = append(result.Data, m)
	}
	if err := rows.Err(); err != nil {
		return SearchResult{}, fmt.Errorf("iterate search matches: %w", err)
	}

	result.Count = len(result.Data)
	return result, nil
}
