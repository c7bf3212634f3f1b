package models

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Genres is an ordered list of genre tags stored as a Postgres TEXT[] column.
type Genres []string

// Value implements driver.Valuer. An empty list is written as '{}' rather than NULL.
func (g Genres) Value() (driver.Value, error) {
	if len(g) == 0 {
		return "{}", nil
	}
	return pq.StringArray(g).Value()
}

// Scan implements sql.Scanner.
func (g *Genres) Scan(src any) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return fmt.Errorf("scan genres: %w", err)
	}
	if len(arr) == 0 {
		*g = Genres{}
		return nil
	}
	*g = Genres(arr)
	return nil
}

// Trimmed returns a copy with surrounding whitespace removed from every tag.
func (g Genres) Trimmed() Genres {
	out := make(Genres, len(g))
	for i, tag := range g {
		out[i] = strings.TrimSpace(tag)
	}
	return out
}

// HasBlank reports whether any tag is empty after trimming.
func (g Genres) HasBlank() bool {
	for _, tag := range g {
		if strings.TrimSpace(tag) == "" {
			return true
		}
	}
	return false
}
