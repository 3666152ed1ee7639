package domain

import "fmt"

// SearchField is the closed set of logical fields a caller may search by.
// Anything outside the set is rejected before any query text is built;
// the enum-to-expression lookup in the repository is the only place a
// field name ever reaches SQL.
type SearchField string

const (
	SearchByTitle       SearchField = "title"
	SearchByDescription SearchField = "description"
	SearchByTags        SearchField = "tags"
)

func ParseSearchField(s string) (SearchField, error) {
	switch SearchField(s) {
	case SearchByTitle, SearchByDescription, SearchByTags:
		return SearchField(s), nil
	default:
		return "", fmt.Errorf("searchBy must be one of title, description, tags: %w", ErrInvalidInput)
	}
}
