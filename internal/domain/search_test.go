package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/karripar/personal-project-s25/internal/domain"
)

func TestParseSearchField(t *testing.T) {
	for _, s := range []string{"title", "description", "tags"} {
		field, err := domain.ParseSearchField(s)
		assert.NoError(t, err)
		assert.Equal(t, domain.SearchField(s), field)
	}

	for _, s := range []string{"", "filename", "user_id", "Title", "tags; DROP TABLE media_items"} {
		_, err := domain.ParseSearchField(s)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "input %q", s)
	}
}

func TestPaginationValidate(t *testing.T) {
	p := domain.PaginationParams{Page: 0, Limit: -5}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)

	p = domain.PaginationParams{Page: 3, Limit: 500}
	p.Validate()
	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, 200, p.Offset())
}
