package asset

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karripar/personal-project-s25/internal/domain"
)

func TestNewFilename(t *testing.T) {
	re := regexp.MustCompile(`^[A-Za-z0-9]{20}_42\.jpg$`)

	name, err := NewFilename("holiday photo.jpg", 42)
	require.NoError(t, err)
	assert.Regexp(t, re, name)

	other, err := NewFilename("holiday photo.jpg", 42)
	require.NoError(t, err)
	assert.NotEqual(t, name, other, "tokens must be random")
}

func TestNewFilenameRequiresExtension(t *testing.T) {
	for _, bad := range []string{"noextension", "trailingdot."} {
		_, err := NewFilename(bad, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "input %q", bad)
	}
}

func TestOwnerFromFilename(t *testing.T) {
	owner, err := OwnerFromFilename("A1b2C3d4E5f6G7h8I9j0_42.jpg")
	require.NoError(t, err)
	assert.Equal(t, int64(42), owner)

	for _, bad := range []string{"plain.jpg", "token_.jpg", "token_abc.jpg", "token_0.jpg", ""} {
		_, err := OwnerFromFilename(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "input %q", bad)
	}
}
