package asset

import (
	"crypto/rand"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/karripar/personal-project-s25/internal/domain"
)

const tokenLength = 20

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// NewFilename builds a storage name of the form {token}_{ownerID}{.ext}
// where token is a random 20-character alphanumeric string. The owner
// suffix is what later authorizes deletion without a database lookup.
func NewFilename(originalName string, ownerID int64) (string, error) {
	ext := filepath.Ext(originalName)
	if ext == "" || ext == "." {
		return "", fmt.Errorf("%w: file %q has no extension", domain.ErrInvalidInput, originalName)
	}

	buf := make([]byte, tokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate filename token: %w", err)
	}
	for i, b := range buf {
		buf[i] = tokenAlphabet[int(b)%len(tokenAlphabet)]
	}

	return fmt.Sprintf("%s_%d%s", buf, ownerID, ext), nil
}

// OwnerFromFilename recovers the owner id embedded in a storage name.
// Derived artifact names (with -thumb suffixes) are not valid inputs.
func OwnerFromFilename(filename string) (int64, error) {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	idx := strings.LastIndex(base, "_")
	if idx < 0 || idx == len(base)-1 {
		return 0, fmt.Errorf("%w: filename %q carries no owner suffix", domain.ErrInvalidInput, filename)
	}

	ownerID, err := strconv.ParseInt(base[idx+1:], 10, 64)
	if err != nil || ownerID < 1 {
		return 0, fmt.Errorf("%w: filename %q carries no owner suffix", domain.ErrInvalidInput, filename)
	}
	return ownerID, nil
}
