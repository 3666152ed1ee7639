package domain

import (
	"fmt"
	"strings"
	"time"
)

// MediaClass is decided once from the declared MIME type when a file is
// ingested. Everything downstream (artifact generation, URL synthesis)
// branches on the class, never on the raw MIME string.
type MediaClass string

const (
	ClassImage MediaClass = "image"
	ClassVideo MediaClass = "video"
	ClassOther MediaClass = "other"
)

// ScreenshotCount is the fixed number of preview frames extracted from a
// video during ingest.
const ScreenshotCount = 5

func MediaClassFromMIME(mimeType string) MediaClass {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return ClassImage
	case strings.HasPrefix(mimeType, "video/"):
		return ClassVideo
	default:
		return ClassOther
	}
}

// ThumbnailName returns the conventional thumbnail path for an asset.
// The suffix is appended to the full filename, extension included.
func ThumbnailName(filename string) string {
	return filename + "-thumb.png"
}

// ScreenshotNames returns the conventional, ordered screenshot paths for
// a video asset.
func ScreenshotNames(filename string) []string {
	names := make([]string, ScreenshotCount)
	for i := range names {
		names[i] = fmt.Sprintf("%s-thumb-%d.png", filename, i+1)
	}
	return names
}

type MediaItem struct {
	ID          int64     `json:"media_id" db:"media_id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Filename    string    `json:"filename" db:"filename"`
	Filesize    int64     `json:"filesize" db:"filesize"`
	MediaType   string    `json:"media_type" db:"media_type"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	// Derived at read time, never stored.
	Thumbnail   *string  `json:"thumbnail,omitempty" db:"-"`
	Screenshots []string `json:"screenshots,omitempty" db:"-"`
}

func (m *MediaItem) Class() MediaClass {
	return MediaClassFromMIME(m.MediaType)
}

// ApplyBaseURL rewrites the bare stored filename into delivery URLs and
// derives the artifact URLs for the item's class. It is pure and is
// recomputed on every read, so repointing the base URL needs no migration.
func (m *MediaItem) ApplyBaseURL(baseURL string) {
	name := m.Filename
	switch m.Class() {
	case ClassImage:
		thumb := baseURL + ThumbnailName(name)
		m.Thumbnail = &thumb
	case ClassVideo:
		shots := ScreenshotNames(name)
		for i := range shots {
			shots[i] = baseURL + shots[i]
		}
		m.Screenshots = shots
	}
	m.Filename = baseURL + name
}

type CreateMediaInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Filename    string  `json:"filename"`
	MediaType   string  `json:"media_type"`
	Filesize    int64   `json:"filesize"`
}

type UpdateMediaInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}
