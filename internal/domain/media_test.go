package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/karripar/personal-project-s25/internal/domain"
)

func TestMediaClassFromMIME(t *testing.T) {
	tests := []struct {
		mime string
		want domain.MediaClass
	}{
		{"image/jpeg", domain.ClassImage},
		{"image/png", domain.ClassImage},
		{"video/mp4", domain.ClassVideo},
		{"video/webm", domain.ClassVideo},
		{"application/pdf", domain.ClassOther},
		{"audio/mpeg", domain.ClassOther},
		{"", domain.ClassOther},
		{"imagex/jpeg", domain.ClassOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.MediaClassFromMIME(tt.mime), "mime %q", tt.mime)
	}
}

func TestArtifactNames(t *testing.T) {
	assert.Equal(t, "abc_7.jpg-thumb.png", domain.ThumbnailName("abc_7.jpg"))

	shots := domain.ScreenshotNames("vid_3.mp4")
	assert.Len(t, shots, domain.ScreenshotCount)
	assert.Equal(t, "vid_3.mp4-thumb-1.png", shots[0])
	assert.Equal(t, "vid_3.mp4-thumb-5.png", shots[4])
}

func TestApplyBaseURL(t *testing.T) {
	const base = "http://localhost:3002/uploads/"

	t.Run("image gets a thumbnail URL", func(t *testing.T) {
		m := domain.MediaItem{Filename: "abc_7.jpg", MediaType: "image/jpeg"}
		m.ApplyBaseURL(base)

		assert.Equal(t, base+"abc_7.jpg", m.Filename)
		if assert.NotNil(t, m.Thumbnail) {
			assert.Equal(t, base+"abc_7.jpg-thumb.png", *m.Thumbnail)
		}
		assert.Empty(t, m.Screenshots)
	})

	t.Run("video gets screenshot URLs", func(t *testing.T) {
		m := domain.MediaItem{Filename: "vid_3.mp4", MediaType: "video/mp4"}
		m.ApplyBaseURL(base)

		assert.Nil(t, m.Thumbnail)
		assert.Len(t, m.Screenshots, domain.ScreenshotCount)
		assert.Equal(t, base+"vid_3.mp4-thumb-1.png", m.Screenshots[0])
	})

	t.Run("other class gets no artifacts", func(t *testing.T) {
		m := domain.MediaItem{Filename: "doc_1.pdf", MediaType: "application/pdf"}
		m.ApplyBaseURL(base)

		assert.Equal(t, base+"doc_1.pdf", m.Filename)
		assert.Nil(t, m.Thumbnail)
		assert.Empty(t, m.Screenshots)
	})
}
