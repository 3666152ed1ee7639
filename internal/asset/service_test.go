package asset

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karripar/personal-project-s25/internal/domain"
)

// fakeExtractor writes empty files in place of real video frames.
type fakeExtractor struct {
	failAt int // frame number to fail on, 0 for never
}

func (f *fakeExtractor) ExtractFrames(_ context.Context, _ string, count int, dst func(n int) string) ([]string, error) {
	var written []string
	for n := 1; n <= count; n++ {
		if n == f.failAt {
			for _, p := range written {
				os.Remove(p)
			}
			return nil, errors.New("frame grab failed")
		}
		path := dst(n)
		if err := os.WriteFile(path, []byte("frame"), 0o644); err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	return written, nil
}

func newTestService(t *testing.T, extractor FrameExtractor) (*Service, string) {
	t.Helper()
	root := t.TempDir()
	store, err := NewStore(root)
	require.NoError(t, err)
	svc, err := NewService(store, extractor)
	require.NoError(t, err)
	return svc, root
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func dirEntries(t *testing.T, root string) []string {
	t.Helper()
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

func TestIngestImage(t *testing.T) {
	svc, root := newTestService(t, &fakeExtractor{})

	data, err := svc.Ingest(context.Background(), 7, "photo.png", "image/png", bytes.NewReader(pngBytes(t)))
	require.NoError(t, err)

	assert.Equal(t, "image/png", data.MediaType)
	assert.Empty(t, data.Screenshots)
	assert.Greater(t, data.Filesize, int64(0))

	files := dirEntries(t, root)
	require.Len(t, files, 2)
	assert.Contains(t, files, data.Filename)
	assert.Contains(t, files, domain.ThumbnailName(data.Filename))

	// The thumbnail is a decodable 320x320 PNG.
	f, err := os.Open(filepath.Join(root, domain.ThumbnailName(data.Filename)))
	require.NoError(t, err)
	defer f.Close()
	thumb, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 320, 320), thumb.Bounds())
}

func TestIngestImageUndecodable(t *testing.T) {
	svc, root := newTestService(t, &fakeExtractor{})

	_, err := svc.Ingest(context.Background(), 7, "broken.png", "image/png", bytes.NewReader([]byte("not an image")))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidInput, "artifact failure must map to 500, not 400")

	assert.Empty(t, dirEntries(t, root), "failed ingest must leave nothing behind")
}

func TestIngestVideo(t *testing.T) {
	svc, root := newTestService(t, &fakeExtractor{})

	data, err := svc.Ingest(context.Background(), 3, "clip.mp4", "video/mp4", bytes.NewReader([]byte("mp4 bytes")))
	require.NoError(t, err)

	require.Len(t, data.Screenshots, domain.ScreenshotCount)
	assert.Equal(t, domain.ScreenshotNames(data.Filename), data.Screenshots)

	files := dirEntries(t, root)
	assert.Len(t, files, 1+domain.ScreenshotCount)
}

func TestIngestVideoExtractorFailure(t *testing.T) {
	svc, root := newTestService(t, &fakeExtractor{failAt: 3})

	_, err := svc.Ingest(context.Background(), 3, "clip.mp4", "video/mp4", bytes.NewReader([]byte("mp4 bytes")))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidInput, "artifact failure must map to 500, not 400")

	assert.Empty(t, dirEntries(t, root), "failed ingest must leave nothing behind")
}

// stuckExtractor simulates ffmpeg hitting its deadline.
type stuckExtractor struct{}

func (stuckExtractor) ExtractFrames(context.Context, string, int, func(int) string) ([]string, error) {
	return nil, context.DeadlineExceeded
}

func TestIngestVideoExtractorTimeout(t *testing.T) {
	svc, root := newTestService(t, stuckExtractor{})

	_, err := svc.Ingest(context.Background(), 3, "clip.mp4", "video/mp4", bytes.NewReader([]byte("mp4 bytes")))
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, domain.ErrInvalidInput, "a timeout is the store's failure, not the caller's")

	assert.Empty(t, dirEntries(t, root))
}

func TestIngestOther(t *testing.T) {
	svc, root := newTestService(t, &fakeExtractor{failAt: 1})

	data, err := svc.Ingest(context.Background(), 5, "notes.pdf", "application/pdf", bytes.NewReader([]byte("%PDF-")))
	require.NoError(t, err)

	assert.Empty(t, data.Screenshots)
	files := dirEntries(t, root)
	require.Len(t, files, 1)
	assert.Equal(t, data.Filename, files[0])
}

func TestIngestRejectsMissingExtension(t *testing.T) {
	svc, root := newTestService(t, &fakeExtractor{})

	_, err := svc.Ingest(context.Background(), 5, "noextension", "image/png", bytes.NewReader(pngBytes(t)))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, dirEntries(t, root))
}

func TestDelete(t *testing.T) {
	svc, root := newTestService(t, &fakeExtractor{})
	owner := domain.TokenUser{UserID: 7, LevelName: domain.LevelUser}

	data, err := svc.Ingest(context.Background(), 7, "photo.png", "image/png", bytes.NewReader(pngBytes(t)))
	require.NoError(t, err)

	t.Run("non-owner is refused", func(t *testing.T) {
		stranger := domain.TokenUser{UserID: 8, LevelName: domain.LevelUser}
		err := svc.Delete(stranger, data.Filename)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Len(t, dirEntries(t, root), 2, "refused delete must not touch disk")
	})

	t.Run("owner removes file and artifacts", func(t *testing.T) {
		require.NoError(t, svc.Delete(owner, data.Filename))
		assert.Empty(t, dirEntries(t, root))
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		err := svc.Delete(owner, data.Filename)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDeleteAdminBypassesOwnership(t *testing.T) {
	svc, root := newTestService(t, &fakeExtractor{})
	admin := domain.TokenUser{UserID: 1, LevelName: domain.LevelAdmin}

	data, err := svc.Ingest(context.Background(), 7, "photo.png", "image/png", bytes.NewReader(pngBytes(t)))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(admin, data.Filename))
	assert.Empty(t, dirEntries(t, root))
}

func TestIngestProfileRejectsNonImage(t *testing.T) {
	svc, _ := newTestService(t, &fakeExtractor{})

	_, err := svc.IngestProfile(context.Background(), 7, "clip.mp4", "video/mp4", bytes.NewReader([]byte("mp4")))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProfileRoundTrip(t *testing.T) {
	svc, root := newTestService(t, &fakeExtractor{})
	owner := domain.TokenUser{UserID: 4, LevelName: domain.LevelUser}

	data, err := svc.IngestProfile(context.Background(), 4, "avatar.png", "image/png", bytes.NewReader(pngBytes(t)))
	require.NoError(t, err)

	profileDir := filepath.Join(root, "profile")
	assert.Len(t, dirEntries(t, profileDir), 2)
	assert.Empty(t, dirEntries(t, root), "profile files must not land in the main store")

	require.NoError(t, svc.DeleteProfile(owner, data.Filename))
	assert.Empty(t, dirEntries(t, profileDir))
}
