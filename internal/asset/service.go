package asset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/karripar/personal-project-s25/internal/domain"
)

// Service owns the ingest and delete lifecycle of stored assets. A
// successful Ingest guarantees the original and every artifact its class
// declares exist on disk; any failure along the pipeline rolls back
// whatever was already written.
type Service struct {
	store     *Store
	profiles  *Store
	extractor FrameExtractor
}

func NewService(store *Store, extractor FrameExtractor) (*Service, error) {
	profiles, err := store.Sub("profile")
	if err != nil {
		return nil, err
	}
	return &Service{
		store:     store,
		profiles:  profiles,
		extractor: extractor,
	}, nil
}

func (s *Service) Ingest(ctx context.Context, userID int64, originalName, mimeType string, r io.Reader) (*domain.UploadData, error) {
	filename, err := NewFilename(originalName, userID)
	if err != nil {
		return nil, err
	}

	size, err := s.store.Save(filename, r)
	if err != nil {
		return nil, err
	}

	// Every name written so far, removed together if a later step fails.
	written := []string{filename}
	fail := func(err error) (*domain.UploadData, error) {
		for _, name := range written {
			if rmErr := s.store.Remove(name); rmErr != nil {
				log.Printf("rollback of %s failed: %v", name, rmErr)
			}
		}
		return nil, err
	}

	data := &domain.UploadData{
		Filename:  filename,
		MediaType: mimeType,
		Filesize:  size,
	}

	switch domain.MediaClassFromMIME(mimeType) {
	case domain.ClassImage:
		srcPath, err := s.store.Path(filename)
		if err != nil {
			return fail(err)
		}
		thumbName := domain.ThumbnailName(filename)
		thumbPath, err := s.store.Path(thumbName)
		if err != nil {
			return fail(err)
		}
		// Artifact generation failures are the store's fault, not the
		// caller's; they surface as 500, never 400.
		if err := CreateThumbnail(srcPath, thumbPath); err != nil {
			return fail(err)
		}
		written = append(written, thumbName)

	case domain.ClassVideo:
		srcPath, err := s.store.Path(filename)
		if err != nil {
			return fail(err)
		}
		names := domain.ScreenshotNames(filename)
		_, err = s.extractor.ExtractFrames(ctx, srcPath, domain.ScreenshotCount, func(n int) string {
			path, _ := s.store.Path(names[n-1])
			return path
		})
		if err != nil {
			return fail(err)
		}
		written = append(written, names...)
		data.Screenshots = names
	}

	return data, nil
}

// Delete removes a stored asset and its derived artifacts. The caller
// must own the asset (per the filename's owner suffix) or be an admin.
// Artifact removal is best effort: a missing thumbnail never blocks
// removal of the original.
func (s *Service) Delete(user domain.TokenUser, filename string) error {
	return s.deleteFrom(s.store, user, filename, true)
}

// IngestProfile stores a profile picture and its thumbnail under the
// profile subdirectory. Only images are accepted.
func (s *Service) IngestProfile(ctx context.Context, userID int64, originalName, mimeType string, r io.Reader) (*domain.UploadData, error) {
	if domain.MediaClassFromMIME(mimeType) != domain.ClassImage {
		return nil, fmt.Errorf("%w: profile picture must be an image, got %q", domain.ErrInvalidInput, mimeType)
	}

	filename, err := NewFilename(originalName, userID)
	if err != nil {
		return nil, err
	}

	size, err := s.profiles.Save(filename, r)
	if err != nil {
		return nil, err
	}

	srcPath, err := s.profiles.Path(filename)
	if err != nil {
		s.profiles.Remove(filename)
		return nil, err
	}
	thumbPath, err := s.profiles.Path(domain.ThumbnailName(filename))
	if err != nil {
		s.profiles.Remove(filename)
		return nil, err
	}
	if err := CreateThumbnail(srcPath, thumbPath); err != nil {
		s.profiles.Remove(filename)
		return nil, err
	}

	return &domain.UploadData{
		Filename:  filename,
		MediaType: mimeType,
		Filesize:  size,
	}, nil
}

func (s *Service) DeleteProfile(user domain.TokenUser, filename string) error {
	return s.deleteFrom(s.profiles, user, filename, false)
}

func (s *Service) deleteFrom(store *Store, user domain.TokenUser, filename string, withScreenshots bool) error {
	ownerID, err := OwnerFromFilename(filename)
	if err != nil {
		return err
	}
	if !user.CanModify(ownerID) {
		return fmt.Errorf("%w: not the owner of %s", domain.ErrForbidden, filename)
	}

	if err := store.Remove(filename); err != nil {
		return err
	}

	artifacts := []string{domain.ThumbnailName(filename)}
	if withScreenshots {
		artifacts = append(artifacts, domain.ScreenshotNames(filename)...)
	}
	for _, name := range artifacts {
		if err := store.Remove(name); err != nil && !errors.Is(err, domain.ErrNotFound) {
			log.Printf("remove artifact %s failed: %v", name, err)
		}
	}
	return nil
}
