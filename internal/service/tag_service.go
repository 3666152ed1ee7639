package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/karripar/personal-project-s25/internal/config"
	"github.com/karripar/personal-project-s25/internal/domain"
	"github.com/karripar/personal-project-s25/internal/repository"
)

type TagService interface {
	List(ctx context.Context) ([]domain.Tag, error)
	ListByMedia(ctx context.Context, mediaID int64) ([]domain.Tag, error)
	MediaByTag(ctx context.Context, tagID int64) ([]domain.MediaItem, error)
	Attach(ctx context.Context, user domain.TokenUser, mediaID int64, names []string) ([]domain.Tag, error)
	Detach(ctx context.Context, user domain.TokenUser, mediaID, tagID int64) error
	Delete(ctx context.Context, user domain.TokenUser, tagID int64) error
}

type tagService struct {
	tagRepo   repository.TagRepository
	mediaRepo repository.MediaRepository
	cfg       *config.Config
}

func NewTagService(tagRepo repository.TagRepository, mediaRepo repository.MediaRepository, cfg *config.Config) TagService {
	return &tagService{
		tagRepo:   tagRepo,
		mediaRepo: mediaRepo,
		cfg:       cfg,
	}
}

func (s *tagService) List(ctx context.Context) ([]domain.Tag, error) {
	return s.tagRepo.List(ctx)
}

func (s *tagService) ListByMedia(ctx context.Context, mediaID int64) ([]domain.Tag, error) {
	return s.tagRepo.ListByMedia(ctx, mediaID)
}

func (s *tagService) MediaByTag(ctx context.Context, tagID int64) ([]domain.MediaItem, error) {
	items, err := s.tagRepo.MediaByTag(ctx, tagID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].ApplyBaseURL(s.cfg.UploadURL)
	}
	return items, nil
}

// Attach resolves each name to a tag row (created on first use, matched
// case-insensitively after that) and links it to the media item. Linking
// an already-linked tag is a no-op.
func (s *tagService) Attach(ctx context.Context, user domain.TokenUser, mediaID int64, names []string) ([]domain.Tag, error) {
	media, err := s.mediaRepo.GetByID(ctx, mediaID)
	if err != nil {
		return nil, err
	}
	if !user.CanModify(media.UserID) {
		return nil, fmt.Errorf("not the owner of media %d: %w", mediaID, domain.ErrForbidden)
	}

	tags := make([]domain.Tag, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("empty tag name: %w", domain.ErrInvalidInput)
		}

		tag, err := s.tagRepo.GetOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		if err := s.tagRepo.Attach(ctx, tag.ID, mediaID); err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}

func (s *tagService) Detach(ctx context.Context, user domain.TokenUser, mediaID, tagID int64) error {
	media, err := s.mediaRepo.GetByID(ctx, mediaID)
	if err != nil {
		return err
	}
	if !user.CanModify(media.UserID) {
		return fmt.Errorf("not the owner of media %d: %w", mediaID, domain.ErrForbidden)
	}

	return s.tagRepo.Detach(ctx, tagID, mediaID)
}

// Delete removes a tag everywhere. Tags have no owner, so only admins
// may do this.
func (s *tagService) Delete(ctx context.Context, user domain.TokenUser, tagID int64) error {
	if !user.IsAdmin() {
		return fmt.Errorf("tag deletion is admin only: %w", domain.ErrForbidden)
	}
	return s.tagRepo.Delete(ctx, tagID)
}
