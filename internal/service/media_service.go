package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/karripar/personal-project-s25/internal/config"
	"github.com/karripar/personal-project-s25/internal/domain"
	"github.com/karripar/personal-project-s25/internal/repository"
)

type MediaService interface {
	List(ctx context.Context, params domain.PaginationParams) ([]domain.MediaItem, error)
	GetByID(ctx context.Context, id int64) (*domain.MediaItem, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.MediaItem, error)
	ListFollowed(ctx context.Context, followerID int64, params domain.PaginationParams) ([]domain.MediaItem, error)
	MostLiked(ctx context.Context) (*domain.MediaItem, error)
	Search(ctx context.Context, searchBy, term string, params domain.PaginationParams) ([]domain.MediaItem, error)
	Create(ctx context.Context, user domain.TokenUser, input domain.CreateMediaInput) (*domain.MediaItem, error)
	Update(ctx context.Context, user domain.TokenUser, id int64, input domain.UpdateMediaInput) (*domain.MediaItem, error)
	Delete(ctx context.Context, user domain.TokenUser, id int64, bearerToken string) error
}

type mediaService struct {
	mediaRepo repository.MediaRepository
	assets    AssetDeleter
	redis     *redis.Client
	cfg       *config.Config
}

func NewMediaService(mediaRepo repository.MediaRepository, assets AssetDeleter, redis *redis.Client, cfg *config.Config) MediaService {
	return &mediaService{
		mediaRepo: mediaRepo,
		assets:    assets,
		redis:     redis,
		cfg:       cfg,
	}
}

const (
	mediaItemCacheKey = "media:item:%d"
	mostLikedCacheKey = "media:most_liked"
	mediaCacheTTL     = 5 * time.Minute
)

func (s *mediaService) List(ctx context.Context, params domain.PaginationParams) ([]domain.MediaItem, error) {
	items, err := s.mediaRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	s.decorateAll(items)
	return items, nil
}

func (s *mediaService) GetByID(ctx context.Context, id int64) (*domain.MediaItem, error) {
	cacheKey := fmt.Sprintf(mediaItemCacheKey, id)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var media domain.MediaItem
			if json.Unmarshal([]byte(cached), &media) == nil {
				s.decorate(&media)
				return &media, nil
			}
		}
	}

	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		// Cache the bare row; delivery URLs are derived per read so a
		// base-URL change repoints cached entries too.
		if raw, err := json.Marshal(media); err == nil {
			_ = s.redis.Set(ctx, cacheKey, raw, mediaCacheTTL).Err()
		}
	}

	s.decorate(media)
	return media, nil
}

func (s *mediaService) ListByUser(ctx context.Context, userID int64) ([]domain.MediaItem, error) {
	items, err := s.mediaRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.decorateAll(items)
	return items, nil
}

func (s *mediaService) ListFollowed(ctx context.Context, followerID int64, params domain.PaginationParams) ([]domain.MediaItem, error) {
	items, err := s.mediaRepo.ListFollowed(ctx, followerID, params)
	if err != nil {
		return nil, err
	}
	s.decorateAll(items)
	return items, nil
}

func (s *mediaService) MostLiked(ctx context.Context) (*domain.MediaItem, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, mostLikedCacheKey).Result(); err == nil {
			var media domain.MediaItem
			if json.Unmarshal([]byte(cached), &media) == nil {
				s.decorate(&media)
				return &media, nil
			}
		}
	}

	media, err := s.mediaRepo.MostLiked(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if raw, err := json.Marshal(media); err == nil {
			_ = s.redis.Set(ctx, mostLikedCacheKey, raw, mediaCacheTTL).Err()
		}
	}

	s.decorate(media)
	return media, nil
}

func (s *mediaService) Search(ctx context.Context, searchBy, term string, params domain.PaginationParams) ([]domain.MediaItem, error) {
	field, err := domain.ParseSearchField(searchBy)
	if err != nil {
		return nil, err
	}

	items, err := s.mediaRepo.Search(ctx, field, term, params)
	if err != nil {
		return nil, err
	}
	s.decorateAll(items)
	return items, nil
}

func (s *mediaService) Create(ctx context.Context, user domain.TokenUser, input domain.CreateMediaInput) (*domain.MediaItem, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required: %w", domain.ErrInvalidInput)
	}
	if input.Filename == "" {
		return nil, fmt.Errorf("filename is required: %w", domain.ErrInvalidInput)
	}

	media := &domain.MediaItem{
		UserID:      user.UserID,
		Filename:    input.Filename,
		Filesize:    input.Filesize,
		MediaType:   input.MediaType,
		Title:       input.Title,
		Description: input.Description,
	}
	if err := s.mediaRepo.Create(ctx, media); err != nil {
		return nil, err
	}

	result := *media
	s.decorate(&result)
	return &result, nil
}

func (s *mediaService) Update(ctx context.Context, user domain.TokenUser, id int64, input domain.UpdateMediaInput) (*domain.MediaItem, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required: %w", domain.ErrInvalidInput)
	}

	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.CanModify(media.UserID) {
		return nil, fmt.Errorf("not the owner of media %d: %w", id, domain.ErrForbidden)
	}

	if err := s.mediaRepo.Update(ctx, id, input, user); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)

	updated, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.decorate(updated)
	return updated, nil
}

// Delete drives the two-phase deletion: ownership check, one local
// transaction covering dependents plus the primary row, and only after
// commit a single best-effort delete against the asset store. The remote
// outcome never changes the caller's response; the relational record is
// gone, the blob may lag. That gap is deliberate.
func (s *mediaService) Delete(ctx context.Context, user domain.TokenUser, id int64, bearerToken string) error {
	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !user.CanModify(media.UserID) {
		return fmt.Errorf("not the owner of media %d: %w", id, domain.ErrForbidden)
	}

	if err := s.mediaRepo.DeleteCascade(ctx, id, user); err != nil {
		return err
	}
	s.invalidate(ctx, id)

	if err := s.assets.DeleteAsset(ctx, media.Filename, bearerToken); err != nil {
		log.Printf("asset delete for %q failed (record already removed): %v", media.Filename, err)
	}

	return nil
}

func (s *mediaService) decorate(media *domain.MediaItem) {
	media.ApplyBaseURL(s.cfg.UploadURL)
}

func (s *mediaService) decorateAll(items []domain.MediaItem) {
	for i := range items {
		s.decorate(&items[i])
	}
}

func (s *mediaService) invalidate(ctx context.Context, id int64) {
	if s.redis == nil {
		return
	}
	_ = s.redis.Del(ctx, fmt.Sprintf(mediaItemCacheKey, id), mostLikedCacheKey).Err()
}
