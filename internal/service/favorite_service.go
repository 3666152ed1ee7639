package service

import (
	"context"

	"github.com/karripar/personal-project-s25/internal/domain"
	"github.com/karripar/personal-project-s25/internal/repository"
)

type FavoriteService interface {
	Add(ctx context.Context, user domain.TokenUser, mediaID int64) (*domain.Favorite, error)
	Remove(ctx context.Context, user domain.TokenUser, mediaID int64) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error)
	CountByMedia(ctx context.Context, mediaID int64) (int64, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	mediaRepo    repository.MediaRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, mediaRepo repository.MediaRepository) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		mediaRepo:    mediaRepo,
	}
}

func (s *favoriteService) Add(ctx context.Context, user domain.TokenUser, mediaID int64) (*domain.Favorite, error) {
	if _, err := s.mediaRepo.GetByID(ctx, mediaID); err != nil {
		return nil, err
	}

	favorite := &domain.Favorite{MediaID: mediaID, UserID: user.UserID}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

func (s *favoriteService) Remove(ctx context.Context, user domain.TokenUser, mediaID int64) error {
	return s.favoriteRepo.Delete(ctx, mediaID, user.UserID)
}

func (s *favoriteService) ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	return s.favoriteRepo.ListByUser(ctx, userID)
}

func (s *favoriteService) CountByMedia(ctx context.Context, mediaID int64) (int64, error) {
	return s.favoriteRepo.CountByMedia(ctx, mediaID)
}
