package service

import (
	"context"

	"github.com/karripar/personal-project-s25/internal/domain"
	"github.com/karripar/personal-project-s25/internal/repository"
)

type LikeService interface {
	Like(ctx context.Context, user domain.TokenUser, mediaID int64) (*domain.Like, error)
	Unlike(ctx context.Context, user domain.TokenUser, mediaID int64) error
	CountByMedia(ctx context.Context, mediaID int64) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Like, error)
	HasLiked(ctx context.Context, user domain.TokenUser, mediaID int64) (bool, error)
}

type likeService struct {
	likeRepo  repository.LikeRepository
	mediaRepo repository.MediaRepository
	notifs    NotificationService
}

func NewLikeService(likeRepo repository.LikeRepository, mediaRepo repository.MediaRepository, notifs NotificationService) LikeService {
	return &likeService{
		likeRepo:  likeRepo,
		mediaRepo: mediaRepo,
		notifs:    notifs,
	}
}

func (s *likeService) Like(ctx context.Context, user domain.TokenUser, mediaID int64) (*domain.Like, error) {
	media, err := s.mediaRepo.GetByID(ctx, mediaID)
	if err != nil {
		return nil, err
	}

	like := &domain.Like{MediaID: mediaID, UserID: user.UserID}
	if err := s.likeRepo.Create(ctx, like); err != nil {
		return nil, err
	}

	s.notifs.Notify(ctx, media.UserID, user.UserID,
		domain.NotificationLike, EngagementText(domain.NotificationLike, media.Title))

	return like, nil
}

func (s *likeService) Unlike(ctx context.Context, user domain.TokenUser, mediaID int64) error {
	return s.likeRepo.Delete(ctx, mediaID, user.UserID)
}

func (s *likeService) CountByMedia(ctx context.Context, mediaID int64) (int64, error) {
	return s.likeRepo.CountByMedia(ctx, mediaID)
}

func (s *likeService) ListByUser(ctx context.Context, userID int64) ([]domain.Like, error) {
	return s.likeRepo.ListByUser(ctx, userID)
}

func (s *likeService) HasLiked(ctx context.Context, user domain.TokenUser, mediaID int64) (bool, error) {
	return s.likeRepo.Exists(ctx, mediaID, user.UserID)
}
