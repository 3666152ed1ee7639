package service

import (
	"context"
	"fmt"

	"github.com/karripar/personal-project-s25/internal/domain"
	"github.com/karripar/personal-project-s25/internal/repository"
)

type RatingService interface {
	Rate(ctx context.Context, user domain.TokenUser, mediaID int64, value int) (*domain.Rating, error)
	Remove(ctx context.Context, user domain.TokenUser, mediaID int64) error
	AverageByMedia(ctx context.Context, mediaID int64) (*float64, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Rating, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	mediaRepo  repository.MediaRepository
	notifs     NotificationService
}

func NewRatingService(ratingRepo repository.RatingRepository, mediaRepo repository.MediaRepository, notifs NotificationService) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		mediaRepo:  mediaRepo,
		notifs:     notifs,
	}
}

func (s *ratingService) Rate(ctx context.Context, user domain.TokenUser, mediaID int64, value int) (*domain.Rating, error) {
	if value < 1 || value > 5 {
		return nil, fmt.Errorf("rating_value must be between 1 and 5: %w", domain.ErrInvalidInput)
	}

	media, err := s.mediaRepo.GetByID(ctx, mediaID)
	if err != nil {
		return nil, err
	}

	rating := &domain.Rating{MediaID: mediaID, UserID: user.UserID, Value: value}
	if err := s.ratingRepo.Upsert(ctx, rating); err != nil {
		return nil, err
	}

	s.notifs.Notify(ctx, media.UserID, user.UserID,
		domain.NotificationRating, EngagementText(domain.NotificationRating, media.Title))

	return rating, nil
}

func (s *ratingService) Remove(ctx context.Context, user domain.TokenUser, mediaID int64) error {
	return s.ratingRepo.Delete(ctx, mediaID, user.UserID)
}

func (s *ratingService) AverageByMedia(ctx context.Context, mediaID int64) (*float64, error) {
	return s.ratingRepo.AverageByMedia(ctx, mediaID)
}

func (s *ratingService) ListByUser(ctx context.Context, userID int64) ([]domain.Rating, error) {
	return s.ratingRepo.ListByUser(ctx, userID)
}
