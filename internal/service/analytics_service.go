package service

import (
	"context"

	"github.com/karripar/personal-project-s25/internal/domain"
	"github.com/karripar/personal-project-s25/internal/repository"
)

type AnalyticsService interface {
	MediaRatings(ctx context.Context) ([]domain.MediaRatingSummary, error)
	MediaComments(ctx context.Context) ([]domain.MediaCommentSummary, error)
	// Activity and notification summaries are always scoped to the
	// calling user; there is no cross-user variant.
	UserActivity(ctx context.Context, user domain.TokenUser) (*domain.UserActivity, error)
	UserNotificationSummary(ctx context.Context, user domain.TokenUser) (*domain.UserNotificationSummary, error)
	LatestNotifications(ctx context.Context, user domain.TokenUser) ([]domain.Notification, error)
	LatestMedia(ctx context.Context) ([]domain.LatestMedia, error)
}

const latestFeedLimit = 10

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepo: analyticsRepo}
}

func (s *analyticsService) MediaRatings(ctx context.Context) ([]domain.MediaRatingSummary, error) {
	return s.analyticsRepo.MediaRatings(ctx)
}

func (s *analyticsService) MediaComments(ctx context.Context) ([]domain.MediaCommentSummary, error) {
	return s.analyticsRepo.MediaComments(ctx)
}

func (s *analyticsService) UserActivity(ctx context.Context, user domain.TokenUser) (*domain.UserActivity, error) {
	return s.analyticsRepo.UserActivity(ctx, user.UserID)
}

func (s *analyticsService) UserNotificationSummary(ctx context.Context, user domain.TokenUser) (*domain.UserNotificationSummary, error) {
	return s.analyticsRepo.UserNotificationSummary(ctx, user.UserID)
}

func (s *analyticsService) LatestNotifications(ctx context.Context, user domain.TokenUser) ([]domain.Notification, error) {
	return s.analyticsRepo.LatestNotifications(ctx, user.UserID, latestFeedLimit)
}

func (s *analyticsService) LatestMedia(ctx context.Context) ([]domain.LatestMedia, error) {
	return s.analyticsRepo.LatestMedia(ctx, latestFeedLimit)
}
