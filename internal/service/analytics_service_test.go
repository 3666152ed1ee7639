package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/karripar/personal-project-s25/internal/domain"
	"github.com/karripar/personal-project-s25/internal/service"
)

type mockAnalyticsRepository struct {
	mock.Mock
}

func (m *mockAnalyticsRepository) MediaRatings(ctx context.Context) ([]domain.MediaRatingSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaRatingSummary), args.Error(1)
}

func (m *mockAnalyticsRepository) MediaComments(ctx context.Context) ([]domain.MediaCommentSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaCommentSummary), args.Error(1)
}

func (m *mockAnalyticsRepository) UserActivity(ctx context.Context, userID int64) (*domain.UserActivity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserActivity), args.Error(1)
}

func (m *mockAnalyticsRepository) UserNotificationSummary(ctx context.Context, userID int64) (*domain.UserNotificationSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserNotificationSummary), args.Error(1)
}

func (m *mockAnalyticsRepository) LatestNotifications(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *mockAnalyticsRepository) LatestMedia(ctx context.Context, limit int) ([]domain.LatestMedia, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LatestMedia), args.Error(1)
}

func TestAnalyticsServiceScopesToCaller(t *testing.T) {
	ctx := context.Background()
	user := domain.TokenUser{UserID: 7, LevelName: domain.LevelUser}

	t.Run("activity uses the token's user id", func(t *testing.T) {
		repo := new(mockAnalyticsRepository)
		svc := service.NewAnalyticsService(repo)

		repo.On("UserActivity", ctx, int64(7)).
			Return(&domain.UserActivity{UserID: 7, Username: "karri", MediaCount: 3}, nil).Once()

		activity, err := svc.UserActivity(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, int64(3), activity.MediaCount)
		repo.AssertExpectations(t)
	})

	t.Run("notification summary uses the token's user id", func(t *testing.T) {
		repo := new(mockAnalyticsRepository)
		svc := service.NewAnalyticsService(repo)

		repo.On("UserNotificationSummary", ctx, int64(7)).
			Return(&domain.UserNotificationSummary{UserID: 7, NotificationCount: 4, UnreadCount: 1}, nil).Once()

		summary, err := svc.UserNotificationSummary(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, int64(1), summary.UnreadCount)
		repo.AssertExpectations(t)
	})

	t.Run("latest feeds are bounded", func(t *testing.T) {
		repo := new(mockAnalyticsRepository)
		svc := service.NewAnalyticsService(repo)

		repo.On("LatestNotifications", ctx, int64(7), 10).Return([]domain.Notification{}, nil).Once()
		repo.On("LatestMedia", ctx, 10).Return([]domain.LatestMedia{}, nil).Once()

		_, err := svc.LatestNotifications(ctx, user)
		require.NoError(t, err)
		_, err = svc.LatestMedia(ctx)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
