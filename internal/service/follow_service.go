package service

import (
	"context"
	"fmt"

	"github.com/karripar/personal-project-s25/internal/domain"
	"github.com/karripar/personal-project-s25/internal/repository"
)

type FollowService interface {
	Follow(ctx context.Context, user domain.TokenUser, followedID int64) (*domain.Follow, error)
	Unfollow(ctx context.Context, user domain.TokenUser, followedID int64) error
	Followers(ctx context.Context, userID int64) ([]domain.Follow, error)
	Following(ctx context.Context, userID int64) ([]domain.Follow, error)
}

type followService struct {
	followRepo repository.FollowRepository
	notifs     NotificationService
}

func NewFollowService(followRepo repository.FollowRepository, notifs NotificationService) FollowService {
	return &followService{
		followRepo: followRepo,
		notifs:     notifs,
	}
}

func (s *followService) Follow(ctx context.Context, user domain.TokenUser, followedID int64) (*domain.Follow, error) {
	if followedID == user.UserID {
		return nil, fmt.Errorf("cannot follow yourself: %w", domain.ErrInvalidInput)
	}

	follow := &domain.Follow{FollowerID: user.UserID, FollowedID: followedID}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		return nil, err
	}

	s.notifs.Notify(ctx, followedID, user.UserID,
		domain.NotificationFollow, EngagementText(domain.NotificationFollow, ""))

	return follow, nil
}

func (s *followService) Unfollow(ctx context.Context, user domain.TokenUser, followedID int64) error {
	return s.followRepo.Delete(ctx, user.UserID, followedID)
}

func (s *followService) Followers(ctx context.Context, userID int64) ([]domain.Follow, error) {
	return s.followRepo.Followers(ctx, userID)
}

func (s *followService) Following(ctx context.Context, userID int64) ([]domain.Follow, error) {
	return s.followRepo.Following(ctx, userID)
}
