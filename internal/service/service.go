package service

import (
	"github.com/redis/go-redis/v9"

	"github.com/karripar/personal-project-s25/internal/config"
	"github.com/karripar/personal-project-s25/internal/repository"
)

type Services struct {
	Auth         AuthService
	Media        MediaService
	Tag          TagService
	Like         LikeService
	Comment      CommentService
	Rating       RatingService
	Favorite     FavoriteService
	Follow       FollowService
	Notification NotificationService
	Analytics    AnalyticsService
	Email        EmailService
}

func NewServices(repos *repository.Repositories, redis *redis.Client, cfg *config.Config) *Services {
	emailService := NewEmailService(cfg)
	notificationService := NewNotificationService(repos.Notification, repos.User, emailService)
	assetClient := NewAssetClient(cfg.UploadServerURL)

	return &Services{
		Auth:         NewAuthService(cfg),
		Media:        NewMediaService(repos.Media, assetClient, redis, cfg),
		Tag:          NewTagService(repos.Tag, repos.Media, cfg),
		Like:         NewLikeService(repos.Like, repos.Media, notificationService),
		Comment:      NewCommentService(repos.Comment, repos.Media, notificationService),
		Rating:       NewRatingService(repos.Rating, repos.Media, notificationService),
		Favorite:     NewFavoriteService(repos.Favorite, repos.Media),
		Follow:       NewFollowService(repos.Follow, notificationService),
		Notification: notificationService,
		Analytics:    NewAnalyticsService(repos.Analytics),
		Email:        emailService,
	}
}
