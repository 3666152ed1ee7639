package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repositories struct {
	User         UserRepository
	Media        MediaRepository
	Tag          TagRepository
	Like         LikeRepository
	Comment      CommentRepository
	Rating       RatingRepository
	Favorite     FavoriteRepository
	Follow       FollowRepository
	Notification NotificationRepository
	Analytics    AnalyticsRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Media:        NewMediaRepository(db),
		Tag:          NewTagRepository(db),
		Like:         NewLikeRepository(db),
		Comment:      NewCommentRepository(db),
		Rating:       NewRatingRepository(db),
		Favorite:     NewFavoriteRepository(db),
		Follow:       NewFollowRepository(db),
		Notification: NewNotificationRepository(db),
		Analytics:    NewAnalyticsRepository(db),
	}
}

// isUniqueViolation reports whether err is a Postgres duplicate-key error.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
