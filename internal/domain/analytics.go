package domain

import "time"

// Aggregate read models for the analytics endpoints. All of them are
// derived from the engagement tables at query time; nothing here is
// stored.

type MediaRatingSummary struct {
	MediaID   int64    `json:"media_id" db:"media_id"`
	Title     string   `json:"title" db:"title"`
	AvgRating *float64 `json:"avg_rating" db:"avg_rating"`
}

type MediaCommentSummary struct {
	MediaID      int64  `json:"media_id" db:"media_id"`
	Title        string `json:"title" db:"title"`
	CommentCount int64  `json:"comment_count" db:"comment_count"`
}

// UserActivity counts one user's contributions across the content tables.
type UserActivity struct {
	UserID       int64  `json:"user_id" db:"user_id"`
	Username     string `json:"username" db:"username"`
	MediaCount   int64  `json:"media_count" db:"media_count"`
	CommentCount int64  `json:"comment_count" db:"comment_count"`
	RatingCount  int64  `json:"rating_count" db:"rating_count"`
}

type UserNotificationSummary struct {
	UserID            int64  `json:"user_id" db:"user_id"`
	Username          string `json:"username" db:"username"`
	NotificationCount int64  `json:"notification_count" db:"notification_count"`
	UnreadCount       int64  `json:"unread_count" db:"unread_count"`
}

// LatestMedia is a media row with its uploader's name, for the recent
// uploads feed.
type LatestMedia struct {
	MediaID     int64     `json:"media_id" db:"media_id"`
	Title       string    `json:"title" db:"title"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Description *string   `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	Username    string    `json:"username" db:"username"`
}
