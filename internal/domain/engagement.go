package domain

import "time"

// Engagement rows all reference a live media item; the media deletion
// transaction removes them together with the primary row.

type Like struct {
	ID        int64     `json:"like_id" db:"like_id"`
	MediaID   int64     `json:"media_id" db:"media_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Comment struct {
	ID        int64     `json:"comment_id" db:"comment_id"`
	MediaID   int64     `json:"media_id" db:"media_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Text      string    `json:"comment_text" db:"comment_text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Rating struct {
	ID        int64     `json:"rating_id" db:"rating_id"`
	MediaID   int64     `json:"media_id" db:"media_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Value     int       `json:"rating_value" db:"rating_value"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Favorite struct {
	ID        int64     `json:"favorite_id" db:"favorite_id"`
	MediaID   int64     `json:"media_id" db:"media_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Follow struct {
	ID         int64     `json:"follow_id" db:"follow_id"`
	FollowerID int64     `json:"follower_id" db:"follower_id"`
	FollowedID int64     `json:"followed_id" db:"followed_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
