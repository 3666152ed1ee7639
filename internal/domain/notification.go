package domain

import "time"

const (
	NotificationComment = "comment"
	NotificationLike    = "like"
	NotificationRating  = "rating"
	NotificationFollow  = "follow"
)

type Notification struct {
	ID         int64     `json:"notification_id" db:"notification_id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	Text       string    `json:"notification_text" db:"notification_text"`
	Type       string    `json:"notification_type" db:"notification_type"`
	IsRead     bool      `json:"is_read" db:"is_read"`
	IsArchived bool      `json:"is_archived" db:"is_archived"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
