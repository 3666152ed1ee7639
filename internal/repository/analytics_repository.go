package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/karripar/personal-project-s25/internal/domain"
)

// AnalyticsRepository serves the aggregate read models. Everything is
// computed from the base tables at query time; the original deployment
// used database views for these, which the app never had to keep in sync.
type AnalyticsRepository interface {
	MediaRatings(ctx context.Context) ([]domain.MediaRatingSummary, error)
	MediaComments(ctx context.Context) ([]domain.MediaCommentSummary, error)
	UserActivity(ctx context.Context, userID int64) (*domain.UserActivity, error)
	UserNotificationSummary(ctx context.Context, userID int64) (*domain.UserNotificationSummary, error)
	LatestNotifications(ctx context.Context, userID int64, limit int) ([]domain.Notification, error)
	LatestMedia(ctx context.Context, limit int) ([]domain.LatestMedia, error)
}

type analyticsRepository struct {
	db *sqlx.DB
}

func NewAnalyticsRepository(db *sqlx.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) MediaRatings(ctx context.Context) ([]domain.MediaRatingSummary, error) {
	summaries := []domain.MediaRatingSummary{}
	query := `
		SELECT m.media_id, m.title, AVG(r.rating_value) AS avg_rating
		FROM media_items m
		LEFT JOIN ratings r ON r.media_id = m.media_id
		GROUP BY m.media_id, m.title
		ORDER BY m.media_id`
	err := r.db.SelectContext(ctx, &summaries, query)
	return summaries, err
}

func (r *analyticsRepository) MediaComments(ctx context.Context) ([]domain.MediaCommentSummary, error) {
	summaries := []domain.MediaCommentSummary{}
	query := `
		SELECT m.media_id, m.title, COUNT(c.comment_id) AS comment_count
		FROM media_items m
		LEFT JOIN comments c ON c.media_id = m.media_id
		GROUP BY m.media_id, m.title
		ORDER BY m.media_id`
	err := r.db.SelectContext(ctx, &summaries, query)
	return summaries, err
}

func (r *analyticsRepository) UserActivity(ctx context.Context, userID int64) (*domain.UserActivity, error) {
	var activity domain.UserActivity
	query := `
		SELECT u.user_id, u.username,
			(SELECT COUNT(*) FROM media_items m WHERE m.user_id = u.user_id) AS media_count,
			(SELECT COUNT(*) FROM comments c WHERE c.user_id = u.user_id) AS comment_count,
			(SELECT COUNT(*) FROM ratings r WHERE r.user_id = u.user_id) AS rating_count
		FROM users u
		WHERE u.user_id = $1`
	if err := r.db.GetContext(ctx, &activity, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
		}
		return nil, err
	}
	return &activity, nil
}

func (r *analyticsRepository) UserNotificationSummary(ctx context.Context, userID int64) (*domain.UserNotificationSummary, error) {
	var summary domain.UserNotificationSummary
	query := `
		SELECT u.user_id, u.username,
			COUNT(n.notification_id) AS notification_count,
			COUNT(n.notification_id) FILTER (WHERE NOT n.is_read) AS unread_count
		FROM users u
		LEFT JOIN notifications n ON n.user_id = u.user_id AND NOT n.is_archived
		WHERE u.user_id = $1
		GROUP BY u.user_id, u.username`
	if err := r.db.GetContext(ctx, &summary, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
		}
		return nil, err
	}
	return &summary, nil
}

func (r *analyticsRepository) LatestNotifications(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	notifications := []domain.Notification{}
	query := `
		SELECT notification_id, user_id, notification_text, notification_type, is_read, is_archived, created_at
		FROM notifications
		WHERE user_id = $1 AND NOT is_archived
		ORDER BY created_at DESC
		LIMIT $2`
	err := r.db.SelectContext(ctx, &notifications, query, userID, limit)
	return notifications, err
}

func (r *analyticsRepository) LatestMedia(ctx context.Context, limit int) ([]domain.LatestMedia, error) {
	items := []domain.LatestMedia{}
	query := `
		SELECT m.media_id, m.title, m.user_id, m.description, m.created_at, u.username
		FROM media_items m
		JOIN users u ON u.user_id = m.user_id
		ORDER BY m.created_at DESC
		LIMIT $1`
	err := r.db.SelectContext(ctx, &items, query, limit)
	return items, err
}
