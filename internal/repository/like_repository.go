package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/karripar/personal-project-s25/internal/domain"
)

type LikeRepository interface {
	Create(ctx context.Context, like *domain.Like) error
	Delete(ctx context.Context, mediaID, userID int64) error
	CountByMedia(ctx context.Context, mediaID int64) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Like, error)
	Exists(ctx context.Context, mediaID, userID int64) (bool, error)
}

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *domain.Like) error {
	query := `
		INSERT INTO likes (media_id, user_id)
		VALUES ($1, $2)
		RETURNING like_id, created_at`
	err := r.db.QueryRowxContext(ctx, query, like.MediaID, like.UserID).
		Scan(&like.ID, &like.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("media %d already liked: %w", like.MediaID, domain.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *likeRepository) Delete(ctx context.Context, mediaID, userID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM likes WHERE media_id = $1 AND user_id = $2`, mediaID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("like on media %d: %w", mediaID, domain.ErrNotFound)
	}
	return nil
}

func (r *likeRepository) CountByMedia(ctx context.Context, mediaID int64) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM likes WHERE media_id = $1`, mediaID)
	return count, err
}

func (r *likeRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Like, error) {
	likes := []domain.Like{}
	err := r.db.SelectContext(ctx, &likes,
		`SELECT like_id, media_id, user_id, created_at FROM likes WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
	return likes, err
}

func (r *likeRepository) Exists(ctx context.Context, mediaID, userID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM likes WHERE media_id = $1 AND user_id = $2)`,
		mediaID, userID)
	return exists, err
}
