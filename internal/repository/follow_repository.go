package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/karripar/personal-project-s25/internal/domain"
)

type FollowRepository interface {
	Create(ctx context.Context, follow *domain.Follow) error
	Delete(ctx context.Context, followerID, followedID int64) error
	Followers(ctx context.Context, userID int64) ([]domain.Follow, error)
	Following(ctx context.Context, userID int64) ([]domain.Follow, error)
}

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, follow *domain.Follow) error {
	query := `
		INSERT INTO follows (follower_id, followed_id)
		VALUES ($1, $2)
		RETURNING follow_id, created_at`
	err := r.db.QueryRowxContext(ctx, query, follow.FollowerID, follow.FollowedID).
		Scan(&follow.ID, &follow.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("already following user %d: %w", follow.FollowedID, domain.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followedID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followed_id = $2`, followerID, followedID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("follow of user %d: %w", followedID, domain.ErrNotFound)
	}
	return nil
}

func (r *followRepository) Followers(ctx context.Context, userID int64) ([]domain.Follow, error) {
	follows := []domain.Follow{}
	err := r.db.SelectContext(ctx, &follows,
		`SELECT follow_id, follower_id, followed_id, created_at FROM follows WHERE followed_id = $1 ORDER BY created_at DESC`,
		userID)
	return follows, err
}

func (r *followRepository) Following(ctx context.Context, userID int64) ([]domain.Follow, error) {
	follows := []domain.Follow{}
	err := r.db.SelectContext(ctx, &follows,
		`SELECT follow_id, follower_id, followed_id, created_at FROM follows WHERE follower_id = $1 ORDER BY created_at DESC`,
		userID)
	return follows, err
}
