package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/karripar/personal-project-s25/internal/domain"
)

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *domain.Favorite) error
	Delete(ctx context.Context, mediaID, userID int64) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error)
	CountByMedia(ctx context.Context, mediaID int64) (int64, error)
}

type favoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	query := `
		INSERT INTO favorites (media_id, user_id)
		VALUES ($1, $2)
		RETURNING favorite_id, created_at`
	err := r.db.QueryRowxContext(ctx, query, favorite.MediaID, favorite.UserID).
		Scan(&favorite.ID, &favorite.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("media %d already favorited: %w", favorite.MediaID, domain.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *favoriteRepository) Delete(ctx context.Context, mediaID, userID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE media_id = $1 AND user_id = $2`, mediaID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("favorite on media %d: %w", mediaID, domain.ErrNotFound)
	}
	return nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	favorites := []domain.Favorite{}
	err := r.db.SelectContext(ctx, &favorites,
		`SELECT favorite_id, media_id, user_id, created_at FROM favorites WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
	return favorites, err
}

func (r *favoriteRepository) CountByMedia(ctx context.Context, mediaID int64) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM favorites WHERE media_id = $1`, mediaID)
	return count, err
}
