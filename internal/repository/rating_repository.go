package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/karripar/personal-project-s25/internal/domain"
)

type RatingRepository interface {
	// Upsert keeps one rating per user and media item; re-rating
	// replaces the previous value.
	Upsert(ctx context.Context, rating *domain.Rating) error
	Delete(ctx context.Context, mediaID, userID int64) error
	AverageByMedia(ctx context.Context, mediaID int64) (*float64, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Rating, error)
}

type ratingRepository struct {
	db *sqlx.DB
}

func NewRatingRepository(db *sqlx.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Upsert(ctx context.Context, rating *domain.Rating) error {
	query := `
		INSERT INTO ratings (media_id, user_id, rating_value)
		VALUES ($1, $2, $3)
		ON CONFLICT (media_id, user_id)
		DO UPDATE SET rating_value = EXCLUDED.rating_value
		RETURNING rating_id, created_at`
	return r.db.QueryRowxContext(ctx, query, rating.MediaID, rating.UserID, rating.Value).
		Scan(&rating.ID, &rating.CreatedAt)
}

func (r *ratingRepository) Delete(ctx context.Context, mediaID, userID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM ratings WHERE media_id = $1 AND user_id = $2`, mediaID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("rating on media %d: %w", mediaID, domain.ErrNotFound)
	}
	return nil
}

func (r *ratingRepository) AverageByMedia(ctx context.Context, mediaID int64) (*float64, error) {
	var avg *float64
	err := r.db.GetContext(ctx, &avg,
		`SELECT AVG(rating_value) FROM ratings WHERE media_id = $1`, mediaID)
	return avg, err
}

func (r *ratingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Rating, error) {
	ratings := []domain.Rating{}
	err := r.db.SelectContext(ctx, &ratings,
		`SELECT rating_id, media_id, user_id, rating_value, created_at FROM ratings WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
	return ratings, err
}
