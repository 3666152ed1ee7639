package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/karripar/personal-project-s25/internal/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	ListByMedia(ctx context.Context, mediaID int64) ([]domain.Comment, error)
	CountByMedia(ctx context.Context, mediaID int64) (int64, error)
	Update(ctx context.Context, id int64, text string) error
	Delete(ctx context.Context, id int64) error
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (media_id, user_id, comment_text)
		VALUES ($1, $2, $3)
		RETURNING comment_id, created_at`
	return r.db.QueryRowxContext(ctx, query, comment.MediaID, comment.UserID, comment.Text).
		Scan(&comment.ID, &comment.CreatedAt)
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment domain.Comment
	query := `SELECT comment_id, media_id, user_id, comment_text, created_at FROM comments WHERE comment_id = $1`
	if err := r.db.GetContext(ctx, &comment, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("comment %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByMedia(ctx context.Context, mediaID int64) ([]domain.Comment, error) {
	comments := []domain.Comment{}
	query := `
		SELECT comment_id, media_id, user_id, comment_text, created_at
		FROM comments
		WHERE media_id = $1
		ORDER BY created_at ASC`
	err := r.db.SelectContext(ctx, &comments, query, mediaID)
	return comments, err
}

func (r *commentRepository) CountByMedia(ctx context.Context, mediaID int64) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM comments WHERE media_id = $1`, mediaID)
	return count, err
}

func (r *commentRepository) Update(ctx context.Context, id int64, text string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE comments SET comment_text = $1 WHERE comment_id = $2`, text, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("comment %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("comment %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
