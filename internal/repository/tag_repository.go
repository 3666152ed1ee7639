package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/karripar/personal-project-s25/internal/domain"
)

type TagRepository interface {
	List(ctx context.Context) ([]domain.Tag, error)
	ListByMedia(ctx context.Context, mediaID int64) ([]domain.Tag, error)
	MediaByTag(ctx context.Context, tagID int64) ([]domain.MediaItem, error)
	// GetOrCreate resolves a tag name case-insensitively, creating the
	// row on first use.
	GetOrCreate(ctx context.Context, name string) (*domain.Tag, error)
	// Attach links a tag to a media item. Re-attaching an existing pair
	// is a no-op, not an error.
	Attach(ctx context.Context, tagID, mediaID int64) error
	Detach(ctx context.Context, tagID, mediaID int64) error
	Delete(ctx context.Context, tagID int64) error
}

type tagRepository struct {
	db *sqlx.DB
}

func NewTagRepository(db *sqlx.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) List(ctx context.Context) ([]domain.Tag, error) {
	tags := []domain.Tag{}
	err := r.db.SelectContext(ctx, &tags, `SELECT tag_id, tag_name FROM tags ORDER BY tag_name`)
	return tags, err
}

func (r *tagRepository) ListByMedia(ctx context.Context, mediaID int64) ([]domain.Tag, error) {
	tags := []domain.Tag{}
	query := `
		SELECT t.tag_id, t.tag_name
		FROM tags t
		JOIN media_tags mt ON mt.tag_id = t.tag_id
		WHERE mt.media_id = $1
		ORDER BY t.tag_name`
	err := r.db.SelectContext(ctx, &tags, query, mediaID)
	return tags, err
}

func (r *tagRepository) MediaByTag(ctx context.Context, tagID int64) ([]domain.MediaItem, error) {
	items := []domain.MediaItem{}
	query := `
		SELECT m.media_id, m.user_id, m.filename, m.filesize, m.media_type, m.title, m.description, m.created_at
		FROM media_items m
		JOIN media_tags mt ON mt.media_id = m.media_id
		WHERE mt.tag_id = $1
		ORDER BY m.created_at DESC`
	err := r.db.SelectContext(ctx, &items, query, tagID)
	return items, err
}

func (r *tagRepository) GetOrCreate(ctx context.Context, name string) (*domain.Tag, error) {
	var tag domain.Tag
	err := r.db.GetContext(ctx, &tag,
		`SELECT tag_id, tag_name FROM tags WHERE LOWER(tag_name) = LOWER($1)`, name)
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	tag.Name = name
	err = r.db.QueryRowxContext(ctx,
		`INSERT INTO tags (tag_name) VALUES ($1) RETURNING tag_id`, name).Scan(&tag.ID)
	if err != nil {
		// Concurrent first use of the same name: fall back to the winner.
		if isUniqueViolation(err) {
			if scanErr := r.db.GetContext(ctx, &tag,
				`SELECT tag_id, tag_name FROM tags WHERE LOWER(tag_name) = LOWER($1)`, name); scanErr == nil {
				return &tag, nil
			}
		}
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) Attach(ctx context.Context, tagID, mediaID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO media_tags (tag_id, media_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		tagID, mediaID)
	return err
}

func (r *tagRepository) Detach(ctx context.Context, tagID, mediaID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM media_tags WHERE tag_id = $1 AND media_id = $2`, tagID, mediaID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("tag %d not attached to media %d: %w", tagID, mediaID, domain.ErrNotFound)
	}
	return nil
}

func (r *tagRepository) Delete(ctx context.Context, tagID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM media_tags WHERE tag_id = $1`, tagID); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM tags WHERE tag_id = $1`, tagID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("tag %d: %w", tagID, domain.ErrNotFound)
	}

	return tx.Commit()
}
