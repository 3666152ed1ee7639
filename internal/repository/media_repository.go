package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/karripar/personal-project-s25/internal/domain"
)

type MediaRepository interface {
	Create(ctx context.Context, media *domain.MediaItem) error
	GetByID(ctx context.Context, id int64) (*domain.MediaItem, error)
	List(ctx context.Context, params domain.PaginationParams) ([]domain.MediaItem, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.MediaItem, error)
	ListFollowed(ctx context.Context, followerID int64, params domain.PaginationParams) ([]domain.MediaItem, error)
	MostLiked(ctx context.Context) (*domain.MediaItem, error)
	Search(ctx context.Context, field domain.SearchField, term string, params domain.PaginationParams) ([]domain.MediaItem, error)
	Update(ctx context.Context, id int64, input domain.UpdateMediaInput, actor domain.TokenUser) error
	DeleteCascade(ctx context.Context, id int64, actor domain.TokenUser) error
}

type mediaRepository struct {
	db *sqlx.DB
}

func NewMediaRepository(db *sqlx.DB) MediaRepository {
	return &mediaRepository{db: db}
}

const mediaColumns = `media_id, user_id, filename, filesize, media_type, title, description, created_at`

func (r *mediaRepository) Create(ctx context.Context, media *domain.MediaItem) error {
	query := `
		INSERT INTO media_items (user_id, filename, filesize, media_type, title, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING media_id, created_at`

	return r.db.QueryRowxContext(ctx, query,
		media.UserID, media.Filename, media.Filesize, media.MediaType,
		media.Title, media.Description,
	).Scan(&media.ID, &media.CreatedAt)
}

func (r *mediaRepository) GetByID(ctx context.Context, id int64) (*domain.MediaItem, error) {
	var media domain.MediaItem
	query := `SELECT ` + mediaColumns + ` FROM media_items WHERE media_id = $1`
	if err := r.db.GetContext(ctx, &media, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("media %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.MediaItem, error) {
	params.Validate()

	items := []domain.MediaItem{}
	query := `
		SELECT ` + mediaColumns + ` FROM media_items
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &items, query, params.Limit, params.Offset())
	return items, err
}

func (r *mediaRepository) ListByUser(ctx context.Context, userID int64) ([]domain.MediaItem, error) {
	items := []domain.MediaItem{}
	query := `
		SELECT ` + mediaColumns + ` FROM media_items
		WHERE user_id = $1
		ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &items, query, userID)
	return items, err
}

func (r *mediaRepository) ListFollowed(ctx context.Context, followerID int64, params domain.PaginationParams) ([]domain.MediaItem, error) {
	params.Validate()

	items := []domain.MediaItem{}
	query := `
		SELECT m.media_id, m.user_id, m.filename, m.filesize, m.media_type, m.title, m.description, m.created_at
		FROM media_items m
		JOIN follows f ON f.followed_id = m.user_id
		WHERE f.follower_id = $1
		ORDER BY m.created_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &items, query, followerID, params.Limit, params.Offset())
	return items, err
}

func (r *mediaRepository) MostLiked(ctx context.Context) (*domain.MediaItem, error) {
	var media domain.MediaItem
	query := `
		SELECT ` + mediaColumns + ` FROM media_items
		WHERE media_id = (
			SELECT media_id FROM likes
			GROUP BY media_id
			ORDER BY COUNT(*) DESC
			LIMIT 1
		)`
	if err := r.db.GetContext(ctx, &media, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no liked media: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	return &media, nil
}

// searchExprs is the complete enum-to-expression table for caller-supplied
// search fields. Field names never reach SQL; only these expressions do.
var searchExprs = map[domain.SearchField]string{
	domain.SearchByTitle:       `m.title ILIKE '%' || $1 || '%'`,
	domain.SearchByDescription: `m.description ILIKE '%' || $1 || '%'`,
	domain.SearchByTags:        `LOWER(t.tag_name) = LOWER($1)`,
}

func (r *mediaRepository) Search(ctx context.Context, field domain.SearchField, term string, params domain.PaginationParams) ([]domain.MediaItem, error) {
	expr, ok := searchExprs[field]
	if !ok {
		return nil, fmt.Errorf("search field %q: %w", field, domain.ErrInvalidInput)
	}
	params.Validate()

	join := ""
	if field == domain.SearchByTags {
		join = `
		JOIN media_tags mt ON mt.media_id = m.media_id
		JOIN tags t ON t.tag_id = mt.tag_id`
	}

	items := []domain.MediaItem{}
	query := `
		SELECT DISTINCT m.media_id, m.user_id, m.filename, m.filesize, m.media_type, m.title, m.description, m.created_at
		FROM media_items m` + join + `
		WHERE ` + expr + `
		ORDER BY m.created_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &items, query, term, params.Limit, params.Offset())
	return items, err
}

func (r *mediaRepository) Update(ctx context.Context, id int64, input domain.UpdateMediaInput, actor domain.TokenUser) error {
	query := `UPDATE media_items SET title = $1, description = $2 WHERE media_id = $3`
	args := []interface{}{input.Title, input.Description, id}
	if !actor.IsAdmin() {
		query += ` AND user_id = $4`
		args = append(args, actor.UserID)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("media %d not updated: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteCascade removes every engagement and tag-association row for a
// media item and then the item itself, all inside one transaction on one
// checked-out connection. Dependent deletes are worthless without the
// primary delete, so a zero-row primary delete rolls the whole thing back.
func (r *mediaRepository) DeleteCascade(ctx context.Context, id int64, actor domain.TokenUser) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	dependents := []string{
		`DELETE FROM likes WHERE media_id = $1`,
		`DELETE FROM comments WHERE media_id = $1`,
		`DELETE FROM ratings WHERE media_id = $1`,
		`DELETE FROM favorites WHERE media_id = $1`,
		`DELETE FROM media_tags WHERE media_id = $1`,
	}
	for _, stmt := range dependents {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return err
		}
	}

	query := `DELETE FROM media_items WHERE media_id = $1`
	args := []interface{}{id}
	if !actor.IsAdmin() {
		query += ` AND user_id = $2`
		args = append(args, actor.UserID)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("media %d not deleted: %w", id, domain.ErrNotFound)
	}

	return tx.Commit()
}
