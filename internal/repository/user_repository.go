package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/karripar/personal-project-s25/internal/domain"
)

// UserRepository is read-only: user rows are written by the auth server.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

const userByIDQuery = `
	SELECT u.user_id, u.username, u.email, ul.level_name, u.created_at
	FROM users u
	JOIN user_levels ul ON ul.level_id = u.level_id
	WHERE u.user_id = $1`

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := r.db.GetContext(ctx, &user, userByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}
