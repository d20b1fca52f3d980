package users

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linkhoard/linkhoard/internal/platform/httpx"
)

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetProfile returns the profile for a user id.
func (r *Repository) GetProfile(ctx context.Context, userID int64) (*Profile, error) {
	const query = `
		SELECT id, email, COALESCE(first_name, ''), COALESCE(last_name, ''), created_at, updated_at
		FROM users
		WHERE id = $1`

	var profile Profile
	err := r.pool.QueryRow(ctx, query, userID).
		Scan(&profile.ID, &profile.Email, &profile.FirstName, &profile.LastName, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, httpx.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies a partial update to the user's own row and
// returns the fresh profile. An email collision surfaces as
// httpx.ErrEmailTaken.
func (r *Repository) UpdateProfile(ctx context.Context, userID int64, update ProfileUpdate) (*Profile, error) {
	const query = `
		UPDATE users
		SET email = COALESCE($2, email),
		    first_name = COALESCE($3, first_name),
		    last_name = COALESCE($4, last_name),
		    updated_at = now()
		WHERE id = $1
		RETURNING id, email, COALESCE(first_name, ''), COALESCE(last_name, ''), created_at, updated_at`

	var profile Profile
	err := r.pool.QueryRow(ctx, query, userID, update.Email, update.FirstName, update.LastName).
		Scan(&profile.ID, &profile.Email, &profile.FirstName, &profile.LastName, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return nil, httpx.ErrEmailTaken
		}
		if err == pgx.ErrNoRows {
			return nil, httpx.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}
