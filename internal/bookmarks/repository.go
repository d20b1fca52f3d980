package bookmarks

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linkhoard/linkhoard/internal/platform/httpx"
)

// Repository provides PostgreSQL backed persistence. Every query is
// scoped to the owning user, so one user can never read or touch
// another user's bookmarks.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a bookmark for the given owner.
func (r *Repository) Create(ctx context.Context, userID int64, title, description, link string) (*Bookmark, error) {
	const query = `
		INSERT INTO bookmarks (user_id, title, description, link)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, title, COALESCE(description, ''), link, created_at, updated_at`

	var bm Bookmark
	err := r.pool.QueryRow(ctx, query, userID, title, nullable(description), link).
		Scan(&bm.ID, &bm.UserID, &bm.Title, &bm.Description, &bm.Link, &bm.CreatedAt, &bm.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &bm, nil
}

// ListByUser returns all bookmarks owned by the user, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]Bookmark, error) {
	const query = `
		SELECT id, user_id, title, COALESCE(description, ''), link, created_at, updated_at
		FROM bookmarks
		WHERE user_id = $1
		ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Bookmark
	for rows.Next() {
		var bm Bookmark
		if err := rows.Scan(&bm.ID, &bm.UserID, &bm.Title, &bm.Description, &bm.Link, &bm.CreatedAt, &bm.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, bm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns a bookmark only when it exists and belongs to the
// user; a foreign bookmark is indistinguishable from a missing one.
func (r *Repository) GetByID(ctx context.Context, userID, id int64) (*Bookmark, error) {
	const query = `
		SELECT id, user_id, title, COALESCE(description, ''), link, created_at, updated_at
		FROM bookmarks
		WHERE id = $1 AND user_id = $2`

	var bm Bookmark
	err := r.pool.QueryRow(ctx, query, id, userID).
		Scan(&bm.ID, &bm.UserID, &bm.Title, &bm.Description, &bm.Link, &bm.CreatedAt, &bm.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, httpx.ErrNotFound
		}
		return nil, err
	}
	return &bm, nil
}

// Update applies a partial update to an owned bookmark.
func (r *Repository) Update(ctx context.Context, userID, id int64, update BookmarkUpdate) (*Bookmark, error) {
	const query = `
		UPDATE bookmarks
		SET title = COALESCE($3, title),
		    description = COALESCE($4, description),
		    link = COALESCE($5, link),
		    updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, COALESCE(description, ''), link, created_at, updated_at`

	var bm Bookmark
	err := r.pool.QueryRow(ctx, query, id, userID, update.Title, update.Description, update.Link).
		Scan(&bm.ID, &bm.UserID, &bm.Title, &bm.Description, &bm.Link, &bm.CreatedAt, &bm.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, httpx.ErrNotFound
		}
		return nil, err
	}
	return &bm, nil
}

// Delete removes an owned bookmark.
func (r *Repository) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bookmarks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
