package bookmarks

import (
	"context"
	"log/slog"
)

// RepositoryPort defines data access methods for bookmarks.
type RepositoryPort interface {
	Create(ctx context.Context, userID int64, title, description, link string) (*Bookmark, error)
	ListByUser(ctx context.Context, userID int64) ([]Bookmark, error)
	GetByID(ctx context.Context, userID, id int64) (*Bookmark, error)
	Update(ctx context.Context, userID, id int64, update BookmarkUpdate) (*Bookmark, error)
	Delete(ctx context.Context, userID, id int64) error
}

// Service handles bookmark business logic. Listings go through the
// Redis cache; every write invalidates the owner's cached listing
// before returning.
type Service struct {
	logger *slog.Logger
	repo   RepositoryPort
	cache  *Cache
}

// NewService builds a Service instance. cache may be nil.
func NewService(logger *slog.Logger, repo RepositoryPort, cache *Cache) *Service {
	return &Service{logger: logger, repo: repo, cache: cache}
}

// Create stores a new bookmark for the user.
func (s *Service) Create(ctx context.Context, userID int64, title, description, link string) (*Bookmark, error) {
	bm, err := s.repo.Create(ctx, userID, title, description, link)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID)
	return bm, nil
}

// List returns the user's bookmarks, served from cache when possible.
func (s *Service) List(ctx context.Context, userID int64) ([]Bookmark, error) {
	if items, ok := s.cache.GetList(ctx, userID); ok {
		return items, nil
	}
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetList(ctx, userID, items); err != nil && s.logger != nil {
		s.logger.Warn("cache bookmarks", slog.Any("error", err))
	}
	return items, nil
}

// Get returns a single owned bookmark.
func (s *Service) Get(ctx context.Context, userID, id int64) (*Bookmark, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// Edit applies a partial update to an owned bookmark.
func (s *Service) Edit(ctx context.Context, userID, id int64, update BookmarkUpdate) (*Bookmark, error) {
	bm, err := s.repo.Update(ctx, userID, id, update)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID)
	return bm, nil
}

// Delete removes an owned bookmark.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *Service) invalidate(ctx context.Context, userID int64) {
	if err := s.cache.Invalidate(ctx, userID); err != nil && s.logger != nil {
		s.logger.Warn("invalidate bookmark cache", slog.Any("error", err))
	}
}
