package bookmarks

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkhoard/linkhoard/internal/platform/httpx"
)

type mockRepository struct {
	bookmarks map[int64]*Bookmark
	nextID    int64

	listCalls int
	listErr   error
}

func newMockRepository() *mockRepository {
	return &mockRepository{bookmarks: make(map[int64]*Bookmark), nextID: 1}
}

func (m *mockRepository) Create(ctx context.Context, userID int64, title, description, link string) (*Bookmark, error) {
	bm := &Bookmark{
		ID:          m.nextID,
		UserID:      userID,
		Title:       title,
		Description: description,
		Link:        link,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	m.nextID++
	m.bookmarks[bm.ID] = bm
	return bm, nil
}

func (m *mockRepository) ListByUser(ctx context.Context, userID int64) ([]Bookmark, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	var items []Bookmark
	for _, bm := range m.bookmarks {
		if bm.UserID == userID {
			items = append(items, *bm)
		}
	}
	return items, nil
}

func (m *mockRepository) GetByID(ctx context.Context, userID, id int64) (*Bookmark, error) {
	bm, ok := m.bookmarks[id]
	if !ok || bm.UserID != userID {
		return nil, httpx.ErrNotFound
	}
	return bm, nil
}

func (m *mockRepository) Update(ctx context.Context, userID, id int64, update BookmarkUpdate) (*Bookmark, error) {
	bm, ok := m.bookmarks[id]
	if !ok || bm.UserID != userID {
		return nil, httpx.ErrNotFound
	}
	if update.Title != nil {
		bm.Title = *update.Title
	}
	if update.Description != nil {
		bm.Description = *update.Description
	}
	if update.Link != nil {
		bm.Link = *update.Link
	}
	bm.UpdatedAt = time.Now()
	return bm, nil
}

func (m *mockRepository) Delete(ctx context.Context, userID, id int64) error {
	bm, ok := m.bookmarks[id]
	if !ok || bm.UserID != userID {
		return httpx.ErrNotFound
	}
	delete(m.bookmarks, id)
	return nil
}

func newTestService(t *testing.T) (*Service, *mockRepository) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := newMockRepository()
	return NewService(nil, repo, NewCache(client, time.Minute)), repo
}

func TestListServedFromCache(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, 1, "Go docs", "", "https://go.dev/doc/")
	require.NoError(t, err)

	first, err := service.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, repo.listCalls)

	// Second listing hits the cache, not the repository.
	second, err := service.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[0].Title, second[0].Title)
	assert.Equal(t, 1, repo.listCalls)
}

func TestWritesInvalidateCache(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	bm, err := service.Create(ctx, 1, "Go docs", "", "https://go.dev/doc/")
	require.NoError(t, err)

	_, err = service.List(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, repo.listCalls)

	title := "Go documentation"
	_, err = service.Edit(ctx, 1, bm.ID, BookmarkUpdate{Title: &title})
	require.NoError(t, err)

	items, err := service.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
	require.Len(t, items, 1)
	assert.Equal(t, "Go documentation", items[0].Title)

	require.NoError(t, service.Delete(ctx, 1, bm.ID))
	items, err = service.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestServiceWorksWithoutCache(t *testing.T) {
	repo := newMockRepository()
	service := NewService(nil, repo, nil)
	ctx := context.Background()

	_, err := service.Create(ctx, 1, "Go docs", "", "https://go.dev/doc/")
	require.NoError(t, err)

	items, err := service.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestOwnershipScoping(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	bm, err := service.Create(ctx, 1, "Go docs", "", "https://go.dev/doc/")
	require.NoError(t, err)

	// Another user sees neither the listing entry nor the bookmark
	// itself.
	items, err := service.List(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = service.Get(ctx, 2, bm.ID)
	assert.ErrorIs(t, err, httpx.ErrNotFound)

	_, err = service.Edit(ctx, 2, bm.ID, BookmarkUpdate{})
	assert.ErrorIs(t, err, httpx.ErrNotFound)

	assert.ErrorIs(t, service.Delete(ctx, 2, bm.ID), httpx.ErrNotFound)
}
