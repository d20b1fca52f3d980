package bookmarks

import "time"

// Bookmark is a saved link owned by a single user.
type Bookmark struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BookmarkUpdate carries the mutable bookmark fields. Nil pointers
// keep the stored value.
type BookmarkUpdate struct {
	Title       *string
	Description *string
	Link        *string
}
