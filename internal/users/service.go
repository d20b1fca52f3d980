package users

import (
	"context"
)

// RepositoryPort defines data access methods for users.
type RepositoryPort interface {
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	UpdateProfile(ctx context.Context, userID int64, update ProfileUpdate) (*Profile, error)
}

// Service handles user profile business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// GetProfile returns the authenticated user's profile.
func (s *Service) GetProfile(ctx context.Context, userID int64) (*Profile, error) {
	return s.repo.GetProfile(ctx, userID)
}

// EditProfile applies a partial edit to the authenticated user's own
// profile.
func (s *Service) EditProfile(ctx context.Context, userID int64, update ProfileUpdate) (*Profile, error) {
	return s.repo.UpdateProfile(ctx, userID, update)
}
