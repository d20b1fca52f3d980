package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/linkhoard/linkhoard/internal/platform/httpx"
)

// Repository defines persistence operations for the auth module.
type Repository interface {
	CreateUser(ctx context.Context, email, passwordHash string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// Service wraps authentication business rules.
type Service struct {
	repo   Repository
	tokens *TokenManager
}

// NewService constructs a new Service.
func NewService(repo Repository, tokens *TokenManager) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Signup registers a new account and returns a fresh access token.
// A duplicate email surfaces as httpx.ErrEmailTaken.
func (s *Service) Signup(ctx context.Context, email, password string) (Token, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return Token{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, email, hash)
	if err != nil {
		return Token{}, err
	}
	return s.issue(user)
}

// Signin validates credentials and returns a fresh access token. An
// unknown email and a wrong password produce the identical error so
// callers cannot probe which addresses are registered.
func (s *Service) Signin(ctx context.Context, email, password string) (Token, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return Token{}, httpx.ErrInvalidCredentials
		}
		return Token{}, err
	}

	ok, err := VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return Token{}, httpx.ErrInvalidCredentials
	}
	return s.issue(user)
}

func (s *Service) issue(user *User) (Token, error) {
	access, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return Token{}, err
	}
	return Token{AccessToken: access}, nil
}
