package auth

import "time"

// User is the account record as persisted. PasswordHash stays inside
// this package: the service only ever returns Token values and the
// outward profile type lives in internal/users without a hash field.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the authenticated principal resolved from a bearer
// token and attached to the request context.
type Identity struct {
	UserID int64
	Email  string
}

// Token is the outward result of a successful signup or signin.
type Token struct {
	AccessToken string `json:"access_token"`
}
