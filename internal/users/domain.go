package users

import "time"

// Profile is the outward representation of an account. It has no
// password hash field, so a hash can never leak through this module.
type Profile struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfileUpdate carries the mutable profile fields. Nil pointers keep
// the stored value.
type ProfileUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
}
