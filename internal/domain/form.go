package domain

import (
	"time"

	"github.com/formsmith/formsmith/compiler/ir"
)

// PublishedForm is a stored descriptor with its ownership token hash.
// The raw edit token is returned to the publisher once and never stored.
type PublishedForm struct {
	ID            string    `json:"id"`
	Descriptor    ir.Form   `json:"descriptor"`
	EditTokenHash []byte    `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

// Expired reports whether the record's TTL has elapsed at the given time.
// A zero ExpiresAt means the record is durable.
func (f PublishedForm) Expired(now time.Time) bool {
	return !f.ExpiresAt.IsZero() && now.After(f.ExpiresAt)
}
