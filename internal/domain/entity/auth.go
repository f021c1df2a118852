package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType names a login method.
type ProviderType string

const (
	// ProviderEmail is the email and password login.
	ProviderEmail ProviderType = "email"
)

// Authentication represents a single method of logging in (a credential).
type Authentication struct {
	ID             uuid.UUID    // The unique ID for this authentication record.
	UserID         uuid.UUID    // Links this authentication method to the User it belongs to.
	Provider       ProviderType // The authentication provider.
	ProviderUserID string       // The identifier within the provider; the email for ProviderEmail.
	PasswordHash   string       // bcrypt hash, only used when Provider is ProviderEmail.
	CreatedAt      time.Time
}
