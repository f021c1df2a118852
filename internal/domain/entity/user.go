// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can author routes, comments and bookmarks.
type User struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email       string    // Login identifier, stored lower-cased.
	DisplayName string    // Name shown next to routes and comments.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
