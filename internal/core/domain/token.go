package domain

import "time"

// TokenClaims is the decoded identity carried by a session token. It is
// transient: issued at login, held by the client, never persisted.
type TokenClaims struct {
	UserID    string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
