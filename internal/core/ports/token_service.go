package ports

import "github.com/Mangesh636/rbac-backend/internal/core/domain"

// TokenIssuer signs identity tokens for authenticated users.
type TokenIssuer interface {
	Issue(subjectID, role string) (string, error)
}

// TokenVerifier checks a raw token and returns its claims. Failures map to
// domain.ErrTokenMalformed, domain.ErrTokenSignatureInvalid or
// domain.ErrTokenExpired.
type TokenVerifier interface {
	Verify(raw string) (*domain.TokenClaims, error)
}
