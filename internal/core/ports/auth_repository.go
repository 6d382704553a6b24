package ports

import (
	"context"

	"github.com/Mangesh636/rbac-backend/internal/core/domain"
)

// AuthRepository defines the interface for user persistence. Create must be
// atomic with respect to username uniqueness: a concurrent duplicate insert
// yields domain.ErrUserExists, never two users with the same username.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
