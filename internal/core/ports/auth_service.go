package ports

import (
	"context"

	"github.com/Mangesh636/rbac-backend/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}
