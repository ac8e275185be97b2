package ports

import (
	"context"

	"github.com/internship/user-service/internal/core/domain"
)

// UserRepository defines persistence operations for users. Lookups that miss
// return a domain NotFoundError; Create translates a unique-index violation
// on email into a domain AlreadyExistsError, which closes the race window
// left by the service-layer pre-check.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByCredentialsID(ctx context.Context, credentialsID string) (*domain.User, error)
	FindAllByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}
