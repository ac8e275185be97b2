package ports

import (
	"context"
	"time"
)

// CreateUserInput carries all data needed to register a new user.
type CreateUserInput struct {
	Name      string
	Surname   string
	BirthDate time.Time
	Email     string
}

// UpdateUserInput carries the mutable profile fields. The owning credential
// is intentionally absent: ownership is fixed at creation.
type UpdateUserInput struct {
	Name      string
	Surname   string
	BirthDate time.Time
	Email     string
}

// UserResult is the externally visible projection of a user, including its
// cards. This is also the shape stored in the cache.
type UserResult struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Surname   string       `json:"surname,omitempty"`
	BirthDate time.Time    `json:"birthDate"`
	Email     string       `json:"email"`
	Cards     []CardResult `json:"cards"`
}

// UserService defines use-case operations for users. Mutating operations
// take the acting credentials id explicitly; there is no ambient security
// context.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput, actingCredentialsID string) (*UserResult, error)
	GetByID(ctx context.Context, id string) (*UserResult, error)
	GetByEmail(ctx context.Context, email string) (*UserResult, error)
	GetByCredentialsID(ctx context.Context, credentialsID string) (*UserResult, error)
	GetAllByIDs(ctx context.Context, ids []string) ([]UserResult, error)
	GetAll(ctx context.Context) ([]UserResult, error)
	Update(ctx context.Context, id string, input UpdateUserInput, actingCredentialsID string) (*UserResult, error)
	Delete(ctx context.Context, id string, actingCredentialsID string) error
}
