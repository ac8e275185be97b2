package ports

import "context"

// CreateCardInput carries the data needed to attach a new card. The owning
// user is resolved from the acting credential, never from the request.
type CreateCardInput struct {
	Number         string
	Holder         string
	ExpirationDate string
}

// UpdateCardInput carries the mutable card fields.
type UpdateCardInput struct {
	Number         string
	Holder         string
	ExpirationDate string
}

// CardResult is the externally visible projection of a card. This is also
// the shape stored in the cache.
type CardResult struct {
	ID             string `json:"id"`
	UserID         string `json:"userId"`
	Number         string `json:"number"`
	Holder         string `json:"holder"`
	ExpirationDate string `json:"expirationDate"`
}

// CardService defines use-case operations for payment cards.
type CardService interface {
	Create(ctx context.Context, input CreateCardInput, actingCredentialsID string) (*CardResult, error)
	GetByID(ctx context.Context, id string) (*CardResult, error)
	GetAllByIDs(ctx context.Context, ids []string) ([]CardResult, error)
	GetByUserID(ctx context.Context, userID string) ([]CardResult, error)
	Update(ctx context.Context, id string, input UpdateCardInput, actingCredentialsID string) (*CardResult, error)
	Delete(ctx context.Context, id string, actingCredentialsID string) error
}
