package ports

import (
	"context"

	"github.com/internship/user-service/internal/core/domain"
)

// CardRepository defines persistence operations for payment cards.
// DeleteByUserID backs the cascading delete on the owning user and returns
// the number of removed cards.
type CardRepository interface {
	Create(ctx context.Context, c *domain.CardInfo) (*domain.CardInfo, error)
	FindByID(ctx context.Context, id string) (*domain.CardInfo, error)
	FindAllByIDs(ctx context.Context, ids []string) ([]*domain.CardInfo, error)
	FindByUserID(ctx context.Context, userID string) ([]*domain.CardInfo, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	Update(ctx context.Context, c *domain.CardInfo) error
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
}
