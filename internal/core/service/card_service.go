package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/internship/user-service/internal/core/domain"
	"github.com/internship/user-service/internal/core/ports"
)

// CardService orchestrates card CRUD. Ownership is resolved transitively
// through the card's user: the acting credential must match the owning
// user's credentials id.
type CardService struct {
	cards  ports.CardRepository
	users  ports.UserRepository
	cache  ports.Cache
	logger zerolog.Logger
}

func NewCardService(cards ports.CardRepository, users ports.UserRepository, cache ports.Cache, logger zerolog.Logger) *CardService {
	return &CardService{cards: cards, users: users, cache: cache, logger: logger}
}

// Create attaches a new card to the user owned by the acting credential.
// The owner comes from the credential chain, never from the request body.
// No cache write: the entry is populated lazily on first read.
func (s *CardService) Create(ctx context.Context, input ports.CreateCardInput, actingCredentialsID string) (*ports.CardResult, error) {
	if actingCredentialsID == "" {
		return nil, domain.ErrUnauthorized
	}

	owner, err := s.users.FindByCredentialsID(ctx, actingCredentialsID)
	if err != nil {
		return nil, err
	}

	exists, err := s.cards.ExistsByNumber(ctx, input.Number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.AlreadyExists("Card number '%s' already exists", input.Number)
	}

	now := time.Now().UTC()
	card := &domain.CardInfo{
		UserID:         owner.ID,
		Number:         input.Number,
		Holder:         input.Holder,
		ExpirationDate: input.ExpirationDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.cards.Create(ctx, card)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", owner.ID).Msg("failed to create card")
		return nil, err
	}

	s.logger.Info().Str("card_id", created.ID).Str("user_id", owner.ID).Msg("card created")
	return toCardResult(created), nil
}

// GetByID returns a card through the id-keyed cache partition.
func (s *CardService) GetByID(ctx context.Context, id string) (*ports.CardResult, error) {
	key := ports.CardIDKey(id)

	var cached ports.CardResult
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		return nil, err
	}
	if hit {
		return &cached, nil
	}

	card, err := s.cards.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toCardResult(card)
	if err := s.cache.Set(ctx, key, result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetAllByIDs is an uncached bulk read with no owner filtering.
func (s *CardService) GetAllByIDs(ctx context.Context, ids []string) ([]ports.CardResult, error) {
	cards, err := s.cards.FindAllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return toCardResults(cards), nil
}

// GetByUserID returns all cards belonging to a user, uncached.
func (s *CardService) GetByUserID(ctx context.Context, userID string) ([]ports.CardResult, error) {
	cards, err := s.cards.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toCardResults(cards), nil
}

// Update applies the mutable card fields. The ownership check runs after
// existence is confirmed and before the uniqueness check, so a non-owner
// learns nothing about number collisions. On success the id-keyed entry is
// unconditionally overwritten with the fresh value.
func (s *CardService) Update(ctx context.Context, id string, input ports.UpdateCardInput, actingCredentialsID string) (*ports.CardResult, error) {
	card, err := s.cards.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeOwner(ctx, card, actingCredentialsID, "update your own cards"); err != nil {
		return nil, err
	}

	if input.Number != card.Number {
		exists, err := s.cards.ExistsByNumber(ctx, input.Number)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.AlreadyExists("Card number '%s' already exists", input.Number)
		}
	}

	card.Number = input.Number
	card.Holder = input.Holder
	card.ExpirationDate = input.ExpirationDate
	card.UpdatedAt = time.Now().UTC()

	if err := s.cards.Update(ctx, card); err != nil {
		s.logger.Error().Err(err).Str("card_id", id).Msg("failed to update card")
		return nil, err
	}

	result := toCardResult(card)
	if err := s.cache.Set(ctx, ports.CardIDKey(id), result); err != nil {
		return nil, err
	}

	s.logger.Info().Str("card_id", id).Msg("card updated")
	return result, nil
}

// Delete removes a card after an ownership check and evicts its cache entry.
func (s *CardService) Delete(ctx context.Context, id string, actingCredentialsID string) error {
	card, err := s.cards.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizeOwner(ctx, card, actingCredentialsID, "delete your own cards"); err != nil {
		return err
	}

	if err := s.cards.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("card_id", id).Msg("failed to delete card")
		return err
	}
	if err := s.cache.Delete(ctx, ports.CardIDKey(id)); err != nil {
		return err
	}

	s.logger.Info().Str("card_id", id).Msg("card deleted")
	return nil
}

// authorizeOwner follows the card → user → credentials chain and enforces
// ownership of the given action.
func (s *CardService) authorizeOwner(ctx context.Context, card *domain.CardInfo, actingCredentialsID, action string) error {
	owner, err := s.users.FindByID(ctx, card.UserID)
	if err != nil {
		return err
	}
	return domain.RequireOwner(actingCredentialsID, owner.CredentialsID, action)
}

func toCardResult(c *domain.CardInfo) *ports.CardResult {
	return &ports.CardResult{
		ID:             c.ID,
		UserID:         c.UserID,
		Number:         c.Number,
		Holder:         c.Holder,
		ExpirationDate: c.ExpirationDate,
	}
}

func toCardResults(cards []*domain.CardInfo) []ports.CardResult {
	out := make([]ports.CardResult, len(cards))
	for i, c := range cards {
		out[i] = *toCardResult(c)
	}
	return out
}
