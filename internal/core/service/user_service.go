package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/internship/user-service/internal/core/domain"
	"github.com/internship/user-service/internal/core/ports"
)

// UserService orchestrates user CRUD: uniqueness invariants, ownership
// checks, persistence calls, and cache population/invalidation. Cache reads
// and writes happen inline so the coherence contract is visible in the
// control flow, not hidden behind interception.
type UserService struct {
	users  ports.UserRepository
	cards  ports.CardRepository
	cache  ports.Cache
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, cards ports.CardRepository, cache ports.Cache, logger zerolog.Logger) *UserService {
	return &UserService{users: users, cards: cards, cache: cache, logger: logger}
}

// Create registers a new user owned by the acting credential. The cache is
// not written here: entries are populated lazily on first read.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput, actingCredentialsID string) (*ports.UserResult, error) {
	if actingCredentialsID == "" {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.AlreadyExists("User with email '%s' already exists", input.Email)
	} else if !isNotFound(err) {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:          input.Name,
		Surname:       input.Surname,
		BirthDate:     input.BirthDate,
		Email:         input.Email,
		CredentialsID: actingCredentialsID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("credentials_id", actingCredentialsID).Msg("user created")
	return s.assemble(ctx, created)
}

// GetByID returns a user through the id-keyed cache partition.
func (s *UserService) GetByID(ctx context.Context, id string) (*ports.UserResult, error) {
	key := ports.UserIDKey(id)

	var cached ports.UserResult
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		return nil, err
	}
	if hit {
		return &cached, nil
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result, err := s.assemble(ctx, user)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByEmail returns a user through the email-keyed cache partition. Id and
// email entries are independent and must both be invalidated on writes.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*ports.UserResult, error) {
	key := ports.UserEmailKey(email)

	var cached ports.UserResult
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		return nil, err
	}
	if hit {
		return &cached, nil
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	result, err := s.assemble(ctx, user)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByCredentialsID returns the user owned by the given credential. Not
// cached: credentials ids are only queried by internal callers.
func (s *UserService) GetByCredentialsID(ctx context.Context, credentialsID string) (*ports.UserResult, error) {
	user, err := s.users.FindByCredentialsID(ctx, credentialsID)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, user)
}

// GetAllByIDs is an uncached bulk read with no owner filtering.
func (s *UserService) GetAllByIDs(ctx context.Context, ids []string) ([]ports.UserResult, error) {
	users, err := s.users.FindAllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return s.assembleAll(ctx, users)
}

// GetAll is an uncached bulk read with no owner filtering.
func (s *UserService) GetAll(ctx context.Context) ([]ports.UserResult, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.assembleAll(ctx, users)
}

// Update applies the mutable profile fields after an ownership check. The
// owning credential is never touched. On success the id-keyed entry is
// overwritten with the fresh value and the entry for the previous email is
// evicted; the new email is not pre-cached.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput, actingCredentialsID string) (*ports.UserResult, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.RequireOwner(actingCredentialsID, user.CredentialsID, "update your own profile"); err != nil {
		return nil, err
	}

	oldEmail := user.Email
	if input.Email != oldEmail {
		if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
			return nil, domain.AlreadyExists("Email '%s' already in use", input.Email)
		} else if !isNotFound(err) {
			return nil, err
		}
	}

	user.Name = input.Name
	user.Surname = input.Surname
	user.BirthDate = input.BirthDate
	user.Email = input.Email
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to update user")
		return nil, err
	}

	result, err := s.assemble(ctx, user)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, ports.UserIDKey(id), result); err != nil {
		return nil, err
	}
	if err := s.cache.Delete(ctx, ports.UserEmailKey(oldEmail)); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Msg("user updated")
	return result, nil
}

// Delete removes a user and, cascading, all of its cards. Eviction covers
// every entry the delete invalidates: the id and email partitions of the
// user plus the id entry of each removed card.
func (s *UserService) Delete(ctx context.Context, id string, actingCredentialsID string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.RequireOwner(actingCredentialsID, user.CredentialsID, "delete your own profile"); err != nil {
		return err
	}

	cards, err := s.cards.FindByUserID(ctx, user.ID)
	if err != nil {
		return err
	}
	keys := []string{ports.UserIDKey(id), ports.UserEmailKey(user.Email)}
	for _, c := range cards {
		keys = append(keys, ports.CardIDKey(c.ID))
	}

	removed, err := s.cards.DeleteByUserID(ctx, user.ID)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, user.ID); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to delete user")
		return err
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Int64("cards_removed", removed).Msg("user deleted")
	return nil
}

// assemble maps a persisted user plus its cards into the response projection.
func (s *UserService) assemble(ctx context.Context, u *domain.User) (*ports.UserResult, error) {
	cards, err := s.cards.FindByUserID(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return toUserResult(u, cards), nil
}

func (s *UserService) assembleAll(ctx context.Context, users []*domain.User) ([]ports.UserResult, error) {
	results := make([]ports.UserResult, 0, len(users))
	for _, u := range users {
		r, err := s.assemble(ctx, u)
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}
	return results, nil
}

func toUserResult(u *domain.User, cards []*domain.CardInfo) *ports.UserResult {
	out := make([]ports.CardResult, len(cards))
	for i, c := range cards {
		out[i] = *toCardResult(c)
	}
	return &ports.UserResult{
		ID:        u.ID,
		Name:      u.Name,
		Surname:   u.Surname,
		BirthDate: u.BirthDate,
		Email:     u.Email,
		Cards:     out,
	}
}

func isNotFound(err error) bool {
	var nf *domain.NotFoundError
	return errors.As(err, &nf)
}
