package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/internship/user-service/internal/core/domain"
	"github.com/internship/user-service/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID          map[string]*domain.User
	seq           int
	findByIDCalls int   // number of FindByID calls, for cache-hit assertions
	failWith      error // if set, every method returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return nil, domain.AlreadyExists("User with email '%s' already exists", u.Email)
		}
	}
	r.seq++
	clone := *u
	clone.ID = fmt.Sprintf("user-%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.findByIDCalls++
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.NotFound("User id=%s not found", id)
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.NotFound("User email=%s not found", email)
}

func (r *stubUserRepo) FindByCredentialsID(_ context.Context, credentialsID string) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, u := range r.byID {
		if u.CredentialsID == credentialsID {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.NotFound("User with credentials id=%s not found", credentialsID)
}

func (r *stubUserRepo) FindAllByIDs(_ context.Context, ids []string) ([]*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []*domain.User
	for _, id := range ids {
		if u, ok := r.byID[id]; ok {
			clone := *u
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []*domain.User
	for _, u := range r.byID {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.byID[u.ID]; !ok {
		return domain.NotFound("User id=%s not found", u.ID)
	}
	clone := *u
	r.byID[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.byID[id]; !ok {
		return domain.NotFound("User id=%s not found", id)
	}
	delete(r.byID, id)
	return nil
}

type stubCardRepo struct {
	byID        map[string]*domain.CardInfo
	seq         int
	existsCalls int // number of ExistsByNumber calls
	failWith    error
}

func newStubCardRepo() *stubCardRepo {
	return &stubCardRepo{byID: make(map[string]*domain.CardInfo)}
}

func (r *stubCardRepo) Create(_ context.Context, c *domain.CardInfo) (*domain.CardInfo, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, existing := range r.byID {
		if existing.Number == c.Number {
			return nil, domain.AlreadyExists("Card number '%s' already exists", c.Number)
		}
	}
	r.seq++
	clone := *c
	clone.ID = fmt.Sprintf("card-%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCardRepo) FindByID(_ context.Context, id string) (*domain.CardInfo, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.NotFound("Card id=%s not found", id)
	}
	clone := *c
	return &clone, nil
}

func (r *stubCardRepo) FindAllByIDs(_ context.Context, ids []string) ([]*domain.CardInfo, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []*domain.CardInfo
	for _, id := range ids {
		if c, ok := r.byID[id]; ok {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubCardRepo) FindByUserID(_ context.Context, userID string) ([]*domain.CardInfo, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := []*domain.CardInfo{}
	for _, c := range r.byID {
		if c.UserID == userID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubCardRepo) ExistsByNumber(_ context.Context, number string) (bool, error) {
	r.existsCalls++
	if r.failWith != nil {
		return false, r.failWith
	}
	for _, c := range r.byID {
		if c.Number == number {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubCardRepo) Update(_ context.Context, c *domain.CardInfo) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.byID[c.ID]; !ok {
		return domain.NotFound("Card id=%s not found", c.ID)
	}
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCardRepo) Delete(_ context.Context, id string) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.byID[id]; !ok {
		return domain.NotFound("Card id=%s not found", id)
	}
	delete(r.byID, id)
	return nil
}

func (r *stubCardRepo) DeleteByUserID(_ context.Context, userID string) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	var removed int64
	for id, c := range r.byID {
		if c.UserID == userID {
			delete(r.byID, id)
			removed++
		}
	}
	return removed, nil
}

// ---------------------------------------------------------------------------
// In-memory stub cache
// ---------------------------------------------------------------------------

// stubCache stores JSON-encoded values so tests exercise the same
// round-trip the Redis cache performs.
type stubCache struct {
	store    map[string][]byte
	failWith error
}

func newStubCache() *stubCache {
	return &stubCache{store: make(map[string][]byte)}
}

func (c *stubCache) Get(_ context.Context, key string, dest any) (bool, error) {
	if c.failWith != nil {
		return false, c.failWith
	}
	raw, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *stubCache) Set(_ context.Context, key string, value any) error {
	if c.failWith != nil {
		return c.failWith
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = raw
	return nil
}

func (c *stubCache) Delete(_ context.Context, keys ...string) error {
	if c.failWith != nil {
		return c.failWith
	}
	for _, k := range keys {
		delete(c.store, k)
	}
	return nil
}

func (c *stubCache) has(key string) bool {
	_, ok := c.store[key]
	return ok
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func userInput(name, email string) ports.CreateUserInput {
	return ports.CreateUserInput{
		Name:      name,
		Surname:   "Doe",
		BirthDate: time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC),
		Email:     email,
	}
}

func newUserFixture() (*UserService, *stubUserRepo, *stubCardRepo, *stubCache) {
	users := newStubUserRepo()
	cards := newStubCardRepo()
	cache := newStubCache()
	return NewUserService(users, cards, cache, discardLogger), users, cards, cache
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestUserService_Create_Success(t *testing.T) {
	svc, users, _, cache := newUserFixture()

	result, err := svc.Create(context.Background(), userInput("John", "john@example.com"), "cred-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ID == "" {
		t.Error("expected an assigned id")
	}
	if result.Name != "John" || result.Email != "john@example.com" {
		t.Errorf("result fields wrong: %+v", result)
	}
	if len(result.Cards) != 0 {
		t.Errorf("new user must have no cards, got %d", len(result.Cards))
	}

	stored := users.byID[result.ID]
	if stored.CredentialsID != "cred-1" {
		t.Errorf("expected credentials id %q, got %q", "cred-1", stored.CredentialsID)
	}
	// Entries are populated lazily on first read, never on create.
	if cache.has(ports.UserIDKey(result.ID)) || cache.has(ports.UserEmailKey(result.Email)) {
		t.Error("create must not write to the cache")
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	svc, _, _, _ := newUserFixture()

	if _, err := svc.Create(context.Background(), userInput("John", "john@example.com"), "cred-1"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), userInput("Jane", "john@example.com"), "cred-2")
	var exists *domain.AlreadyExistsError
	if !errors.As(err, &exists) {
		t.Fatalf("expected AlreadyExistsError, got %v", err)
	}
	want := "User with email 'john@example.com' already exists"
	if exists.Message != want {
		t.Errorf("expected message %q, got %q", want, exists.Message)
	}
}

func TestUserService_Create_MissingCredentials(t *testing.T) {
	svc, _, _, _ := newUserFixture()

	_, err := svc.Create(context.Background(), userInput("John", "john@example.com"), "")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Reads and cache population
// ---------------------------------------------------------------------------

func TestUserService_GetByID_PopulatesCache(t *testing.T) {
	svc, _, _, cache := newUserFixture()
	created, _ := svc.Create(context.Background(), userInput("John", "john@example.com"), "cred-1")

	result, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Email != "john@example.com" {
		t.Errorf("expected email %q, got %q", "john@example.com", result.Email)
	}
	if !cache.has(ports.UserIDKey(created.ID)) {
		t.Error("read miss must populate the id-keyed entry")
	}
	// Only the partition that was read gets populated.
	if cache.has(ports.UserEmailKey(created.Email)) {
		t.Error("id-keyed read must not populate the email-keyed entry")
	}
}

func TestUserService_GetByID_SecondReadHitsCache(t *testing.T) {
	svc, users, _, _ := newUserFixture()
	created, _ := svc.Create(context.Background(), userInput("John", "john@example.com"), "cred-1")

	if _, err := svc.GetByID(context.Background(), created.ID); err != nil {
		t.Fatalf("first read: %v", err)
	}
	before := users.findByIDCalls
	if _, err := svc.GetByID(context.Background(), created.ID); err != nil {
		t.Fatalf("second read: %v", err)
	}
	if users.findByIDCalls != before {
		t.Errorf("second read must be served from cache, but repo was hit %d more time(s)", users.findByIDCalls-before)
	}
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc, _, _, _ := newUserFixture()

	_, err := svc.GetByID(context.Background(), "missing")
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Message != "User id=missing not found" {
		t.Errorf("unexpected message %q", nf.Message)
	}
}

func TestUserService_GetByEmail_PopulatesEmailPartition(t *testing.T) {
	svc, _, _, cache := newUserFixture()
	created, _ := svc.Create(context.Background(), userInput("John", "john@example.com"), "cred-1")

	result, err := svc.GetByEmail(context.Background(), "john@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ID != created.ID {
		t.Errorf("expected id %q, got %q", created.ID, result.ID)
	}
	if !cache.has(ports.UserEmailKey("john@example.com")) {
		t.Error("read miss must populate the email-keyed entry")
	}
	if cache.has(ports.UserIDKey(created.ID)) {
		t.Error("email-keyed read must not populate the id-keyed entry")
	}
}

func TestUserService_GetByID_CacheFailurePropagates(t *testing.T) {
	svc, _, _, cache := newUserFixture()
	cache.failWith = errors.New("redis unavailable")

	_, err := svc.GetByID(context.Background(), "user-1")
	if err == nil || err.Error() != "redis unavailable" {
		t.Errorf("cache failure must propagate, got %v", err)
	}
}

func TestUserService_GetAllByIDs(t *testing.T) {
	svc, _, _, _ := newUserFixture()
	a, _ := svc.Create(context.Background(), userInput("John", "john@example.com"), "cred-1")
	b, _ := svc.Create(context.Background(), userInput("Jane", "jane@example.com"), "cred-2")

	results, err := svc.GetAllByIDs(context.Background(), []string{a.ID, b.ID, "missing"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
}

func TestUserService_GetAll(t *testing.T) {
	svc, _, _, _ := newUserFixture()
	_, _ = svc.Create(context.Background(), userInput("John", "john@example.com"), "cred-1")
	_, _ = svc.Create(context.Background(), userInput("Jane", "jane@example.com"), "cred-2")

	results, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestUserService_Update_Owner(t *testing.T) {
	svc, users, _, cache := newUserFixture()
	created, _ := svc.Create(context.Background(), userInput("John", "john@example.com"), "cred-1")

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{
		Name:      "Johnny",
		Surname:   "Doe",
		BirthDate: created.BirthDate,
		Email:     "johnny@example.com",
	}, "cred-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Johnny" || updated.Email != "johnny@example.com" {
		t.Errorf("update not applied: %+v", updated)
	}
	if users.byID[created.ID].Email != "johnny@example.com" {
		t.Error("update not persisted")
	}

	// The id-keyed entry is refreshed with the new value.
	var cached ports.UserResult
	hit, _ := cache.Get(context.Background(), ports.UserIDKey(created.ID), &cached)
	if !hit {
		t.Fatal("update must refresh the id-keyed entry")
	}
	if cached.Email != "johnny@example.com" {
		t.Errorf("cached entry stale: %q", cached.Email)
	}
}

func TestUserService_Update_EvictsOldEmailEntry(t *testing.T) {
	svc, _, _, cache := newUserFixture()
	created, _ := svc.Create(context.Background(), userInput("John", "john@example.com"), "cred-1")

	// Populate the email partition, then change the email.
	if _, err := svc.GetByEmail(context.Background(), "john@example.com"); err != nil {
		t.Fatalf("seed read: %v", err)
	}
	_, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{
		Name: "John", Surname: "Doe", BirthDate: created.BirthDate, Email: "johnny@example.com",
	}, "cred-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cache.has(ports.UserEmailKey("john@example.com")) {
		t.Error("old email entry must be evicted, or stale reads survive until TTL")
	}
	// The new email is populated lazily, not by the write.
	if cache.has(ports.UserEmailKey("johnny@example.com")) {
		t.Error("update must not pre-populate the new email entry")
	}
}

func TestUserService_Update_LeavesUnrelatedEntriesAlone(t *testing.T) {
	svc, _, _, cache := newUserFixture()
	a, _ := svc.Create(context.Background(), userInput("John", "john@example.com"), "cred-1")
	b, _ := svc.Create(context.Background(), userInput("Jane", "jane@example.com"), "cred-2")

	if _, err := svc.GetByID(context.Background(), b.ID); err != nil {
		t.Fatalf("seed read: %v", err)
	}
	_, err := svc.Update(context.Background(), a.ID, ports.UpdateUserInput{
		Name: "Johnny", Surname: "Doe", BirthDate: a.BirthDate, Email: "john@example.com",
	}, "cred-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cache.has(ports.UserIDKey(b.ID)) {
		t.Error("updating one user must not touch another user's entry")
	}
}

func TestUserService_Update_NonOwnerDenied(t *testing.T) {
	svc, users, _, _ := newUserFixture()
	created, _ := svc.Create(context.Background(), userInput("John", "john@example.com"), "cred-1")

	_, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{
		Name: "Hacked", Surname: "Doe", BirthDate: created.BirthDate, Email: "john@example.com",
	}, "cred-2")
	var denied *domain.AccessDeniedError
	if !errors.As(err, &denied) {
		t.Fatalf("expected AccessDeniedError, got %v", err)
	}
	want := "Access denied: you can only update your own profile"
	if denied.Message != want {
		t.Errorf("expected message %q, got %q", want, denied.Message)
	}
	if users.byID[created.ID].Name != "John" {
		t.Error("denied update must not persist anything")
	}
}

func TestUserService_Update_MissingUserIsNotFoundNotDenied(t *testing.T) {
	svc, _, _, _ := newUserFixture()

	// Existence is checked before ownership: a 404 never turns into a 403.
	_, err := svc.Update(context.Background(), "missing", ports.UpdateUserInput{
		Name: "X", Email: "x@example.com",
	}, "cred-1")
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError for a missing user, got %v", err)
	}
}

func TestUserService_Update_EmailCollision(t *testing.T) {
	svc, _, _, _ := newUserFixture()
	a, _ := svc.Create(context.Background(), userInput("John", "john@example.com"), "cred-1")
	_, _ = svc.Create(context.Background(), userInput("Jane", "jane@example.com"), "cred-2")

	_, err := svc.Update(context.Background(), a.ID, ports.UpdateUserInput{
		Name: "John", Surname: "Doe", BirthDate: a.BirthDate, Email: "jane@example.com",
	}, "cred-1")
	var exists *domain.AlreadyExistsError
	if !errors.As(err, &exists) {
		t.Fatalf("expected AlreadyExistsError, got %v", err)
	}
	want := "Email 'jane@example.com' already in use"
	if exists.Message != want {
		t.Errorf("expected message %q, got %q", want, exists.Message)
	}
}

func TestUserService_Update_KeepingOwnEmailIsNotACollision(t *testing.T) {
	svc, _, _, _ := newUserFixture()
	created, _ := svc.Create(context.Background(), userInput("John", "john@example.com"), "cred-1")

	_, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{
		Name: "Johnny", Surname: "Doe", BirthDate: created.BirthDate, Email: "john@example.com",
	}, "cred-1")
	if err != nil {
		t.Errorf("keeping the same email must not collide with itself: %v", err)
	}
}

func TestUserService_Update_CredentialsIDImmutable(t *testing.T) {
	svc, users, _, _ := newUserFixture()
	created, _ := svc.Create(context.Background(), userInput("John", "john@example.com"), "cred-1")

	_, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{
		Name: "Johnny", Surname: "Doe", BirthDate: created.BirthDate, Email: "john@example.com",
	}, "cred-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users.byID[created.ID].CredentialsID != "cred-1" {
		t.Error("update must never change the owning credential")
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestUserService_Delete_Owner(t *testing.T) {
	svc, users, _, cache := newUserFixture()
	created, _ := svc.Create(context.Background(), userInput("John", "john@example.com"), "cred-1")

	// Populate both partitions so eviction is observable.
	_, _ = svc.GetByID(context.Background(), created.ID)
	_, _ = svc.GetByEmail(context.Background(), created.Email)

	if err := svc.Delete(context.Background(), created.ID, "cred-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := users.byID[created.ID]; ok {
		t.Error("user must be removed from the store")
	}
	if cache.has(ports.UserIDKey(created.ID)) {
		t.Error("delete must evict the id-keyed entry")
	}
	if cache.has(ports.UserEmailKey(created.Email)) {
		t.Error("delete must evict the email-keyed entry")
	}

	_, err := svc.GetByID(context.Background(), created.ID)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("read after delete must miss the cache and report not-found, got %v", err)
	}
}

func TestUserService_Delete_CascadesToCards(t *testing.T) {
	users := newStubUserRepo()
	cards := newStubCardRepo()
	cache := newStubCache()
	userSvc := NewUserService(users, cards, cache, discardLogger)
	cardSvc := NewCardService(cards, users, cache, discardLogger)

	created, _ := userSvc.Create(context.Background(), userInput("John", "john@example.com"), "cred-1")
	card, err := cardSvc.Create(context.Background(), ports.CreateCardInput{
		Number: "4111111111111111", Holder: "JOHN DOE", ExpirationDate: "12/30",
	}, "cred-1")
	if err != nil {
		t.Fatalf("card create: %v", err)
	}
	// Populate the card entry so its eviction is observable.
	if _, err := cardSvc.GetByID(context.Background(), card.ID); err != nil {
		t.Fatalf("card read: %v", err)
	}

	if err := userSvc.Delete(context.Background(), created.ID, "cred-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards.byID) != 0 {
		t.Errorf("expected all cards removed, %d remain", len(cards.byID))
	}
	if cache.has(ports.CardIDKey(card.ID)) {
		t.Error("cascading delete must evict the card entry too")
	}
}

func TestUserService_Delete_NonOwnerDenied(t *testing.T) {
	svc, users, _, _ := newUserFixture()
	created, _ := svc.Create(context.Background(), userInput("John", "john@example.com"), "cred-1")

	err := svc.Delete(context.Background(), created.ID, "cred-2")
	var denied *domain.AccessDeniedError
	if !errors.As(err, &denied) {
		t.Fatalf("expected AccessDeniedError, got %v", err)
	}
	want := "Access denied: you can only delete your own profile"
	if denied.Message != want {
		t.Errorf("expected message %q, got %q", want, denied.Message)
	}
	if _, ok := users.byID[created.ID]; !ok {
		t.Error("denied delete must not remove the user")
	}
}

func TestUserService_Delete_MissingUserIsNotFound(t *testing.T) {
	svc, _, _, _ := newUserFixture()

	err := svc.Delete(context.Background(), "missing", "cred-1")
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// End-to-end ownership round trip
// ---------------------------------------------------------------------------

func TestUserService_OwnershipRoundTrip(t *testing.T) {
	svc, _, _, _ := newUserFixture()

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:      "Max",
		Surname:   "Ivanov",
		BirthDate: time.Date(1985, 3, 7, 0, 0, 0, 0, time.UTC),
		Email:     "max@example.com",
	}, "100")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	fetched, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.Name != "Max" || fetched.Surname != "Ivanov" || fetched.Email != "max@example.com" {
		t.Errorf("fetched fields differ from created: %+v", fetched)
	}
	if !fetched.BirthDate.Equal(created.BirthDate) {
		t.Errorf("birth date changed across the round trip: %v vs %v", fetched.BirthDate, created.BirthDate)
	}

	// The creating credential can mutate; any other credential cannot.
	if _, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{
		Name: "Maxim", Surname: "Ivanov", BirthDate: created.BirthDate, Email: "max@example.com",
	}, "100"); err != nil {
		t.Errorf("owner update must succeed: %v", err)
	}

	var denied *domain.AccessDeniedError
	if _, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{
		Name: "Mallory", Surname: "Ivanov", BirthDate: created.BirthDate, Email: "max@example.com",
	}, "200"); !errors.As(err, &denied) {
		t.Errorf("foreign update must be denied, got %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID, "200"); !errors.As(err, &denied) {
		t.Errorf("foreign delete must be denied, got %v", err)
	}
}
