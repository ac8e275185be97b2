package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/internship/user-service/internal/api/metrics"
	"github.com/internship/user-service/internal/core/domain"
)

const collectionCards = "cards"

type CardRepository struct {
	col *mongo.Collection
}

func NewCardRepository(db *mongo.Database) *CardRepository {
	return &CardRepository{col: db.Collection(collectionCards)}
}

type cardDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserID         string             `bson:"user_id"`
	Number         string             `bson:"number"`
	Holder         string             `bson:"holder"`
	ExpirationDate string             `bson:"expiration_date"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func toCardDoc(c *domain.CardInfo) cardDoc {
	return cardDoc{
		UserID:         c.UserID,
		Number:         c.Number,
		Holder:         c.Holder,
		ExpirationDate: c.ExpirationDate,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (d cardDoc) toDomain() *domain.CardInfo {
	return &domain.CardInfo{
		ID:             d.ID.Hex(),
		UserID:         d.UserID,
		Number:         d.Number,
		Holder:         d.Holder,
		ExpirationDate: d.ExpirationDate,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// Create inserts a new card. The unique index on number turns a lost
// pre-check race into a domain AlreadyExistsError.
func (r *CardRepository) Create(ctx context.Context, c *domain.CardInfo) (*domain.CardInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toCardDoc(c))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.AlreadyExists("Card number '%s' already exists", c.Number)
		}
		return nil, err
	}

	metrics.EntityWritesTotal.WithLabelValues("cards", "create").Inc()

	created := *c
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CardRepository) FindByID(ctx context.Context, id string) (*domain.CardInfo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.NotFound("Card id=%s not found", id)
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var doc cardDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("Card id=%s not found", id)
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// FindAllByIDs returns the cards matching the given ids. Malformed or
// unknown ids are skipped, not reported.
func (r *CardRepository) FindAllByIDs(ctx context.Context, ids []string) ([]*domain.CardInfo, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return nil, nil
	}
	return r.findMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (r *CardRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.CardInfo, error) {
	return r.findMany(ctx, bson.M{"user_id": userID})
}

func (r *CardRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.CardInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var cards []*domain.CardInfo
	for cur.Next(ctx) {
		var doc cardDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		cards = append(cards, doc.toDomain())
	}
	return cards, cur.Err()
}

func (r *CardRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.col.FindOne(ctx, bson.M{"number": number}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *CardRepository) Update(ctx context.Context, c *domain.CardInfo) error {
	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return domain.NotFound("Card id=%s not found", c.ID)
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, toCardDoc(c))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.AlreadyExists("Card number '%s' already exists", c.Number)
		}
		return err
	}
	if res.MatchedCount == 0 {
		return domain.NotFound("Card id=%s not found", c.ID)
	}

	metrics.EntityWritesTotal.WithLabelValues("cards", "update").Inc()
	return nil
}

func (r *CardRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.NotFound("Card id=%s not found", id)
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.NotFound("Card id=%s not found", id)
	}

	metrics.EntityWritesTotal.WithLabelValues("cards", "delete").Inc()
	return nil
}

// DeleteByUserID removes every card belonging to userID and returns the
// number removed. Backs the cascading delete of a user.
func (r *CardRepository) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	if res.DeletedCount > 0 {
		metrics.EntityWritesTotal.WithLabelValues("cards", "delete").Add(float64(res.DeletedCount))
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the indexes the uniqueness invariant and the
// by-user lookups rely on.
func (r *CardRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
