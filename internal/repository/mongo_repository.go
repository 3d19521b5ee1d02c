package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "weddingplanner/internal/errors"
	"weddingplanner/internal/model"
)

type mongoRecordRepository[T any, P RecordPtr[T]] struct {
	coll *mongo.Collection
	kind model.Kind
}

// NewMongoRecordRepository creates a MongoDB-backed repository for T. Each
// kind lives in the collection named by its Kind.
func NewMongoRecordRepository[T any, P RecordPtr[T]](db *mongo.Database) RecordRepository[T] {
	kind := P(new(T)).Kind()
	return &mongoRecordRepository[T, P]{coll: db.Collection(kind.Collection), kind: kind}
}

func (r *mongoRecordRepository[T, P]) Create(ctx context.Context, rec *T) error {
	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return apperrors.StoreError("insert "+r.kind.Collection, err)
	}
	return nil
}

func (r *mongoRecordRepository[T, P]) ListByOwner(ctx context.Context, ownerID string, limit int) ([]T, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user_id": ownerID}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, apperrors.StoreError("find "+r.kind.Collection, err)
	}
	defer cur.Close(ctx)

	records := make([]T, 0)
	if err := cur.All(ctx, &records); err != nil {
		return nil, apperrors.StoreError("find "+r.kind.Collection, err)
	}
	return records, nil
}

func (r *mongoRecordRepository[T, P]) Update(ctx context.Context, ownerID, id string, rec *T) (int64, error) {
	set, err := mutableDocument(rec)
	if err != nil {
		return 0, fmt.Errorf("encode %s: %w", r.kind.Collection, err)
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "user_id": ownerID}, bson.M{"$set": set})
	if err != nil {
		return 0, apperrors.StoreError("update "+r.kind.Collection, err)
	}
	return res.MatchedCount, nil
}

// mutableDocument encodes rec and strips the fields an update must not touch.
func mutableDocument(rec any) (bson.M, error) {
	raw, err := bson.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	delete(doc, "_id")
	for _, f := range model.ImmutableFields {
		delete(doc, f)
	}
	return doc, nil
}

type mongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository builds a MongoDB-backed user repository. Email
// uniqueness relies on the index created by db.EnsureMongoIndexes.
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{coll: db.Collection(model.UsersCollection)}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *model.User) error {
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicateIdentity
		}
		return apperrors.StoreError("insert users", err)
	}
	return nil
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.StoreError("find users", err)
	}
	return &user, nil
}
