package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "weddingplanner/internal/errors"
	"weddingplanner/internal/model"
)

// Redis key layout:
//
//	<collection>:<id>              JSON document
//	<collection>:owner:<user_id>   set of record ids
//	users:email:<email>            user id, claimed with SETNX
const ownerKeyInfix = ":owner:"

type redisRecordRepository[T any, P RecordPtr[T]] struct {
	client *redis.Client
	kind   model.Kind
}

// NewRedisRecordRepository creates a Redis-backed repository for T.
func NewRedisRecordRepository[T any, P RecordPtr[T]](client *redis.Client) RecordRepository[T] {
	return &redisRecordRepository[T, P]{client: client, kind: P(new(T)).Kind()}
}

func (r *redisRecordRepository[T, P]) docKey(id string) string {
	return r.kind.Collection + ":" + id
}

func (r *redisRecordRepository[T, P]) ownerKey(ownerID string) string {
	return r.kind.Collection + ownerKeyInfix + ownerID
}

func (r *redisRecordRepository[T, P]) Create(ctx context.Context, rec *T) error {
	owned := P(rec).Ownership()
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", r.kind.Collection, err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.docKey(owned.ID), payload, 0)
		pipe.SAdd(ctx, r.ownerKey(owned.UserID), owned.ID)
		return nil
	})
	if err != nil {
		return apperrors.StoreError("insert "+r.kind.Collection, err)
	}
	return nil
}

func (r *redisRecordRepository[T, P]) ListByOwner(ctx context.Context, ownerID string, limit int) ([]T, error) {
	ids, err := r.client.SMembers(ctx, r.ownerKey(ownerID)).Result()
	if err != nil {
		return nil, apperrors.StoreError("find "+r.kind.Collection, err)
	}
	records := make([]T, 0, min(len(ids), limit))
	if len(ids) == 0 {
		return records, nil
	}

	sort.Strings(ids)
	if len(ids) > limit {
		ids = ids[:limit]
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.docKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, apperrors.StoreError("find "+r.kind.Collection, err)
	}
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var rec T
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("decode %s: %w", r.kind.Collection, err)
		}
		if P(&rec).Ownership().UserID != ownerID {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *redisRecordRepository[T, P]) Update(ctx context.Context, ownerID, id string, rec *T) (int64, error) {
	raw, err := r.client.Get(ctx, r.docKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, apperrors.StoreError("find "+r.kind.Collection, err)
	}

	var existing T
	if err := json.Unmarshal(raw, &existing); err != nil {
		return 0, fmt.Errorf("decode %s: %w", r.kind.Collection, err)
	}
	if P(&existing).Ownership().UserID != ownerID {
		return 0, nil
	}

	*P(rec).Ownership() = *P(&existing).Ownership()
	payload, err := json.Marshal(rec)
	if err != nil {
		return 0, fmt.Errorf("marshal %s: %w", r.kind.Collection, err)
	}
	if err := r.client.Set(ctx, r.docKey(id), payload, 0).Err(); err != nil {
		return 0, apperrors.StoreError("update "+r.kind.Collection, err)
	}
	return 1, nil
}

// redisUserDocument carries the password hash, which model.User hides from JSON.
type redisUserDocument struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	PasswordHash string     `json:"password_hash"`
	WeddingDate  *time.Time `json:"wedding_date,omitempty"`
	PartnerName  *string    `json:"partner_name,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type redisUserRepository struct {
	client *redis.Client
}

// NewRedisUserRepository builds a Redis-backed user repository.
func NewRedisUserRepository(client *redis.Client) UserRepository {
	return &redisUserRepository{client: client}
}

func userKey(id string) string { return model.UsersCollection + ":" + id }
func userEmailKey(email string) string { return model.UsersCollection + ":email:" + email }

func (r *redisUserRepository) Create(ctx context.Context, user *model.User) error {
	payload, err := json.Marshal(redisUserDocument{
		ID:           user.ID,
		Email:        user.Email,
		FullName:     user.FullName,
		PasswordHash: user.PasswordHash,
		WeddingDate:  user.WeddingDate,
		PartnerName:  user.PartnerName,
		CreatedAt:    user.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	// The document is written before the email index points at it, so a
	// claimed email always resolves to a stored user.
	if err := r.client.Set(ctx, userKey(user.ID), payload, 0).Err(); err != nil {
		return apperrors.StoreError("insert users", err)
	}

	claimed, err := r.client.SetNX(ctx, userEmailKey(user.Email), user.ID, 0).Result()
	if err != nil {
		_ = r.client.Del(ctx, userKey(user.ID)).Err()
		return apperrors.StoreError("claim user email", err)
	}
	if !claimed {
		_ = r.client.Del(ctx, userKey(user.ID)).Err()
		return apperrors.ErrDuplicateIdentity
	}
	return nil
}

func (r *redisUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	id, err := r.client.Get(ctx, userEmailKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.StoreError("find users", err)
	}

	raw, err := r.client.Get(ctx, userKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.StoreError("find users", err)
	}

	var doc redisUserDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &model.User{
		ID:           doc.ID,
		Email:        doc.Email,
		FullName:     doc.FullName,
		PasswordHash: doc.PasswordHash,
		WeddingDate:  doc.WeddingDate,
		PartnerName:  doc.PartnerName,
		CreatedAt:    doc.CreatedAt,
	}, nil
}
