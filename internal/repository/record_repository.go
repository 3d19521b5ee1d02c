package repository

import (
	"context"

	"gorm.io/gorm"

	apperrors "weddingplanner/internal/errors"
	"weddingplanner/internal/model"
)

// RecordPtr constrains P to be *T where *T is a resource record.
type RecordPtr[T any] interface {
	*T
	model.Record
}

// RecordRepository defines owner-scoped persistence for one resource kind.
// Every read and write is filtered by the owner's user id.
type RecordRepository[T any] interface {
	// Create persists rec as given; id, user_id and created_at must already be set.
	Create(ctx context.Context, rec *T) error
	// ListByOwner returns at most limit records owned by ownerID.
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]T, error)
	// Update replaces every mutable field of the record matching (id, ownerID)
	// and reports how many records were written. Zero is not an error.
	Update(ctx context.Context, ownerID, id string, rec *T) (int64, error)
}

type gormRecordRepository[T any, P RecordPtr[T]] struct {
	db   *gorm.DB
	kind model.Kind
}

// NewGormRecordRepository creates a GORM-backed repository for T.
func NewGormRecordRepository[T any, P RecordPtr[T]](db *gorm.DB) RecordRepository[T] {
	return &gormRecordRepository[T, P]{db: db, kind: P(new(T)).Kind()}
}

func (r *gormRecordRepository[T, P]) Create(ctx context.Context, rec *T) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return apperrors.StoreError("insert "+r.kind.Collection, err)
	}
	return nil
}

func (r *gormRecordRepository[T, P]) ListByOwner(ctx context.Context, ownerID string, limit int) ([]T, error) {
	records := make([]T, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, apperrors.StoreError("find "+r.kind.Collection, err)
	}
	return records, nil
}

func (r *gormRecordRepository[T, P]) Update(ctx context.Context, ownerID, id string, rec *T) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(P(new(T))).
		Where("id = ? AND user_id = ?", id, ownerID).
		Select("*").
		Omit(model.ImmutableFields...).
		Updates(rec)
	if res.Error != nil {
		return 0, apperrors.StoreError("update "+r.kind.Collection, res.Error)
	}
	return res.RowsAffected, nil
}
