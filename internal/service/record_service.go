package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "weddingplanner/internal/errors"
	"weddingplanner/internal/model"
	"weddingplanner/internal/repository"
)

// RecordService exposes the owner-scoped operations shared by every
// resource kind.
type RecordService[T any] interface {
	// Create stamps a new id, the owner and the creation time onto rec and
	// stores it. Create is not idempotent and is never retried.
	Create(ctx context.Context, ownerID string, rec *T) (*T, error)
	// List returns the owner's records, capped at the configured limit.
	List(ctx context.Context, ownerID string) ([]T, error)
	// Update replaces the mutable fields of the owner's record id. A record
	// that does not exist or belongs to someone else is left alone and the
	// call still succeeds.
	Update(ctx context.Context, ownerID, id string, rec *T) error
	// Kind reports which resource kind this service manages.
	Kind() model.Kind
}

type recordService[T any, P repository.RecordPtr[T]] struct {
	repo  repository.RecordRepository[T]
	kind  model.Kind
	limit int
	now   func() time.Time
	log   *slog.Logger
}

// NewRecordService builds a RecordService for T over repo.
func NewRecordService[T any, P repository.RecordPtr[T]](repo repository.RecordRepository[T], limit int, log *slog.Logger) RecordService[T] {
	if log == nil {
		log = slog.Default()
	}
	kind := P(new(T)).Kind()
	return &recordService[T, P]{
		repo:  repo,
		kind:  kind,
		limit: limit,
		now:   time.Now,
		log:   log.With("kind", kind.Collection),
	}
}

func (s *recordService[T, P]) Kind() model.Kind { return s.kind }

func (s *recordService[T, P]) Create(ctx context.Context, ownerID string, rec *T) (*T, error) {
	if ownerID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	p := P(rec)
	p.ApplyDefaults()
	*p.Ownership() = model.Owned{
		ID:        uuid.NewString(),
		UserID:    ownerID,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create %s: %w", s.kind.Collection, err)
	}
	return rec, nil
}

func (s *recordService[T, P]) List(ctx context.Context, ownerID string) ([]T, error) {
	if ownerID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	records, err := s.repo.ListByOwner(ctx, ownerID, s.limit)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.kind.Collection, err)
	}
	return records, nil
}

func (s *recordService[T, P]) Update(ctx context.Context, ownerID, id string, rec *T) error {
	if ownerID == "" {
		return apperrors.ErrUnauthorized
	}
	if strings.TrimSpace(id) == "" {
		return apperrors.Validation("id is required")
	}

	p := P(rec)
	p.ApplyDefaults()
	*p.Ownership() = model.Owned{}

	written, err := s.repo.Update(ctx, ownerID, id, rec)
	if err != nil {
		return fmt.Errorf("update %s: %w", s.kind.Collection, err)
	}
	if written == 0 {
		s.log.DebugContext(ctx, "update matched no record", "owner_id", ownerID, "id", id)
	}
	return nil
}

// RecordServices bundles one RecordService per resource kind.
type RecordServices struct {
	Budgets RecordService[model.Budget]
	Guests  RecordService[model.Guest]
	Vendors RecordService[model.Vendor]
	Tasks   RecordService[model.Task]
	Venues  RecordService[model.Venue]
}

// NewRecordServices builds a service for every kind in repos.
func NewRecordServices(repos *repository.Repositories, limit int, log *slog.Logger) *RecordServices {
	return &RecordServices{
		Budgets: NewRecordService[model.Budget](repos.Budgets, limit, log),
		Guests:  NewRecordService[model.Guest](repos.Guests, limit, log),
		Vendors: NewRecordService[model.Vendor](repos.Vendors, limit, log),
		Tasks:   NewRecordService[model.Task](repos.Tasks, limit, log),
		Venues:  NewRecordService[model.Venue](repos.Venues, limit, log),
	}
}
