package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	apperrors "weddingplanner/internal/errors"
	"weddingplanner/internal/model"
)

type backend struct {
	name  string
	repos func(t *testing.T) *Repositories
}

func backends() []backend {
	return []backend{
		{name: "gorm", repos: newGormRepos},
		{name: "redis", repos: newRedisRepos},
	}
}

func newGormRepos(t *testing.T) *Repositories {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Budget{}, &model.Guest{}, &model.Vendor{}, &model.Task{}, &model.Venue{}))
	return NewGormRepositories(db)
}

func newRedisRepos(t *testing.T) *Repositories {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRepositories(client)
}

func newOwned(ownerID string) model.Owned {
	return model.Owned{
		ID:        uuid.NewString(),
		UserID:    ownerID,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func normalizeBudgets(budgets []model.Budget) []model.Budget {
	for i := range budgets {
		budgets[i].CreatedAt = budgets[i].CreatedAt.UTC()
	}
	return budgets
}

func strPtr(s string) *string { return &s }

func amount(v float64) *float64 { return &v }

func TestUserRepository(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			repos := b.repos(t)
			ctx := context.Background()

			user := &model.User{
				ID:           uuid.NewString(),
				Email:        "ana@example.com",
				FullName:     "Ana Lima",
				PasswordHash: "$2a$10$hash",
				PartnerName:  strPtr("Rui"),
				CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
			}
			require.NoError(t, repos.Users.Create(ctx, user))

			found, err := repos.Users.FindByEmail(ctx, "ana@example.com")
			require.NoError(t, err)
			assert.Equal(t, user.ID, found.ID)
			assert.Equal(t, "Ana Lima", found.FullName)
			assert.Equal(t, "$2a$10$hash", found.PasswordHash)
			require.NotNil(t, found.PartnerName)
			assert.Equal(t, "Rui", *found.PartnerName)

			_, err = repos.Users.FindByEmail(ctx, "ANA@example.com")
			assert.ErrorIs(t, err, apperrors.ErrNotFound)

			dup := *user
			dup.ID = uuid.NewString()
			err = repos.Users.Create(ctx, &dup)
			assert.ErrorIs(t, err, apperrors.ErrDuplicateIdentity)

			again, err := repos.Users.FindByEmail(ctx, "ana@example.com")
			require.NoError(t, err)
			assert.Equal(t, user.ID, again.ID)
		})
	}
}

func TestRecordRepository_CreateAndList(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			repos := b.repos(t)
			ctx := context.Background()

			budget := &model.Budget{
				Owned:         newOwned("owner-a"),
				Category:      "flowers",
				PlannedAmount: amount(5000),
				Vendor:        strPtr("Bloom"),
			}
			require.NoError(t, repos.Budgets.Create(ctx, budget))

			listed, err := repos.Budgets.ListByOwner(ctx, "owner-a", 1000)
			require.NoError(t, err)
			require.Len(t, listed, 1)
			assert.Equal(t, *budget, normalizeBudgets(listed)[0])

			again, err := repos.Budgets.ListByOwner(ctx, "owner-a", 1000)
			require.NoError(t, err)
			assert.ElementsMatch(t, listed, normalizeBudgets(again))
		})
	}
}

func TestRecordRepository_ScopedByOwner(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			repos := b.repos(t)
			ctx := context.Background()

			guest := &model.Guest{Owned: newOwned("owner-a"), Name: "Ben", RSVPStatus: "pending"}
			require.NoError(t, repos.Guests.Create(ctx, guest))

			others, err := repos.Guests.ListByOwner(ctx, "owner-b", 1000)
			require.NoError(t, err)
			assert.NotNil(t, others)
			assert.Empty(t, others)

			n, err := repos.Guests.Update(ctx, "owner-b", guest.ID, &model.Guest{Name: "Hijacked", RSVPStatus: "declined"})
			require.NoError(t, err)
			assert.Zero(t, n)

			listed, err := repos.Guests.ListByOwner(ctx, "owner-a", 1000)
			require.NoError(t, err)
			require.Len(t, listed, 1)
			assert.Equal(t, "Ben", listed[0].Name)
			assert.Equal(t, "pending", listed[0].RSVPStatus)
		})
	}
}

func TestRecordRepository_UpdateReplacesMutableFields(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			repos := b.repos(t)
			ctx := context.Background()

			task := &model.Task{
				Owned:      newOwned("owner-a"),
				Title:      "Book DJ",
				Category:   "music",
				Priority:   "high",
				AssignedTo: strPtr("Rui"),
			}
			require.NoError(t, repos.Tasks.Create(ctx, task))

			replacement := &model.Task{
				Owned:     model.Owned{ID: "client-id", UserID: "owner-b"},
				Title:     "Book band",
				Category:  "music",
				Priority:  "medium",
				Completed: true,
			}
			n, err := repos.Tasks.Update(ctx, "owner-a", task.ID, replacement)
			require.NoError(t, err)
			assert.EqualValues(t, 1, n)

			listed, err := repos.Tasks.ListByOwner(ctx, "owner-a", 1000)
			require.NoError(t, err)
			require.Len(t, listed, 1)
			got := listed[0]
			assert.Equal(t, task.ID, got.ID)
			assert.Equal(t, "owner-a", got.UserID)
			assert.True(t, task.CreatedAt.Equal(got.CreatedAt))
			assert.Equal(t, "Book band", got.Title)
			assert.True(t, got.Completed)
			assert.Nil(t, got.AssignedTo, "full replacement clears omitted optional fields")
		})
	}
}

func TestRecordRepository_UpdateUnknownID(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			repos := b.repos(t)

			n, err := repos.Venues.Update(context.Background(), "owner-a", uuid.NewString(), &model.Venue{Name: "x", VenueType: "y", Address: "z"})
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}

func TestRecordRepository_ListLimit(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			repos := b.repos(t)
			ctx := context.Background()

			for i := 0; i < 5; i++ {
				v := &model.Vendor{Owned: newOwned("owner-a"), Name: fmt.Sprintf("vendor-%d", i), Category: "catering", Status: "researching"}
				require.NoError(t, repos.Vendors.Create(ctx, v))
			}

			listed, err := repos.Vendors.ListByOwner(ctx, "owner-a", 3)
			require.NoError(t, err)
			assert.Len(t, listed, 3)
		})
	}
}

func TestRedisRepository_StoreUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	repos := NewRedisRepositories(client)
	mr.Close()

	_, err := repos.Budgets.ListByOwner(context.Background(), "owner-a", 10)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)

	_, err = repos.Users.FindByEmail(context.Background(), "ana@example.com")
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

func TestRedisUserRepository_EmailClaimPointsAtStoredDocument(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	repos := NewRedisRepositories(client)
	ctx := context.Background()

	winner := &model.User{ID: uuid.NewString(), Email: "ana@example.com", FullName: "Ana", PasswordHash: "$2a$10$a"}
	require.NoError(t, repos.Users.Create(ctx, winner))

	claimed, err := mr.Get("users:email:ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, winner.ID, claimed)
	assert.True(t, mr.Exists("users:"+winner.ID))

	loser := &model.User{ID: uuid.NewString(), Email: "ana@example.com", FullName: "Other", PasswordHash: "$2a$10$b"}
	err = repos.Users.Create(ctx, loser)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateIdentity)
	assert.False(t, mr.Exists("users:"+loser.ID), "losing document is removed")

	claimed, err = mr.Get("users:email:ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, winner.ID, claimed)
}

func TestMutableDocumentStripsImmutableFields(t *testing.T) {
	doc, err := mutableDocument(&model.Budget{
		Owned:         model.Owned{ID: "b-1", UserID: "u-1", CreatedAt: time.Now()},
		Category:      "cake",
		PlannedAmount: amount(300),
	})
	require.NoError(t, err)

	assert.NotContains(t, doc, "id")
	assert.NotContains(t, doc, "user_id")
	assert.NotContains(t, doc, "created_at")
	assert.Equal(t, "cake", doc["category"])
	assert.Equal(t, 300.0, doc["planned_amount"])
	assert.Contains(t, doc, "vendor")
}
