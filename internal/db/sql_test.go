package db

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"weddingplanner/internal/config"
	"weddingplanner/internal/model"
)

func TestNewSQL_UnsupportedDriver(t *testing.T) {
	_, err := NewSQL("postgres", "irrelevant", nil)
	assert.ErrorContains(t, err, "unsupported sql driver")
}

func TestNewSQL_LogsWithoutBindValues(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	gormDB, err := NewSQL(config.DriverSQLite, filepath.Join(t.TempDir(), "log.db"), log)
	require.NoError(t, err)
	require.NoError(t, Migrate(gormDB, false))

	const (
		email = "private.person@example.com"
		hash  = "$2a$10$abcdefghijklmnopqrstuvCDEFGHIJKLMNOPQRSTUVWXYZ012345"
	)
	newUser := func(id string) *model.User {
		return &model.User{
			ID:           id,
			Email:        email,
			FullName:     "Private Person",
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		}
	}

	require.NoError(t, gormDB.Create(newUser("11111111-1111-1111-1111-111111111111")).Error)
	err = gormDB.Create(newUser("22222222-2222-2222-2222-222222222222")).Error
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var missing model.User
	err = gormDB.Where("email = ?", "nobody@example.com").First(&missing).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	out := buf.String()
	assert.NotEmpty(t, out, "the failed insert is logged")
	assert.NotContains(t, out, email)
	assert.NotContains(t, out, hash)
	assert.NotContains(t, out, "nobody@example.com")
	assert.NotContains(t, out, "record not found")
}
