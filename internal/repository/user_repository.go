package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "weddingplanner/internal/errors"
	"weddingplanner/internal/model"
)

// UserRepository defines persistence operations for user identities.
type UserRepository interface {
	// Create inserts user. It fails with ErrDuplicateIdentity when the email
	// is already taken.
	Create(ctx context.Context, user *model.User) error
	// FindByEmail fails with ErrNotFound when no user has that email.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository. The db must be opened
// with TranslateError so unique violations surface as gorm.ErrDuplicatedKey.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrDuplicateIdentity
		}
		return apperrors.StoreError("insert users", err)
	}
	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.StoreError("find users", err)
	}
	return &user, nil
}
