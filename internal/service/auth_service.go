package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"weddingplanner/internal/auth"
	apperrors "weddingplanner/internal/errors"
	"weddingplanner/internal/model"
	"weddingplanner/internal/repository"
)

// TokenType is returned alongside every access token.
const TokenType = "bearer"

// AuthService handles registration, login and bearer token resolution.
type AuthService interface {
	// Register creates a user and returns a token for it.
	Register(ctx context.Context, email, password string, profile model.Profile) (accessToken string, user *model.User, err error)
	// Login checks the password and returns a fresh token.
	Login(ctx context.Context, email, password string) (accessToken string, err error)
	// Authenticate resolves a bearer token to its user. Every token or
	// identity problem surfaces as ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	users    repository.UserRepository
	hasher   *auth.PasswordHasher
	tokens   *auth.JWTService
	tokenTTL time.Duration
	now      func() time.Time
	log      *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.JWTService, tokenTTL time.Duration, log *slog.Logger) AuthService {
	if log == nil {
		log = slog.Default()
	}
	return &authService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		now:      time.Now,
		log:      log,
	}
}

// Register creates a new user with a hashed password.
func (s *authService) Register(ctx context.Context, email, password string, profile model.Profile) (string, *model.User, error) {
	if strings.TrimSpace(email) == "" {
		return "", nil, apperrors.Validation("email is required")
	}
	if password == "" {
		return "", nil, apperrors.Validation("password is required")
	}
	if strings.TrimSpace(profile.FullName) == "" {
		return "", nil, apperrors.Validation("full_name is required")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", nil, apperrors.ErrDuplicateIdentity
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return "", nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return "", nil, apperrors.Validation(fmt.Sprintf("password must be at most %d bytes", auth.MaxPasswordBytes))
		}
		return "", nil, err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     profile.FullName,
		PasswordHash: hashed,
		WeddingDate:  profile.WeddingDate,
		PartnerName:  profile.PartnerName,
		CreatedAt:    s.now().UTC().Truncate(time.Millisecond),
	}
	// A concurrent registration may still win; Create reports it as a duplicate.
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateIdentity) {
			return "", nil, err
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.Email, s.tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", "user_id", user.ID)
	return token, user, nil
}

// Login authenticates a user and returns an access token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.hasher.VerifyMissing(password)
			s.log.InfoContext(ctx, "login rejected", "email", email)
			return "", apperrors.ErrUnauthorized
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		s.log.InfoContext(ctx, "login rejected", "email", email)
		return "", apperrors.ErrUnauthorized
	}

	token, err := s.tokens.Issue(user.Email, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Authenticate verifies token and loads the user it names.
func (s *authService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthorized
	}

	subject, err := s.tokens.Verify(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", "reason", err)
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.users.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.log.DebugContext(ctx, "token rejected", "reason", "unknown subject")
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("resolve token subject: %w", err)
	}
	return user, nil
}
