package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.Issue("ana@example.com", time.Minute)
	require.NoError(t, err)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", subject)
}

func TestJWTService_ZeroTTLIsExpired(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.Issue("ana@example.com", 0)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_ExpiresAfterTTL(t *testing.T) {
	issuedAt := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	current := issuedAt
	svc := NewJWTService("test-secret").WithClock(func() time.Time { return current })

	token, err := svc.Issue("ana@example.com", 30*time.Minute)
	require.NoError(t, err)

	current = issuedAt.Add(29 * time.Minute)
	_, err = svc.Verify(token)
	assert.NoError(t, err)

	current = issuedAt.Add(30 * time.Minute)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	svc := NewJWTService("test-secret")
	other := NewJWTService("other-secret")

	foreign, err := other.Issue("ana@example.com", time.Minute)
	require.NoError(t, err)

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "ana@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}})
	wrongAlg, err := hs512.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject: "ana@example.com",
	}})
	unbounded, err := noExpiry.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}})
	anonymous, err := noSubject.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	valid, err := svc.Issue("ana@example.com", time.Minute)
	require.NoError(t, err)
	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := map[string]string{
		"garbage":        "not-a-token",
		"empty":          "",
		"foreign secret": foreign,
		"wrong alg":      wrongAlg,
		"no expiry":      unbounded,
		"no subject":     anonymous,
		"tampered":       tampered,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestJWTService_IssueRequiresSubject(t *testing.T) {
	_, err := NewJWTService("test-secret").Issue("", time.Minute)
	assert.Error(t, err)
}
