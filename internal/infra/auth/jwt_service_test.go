package auth

import (
	"context"
	"testing"
	"time"

	"opinator/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key_very_long_for_testing"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func newTestService(t *testing.T, issuer string) *jwtService {
	t.Helper()

	cfg := &config.Config{JWT: &config.JWTConfig{Secret: testSecret, Issuer: issuer}}
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc := newTestService(t, "")

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "a@x.io",
		"email": "a@x.io",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := svc.ValidateToken(context.Background(), tokenString)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "a@x.io", claims.Email)
	assert.Equal(t, "a@x.io", claims.Subject)
}

func TestJWTService_SubjectFallback(t *testing.T) {
	svc := newTestService(t, "")

	// No dedicated email claim; subject carries the address.
	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub": "b@x.io",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := svc.ValidateToken(context.Background(), tokenString)
	assert.NoError(t, err)
	assert.Equal(t, "b@x.io", claims.Email)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestService(t, "")

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub": "a@x.io",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	claims, err := svc.ValidateToken(context.Background(), tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := newTestService(t, "")

	tokenString := signToken(t, "some_other_secret_entirely", jwt.MapClaims{
		"sub": "a@x.io",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := svc.ValidateToken(context.Background(), tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsWrongIssuer(t *testing.T) {
	svc := newTestService(t, "https://auth.example.com")

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub": "a@x.io",
		"iss": "https://rogue.example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := svc.ValidateToken(context.Background(), tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsMissingEmail(t *testing.T) {
	svc := newTestService(t, "")

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := svc.ValidateToken(context.Background(), tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
