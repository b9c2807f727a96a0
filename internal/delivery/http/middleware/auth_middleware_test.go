package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"opinator/internal/domain/service"
	mockSvc "opinator/internal/mocks/service"
	"opinator/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func invokeAuth(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/reviews", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var subject string
	next := func(c echo.Context) error {
		subject, _ = auth.SubjectFromContext(c.Request().Context())

		return c.NoContent(http.StatusOK)
	}

	m := NewAuthMiddleware(tokenSvc)
	require.NoError(t, m.Authenticate(next)(c))

	return rec, subject
}

func TestAuthenticate_PlacesEmailOnContext(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken(mock.Anything, "good-token").
		Return(&service.TokenClaims{Subject: "a@x.io", Email: "a@x.io"}, nil)

	rec, subject := invokeAuth(t, tokenSvc, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@x.io", subject)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, _ := invokeAuth(t, tokenSvc, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, _ := invokeAuth(t, tokenSvc, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken(mock.Anything, "bad-token").
		Return(nil, errors.New("signature is invalid"))

	rec, _ := invokeAuth(t, tokenSvc, "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_MissingEmailClaim(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken(mock.Anything, "no-email").
		Return(&service.TokenClaims{Subject: "123"}, nil)

	rec, _ := invokeAuth(t, tokenSvc, "Bearer no-email")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
