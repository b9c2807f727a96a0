package middleware

import (
	"net/http"
	"strings"

	"opinator/internal/domain/service"
	"opinator/internal/infra/auth"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware verifies the bearer token and places the caller's verified
// email on the request context for the service layer's IdentitySource.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the JWT access token on protected routes.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateToken(c.Request().Context(), tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}
		if claims.Email == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Email claim missing from token"})
		}

		ctx := auth.WithSubject(c.Request().Context(), claims.Email)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
