package handler

import (
	"net/http"

	"opinator/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// AuthHandler holds handlers for the OAuth redirect leg.
type AuthHandler struct{}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Callback receives the authorization-server redirect and hands the code and
// state back to the caller. Token exchange happens at the gateway, not here.
func (h *AuthHandler) Callback(c echo.Context) error {
	code := c.QueryParam("code")
	state := c.QueryParam("state")
	if code == "" {
		return response.BindingError(c, "INVALID_INPUT", "authorization code is missing")
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"authorizationCode": code,
		"state":             state,
	}, "Authorization code received")
}
