package handler

import (
	"net/http"

	"opinator/internal/delivery/http/response"
	"opinator/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-profile handlers. There is no Get
// endpoint: profiles are only listed or addressed through mutations.
type UserHandler struct {
	uc usecase.UserAppUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserAppUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List returns every user profile.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.FindAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// ListPaged returns one page of user profiles.
func (h *UserHandler) ListPaged(c echo.Context) error {
	users, err := h.uc.FindAllPaged(c.Request().Context(), bindListQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// Create registers the caller's profile. The email comes from the verified
// token, never from the body.
func (h *UserHandler) Create(c echo.Context) error {
	var input *usecase.SaveUserAppInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	user, err := h.uc.Save(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User created")
}

// Update rewrites the caller's own profile names. The email cannot change.
func (h *UserHandler) Update(c echo.Context) error {
	var input *usecase.UpdateUserAppInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	user, err := h.uc.Update(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated")
}

// Delete removes a user profile.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	removed, err := h.uc.DeleteByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deleteResult{Deleted: removed}, "")
}
