package handler

import (
	"net/http"

	"opinator/internal/delivery/http/response"
	"opinator/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VoteHandler holds dependencies for vote-related handlers.
type VoteHandler struct {
	uc usecase.VoteUsecase
}

// NewVoteHandler is the constructor for VoteHandler, injected by Fx.
func NewVoteHandler(uc usecase.VoteUsecase) *VoteHandler {
	return &VoteHandler{uc: uc}
}

// List returns every vote.
func (h *VoteHandler) List(c echo.Context) error {
	votes, err := h.uc.FindAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, votes, "")
}

// ListPaged returns one page of votes.
func (h *VoteHandler) ListPaged(c echo.Context) error {
	votes, err := h.uc.FindAllPaged(c.Request().Context(), bindListQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, votes, "")
}

// Get returns a single vote by id.
func (h *VoteHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	vote, err := h.uc.FindByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vote, "")
}

// Create registers the caller's usefulness vote on a review. The voter is
// taken from the verified token, never from the body.
func (h *VoteHandler) Create(c echo.Context) error {
	var input *usecase.SaveVoteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vote input")
	}

	vote, err := h.uc.Save(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, vote, "Vote created")
}

// Update flips the caller's own vote.
func (h *VoteHandler) Update(c echo.Context) error {
	var input *usecase.UpdateVoteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vote input")
	}

	vote, err := h.uc.Update(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vote, "Vote updated")
}

// Delete removes the caller's own vote.
func (h *VoteHandler) Delete(c echo.Context) error {
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
