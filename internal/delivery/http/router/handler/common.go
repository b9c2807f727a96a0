// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	domainerrors "opinator/internal/domain/errors"
	"opinator/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// bindListQuery reads the paging parameters off the query string. Out-of-range
// values are accepted as-is; the service layer normalizes them.
func bindListQuery(c echo.Context) usecase.ListQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	return usecase.ListQuery{
		Page:    page,
		Size:    size,
		SortBy:  c.QueryParam("sortBy"),
		SortDir: c.QueryParam("sortDir"),
	}
}

// pathID parses the numeric :id path parameter. Failures surface through the
// error handler as a validation error.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be a number")
	}

	return id, nil
}

// deleteResult is the body returned by delete endpoints.
type deleteResult struct {
	Deleted bool `json:"deleted"`
}
