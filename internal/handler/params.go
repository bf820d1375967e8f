package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "kanban/internal/errors"
	"kanban/internal/repository"
)

// listingQuery reads the shared listing parameters from the query string.
// A zero id or boardId means "not given".
func listingQuery(c echo.Context) (repository.Query, error) {
	var (
		q       repository.Query
		id      uint
		boardID uint
	)
	err := echo.QueryParamsBinder(c).
		Uint("id", &id).
		Uint("boardId", &boardID).
		String("search", &q.Search).
		Int("page", &q.Page).
		Int("limit", &q.Limit).
		Bool("isFiltered", &q.Filtered).
		BindError()
	if err != nil {
		return q, err
	}
	if id != 0 {
		q.ID = &id
	}
	if boardID != 0 {
		q.BoardID = &boardID
	}
	return q, nil
}

// requiredID parses a positive integer query parameter. missing is returned
// when it is absent or zero.
func requiredID(c echo.Context, name string, missing *apperrors.AppError) (uint, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, missing
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperrors.Validation("Invalid %s", name)
	}
	if id == 0 {
		return 0, missing
	}
	return uint(id), nil
}
