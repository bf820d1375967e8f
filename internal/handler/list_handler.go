package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "kanban/internal/errors"
	"kanban/internal/middleware"
	"kanban/internal/response"
	"kanban/internal/service"
)

// ListHandler handles list endpoints.
type ListHandler struct {
	listService service.ListService
}

// NewListHandler creates a new list handler.
func NewListHandler(listService service.ListService) *ListHandler {
	return &ListHandler{listService: listService}
}

// CreateListRequest represents a new list.
type CreateListRequest struct {
	ListName string `json:"listName" validate:"required,min=3,max=20"`
	BoardID  uint   `json:"boardId" validate:"required,min=1"`
}

// UpdateListRequest represents a list rename.
type UpdateListRequest struct {
	ListName *string `json:"listName" validate:"omitempty,min=3,max=20"`
}

// List godoc
// @Summary List lists
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Param id query int false "List ID"
// @Param boardId query int false "Board ID"
// @Param search query string false "Case-insensitive name filter"
// @Param page query int false "Page, from 0"
// @Param limit query int false "Page size" default(10)
// @Param isFiltered query bool false "Disable paging"
// @Success 200 {object} response.Envelope{data=[]model.List}
// @Failure 404 {object} response.Envelope
// @Router /list [get]
func (h *ListHandler) List(c echo.Context) error {
	q, err := listingQuery(c)
	if err != nil {
		return err
	}
	lists, err := h.listService.List(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return response.OK(c, lists)
}

// Create godoc
// @Summary Append a list to a board
// @Tags lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateListRequest true "List"
// @Success 200 {object} response.Envelope{data=model.List}
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /list [post]
func (h *ListHandler) Create(c echo.Context) error {
	var req CreateListRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	list, err := h.listService.Create(c.Request().Context(), middleware.UserID(c), req.ListName, req.BoardID)
	if err != nil {
		return err
	}
	return response.OK(c, list)
}

// Update godoc
// @Summary Rename a list
// @Tags lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query int true "List ID"
// @Param request body UpdateListRequest true "New name"
// @Success 200 {object} response.Envelope{data=model.List}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /list [put]
func (h *ListHandler) Update(c echo.Context) error {
	var req UpdateListRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return err
	}
	if req.ListName == nil {
		return apperrors.Precondition("API Missing body")
	}
	listID, err := requiredID(c, "id", apperrors.Validation("ListId is required"))
	if err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	list, err := h.listService.Update(c.Request().Context(), middleware.UserID(c), listID, *req.ListName)
	if err != nil {
		return err
	}
	return response.OK(c, list)
}

// Delete godoc
// @Summary Delete a list
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Param id query int true "List ID"
// @Success 200 {object} response.Envelope{data=string}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /list [delete]
func (h *ListHandler) Delete(c echo.Context) error {
	listID, err := requiredID(c, "id", apperrors.Validation("List ID is required"))
	if err != nil {
		return err
	}
	if err := h.listService.Delete(c.Request().Context(), middleware.UserID(c), listID); err != nil {
		return err
	}
	return response.OK(c, "Deleted Successfully")
}
