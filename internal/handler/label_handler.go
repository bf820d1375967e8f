package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "kanban/internal/errors"
	"kanban/internal/middleware"
	"kanban/internal/model"
	"kanban/internal/response"
	"kanban/internal/service"
)

// LabelHandler handles label endpoints.
type LabelHandler struct {
	labelService service.LabelService
}

// NewLabelHandler creates a new label handler.
func NewLabelHandler(labelService service.LabelService) *LabelHandler {
	return &LabelHandler{labelService: labelService}
}

// CreateLabelRequest represents a new label.
type CreateLabelRequest struct {
	LabelName string `json:"labelName" validate:"required,min=3,max=20"`
	Color     string `json:"color" validate:"required"`
	BoardID   uint   `json:"boardId" validate:"required,min=1"`
}

// UpdateLabelRequest represents a label edit.
type UpdateLabelRequest struct {
	ID        *uint   `json:"id"`
	LabelName *string `json:"labelName" validate:"omitempty,min=3,max=20"`
	Color     *string `json:"color" validate:"omitempty,min=1"`
	BoardID   *uint   `json:"boardId" validate:"omitempty,min=1"`
}

// LabelQueryBody is the listing filter accepted in a GET body.
type LabelQueryBody struct {
	ID         *uint  `json:"id"`
	BoardID    *uint  `json:"boardId"`
	Search     string `json:"search"`
	Page       *int   `json:"page"`
	Limit      *int   `json:"limit"`
	IsFiltered *bool  `json:"isFiltered"`
}

// List godoc
// @Summary List labels of a board
// @Description Filters may be sent in the query string or, as older clients do, in the request body.
// @Tags labels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query int true "Label ID"
// @Param boardId query int true "Board ID"
// @Param search query string false "Case-insensitive name filter"
// @Param page query int false "Page, from 0"
// @Param limit query int false "Page size" default(10)
// @Param isFiltered query bool false "Disable paging"
// @Success 200 {object} response.Envelope{data=[]model.Label}
// @Failure 400 {object} response.Envelope
// @Router /label [get]
func (h *LabelHandler) List(c echo.Context) error {
	q, err := listingQuery(c)
	if err != nil {
		return err
	}

	if c.Request().ContentLength > 0 {
		var body LabelQueryBody
		if err := (&echo.DefaultBinder{}).BindBody(c, &body); err != nil {
			return err
		}
		if body.ID != nil && *body.ID != 0 {
			q.ID = body.ID
		}
		if body.BoardID != nil && *body.BoardID != 0 {
			q.BoardID = body.BoardID
		}
		if body.Search != "" {
			q.Search = body.Search
		}
		if body.Page != nil {
			q.Page = *body.Page
		}
		if body.Limit != nil {
			q.Limit = *body.Limit
		}
		if body.IsFiltered != nil {
			q.Filtered = *body.IsFiltered
		}
	}

	labels, err := h.labelService.List(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return response.OK(c, labels)
}

// Create godoc
// @Summary Create a label on a board
// @Tags labels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateLabelRequest true "Label"
// @Success 200 {object} response.Envelope{data=model.Label}
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /label [post]
func (h *LabelHandler) Create(c echo.Context) error {
	var req CreateLabelRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	label, err := h.labelService.Create(c.Request().Context(), middleware.UserID(c), service.CreateLabelInput{
		LabelName: req.LabelName,
		Color:     req.Color,
		BoardID:   req.BoardID,
	})
	if err != nil {
		return err
	}
	return response.OK(c, label)
}

// Update godoc
// @Summary Edit a label
// @Tags labels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateLabelRequest true "Label fields; id and boardId are required"
// @Success 200 {object} response.Envelope{data=model.Label}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /label [put]
func (h *LabelHandler) Update(c echo.Context) error {
	var req UpdateLabelRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return err
	}
	if req.ID == nil && req.LabelName == nil && req.Color == nil && req.BoardID == nil {
		return apperrors.Precondition("API Missing body")
	}
	if req.ID == nil || *req.ID == 0 {
		return apperrors.Validation("LabelId is required")
	}
	if req.BoardID == nil {
		return apperrors.Validation("BoardId is required")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	label, err := h.labelService.Update(c.Request().Context(), middleware.UserID(c), *req.ID, model.LabelPatch{
		LabelName: req.LabelName,
		Color:     req.Color,
		BoardID:   req.BoardID,
	})
	if err != nil {
		return err
	}
	return response.OK(c, label)
}

// Delete godoc
// @Summary Delete by id
// @Description Removes the list with the given id after checking the caller may edit its board.
// @Tags labels
// @Produce json
// @Security BearerAuth
// @Param id query int true "ID"
// @Success 200 {object} response.Envelope{data=string}
// @Failure 400 {object} response.Envelope
// @Router /label [delete]
func (h *LabelHandler) Delete(c echo.Context) error {
	id, err := requiredID(c, "id", apperrors.Validation("LabelId is required"))
	if err != nil {
		return err
	}
	if err := h.labelService.Delete(c.Request().Context(), middleware.UserID(c), id); err != nil {
		return err
	}
	return response.OK(c, "Label Deleted Successfully")
}
