package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "kanban/internal/errors"
	"kanban/internal/middleware"
	"kanban/internal/model"
	"kanban/internal/response"
	"kanban/internal/service"
)

// BoardHandler handles board and like endpoints.
type BoardHandler struct {
	boardService service.BoardService
}

// NewBoardHandler creates a new board handler.
func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

// CreateBoardRequest represents a new board.
type CreateBoardRequest struct {
	Title         string           `json:"title" validate:"required,min=1,max=25"`
	Visibility    model.Visibility `json:"visibility" validate:"required,oneof=PRIVATE PUBLIC"`
	BackgroundImg string           `json:"backgroundImg" validate:"required,url"`
}

// UpdateBoardRequest represents a partial board update.
type UpdateBoardRequest struct {
	Title         *string           `json:"title" validate:"omitempty,min=1,max=25"`
	Visibility    *model.Visibility `json:"visibility" validate:"omitempty,oneof=PRIVATE PUBLIC"`
	BackgroundImg *string           `json:"backgroundImg" validate:"omitempty,url"`
	Archived      *bool             `json:"archived"`
}

// LikedResponse reports whether a user likes a board.
type LikedResponse struct {
	Liked bool `json:"liked"`
}

// List godoc
// @Summary List boards
// @Description With isFiltered=true paging is ignored and boards are returned as {id,name,value}.
// @Tags boards
// @Produce json
// @Security BearerAuth
// @Param id query int false "Board ID"
// @Param search query string false "Case-insensitive title filter"
// @Param page query int false "Page, from 0"
// @Param limit query int false "Page size" default(10)
// @Param isFiltered query bool false "Lookup mode"
// @Success 200 {object} response.Envelope{data=[]model.Board}
// @Failure 401 {object} response.Envelope
// @Router /board [get]
func (h *BoardHandler) List(c echo.Context) error {
	q, err := listingQuery(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	if q.Filtered {
		options, err := h.boardService.Options(ctx, q)
		if err != nil {
			return err
		}
		return response.OK(c, options)
	}
	boards, err := h.boardService.List(ctx, q)
	if err != nil {
		return err
	}
	return response.OK(c, boards)
}

// IsLiked godoc
// @Summary Report whether a user likes a board
// @Tags boards
// @Produce json
// @Security BearerAuth
// @Param boardId query int true "Board ID"
// @Param userId query int true "User ID"
// @Success 200 {object} response.Envelope{data=LikedResponse}
// @Failure 400 {object} response.Envelope
// @Router /board/is-liked [get]
func (h *BoardHandler) IsLiked(c echo.Context) error {
	boardID, err := requiredID(c, "boardId", apperrors.Validation("BoardId is missing"))
	if err != nil {
		return err
	}
	userID, err := requiredID(c, "userId", apperrors.Validation("UserId is missing"))
	if err != nil {
		return err
	}

	liked, err := h.boardService.IsLiked(c.Request().Context(), boardID, userID)
	if err != nil {
		return err
	}
	return response.OK(c, LikedResponse{Liked: liked})
}

// Create godoc
// @Summary Create a board
// @Description The caller becomes the owner and an ADMIN member.
// @Tags boards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBoardRequest true "Board"
// @Success 200 {object} response.Envelope{data=model.Board}
// @Failure 400 {object} response.Envelope
// @Router /board [post]
func (h *BoardHandler) Create(c echo.Context) error {
	var req CreateBoardRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	board, err := h.boardService.Create(c.Request().Context(), middleware.UserID(c), service.CreateBoardInput{
		Title:         req.Title,
		Visibility:    req.Visibility,
		BackgroundImg: req.BackgroundImg,
	})
	if err != nil {
		return err
	}
	return response.OK(c, board)
}

// Like godoc
// @Summary Toggle the caller's like on a board
// @Tags boards
// @Produce json
// @Security BearerAuth
// @Param id query int true "Board ID"
// @Success 200 {object} response.Envelope{data=string}
// @Failure 400 {object} response.Envelope
// @Router /board/like [post]
func (h *BoardHandler) Like(c echo.Context) error {
	boardID, err := requiredID(c, "id", apperrors.Validation("BoardId is required"))
	if err != nil {
		return err
	}

	liked, err := h.boardService.ToggleLike(c.Request().Context(), middleware.UserID(c), boardID)
	if err != nil {
		return err
	}
	if liked {
		return response.OK(c, "Liked Successfully")
	}
	return response.OK(c, "Unliked Successfully")
}

// Update godoc
// @Summary Update a board
// @Description Only the owner may update a board.
// @Tags boards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query int true "Board ID"
// @Param request body UpdateBoardRequest true "Fields to change"
// @Success 200 {object} response.Envelope{data=model.Board}
// @Failure 403 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /board [put]
func (h *BoardHandler) Update(c echo.Context) error {
	var req UpdateBoardRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return err
	}
	patch := model.BoardPatch{
		Title:         req.Title,
		Visibility:    req.Visibility,
		BackgroundImg: req.BackgroundImg,
		Archived:      req.Archived,
	}
	if patch.Empty() {
		return apperrors.Precondition("API Missing body")
	}
	boardID, err := requiredID(c, "id", apperrors.Precondition("BoardId is missing"))
	if err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	board, err := h.boardService.Update(c.Request().Context(), middleware.UserID(c), boardID, patch)
	if err != nil {
		return err
	}
	return response.OK(c, board)
}

// Delete godoc
// @Summary Delete a board
// @Description Only the owner may delete a board; its lists, labels, members and likes are removed too.
// @Tags boards
// @Produce json
// @Security BearerAuth
// @Param id query int true "Board ID"
// @Success 200 {object} response.Envelope{data=string}
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /board [delete]
func (h *BoardHandler) Delete(c echo.Context) error {
	boardID, err := requiredID(c, "id", apperrors.Validation("Please provide Board Id"))
	if err != nil {
		return err
	}
	if err := h.boardService.Delete(c.Request().Context(), middleware.UserID(c), boardID); err != nil {
		return err
	}
	return response.OK(c, "Deleted Successfully")
}
