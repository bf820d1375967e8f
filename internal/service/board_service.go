package service

import (
	"context"
	"fmt"
	"net/http"

	apperrors "kanban/internal/errors"
	"kanban/internal/model"
	"kanban/internal/repository"
)

// CreateBoardInput carries the fields of a new board.
type CreateBoardInput struct {
	Title         string
	Visibility    model.Visibility
	BackgroundImg string
}

// BoardService manages boards and likes.
type BoardService interface {
	List(ctx context.Context, q repository.Query) ([]model.Board, error)
	// Options returns the lookup shape; paging is ignored.
	Options(ctx context.Context, q repository.Query) ([]model.BoardOption, error)
	Create(ctx context.Context, ownerID uint, in CreateBoardInput) (*model.Board, error)
	Update(ctx context.Context, userID, boardID uint, patch model.BoardPatch) (*model.Board, error)
	Delete(ctx context.Context, userID, boardID uint) error
	// ToggleLike flips the caller's like and reports whether the board is now liked.
	ToggleLike(ctx context.Context, userID, boardID uint) (bool, error)
	IsLiked(ctx context.Context, boardID, userID uint) (bool, error)
}

type boardService struct {
	repos *repository.Repositories
}

// NewBoardService creates a new board service.
func NewBoardService(repos *repository.Repositories) BoardService {
	return &boardService{repos: repos}
}

func (s *boardService) List(ctx context.Context, q repository.Query) ([]model.Board, error) {
	boards, err := s.repos.Boards.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search boards: %w", err)
	}
	return boards, nil
}

func (s *boardService) Options(ctx context.Context, q repository.Query) ([]model.BoardOption, error) {
	q.Filtered = true
	boards, err := s.List(ctx, q)
	if err != nil {
		return nil, err
	}
	options := make([]model.BoardOption, 0, len(boards))
	for _, b := range boards {
		options = append(options, model.BoardOption{ID: b.ID, Name: b.Title, Value: b.ID})
	}
	return options, nil
}

// Create inserts the board and the owner's ADMIN membership atomically.
func (s *boardService) Create(ctx context.Context, ownerID uint, in CreateBoardInput) (*model.Board, error) {
	board := &model.Board{
		Title:         in.Title,
		Visibility:    in.Visibility,
		BackgroundImg: in.BackgroundImg,
		OwnerID:       ownerID,
	}
	if board.Visibility == "" {
		board.Visibility = model.VisibilityPrivate
	}

	err := s.repos.WithTransaction(ctx, func(ctx context.Context, tx *repository.Repositories) error {
		if err := tx.Boards.Create(ctx, board); err != nil {
			return fmt.Errorf("create board: %w", err)
		}
		member := &model.BoardMember{BoardID: board.ID, UserID: ownerID, Role: model.RoleAdmin}
		if err := tx.Members.Create(ctx, member); err != nil {
			return fmt.Errorf("create owner membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return board, nil
}

func (s *boardService) Update(ctx context.Context, userID, boardID uint, patch model.BoardPatch) (*model.Board, error) {
	if patch.Empty() {
		return nil, apperrors.Precondition("API Missing body")
	}
	if err := CanAct(ctx, s.repos, userID, boardID, ActionManage); err != nil {
		return nil, err
	}
	if err := s.repos.Boards.Update(ctx, boardID, patch); err != nil {
		return nil, fmt.Errorf("update board: %w", err)
	}
	board, err := s.repos.Boards.FindByID(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("reload board: %w", err)
	}
	return board, nil
}

// Delete removes a board the caller owns; lists, labels, members and likes
// go with it.
func (s *boardService) Delete(ctx context.Context, userID, boardID uint) error {
	if err := CanAct(ctx, s.repos, userID, boardID, ActionManage); err != nil {
		return err
	}
	if err := s.repos.Boards.Delete(ctx, boardID); err != nil {
		return fmt.Errorf("delete board: %w", err)
	}
	return nil
}

func (s *boardService) ToggleLike(ctx context.Context, userID, boardID uint) (bool, error) {
	var liked bool
	err := s.repos.WithTransaction(ctx, func(ctx context.Context, tx *repository.Repositories) error {
		if _, err := tx.Members.Find(ctx, boardID, userID); err != nil {
			if isNotFound(err) {
				return apperrors.Forbidden(http.StatusBadRequest, "Invalid BoardId or no permission to like this board")
			}
			return fmt.Errorf("find membership: %w", err)
		}

		exists, err := tx.Likes.Exists(ctx, userID, boardID)
		if err != nil {
			return fmt.Errorf("find like: %w", err)
		}
		if exists {
			if err := tx.Likes.Delete(ctx, userID, boardID); err != nil {
				return fmt.Errorf("delete like: %w", err)
			}
			liked = false
			return nil
		}
		if err := tx.Likes.Create(ctx, &model.BoardLike{UserID: userID, BoardID: boardID}); err != nil {
			return fmt.Errorf("create like: %w", err)
		}
		liked = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

func (s *boardService) IsLiked(ctx context.Context, boardID, userID uint) (bool, error) {
	if _, err := s.repos.Boards.FindByID(ctx, boardID); err != nil {
		if isNotFound(err) {
			return false, apperrors.Validation("BoardId is Invalid")
		}
		return false, fmt.Errorf("find board: %w", err)
	}
	if _, err := s.repos.Users.FindByID(ctx, userID); err != nil {
		if isNotFound(err) {
			return false, apperrors.Validation("UserId is Invalid")
		}
		return false, fmt.Errorf("find user: %w", err)
	}
	liked, err := s.repos.Likes.Exists(ctx, userID, boardID)
	if err != nil {
		return false, fmt.Errorf("find like: %w", err)
	}
	return liked, nil
}
