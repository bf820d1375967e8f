package service

import (
	"context"
	"fmt"

	apperrors "kanban/internal/errors"
	"kanban/internal/model"
	"kanban/internal/repository"
)

// ListService manages the ordered lists of a board.
type ListService interface {
	List(ctx context.Context, q repository.Query) ([]model.List, error)
	Create(ctx context.Context, userID uint, listName string, boardID uint) (*model.List, error)
	Update(ctx context.Context, userID, listID uint, listName string) (*model.List, error)
	Delete(ctx context.Context, userID, listID uint) error
}

type listService struct {
	repos *repository.Repositories
}

// NewListService creates a new list service.
func NewListService(repos *repository.Repositories) ListService {
	return &listService{repos: repos}
}

func (s *listService) List(ctx context.Context, q repository.Query) ([]model.List, error) {
	if q.BoardID != nil {
		if _, err := s.repos.Boards.FindByID(ctx, *q.BoardID); err != nil {
			if isNotFound(err) {
				return nil, apperrors.NotFound("BoardId is Invalid")
			}
			return nil, fmt.Errorf("find board: %w", err)
		}
	}
	lists, err := s.repos.Lists.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search lists: %w", err)
	}
	return lists, nil
}

// Create appends a list at the end of the board. The board row stays locked
// while the next position is computed so concurrent creates never collide.
func (s *listService) Create(ctx context.Context, userID uint, listName string, boardID uint) (*model.List, error) {
	var list *model.List
	err := s.repos.WithTransaction(ctx, func(ctx context.Context, tx *repository.Repositories) error {
		if _, err := tx.Boards.FindByIDForUpdate(ctx, boardID); err != nil {
			if isNotFound(err) {
				return apperrors.NotFound("Board ID is invalid")
			}
			return fmt.Errorf("lock board: %w", err)
		}
		if err := CanAct(ctx, tx, userID, boardID, ActionMutate); err != nil {
			return err
		}

		last, err := tx.Lists.MaxPosition(ctx, boardID)
		if err != nil {
			return fmt.Errorf("max position: %w", err)
		}
		list = &model.List{ListName: listName, BoardID: boardID, Position: last + 1}
		if err := tx.Lists.Create(ctx, list); err != nil {
			return fmt.Errorf("create list: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *listService) Update(ctx context.Context, userID, listID uint, listName string) (*model.List, error) {
	list, err := s.repos.Lists.FindByID(ctx, listID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFound("ListId is Invalid")
		}
		return nil, fmt.Errorf("find list: %w", err)
	}
	if err := CanAct(ctx, s.repos, userID, list.BoardID, ActionMutate); err != nil {
		return nil, err
	}
	if err := s.repos.Lists.Rename(ctx, listID, listName); err != nil {
		return nil, fmt.Errorf("rename list: %w", err)
	}
	list, err = s.repos.Lists.FindByID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("reload list: %w", err)
	}
	return list, nil
}

func (s *listService) Delete(ctx context.Context, userID, listID uint) error {
	list, err := s.repos.Lists.FindByID(ctx, listID)
	if err != nil {
		if isNotFound(err) {
			return apperrors.NotFound("Invalid List ID")
		}
		return fmt.Errorf("find list: %w", err)
	}
	if err := CanAct(ctx, s.repos, userID, list.BoardID, ActionMutate); err != nil {
		return err
	}
	if err := s.repos.Lists.Delete(ctx, listID); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return nil
}
