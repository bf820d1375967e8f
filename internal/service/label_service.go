package service

import (
	"context"
	"fmt"

	apperrors "kanban/internal/errors"
	"kanban/internal/model"
	"kanban/internal/repository"
)

// CreateLabelInput carries the fields of a new label.
type CreateLabelInput struct {
	LabelName string
	Color     string
	BoardID   uint
}

// LabelService manages board labels.
type LabelService interface {
	List(ctx context.Context, q repository.Query) ([]model.Label, error)
	Create(ctx context.Context, userID uint, in CreateLabelInput) (*model.Label, error)
	Update(ctx context.Context, userID, labelID uint, patch model.LabelPatch) (*model.Label, error)
	// Delete removes the list whose id is given, after checking the caller
	// may edit that list's board.
	Delete(ctx context.Context, userID, id uint) error
}

type labelService struct {
	repos *repository.Repositories
}

// NewLabelService creates a new label service.
func NewLabelService(repos *repository.Repositories) LabelService {
	return &labelService{repos: repos}
}

func (s *labelService) List(ctx context.Context, q repository.Query) ([]model.Label, error) {
	if q.ID == nil {
		return nil, apperrors.Validation("LabelId is required")
	}
	if q.BoardID == nil {
		return nil, apperrors.Validation("boardId is required")
	}
	labels, err := s.repos.Labels.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search labels: %w", err)
	}
	return labels, nil
}

func (s *labelService) Create(ctx context.Context, userID uint, in CreateLabelInput) (*model.Label, error) {
	if err := s.requireBoard(ctx, in.BoardID); err != nil {
		return nil, err
	}
	if err := CanAct(ctx, s.repos, userID, in.BoardID, ActionMutate); err != nil {
		return nil, err
	}

	label := &model.Label{LabelName: in.LabelName, Color: in.Color, BoardID: in.BoardID}
	if err := s.repos.Labels.Create(ctx, label); err != nil {
		return nil, fmt.Errorf("create label: %w", err)
	}
	return label, nil
}

func (s *labelService) Update(ctx context.Context, userID, labelID uint, patch model.LabelPatch) (*model.Label, error) {
	if patch.BoardID == nil {
		return nil, apperrors.Validation("BoardId is required")
	}
	target := *patch.BoardID
	if err := s.requireBoard(ctx, target); err != nil {
		return nil, err
	}
	if _, err := s.repos.Lists.FindByID(ctx, labelID); err != nil {
		if isNotFound(err) {
			return nil, apperrors.Validation("ListId is Invalid")
		}
		return nil, fmt.Errorf("find list: %w", err)
	}

	current, err := s.repos.Labels.FindByID(ctx, labelID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFound("LabelId is Invalid")
		}
		return nil, fmt.Errorf("find label: %w", err)
	}
	// the caller must be able to edit the label where it is now and, when
	// moving it, on the board it moves to
	if err := CanAct(ctx, s.repos, userID, current.BoardID, ActionMutate); err != nil {
		return nil, err
	}
	if target != current.BoardID {
		if err := CanAct(ctx, s.repos, userID, target, ActionMutate); err != nil {
			return nil, err
		}
	}

	if err := s.repos.Labels.Update(ctx, labelID, patch); err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFound("LabelId is Invalid")
		}
		return nil, fmt.Errorf("update label: %w", err)
	}
	label, err := s.repos.Labels.FindByID(ctx, labelID)
	if err != nil {
		return nil, fmt.Errorf("reload label: %w", err)
	}
	return label, nil
}

func (s *labelService) Delete(ctx context.Context, userID, id uint) error {
	list, err := s.repos.Lists.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return apperrors.Validation("ListId is Invalid")
		}
		return fmt.Errorf("find list: %w", err)
	}
	if err := CanAct(ctx, s.repos, userID, list.BoardID, ActionMutate); err != nil {
		return err
	}
	if err := s.repos.Lists.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return nil
}

func (s *labelService) requireBoard(ctx context.Context, boardID uint) error {
	if _, err := s.repos.Boards.FindByID(ctx, boardID); err != nil {
		if isNotFound(err) {
			return apperrors.Validation("BoardId is Invalid")
		}
		return fmt.Errorf("find board: %w", err)
	}
	return nil
}
