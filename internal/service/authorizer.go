package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	apperrors "kanban/internal/errors"
	"kanban/internal/repository"
)

// Action is what a caller wants to do with a board.
type Action int

const (
	// ActionRead covers listing and viewing board content.
	ActionRead Action = iota
	// ActionMutate covers creating, editing and deleting lists and labels.
	ActionMutate
	// ActionManage covers updating or deleting the board itself.
	ActionManage
)

// CanAct decides whether userID may perform action on boardID. It reads
// through repos so it can run inside a caller's transaction.
func CanAct(ctx context.Context, repos *repository.Repositories, userID, boardID uint, action Action) error {
	if action == ActionManage {
		board, err := repos.Boards.FindByID(ctx, boardID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("find board: %w", err)
		}
		if board == nil || board.OwnerID != userID {
			return apperrors.Forbidden(http.StatusForbidden, "Board not found or unauthorized")
		}
		return nil
	}

	member, err := repos.Members.Find(ctx, boardID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Forbidden(http.StatusForbidden, fmt.Sprintf("User %d has no access to board %d", userID, boardID))
		}
		return fmt.Errorf("find membership: %w", err)
	}
	if action == ActionMutate && !member.Role.CanMutate() {
		return apperrors.Forbidden(http.StatusBadRequest, "Viewers cannot perform this action")
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
