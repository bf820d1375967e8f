package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "kanban/internal/errors"
	"kanban/internal/model"
)

func TestCanAct(t *testing.T) {
	const (
		boardID = uint(10)
		ownerID = uint(1)
		otherID = uint(2)
	)

	tests := []struct {
		name         string
		userID       uint
		action       Action
		setupMock    func(*mockRepos)
		expectedCode int // 0 means allowed
	}{
		{
			name:   "no membership denies read",
			userID: otherID,
			action: ActionRead,
			setupMock: func(m *mockRepos) {
				m.members.On("Find", mock.Anything, boardID, otherID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "viewer may read",
			userID: otherID,
			action: ActionRead,
			setupMock: func(m *mockRepos) {
				m.members.On("Find", mock.Anything, boardID, otherID).Return(&model.BoardMember{Role: model.RoleViewer}, nil)
			},
		},
		{
			name:   "viewer may not mutate",
			userID: otherID,
			action: ActionMutate,
			setupMock: func(m *mockRepos) {
				m.members.On("Find", mock.Anything, boardID, otherID).Return(&model.BoardMember{Role: model.RoleViewer}, nil)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "editor may mutate",
			userID: otherID,
			action: ActionMutate,
			setupMock: func(m *mockRepos) {
				m.members.On("Find", mock.Anything, boardID, otherID).Return(&model.BoardMember{Role: model.RoleEditor}, nil)
			},
		},
		{
			name:   "admin may mutate",
			userID: ownerID,
			action: ActionMutate,
			setupMock: func(m *mockRepos) {
				m.members.On("Find", mock.Anything, boardID, ownerID).Return(&model.BoardMember{Role: model.RoleAdmin}, nil)
			},
		},
		{
			name:   "owner may manage",
			userID: ownerID,
			action: ActionManage,
			setupMock: func(m *mockRepos) {
				m.boards.On("FindByID", mock.Anything, boardID).Return(&model.Board{ID: boardID, OwnerID: ownerID}, nil)
			},
		},
		{
			name:   "admin who is not owner may not manage",
			userID: otherID,
			action: ActionManage,
			setupMock: func(m *mockRepos) {
				m.boards.On("FindByID", mock.Anything, boardID).Return(&model.Board{ID: boardID, OwnerID: ownerID}, nil)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "missing board may not be managed",
			userID: ownerID,
			action: ActionManage,
			setupMock: func(m *mockRepos) {
				m.boards.On("FindByID", mock.Anything, boardID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMockRepos()
			tt.setupMock(m)

			err := CanAct(context.Background(), m.repos(), tt.userID, boardID, tt.action)

			if tt.expectedCode == 0 {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrForbidden)
				var appErr *apperrors.AppError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, tt.expectedCode, appErr.Status)
			}
			m.assertExpectations(t)
		})
	}
}

func TestCanAct_PropagatesStoreErrors(t *testing.T) {
	m := newMockRepos()
	boom := errors.New("connection reset")
	m.members.On("Find", mock.Anything, uint(1), uint(1)).Return(nil, boom)

	err := CanAct(context.Background(), m.repos(), 1, 1, ActionRead)
	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, apperrors.ErrForbidden))
}
