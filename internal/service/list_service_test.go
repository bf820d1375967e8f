package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "kanban/internal/errors"
	"kanban/internal/model"
	"kanban/internal/repository"
)

func TestListService_Create(t *testing.T) {
	tests := []struct {
		name             string
		setupMock        func(*mockRepos)
		expectedPosition int
		expectedError    error
	}{
		{
			name: "first list gets position 1",
			setupMock: func(m *mockRepos) {
				m.boards.On("FindByIDForUpdate", mock.Anything, uint(5)).Return(&model.Board{ID: 5}, nil)
				m.members.On("Find", mock.Anything, uint(5), uint(1)).Return(&model.BoardMember{Role: model.RoleAdmin}, nil)
				m.lists.On("MaxPosition", mock.Anything, uint(5)).Return(0, nil)
				m.lists.On("Create", mock.Anything, mock.AnythingOfType("*model.List")).Return(nil)
			},
			expectedPosition: 1,
		},
		{
			name: "appends after the highest position",
			setupMock: func(m *mockRepos) {
				m.boards.On("FindByIDForUpdate", mock.Anything, uint(5)).Return(&model.Board{ID: 5}, nil)
				m.members.On("Find", mock.Anything, uint(5), uint(1)).Return(&model.BoardMember{Role: model.RoleEditor}, nil)
				m.lists.On("MaxPosition", mock.Anything, uint(5)).Return(3, nil)
				m.lists.On("Create", mock.Anything, mock.AnythingOfType("*model.List")).Return(nil)
			},
			expectedPosition: 4,
		},
		{
			name: "unknown board",
			setupMock: func(m *mockRepos) {
				m.boards.On("FindByIDForUpdate", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrNotFound,
		},
		{
			name: "viewer",
			setupMock: func(m *mockRepos) {
				m.boards.On("FindByIDForUpdate", mock.Anything, uint(5)).Return(&model.Board{ID: 5}, nil)
				m.members.On("Find", mock.Anything, uint(5), uint(1)).Return(&model.BoardMember{Role: model.RoleViewer}, nil)
			},
			expectedError: apperrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMockRepos()
			tt.setupMock(m)

			list, err := NewListService(m.repos()).Create(context.Background(), 1, "Backlog", 5)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, list)
				m.lists.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPosition, list.Position)
			assert.Equal(t, "Backlog", list.ListName)
			m.assertExpectations(t)
		})
	}
}

func TestListService_List_UnknownBoard(t *testing.T) {
	m := newMockRepos()
	boardID := uint(8)
	m.boards.On("FindByID", mock.Anything, boardID).Return(nil, gorm.ErrRecordNotFound)

	_, err := NewListService(m.repos()).List(context.Background(), repository.Query{BoardID: &boardID})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	m.lists.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestListService_UpdateAndDelete_CheckListBoard(t *testing.T) {
	t.Run("update by viewer", func(t *testing.T) {
		m := newMockRepos()
		m.lists.On("FindByID", mock.Anything, uint(30)).Return(&model.List{ID: 30, BoardID: 5}, nil)
		m.members.On("Find", mock.Anything, uint(5), uint(1)).Return(&model.BoardMember{Role: model.RoleViewer}, nil)

		_, err := NewListService(m.repos()).Update(context.Background(), 1, 30, "Doing")
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		m.lists.AssertNotCalled(t, "Rename", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("update by editor", func(t *testing.T) {
		m := newMockRepos()
		m.lists.On("FindByID", mock.Anything, uint(30)).Return(&model.List{ID: 30, BoardID: 5, ListName: "Todo"}, nil).Once()
		m.members.On("Find", mock.Anything, uint(5), uint(1)).Return(&model.BoardMember{Role: model.RoleEditor}, nil)
		m.lists.On("Rename", mock.Anything, uint(30), "Doing").Return(nil)
		m.lists.On("FindByID", mock.Anything, uint(30)).Return(&model.List{ID: 30, BoardID: 5, ListName: "Doing"}, nil).Once()

		list, err := NewListService(m.repos()).Update(context.Background(), 1, 30, "Doing")
		require.NoError(t, err)
		assert.Equal(t, "Doing", list.ListName)
		m.assertExpectations(t)
	})

	t.Run("delete missing list", func(t *testing.T) {
		m := newMockRepos()
		m.lists.On("FindByID", mock.Anything, uint(30)).Return(nil, gorm.ErrRecordNotFound)

		err := NewListService(m.repos()).Delete(context.Background(), 1, 30)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("delete checks membership on the list's board", func(t *testing.T) {
		m := newMockRepos()
		m.lists.On("FindByID", mock.Anything, uint(30)).Return(&model.List{ID: 30, BoardID: 5}, nil)
		m.members.On("Find", mock.Anything, uint(5), uint(1)).Return(&model.BoardMember{Role: model.RoleAdmin}, nil)
		m.lists.On("Delete", mock.Anything, uint(30)).Return(nil)

		require.NoError(t, NewListService(m.repos()).Delete(context.Background(), 1, 30))
		m.assertExpectations(t)
	})
}
