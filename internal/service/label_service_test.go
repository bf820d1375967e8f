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

func TestLabelService_List_RequiresIDAndBoard(t *testing.T) {
	m := newMockRepos()
	svc := NewLabelService(m.repos())
	id, boardID := uint(1), uint(2)

	_, err := svc.List(context.Background(), repository.Query{BoardID: &boardID})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.List(context.Background(), repository.Query{ID: &id})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	m.labels.On("Search", mock.Anything, mock.Anything).Return([]model.Label{{ID: 1, BoardID: 2}}, nil)
	labels, err := svc.List(context.Background(), repository.Query{ID: &id, BoardID: &boardID})
	require.NoError(t, err)
	assert.Len(t, labels, 1)
}

func TestLabelService_Create(t *testing.T) {
	in := CreateLabelInput{LabelName: "urgent", Color: "#ff0000", BoardID: 5}

	tests := []struct {
		name      string
		setupMock func(*mockRepos)
		wantErr   error
	}{
		{
			name: "editor",
			setupMock: func(m *mockRepos) {
				m.boards.On("FindByID", mock.Anything, uint(5)).Return(&model.Board{ID: 5}, nil)
				m.members.On("Find", mock.Anything, uint(5), uint(1)).Return(&model.BoardMember{Role: model.RoleEditor}, nil)
				m.labels.On("Create", mock.Anything, mock.AnythingOfType("*model.Label")).Return(nil)
			},
		},
		{
			name: "unknown board",
			setupMock: func(m *mockRepos) {
				m.boards.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "viewer",
			setupMock: func(m *mockRepos) {
				m.boards.On("FindByID", mock.Anything, uint(5)).Return(&model.Board{ID: 5}, nil)
				m.members.On("Find", mock.Anything, uint(5), uint(1)).Return(&model.BoardMember{Role: model.RoleViewer}, nil)
			},
			wantErr: apperrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMockRepos()
			tt.setupMock(m)

			label, err := NewLabelService(m.repos()).Create(context.Background(), 1, in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				m.labels.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "urgent", label.LabelName)
			assert.Equal(t, uint(5), label.BoardID)
			m.assertExpectations(t)
		})
	}
}

func TestLabelService_Update(t *testing.T) {
	boardID := uint(5)
	name := "blocked"
	patch := model.LabelPatch{LabelName: &name, BoardID: &boardID}

	t.Run("requires a list with the same id", func(t *testing.T) {
		m := newMockRepos()
		m.boards.On("FindByID", mock.Anything, boardID).Return(&model.Board{ID: 5}, nil)
		m.lists.On("FindByID", mock.Anything, uint(11)).Return(nil, gorm.ErrRecordNotFound)

		_, err := NewLabelService(m.repos()).Update(context.Background(), 1, 11, patch)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("missing label", func(t *testing.T) {
		m := newMockRepos()
		m.boards.On("FindByID", mock.Anything, boardID).Return(&model.Board{ID: 5}, nil)
		m.lists.On("FindByID", mock.Anything, uint(11)).Return(&model.List{ID: 11, BoardID: 5}, nil)
		m.labels.On("FindByID", mock.Anything, uint(11)).Return(nil, gorm.ErrRecordNotFound)

		_, err := NewLabelService(m.repos()).Update(context.Background(), 1, 11, patch)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		m.labels.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("viewer", func(t *testing.T) {
		m := newMockRepos()
		m.boards.On("FindByID", mock.Anything, boardID).Return(&model.Board{ID: 5}, nil)
		m.lists.On("FindByID", mock.Anything, uint(11)).Return(&model.List{ID: 11, BoardID: 5}, nil)
		m.labels.On("FindByID", mock.Anything, uint(11)).Return(&model.Label{ID: 11, BoardID: 5}, nil)
		m.members.On("Find", mock.Anything, boardID, uint(1)).Return(&model.BoardMember{Role: model.RoleViewer}, nil)

		_, err := NewLabelService(m.repos()).Update(context.Background(), 1, 11, patch)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		m.labels.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no access to the label's board", func(t *testing.T) {
		// the caller edits board 5 but the label lives on board 9
		m := newMockRepos()
		m.boards.On("FindByID", mock.Anything, boardID).Return(&model.Board{ID: 5}, nil)
		m.lists.On("FindByID", mock.Anything, uint(11)).Return(&model.List{ID: 11, BoardID: 9}, nil)
		m.labels.On("FindByID", mock.Anything, uint(11)).Return(&model.Label{ID: 11, BoardID: 9}, nil)
		m.members.On("Find", mock.Anything, uint(9), uint(1)).Return(nil, gorm.ErrRecordNotFound)

		_, err := NewLabelService(m.repos()).Update(context.Background(), 1, 11, patch)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		m.members.AssertNotCalled(t, "Find", mock.Anything, boardID, uint(1))
		m.labels.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("move needs edit rights on the target board", func(t *testing.T) {
		m := newMockRepos()
		m.boards.On("FindByID", mock.Anything, boardID).Return(&model.Board{ID: 5}, nil)
		m.lists.On("FindByID", mock.Anything, uint(11)).Return(&model.List{ID: 11, BoardID: 9}, nil)
		m.labels.On("FindByID", mock.Anything, uint(11)).Return(&model.Label{ID: 11, BoardID: 9}, nil)
		m.members.On("Find", mock.Anything, uint(9), uint(1)).Return(&model.BoardMember{Role: model.RoleAdmin}, nil)
		m.members.On("Find", mock.Anything, boardID, uint(1)).Return(&model.BoardMember{Role: model.RoleViewer}, nil)

		_, err := NewLabelService(m.repos()).Update(context.Background(), 1, 11, patch)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		m.labels.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("admin on both boards moves the label", func(t *testing.T) {
		m := newMockRepos()
		m.boards.On("FindByID", mock.Anything, boardID).Return(&model.Board{ID: 5}, nil)
		m.lists.On("FindByID", mock.Anything, uint(11)).Return(&model.List{ID: 11, BoardID: 9}, nil)
		m.labels.On("FindByID", mock.Anything, uint(11)).Return(&model.Label{ID: 11, LabelName: "old", BoardID: 9}, nil).Once()
		m.members.On("Find", mock.Anything, uint(9), uint(1)).Return(&model.BoardMember{Role: model.RoleAdmin}, nil)
		m.members.On("Find", mock.Anything, boardID, uint(1)).Return(&model.BoardMember{Role: model.RoleEditor}, nil)
		m.labels.On("Update", mock.Anything, uint(11), patch).Return(nil)
		m.labels.On("FindByID", mock.Anything, uint(11)).Return(&model.Label{ID: 11, LabelName: name, BoardID: 5}, nil).Once()

		label, err := NewLabelService(m.repos()).Update(context.Background(), 1, 11, patch)
		require.NoError(t, err)
		assert.Equal(t, boardID, label.BoardID)
		m.assertExpectations(t)
	})

	t.Run("admin", func(t *testing.T) {
		m := newMockRepos()
		m.boards.On("FindByID", mock.Anything, boardID).Return(&model.Board{ID: 5}, nil)
		m.lists.On("FindByID", mock.Anything, uint(11)).Return(&model.List{ID: 11, BoardID: 5}, nil)
		m.labels.On("FindByID", mock.Anything, uint(11)).Return(&model.Label{ID: 11, LabelName: "old", BoardID: 5}, nil).Once()
		m.members.On("Find", mock.Anything, boardID, uint(1)).Return(&model.BoardMember{Role: model.RoleAdmin}, nil).Once()
		m.labels.On("Update", mock.Anything, uint(11), patch).Return(nil)
		m.labels.On("FindByID", mock.Anything, uint(11)).Return(&model.Label{ID: 11, LabelName: name, BoardID: 5}, nil).Once()

		label, err := NewLabelService(m.repos()).Update(context.Background(), 1, 11, patch)
		require.NoError(t, err)
		assert.Equal(t, name, label.LabelName)
		m.assertExpectations(t)
	})
}

func TestLabelService_Delete_RemovesList(t *testing.T) {
	m := newMockRepos()
	m.lists.On("FindByID", mock.Anything, uint(11)).Return(&model.List{ID: 11, BoardID: 5}, nil)
	m.members.On("Find", mock.Anything, uint(5), uint(1)).Return(&model.BoardMember{Role: model.RoleEditor}, nil)
	m.lists.On("Delete", mock.Anything, uint(11)).Return(nil)

	require.NoError(t, NewLabelService(m.repos()).Delete(context.Background(), 1, 11))
	m.assertExpectations(t)
	m.labels.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestLabelService_Delete_Viewer(t *testing.T) {
	m := newMockRepos()
	m.lists.On("FindByID", mock.Anything, uint(11)).Return(&model.List{ID: 11, BoardID: 5}, nil)
	m.members.On("Find", mock.Anything, uint(5), uint(1)).Return(&model.BoardMember{Role: model.RoleViewer}, nil)

	err := NewLabelService(m.repos()).Delete(context.Background(), 1, 11)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	m.lists.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
