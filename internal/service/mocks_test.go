package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"kanban/internal/model"
	"kanban/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil && user.ID == 0 {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) SwapSession(ctx context.Context, userID uint, oldID, newID string) (bool, error) {
	args := m.Called(ctx, userID, oldID, newID)
	return args.Bool(0), args.Error(1)
}

// MockBoardRepository is a mock implementation of BoardRepository.
type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) Create(ctx context.Context, board *model.Board) error {
	args := m.Called(ctx, board)
	if args.Error(0) == nil && board.ID == 0 {
		board.ID = 1
	}
	return args.Error(0)
}

func (m *MockBoardRepository) FindByID(ctx context.Context, id uint) (*model.Board, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Board), args.Error(1)
}

func (m *MockBoardRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.Board, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Board), args.Error(1)
}

func (m *MockBoardRepository) Update(ctx context.Context, id uint, patch model.BoardPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBoardRepository) Search(ctx context.Context, q repository.Query) ([]model.Board, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Board), args.Error(1)
}

// MockMemberRepository is a mock implementation of MemberRepository.
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Create(ctx context.Context, member *model.BoardMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) Find(ctx context.Context, boardID, userID uint) (*model.BoardMember, error) {
	args := m.Called(ctx, boardID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BoardMember), args.Error(1)
}

// MockLikeRepository is a mock implementation of LikeRepository.
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Exists(ctx context.Context, userID, boardID uint) (bool, error) {
	args := m.Called(ctx, userID, boardID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Create(ctx context.Context, like *model.BoardLike) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockLikeRepository) Delete(ctx context.Context, userID, boardID uint) error {
	args := m.Called(ctx, userID, boardID)
	return args.Error(0)
}

// MockListRepository is a mock implementation of ListRepository.
type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) Create(ctx context.Context, list *model.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockListRepository) FindByID(ctx context.Context, id uint) (*model.List, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.List), args.Error(1)
}

func (m *MockListRepository) Rename(ctx context.Context, id uint, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockListRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockListRepository) MaxPosition(ctx context.Context, boardID uint) (int, error) {
	args := m.Called(ctx, boardID)
	return args.Int(0), args.Error(1)
}

func (m *MockListRepository) Search(ctx context.Context, q repository.Query) ([]model.List, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.List), args.Error(1)
}

// MockLabelRepository is a mock implementation of LabelRepository.
type MockLabelRepository struct {
	mock.Mock
}

func (m *MockLabelRepository) Create(ctx context.Context, label *model.Label) error {
	args := m.Called(ctx, label)
	return args.Error(0)
}

func (m *MockLabelRepository) FindByID(ctx context.Context, id uint) (*model.Label, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Label), args.Error(1)
}

func (m *MockLabelRepository) Update(ctx context.Context, id uint, patch model.LabelPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockLabelRepository) Search(ctx context.Context, q repository.Query) ([]model.Label, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Label), args.Error(1)
}

type mockRepos struct {
	users   *MockUserRepository
	boards  *MockBoardRepository
	members *MockMemberRepository
	likes   *MockLikeRepository
	lists   *MockListRepository
	labels  *MockLabelRepository
}

func newMockRepos() *mockRepos {
	return &mockRepos{
		users:   new(MockUserRepository),
		boards:  new(MockBoardRepository),
		members: new(MockMemberRepository),
		likes:   new(MockLikeRepository),
		lists:   new(MockListRepository),
		labels:  new(MockLabelRepository),
	}
}

// repos assembles the mocks without a database, so transactions run inline.
func (m *mockRepos) repos() *repository.Repositories {
	return &repository.Repositories{
		Users:   m.users,
		Boards:  m.boards,
		Members: m.members,
		Likes:   m.likes,
		Lists:   m.lists,
		Labels:  m.labels,
	}
}

func (m *mockRepos) assertExpectations(t mock.TestingT) {
	m.users.AssertExpectations(t)
	m.boards.AssertExpectations(t)
	m.members.AssertExpectations(t)
	m.likes.AssertExpectations(t)
	m.lists.AssertExpectations(t)
	m.labels.AssertExpectations(t)
}
