package handler_test

import (
	"context"
	"sync"

	"kanbanlive/internal/model"
	"kanbanlive/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) GetBoard(ctx context.Context) ([]model.Column, error) {
	args := m.Called(ctx)
	columns := args.Get(0)
	if columns == nil {
		return nil, args.Error(1)
	}
	return columns.([]model.Column), args.Error(1)
}

func (m *MockBoardRepository) ClearBoard(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, content string, columnID uint) (*model.Task, error) {
	args := m.Called(ctx, content, columnID)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, id uint, patch repository.TaskPatch) (*model.Task, error) {
	args := m.Called(ctx, id, patch)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users := args.Get(0)
	if users == nil {
		return nil, args.Error(1)
	}
	return users.([]model.User), args.Error(1)
}

// RecordingBus captures broadcast messages so tests can assert exactly
// how many notifications a mutation produced.
type RecordingBus struct {
	mu       sync.Mutex
	Messages []string
}

func (b *RecordingBus) Broadcast(message string) {
	b.mu.Lock()
	b.Messages = append(b.Messages, message)
	b.mu.Unlock()
}
