package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"kanbanlive/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

// TaskPatch carries the optional fields of a partial update. A nil
// field leaves the stored attribute untouched.
type TaskPatch struct {
	ColumnID    *uint
	Content     *string
	Description *string
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, content string, columnID uint) (*model.Task, error)
	Update(ctx context.Context, id uint, patch TaskPatch) (*model.Task, error)
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task into the given column. The column must
// exist; attaching a task to a missing column would orphan it.
func (r *TaskRepository) Create(ctx context.Context, content string, columnID uint) (*model.Task, error) {
	task := &model.Task{Content: content, ColumnID: columnID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := columnExists(tx, columnID); err != nil {
			return err
		}
		if err := tx.Create(task).Error; err != nil {
			return storageErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Update applies a partial update and returns the stored task. An
// empty patch still reads and returns the task unchanged. Concurrent
// updates serialize at the store; the last commit wins.
func (r *TaskRepository) Update(ctx context.Context, id uint, patch TaskPatch) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return storageErr(err)
		}
		if patch.ColumnID != nil && *patch.ColumnID != task.ColumnID {
			if err := columnExists(tx, *patch.ColumnID); err != nil {
				return err
			}
			task.ColumnID = *patch.ColumnID
		}
		if patch.Content != nil {
			task.Content = *patch.Content
		}
		if patch.Description != nil {
			task.Description = *patch.Description
		}
		if err := tx.Save(&task).Error; err != nil {
			return storageErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func columnExists(tx *gorm.DB, columnID uint) error {
	var count int64
	if err := tx.Model(&model.Column{}).Where("id = ?", columnID).Count(&count).Error; err != nil {
		return storageErr(err)
	}
	if count == 0 {
		return ErrColumnNotFound
	}
	return nil
}
