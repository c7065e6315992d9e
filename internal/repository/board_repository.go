package repository

import (
	"context"

	"gorm.io/gorm"

	"kanbanlive/internal/model"
)

type BoardRepository struct {
	db *gorm.DB
}

type BoardRepositoryInterface interface {
	GetBoard(ctx context.Context) ([]model.Column, error)
	ClearBoard(ctx context.Context) error
}

var _ BoardRepositoryInterface = (*BoardRepository)(nil)

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

// GetBoard returns every column with its tasks nested. Columns are
// ordered by position (id breaks ties), tasks by id.
func (r *BoardRepository) GetBoard(ctx context.Context) ([]model.Column, error) {
	var columns []model.Column
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.id")
		}).
		Order("position, id").
		Find(&columns).Error
	if err != nil {
		return nil, storageErr(err)
	}
	return columns, nil
}

// ClearBoard deletes all tasks, then all columns, in one transaction.
// Tasks go first so no task ever outlives its column reference.
// Running it on an empty board is a no-op.
func (r *BoardRepository) ClearBoard(ctx context.Context) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&model.Task{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&model.Column{}).Error
	})
	if err != nil {
		return storageErr(err)
	}
	return nil
}
