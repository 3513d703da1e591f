package repository

import (
	"context"

	"github.com/investrack/server/internal/models"
	appErr "github.com/investrack/server/pkg/errors"
	"gorm.io/gorm"
)

// BaseRepository defines the storage operations shared by every entity.
type BaseRepository[T any] interface {
	Create(ctx context.Context, obj *T) error
	GetByID(ctx context.Context, id any, dest *T) error
}

type baseRepository[T any] struct {
	db *gorm.DB
}

func NewBaseRepository[T any](db *gorm.DB) BaseRepository[T] {
	return &baseRepository[T]{db: db}
}

func (r *baseRepository[T]) Create(ctx context.Context, obj *T) error {
	if err := r.db.WithContext(ctx).Create(obj).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "create entity failed")
	}
	return nil
}

func (r *baseRepository[T]) GetByID(ctx context.Context, id any, dest *T) error {
	if err := r.db.WithContext(ctx).First(dest, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return appErr.New(appErr.CodeNotFound, "entity not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get entity failed")
	}
	return nil
}

// softDeactivate flips the Active flag of one row to 'N'. The Active = 'Y'
// guard keeps the not-found result for already-inactive rows independent of
// the driver's changed-rows reporting.
func softDeactivate(ctx context.Context, db *gorm.DB, model any, pkCol string, id uint, notFoundMsg string) error {
	res := db.WithContext(ctx).Model(model).
		Where(pkCol+" = ? AND Active = ?", id, models.ActiveYes).
		Update("Active", models.ActiveNo)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "deactivate entity failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, notFoundMsg)
	}
	return nil
}
