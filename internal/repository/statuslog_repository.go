package repository

import (
	"context"
	"time"

	"github.com/investrack/server/internal/models"
	appErr "github.com/investrack/server/pkg/errors"
	"gorm.io/gorm"
)

// StatusLogRepository manages the free-text status log. It is the one store
// in the schema addressed by timestamp and hard-deleted rather than
// soft-deleted.
type StatusLogRepository interface {
	BaseRepository[models.StatusLog]
	ListAll(ctx context.Context) ([]models.StatusLog, error)
	ListByProject(ctx context.Context, projectID uint) ([]models.StatusLog, error)
	Update(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

type statusLogRepository struct {
	BaseRepository[models.StatusLog]
	db *gorm.DB
}

func NewStatusLogRepository(db *gorm.DB) StatusLogRepository {
	return &statusLogRepository{BaseRepository: NewBaseRepository[models.StatusLog](db), db: db}
}

func (r *statusLogRepository) ListAll(ctx context.Context) ([]models.StatusLog, error) {
	out := []models.StatusLog{}
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list statuses failed")
	}
	return out, nil
}

func (r *statusLogRepository) ListByProject(ctx context.Context, projectID uint) ([]models.StatusLog, error) {
	out := []models.StatusLog{}
	err := r.db.WithContext(ctx).
		Where("Project_ID = ?", projectID).
		Order("Status_Timestamp DESC").
		Find(&out).Error
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list statuses by project failed")
	}
	if len(out) == 0 {
		return nil, appErr.New(appErr.CodeNotFound, "No statuses found for this project")
	}
	return out, nil
}

func (r *statusLogRepository) Update(ctx context.Context, id uint, status string) error {
	res := r.db.WithContext(ctx).Model(&models.StatusLog{}).
		Where("Status_ID = ?", id).
		Updates(map[string]any{"Status": status, "Status_Timestamp": time.Now()})
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "update status failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "Status not found")
	}
	return nil
}

func (r *statusLogRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("Status_ID = ?", id).Delete(&models.StatusLog{})
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "delete status failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "Status not found")
	}
	return nil
}
