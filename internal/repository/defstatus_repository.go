package repository

import (
	"context"

	"github.com/investrack/server/internal/models"
	appErr "github.com/investrack/server/pkg/errors"
	"gorm.io/gorm"
)

// DefStatusRepository reads the status-definition reference data.
type DefStatusRepository interface {
	ListActive(ctx context.Context) ([]models.DefStatus, error)
}

type defStatusRepository struct {
	db *gorm.DB
}

func NewDefStatusRepository(db *gorm.DB) DefStatusRepository {
	return &defStatusRepository{db: db}
}

func (r *defStatusRepository) ListActive(ctx context.Context) ([]models.DefStatus, error) {
	out := []models.DefStatus{}
	if err := r.db.WithContext(ctx).Where("Active = ?", models.ActiveYes).Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list status definitions failed")
	}
	return out, nil
}
