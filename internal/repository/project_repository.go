package repository

import (
	"context"
	"errors"
	"time"

	"github.com/investrack/server/internal/models"
	appErr "github.com/investrack/server/pkg/errors"
	"gorm.io/gorm"
)

// ProjectRollup is one row of the project listing with its current status and
// the investment totals rolled up over active investments.
type ProjectRollup struct {
	ProjectID            uint      `gorm:"column:Project_ID" json:"Project_ID"`
	Title                string    `gorm:"column:Title" json:"Title"`
	Description          string    `gorm:"column:Description" json:"Description"`
	StatusID             uint      `gorm:"column:Status_ID" json:"Status_ID"`
	Status               string    `gorm:"column:Status" json:"Status"`
	PercentageCompletion int       `gorm:"column:Percentage_Completion" json:"Percentage_Completion"`
	StatusDate           time.Time `gorm:"column:Status_Date" json:"Status_Date"`
	TotalInvestment      float64   `gorm:"column:Total_Investment" json:"Total_Investment"`
	TotalUniqueInvestors int       `gorm:"column:Total_Unique_Investors" json:"Total_Unique_Investors"`
}

// ProjectDetail is a project joined with its latest status row. The status
// columns are pointers because a project without history left-joins to NULLs.
type ProjectDetail struct {
	ProjectID            uint       `gorm:"column:Project_ID" json:"Project_ID"`
	Title                string     `gorm:"column:Title" json:"Title"`
	Description          string     `gorm:"column:Description" json:"Description"`
	Active               string     `gorm:"column:Active" json:"Active"`
	StatusID             *uint      `gorm:"column:Status_ID" json:"Status_ID"`
	StatusDate           *time.Time `gorm:"column:Status_Date" json:"Status_Date"`
	Status               *string    `gorm:"column:Status" json:"Status"`
	PercentageCompletion *int       `gorm:"column:Percentage_Completion" json:"Percentage_Completion"`
}

// UpdateProjectInput carries a full-field project update plus an optional
// status change. A status is appended to the history only when both StatusID
// and StatusDate are present and StatusID differs from the current latest.
type UpdateProjectInput struct {
	Title       string
	Description string
	StatusID    *uint
	StatusDate  *time.Time
}

type ProjectRepository interface {
	ListActive(ctx context.Context) ([]models.Project, error)
	ListWithStatus(ctx context.Context) ([]ProjectRollup, error)
	GetWithLatestStatus(ctx context.Context, id uint) (*ProjectDetail, error)
	CreateWithInitialStatus(ctx context.Context, p *models.Project, commencement time.Time) (*ProjectDetail, error)
	Update(ctx context.Context, id uint, in UpdateProjectInput) (*ProjectDetail, error)
	SoftDelete(ctx context.Context, id uint) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) ListActive(ctx context.Context) ([]models.Project, error) {
	out := []models.Project{}
	if err := r.db.WithContext(ctx).Where("Active = ?", models.ActiveYes).Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list projects failed")
	}
	return out, nil
}

func (r *projectRepository) ListWithStatus(ctx context.Context) ([]ProjectRollup, error) {
	query := `
        SELECT
            p.Project_ID,
            p.Title,
            p.Description,
            ps.Status_ID,
            ds.Status,
            ds.Percentage_Completion,
            ps.Status_Date,
            COALESCE(SUM(pi.Investment_Amount), 0) AS Total_Investment,
            COALESCE(COUNT(DISTINCT pi.Investor_ID), 0) AS Total_Unique_Investors
        FROM Projects p
        JOIN Project_Statuses ps ON p.Project_ID = ps.Project_ID
        JOIN Def_Status ds ON ps.Status_ID = ds.Status_ID
        LEFT JOIN Project_Investments pi ON p.Project_ID = pi.Project_ID AND pi.Active = 'Y'
        WHERE p.Active = 'Y' AND ` + latestStatusCond + `
        GROUP BY p.Project_ID, p.Title, p.Description, ps.Status_ID, ds.Status, ds.Percentage_Completion, ps.Status_Date
        ORDER BY ps.Status_Date DESC`

	out := []ProjectRollup{}
	if err := r.db.WithContext(ctx).Raw(query).Scan(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list projects with status failed")
	}
	return out, nil
}

func (r *projectRepository) GetWithLatestStatus(ctx context.Context, id uint) (*ProjectDetail, error) {
	return getProjectDetail(r.db.WithContext(ctx), id)
}

// getProjectDetail returns the project joined with its latest status row,
// regardless of the project's own Active flag.
func getProjectDetail(db *gorm.DB, id uint) (*ProjectDetail, error) {
	query := `
        SELECT p.Project_ID, p.Title, p.Description, p.Active,
               ps.Status_ID, ps.Status_Date, ds.Status, ds.Percentage_Completion
        FROM Projects p
        LEFT JOIN Project_Statuses ps ON p.Project_ID = ps.Project_ID
        LEFT JOIN Def_Status ds ON ps.Status_ID = ds.Status_ID
        WHERE p.Project_ID = ?
        ORDER BY ps.Status_Date DESC, ps.Project_Status_ID DESC
        LIMIT 1`

	var rows []ProjectDetail
	if err := db.Raw(query, id).Scan(&rows).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "get project failed")
	}
	if len(rows) == 0 {
		return nil, appErr.New(appErr.CodeNotFound, "Project not found")
	}
	return &rows[0], nil
}

func (r *projectRepository) CreateWithInitialStatus(ctx context.Context, p *models.Project, commencement time.Time) (*ProjectDetail, error) {
	p.Active = models.ActiveYes
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return appErr.Wrap(err, appErr.CodeInternal, "create project failed")
		}
		first := models.ProjectStatus{
			ProjectID:  p.ProjectID,
			StatusID:   models.InitialStatusID,
			StatusDate: commencement,
		}
		if err := tx.Create(&first).Error; err != nil {
			return appErr.Wrap(err, appErr.CodeInternal, "create initial project status failed")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return getProjectDetail(r.db.WithContext(ctx), p.ProjectID)
}

func (r *projectRepository) Update(ctx context.Context, id uint, in UpdateProjectInput) (*ProjectDetail, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Full-field overwrite; the map keeps an empty description writable.
		res := tx.Model(&models.Project{}).Where("Project_ID = ?", id).
			Updates(map[string]any{"Title": in.Title, "Description": in.Description})
		if res.Error != nil {
			return appErr.Wrap(res.Error, appErr.CodeInternal, "update project failed")
		}

		if in.StatusID == nil || in.StatusDate == nil {
			return nil
		}
		latest, err := latestStatusRow(tx, id)
		if err != nil {
			return err
		}
		if !statusChanged(latest, *in.StatusID) {
			return nil
		}
		next := models.ProjectStatus{ProjectID: id, StatusID: *in.StatusID, StatusDate: *in.StatusDate}
		if err := tx.Create(&next).Error; err != nil {
			return appErr.Wrap(err, appErr.CodeInternal, "append project status failed")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return getProjectDetail(r.db.WithContext(ctx), id)
}

func (r *projectRepository) SoftDelete(ctx context.Context, id uint) error {
	return softDeactivate(ctx, r.db, &models.Project{}, "Project_ID", id, "Project not found or already deactivated")
}

// latestStatusRow returns the newest status-history row for a project, or nil
// when the project has no history yet.
func latestStatusRow(db *gorm.DB, projectID uint) (*models.ProjectStatus, error) {
	var latest models.ProjectStatus
	err := db.Where("Project_ID = ?", projectID).
		Order("Status_Date DESC, Project_Status_ID DESC").
		First(&latest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "get latest project status failed")
	}
	return &latest, nil
}

// statusChanged reports whether appending statusID would change the project's
// current status. Re-sending the current status is a history no-op.
func statusChanged(latest *models.ProjectStatus, statusID uint) bool {
	return latest == nil || latest.StatusID != statusID
}
