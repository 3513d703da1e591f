package repository

import (
	"context"
	"errors"

	"github.com/investrack/server/internal/models"
	appErr "github.com/investrack/server/pkg/errors"
	"gorm.io/gorm"
)

// InvestorRollup is one row of the investor listing with per-investor project
// and investment totals. "Active" figures only count projects whose latest
// status sits below 100% completion.
type InvestorRollup struct {
	InvestorID       uint    `gorm:"column:Investor_ID" json:"Investor_ID"`
	Name             string  `gorm:"column:Name" json:"Name"`
	ContactNumber    string  `gorm:"column:Contact_Number" json:"Contact_Number"`
	Address          string  `gorm:"column:Address" json:"Address"`
	Alias            string  `gorm:"column:Alias" json:"Alias"`
	TotalProjects    int     `gorm:"column:Total_Projects" json:"Total_Projects"`
	ActiveProjects   int     `gorm:"column:Active_Projects" json:"Active_Projects"`
	ActiveInvestment float64 `gorm:"column:Active_Investment" json:"Active_Investment"`
	TotalInvestment  float64 `gorm:"column:Total_Investment" json:"Total_Investment"`
}

// UpdateInvestorInput is a full-field overwrite of an investor's editable
// columns.
type UpdateInvestorInput struct {
	Name          string
	ContactNumber string
	Address       string
	Alias         string
}

type InvestorRepository interface {
	BaseRepository[models.Investor]
	ListActive(ctx context.Context) ([]models.Investor, error)
	GetActiveByID(ctx context.Context, id uint) (*models.Investor, error)
	ListWithDetails(ctx context.Context) ([]InvestorRollup, error)
	Update(ctx context.Context, id uint, in UpdateInvestorInput) error
	SoftDelete(ctx context.Context, id uint) error
}

type investorRepository struct {
	BaseRepository[models.Investor]
	db *gorm.DB
}

func NewInvestorRepository(db *gorm.DB) InvestorRepository {
	return &investorRepository{BaseRepository: NewBaseRepository[models.Investor](db), db: db}
}

func (r *investorRepository) ListActive(ctx context.Context) ([]models.Investor, error) {
	out := []models.Investor{}
	if err := r.db.WithContext(ctx).Where("Active = ?", models.ActiveYes).Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list investors failed")
	}
	return out, nil
}

func (r *investorRepository) GetActiveByID(ctx context.Context, id uint) (*models.Investor, error) {
	var inv models.Investor
	err := r.db.WithContext(ctx).
		Where("Investor_ID = ? AND Active = ?", id, models.ActiveYes).
		First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErr.New(appErr.CodeNotFound, "Investor not found")
	}
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "get investor failed")
	}
	return &inv, nil
}

func (r *investorRepository) ListWithDetails(ctx context.Context) ([]InvestorRollup, error) {
	// Project_Def_Status resolves each project's completion through the same
	// latest-status rule as everywhere else (fragment inlined into the CTE).
	query := `
        WITH Project_Def_Status AS (
            SELECT ps.Project_ID, ps.Status_ID, ds.Percentage_Completion
            FROM Project_Statuses ps
            JOIN Def_Status ds ON ps.Status_ID = ds.Status_ID
            JOIN Projects p ON ps.Project_ID = p.Project_ID
            WHERE ` + latestStatusCond + `
        )
        SELECT
            i.Investor_ID,
            i.Name,
            i.Contact_Number,
            i.Address,
            i.Alias,
            COUNT(DISTINCT pi.Project_ID) AS Total_Projects,
            COUNT(DISTINCT CASE WHEN pds.Percentage_Completion < 100 THEN pi.Project_ID ELSE NULL END) AS Active_Projects,
            COALESCE(SUM(CASE WHEN pds.Percentage_Completion < 100 THEN pi.Investment_Amount ELSE 0 END), 0) AS Active_Investment,
            COALESCE(SUM(pi.Investment_Amount), 0) AS Total_Investment
        FROM Investors i
        LEFT JOIN Project_Investments pi ON i.Investor_ID = pi.Investor_ID AND pi.Active = 'Y'
        LEFT JOIN Projects p ON pi.Project_ID = p.Project_ID
        LEFT JOIN Project_Def_Status pds ON p.Project_ID = pds.Project_ID
        WHERE i.Active = 'Y'
        GROUP BY i.Investor_ID, i.Name, i.Contact_Number, i.Address, i.Alias
        ORDER BY i.Name ASC`

	out := []InvestorRollup{}
	if err := r.db.WithContext(ctx).Raw(query).Scan(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list investors with details failed")
	}
	return out, nil
}

func (r *investorRepository) Update(ctx context.Context, id uint, in UpdateInvestorInput) error {
	res := r.db.WithContext(ctx).Model(&models.Investor{}).
		Where("Investor_ID = ?", id).
		Updates(map[string]any{
			"Name":           in.Name,
			"Contact_Number": in.ContactNumber,
			"Address":        in.Address,
			"Alias":          in.Alias,
		})
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "update investor failed")
	}
	return nil
}

func (r *investorRepository) SoftDelete(ctx context.Context, id uint) error {
	return softDeactivate(ctx, r.db, &models.Investor{}, "Investor_ID", id, "Investor not found or already deactivated")
}
