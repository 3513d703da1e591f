package repository

import (
	"context"
	"time"

	"github.com/investrack/server/internal/models"
	appErr "github.com/investrack/server/pkg/errors"
	"gorm.io/gorm"
)

// InvestmentDetail is an investment joined with its project title and
// investor name.
type InvestmentDetail struct {
	InvestmentID     uint      `gorm:"column:Investment_ID" json:"Investment_ID"`
	ProjectID        uint      `gorm:"column:Project_ID" json:"Project_ID"`
	ProjectTitle     string    `gorm:"column:Project_Title" json:"Project_Title"`
	InvestorID       uint      `gorm:"column:Investor_ID" json:"Investor_ID"`
	InvestorName     string    `gorm:"column:Investor_Name" json:"Investor_Name"`
	InvestmentAmount float64   `gorm:"column:Investment_Amount" json:"Investment_Amount"`
	InvestmentDate   time.Time `gorm:"column:Investment_Date" json:"Investment_Date"`
	Active           string    `gorm:"column:Active" json:"Active"`
}

// UpdateInvestmentInput is an explicit optional-field update: only non-nil
// fields end up in the SET clause.
type UpdateInvestmentInput struct {
	ProjectID        *uint
	InvestorID       *uint
	InvestmentAmount *float64
	InvestmentDate   *time.Time
	Active           *string
}

// columns maps the fields present in the input to their SET-clause columns.
func (in UpdateInvestmentInput) columns() map[string]any {
	cols := map[string]any{}
	if in.ProjectID != nil {
		cols["Project_ID"] = *in.ProjectID
	}
	if in.InvestorID != nil {
		cols["Investor_ID"] = *in.InvestorID
	}
	if in.InvestmentAmount != nil {
		cols["Investment_Amount"] = *in.InvestmentAmount
	}
	if in.InvestmentDate != nil {
		cols["Investment_Date"] = *in.InvestmentDate
	}
	if in.Active != nil {
		cols["Active"] = *in.Active
	}
	return cols
}

type InvestmentRepository interface {
	BaseRepository[models.Investment]
	ListWithDetails(ctx context.Context) ([]InvestmentDetail, error)
	GetWithDetails(ctx context.Context, id uint) (*InvestmentDetail, error)
	PartialUpdate(ctx context.Context, id uint, in UpdateInvestmentInput) error
	SoftDelete(ctx context.Context, id uint) error
}

type investmentRepository struct {
	BaseRepository[models.Investment]
	db *gorm.DB
}

func NewInvestmentRepository(db *gorm.DB) InvestmentRepository {
	return &investmentRepository{BaseRepository: NewBaseRepository[models.Investment](db), db: db}
}

const investmentDetailSelect = `
        SELECT
            i.Investment_ID,
            i.Project_ID,
            p.Title AS Project_Title,
            i.Investor_ID,
            inv.Name AS Investor_Name,
            i.Investment_Amount,
            i.Investment_Date,
            i.Active
        FROM Project_Investments i
        JOIN Projects p ON i.Project_ID = p.Project_ID
        JOIN Investors inv ON i.Investor_ID = inv.Investor_ID`

func (r *investmentRepository) ListWithDetails(ctx context.Context) ([]InvestmentDetail, error) {
	out := []InvestmentDetail{}
	query := investmentDetailSelect + `
        WHERE i.Active = 'Y'`
	if err := r.db.WithContext(ctx).Raw(query).Scan(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list investments failed")
	}
	return out, nil
}

func (r *investmentRepository) GetWithDetails(ctx context.Context, id uint) (*InvestmentDetail, error) {
	query := investmentDetailSelect + `
        WHERE i.Investment_ID = ? AND i.Active = 'Y'`
	var rows []InvestmentDetail
	if err := r.db.WithContext(ctx).Raw(query, id).Scan(&rows).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "get investment failed")
	}
	if len(rows) == 0 {
		return nil, appErr.New(appErr.CodeNotFound, "Investment not found or inactive.")
	}
	return &rows[0], nil
}

func (r *investmentRepository) PartialUpdate(ctx context.Context, id uint, in UpdateInvestmentInput) error {
	cols := in.columns()
	if len(cols) == 0 {
		return appErr.New(appErr.CodeInvalid, "No fields to update.")
	}
	res := r.db.WithContext(ctx).Model(&models.Investment{}).
		Where("Investment_ID = ?", id).
		Updates(cols)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "update investment failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "Investment not found or no changes made.")
	}
	return nil
}

func (r *investmentRepository) SoftDelete(ctx context.Context, id uint) error {
	return softDeactivate(ctx, r.db, &models.Investment{}, "Investment_ID", id, "Investment not found or already inactive.")
}
