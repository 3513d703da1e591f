package repository

import (
	"context"
	"time"

	appErr "github.com/investrack/server/pkg/errors"
	"gorm.io/gorm"
)

// InvestmentTotals compares the full investment volume against the part still
// tied up in unfinished projects.
type InvestmentTotals struct {
	TotalInvestment  float64 `gorm:"column:Total_Investment" json:"Total_Investment"`
	ActiveInvestment float64 `gorm:"column:Active_Investment" json:"Active_Investment"`
}

// InvestorTotals counts distinct investors overall and on unfinished projects.
type InvestorTotals struct {
	TotalInvestors  int `gorm:"column:Total_Investors" json:"Total_Investors"`
	ActiveInvestors int `gorm:"column:Active_Investors" json:"Active_Investors"`
}

// ProjectTotals counts active-flagged projects overall and those still below
// 100% completion.
type ProjectTotals struct {
	TotalProjects  int `gorm:"column:Total_Projects" json:"Total_Projects"`
	ActiveProjects int `gorm:"column:Active_Projects" json:"Active_Projects"`
}

// ActivityEvent is one entry of the recent-activity timeline, either an
// investment or a status change.
type ActivityEvent struct {
	EventType    string    `gorm:"column:Event_Type" json:"Event_Type"`
	EventID      uint      `gorm:"column:Event_ID" json:"Event_ID"`
	ProjectID    uint      `gorm:"column:Project_ID" json:"Project_ID"`
	ProjectTitle string    `gorm:"column:Project_Title" json:"Project_Title"`
	Amount       *float64  `gorm:"column:Amount" json:"Amount"`
	Status       *string   `gorm:"column:Status" json:"Status"`
	EventDate    time.Time `gorm:"column:Event_Date" json:"Event_Date"`
}

// DashboardRepository runs the read-only aggregate queries. Every query
// resolves project progress through the shared latest-status fragment.
type DashboardRepository interface {
	InvestmentTotals(ctx context.Context) (*InvestmentTotals, error)
	InvestorTotals(ctx context.Context) (*InvestorTotals, error)
	ProjectTotals(ctx context.Context) (*ProjectTotals, error)
	LatestActivities(ctx context.Context) ([]ActivityEvent, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) InvestmentTotals(ctx context.Context) (*InvestmentTotals, error) {
	query := `
        SELECT
            COALESCE(SUM(CASE WHEN pi.Active = 'Y' THEN pi.Investment_Amount ELSE 0 END), 0) AS Total_Investment,
            COALESCE(SUM(CASE WHEN pi.Active = 'Y' AND ds.Percentage_Completion < 100 THEN pi.Investment_Amount ELSE 0 END), 0) AS Active_Investment
        FROM Project_Investments pi
        JOIN Projects p ON pi.Project_ID = p.Project_ID
        JOIN Project_Statuses ps ON p.Project_ID = ps.Project_ID
        JOIN Def_Status ds ON ps.Status_ID = ds.Status_ID
        WHERE ` + latestStatusCond

	var out InvestmentTotals
	if err := r.db.WithContext(ctx).Raw(query).Scan(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "dashboard investment totals failed")
	}
	return &out, nil
}

func (r *dashboardRepository) InvestorTotals(ctx context.Context) (*InvestorTotals, error) {
	query := `
        SELECT
            COUNT(DISTINCT pi.Investor_ID) AS Total_Investors,
            COUNT(DISTINCT CASE WHEN ds.Percentage_Completion < 100 THEN pi.Investor_ID ELSE NULL END) AS Active_Investors
        FROM Project_Investments pi
        JOIN Projects p ON pi.Project_ID = p.Project_ID AND p.Active = 'Y'
        JOIN Project_Statuses ps ON p.Project_ID = ps.Project_ID
        JOIN Def_Status ds ON ps.Status_ID = ds.Status_ID AND ds.Active = 'Y'
        WHERE ` + latestStatusCond

	var out InvestorTotals
	if err := r.db.WithContext(ctx).Raw(query).Scan(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "dashboard investor totals failed")
	}
	return &out, nil
}

func (r *dashboardRepository) ProjectTotals(ctx context.Context) (*ProjectTotals, error) {
	query := `
        SELECT
            COUNT(p.Project_ID) AS Total_Projects,
            COUNT(CASE WHEN ds.Percentage_Completion < 100 THEN p.Project_ID ELSE NULL END) AS Active_Projects
        FROM Projects p
        JOIN Project_Statuses ps ON p.Project_ID = ps.Project_ID
        JOIN Def_Status ds ON ps.Status_ID = ds.Status_ID
        WHERE p.Active = 'Y' AND ` + latestStatusCond

	var out ProjectTotals
	if err := r.db.WithContext(ctx).Raw(query).Scan(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "dashboard project totals failed")
	}
	return &out, nil
}

func (r *dashboardRepository) LatestActivities(ctx context.Context) ([]ActivityEvent, error) {
	query := `
        SELECT * FROM (
            SELECT
                'investment' AS Event_Type,
                pi.Investment_ID AS Event_ID,
                pi.Project_ID,
                p.Title AS Project_Title,
                pi.Investment_Amount AS Amount,
                NULL AS Status,
                pi.Investment_Date AS Event_Date
            FROM Project_Investments pi
            JOIN Projects p ON pi.Project_ID = p.Project_ID
            WHERE pi.Active = 'Y'
            UNION ALL
            SELECT
                'status' AS Event_Type,
                ps.Project_Status_ID AS Event_ID,
                ps.Project_ID,
                p.Title AS Project_Title,
                NULL AS Amount,
                ds.Status AS Status,
                ps.Status_Date AS Event_Date
            FROM Project_Statuses ps
            JOIN Projects p ON ps.Project_ID = p.Project_ID
            JOIN Def_Status ds ON ps.Status_ID = ds.Status_ID
        ) events
        ORDER BY Event_Date DESC
        LIMIT 10`

	out := []ActivityEvent{}
	if err := r.db.WithContext(ctx).Raw(query).Scan(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "dashboard latest activities failed")
	}
	return out, nil
}
