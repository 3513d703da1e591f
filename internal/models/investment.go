package models

import "time"

// Investment ties an investor to a project with an amount and a date.
// Soft-deletable like every entity except the status log.
type Investment struct {
	InvestmentID     uint      `gorm:"column:Investment_ID;primaryKey;autoIncrement" json:"Investment_ID"`
	ProjectID        uint      `gorm:"column:Project_ID;index;not null" json:"Project_ID"`
	InvestorID       uint      `gorm:"column:Investor_ID;index;not null" json:"Investor_ID"`
	InvestmentAmount float64   `gorm:"column:Investment_Amount;type:decimal(15,2);not null" json:"Investment_Amount"`
	InvestmentDate   time.Time `gorm:"column:Investment_Date;not null" json:"Investment_Date"`
	Active           string    `gorm:"column:Active;type:char(1);not null;default:Y" json:"Active"`
}

// TableName overrides the table name for Investment.
func (Investment) TableName() string {
	return "Project_Investments"
}
