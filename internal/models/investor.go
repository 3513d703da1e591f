package models

// Investor represents a row of the legacy Investors table.
type Investor struct {
	InvestorID    uint   `gorm:"column:Investor_ID;primaryKey;autoIncrement" json:"Investor_ID"`
	Name          string `gorm:"column:Name;not null" json:"Name"`
	ContactNumber string `gorm:"column:Contact_Number" json:"Contact_Number"`
	Address       string `gorm:"column:Address" json:"Address"`
	Alias         string `gorm:"column:Alias" json:"Alias"`
	Active        string `gorm:"column:Active;type:char(1);not null;default:Y" json:"Active"`
}

// TableName overrides the table name for Investor.
func (Investor) TableName() string {
	return "Investors"
}
