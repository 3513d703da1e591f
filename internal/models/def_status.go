package models

// DefStatus is read-only reference data describing a project status and how
// far along a project is once it reaches it.
type DefStatus struct {
	StatusID             uint   `gorm:"column:Status_ID;primaryKey;autoIncrement" json:"Status_ID"`
	Status               string `gorm:"column:Status;not null" json:"Status"`
	PercentageCompletion int    `gorm:"column:Percentage_Completion;not null" json:"Percentage_Completion"`
	Active               string `gorm:"column:Active;type:char(1);not null;default:Y" json:"Active"`
}

// TableName overrides the table name for DefStatus.
func (DefStatus) TableName() string {
	return "Def_Status"
}
