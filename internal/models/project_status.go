package models

import "time"

// ProjectStatus is one entry of a project's status history. The history is
// append-mostly: a project's current status is the row with the newest
// Status_Date, never an updated row.
type ProjectStatus struct {
	ProjectStatusID uint      `gorm:"column:Project_Status_ID;primaryKey;autoIncrement" json:"Project_Status_ID"`
	ProjectID       uint      `gorm:"column:Project_ID;index;not null" json:"Project_ID"`
	StatusID        uint      `gorm:"column:Status_ID;not null" json:"Status_ID"`
	StatusDate      time.Time `gorm:"column:Status_Date;not null" json:"Status_Date"`
}

// TableName overrides the table name for ProjectStatus.
func (ProjectStatus) TableName() string {
	return "Project_Statuses"
}
