package models

import "time"

// StatusLog is the free-text status log kept in the legacy ProjectStatuses
// table. Unlike every other entity it has no Active flag: rows are addressed
// by their timestamp and are hard-deleted.
type StatusLog struct {
	StatusID        uint      `gorm:"column:Status_ID;primaryKey;autoIncrement" json:"Status_ID"`
	ProjectID       uint      `gorm:"column:Project_ID;index;not null" json:"Project_ID"`
	Status          string    `gorm:"column:Status;not null" json:"Status"`
	StatusTimestamp time.Time `gorm:"column:Status_Timestamp;not null" json:"Status_Timestamp"`
}

// TableName overrides the table name for StatusLog.
func (StatusLog) TableName() string {
	return "ProjectStatuses"
}
