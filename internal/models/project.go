package models

// Soft-delete flag values used across all tables.
const (
	ActiveYes = "Y"
	ActiveNo  = "N"
)

// InitialStatusID is the Def_Status row assigned to a freshly created project.
const InitialStatusID uint = 1

// Project represents a row of the legacy Projects table. Rows are never
// hard-deleted; Active is flipped to 'N' instead.
type Project struct {
	ProjectID   uint   `gorm:"column:Project_ID;primaryKey;autoIncrement" json:"Project_ID"`
	Title       string `gorm:"column:Title;not null" json:"Title"`
	Description string `gorm:"column:Description;type:text" json:"Description"`
	Active      string `gorm:"column:Active;type:char(1);not null;default:Y" json:"Active"`
}

// TableName overrides the table name for Project.
func (Project) TableName() string {
	return "Projects"
}
