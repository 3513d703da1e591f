package main

import (
	"gorm.io/gorm"

	"github.com/investrack/server/internal/models"
)

// registerModels returns all models that need migration
func registerModels() []interface{} {
	return []interface{}{
		&models.Project{},
		&models.DefStatus{},
		&models.ProjectStatus{},
		&models.Investor{},
		&models.Investment{},
		&models.StatusLog{},
	}
}

// runMigrations executes all database migrations
func runMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(registerModels()...); err != nil {
		return err
	}
	return runCustomMigrations(db)
}

// runCustomMigrations handles schema changes AutoMigrate can't handle
func runCustomMigrations(db *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		seedStatusDefinitions,
		addStatusHistoryIndex,
	}

	for _, migration := range migrations {
		if err := migration(db); err != nil {
			return err
		}
	}

	return nil
}

// seedStatusDefinitions inserts the status ladder once. Status_ID 1 must stay
// the row assigned to newly created projects.
func seedStatusDefinitions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.DefStatus{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	seed := []models.DefStatus{
		{StatusID: 1, Status: "Initiated", PercentageCompletion: 0, Active: models.ActiveYes},
		{StatusID: 2, Status: "Planning", PercentageCompletion: 10, Active: models.ActiveYes},
		{StatusID: 3, Status: "In Progress", PercentageCompletion: 50, Active: models.ActiveYes},
		{StatusID: 4, Status: "Finalizing", PercentageCompletion: 90, Active: models.ActiveYes},
		{StatusID: 5, Status: "Completed", PercentageCompletion: 100, Active: models.ActiveYes},
	}
	return db.Create(&seed).Error
}

// addStatusHistoryIndex backs the latest-status-per-project lookup. MySQL has
// no CREATE INDEX IF NOT EXISTS, so existence is checked through the migrator.
func addStatusHistoryIndex(db *gorm.DB) error {
	if db.Migrator().HasIndex(&models.ProjectStatus{}, "idx_project_statuses_latest") {
		return nil
	}
	return db.Exec(`
        CREATE INDEX idx_project_statuses_latest
        ON Project_Statuses (Project_ID, Status_Date, Project_Status_ID)
    `).Error
}
