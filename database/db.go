package database

import (
	"familyhub/config"
	"familyhub/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the configured database and creates the schema if absent.
func Connect() error {
	cfg := config.GetConfig()
	return Open(cfg.DatabasePath)
}

// Open connects to the SQLite database at path and auto-migrates the schema.
// Tests use this directly with ":memory:".
func Open(path string) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}

	return DB.AutoMigrate(
		&models.Family{},
		&models.User{},
		&models.Event{},
		&models.ShoppingList{},
		&models.ShoppingItem{},
		&models.Todo{},
		&models.Meal{},
		&models.Note{},
		&models.Reminder{},
	)
}
