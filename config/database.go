package config

import (
	"fmt"
	"time"

	"DayflowGo/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the MySQL connection and migrates the schema.
func InitDB(config Config) error {
	dsn := config.GetDBConnString()

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := migrateDB(); err != nil {
		return err
	}

	return nil
}

// migrateDB migrates all tables. The unique index on tasks
// (recurring_task_id, due_date) backs the idempotent instance generation.
func migrateDB() error {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Day{},
		&models.Task{},
		&models.Event{},
		&models.TimeBlock{},
		&models.TimeBlockException{},
		&models.RecurringTask{},
		&models.FocusSession{},
	)
	if err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}
	return nil
}
