package database

import (
	"fmt"

	"github.com/dribbl-id/dribbl-api/internal/config"
	"github.com/dribbl-id/dribbl-api/internal/logger"
	"github.com/dribbl-id/dribbl-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("database connection established")
	return nil
}

func Migrate() error {
	logger.Info("running database migrations")
	err := DB.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.News{},
		&models.Team{},
		&models.Player{},
		&models.Season{},
		&models.Match{},
		&models.PlayerBoxScore{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("database migrations completed")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
