package database

import (
	"fmt"
	"log"
	"os"

	"lms/config"
	"lms/models"
	courseModels "lms/models/course"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to the configured database
func ConnectDb() {
	db, err := gorm.Open(openDialector(), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
		os.Exit(2)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)   // Maximum open connections
	sqlDB.SetMaxIdleConns(5)    // Maximum idle connections
	sqlDB.SetConnMaxLifetime(0) // No timeout

	// Run database migrations
	if err := RunMigrations(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// openDialector picks the GORM driver from DB_DRIVER
func openDialector() gorm.Dialector {
	cfg := config.AppConfig

	switch cfg.DBDriver {
	case "sqlite":
		return sqlite.Open(cfg.DBName)
	case "mysql":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
		)
		return mysql.Open(dsn)
	default:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		)
		return postgres.Open(dsn)
	}
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) error {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.Lesson{},
		&courseModels.Resource{},
		&courseModels.Enrollment{},
	)
	if err != nil {
		return err
	}

	log.Println("Migrations completed successfully.")
	return nil
}
