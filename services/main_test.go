package services

import (
	"testing"

	"lms/database"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory sqlite database with the full
// schema migrated. A single connection keeps every statement on the same
// memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigrations(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()

	user := models.User{
		Name:     "Test User",
		Email:    email,
		Role:     role,
		Password: "hashed",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedCourse(t *testing.T, db *gorm.DB, name string, published bool) *courseModels.Course {
	t.Helper()

	c := courseModels.Course{
		Name:        name,
		Description: name + " description",
		IsPublished: published,
	}
	require.NoError(t, db.Create(&c).Error)
	return &c
}

func seedModule(t *testing.T, db *gorm.DB, courseID uint, title string, position int) *courseModels.Module {
	t.Helper()

	m := courseModels.Module{
		CourseID: courseID,
		Title:    title,
		Position: position,
	}
	require.NoError(t, db.Create(&m).Error)
	return &m
}

func seedLesson(t *testing.T, db *gorm.DB, moduleID uint, title string, position int) *courseModels.Lesson {
	t.Helper()

	l := courseModels.Lesson{
		ModuleID:   moduleID,
		Title:      title,
		Position:   position,
		Type:       courseModels.LessonTypeLink,
		ContentURL: "https://example.com/" + title,
	}
	require.NoError(t, db.Create(&l).Error)
	return &l
}

func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }
