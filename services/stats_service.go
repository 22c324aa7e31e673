package services

import (
	"lms/models"
	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// Stats is the admin dashboard summary
type Stats struct {
	NumberOfUsers            int64 `json:"number_of_users"`
	NumberOfCourses          int64 `json:"number_of_courses"`
	NumberOfPublishedCourses int64 `json:"number_of_published_courses"`
	NumberOfEnrollments      int64 `json:"number_of_enrollments"`
}

// StatsService computes platform-wide counts for admins
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

func (s *StatsService) GetStats() (*Stats, error) {
	stats := &Stats{}

	if err := s.db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&stats.NumberOfUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&courseModels.Course{}).Count(&stats.NumberOfCourses).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&courseModels.Course{}).Where("is_published = ?", true).Count(&stats.NumberOfPublishedCourses).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&courseModels.Enrollment{}).Count(&stats.NumberOfEnrollments).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
