package services

import (
	"time"

	"lms/models"
	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// EnrollmentService manages course membership. A user enrolls in a course
// at most once; the unique index enforces it at the store boundary.
type EnrollmentService struct {
	db *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{db: db}
}

// enrollmentSource maps the enrolling caller's role to the recorded source
func enrollmentSource(role string) string {
	switch role {
	case models.RoleAdmin:
		return courseModels.EnrollmentSourceAdmin
	case models.RoleEditor:
		return courseModels.EnrollmentSourceEditor
	default:
		return courseModels.EnrollmentSourceSelf
	}
}

// Enroll creates an ACTIVE enrollment for the user. Ordinary users can only
// enroll in published courses; a duplicate surfaces as a conflict.
func (s *EnrollmentService) Enroll(userID, courseID uint, role string) (*courseModels.Enrollment, error) {
	var c courseModels.Course
	if err := s.db.First(&c, courseID).Error; err != nil {
		return nil, ErrNotFound("Course not found")
	}
	if !c.IsPublished && !models.IsPrivileged(role) {
		return nil, ErrValidation("Cannot enroll in an unpublished course")
	}

	enrollment := courseModels.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		Status:     courseModels.EnrollmentActive,
		Source:     enrollmentSource(role),
		EnrolledAt: time.Now(),
	}

	if err := s.db.Create(&enrollment).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict("User is already enrolled in this course")
		}
		return nil, err
	}
	return &enrollment, nil
}

// FindOne fetches an enrollment by id
func (s *EnrollmentService) FindOne(id uint) (*courseModels.Enrollment, error) {
	var enrollment courseModels.Enrollment
	if err := s.db.First(&enrollment, id).Error; err != nil {
		return nil, ErrNotFound("Enrollment not found")
	}
	return &enrollment, nil
}

// FindByUser lists the user's enrollments, newest first
func (s *EnrollmentService) FindByUser(userID uint) ([]courseModels.Enrollment, error) {
	var enrollments []courseModels.Enrollment
	err := s.db.Where("user_id = ?", userID).Order("enrolled_at desc").Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

// FindByCourse lists the course's enrollments, newest first
func (s *EnrollmentService) FindByCourse(courseID uint) ([]courseModels.Enrollment, error) {
	var enrollments []courseModels.Enrollment
	err := s.db.Where("course_id = ?", courseID).Order("enrolled_at desc").Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

// Complete marks the enrollment COMPLETED and stamps the completion time
func (s *EnrollmentService) Complete(id uint) (*courseModels.Enrollment, error) {
	enrollment, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	enrollment.Status = courseModels.EnrollmentCompleted
	enrollment.CompletedAt = &now

	if err := s.db.Save(enrollment).Error; err != nil {
		return nil, err
	}
	return enrollment, nil
}

// Cancel marks the enrollment CANCELLED
func (s *EnrollmentService) Cancel(id uint) (*courseModels.Enrollment, error) {
	enrollment, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}

	enrollment.Status = courseModels.EnrollmentCancelled

	if err := s.db.Save(enrollment).Error; err != nil {
		return nil, err
	}
	return enrollment, nil
}

// Delete removes the enrollment row permanently, freeing the user to
// re-enroll
func (s *EnrollmentService) Delete(id uint) error {
	enrollment, err := s.FindOne(id)
	if err != nil {
		return err
	}
	return s.db.Unscoped().Delete(enrollment).Error
}
