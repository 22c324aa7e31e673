package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment status values
const (
	EnrollmentActive    = "ACTIVE"
	EnrollmentCompleted = "COMPLETED"
	EnrollmentCancelled = "CANCELLED"
)

// Enrollment source values
const (
	EnrollmentSourceSelf   = "SELF"
	EnrollmentSourceAdmin  = "ADMIN"
	EnrollmentSourceEditor = "EDITOR"
)

// Enrollment tracks a user's membership in a course.
// A user enrolls in a course at most once; re-enrollment requires
// removing the prior row first.
type Enrollment struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"not null;uniqueIndex:uq_enrollment_user_course;index"`
	CourseID    uint       `json:"course_id" gorm:"not null;uniqueIndex:uq_enrollment_user_course;index"`
	Status      string     `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, COMPLETED, CANCELLED
	Source      string     `json:"source" gorm:"default:'SELF'"`   // SELF, ADMIN, EDITOR
	EnrolledAt  time.Time  `json:"enrolled_at" gorm:"autoCreateTime"`
	CompletedAt *time.Time `json:"completed_at"`
}
