package services

import (
	"strings"

	"lms/models"
	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// Course list filters
const (
	FilterAll       = "all"
	FilterMyCourses = "my-courses"
	FilterPublished = "published"
	FilterDraft     = "draft"
)

// CourseCounts is the per-filter cardinality summary for the caller
type CourseCounts struct {
	All       int64 `json:"all"`
	MyCourses int64 `json:"myCourses"`
	Published int64 `json:"published"`
	Draft     int64 `json:"draft"`
}

// CourseQueryService composes role-aware listing and counting queries over
// the course aggregate
type CourseQueryService struct {
	db *gorm.DB
}

func NewCourseQueryService(db *gorm.DB) *CourseQueryService {
	return &CourseQueryService{db: db}
}

// hasContentCond hides courses with an empty content tree from end users:
// a published course still needs at least one live module with a lesson.
const hasContentCond = "EXISTS (SELECT 1 FROM course_modules cm JOIN course_lessons cl ON cl.module_id = cm.id " +
	"WHERE cm.course_id = courses.id AND cm.is_deleted = ?)"

// activeEnrollmentJoin scopes a listing to the caller's ACTIVE enrollments
const activeEnrollmentJoin = "JOIN enrollments ON enrollments.course_id = courses.id " +
	"AND enrollments.user_id = ? AND enrollments.status = ?"

type policyKey struct {
	privileged bool
	filter     string
}

// coursePolicies maps (privilege tier, filter) to a predicate builder.
// A missing entry means the combination is not allowed for the caller.
var coursePolicies = map[policyKey]func(db *gorm.DB, userID uint) *gorm.DB{
	{false, FilterAll}: func(db *gorm.DB, _ uint) *gorm.DB {
		return db.Where("courses.is_published = ?", true).Where(hasContentCond, false)
	},
	{true, FilterAll}: func(db *gorm.DB, _ uint) *gorm.DB {
		return db
	},
	{false, FilterMyCourses}: func(db *gorm.DB, userID uint) *gorm.DB {
		return db.Joins(activeEnrollmentJoin, userID, courseModels.EnrollmentActive).
			Where("courses.is_published = ?", true)
	},
	{true, FilterMyCourses}: func(db *gorm.DB, userID uint) *gorm.DB {
		return db.Joins(activeEnrollmentJoin, userID, courseModels.EnrollmentActive)
	},
	{true, FilterPublished}: func(db *gorm.DB, _ uint) *gorm.DB {
		return db.Where("courses.is_published = ?", true)
	},
	{true, FilterDraft}: func(db *gorm.DB, _ uint) *gorm.DB {
		return db.Where("courses.is_published = ?", false)
	},
}

// List returns the courses visible to the caller under the given filter,
// ordered by name then description, with modules and lessons loaded in
// position order
func (s *CourseQueryService) List(filter, search, role string, userID uint) ([]courseModels.Course, error) {
	builder, err := policyFor(role, filter)
	if err != nil {
		return nil, err
	}

	db := builder(s.db.Model(&courseModels.Course{}), userID)
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(courses.name) LIKE ? OR LOWER(courses.description) LIKE ?", pattern, pattern)
	}

	var courses []courseModels.Course
	err = db.
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("position asc")
		}).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Resources").
		Order("courses.name asc").
		Order("courses.description asc").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// Counts reruns each filtered listing and takes its cardinality. myCourses
// is 0 without a caller id; published/draft are a privileged-only concept
// and stay 0 for ordinary callers.
func (s *CourseQueryService) Counts(role string, userID uint) (*CourseCounts, error) {
	counts := &CourseCounts{}

	all, err := s.countFor(FilterAll, role, userID)
	if err != nil {
		return nil, err
	}
	counts.All = all

	if userID != 0 {
		mine, err := s.countFor(FilterMyCourses, role, userID)
		if err != nil {
			return nil, err
		}
		counts.MyCourses = mine
	}

	if models.IsPrivileged(role) {
		published, err := s.countFor(FilterPublished, role, userID)
		if err != nil {
			return nil, err
		}
		counts.Published = published

		draft, err := s.countFor(FilterDraft, role, userID)
		if err != nil {
			return nil, err
		}
		counts.Draft = draft
	}

	return counts, nil
}

func (s *CourseQueryService) countFor(filter, role string, userID uint) (int64, error) {
	builder, err := policyFor(role, filter)
	if err != nil {
		return 0, err
	}

	var count int64
	err = builder(s.db.Model(&courseModels.Course{}), userID).Count(&count).Error
	return count, err
}

func policyFor(role, filter string) (func(db *gorm.DB, userID uint) *gorm.DB, error) {
	if filter == "" {
		filter = FilterAll
	}
	builder, ok := coursePolicies[policyKey{models.IsPrivileged(role), filter}]
	if !ok {
		switch filter {
		case FilterPublished, FilterDraft:
			return nil, ErrValidation("Publish-state filters require an editor or admin role")
		default:
			return nil, ErrValidation("Unknown course filter: " + filter)
		}
	}
	return builder, nil
}
