package services

import (
	"fmt"
	"strings"

	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// CourseService is the aggregate writer: it creates and updates a course
// together with its nested modules, lessons and resources inside a single
// transaction. No partial course tree is ever visible.
type CourseService struct {
	db *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{db: db}
}

// CourseModuleInput is a nested module in a course create/update payload
type CourseModuleInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPublished *bool  `json:"is_published"`
}

// CourseLessonInput is a nested lesson in a course payload. It carries the
// legacy "simple" shape: Content is a URL and the lesson is stored as LINK.
type CourseLessonInput struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	ModuleIndex *int   `json:"module_index"`
	IsPublished *bool  `json:"is_published"`
}

// CourseResourceInput is a nested resource in a course create payload,
// also in the legacy simple shape (name + free-form type string).
type CourseResourceInput struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	IsPublished *bool  `json:"is_published"`
}

// CreateCourseInput is the aggregate create payload
type CreateCourseInput struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	ImageURL    string                `json:"image_url"`
	IsPublished *bool                 `json:"is_published"`
	Modules     []CourseModuleInput   `json:"modules"`
	Lessons     []CourseLessonInput   `json:"lessons"`
	Resources   []CourseResourceInput `json:"resources"`
}

// UpdateCourseInput is the aggregate patch. A present nested collection
// replaces the existing one wholesale; absent collections are untouched.
type UpdateCourseInput struct {
	Name        *string                `json:"name"`
	Description *string                `json:"description"`
	ImageURL    *string                `json:"image_url"`
	IsPublished *bool                  `json:"is_published"`
	Modules     *[]CourseModuleInput   `json:"modules"`
	Lessons     *[]CourseLessonInput   `json:"lessons"`
	Resources   *[]CourseResourceInput `json:"resources"`
}

// mapResourceType maps the legacy simple-shape type strings onto the
// canonical resource types
func mapResourceType(t string) string {
	switch strings.ToLower(t) {
	case "pdf":
		return courseModels.ResourceTypePDF
	case "url":
		return courseModels.ResourceTypeLink
	case "zip":
		return courseModels.ResourceTypeDocument
	default:
		return courseModels.ResourceTypeOther
	}
}

// Save creates a course with its full nested tree atomically
func (s *CourseService) Save(input CreateCourseInput) (*courseModels.Course, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrValidation("Course name is required")
	}

	var courseID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		c := courseModels.Course{
			Name:        name,
			Description: strings.TrimSpace(input.Description),
			ImageURL:    strings.TrimSpace(input.ImageURL),
			IsPublished: input.IsPublished != nil && *input.IsPublished,
		}
		if err := tx.Create(&c).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrConflict("Course already exists")
			}
			return err
		}
		courseID = c.ID

		modules, err := createModules(tx, c.ID, input.Modules)
		if err != nil {
			return err
		}

		if len(input.Lessons) > 0 && len(modules) == 0 {
			return ErrValidation("cannot create lessons without modules")
		}
		if err := createLessons(tx, modules, input.Lessons); err != nil {
			return err
		}

		return createResources(tx, c.ID, input.Resources)
	})
	if err != nil {
		return nil, err
	}

	return s.FindByID(courseID)
}

// Update patches scalar fields and replaces any nested collection present
// in the patch, all inside one transaction
func (s *CourseService) Update(id uint, input UpdateCourseInput) (*courseModels.Course, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var c courseModels.Course
		if err := tx.First(&c, id).Error; err != nil {
			return ErrNotFound("Course not found")
		}

		if input.Name != nil {
			c.Name = strings.TrimSpace(*input.Name)
		}
		if input.Description != nil {
			c.Description = strings.TrimSpace(*input.Description)
		}
		if input.ImageURL != nil {
			c.ImageURL = strings.TrimSpace(*input.ImageURL)
		}
		if input.IsPublished != nil {
			c.IsPublished = *input.IsPublished
		}
		if err := tx.Save(&c).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrConflict("Course already exists")
			}
			return err
		}

		if input.Modules != nil {
			if err := deleteModuleTree(tx, c.ID); err != nil {
				return err
			}
			if _, err := createModules(tx, c.ID, *input.Modules); err != nil {
				return err
			}
		}

		if input.Lessons != nil {
			modules, err := liveModules(tx, c.ID)
			if err != nil {
				return err
			}
			moduleIDs := make([]uint, len(modules))
			for i, m := range modules {
				moduleIDs[i] = m.ID
			}
			if len(moduleIDs) > 0 {
				if err := tx.Unscoped().Where("module_id IN ?", moduleIDs).Delete(&courseModels.Lesson{}).Error; err != nil {
					return err
				}
			}
			if len(*input.Lessons) > 0 && len(modules) == 0 {
				return ErrValidation("cannot create lessons without modules")
			}
			if err := createLessons(tx, modules, *input.Lessons); err != nil {
				return err
			}
		}

		if input.Resources != nil {
			if err := tx.Unscoped().Where("course_id = ?", c.ID).Delete(&courseModels.Resource{}).Error; err != nil {
				return err
			}
			if err := createResources(tx, c.ID, *input.Resources); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.FindByID(id)
}

// FindByID returns the course with modules (ordered), lessons (ordered) and
// resources eagerly loaded
func (s *CourseService) FindByID(id uint) (*courseModels.Course, error) {
	var c courseModels.Course
	err := s.db.
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("position asc")
		}).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Resources").
		First(&c, id).Error
	if err != nil {
		return nil, ErrNotFound(fmt.Sprintf("Could not find course with matching id %d", id))
	}
	return &c, nil
}

// Delete removes the course and everything it owns
func (s *CourseService) Delete(id uint) error {
	var c courseModels.Course
	if err := s.db.First(&c, id).Error; err != nil {
		return ErrNotFound("Course not found")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteModuleTree(tx, c.ID); err != nil {
			return err
		}
		if err := tx.Unscoped().Where("course_id = ?", c.ID).Delete(&courseModels.Resource{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("course_id = ?", c.ID).Delete(&courseModels.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&c).Error
	})
}

// Count returns the total number of courses
func (s *CourseService) Count() (int64, error) {
	var count int64
	err := s.db.Model(&courseModels.Course{}).Count(&count).Error
	return count, err
}

// createModules inserts the nested modules at positions 1..n in input order
func createModules(tx *gorm.DB, courseID uint, inputs []CourseModuleInput) ([]courseModels.Module, error) {
	modules := make([]courseModels.Module, 0, len(inputs))
	for i, m := range inputs {
		module := courseModels.Module{
			CourseID:    courseID,
			Title:       strings.TrimSpace(m.Title),
			Description: strings.TrimSpace(m.Description),
			Position:    i + 1,
			IsPublished: m.IsPublished != nil && *m.IsPublished,
		}
		if module.Title == "" {
			return nil, ErrValidation("Module title is required")
		}
		if err := tx.Create(&module).Error; err != nil {
			if isUniqueViolation(err) {
				return nil, ErrConflict("A module with this position already exists in the course")
			}
			return nil, err
		}
		modules = append(modules, module)
	}
	return modules, nil
}

// createLessons inserts the nested lessons, resolving each target module by
// moduleIndex (out-of-range indexes fall back to the first module) and
// assigning a per-module running position starting at 1
func createLessons(tx *gorm.DB, modules []courseModels.Module, inputs []CourseLessonInput) error {
	counters := make(map[uint]int)
	for _, l := range inputs {
		idx := 0
		if l.ModuleIndex != nil {
			idx = *l.ModuleIndex
		}
		if idx < 0 || idx >= len(modules) {
			idx = 0
		}
		module := modules[idx]

		title := strings.TrimSpace(l.Title)
		content := strings.TrimSpace(l.Content)
		if title == "" || content == "" {
			return ErrValidation("Lesson title and content are required")
		}

		counters[module.ID]++
		lesson := courseModels.Lesson{
			ModuleID:    module.ID,
			Title:       title,
			ContentURL:  content,
			Position:    counters[module.ID],
			Type:        courseModels.LessonTypeLink,
			IsPublished: l.IsPublished != nil && *l.IsPublished,
		}
		if err := tx.Create(&lesson).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrConflict("A lesson with this position already exists in the module")
			}
			return err
		}
	}
	return nil
}

// createResources inserts the nested resources with the legacy type mapping
// applied and isActive defaulting to true
func createResources(tx *gorm.DB, courseID uint, inputs []CourseResourceInput) error {
	for _, r := range inputs {
		title := strings.TrimSpace(r.Name)
		url := strings.TrimSpace(r.URL)
		if title == "" || url == "" {
			return ErrValidation("Resource name and url are required")
		}
		resource := courseModels.Resource{
			CourseID: courseID,
			Title:    title,
			Type:     mapResourceType(r.Type),
			URL:      url,
			IsActive: r.IsPublished == nil || *r.IsPublished,
		}
		if err := tx.Create(&resource).Error; err != nil {
			return err
		}
	}
	return nil
}

// liveModules returns the course's non-deleted modules ordered by position
func liveModules(tx *gorm.DB, courseID uint) ([]courseModels.Module, error) {
	var modules []courseModels.Module
	err := tx.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("position asc").Find(&modules).Error
	return modules, err
}

// deleteModuleTree hard-deletes every module of the course (soft-deleted
// ones included) together with their lessons
func deleteModuleTree(tx *gorm.DB, courseID uint) error {
	var moduleIDs []uint
	if err := tx.Model(&courseModels.Module{}).Unscoped().
		Where("course_id = ?", courseID).Pluck("id", &moduleIDs).Error; err != nil {
		return err
	}
	if len(moduleIDs) > 0 {
		if err := tx.Unscoped().Where("module_id IN ?", moduleIDs).Delete(&courseModels.Lesson{}).Error; err != nil {
			return err
		}
	}
	return tx.Unscoped().Where("course_id = ?", courseID).Delete(&courseModels.Module{}).Error
}
