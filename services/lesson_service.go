package services

import (
	"strings"

	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// LessonService manages lessons within a module
type LessonService struct {
	db *gorm.DB
}

func NewLessonService(db *gorm.DB) *LessonService {
	return &LessonService{db: db}
}

// CreateLessonInput carries the fields accepted when creating a lesson
type CreateLessonInput struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Position    *int   `json:"position"`
	Type        string `json:"type"`
	ContentURL  string `json:"content_url"`
	HTML        string `json:"html"`
	DurationSec int    `json:"duration_sec"`
	IsPublished *bool  `json:"is_published"`
}

// UpdateLessonInput carries the patchable lesson fields
type UpdateLessonInput struct {
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Position    *int    `json:"position"`
	Type        *string `json:"type"`
	ContentURL  *string `json:"content_url"`
	HTML        *string `json:"html"`
	DurationSec *int    `json:"duration_sec"`
	IsPublished *bool   `json:"is_published"`
}

// validateLessonContent enforces the per-type content requirement:
// TEXT lessons carry HTML, every other type carries a content URL.
func validateLessonContent(lessonType, html, contentURL string) error {
	if lessonType == courseModels.LessonTypeText {
		if strings.TrimSpace(html) == "" {
			return ErrValidation("HTML content is required for TEXT type lessons")
		}
		return nil
	}
	if strings.TrimSpace(contentURL) == "" {
		return ErrValidation("Content URL is required for non-TEXT type lessons")
	}
	return nil
}

// Create inserts a lesson, allocating the next free position when none is
// supplied. Content is validated before any write.
func (s *LessonService) Create(moduleID uint, input CreateLessonInput) (*courseModels.Lesson, error) {
	var module courseModels.Module
	if err := s.db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return nil, ErrNotFound("Course module not found")
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrValidation("Lesson title is required")
	}

	lessonType := input.Type
	if lessonType == "" {
		lessonType = courseModels.LessonTypeLink
	}
	if err := validateLessonContent(lessonType, input.HTML, input.ContentURL); err != nil {
		return nil, err
	}

	lesson := courseModels.Lesson{
		ModuleID:    moduleID,
		Title:       title,
		Subtitle:    strings.TrimSpace(input.Subtitle),
		Type:        lessonType,
		ContentURL:  strings.TrimSpace(input.ContentURL),
		HTML:        input.HTML,
		DurationSec: input.DurationSec,
		IsPublished: input.IsPublished != nil && *input.IsPublished,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if input.Position != nil && *input.Position >= 1 {
			lesson.Position = *input.Position
		} else {
			lesson.Position = nextLessonPosition(tx, moduleID)
		}
		return tx.Create(&lesson).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict("A lesson with this position already exists in the module")
		}
		return nil, err
	}

	return &lesson, nil
}

// FindAll lists the module's lessons ordered by position
func (s *LessonService) FindAll(moduleID uint, search string) ([]courseModels.Lesson, error) {
	db := s.db.Where("module_id = ?", moduleID)
	if search != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var lessons []courseModels.Lesson
	if err := db.Order("position asc").Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

// FindOne fetches a lesson by id
func (s *LessonService) FindOne(id uint) (*courseModels.Lesson, error) {
	var lesson courseModels.Lesson
	if err := s.db.First(&lesson, id).Error; err != nil {
		return nil, ErrNotFound("Course lesson not found")
	}
	return &lesson, nil
}

// Update patches the lesson field-by-field. Whenever the patch touches type,
// html or content URL the merged record is re-validated, so a partial update
// cannot leave the lesson content-less.
func (s *LessonService) Update(id uint, input UpdateLessonInput) (*courseModels.Lesson, error) {
	lesson, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		lesson.Title = strings.TrimSpace(*input.Title)
	}
	if input.Subtitle != nil {
		lesson.Subtitle = strings.TrimSpace(*input.Subtitle)
	}
	if input.Position != nil {
		lesson.Position = *input.Position
	}
	if input.Type != nil {
		lesson.Type = *input.Type
	}
	if input.ContentURL != nil {
		lesson.ContentURL = strings.TrimSpace(*input.ContentURL)
	}
	if input.HTML != nil {
		lesson.HTML = *input.HTML
	}
	if input.DurationSec != nil {
		lesson.DurationSec = *input.DurationSec
	}
	if input.IsPublished != nil {
		lesson.IsPublished = *input.IsPublished
	}

	if input.Type != nil || input.ContentURL != nil || input.HTML != nil {
		if err := validateLessonContent(lesson.Type, lesson.HTML, lesson.ContentURL); err != nil {
			return nil, err
		}
	}

	if err := s.db.Save(lesson).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict("A lesson with this position already exists in the module")
		}
		return nil, err
	}
	return lesson, nil
}

// Delete removes the lesson permanently
func (s *LessonService) Delete(id uint) error {
	lesson, err := s.FindOne(id)
	if err != nil {
		return err
	}
	return s.db.Unscoped().Delete(lesson).Error
}

// Reorder applies the supplied positions to the module's lessons in one
// batch and returns the freshly ordered sibling list.
func (s *LessonService) Reorder(moduleID uint, items []ReorderItem) ([]courseModels.Lesson, error) {
	ids := make([]uint, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	var lessons []courseModels.Lesson
	if err := s.db.Where("id IN ? AND module_id = ?", ids, moduleID).Find(&lessons).Error; err != nil {
		return nil, err
	}
	if len(lessons) != len(items) {
		return nil, ErrValidation("Some course lessons not found")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, lesson := range lessons {
			if err := tx.Model(&courseModels.Lesson{}).Where("id = ?", lesson.ID).
				Update("position", -int(lesson.ID)).Error; err != nil {
				return err
			}
		}
		for _, item := range items {
			if err := tx.Model(&courseModels.Lesson{}).Where("id = ?", item.ID).
				Update("position", item.Position).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict("A lesson with this position already exists in the module")
		}
		return nil, err
	}

	return s.FindAll(moduleID, "")
}
