package services

import (
	"strings"

	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// ModuleService manages course modules and their ordinal positions
type ModuleService struct {
	db *gorm.DB
}

func NewModuleService(db *gorm.DB) *ModuleService {
	return &ModuleService{db: db}
}

// CreateModuleInput carries the fields accepted when creating a module
type CreateModuleInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Position    *int   `json:"position"`
	IsPublished *bool  `json:"is_published"`
}

// UpdateModuleInput carries the patchable module fields
type UpdateModuleInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Position    *int    `json:"position"`
	IsPublished *bool   `json:"is_published"`
}

// ReorderItem assigns a new position to one sibling
type ReorderItem struct {
	ID       uint `json:"id"`
	Position int  `json:"position"`
}

// Create inserts a module, allocating the next free position when none is
// supplied. Allocation and insert share one transaction.
func (s *ModuleService) Create(courseID uint, input CreateModuleInput) (*courseModels.Module, error) {
	var c courseModels.Course
	if err := s.db.First(&c, courseID).Error; err != nil {
		return nil, ErrNotFound("Course not found")
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrValidation("Module title is required")
	}

	module := courseModels.Module{
		CourseID:    courseID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		IsPublished: input.IsPublished != nil && *input.IsPublished,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if input.Position != nil && *input.Position >= 1 {
			module.Position = *input.Position
		} else {
			module.Position = nextModulePosition(tx, courseID)
		}
		return tx.Create(&module).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict("A module with this position already exists in the course")
		}
		return nil, err
	}

	return &module, nil
}

// FindAll lists the course's non-deleted modules ordered by position
func (s *ModuleService) FindAll(courseID uint, search string) ([]courseModels.Module, error) {
	db := s.db.Where("course_id = ? AND is_deleted = ?", courseID, false)
	if search != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var modules []courseModels.Module
	if err := db.Order("position asc").Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

// FindOne fetches a non-deleted module scoped to its course
func (s *ModuleService) FindOne(courseID, id uint) (*courseModels.Module, error) {
	var module courseModels.Module
	err := s.db.Where("id = ? AND course_id = ? AND is_deleted = ?", id, courseID, false).First(&module).Error
	if err != nil {
		return nil, ErrNotFound("Course module not found")
	}
	return &module, nil
}

// Update patches the module field-by-field
func (s *ModuleService) Update(courseID, id uint, input UpdateModuleInput) (*courseModels.Module, error) {
	module, err := s.FindOne(courseID, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		module.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		module.Description = strings.TrimSpace(*input.Description)
	}
	if input.Position != nil {
		module.Position = *input.Position
	}
	if input.IsPublished != nil {
		module.IsPublished = *input.IsPublished
	}

	if err := s.db.Save(module).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict("A module with this position already exists in the course")
		}
		return nil, err
	}
	return module, nil
}

// Publish marks the module as published
func (s *ModuleService) Publish(courseID, id uint) (*courseModels.Module, error) {
	return s.setPublished(courseID, id, true)
}

// Unpublish marks the module as draft
func (s *ModuleService) Unpublish(courseID, id uint) (*courseModels.Module, error) {
	return s.setPublished(courseID, id, false)
}

func (s *ModuleService) setPublished(courseID, id uint, published bool) (*courseModels.Module, error) {
	module, err := s.FindOne(courseID, id)
	if err != nil {
		return nil, err
	}
	module.IsPublished = published
	if err := s.db.Save(module).Error; err != nil {
		return nil, err
	}
	return module, nil
}

// Delete soft-deletes the module. The position is parked at -id so the
// vacated slot can be reused without hitting the unique index. Lessons are
// left in place; every listing path goes through live modules, so they
// follow the module out of sight but stay in the store.
func (s *ModuleService) Delete(courseID, id uint) error {
	module, err := s.FindOne(courseID, id)
	if err != nil {
		return err
	}

	module.IsDeleted = true
	module.Position = -int(module.ID)
	return s.db.Save(module).Error
}

// Reorder applies the supplied positions to the course's modules in one
// batch and returns the freshly ordered sibling list. Supplied positions are
// accepted as-is; duplicates in the input surface as a store conflict, not a
// pre-validation failure.
func (s *ModuleService) Reorder(courseID uint, items []ReorderItem) ([]courseModels.Module, error) {
	ids := make([]uint, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	var modules []courseModels.Module
	if err := s.db.Where("id IN ? AND course_id = ? AND is_deleted = ?", ids, courseID, false).Find(&modules).Error; err != nil {
		return nil, err
	}
	if len(modules) != len(items) {
		return nil, ErrValidation("Some course modules not found")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Park the batch outside the live range first; the unique index is
		// checked per statement, so in-place swaps would collide transiently.
		for _, module := range modules {
			if err := tx.Model(&courseModels.Module{}).Where("id = ?", module.ID).
				Update("position", -int(module.ID)).Error; err != nil {
				return err
			}
		}
		for _, item := range items {
			if err := tx.Model(&courseModels.Module{}).Where("id = ?", item.ID).
				Update("position", item.Position).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict("A module with this position already exists in the course")
		}
		return nil, err
	}

	return s.FindAll(courseID, "")
}
