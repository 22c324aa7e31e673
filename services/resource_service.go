package services

import (
	"fmt"
	"strings"

	courseModels "lms/models/course"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ResourceService manages the course's flat resource set. Resources carry
// no ordering invariant.
type ResourceService struct {
	db *gorm.DB
}

func NewResourceService(db *gorm.DB) *ResourceService {
	return &ResourceService{db: db}
}

// CreateResourceInput carries the fields accepted when creating a resource
type CreateResourceInput struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Type        string         `json:"type"`
	URL         string         `json:"url"`
	FileSize    int64          `json:"file_size"`
	MimeType    string         `json:"mime_type"`
	IsActive    *bool          `json:"is_active"`
	Metadata    datatypes.JSON `json:"metadata"`
}

// UpdateResourceInput carries the patchable resource fields
type UpdateResourceInput struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Type        *string         `json:"type"`
	URL         *string         `json:"url"`
	FileSize    *int64          `json:"file_size"`
	MimeType    *string         `json:"mime_type"`
	IsActive    *bool           `json:"is_active"`
	Metadata    *datatypes.JSON `json:"metadata"`
}

// ResourceFilter narrows a resource listing
type ResourceFilter struct {
	Title       string
	Description string
	Type        string
	IsActive    *bool
}

// Create inserts a resource with the download counter at zero
func (s *ResourceService) Create(courseID uint, input CreateResourceInput) (*courseModels.Resource, error) {
	var c courseModels.Course
	if err := s.db.First(&c, courseID).Error; err != nil {
		return nil, ErrNotFound("Course not found")
	}

	title := strings.TrimSpace(input.Title)
	url := strings.TrimSpace(input.URL)
	if title == "" || url == "" {
		return nil, ErrValidation("Resource title and url are required")
	}

	resourceType := input.Type
	if resourceType == "" {
		resourceType = courseModels.ResourceTypeOther
	}

	resource := courseModels.Resource{
		CourseID:    courseID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Type:        resourceType,
		URL:         url,
		FileSize:    input.FileSize,
		MimeType:    input.MimeType,
		IsActive:    input.IsActive == nil || *input.IsActive,
		Metadata:    input.Metadata,
	}

	if err := s.db.Create(&resource).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

// FindAll lists the course's resources, newest first
func (s *ResourceService) FindAll(courseID uint, filter ResourceFilter) ([]courseModels.Resource, error) {
	db := s.db.Where("course_id = ?", courseID)

	if filter.Title != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Title)+"%")
	}
	if filter.Description != "" {
		db = db.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(filter.Description)+"%")
	}
	if filter.Type != "" {
		db = db.Where("type = ?", filter.Type)
	}
	if filter.IsActive != nil {
		db = db.Where("is_active = ?", *filter.IsActive)
	}

	var resources []courseModels.Resource
	if err := db.Order("created_at desc").Order("title asc").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

// FindOne fetches a resource scoped to its course
func (s *ResourceService) FindOne(courseID, id uint) (*courseModels.Resource, error) {
	var resource courseModels.Resource
	err := s.db.Where("id = ? AND course_id = ?", id, courseID).First(&resource).Error
	if err != nil {
		return nil, ErrNotFound(fmt.Sprintf("Course resource with ID %d not found in course %d", id, courseID))
	}
	return &resource, nil
}

// Update patches the resource field-by-field
func (s *ResourceService) Update(courseID, id uint, input UpdateResourceInput) (*courseModels.Resource, error) {
	resource, err := s.FindOne(courseID, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		resource.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		resource.Description = strings.TrimSpace(*input.Description)
	}
	if input.Type != nil {
		resource.Type = *input.Type
	}
	if input.URL != nil {
		resource.URL = strings.TrimSpace(*input.URL)
	}
	if input.FileSize != nil {
		resource.FileSize = *input.FileSize
	}
	if input.MimeType != nil {
		resource.MimeType = *input.MimeType
	}
	if input.IsActive != nil {
		resource.IsActive = *input.IsActive
	}
	if input.Metadata != nil {
		resource.Metadata = *input.Metadata
	}

	if err := s.db.Save(resource).Error; err != nil {
		return nil, err
	}
	return resource, nil
}

// Remove deletes the resource permanently
func (s *ResourceService) Remove(courseID, id uint) error {
	resource, err := s.FindOne(courseID, id)
	if err != nil {
		return err
	}
	return s.db.Unscoped().Delete(resource).Error
}

// IncrementDownloadCount bumps the monotone download counter
func (s *ResourceService) IncrementDownloadCount(courseID, id uint) error {
	resource, err := s.FindOne(courseID, id)
	if err != nil {
		return err
	}
	return s.db.Model(resource).
		UpdateColumn("download_count", gorm.Expr("download_count + ?", 1)).Error
}

// ToggleActive flips the resource's active flag
func (s *ResourceService) ToggleActive(courseID, id uint) (*courseModels.Resource, error) {
	resource, err := s.FindOne(courseID, id)
	if err != nil {
		return nil, err
	}
	resource.IsActive = !resource.IsActive
	if err := s.db.Save(resource).Error; err != nil {
		return nil, err
	}
	return resource, nil
}

// FindByType lists the course's active resources of one type
func (s *ResourceService) FindByType(courseID uint, resourceType string) ([]courseModels.Resource, error) {
	var resources []courseModels.Resource
	err := s.db.Where("course_id = ? AND type = ? AND is_active = ?", courseID, resourceType, true).
		Order("title asc").Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}
