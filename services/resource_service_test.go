package services

import (
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceCreateDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := NewResourceService(db)
	c := seedCourse(t, db, "Go Basics", true)

	resource, err := svc.Create(c.ID, CreateResourceInput{
		Title: "Syllabus",
		Type:  courseModels.ResourceTypePDF,
		URL:   "https://example.com/syllabus.pdf",
	})
	require.NoError(t, err)
	assert.True(t, resource.IsActive)
	assert.Zero(t, resource.DownloadCount)
}

func TestResourceCreateRequiresTitleAndURL(t *testing.T) {
	db := setupTestDB(t)
	svc := NewResourceService(db)
	c := seedCourse(t, db, "Go Basics", true)

	_, err := svc.Create(c.ID, CreateResourceInput{Title: "No URL"})
	var serviceErr *ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, 400, serviceErr.Code)
}

func TestResourceIncrementDownloadCount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewResourceService(db)
	c := seedCourse(t, db, "Go Basics", true)

	resource, err := svc.Create(c.ID, CreateResourceInput{
		Title: "Slides",
		Type:  courseModels.ResourceTypePresentation,
		URL:   "https://example.com/slides",
	})
	require.NoError(t, err)

	require.NoError(t, svc.IncrementDownloadCount(c.ID, resource.ID))
	require.NoError(t, svc.IncrementDownloadCount(c.ID, resource.ID))

	fetched, err := svc.FindOne(c.ID, resource.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fetched.DownloadCount)
}

func TestResourceToggleActive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewResourceService(db)
	c := seedCourse(t, db, "Go Basics", true)

	resource, err := svc.Create(c.ID, CreateResourceInput{
		Title: "Link",
		Type:  courseModels.ResourceTypeLink,
		URL:   "https://example.com",
	})
	require.NoError(t, err)

	toggled, err := svc.ToggleActive(c.ID, resource.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	toggled, err = svc.ToggleActive(c.ID, resource.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)
}

func TestResourceFindByType(t *testing.T) {
	db := setupTestDB(t)
	svc := NewResourceService(db)
	c := seedCourse(t, db, "Go Basics", true)

	_, err := svc.Create(c.ID, CreateResourceInput{Title: "B doc", Type: courseModels.ResourceTypePDF, URL: "https://x/b"})
	require.NoError(t, err)
	_, err = svc.Create(c.ID, CreateResourceInput{Title: "A doc", Type: courseModels.ResourceTypePDF, URL: "https://x/a"})
	require.NoError(t, err)
	inactive, err := svc.Create(c.ID, CreateResourceInput{Title: "Hidden", Type: courseModels.ResourceTypePDF, URL: "https://x/h"})
	require.NoError(t, err)
	_, err = svc.ToggleActive(c.ID, inactive.ID)
	require.NoError(t, err)

	pdfs, err := svc.FindByType(c.ID, courseModels.ResourceTypePDF)
	require.NoError(t, err)
	require.Len(t, pdfs, 2)
	assert.Equal(t, "A doc", pdfs[0].Title)
	assert.Equal(t, "B doc", pdfs[1].Title)
}

func TestResourceRemoveIsHard(t *testing.T) {
	db := setupTestDB(t)
	svc := NewResourceService(db)
	c := seedCourse(t, db, "Go Basics", true)

	resource, err := svc.Create(c.ID, CreateResourceInput{
		Title: "Temp",
		Type:  courseModels.ResourceTypeOther,
		URL:   "https://example.com/tmp",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(c.ID, resource.ID))

	var count int64
	require.NoError(t, db.Unscoped().Model(&courseModels.Resource{}).Where("id = ?", resource.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestResourceFindOneScopedToCourse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewResourceService(db)
	c1 := seedCourse(t, db, "Course 1", true)
	c2 := seedCourse(t, db, "Course 2", true)

	resource, err := svc.Create(c1.ID, CreateResourceInput{
		Title: "Owned",
		Type:  courseModels.ResourceTypeOther,
		URL:   "https://example.com/owned",
	})
	require.NoError(t, err)

	_, err = svc.FindOne(c2.ID, resource.ID)
	var serviceErr *ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, 404, serviceErr.Code)
}
