package services

import (
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleCreateAllocatesFirstPosition(t *testing.T) {
	db := setupTestDB(t)
	svc := NewModuleService(db)
	c := seedCourse(t, db, "Go Basics", true)

	module, err := svc.Create(c.ID, CreateModuleInput{Title: "Intro"})
	require.NoError(t, err)
	assert.Equal(t, 1, module.Position)
}

func TestModuleCreateAllocatesMaxPlusOne(t *testing.T) {
	db := setupTestDB(t)
	svc := NewModuleService(db)
	c := seedCourse(t, db, "Go Basics", true)
	seedModule(t, db, c.ID, "M1", 1)
	seedModule(t, db, c.ID, "M2", 5)

	module, err := svc.Create(c.ID, CreateModuleInput{Title: "M3"})
	require.NoError(t, err)
	assert.Equal(t, 6, module.Position)
}

func TestModuleCreateAllocatorIgnoresSoftDeleted(t *testing.T) {
	db := setupTestDB(t)
	svc := NewModuleService(db)
	c := seedCourse(t, db, "Go Basics", true)
	seedModule(t, db, c.ID, "M1", 1)
	m2 := seedModule(t, db, c.ID, "M2", 2)

	require.NoError(t, svc.Delete(c.ID, m2.ID))

	module, err := svc.Create(c.ID, CreateModuleInput{Title: "M3"})
	require.NoError(t, err)
	assert.Equal(t, 2, module.Position)
}

func TestModuleCreateExplicitPositionConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := NewModuleService(db)
	c := seedCourse(t, db, "Go Basics", true)
	seedModule(t, db, c.ID, "M1", 1)

	_, err := svc.Create(c.ID, CreateModuleInput{Title: "M2", Position: intPtr(1)})
	require.Error(t, err)

	var serviceErr *ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, "A module with this position already exists in the course", serviceErr.Message)
}

func TestModuleCreateMissingCourse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewModuleService(db)

	_, err := svc.Create(999, CreateModuleInput{Title: "Orphan"})
	var serviceErr *ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, 404, serviceErr.Code)
}

func TestModuleReorderSwap(t *testing.T) {
	db := setupTestDB(t)
	svc := NewModuleService(db)
	c := seedCourse(t, db, "Go Basics", true)
	a := seedModule(t, db, c.ID, "A", 1)
	b := seedModule(t, db, c.ID, "B", 2)

	ordered, err := svc.Reorder(c.ID, []ReorderItem{
		{ID: a.ID, Position: 2},
		{ID: b.ID, Position: 1},
	})
	require.NoError(t, err)
	require.Len(t, ordered, 2)
	assert.Equal(t, "B", ordered[0].Title)
	assert.Equal(t, 1, ordered[0].Position)
	assert.Equal(t, "A", ordered[1].Title)
	assert.Equal(t, 2, ordered[1].Position)
}

func TestModuleReorderIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewModuleService(db)
	c := seedCourse(t, db, "Go Basics", true)
	a := seedModule(t, db, c.ID, "A", 1)
	b := seedModule(t, db, c.ID, "B", 2)
	x := seedModule(t, db, c.ID, "X", 3)

	items := []ReorderItem{
		{ID: a.ID, Position: 3},
		{ID: b.ID, Position: 1},
		{ID: x.ID, Position: 2},
	}

	first, err := svc.Reorder(c.ID, items)
	require.NoError(t, err)
	second, err := svc.Reorder(c.ID, items)
	require.NoError(t, err)

	require.Len(t, second, 3)
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Position, second[i].Position)
	}
}

func TestModuleReorderRejectsForeignSiblings(t *testing.T) {
	db := setupTestDB(t)
	svc := NewModuleService(db)
	c1 := seedCourse(t, db, "Course 1", true)
	c2 := seedCourse(t, db, "Course 2", true)
	m1 := seedModule(t, db, c1.ID, "M1", 1)
	other := seedModule(t, db, c2.ID, "Other", 1)

	_, err := svc.Reorder(c1.ID, []ReorderItem{
		{ID: m1.ID, Position: 2},
		{ID: other.ID, Position: 1},
	})
	var serviceErr *ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, "Some course modules not found", serviceErr.Message)
}

func TestModuleReorderDuplicatePositionsConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := NewModuleService(db)
	c := seedCourse(t, db, "Go Basics", true)
	a := seedModule(t, db, c.ID, "A", 1)
	b := seedModule(t, db, c.ID, "B", 2)

	_, err := svc.Reorder(c.ID, []ReorderItem{
		{ID: a.ID, Position: 1},
		{ID: b.ID, Position: 1},
	})
	var serviceErr *ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, 409, serviceErr.Code)
}

func TestModuleDeleteIsSoftAndFreesSlot(t *testing.T) {
	db := setupTestDB(t)
	svc := NewModuleService(db)
	c := seedCourse(t, db, "Go Basics", true)
	m := seedModule(t, db, c.ID, "M1", 1)
	seedLesson(t, db, m.ID, "L1", 1)

	require.NoError(t, svc.Delete(c.ID, m.ID))

	// Row survives with the flag set, but the listing hides it
	var raw courseModels.Module
	require.NoError(t, db.First(&raw, m.ID).Error)
	assert.True(t, raw.IsDeleted)

	modules, err := svc.FindAll(c.ID, "")
	require.NoError(t, err)
	assert.Empty(t, modules)

	// Lessons stay in the store, hidden behind the dead module
	var lessonCount int64
	require.NoError(t, db.Model(&courseModels.Lesson{}).Where("module_id = ?", m.ID).Count(&lessonCount).Error)
	assert.Equal(t, int64(1), lessonCount)

	// The vacated slot is reusable
	reused, err := svc.Create(c.ID, CreateModuleInput{Title: "M2", Position: intPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, 1, reused.Position)
}

func TestModulePublishUnpublish(t *testing.T) {
	db := setupTestDB(t)
	svc := NewModuleService(db)
	c := seedCourse(t, db, "Go Basics", true)
	m := seedModule(t, db, c.ID, "M1", 1)

	published, err := svc.Publish(c.ID, m.ID)
	require.NoError(t, err)
	assert.True(t, published.IsPublished)

	unpublished, err := svc.Unpublish(c.ID, m.ID)
	require.NoError(t, err)
	assert.False(t, unpublished.IsPublished)
}

func TestModuleUpdatePatchesFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewModuleService(db)
	c := seedCourse(t, db, "Go Basics", true)
	m := seedModule(t, db, c.ID, "M1", 1)

	updated, err := svc.Update(c.ID, m.ID, UpdateModuleInput{
		Title:    strPtr("  Renamed  "),
		Position: intPtr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, 4, updated.Position)
	assert.Equal(t, "", updated.Description)
}

func TestModulePositionUniquePerCourseOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewModuleService(db)
	c1 := seedCourse(t, db, "Course 1", true)
	c2 := seedCourse(t, db, "Course 2", true)
	seedModule(t, db, c1.ID, "M1", 1)

	// Same position in a different course is fine
	module, err := svc.Create(c2.ID, CreateModuleInput{Title: "M1", Position: intPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, 1, module.Position)
}
