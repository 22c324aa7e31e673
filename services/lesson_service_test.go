package services

import (
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessonCreateTextRequiresHTML(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLessonService(db)
	c := seedCourse(t, db, "Go Basics", true)
	m := seedModule(t, db, c.ID, "M1", 1)

	_, err := svc.Create(m.ID, CreateLessonInput{
		Title: "Reading",
		Type:  courseModels.LessonTypeText,
		HTML:  "   ",
	})
	var serviceErr *ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, "HTML content is required for TEXT type lessons", serviceErr.Message)
}

func TestLessonCreateNonTextRequiresContentURL(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLessonService(db)
	c := seedCourse(t, db, "Go Basics", true)
	m := seedModule(t, db, c.ID, "M1", 1)

	_, err := svc.Create(m.ID, CreateLessonInput{
		Title: "Watch",
		Type:  courseModels.LessonTypeVideo,
	})
	var serviceErr *ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, "Content URL is required for non-TEXT type lessons", serviceErr.Message)
}

func TestLessonCreateTextRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLessonService(db)
	c := seedCourse(t, db, "Go Basics", true)
	m := seedModule(t, db, c.ID, "M1", 1)

	created, err := svc.Create(m.ID, CreateLessonInput{
		Title: "Reading",
		Type:  courseModels.LessonTypeText,
		HTML:  "<p>hello</p>",
	})
	require.NoError(t, err)

	fetched, err := svc.FindOne(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Reading", fetched.Title)
	assert.Equal(t, courseModels.LessonTypeText, fetched.Type)
	assert.Equal(t, "<p>hello</p>", fetched.HTML)
	assert.Equal(t, "", fetched.ContentURL)
	assert.Equal(t, 1, fetched.Position)
}

func TestLessonCreateAllocatesMaxPlusOne(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLessonService(db)
	c := seedCourse(t, db, "Go Basics", true)
	m := seedModule(t, db, c.ID, "M1", 1)
	seedLesson(t, db, m.ID, "L1", 3)

	lesson, err := svc.Create(m.ID, CreateLessonInput{
		Title:      "L2",
		Type:       courseModels.LessonTypeLink,
		ContentURL: "https://example.com/l2",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, lesson.Position)
}

func TestLessonCreatePositionConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLessonService(db)
	c := seedCourse(t, db, "Go Basics", true)
	m := seedModule(t, db, c.ID, "M1", 1)
	seedLesson(t, db, m.ID, "L1", 1)

	_, err := svc.Create(m.ID, CreateLessonInput{
		Title:      "L2",
		Position:   intPtr(1),
		ContentURL: "https://example.com/l2",
	})
	var serviceErr *ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, "A lesson with this position already exists in the module", serviceErr.Message)
}

func TestLessonUpdateValidatesMergedRecord(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLessonService(db)
	c := seedCourse(t, db, "Go Basics", true)
	m := seedModule(t, db, c.ID, "M1", 1)
	lesson := seedLesson(t, db, m.ID, "L1", 1)

	// Switching a LINK lesson to TEXT without HTML must fail even though the
	// patch itself says nothing about html
	_, err := svc.Update(lesson.ID, UpdateLessonInput{Type: strPtr(courseModels.LessonTypeText)})
	var serviceErr *ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, "HTML content is required for TEXT type lessons", serviceErr.Message)

	// Blanking the URL of a LINK lesson must fail too
	_, err = svc.Update(lesson.ID, UpdateLessonInput{ContentURL: strPtr("  ")})
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, "Content URL is required for non-TEXT type lessons", serviceErr.Message)

	// A patch not touching content passes without re-validation trouble
	updated, err := svc.Update(lesson.ID, UpdateLessonInput{Title: strPtr("Renamed")})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestLessonReorderScopedToModule(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLessonService(db)
	c := seedCourse(t, db, "Go Basics", true)
	m1 := seedModule(t, db, c.ID, "M1", 1)
	m2 := seedModule(t, db, c.ID, "M2", 2)
	l1 := seedLesson(t, db, m1.ID, "L1", 1)
	foreign := seedLesson(t, db, m2.ID, "Foreign", 1)

	_, err := svc.Reorder(m1.ID, []ReorderItem{
		{ID: l1.ID, Position: 2},
		{ID: foreign.ID, Position: 1},
	})
	var serviceErr *ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, "Some course lessons not found", serviceErr.Message)
}

func TestLessonReorderSwap(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLessonService(db)
	c := seedCourse(t, db, "Go Basics", true)
	m := seedModule(t, db, c.ID, "M1", 1)
	a := seedLesson(t, db, m.ID, "A", 1)
	b := seedLesson(t, db, m.ID, "B", 2)

	ordered, err := svc.Reorder(m.ID, []ReorderItem{
		{ID: a.ID, Position: 2},
		{ID: b.ID, Position: 1},
	})
	require.NoError(t, err)
	require.Len(t, ordered, 2)
	assert.Equal(t, "B", ordered[0].Title)
	assert.Equal(t, "A", ordered[1].Title)
}

func TestLessonDeleteIsHard(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLessonService(db)
	c := seedCourse(t, db, "Go Basics", true)
	m := seedModule(t, db, c.ID, "M1", 1)
	lesson := seedLesson(t, db, m.ID, "L1", 1)

	require.NoError(t, svc.Delete(lesson.ID))

	var count int64
	require.NoError(t, db.Unscoped().Model(&courseModels.Lesson{}).Where("id = ?", lesson.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLessonPositionUniquePerModuleOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLessonService(db)
	c := seedCourse(t, db, "Go Basics", true)
	m1 := seedModule(t, db, c.ID, "M1", 1)
	m2 := seedModule(t, db, c.ID, "M2", 2)
	seedLesson(t, db, m1.ID, "L1", 1)

	lesson, err := svc.Create(m2.ID, CreateLessonInput{
		Title:      "L1",
		Position:   intPtr(1),
		ContentURL: "https://example.com/l1",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, lesson.Position)
}
