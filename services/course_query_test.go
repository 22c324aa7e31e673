package services

import (
	"testing"

	"lms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedCatalog builds a small catalog: one published course with content,
// one published but empty course, and one admin-created draft with content.
func seedCatalog(t *testing.T, svc *CourseService) (full, empty, draft uint) {
	t.Helper()

	fullCourse, err := svc.Save(CreateCourseInput{
		Name:        "Algebra",
		Description: "Numbers and letters",
		IsPublished: boolPtr(true),
		Modules:     []CourseModuleInput{{Title: "M1"}},
		Lessons:     []CourseLessonInput{{Title: "L1", Content: "https://a"}},
	})
	require.NoError(t, err)

	emptyCourse, err := svc.Save(CreateCourseInput{
		Name:        "Biology",
		Description: "Cells",
		IsPublished: boolPtr(true),
	})
	require.NoError(t, err)

	draftCourse, err := svc.Save(CreateCourseInput{
		Name:        "Chemistry",
		Description: "Atoms",
		Modules:     []CourseModuleInput{{Title: "M1"}},
		Lessons:     []CourseLessonInput{{Title: "L1", Content: "https://c"}},
	})
	require.NoError(t, err)

	return fullCourse.ID, emptyCourse.ID, draftCourse.ID
}

func TestListAllOrdinaryCaller(t *testing.T) {
	db := setupTestDB(t)
	full, _, _ := seedCatalog(t, NewCourseService(db))
	query := NewCourseQueryService(db)

	courses, err := query.List(FilterAll, "", models.RoleUser, 0)
	require.NoError(t, err)

	// Drafts and content-less published courses are both hidden
	require.Len(t, courses, 1)
	assert.Equal(t, full, courses[0].ID)
	assert.True(t, courses[0].IsPublished)
}

func TestListAllPrivilegedSeesEverything(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, NewCourseService(db))
	query := NewCourseQueryService(db)

	courses, err := query.List(FilterAll, "", models.RoleAdmin, 0)
	require.NoError(t, err)
	assert.Len(t, courses, 3)

	courses, err = query.List(FilterAll, "", models.RoleEditor, 0)
	require.NoError(t, err)
	assert.Len(t, courses, 3)
}

func TestListMyCourses(t *testing.T) {
	db := setupTestDB(t)
	courseSvc := NewCourseService(db)
	full, _, draft := seedCatalog(t, courseSvc)
	query := NewCourseQueryService(db)
	enrollSvc := NewEnrollmentService(db)

	student := seedUser(t, db, "student@example.com", models.RoleUser)
	_, err := enrollSvc.Enroll(student.ID, full, models.RoleAdmin)
	require.NoError(t, err)
	_, err = enrollSvc.Enroll(student.ID, draft, models.RoleAdmin)
	require.NoError(t, err)

	// Ordinary caller: ACTIVE enrollments in published courses only
	courses, err := query.List(FilterMyCourses, "", models.RoleUser, student.ID)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, full, courses[0].ID)

	// A privileged caller sees the draft enrollment too
	courses, err = query.List(FilterMyCourses, "", models.RoleAdmin, student.ID)
	require.NoError(t, err)
	assert.Len(t, courses, 2)

	// A cancelled enrollment drops out
	enrollments, err := enrollSvc.FindByUser(student.ID)
	require.NoError(t, err)
	for _, e := range enrollments {
		if e.CourseID == full {
			_, err = enrollSvc.Cancel(e.ID)
			require.NoError(t, err)
		}
	}
	courses, err = query.List(FilterMyCourses, "", models.RoleUser, student.ID)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestListPublishStateFiltersArePrivilegedOnly(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, NewCourseService(db))
	query := NewCourseQueryService(db)

	_, err := query.List(FilterDraft, "", models.RoleUser, 0)
	var serviceErr *ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, 400, serviceErr.Code)

	_, err = query.List(FilterPublished, "", models.RoleUser, 0)
	require.ErrorAs(t, err, &serviceErr)

	drafts, err := query.List(FilterDraft, "", models.RoleAdmin, 0)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Chemistry", drafts[0].Name)

	published, err := query.List(FilterPublished, "", models.RoleEditor, 0)
	require.NoError(t, err)
	assert.Len(t, published, 2)
}

func TestListSearchMatchesNameOrDescription(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, NewCourseService(db))
	query := NewCourseQueryService(db)

	byName, err := query.List(FilterAll, "alg", models.RoleAdmin, 0)
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Algebra", byName[0].Name)

	byDescription, err := query.List(FilterAll, "ATOMS", models.RoleAdmin, 0)
	require.NoError(t, err)
	require.Len(t, byDescription, 1)
	assert.Equal(t, "Chemistry", byDescription[0].Name)
}

func TestListOrdersByName(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, NewCourseService(db))
	query := NewCourseQueryService(db)

	courses, err := query.List(FilterAll, "", models.RoleAdmin, 0)
	require.NoError(t, err)
	require.Len(t, courses, 3)
	assert.Equal(t, "Algebra", courses[0].Name)
	assert.Equal(t, "Biology", courses[1].Name)
	assert.Equal(t, "Chemistry", courses[2].Name)
}

func TestCountsForOrdinaryCaller(t *testing.T) {
	db := setupTestDB(t)
	courseSvc := NewCourseService(db)
	full, _, _ := seedCatalog(t, courseSvc)
	query := NewCourseQueryService(db)

	student := seedUser(t, db, "student@example.com", models.RoleUser)
	_, err := NewEnrollmentService(db).Enroll(student.ID, full, models.RoleUser)
	require.NoError(t, err)

	counts, err := query.Counts(models.RoleUser, student.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.All)
	assert.Equal(t, int64(1), counts.MyCourses)
	// Publish-state counts are a privileged-only concept
	assert.Zero(t, counts.Published)
	assert.Zero(t, counts.Draft)

	// Without a caller id myCourses stays 0
	counts, err = query.Counts(models.RoleUser, 0)
	require.NoError(t, err)
	assert.Zero(t, counts.MyCourses)
}

func TestCountsForAdmin(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, NewCourseService(db))
	query := NewCourseQueryService(db)

	counts, err := query.Counts(models.RoleAdmin, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts.All)
	assert.Equal(t, int64(2), counts.Published)
	assert.Equal(t, int64(1), counts.Draft)
	assert.Zero(t, counts.MyCourses)
}
