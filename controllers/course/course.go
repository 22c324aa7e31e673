package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse saves a course together with its nested modules, lessons and
// resources in one transaction
func CreateCourse(c *fiber.Ctx) error {
	input, ok := c.Locals("validatedCourse").(services.CreateCourseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := services.NewCourseService(database.Database.Db).Save(input)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to create course!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// ListCourses lists courses visible to the caller, honoring the filter and
// search query
func ListCourses(c *fiber.Ctx) error {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	filter, _ := c.Locals("courseFilter").(string)
	search, _ := c.Locals("courseSearch").(string)

	courses, err := services.NewCourseQueryService(database.Database.Db).List(filter, search, role, userID)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to fetch courses!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// CourseCounts returns the per-filter course totals for the caller
func CourseCounts(c *fiber.Ctx) error {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	counts, err := services.NewCourseQueryService(database.Database.Db).Counts(role, userID)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to fetch course counts!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course counts fetched successfully!", counts)
}

// GetCourse fetches one course with its ordered module and lesson tree
func GetCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	course, err := services.NewCourseService(database.Database.Db).FindByID(courseID)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to fetch course!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// UpdateCourse patches course fields and replaces any nested collection
// present in the payload
func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	input, ok := c.Locals("validatedCourseUpdate").(services.UpdateCourseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := services.NewCourseService(database.Database.Db).Update(courseID, input)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to update course!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes the course and its whole tree
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	if err := services.NewCourseService(database.Database.Db).Delete(courseID); err != nil {
		return serviceErrorResponse(c, err, "Failed to delete course!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
