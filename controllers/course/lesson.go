package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

// CreateLesson adds a lesson to a module
func CreateLesson(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uint)
	input, ok := c.Locals("validatedLesson").(services.CreateLessonInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson, err := services.NewLessonService(database.Database.Db).Create(moduleID, input)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to create lesson!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// ListLessons lists the module's lessons in position order
func ListLessons(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uint)
	search, _ := c.Locals("lessonSearch").(string)

	lessons, err := services.NewLessonService(database.Database.Db).FindAll(moduleID, search)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to fetch lessons!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", fiber.Map{
		"lessons": lessons,
	})
}

// GetLesson fetches one lesson
func GetLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(uint)

	lesson, err := services.NewLessonService(database.Database.Db).FindOne(lessonID)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to fetch lesson!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", lesson)
}

// UpdateLesson patches a lesson, re-checking the per-type content rule on
// the merged record
func UpdateLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(uint)
	input, ok := c.Locals("validatedLessonUpdate").(services.UpdateLessonInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson, err := services.NewLessonService(database.Database.Db).Update(lessonID, input)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to update lesson!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// DeleteLesson removes a lesson permanently
func DeleteLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(uint)

	if err := services.NewLessonService(database.Database.Db).Delete(lessonID); err != nil {
		return serviceErrorResponse(c, err, "Failed to delete lesson!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}

// ReorderLessons applies a full-batch position assignment to the module's
// lessons
func ReorderLessons(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uint)
	items, ok := c.Locals("validatedReorder").([]services.ReorderItem)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lessons, err := services.NewLessonService(database.Database.Db).Reorder(moduleID, items)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to reorder lessons!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons reordered successfully!", fiber.Map{
		"lessons": lessons,
	})
}
