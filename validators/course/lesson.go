package courseValidator

import (
	"strings"

	"lms/middleware"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

// CreateLesson validates lesson creation within a module. The per-type
// content rule (TEXT carries html, everything else a content url) lives in
// the service so every write path enforces it.
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, ok := paramID(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title" validate:"required"`
			Subtitle    string `json:"subtitle"`
			Position    *int   `json:"position" validate:"omitempty,min=1"`
			Type        string `json:"type" validate:"omitempty,oneof=VIDEO PDF LINK TEXT"`
			ContentURL  string `json:"content_url" validate:"omitempty,url"`
			HTML        string `json:"html"`
			DurationSec int    `json:"duration_sec" validate:"omitempty,min=0"`
			IsPublished *bool  `json:"is_published"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Type = strings.ToUpper(strings.TrimSpace(reqData.Type))
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationMessages(err))
		}

		c.Locals("moduleID", moduleID)
		c.Locals("validatedLesson", services.CreateLessonInput{
			Title:       reqData.Title,
			Subtitle:    reqData.Subtitle,
			Position:    reqData.Position,
			Type:        reqData.Type,
			ContentURL:  reqData.ContentURL,
			HTML:        reqData.HTML,
			DurationSec: reqData.DurationSec,
			IsPublished: reqData.IsPublished,
		})
		return c.Next()
	}
}

// ListLessons validates the lesson listing request
func ListLessons() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, ok := paramID(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		c.Locals("moduleID", moduleID)
		c.Locals("lessonSearch", strings.TrimSpace(c.Query("search")))
		return c.Next()
	}
}

// LessonByID validates the lesson id path parameter
func LessonByID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID, ok := paramID(c, "lesson_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}

		c.Locals("lessonID", lessonID)
		return c.Next()
	}
}

// UpdateLesson validates a lesson patch
func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID, ok := paramID(c, "lesson_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}

		reqData := new(struct {
			Title       *string `json:"title"`
			Subtitle    *string `json:"subtitle"`
			Position    *int    `json:"position" validate:"omitempty,min=1"`
			Type        *string `json:"type" validate:"omitempty,oneof=VIDEO PDF LINK TEXT"`
			ContentURL  *string `json:"content_url"`
			HTML        *string `json:"html"`
			DurationSec *int    `json:"duration_sec" validate:"omitempty,min=0"`
			IsPublished *bool   `json:"is_published"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Type != nil {
			upper := strings.ToUpper(strings.TrimSpace(*reqData.Type))
			reqData.Type = &upper
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationMessages(err))
		}

		c.Locals("lessonID", lessonID)
		c.Locals("validatedLessonUpdate", services.UpdateLessonInput{
			Title:       reqData.Title,
			Subtitle:    reqData.Subtitle,
			Position:    reqData.Position,
			Type:        reqData.Type,
			ContentURL:  reqData.ContentURL,
			HTML:        reqData.HTML,
			DurationSec: reqData.DurationSec,
			IsPublished: reqData.IsPublished,
		})
		return c.Next()
	}
}

// ReorderLessons validates a full-batch lesson reorder
func ReorderLessons() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, ok := paramID(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(struct {
			Items []struct {
				ID       uint `json:"id" validate:"required,min=1"`
				Position int  `json:"position" validate:"required,min=1"`
			} `json:"items" validate:"required,min=1,dive"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationMessages(err))
		}

		items := make([]services.ReorderItem, 0, len(reqData.Items))
		for _, item := range reqData.Items {
			items = append(items, services.ReorderItem{ID: item.ID, Position: item.Position})
		}

		c.Locals("moduleID", moduleID)
		c.Locals("validatedReorder", items)
		return c.Next()
	}
}
