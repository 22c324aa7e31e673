package courseValidator

import (
	"strings"

	"lms/middleware"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

// CreateModule validates module creation within a course
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title" validate:"required,min=3"`
			Description string `json:"description"`
			Position    *int   `json:"position" validate:"omitempty,min=1"`
			IsPublished *bool  `json:"is_published"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationMessages(err))
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedModule", services.CreateModuleInput{
			Title:       reqData.Title,
			Description: reqData.Description,
			Position:    reqData.Position,
			IsPublished: reqData.IsPublished,
		})
		return c.Next()
	}
}

// ListModules validates the module listing request
func ListModules() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleSearch", strings.TrimSpace(c.Query("search")))
		return c.Next()
	}
}

// ModuleByID validates the course and module id path parameters
func ModuleByID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramID(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		moduleID, ok := paramID(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}

// UpdateModule validates a module patch
func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramID(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		moduleID, ok := paramID(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(struct {
			Title       *string `json:"title" validate:"omitempty,min=3"`
			Description *string `json:"description"`
			Position    *int    `json:"position" validate:"omitempty,min=1"`
			IsPublished *bool   `json:"is_published"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationMessages(err))
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleID", moduleID)
		c.Locals("validatedModuleUpdate", services.UpdateModuleInput{
			Title:       reqData.Title,
			Description: reqData.Description,
			Position:    reqData.Position,
			IsPublished: reqData.IsPublished,
		})
		return c.Next()
	}
}

// ReorderModules validates a full-batch module reorder
func ReorderModules() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
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

		c.Locals("courseID", courseID)
		c.Locals("validatedReorder", items)
		return c.Next()
	}
}
