package courseValidator

import (
	"strings"

	"lms/middleware"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

type courseModuleReq struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description"`
	IsPublished *bool  `json:"is_published"`
}

type courseLessonReq struct {
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content" validate:"required"`
	ModuleIndex *int   `json:"module_index" validate:"omitempty,min=0"`
	IsPublished *bool  `json:"is_published"`
}

type courseResourceReq struct {
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type"`
	URL         string `json:"url" validate:"required,url"`
	IsPublished *bool  `json:"is_published"`
}

// CreateCourse validates the aggregate course creation payload
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string              `json:"name" validate:"required,min=3"`
			Description string              `json:"description"`
			ImageURL    string              `json:"image_url" validate:"omitempty,url"`
			IsPublished *bool               `json:"is_published"`
			Modules     []courseModuleReq   `json:"modules" validate:"dive"`
			Lessons     []courseLessonReq   `json:"lessons" validate:"dive"`
			Resources   []courseResourceReq `json:"resources" validate:"dive"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationMessages(err))
		}

		input := services.CreateCourseInput{
			Name:        reqData.Name,
			Description: reqData.Description,
			ImageURL:    reqData.ImageURL,
			IsPublished: reqData.IsPublished,
		}
		for _, m := range reqData.Modules {
			input.Modules = append(input.Modules, services.CourseModuleInput{
				Title:       m.Title,
				Description: m.Description,
				IsPublished: m.IsPublished,
			})
		}
		for _, l := range reqData.Lessons {
			input.Lessons = append(input.Lessons, services.CourseLessonInput{
				Title:       l.Title,
				Content:     l.Content,
				ModuleIndex: l.ModuleIndex,
				IsPublished: l.IsPublished,
			})
		}
		for _, r := range reqData.Resources {
			input.Resources = append(input.Resources, services.CourseResourceInput{
				Name:        r.Name,
				Type:        r.Type,
				URL:         r.URL,
				IsPublished: r.IsPublished,
			})
		}

		c.Locals("validatedCourse", input)
		return c.Next()
	}
}

// UpdateCourse validates the aggregate course patch payload
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			Name        *string              `json:"name" validate:"omitempty,min=3"`
			Description *string              `json:"description"`
			ImageURL    *string              `json:"image_url" validate:"omitempty,url"`
			IsPublished *bool                `json:"is_published"`
			Modules     *[]courseModuleReq   `json:"modules" validate:"omitempty,dive"`
			Lessons     *[]courseLessonReq   `json:"lessons" validate:"omitempty,dive"`
			Resources   *[]courseResourceReq `json:"resources" validate:"omitempty,dive"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationMessages(err))
		}

		input := services.UpdateCourseInput{
			Name:        reqData.Name,
			Description: reqData.Description,
			ImageURL:    reqData.ImageURL,
			IsPublished: reqData.IsPublished,
		}
		if reqData.Modules != nil {
			modules := make([]services.CourseModuleInput, 0, len(*reqData.Modules))
			for _, m := range *reqData.Modules {
				modules = append(modules, services.CourseModuleInput{
					Title:       m.Title,
					Description: m.Description,
					IsPublished: m.IsPublished,
				})
			}
			input.Modules = &modules
		}
		if reqData.Lessons != nil {
			lessons := make([]services.CourseLessonInput, 0, len(*reqData.Lessons))
			for _, l := range *reqData.Lessons {
				lessons = append(lessons, services.CourseLessonInput{
					Title:       l.Title,
					Content:     l.Content,
					ModuleIndex: l.ModuleIndex,
					IsPublished: l.IsPublished,
				})
			}
			input.Lessons = &lessons
		}
		if reqData.Resources != nil {
			resources := make([]services.CourseResourceInput, 0, len(*reqData.Resources))
			for _, r := range *reqData.Resources {
				resources = append(resources, services.CourseResourceInput{
					Name:        r.Name,
					Type:        r.Type,
					URL:         r.URL,
					IsPublished: r.IsPublished,
				})
			}
			input.Resources = &resources
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedCourseUpdate", input)
		return c.Next()
	}
}

// CourseList validates the course listing query
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Filter string `query:"filter" validate:"omitempty,oneof=all my-courses published draft"`
			Search string `query:"search"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationMessages(err))
		}

		c.Locals("courseFilter", reqData.Filter)
		c.Locals("courseSearch", strings.TrimSpace(reqData.Search))
		return c.Next()
	}
}

// CourseByID validates the course id path parameter
func CourseByID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}
