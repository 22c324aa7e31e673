package courseValidator

import (
	"strings"

	"lms/middleware"
	"lms/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

var resourceTypeSet = map[string]bool{
	"VIDEO": true, "PDF": true, "DOCUMENT": true, "PRESENTATION": true,
	"SPREADSHEET": true, "IMAGE": true, "AUDIO": true, "LINK": true, "OTHER": true,
}

// CreateResource validates resource creation within a course
func CreateResource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			Title       string         `json:"title" validate:"required"`
			Description string         `json:"description"`
			Type        string         `json:"type" validate:"omitempty,oneof=VIDEO PDF DOCUMENT PRESENTATION SPREADSHEET IMAGE AUDIO LINK OTHER"`
			URL         string         `json:"url" validate:"required,url"`
			FileSize    int64          `json:"file_size" validate:"omitempty,min=0"`
			MimeType    string         `json:"mime_type"`
			IsActive    *bool          `json:"is_active"`
			Metadata    datatypes.JSON `json:"metadata"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Type = strings.ToUpper(strings.TrimSpace(reqData.Type))
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationMessages(err))
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedResource", services.CreateResourceInput{
			Title:       reqData.Title,
			Description: reqData.Description,
			Type:        reqData.Type,
			URL:         reqData.URL,
			FileSize:    reqData.FileSize,
			MimeType:    reqData.MimeType,
			IsActive:    reqData.IsActive,
			Metadata:    reqData.Metadata,
		})
		return c.Next()
	}
}

// ListResources validates the resource listing query
func ListResources() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			Title       string `query:"title"`
			Description string `query:"description"`
			Type        string `query:"type" validate:"omitempty,oneof=VIDEO PDF DOCUMENT PRESENTATION SPREADSHEET IMAGE AUDIO LINK OTHER"`
			IsActive    *bool  `query:"is_active"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		reqData.Type = strings.ToUpper(strings.TrimSpace(reqData.Type))
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationMessages(err))
		}

		c.Locals("courseID", courseID)
		c.Locals("resourceFilter", services.ResourceFilter{
			Title:       strings.TrimSpace(reqData.Title),
			Description: strings.TrimSpace(reqData.Description),
			Type:        reqData.Type,
			IsActive:    reqData.IsActive,
		})
		return c.Next()
	}
}

// ResourceByID validates the course and resource id path parameters
func ResourceByID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramID(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		resourceID, ok := paramID(c, "resource_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Resource ID!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("resourceID", resourceID)
		return c.Next()
	}
}

// UpdateResource validates a resource patch
func UpdateResource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramID(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		resourceID, ok := paramID(c, "resource_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Resource ID!", nil)
		}

		reqData := new(struct {
			Title       *string         `json:"title"`
			Description *string         `json:"description"`
			Type        *string         `json:"type" validate:"omitempty,oneof=VIDEO PDF DOCUMENT PRESENTATION SPREADSHEET IMAGE AUDIO LINK OTHER"`
			URL         *string         `json:"url" validate:"omitempty,url"`
			FileSize    *int64          `json:"file_size" validate:"omitempty,min=0"`
			MimeType    *string         `json:"mime_type"`
			IsActive    *bool           `json:"is_active"`
			Metadata    *datatypes.JSON `json:"metadata"`
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

		c.Locals("courseID", courseID)
		c.Locals("resourceID", resourceID)
		c.Locals("validatedResourceUpdate", services.UpdateResourceInput{
			Title:       reqData.Title,
			Description: reqData.Description,
			Type:        reqData.Type,
			URL:         reqData.URL,
			FileSize:    reqData.FileSize,
			MimeType:    reqData.MimeType,
			IsActive:    reqData.IsActive,
			Metadata:    reqData.Metadata,
		})
		return c.Next()
	}
}

// ResourcesByType validates the per-type resource listing
func ResourcesByType() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramID(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		resourceType := strings.ToUpper(strings.TrimSpace(c.Params("type")))
		if !resourceTypeSet[resourceType] {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resource type!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("resourceType", resourceType)
		return c.Next()
	}
}
