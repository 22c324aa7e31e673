package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/services"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateResource attaches a resource to a course
func CreateResource(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	input, ok := c.Locals("validatedResource").(services.CreateResourceInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	resource, err := services.NewResourceService(database.Database.Db).Create(courseID, input)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to create resource!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Resource created successfully!", resource)
}

// ListResources lists the course's resources, optionally filtered
func ListResources(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	filter, _ := c.Locals("resourceFilter").(services.ResourceFilter)

	resources, err := services.NewResourceService(database.Database.Db).FindAll(courseID, filter)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to fetch resources!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resources fetched successfully!", fiber.Map{
		"resources": resources,
	})
}

// GetResource fetches one resource scoped to its course
func GetResource(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	resourceID := c.Locals("resourceID").(uint)

	resource, err := services.NewResourceService(database.Database.Db).FindOne(courseID, resourceID)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to fetch resource!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource fetched successfully!", resource)
}

// UpdateResource patches a resource
func UpdateResource(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	resourceID := c.Locals("resourceID").(uint)
	input, ok := c.Locals("validatedResourceUpdate").(services.UpdateResourceInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	resource, err := services.NewResourceService(database.Database.Db).Update(courseID, resourceID, input)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to update resource!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource updated successfully!", resource)
}

// DeleteResource removes a resource permanently
func DeleteResource(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	resourceID := c.Locals("resourceID").(uint)

	if err := services.NewResourceService(database.Database.Db).Remove(courseID, resourceID); err != nil {
		return serviceErrorResponse(c, err, "Failed to delete resource!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource deleted successfully!", nil)
}

// DownloadResource records a download and returns the resource so the client
// can follow its URL
func DownloadResource(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	resourceID := c.Locals("resourceID").(uint)

	svc := services.NewResourceService(database.Database.Db)
	if err := svc.IncrementDownloadCount(courseID, resourceID); err != nil {
		return serviceErrorResponse(c, err, "Failed to record download!")
	}

	resource, err := svc.FindOne(courseID, resourceID)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to fetch resource!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Download recorded successfully!", resource)
}

// ToggleResource flips the resource's active flag
func ToggleResource(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	resourceID := c.Locals("resourceID").(uint)

	resource, err := services.NewResourceService(database.Database.Db).ToggleActive(courseID, resourceID)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to toggle resource!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource toggled successfully!", resource)
}

// ListResourcesByType lists the course's active resources of one type
func ListResourcesByType(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	resourceType := c.Locals("resourceType").(string)

	resources, err := services.NewResourceService(database.Database.Db).FindByType(courseID, resourceType)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to fetch resources!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resources fetched successfully!", fiber.Map{
		"resources": resources,
	})
}

// VerifyResourceURL probes the resource's URL and reports whether it is
// reachable
func VerifyResourceURL(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	resourceID := c.Locals("resourceID").(uint)

	resource, err := services.NewResourceService(database.Database.Db).FindOne(courseID, resourceID)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to fetch resource!")
	}

	reachable, statusCode := utils.CheckLink(resource.URL)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource URL verified!", fiber.Map{
		"url":         resource.URL,
		"reachable":   reachable,
		"status_code": statusCode,
	})
}
