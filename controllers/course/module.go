package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

// CreateModule adds a module to a course, allocating the next position when
// none is supplied
func CreateModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	input, ok := c.Locals("validatedModule").(services.CreateModuleInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module, err := services.NewModuleService(database.Database.Db).Create(courseID, input)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to create module!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// ListModules lists the course's live modules in position order
func ListModules(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	search, _ := c.Locals("moduleSearch").(string)

	modules, err := services.NewModuleService(database.Database.Db).FindAll(courseID, search)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to fetch modules!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"modules": modules,
	})
}

// GetModule fetches one module scoped to its course
func GetModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(uint)

	module, err := services.NewModuleService(database.Database.Db).FindOne(courseID, moduleID)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to fetch module!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully!", module)
}

// UpdateModule patches a module field-by-field
func UpdateModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(uint)
	input, ok := c.Locals("validatedModuleUpdate").(services.UpdateModuleInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module, err := services.NewModuleService(database.Database.Db).Update(courseID, moduleID, input)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to update module!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// ReorderModules applies a full-batch position assignment to the course's
// modules
func ReorderModules(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	items, ok := c.Locals("validatedReorder").([]services.ReorderItem)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	modules, err := services.NewModuleService(database.Database.Db).Reorder(courseID, items)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to reorder modules!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules reordered successfully!", fiber.Map{
		"modules": modules,
	})
}

// PublishModule marks a module published
func PublishModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(uint)

	module, err := services.NewModuleService(database.Database.Db).Publish(courseID, moduleID)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to publish module!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module published successfully!", module)
}

// UnpublishModule marks a module unpublished
func UnpublishModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(uint)

	module, err := services.NewModuleService(database.Database.Db).Unpublish(courseID, moduleID)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to unpublish module!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module unpublished successfully!", module)
}

// DeleteModule soft-deletes a module and removes its lessons
func DeleteModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(uint)

	if err := services.NewModuleService(database.Database.Db).Delete(courseID, moduleID); err != nil {
		return serviceErrorResponse(c, err, "Failed to delete module!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}
