package controllers

import (
	"errors"
	"log"

	"lms/middleware"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

// serviceErrorResponse translates a service failure into the JSON envelope.
// Anything that is not a ServiceError is a server fault.
func serviceErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	var svcErr *services.ServiceError
	if errors.As(err, &svcErr) {
		return middleware.JsonResponse(c, svcErr.Code, false, svcErr.Message, nil)
	}
	log.Printf("Unexpected service error: %v", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, fallback, nil)
}

// callerIdentity reads the JWT-established identity from the request context
func callerIdentity(c *fiber.Ctx) (uint, string, bool) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return 0, "", false
	}
	role, _ := c.Locals("role").(string)
	return userID, role, true
}
