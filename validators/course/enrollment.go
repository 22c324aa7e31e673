package courseValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// EnrollCourse validates an enrollment request
func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// EnrollmentByID validates the enrollment id path parameter
func EnrollmentByID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Enrollment ID!", nil)
		}

		c.Locals("enrollmentID", enrollmentID)
		return c.Next()
	}
}
