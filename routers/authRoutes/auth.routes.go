package authRoutes

import (
	authController "lms/controllers/auth"
	authValidator "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes registers the registration and login routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/register", authValidator.Register(), authController.Register)
	auth.Post("/login", authValidator.Login(), authController.Login)
}
