package middleware

import "github.com/gofiber/fiber/v2"

// RequireRoles returns a middleware that checks if the caller holds one of
// the given roles. The role is set in the context by JWTMiddleware.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: Role not found",
				"data":    nil,
			})
		}

		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status":  false,
			"message": "You do not have permission to access this resource!",
			"data":    nil,
		})
	}
}
