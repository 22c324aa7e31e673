package authValidator

import (
	"strings"

	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// RegisterInput is the validated registration payload. It carries no role:
// registration always creates an ordinary user account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput is the validated login payload
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func validationMessages(err error) map[string]string {
	errors := make(map[string]string)
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			errors[field] = field + " is required!"
		case "min":
			errors[field] = field + " must be at least " + fe.Param() + " characters long!"
		case "email":
			errors[field] = "Invalid email address!"
		case "oneof":
			errors[field] = field + " must be one of: " + fe.Param() + "!"
		default:
			errors[field] = field + " is invalid!"
		}
	}
	return errors
}

// Register validates the registration request
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterInput)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationMessages(err))
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// Login validates the login request
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginInput)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationMessages(err))
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
