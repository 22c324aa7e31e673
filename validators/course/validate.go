package courseValidator

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// paramID parses a positive numeric path parameter
func paramID(c *fiber.Ctx, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// validationMessages flattens validator field errors into the response map
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
			errors[field] = field + " must be at least " + fe.Param() + "!"
		case "max":
			errors[field] = field + " must be at most " + fe.Param() + "!"
		case "url":
			errors[field] = field + " must be a valid URL!"
		case "oneof":
			errors[field] = field + " must be one of: " + fe.Param() + "!"
		default:
			errors[field] = field + " is invalid!"
		}
	}
	return errors
}
