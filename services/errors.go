package services

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ServiceError is a client-facing failure with an HTTP-compatible code.
// Anything else escaping a service is a server fault.
type ServiceError struct {
	Code    int
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// ErrValidation reports a rejected input or referential rule before any write
func ErrValidation(message string) error {
	return &ServiceError{Code: fiber.StatusBadRequest, Message: message}
}

// ErrNotFound reports a missing course/module/lesson/resource id
func ErrNotFound(message string) error {
	return &ServiceError{Code: fiber.StatusNotFound, Message: message}
}

// ErrConflict reports a store-level uniqueness violation translated for the caller
func ErrConflict(message string) error {
	return &ServiceError{Code: fiber.StatusConflict, Message: message}
}

// isUniqueViolation detects a uniqueness-constraint rejection across the
// supported drivers (postgres 23505, sqlite, mysql 1062).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry")
}
