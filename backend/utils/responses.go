package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error sends the flat {error: ...} body every failure path uses. The
// original client displays this string inline in the chat transcript, so
// the shape is part of the wire contract.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// BadRequest sends a 400 with the contract error body.
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// InternalServerError sends a 500 with the contract error body.
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// ErrorHandler is the app-wide fiber error handler: any fault that escapes
// a handler becomes a JSON error body instead of fiber's plain-text default.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
	}
	return Error(c, status, err.Error())
}
