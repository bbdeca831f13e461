package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/job-posting-classifier/internal/apperrors"
)

// ErrorHandler renders every error returned by a handler as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if appErr, ok := apperrors.As(err); ok {
		code := appErr.StatusCode()
		body := fiber.Map{
			"error": appErr.Message,
			"code":  code,
			"kind":  appErr.Kind,
		}
		if appErr.Field != "" {
			body["field"] = appErr.Field
		}
		return c.Status(code).JSON(body)
	}

	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

func invalidPayload() error {
	return apperrors.ValidationFailure("Invalid request payload")
}
