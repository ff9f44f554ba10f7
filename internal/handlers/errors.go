package handlers

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/vershina/sportclub/internal/services"
	"go.uber.org/zap"
)

// ErrorHandler renders the error page for anything a handler returns.
// Unexpected errors are logged and hidden behind a generic 500.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Внутренняя ошибка сервера"

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			message = fiberErr.Message
			if code == fiber.StatusNotFound {
				message = "Страница не найдена"
			}
		case errors.Is(err, pgx.ErrNoRows):
			code = fiber.StatusNotFound
			message = "Страница не найдена"
		default:
			logger.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err))
		}

		c.Status(code)
		if renderErr := c.Render("error", fiber.Map{
			"Title":   message,
			"Code":    code,
			"Message": message,
		}, "layouts/main"); renderErr != nil {
			return c.SendString(message)
		}
		return nil
	}
}

func notFoundOr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fiber.ErrNotFound
	}
	return err
}

func validationMessage(err error) (string, bool) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message, true
	}
	return "", false
}

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.ErrNotFound
	}
	return int64(id), nil
}

func optionalFile(c *fiber.Ctx, field string) *multipart.FileHeader {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return fileHeader
}
