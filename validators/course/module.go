package courseValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// ModuleRequest is the payload for creating or updating a module
type ModuleRequest struct {
	Title      string `json:"title" validate:"required,min=2"`
	OrderIndex *int   `json:"order_index" validate:"required,gte=0"`
}

// CreateModule validator middleware for POST /admin/course/:id/module
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := requireID(c, "id", "courseID"); err != nil {
			return err
		}

		reqData := new(ModuleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// UpdateModule validator middleware for PUT /admin/module/:id
func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := requireID(c, "id", "moduleID"); err != nil {
			return err
		}

		reqData := new(ModuleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}
