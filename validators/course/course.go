package courseValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CourseRequest is the payload for creating or updating a course
type CourseRequest struct {
	Title        string `json:"title" validate:"required,min=3"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Difficulty   string `json:"difficulty" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	ThumbnailURL string `json:"thumbnail_url"`
	Published    *bool  `json:"published"`
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validator middleware, shares the create payload
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := requireID(c, "id", "courseID"); err != nil {
			return err
		}

		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseID validates the :id path parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := requireID(c, "id", "courseID"); err != nil {
			return err
		}
		return c.Next()
	}
}

// ModuleID validates the :id path parameter for module routes
func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := requireID(c, "id", "moduleID"); err != nil {
			return err
		}
		return c.Next()
	}
}

// SubModuleID validates the :id path parameter for sub-module routes
func SubModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := requireID(c, "id", "subModuleID"); err != nil {
			return err
		}
		return c.Next()
	}
}

// requireID parses a positive integer path parameter into c.Locals
func requireID(c *fiber.Ctx, param, key string) error {
	idStr := strings.TrimSpace(c.Params(param))
	if idStr == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "ID is required!", nil)
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
	}

	c.Locals(key, uint(id))
	return nil
}

// fieldErrors flattens validator errors into a field -> message map
func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			errors[strings.ToLower(fe.Field())] = "Invalid value for " + fe.Field() + " (" + fe.Tag() + ")"
		}
	} else {
		errors["request"] = "Invalid request data!"
	}
	return errors
}
