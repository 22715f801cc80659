package courseValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// McqQuestionRequest is a nested MCQ payload on sub-module creation
type McqQuestionRequest struct {
	Question      string `json:"question" validate:"required"`
	OptionA       string `json:"option_a" validate:"required"`
	OptionB       string `json:"option_b" validate:"required"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option" validate:"required,oneof=A B C D"`
	OrderIndex    int    `json:"order_index" validate:"gte=0"`
}

// CodingQuestionRequest is a nested coding exercise payload
type CodingQuestionRequest struct {
	Question    string `json:"question" validate:"required"`
	StarterCode string `json:"starter_code"`
	Solution    string `json:"solution"`
	Hint        string `json:"hint"`
	OrderIndex  int    `json:"order_index" validate:"gte=0"`
}

// SubModuleRequest is the payload for creating or updating a sub-module
type SubModuleRequest struct {
	Title           string                  `json:"title" validate:"required,min=2"`
	OrderIndex      *int                    `json:"order_index" validate:"required,gte=0"`
	IntroContent    string                  `json:"intro_content"`
	BodyContent     string                  `json:"body_content"`
	SummaryContent  string                  `json:"summary_content"`
	VideoURL        string                  `json:"video_url" validate:"omitempty,url"`
	McqQuestions    []McqQuestionRequest    `json:"mcq_questions" validate:"dive"`
	CodingQuestions []CodingQuestionRequest `json:"coding_questions" validate:"dive"`
}

// CreateSubModule validator middleware for POST /admin/module/:id/submodule
func CreateSubModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := requireID(c, "id", "moduleID"); err != nil {
			return err
		}
		return parseSubModule(c)
	}
}

// UpdateSubModule validator middleware for PUT /admin/submodule/:id. Nested
// question lists are ignored on update; questions are replaced through the
// sub-module create flow.
func UpdateSubModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := requireID(c, "id", "subModuleID"); err != nil {
			return err
		}
		return parseSubModule(c)
	}
}

func parseSubModule(c *fiber.Ctx) error {
	reqData := new(SubModuleRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	reqData.Title = strings.TrimSpace(reqData.Title)

	if err := validate.Struct(reqData); err != nil {
		return middleware.ValidationErrorResponse(c, fieldErrors(err))
	}

	c.Locals("validatedSubModule", reqData)
	return c.Next()
}
