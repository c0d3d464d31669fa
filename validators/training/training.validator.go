package trainingValidator

import (
	"strconv"
	"strings"
	"wst/middleware"

	"github.com/gofiber/fiber/v2"
)

// SlidePayload is one slide of a training create request.
type SlidePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	FileURL string `json:"file_url"`
}

// OptionPayload is one answer choice of a question payload.
type OptionPayload struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionPayload is one quiz question of a training create request.
type QuestionPayload struct {
	Text    string          `json:"text"`
	Options []OptionPayload `json:"options"`
}

// TrainingPayload is the body of a training create request.
type TrainingPayload struct {
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	PassingScore   int               `json:"passing_score"`
	ValidityPeriod int               `json:"validity_period"`
	IsMandatory    bool              `json:"is_mandatory"`
	Slides         []SlidePayload    `json:"slides"`
	Questions      []QuestionPayload `json:"questions"`
}

// TrainingID validates the training id path parameter
func TrainingID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid training id!", nil)
		}

		c.Locals("trainingID", id)
		return c.Next()
	}
}

// TrainingCreate validator middleware
func TrainingCreate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TrainingPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.PassingScore < 0 || reqData.PassingScore > 100 {
			errors["passing_score"] = "Passing score must be between 0 and 100!"
		}
		if reqData.ValidityPeriod < 0 {
			errors["validity_period"] = "Validity period cannot be negative!"
		}
		for _, q := range reqData.Questions {
			if len(q.Options) < 2 {
				errors["questions"] = "Every question needs at least two options!"
				break
			}
			correct := 0
			for _, o := range q.Options {
				if o.IsCorrect {
					correct++
				}
			}
			if correct != 1 {
				errors["questions"] = "Every question needs exactly one correct option!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTrainingCreate", reqData)
		return c.Next()
	}
}

// TrainingUpdate validator middleware
func TrainingUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title          *string `json:"title"`
			Description    *string `json:"description"`
			PassingScore   *int    `json:"passing_score"`
			ValidityPeriod *int    `json:"validity_period"`
			IsMandatory    *bool   `json:"is_mandatory"`
			IsActive       *bool   `json:"is_active"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.PassingScore != nil && (*reqData.PassingScore < 0 || *reqData.PassingScore > 100) {
			errors["passing_score"] = "Passing score must be between 0 and 100!"
		}
		if reqData.ValidityPeriod != nil && *reqData.ValidityPeriod < 0 {
			errors["validity_period"] = "Validity period cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTrainingUpdate", reqData)
		return c.Next()
	}
}

// TrackProgress validates the slide tracking request
func TrackProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SlideIndex *int `json:"slide_index"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.SlideIndex == nil || *reqData.SlideIndex < 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"slide_index": "A valid slide index is required!"})
		}

		c.Locals("validatedTrack", reqData)
		return c.Next()
	}
}

// SubmitQuiz validates the quiz submission request
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answers map[uint]uint `json:"answers"` // question id -> selected option id
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Answers) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"answers": "At least one answer is required!"})
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}
