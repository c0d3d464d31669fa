package contentValidator

import (
	"strconv"
	"strings"
	"wst/middleware"

	"github.com/gofiber/fiber/v2"
)

// NewsID validates the news id path parameter
func NewsID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid news id!", nil)
		}

		c.Locals("newsID", id)
		return c.Next()
	}
}

// RegulationID validates the regulation id path parameter
func RegulationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid regulation id!", nil)
		}

		c.Locals("regulationID", id)
		return c.Next()
	}
}

// PollID validates the poll id path parameter
func PollID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid poll id!", nil)
		}

		c.Locals("pollID", id)
		return c.Next()
	}
}

// NewsCreate validator middleware
func NewsCreate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title     string `json:"title"`
			Body      string `json:"body"`
			ImageURL  string `json:"image_url"`
			CompanyID *uint  `json:"company_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title must be at least 3 characters long!"})
		}

		c.Locals("validatedNews", reqData)
		return c.Next()
	}
}

// RegulationCreate validator middleware
func RegulationCreate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title   string `json:"title"`
			Body    string `json:"body"`
			FileURL string `json:"file_url"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title must be at least 3 characters long!"})
		}

		c.Locals("validatedRegulation", reqData)
		return c.Next()
	}
}

// RegulationUpdate validator middleware
func RegulationUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title   *string `json:"title"`
			Body    *string `json:"body"`
			FileURL *string `json:"file_url"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) < 3 {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title must be at least 3 characters long!"})
		}

		c.Locals("validatedRegulationUpdate", reqData)
		return c.Next()
	}
}

// PollCreate validator middleware
func PollCreate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Question  string   `json:"question"`
			CompanyID *uint    `json:"company_id"`
			Options   []string `json:"options"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Question)) < 3 {
			errors["question"] = "Question must be at least 3 characters long!"
		}
		if len(reqData.Options) < 2 {
			errors["options"] = "A poll needs at least two options!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPoll", reqData)
		return c.Next()
	}
}

// Vote validator middleware
func Vote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			OptionID uint `json:"option_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.OptionID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"option_id": "Option is required!"})
		}

		c.Locals("validatedVote", reqData)
		return c.Next()
	}
}

// Feedback validator middleware
func Feedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Message string `json:"message"`
			Contact string `json:"contact"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(strings.TrimSpace(reqData.Message)) < 3 {
			return middleware.ValidationErrorResponse(c, map[string]string{"message": "Message must be at least 3 characters long!"})
		}

		c.Locals("validatedFeedback", reqData)
		return c.Next()
	}
}
