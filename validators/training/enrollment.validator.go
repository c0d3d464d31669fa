package trainingValidator

import (
	"strconv"
	"wst/middleware"

	"github.com/gofiber/fiber/v2"
)

// EnrollmentID validates the enrollment id path parameter
func EnrollmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
		}

		c.Locals("enrollmentID", id)
		return c.Next()
	}
}

// EnrollmentCreate validator middleware
func EnrollmentCreate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			WorkerID   uint `json:"worker_id"`
			TrainingID uint `json:"training_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.WorkerID == 0 {
			errors["worker_id"] = "Worker is required!"
		}
		if reqData.TrainingID == 0 {
			errors["training_id"] = "Training is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollmentCreate", reqData)
		return c.Next()
	}
}

// BulkEnroll validator middleware
func BulkEnroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			WorkerIDs  []uint `json:"worker_ids"`
			TrainingID uint   `json:"training_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.WorkerIDs) == 0 {
			errors["worker_ids"] = "At least one worker is required!"
		}
		if reqData.TrainingID == 0 {
			errors["training_id"] = "Training is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBulkEnroll", reqData)
		return c.Next()
	}
}
