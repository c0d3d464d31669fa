package workerValidator

import (
	"regexp"
	"strconv"
	"strings"
	"wst/middleware"

	"github.com/gofiber/fiber/v2"
)

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// WorkerID validates the worker id path parameter
func WorkerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid worker id!", nil)
		}

		c.Locals("workerID", id)
		return c.Next()
	}
}

// WorkerList validates pagination query parameters
func WorkerList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		c.Locals("validatedWorkerList", reqData)
		return c.Next()
	}
}

// WorkerCreate validator middleware
func WorkerCreate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SapID        string `json:"sap_id"`
			Name         string `json:"name"`
			Email        string `json:"email"`
			CompanyID    uint   `json:"company_id"`
			DepartmentID *uint  `json:"department_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.SapID) == "" {
			errors["sap_id"] = "SAP number is required!"
		}
		if len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}
		if reqData.Email != "" && !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.SapID = strings.TrimSpace(reqData.SapID)
		c.Locals("validatedWorkerCreate", reqData)
		return c.Next()
	}
}

// WorkerUpdate validator middleware
func WorkerUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         *string `json:"name"`
			Email        *string `json:"email"`
			DepartmentID *uint   `json:"department_id"`
			IsActive     *bool   `json:"is_active"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil && len(strings.TrimSpace(*reqData.Name)) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}
		if reqData.Email != nil && *reqData.Email != "" && !isValidEmail(*reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedWorkerUpdate", reqData)
		return c.Next()
	}
}

// SapLookup validates the bulk SAP lookup request
func SapLookup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SapIDs []string `json:"sap_ids"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.SapIDs) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"sap_ids": "At least one SAP number is required!"})
		}

		c.Locals("validatedSapLookup", reqData)
		return c.Next()
	}
}
