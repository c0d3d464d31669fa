package companyValidator

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

// CompanyID validates the company id path parameter
func CompanyID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid company id!", nil)
		}

		c.Locals("companyID", id)
		return c.Next()
	}
}

// DepartmentID validates the department id path parameter
func DepartmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("department_id"))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid department id!", nil)
		}

		c.Locals("departmentID", id)
		return c.Next()
	}
}

// CompanyCreate validator middleware
func CompanyCreate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         string `json:"name"`
			Description  string `json:"description"`
			ContactEmail string `json:"contact_email"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}
		if reqData.ContactEmail != "" && !isValidEmail(reqData.ContactEmail) {
			errors["contact_email"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompany", reqData)
		return c.Next()
	}
}

// CompanyUpdate validator middleware
func CompanyUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         *string `json:"name"`
			Description  *string `json:"description"`
			ContactEmail *string `json:"contact_email"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil && len(strings.TrimSpace(*reqData.Name)) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}
		if reqData.ContactEmail != nil && *reqData.ContactEmail != "" && !isValidEmail(*reqData.ContactEmail) {
			errors["contact_email"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompanyUpdate", reqData)
		return c.Next()
	}
}

// DepartmentCreate validator middleware
func DepartmentCreate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(strings.TrimSpace(reqData.Name)) < 2 {
			return middleware.ValidationErrorResponse(c, map[string]string{"name": "Name must be at least 2 characters long!"})
		}

		c.Locals("validatedDepartment", reqData)
		return c.Next()
	}
}
