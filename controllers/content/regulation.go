package contentController

import (
	"wst/database"
	"wst/middleware"
	"wst/models"

	"github.com/gofiber/fiber/v2"
)

// ListRegulations returns all safety regulations. Visible to every admin
// and worker; management is super-admin only.
func ListRegulations(c *fiber.Ctx) error {
	var regulations []models.Regulation
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Find(&regulations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch regulations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Regulations fetched successfully.", regulations)
}

// AdminCreateRegulation creates a regulation. Super-admin only.
func AdminCreateRegulation(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedRegulation").(*struct {
		Title   string `json:"title"`
		Body    string `json:"body"`
		FileURL string `json:"file_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	regulation := models.Regulation{
		Title:     reqData.Title,
		Body:      reqData.Body,
		FileURL:   reqData.FileURL,
		CreatedBy: admin.ID,
	}

	if err := database.Database.Db.Create(&regulation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create regulation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Regulation created successfully.", regulation)
}

// AdminUpdateRegulation updates a regulation. Super-admin only.
func AdminUpdateRegulation(c *fiber.Ctx) error {
	regulationID := c.Locals("regulationID").(int)

	reqData, ok := c.Locals("validatedRegulationUpdate").(*struct {
		Title   *string `json:"title"`
		Body    *string `json:"body"`
		FileURL *string `json:"file_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var regulation models.Regulation
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", regulationID, false).First(&regulation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Regulation not found!", nil)
	}

	if reqData.Title != nil {
		regulation.Title = *reqData.Title
	}
	if reqData.Body != nil {
		regulation.Body = *reqData.Body
	}
	if reqData.FileURL != nil {
		regulation.FileURL = *reqData.FileURL
	}

	if err := database.Database.Db.Save(&regulation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update regulation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Regulation updated successfully.", regulation)
}

// AdminDeleteRegulation soft-deletes a regulation. Super-admin only.
func AdminDeleteRegulation(c *fiber.Ctx) error {
	regulationID := c.Locals("regulationID").(int)

	var regulation models.Regulation
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", regulationID, false).First(&regulation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Regulation not found!", nil)
	}

	if err := database.Database.Db.Model(&regulation).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete regulation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Regulation deleted successfully.", nil)
}
