package contentController

import (
	"wst/database"
	"wst/middleware"
	"wst/models"

	"github.com/gofiber/fiber/v2"
)

// AdminListNews returns news items; company admins see their own
// company's items plus global ones.
func AdminListNews(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db.Where("is_deleted = ?", false)
	if scope := middleware.CompanyScope(admin); scope != nil {
		db = db.Where("company_id = ? OR company_id IS NULL", *scope)
	}

	var news []models.News
	if err := db.Order("created_at desc").Find(&news).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch news!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "News fetched successfully.", news)
}

// AdminCreateNews creates a news item. Company admins can only publish to
// their own company; only super admins publish globally.
func AdminCreateNews(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedNews").(*struct {
		Title     string `json:"title"`
		Body      string `json:"body"`
		ImageURL  string `json:"image_url"`
		CompanyID *uint  `json:"company_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	companyID := reqData.CompanyID
	if scope := middleware.CompanyScope(admin); scope != nil {
		// Company admins always publish to their own company
		companyID = scope
	}

	news := models.News{
		Title:     reqData.Title,
		Body:      reqData.Body,
		ImageURL:  reqData.ImageURL,
		CompanyID: companyID,
		CreatedBy: admin.ID,
	}

	if err := database.Database.Db.Create(&news).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create news!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "News created successfully.", news)
}

// AdminDeleteNews soft-deletes a news item.
func AdminDeleteNews(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	newsID := c.Locals("newsID").(int)

	var news models.News
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", newsID, false).First(&news).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "News not found!", nil)
	}

	if scope := middleware.CompanyScope(admin); scope != nil {
		if news.CompanyID == nil || *news.CompanyID != *scope {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}
	}

	if err := database.Database.Db.Model(&news).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete news!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "News deleted successfully.", nil)
}

// WorkerListNews returns the news visible to the worker: their company's
// items plus global ones.
func WorkerListNews(c *fiber.Ctx) error {
	worker, ok := c.Locals("worker").(*models.Worker)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var news []models.News
	if err := database.Database.Db.
		Where("is_deleted = ? AND (company_id = ? OR company_id IS NULL)", false, worker.CompanyID).
		Order("created_at desc").Find(&news).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch news!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "News fetched successfully.", news)
}
