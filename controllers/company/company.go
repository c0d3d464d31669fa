package companyController

import (
	"wst/database"
	"wst/middleware"
	"wst/models"

	"github.com/gofiber/fiber/v2"
)

// ListCompanies returns companies. Company admins only see their own.
func ListCompanies(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db.Where("is_deleted = ?", false)
	if scope := middleware.CompanyScope(admin); scope != nil {
		db = db.Where("id = ?", *scope)
	}

	var companies []models.Company
	if err := db.Order("name asc").Find(&companies).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch companies!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Companies fetched successfully.", companies)
}

// CreateCompany creates a company. Super-admin only.
func CreateCompany(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCompany").(*struct {
		Name         string `json:"name"`
		Description  string `json:"description"`
		ContactEmail string `json:"contact_email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("name = ? AND is_deleted = ?", reqData.Name, false).First(&models.Company{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Company name is already registered!", nil)
	}

	company := models.Company{
		Name:         reqData.Name,
		Description:  reqData.Description,
		ContactEmail: reqData.ContactEmail,
	}

	if err := db.Create(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Company created successfully.", company)
}

// UpdateCompany updates a company. Super-admin only.
func UpdateCompany(c *fiber.Ctx) error {
	companyID := c.Locals("companyID").(int)

	reqData, ok := c.Locals("validatedCompanyUpdate").(*struct {
		Name         *string `json:"name"`
		Description  *string `json:"description"`
		ContactEmail *string `json:"contact_email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var company models.Company
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", companyID, false).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	if reqData.Name != nil {
		company.Name = *reqData.Name
	}
	if reqData.Description != nil {
		company.Description = *reqData.Description
	}
	if reqData.ContactEmail != nil {
		company.ContactEmail = *reqData.ContactEmail
	}

	if err := database.Database.Db.Save(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company updated successfully.", company)
}

// DeleteCompany soft-deletes a company. Super-admin only; refused while
// the company still has workers.
func DeleteCompany(c *fiber.Ctx) error {
	companyID := c.Locals("companyID").(int)

	var company models.Company
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", companyID, false).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	var workerCount int64
	database.Database.Db.Model(&models.Worker{}).Where("company_id = ? AND is_deleted = ?", company.ID, false).Count(&workerCount)
	if workerCount > 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Company still has workers; move or delete them first!", nil)
	}

	if err := database.Database.Db.Model(&company).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company deleted successfully.", nil)
}

// ListDepartments returns a company's departments, scoped for company
// admins.
func ListDepartments(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	companyID := c.Locals("companyID").(int)

	if scope := middleware.CompanyScope(admin); scope != nil && uint(companyID) != *scope {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	var departments []models.Department
	if err := database.Database.Db.Where("company_id = ? AND is_deleted = ?", companyID, false).Order("name asc").Find(&departments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch departments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Departments fetched successfully.", departments)
}

// CreateDepartment adds a department to a company, scoped for company
// admins.
func CreateDepartment(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	companyID := c.Locals("companyID").(int)

	if scope := middleware.CompanyScope(admin); scope != nil && uint(companyID) != *scope {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	reqData, ok := c.Locals("validatedDepartment").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var company models.Company
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", companyID, false).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	department := models.Department{
		Name:        reqData.Name,
		Description: reqData.Description,
		CompanyID:   company.ID,
	}

	if err := database.Database.Db.Create(&department).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create department!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Department created successfully.", department)
}

// DeleteDepartment soft-deletes a department, scoped for company admins.
func DeleteDepartment(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	departmentID := c.Locals("departmentID").(int)

	var department models.Department
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", departmentID, false).First(&department).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Department not found!", nil)
	}

	if scope := middleware.CompanyScope(admin); scope != nil && department.CompanyID != *scope {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	if err := database.Database.Db.Model(&department).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete department!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Department deleted successfully.", nil)
}
