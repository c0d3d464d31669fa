package authController

import (
	"log"
	"time"
	"wst/config"
	"wst/database"
	"wst/middleware"
	"wst/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// WorkerLogin authenticates a worker by their company-unique SAP number.
// Workers have no password; possession of a valid SAP number is the
// credential. Every successful login is recorded.
func WorkerLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedWorkerLogin").(*struct {
		SapID string `json:"sap_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var worker models.Worker
	if err := database.Database.Db.Where("sap_id = ? AND is_deleted = ?", reqData.SapID, false).First(&worker).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Worker not found!", nil)
	}

	if !worker.IsActive {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Worker account is inactive!", nil)
	}

	token, err := middleware.GenerateWorkerJWT(worker.ID, worker.SapID)
	if err != nil {
		log.Printf("Error generating worker token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	// Record the login event
	tracking := models.LoginTracking{
		WorkerID:  worker.ID,
		SapID:     worker.SapID,
		IP:        c.IP(),
		UserAgent: c.Get("User-Agent"),
	}
	if err := database.Database.Db.Create(&tracking).Error; err != nil {
		log.Printf("Error recording login event: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token":  token,
		"worker": worker,
	})
}

// AdminLogin authenticates a backoffice admin by username and password.
func AdminLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAdminLogin").(*struct {
		Username string `json:"username"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var admin models.Admin
	if err := database.Database.Db.Where("username = ? AND is_deleted = ?", reqData.Username, false).First(&admin).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid username or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid username or password!", nil)
	}

	token, err := middleware.GenerateAdminJWT(admin.ID, admin.Username, admin.Role)
	if err != nil {
		log.Printf("Error generating admin token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	now := time.Now()
	admin.LastLogin = &now
	database.Database.Db.Model(&admin).Update("last_login", now)

	admin.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
		"admin": admin,
	})
}

// RegisterAdmin creates a new admin account. Super-admin only; company
// admins must reference an existing company.
func RegisterAdmin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAdminRegister").(*struct {
		Username  string `json:"username"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Role      string `json:"role"`
		CompanyID *uint  `json:"company_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if username already exists
	if err := db.Where("username = ?", reqData.Username).First(&models.Admin{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already registered!", nil)
	}

	if reqData.Role == models.RoleCompanyAdmin {
		if reqData.CompanyID == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Company is required for company admins!", nil)
		}
		var company models.Company
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.CompanyID, false).First(&company).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newAdmin := models.Admin{
		Username:  reqData.Username,
		Name:      reqData.Name,
		Email:     reqData.Email,
		Password:  string(hashedPassword),
		Role:      reqData.Role,
		CompanyID: reqData.CompanyID,
	}

	if err := db.Create(&newAdmin).Error; err != nil {
		log.Printf("Error saving admin to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register admin!", nil)
	}

	newAdmin.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Admin registered successfully.", newAdmin)
}

// ListAdmins returns all admins. Super-admin only.
func ListAdmins(c *fiber.Ctx) error {
	var admins []models.Admin
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Find(&admins).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch admin list!", nil)
	}

	for i := range admins {
		admins[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin list.", admins)
}

// DeleteAdmin soft-deletes an admin account. Super-admin only; an admin
// cannot delete themselves.
func DeleteAdmin(c *fiber.Ctx) error {
	adminID, _ := c.Locals("adminId").(uint)
	targetID := c.Locals("targetAdminID").(int)

	if uint(targetID) == adminID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot delete your own account!", nil)
	}

	var target models.Admin
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetID, false).First(&target).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Admin not found!", nil)
	}

	if err := database.Database.Db.Model(&target).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete admin!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin deleted successfully.", nil)
}
