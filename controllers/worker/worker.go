package workerController

import (
	"log"
	"wst/database"
	"wst/middleware"
	"wst/models"
	"wst/models/poll"
	"wst/models/training"
	"wst/utils"

	"github.com/gofiber/fiber/v2"
)

// ListWorkers returns a paginated worker list. Company admins only see
// their own company's workers.
func ListWorkers(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, _ := c.Locals("validatedWorkerList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 20
	if reqData != nil && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Worker{}).Where("is_deleted = ?", false)
	if scope := middleware.CompanyScope(admin); scope != nil {
		db = db.Where("company_id = ?", *scope)
	}

	var total int64
	db.Count(&total)

	var workers []models.Worker
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&workers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch workers!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workers fetched successfully.", fiber.Map{
		"workers": workers,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetWorker returns a single worker with their enrollments and
// certificates.
func GetWorker(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	workerID := c.Locals("workerID").(int)

	var worker models.Worker
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", workerID, false).First(&worker).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Worker not found!", nil)
	}

	if scope := middleware.CompanyScope(admin); scope != nil && worker.CompanyID != *scope {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	var enrollments []training.Enrollment
	database.Database.Db.Where("worker_id = ? AND is_deleted = ?", worker.ID, false).Find(&enrollments)

	var certificates []training.Certificate
	database.Database.Db.Where("worker_id = ? AND is_deleted = ?", worker.ID, false).Find(&certificates)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Worker fetched successfully.", fiber.Map{
		"worker":       worker,
		"enrollments":  enrollments,
		"certificates": certificates,
	})
}

// CreateWorker registers a worker and auto-enrolls them into every
// mandatory active training.
func CreateWorker(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedWorkerCreate").(*struct {
		SapID        string `json:"sap_id"`
		Name         string `json:"name"`
		Email        string `json:"email"`
		CompanyID    uint   `json:"company_id"`
		DepartmentID *uint  `json:"department_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Company admins can only create workers in their own company
	if scope := middleware.CompanyScope(admin); scope != nil {
		reqData.CompanyID = *scope
	}

	var company models.Company
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CompanyID, false).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	// SAP numbers are unique across all companies
	if err := db.Where("sap_id = ? AND is_deleted = ?", reqData.SapID, false).First(&models.Worker{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "SAP number is already registered!", nil)
	}

	newWorker := models.Worker{
		SapID:        reqData.SapID,
		Name:         reqData.Name,
		Email:        reqData.Email,
		CompanyID:    reqData.CompanyID,
		DepartmentID: reqData.DepartmentID,
		IsActive:     true,
	}

	if err := db.Create(&newWorker).Error; err != nil {
		log.Printf("Error saving worker to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create worker!", nil)
	}

	// Auto-enroll into mandatory trainings
	var mandatory []training.Training
	db.Where("is_mandatory = ? AND is_active = ? AND is_deleted = ?", true, true, false).Find(&mandatory)

	for _, tr := range mandatory {
		enrollment := training.Enrollment{
			WorkerID:   newWorker.ID,
			TrainingID: tr.ID,
		}
		if err := db.Create(&enrollment).Error; err != nil {
			log.Printf("Error auto-enrolling worker %d into training %d: %v", newWorker.ID, tr.ID, err)
		}
	}

	if newWorker.Email != "" {
		go func(w models.Worker) {
			if err := utils.SendEmail([]string{w.Email}, "Welcome to safety training", utils.WelcomeEmailBody(w.Name, w.SapID)); err != nil {
				log.Printf("Error sending welcome email: %v", err)
			}
		}(newWorker)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Worker created successfully.", newWorker)
}

// UpdateWorker updates a worker's details.
func UpdateWorker(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	workerID := c.Locals("workerID").(int)

	reqData, ok := c.Locals("validatedWorkerUpdate").(*struct {
		Name         *string `json:"name"`
		Email        *string `json:"email"`
		DepartmentID *uint   `json:"department_id"`
		IsActive     *bool   `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var worker models.Worker
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", workerID, false).First(&worker).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Worker not found!", nil)
	}

	if scope := middleware.CompanyScope(admin); scope != nil && worker.CompanyID != *scope {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	if reqData.Name != nil {
		worker.Name = *reqData.Name
	}
	if reqData.Email != nil {
		worker.Email = *reqData.Email
	}
	if reqData.DepartmentID != nil {
		worker.DepartmentID = reqData.DepartmentID
	}
	if reqData.IsActive != nil {
		worker.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&worker).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update worker!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Worker updated successfully.", worker)
}

// DeleteWorker removes a worker and cascades deletion over every dependent
// record: enrollments, certificates, login events, feedback and poll
// responses. Rows are hard-deleted so the SAP number and the unique
// enrollment/certificate pair indexes are freed for reuse.
func DeleteWorker(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	workerID := c.Locals("workerID").(int)

	var worker models.Worker
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", workerID, false).First(&worker).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Worker not found!", nil)
	}

	if scope := middleware.CompanyScope(admin); scope != nil && worker.CompanyID != *scope {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	tx := database.Database.Db.Begin()

	if err := tx.Unscoped().Where("worker_id = ?", worker.ID).Delete(&training.Enrollment{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete worker!", nil)
	}
	if err := tx.Unscoped().Where("worker_id = ?", worker.ID).Delete(&training.Certificate{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete worker!", nil)
	}
	if err := tx.Unscoped().Where("worker_id = ?", worker.ID).Delete(&models.LoginTracking{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete worker!", nil)
	}
	if err := tx.Unscoped().Where("worker_id = ?", worker.ID).Delete(&models.SupervisorFeedback{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete worker!", nil)
	}
	if err := tx.Unscoped().Where("worker_id = ?", worker.ID).Delete(&poll.PollResponse{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete worker!", nil)
	}
	if err := tx.Unscoped().Delete(&worker).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete worker!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Worker deleted successfully.", nil)
}

// LookupBySapIDs resolves a batch of SAP numbers to workers in one call.
func LookupBySapIDs(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSapLookup").(*struct {
		SapIDs []string `json:"sap_ids"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.Where("sap_id IN ? AND is_deleted = ?", reqData.SapIDs, false)
	if scope := middleware.CompanyScope(admin); scope != nil {
		db = db.Where("company_id = ?", *scope)
	}

	var workers []models.Worker
	if err := db.Find(&workers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch workers!", nil)
	}

	found := make(map[string]bool, len(workers))
	for _, w := range workers {
		found[w.SapID] = true
	}
	missing := []string{}
	for _, id := range reqData.SapIDs {
		if !found[id] {
			missing = append(missing, id)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workers fetched successfully.", fiber.Map{
		"workers": workers,
		"missing": missing,
	})
}
