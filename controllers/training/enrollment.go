package trainingController

import (
	"log"
	"time"
	"wst/database"
	"wst/lifecycle"
	"wst/middleware"
	"wst/models"
	"wst/models/training"

	"github.com/gofiber/fiber/v2"
)

// enrollWorker enrolls one worker into a training. When a live enrollment
// already exists it is a conflict; when the pair's certificate has expired
// the existing enrollment is reset in place instead of duplicated.
func enrollWorker(workerID uint, tr *training.Training) (*training.Enrollment, int, string) {
	db := database.Database.Db

	var existing training.Enrollment
	if err := db.Where("worker_id = ? AND training_id = ? AND is_deleted = ?", workerID, tr.ID, false).First(&existing).Error; err == nil {
		var cert training.Certificate
		certErr := db.Where("worker_id = ? AND training_id = ? AND is_deleted = ?", workerID, tr.ID, false).First(&cert).Error

		if certErr == nil && lifecycle.CertificateStatus(&cert, time.Now()) == lifecycle.CertExpired {
			// Expired certificate: reset the enrollment in place
			if err := resetEnrollment(db, &existing); err != nil {
				log.Printf("Error resetting enrollment %d: %v", existing.ID, err)
				return nil, fiber.StatusInternalServerError, "Failed to enroll worker!"
			}
			return &existing, fiber.StatusOK, "Worker re-enrolled after certificate expiry."
		}

		return nil, fiber.StatusConflict, "Worker is already enrolled in this training!"
	}

	enrollment := training.Enrollment{
		WorkerID:   workerID,
		TrainingID: tr.ID,
	}
	if err := db.Create(&enrollment).Error; err != nil {
		log.Printf("Error creating enrollment: %v", err)
		return nil, fiber.StatusInternalServerError, "Failed to enroll worker!"
	}

	return &enrollment, fiber.StatusCreated, "Worker enrolled successfully."
}

// AdminCreateEnrollment enrolls a worker into an active training.
func AdminCreateEnrollment(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEnrollmentCreate").(*struct {
		WorkerID   uint `json:"worker_id"`
		TrainingID uint `json:"training_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var worker models.Worker
	if err := db.Where("id = ? AND is_deleted = ?", reqData.WorkerID, false).First(&worker).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Worker not found!", nil)
	}

	if scope := middleware.CompanyScope(admin); scope != nil && worker.CompanyID != *scope {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	var tr training.Training
	if err := db.Where("id = ? AND is_active = ? AND is_deleted = ?", reqData.TrainingID, true, false).First(&tr).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found or not active!", nil)
	}

	enrollment, status, message := enrollWorker(worker.ID, &tr)
	if enrollment == nil {
		return middleware.JsonResponse(c, status, false, message, nil)
	}

	return middleware.JsonResponse(c, status, true, message, enrollment)
}

// AdminBulkEnroll enrolls a batch of workers into one training. Partial
// success is reported per worker.
func AdminBulkEnroll(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedBulkEnroll").(*struct {
		WorkerIDs  []uint `json:"worker_ids"`
		TrainingID uint   `json:"training_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var tr training.Training
	if err := db.Where("id = ? AND is_active = ? AND is_deleted = ?", reqData.TrainingID, true, false).First(&tr).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found or not active!", nil)
	}

	enrolled := []uint{}
	skipped := map[string][]uint{}

	for _, workerID := range reqData.WorkerIDs {
		var worker models.Worker
		if err := db.Where("id = ? AND is_deleted = ?", workerID, false).First(&worker).Error; err != nil {
			skipped["not_found"] = append(skipped["not_found"], workerID)
			continue
		}
		if scope := middleware.CompanyScope(admin); scope != nil && worker.CompanyID != *scope {
			skipped["forbidden"] = append(skipped["forbidden"], workerID)
			continue
		}

		enrollment, status, _ := enrollWorker(worker.ID, &tr)
		if enrollment == nil {
			if status == fiber.StatusConflict {
				skipped["already_enrolled"] = append(skipped["already_enrolled"], workerID)
			} else {
				skipped["failed"] = append(skipped["failed"], workerID)
			}
			continue
		}
		enrolled = append(enrolled, workerID)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bulk enrollment finished.", fiber.Map{
		"enrolled": enrolled,
		"skipped":  skipped,
	})
}

// AdminListEnrollments lists enrollments with derived states, scoped to
// the admin's company.
func AdminListEnrollments(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	query := db.Model(&training.Enrollment{}).Where("enrollments.is_deleted = ?", false)
	if scope := middleware.CompanyScope(admin); scope != nil {
		query = query.Joins("JOIN workers ON workers.id = enrollments.worker_id").
			Where("workers.company_id = ?", *scope)
	}
	if trainingID := c.Query("training_id"); trainingID != "" {
		query = query.Where("enrollments.training_id = ?", trainingID)
	}

	var enrollments []training.Enrollment
	if err := query.Order("enrollments.created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	result := make([]fiber.Map, len(enrollments))
	for i := range enrollments {
		result[i] = fiber.Map{
			"enrollment": enrollments[i],
			"state":      lifecycle.EnrollmentState(&enrollments[i]),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", result)
}

// AdminResetEnrollment clears an enrollment's progress and revokes its
// certificate.
func AdminResetEnrollment(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)

	var enrollment training.Enrollment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", enrollmentID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	// An unresolved owner counts as out of scope
	if scope := middleware.CompanyScope(admin); scope != nil {
		var worker models.Worker
		if err := database.Database.Db.First(&worker, enrollment.WorkerID).Error; err != nil || worker.CompanyID != *scope {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}
	}

	if err := resetEnrollment(database.Database.Db, &enrollment); err != nil {
		log.Printf("Error resetting enrollment %d: %v", enrollment.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment reset successfully.", enrollment)
}

// AdminDeleteEnrollment removes an enrollment record entirely. The row is
// hard-deleted so the (worker, training) unique index only ever constrains
// live enrollments and the pair can be enrolled again later.
func AdminDeleteEnrollment(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)

	var enrollment training.Enrollment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", enrollmentID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	// An unresolved owner counts as out of scope
	if scope := middleware.CompanyScope(admin); scope != nil {
		var worker models.Worker
		if err := database.Database.Db.First(&worker, enrollment.WorkerID).Error; err != nil || worker.CompanyID != *scope {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}
	}

	if err := database.Database.Db.Unscoped().Delete(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment deleted successfully.", nil)
}
