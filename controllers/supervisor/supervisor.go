package supervisorController

import (
	"log"
	"time"
	"wst/config"
	"wst/database"
	"wst/lifecycle"
	"wst/middleware"
	"wst/models"
	"wst/models/training"

	"github.com/gofiber/fiber/v2"
)

// OpenAccessGuard rejects supervisor kiosk requests when open access is
// disabled. The endpoints are deliberately unauthenticated by default
// (kiosk terminals on site); the flag makes that an explicit policy.
func OpenAccessGuard(c *fiber.Ctx) error {
	if !config.AppConfig.SupervisorOpenAccess {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Supervisor access is disabled!", nil)
	}
	return c.Next()
}

// CheckWorker looks a worker up by SAP number and reports their
// enrollments and certificate statuses. No authentication.
func CheckWorker(c *fiber.Ctx) error {
	sapID := c.Params("sapId")
	if sapID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "SAP number is required!", nil)
	}

	db := database.Database.Db

	var worker models.Worker
	if err := db.Where("sap_id = ? AND is_deleted = ?", sapID, false).First(&worker).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Worker not found!", nil)
	}

	var enrollments []training.Enrollment
	db.Where("worker_id = ? AND is_deleted = ?", worker.ID, false).Find(&enrollments)

	now := time.Now()
	enrollmentViews := make([]fiber.Map, len(enrollments))
	for i := range enrollments {
		e := &enrollments[i]

		var tr training.Training
		db.First(&tr, e.TrainingID)

		view := fiber.Map{
			"enrollment":     e,
			"training_title": tr.Title,
			"state":          lifecycle.EnrollmentState(e),
		}

		var cert training.Certificate
		if err := db.Where("worker_id = ? AND training_id = ? AND is_deleted = ?", worker.ID, e.TrainingID, false).First(&cert).Error; err == nil {
			view["certificate"] = cert
			view["certificate_status"] = lifecycle.CertificateStatus(&cert, now)
		}

		enrollmentViews[i] = view
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Worker status.", fiber.Map{
		"worker":      worker,
		"enrollments": enrollmentViews,
	})
}

// ResetEnrollment resets an enrollment by id and revokes its certificate.
// No authentication and no ownership check; gated only by the open-access
// policy flag.
func ResetEnrollment(c *fiber.Ctx) error {
	enrollmentID, err := c.ParamsInt("enrollmentId")
	if err != nil || enrollmentID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
	}

	db := database.Database.Db

	var enrollment training.Enrollment
	if err := db.Where("id = ? AND is_deleted = ?", enrollmentID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	lifecycle.ResetEnrollment(&enrollment)

	tx := db.Begin()

	if err := tx.Save(&enrollment).Error; err != nil {
		tx.Rollback()
		log.Printf("Error resetting enrollment %d: %v", enrollment.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset enrollment!", nil)
	}

	if err := tx.Model(&training.Certificate{}).
		Where("worker_id = ? AND training_id = ? AND is_revoked = ? AND is_deleted = ?", enrollment.WorkerID, enrollment.TrainingID, false, false).
		Update("is_revoked", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset enrollment!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment reset successfully.", enrollment)
}

// SubmitFeedback records a worker's message for their supervisor.
func SubmitFeedback(c *fiber.Ctx) error {
	worker, ok := c.Locals("worker").(*models.Worker)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedFeedback").(*struct {
		Message string `json:"message"`
		Contact string `json:"contact"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	feedback := models.SupervisorFeedback{
		WorkerID: worker.ID,
		Message:  reqData.Message,
		Contact:  reqData.Contact,
	}

	if err := database.Database.Db.Create(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Feedback submitted.", feedback)
}
