package trainingRoutes

import (
	trainingController "wst/controllers/training"
	"wst/middleware"
	trainingValidator "wst/validators/training"

	"github.com/gofiber/fiber/v2"
)

// SetupTrainingRoutes sets up admin training authoring and enrollment
// management routes
func SetupTrainingRoutes(app *fiber.App) {
	trainingGroup := app.Group("/api/admin/trainings", middleware.AdminJWTMiddleware)

	// Reads are open to every admin; authoring is super-admin only
	trainingGroup.Get("/", trainingController.AdminListTrainings)
	trainingGroup.Get("/:id", trainingValidator.TrainingID(), trainingController.AdminGetTraining)

	authoring := middleware.RequireCapability(middleware.CapAuthorTrainings)
	trainingGroup.Post("/", authoring, trainingValidator.TrainingCreate(), trainingController.AdminCreateTraining)
	trainingGroup.Put("/:id", authoring, trainingValidator.TrainingID(), trainingValidator.TrainingUpdate(), trainingController.AdminUpdateTraining)
	trainingGroup.Delete("/:id", authoring, trainingValidator.TrainingID(), trainingController.AdminDeleteTraining)
	trainingGroup.Post("/:id/restore", authoring, trainingValidator.TrainingID(), trainingController.AdminRestoreTraining)
	trainingGroup.Delete("/:id/permanent", authoring, trainingValidator.TrainingID(), trainingController.AdminPurgeTraining)

	enrollmentGroup := app.Group("/api/admin/enrollments", middleware.AdminJWTMiddleware, middleware.RequireCapability(middleware.CapManageEnrollments))
	enrollmentGroup.Get("/", trainingController.AdminListEnrollments)
	enrollmentGroup.Post("/", trainingValidator.EnrollmentCreate(), trainingController.AdminCreateEnrollment)
	enrollmentGroup.Post("/bulk", trainingValidator.BulkEnroll(), trainingController.AdminBulkEnroll)
	enrollmentGroup.Post("/:id/reset", trainingValidator.EnrollmentID(), trainingController.AdminResetEnrollment)
	enrollmentGroup.Delete("/:id", trainingValidator.EnrollmentID(), trainingController.AdminDeleteEnrollment)
}
