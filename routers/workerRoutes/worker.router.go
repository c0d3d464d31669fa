package workerRoutes

import (
	contentController "wst/controllers/content"
	supervisorController "wst/controllers/supervisor"
	trainingController "wst/controllers/training"
	"wst/middleware"
	contentValidator "wst/validators/content"
	trainingValidator "wst/validators/training"

	"github.com/gofiber/fiber/v2"
)

// SetupWorkerRoutes sets up all worker-facing routes
func SetupWorkerRoutes(app *fiber.App) {
	workerGroup := app.Group("/api/worker", middleware.WorkerJWTMiddleware)

	// Training lifecycle
	workerGroup.Get("/trainings", trainingController.GetAssignedTrainings)
	workerGroup.Get("/trainings/:id", trainingValidator.TrainingID(), trainingController.GetTrainingDetail)
	workerGroup.Post("/trainings/:id/track", trainingValidator.TrainingID(), trainingValidator.TrackProgress(), trainingController.TrackProgress)
	workerGroup.Post("/trainings/:id/submit-quiz", trainingValidator.TrainingID(), trainingValidator.SubmitQuiz(), trainingController.SubmitQuiz)
	workerGroup.Post("/trainings/:id/complete-without-quiz", trainingValidator.TrainingID(), trainingController.CompleteWithoutQuiz)
	workerGroup.Get("/trainings/:id/certificate", trainingValidator.TrainingID(), trainingController.GetWorkerCertificate)
	workerGroup.Post("/trainings/:id/re-enroll", trainingValidator.TrainingID(), trainingController.ReEnroll)
	workerGroup.Get("/certificates", trainingController.GetWorkerCertificates)

	// Content
	workerGroup.Get("/news", contentController.WorkerListNews)
	workerGroup.Get("/regulations", contentController.ListRegulations)
	workerGroup.Get("/polls", contentController.WorkerListPolls)
	workerGroup.Post("/polls/:id/vote", contentValidator.PollID(), contentValidator.Vote(), contentController.WorkerVote)
	workerGroup.Post("/feedback", contentValidator.Feedback(), supervisorController.SubmitFeedback)
}
