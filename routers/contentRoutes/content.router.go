package contentRoutes

import (
	contentController "wst/controllers/content"
	"wst/middleware"
	contentValidator "wst/validators/content"

	"github.com/gofiber/fiber/v2"
)

// SetupContentRoutes sets up admin news, regulation, poll and upload
// routes
func SetupContentRoutes(app *fiber.App) {
	newsGroup := app.Group("/api/admin/news", middleware.AdminJWTMiddleware, middleware.RequireCapability(middleware.CapManageContent))
	newsGroup.Get("/", contentController.AdminListNews)
	newsGroup.Post("/", contentValidator.NewsCreate(), contentController.AdminCreateNews)
	newsGroup.Delete("/:id", contentValidator.NewsID(), contentController.AdminDeleteNews)

	// Regulations are super-admin only
	regulationGroup := app.Group("/api/admin/regulations", middleware.AdminJWTMiddleware)
	regulationGroup.Get("/", contentController.ListRegulations)
	manage := middleware.RequireCapability(middleware.CapManageRegulations)
	regulationGroup.Post("/", manage, contentValidator.RegulationCreate(), contentController.AdminCreateRegulation)
	regulationGroup.Put("/:id", manage, contentValidator.RegulationID(), contentValidator.RegulationUpdate(), contentController.AdminUpdateRegulation)
	regulationGroup.Delete("/:id", manage, contentValidator.RegulationID(), contentController.AdminDeleteRegulation)

	pollGroup := app.Group("/api/admin/polls", middleware.AdminJWTMiddleware, middleware.RequireCapability(middleware.CapManageContent))
	pollGroup.Get("/", contentController.AdminListPolls)
	pollGroup.Post("/", contentValidator.PollCreate(), contentController.AdminCreatePoll)
	pollGroup.Get("/:id/results", contentValidator.PollID(), contentController.AdminPollResults)
	pollGroup.Delete("/:id", contentValidator.PollID(), contentController.AdminDeletePoll)

	app.Post("/api/admin/upload", middleware.AdminJWTMiddleware, middleware.RequireCapability(middleware.CapManageContent), contentController.AdminUploadFile)
}
