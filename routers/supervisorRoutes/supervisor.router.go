package supervisorRoutes

import (
	supervisorController "wst/controllers/supervisor"

	"github.com/gofiber/fiber/v2"
)

// SetupSupervisorRoutes sets up the unauthenticated kiosk routes. Access
// is controlled only by the SUPERVISOR_OPEN_ACCESS policy flag.
func SetupSupervisorRoutes(app *fiber.App) {
	supervisorGroup := app.Group("/api/supervisor", supervisorController.OpenAccessGuard)

	supervisorGroup.Get("/check/:sapId", supervisorController.CheckWorker)
	supervisorGroup.Post("/reset/:enrollmentId", supervisorController.ResetEnrollment)
}
