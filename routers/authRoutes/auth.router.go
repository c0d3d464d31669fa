package authRoutes

import (
	authController "wst/controllers/auth"
	"wst/middleware"
	authValidator "wst/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up login and admin-management routes
func SetupAuthRoutes(app *fiber.App) {
	app.Post("/api/auth/login", authValidator.WorkerLogin(), authController.WorkerLogin)
	app.Post("/api/admin/auth/login", authValidator.AdminLogin(), authController.AdminLogin)

	// Admin management is super-admin only
	adminGroup := app.Group("/api/admin/admins", middleware.AdminJWTMiddleware, middleware.RequireCapability(middleware.CapManageAdmins))
	adminGroup.Get("/", authController.ListAdmins)
	adminGroup.Post("/", authValidator.AdminRegister(), authController.RegisterAdmin)
	adminGroup.Delete("/:id", authValidator.DeleteAdmin(), authController.DeleteAdmin)
}
