package adminRoutes

import (
	companyController "wst/controllers/company"
	trainingController "wst/controllers/training"
	workerController "wst/controllers/worker"
	"wst/middleware"
	companyValidator "wst/validators/company"
	workerValidator "wst/validators/worker"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up dashboard, worker and company management routes
func SetupAdminRoutes(app *fiber.App) {
	app.Get("/api/admin/dashboard", middleware.AdminJWTMiddleware, middleware.RequireCapability(middleware.CapViewDashboard), trainingController.AdminDashboardStats)

	workerGroup := app.Group("/api/admin/workers", middleware.AdminJWTMiddleware, middleware.RequireCapability(middleware.CapManageWorkers))
	workerGroup.Get("/", workerValidator.WorkerList(), workerController.ListWorkers)
	workerGroup.Post("/", workerValidator.WorkerCreate(), workerController.CreateWorker)
	workerGroup.Post("/lookup", workerValidator.SapLookup(), workerController.LookupBySapIDs)
	workerGroup.Get("/:id", workerValidator.WorkerID(), workerController.GetWorker)
	workerGroup.Put("/:id", workerValidator.WorkerID(), workerValidator.WorkerUpdate(), workerController.UpdateWorker)
	workerGroup.Delete("/:id", workerValidator.WorkerID(), workerController.DeleteWorker)

	companyGroup := app.Group("/api/admin/companies", middleware.AdminJWTMiddleware)
	companyGroup.Get("/", companyController.ListCompanies)
	companyGroup.Post("/", middleware.RequireCapability(middleware.CapManageCompanies), companyValidator.CompanyCreate(), companyController.CreateCompany)
	companyGroup.Put("/:id", middleware.RequireCapability(middleware.CapManageCompanies), companyValidator.CompanyID(), companyValidator.CompanyUpdate(), companyController.UpdateCompany)
	companyGroup.Delete("/:id", middleware.RequireCapability(middleware.CapManageCompanies), companyValidator.CompanyID(), companyController.DeleteCompany)

	// Departments are managed by company admins for their own company
	companyGroup.Get("/:id/departments", companyValidator.CompanyID(), companyController.ListDepartments)
	companyGroup.Post("/:id/departments", companyValidator.CompanyID(), companyValidator.DepartmentCreate(), companyController.CreateDepartment)
	companyGroup.Delete("/:id/departments/:department_id", companyValidator.CompanyID(), companyValidator.DepartmentID(), companyController.DeleteDepartment)
}
