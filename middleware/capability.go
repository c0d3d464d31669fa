package middleware

import (
	"wst/models"

	"github.com/gofiber/fiber/v2"
)

// Capabilities gate privileged admin operations. Roles map to capability
// sets once, here, instead of ad hoc role-string checks in every handler.
const (
	CapManageAdmins      = "manage-admins"
	CapManageCompanies   = "manage-companies"
	CapAuthorTrainings   = "author-trainings"
	CapManageRegulations = "manage-regulations"
	CapManageWorkers     = "manage-workers"
	CapManageEnrollments = "manage-enrollments"
	CapManageContent     = "manage-content"
	CapViewDashboard     = "view-dashboard"
)

var roleCapabilities = map[string][]string{
	models.RoleSuperAdmin: {
		CapManageAdmins,
		CapManageCompanies,
		CapAuthorTrainings,
		CapManageRegulations,
		CapManageWorkers,
		CapManageEnrollments,
		CapManageContent,
		CapViewDashboard,
	},
	models.RoleCompanyAdmin: {
		CapManageWorkers,
		CapManageEnrollments,
		CapManageContent,
		CapViewDashboard,
	},
}

// HasCapability reports whether a role grants the given capability.
func HasCapability(role, capability string) bool {
	for _, granted := range roleCapabilities[role] {
		if granted == capability {
			return true
		}
	}
	return false
}

// RequireCapability returns a middleware that rejects admins whose role
// does not grant the required capability. Must run after AdminJWTMiddleware.
func RequireCapability(capability string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, ok := c.Locals("admin").(*models.Admin)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		if !HasCapability(admin.Role, capability) {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}

		return c.Next()
	}
}

// CompanyScope returns the company filter for an admin: company admins are
// restricted to their own company, super admins are unrestricted (nil).
func CompanyScope(admin *models.Admin) *uint {
	if admin.Role == models.RoleSuperAdmin {
		return nil
	}
	return admin.CompanyID
}
