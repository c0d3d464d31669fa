package companyController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"wst/config"
	"wst/database"
	"wst/middleware"
	"wst/models"
	adminRoutes "wst/routers/adminRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:               "3000",
		SaltRound:          4,
		AdminJWTKey:        "test-admin-secret",
		WorkerJWTKey:       "test-worker-secret",
		UploadDir:          t.TempDir(),
		ExpiryReminderDays: 30,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	adminRoutes.SetupAdminRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, apiEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env apiEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func seedAdmin(t *testing.T, role string, companyID *uint) string {
	t.Helper()
	username := role
	if companyID != nil {
		username = fmt.Sprintf("%s-%d", role, *companyID)
	}
	admin := models.Admin{Username: username, Name: "Admin", Password: "x", Role: role, CompanyID: companyID}
	require.NoError(t, database.Database.Db.Create(&admin).Error)
	token, err := middleware.GenerateAdminJWT(admin.ID, admin.Username, admin.Role)
	require.NoError(t, err)
	return token
}

func seedCompany(t *testing.T, name string) models.Company {
	t.Helper()
	company := models.Company{Name: name}
	require.NoError(t, database.Database.Db.Create(&company).Error)
	return company
}

func TestCompanyCrudSuperAdminOnly(t *testing.T) {
	app := setupApp(t)
	superToken := seedAdmin(t, models.RoleSuperAdmin, nil)

	status, env := doJSON(t, app, "POST", "/api/admin/companies", superToken, fiber.Map{
		"name":          "acme",
		"contact_email": "hse@acme.example",
	})
	require.Equal(t, fiber.StatusCreated, status)

	var company models.Company
	require.NoError(t, json.Unmarshal(env.Data, &company))
	assert.Equal(t, "hse@acme.example", company.ContactEmail)

	// Duplicate names are rejected
	status, _ = doJSON(t, app, "POST", "/api/admin/companies", superToken, fiber.Map{"name": "acme"})
	assert.Equal(t, fiber.StatusConflict, status)

	// Company admins cannot manage companies
	companyToken := seedAdmin(t, models.RoleCompanyAdmin, &company.ID)
	status, _ = doJSON(t, app, "POST", "/api/admin/companies", companyToken, fiber.Map{"name": "globex"})
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestListCompaniesScoped(t *testing.T) {
	app := setupApp(t)
	companyA := seedCompany(t, "acme")
	seedCompany(t, "globex")
	companyToken := seedAdmin(t, models.RoleCompanyAdmin, &companyA.ID)

	status, env := doJSON(t, app, "GET", "/api/admin/companies", companyToken, nil)
	require.Equal(t, fiber.StatusOK, status)

	var companies []models.Company
	require.NoError(t, json.Unmarshal(env.Data, &companies))
	require.Len(t, companies, 1)
	assert.Equal(t, companyA.ID, companies[0].ID)
}

func TestDeleteCompanyRefusedWithWorkers(t *testing.T) {
	app := setupApp(t)
	superToken := seedAdmin(t, models.RoleSuperAdmin, nil)
	company := seedCompany(t, "acme")

	worker := models.Worker{SapID: "80001", Name: "Worker", CompanyID: company.ID, IsActive: true}
	require.NoError(t, database.Database.Db.Create(&worker).Error)

	status, _ := doJSON(t, app, "DELETE", fmt.Sprintf("/api/admin/companies/%d", company.ID), superToken, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	require.NoError(t, database.Database.Db.Model(&worker).Update("is_deleted", true).Error)

	status, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/admin/companies/%d", company.ID), superToken, nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestDepartmentsScopedToOwnCompany(t *testing.T) {
	app := setupApp(t)
	companyA := seedCompany(t, "acme")
	companyB := seedCompany(t, "globex")
	companyToken := seedAdmin(t, models.RoleCompanyAdmin, &companyA.ID)

	status, env := doJSON(t, app, "POST", fmt.Sprintf("/api/admin/companies/%d/departments", companyA.ID), companyToken, fiber.Map{
		"name": "Maintenance",
	})
	require.Equal(t, fiber.StatusCreated, status)

	var department models.Department
	require.NoError(t, json.Unmarshal(env.Data, &department))
	assert.Equal(t, companyA.ID, department.CompanyID)

	// Another company's departments are off limits
	status, _ = doJSON(t, app, "POST", fmt.Sprintf("/api/admin/companies/%d/departments", companyB.ID), companyToken, fiber.Map{
		"name": "Logistics",
	})
	assert.Equal(t, fiber.StatusForbidden, status)

	status, env = doJSON(t, app, "GET", fmt.Sprintf("/api/admin/companies/%d/departments", companyA.ID), companyToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	var departments []models.Department
	require.NoError(t, json.Unmarshal(env.Data, &departments))
	assert.Len(t, departments, 1)

	status, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/admin/companies/%d/departments/%d", companyA.ID, department.ID), companyToken, nil)
	assert.Equal(t, fiber.StatusOK, status)
}
