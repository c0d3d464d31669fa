package authController_test

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
	authRoutes "wst/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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
	authRoutes.SetupAuthRoutes(app)
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

func seedAdmin(t *testing.T, username, password, role string, companyID *uint) models.Admin {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	require.NoError(t, err)
	admin := models.Admin{Username: username, Name: "Admin", Password: string(hashed), Role: role, CompanyID: companyID}
	require.NoError(t, database.Database.Db.Create(&admin).Error)
	return admin
}

func adminToken(t *testing.T, admin models.Admin) string {
	t.Helper()
	token, err := middleware.GenerateAdminJWT(admin.ID, admin.Username, admin.Role)
	require.NoError(t, err)
	return token
}

func TestWorkerLoginBySapID(t *testing.T) {
	app := setupApp(t)

	company := models.Company{Name: "acme"}
	require.NoError(t, database.Database.Db.Create(&company).Error)
	worker := models.Worker{SapID: "60001", Name: "Worker", CompanyID: company.ID, IsActive: true}
	require.NoError(t, database.Database.Db.Create(&worker).Error)

	status, env := doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{"sap_id": "60001"})
	require.Equal(t, fiber.StatusOK, status)

	var result struct {
		Token  string        `json:"token"`
		Worker models.Worker `json:"worker"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, worker.ID, result.Worker.ID)

	// Every successful login is recorded
	var count int64
	database.Database.Db.Model(&models.LoginTracking{}).Where("worker_id = ?", worker.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	// Unknown SAP numbers are rejected
	status, _ = doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{"sap_id": "00000"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestWorkerLoginInactiveAccount(t *testing.T) {
	app := setupApp(t)

	company := models.Company{Name: "acme"}
	require.NoError(t, database.Database.Db.Create(&company).Error)
	worker := models.Worker{SapID: "60002", Name: "Worker", CompanyID: company.ID, IsActive: false}
	require.NoError(t, database.Database.Db.Create(&worker).Error)

	status, _ := doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{"sap_id": "60002"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAdminLogin(t *testing.T) {
	app := setupApp(t)
	seedAdmin(t, "root", "secret123", models.RoleSuperAdmin, nil)

	status, env := doJSON(t, app, "POST", "/api/admin/auth/login", "", fiber.Map{"username": "root", "password": "secret123"})
	require.Equal(t, fiber.StatusOK, status)

	var result struct {
		Token string       `json:"token"`
		Admin models.Admin `json:"admin"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.NotEmpty(t, result.Token)
	assert.NotNil(t, result.Admin.LastLogin)

	status, _ = doJSON(t, app, "POST", "/api/admin/auth/login", "", fiber.Map{"username": "root", "password": "wrongpassword"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestRegisterAdminSuperOnly(t *testing.T) {
	app := setupApp(t)

	company := models.Company{Name: "acme"}
	require.NoError(t, database.Database.Db.Create(&company).Error)
	super := seedAdmin(t, "root", "secret123", models.RoleSuperAdmin, nil)
	companyAdmin := seedAdmin(t, "acme-admin", "secret123", models.RoleCompanyAdmin, &company.ID)

	body := fiber.Map{
		"username":   "new-admin",
		"name":       "New Admin",
		"email":      "new@example.com",
		"password":   "secret123",
		"role":       models.RoleCompanyAdmin,
		"company_id": company.ID,
	}

	status, _ := doJSON(t, app, "POST", "/api/admin/admins", adminToken(t, companyAdmin), body)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = doJSON(t, app, "POST", "/api/admin/admins", adminToken(t, super), body)
	assert.Equal(t, fiber.StatusCreated, status)

	// Company admins must reference an existing company
	status, _ = doJSON(t, app, "POST", "/api/admin/admins", adminToken(t, super), fiber.Map{
		"username": "orphan-admin",
		"name":     "Orphan",
		"email":    "orphan@example.com",
		"password": "secret123",
		"role":     models.RoleCompanyAdmin,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestDeleteAdminCannotDeleteSelf(t *testing.T) {
	app := setupApp(t)
	super := seedAdmin(t, "root", "secret123", models.RoleSuperAdmin, nil)
	other := seedAdmin(t, "second", "secret123", models.RoleSuperAdmin, nil)
	token := adminToken(t, super)

	status, _ := doJSON(t, app, "DELETE", fmt.Sprintf("/api/admin/admins/%d", super.ID), token, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/admin/admins/%d", other.ID), token, nil)
	require.Equal(t, fiber.StatusOK, status)

	var count int64
	database.Database.Db.Model(&models.Admin{}).Where("is_deleted = ?", false).Count(&count)
	assert.EqualValues(t, 1, count)
}
