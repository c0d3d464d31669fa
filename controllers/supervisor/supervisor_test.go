package supervisorController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"wst/config"
	"wst/database"
	"wst/lifecycle"
	"wst/middleware"
	"wst/models"
	"wst/models/training"
	supervisorRoutes "wst/routers/supervisorRoutes"
	workerRoutes "wst/routers/workerRoutes"

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

func setupApp(t *testing.T, openAccess bool) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:                 "3000",
		SaltRound:            4,
		AdminJWTKey:          "test-admin-secret",
		WorkerJWTKey:         "test-worker-secret",
		UploadDir:            t.TempDir(),
		SupervisorOpenAccess: openAccess,
		ExpiryReminderDays:   30,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	supervisorRoutes.SetupSupervisorRoutes(app)
	workerRoutes.SetupWorkerRoutes(app)
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

func seedWorker(t *testing.T, sapID string) models.Worker {
	t.Helper()
	company := models.Company{Name: "acme-" + sapID}
	require.NoError(t, database.Database.Db.Create(&company).Error)
	worker := models.Worker{SapID: sapID, Name: "Worker " + sapID, CompanyID: company.ID, IsActive: true}
	require.NoError(t, database.Database.Db.Create(&worker).Error)
	return worker
}

func TestOpenAccessDisabled(t *testing.T) {
	app := setupApp(t, false)

	status, env := doJSON(t, app, "GET", "/api/supervisor/check/12345", "", nil)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.False(t, env.Status)
}

func TestCheckWorkerBySapID(t *testing.T) {
	app := setupApp(t, true)
	worker := seedWorker(t, "50001")

	db := database.Database.Db
	tr := training.Training{Title: "Excavation Safety", ValidityPeriod: 6, IsActive: true}
	require.NoError(t, db.Create(&tr).Error)

	completedAt := time.Now()
	enrollment := training.Enrollment{WorkerID: worker.ID, TrainingID: tr.ID, IsPassed: true, Progress: 100, Score: 90, Attempts: 1, CompletedAt: &completedAt}
	require.NoError(t, db.Create(&enrollment).Error)

	expired := time.Now().AddDate(0, -1, 0)
	cert := training.Certificate{
		CertificateNumber: "WST-2026-TEST0001",
		WorkerID:          worker.ID,
		TrainingID:        tr.ID,
		EnrollmentID:      enrollment.ID,
		Score:             90,
		Attempts:          1,
		IssuedAt:          time.Now().AddDate(0, -7, 0),
		ExpiresAt:         &expired,
	}
	require.NoError(t, db.Create(&cert).Error)

	status, env := doJSON(t, app, "GET", "/api/supervisor/check/50001", "", nil)
	require.Equal(t, fiber.StatusOK, status)

	var result struct {
		Worker      models.Worker `json:"worker"`
		Enrollments []struct {
			TrainingTitle     string `json:"training_title"`
			State             string `json:"state"`
			CertificateStatus string `json:"certificate_status"`
		} `json:"enrollments"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "50001", result.Worker.SapID)
	require.Len(t, result.Enrollments, 1)
	assert.Equal(t, "Excavation Safety", result.Enrollments[0].TrainingTitle)
	assert.Equal(t, lifecycle.StateCompleted, result.Enrollments[0].State)
	assert.Equal(t, lifecycle.CertExpired, result.Enrollments[0].CertificateStatus)
}

func TestCheckWorkerUnknownSapID(t *testing.T) {
	app := setupApp(t, true)

	status, _ := doJSON(t, app, "GET", "/api/supervisor/check/99999", "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestSupervisorResetRevokesCertificate(t *testing.T) {
	app := setupApp(t, true)
	worker := seedWorker(t, "50002")

	db := database.Database.Db
	tr := training.Training{Title: "Manual Handling", IsActive: true}
	require.NoError(t, db.Create(&tr).Error)

	enrollment := training.Enrollment{WorkerID: worker.ID, TrainingID: tr.ID, IsPassed: true, Progress: 100, Score: 80, Attempts: 2}
	require.NoError(t, db.Create(&enrollment).Error)
	cert := training.Certificate{
		CertificateNumber: "WST-2026-TEST0002",
		WorkerID:          worker.ID,
		TrainingID:        tr.ID,
		EnrollmentID:      enrollment.ID,
		IssuedAt:          time.Now(),
	}
	require.NoError(t, db.Create(&cert).Error)

	status, _ := doJSON(t, app, "POST", fmt.Sprintf("/api/supervisor/reset/%d", enrollment.ID), "", nil)
	require.Equal(t, fiber.StatusOK, status)

	require.NoError(t, db.First(&enrollment, enrollment.ID).Error)
	assert.False(t, enrollment.IsPassed)
	assert.Equal(t, 0, enrollment.Progress)
	assert.Equal(t, 0, enrollment.Attempts)
	assert.Nil(t, enrollment.CompletedAt)

	require.NoError(t, db.First(&cert, cert.ID).Error)
	assert.True(t, cert.IsRevoked)
}

func TestWorkerFeedback(t *testing.T) {
	app := setupApp(t, true)
	worker := seedWorker(t, "50003")
	token, err := middleware.GenerateWorkerJWT(worker.ID, worker.SapID)
	require.NoError(t, err)

	status, _ := doJSON(t, app, "POST", "/api/worker/feedback", token, fiber.Map{
		"message": "Guard rail missing on level 3",
		"contact": "radio channel 4",
	})
	require.Equal(t, fiber.StatusCreated, status)

	var count int64
	database.Database.Db.Model(&models.SupervisorFeedback{}).Where("worker_id = ?", worker.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}
