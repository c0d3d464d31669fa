package trainingController_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardData struct {
	Companies []struct {
		CompanyID   uint `json:"company_id"`
		Workers     int  `json:"workers"`
		Enrollments int  `json:"enrollments"`
		Completed   int  `json:"completed"`
		InProgress  int  `json:"in_progress"`
		Failed      int  `json:"failed"`
	} `json:"companies"`
	Trainings []struct {
		TrainingID  uint `json:"training_id"`
		Enrollments int  `json:"enrollments"`
		Completed   int  `json:"completed"`
		ByCompany   map[uint]struct {
			Enrollments int `json:"enrollments"`
			Completed   int `json:"completed"`
		} `json:"by_company"`
	} `json:"trainings"`
	TotalWorkers       int   `json:"total_workers"`
	ActiveCertificates int64 `json:"active_certificates"`
}

func TestDashboardAggregation(t *testing.T) {
	app := setupApp(t)
	superToken := seedSuperAdmin(t)
	companyA := seedCompany(t, "acme")
	companyB := seedCompany(t, "globex")

	workerA1, tokenA1 := seedWorker(t, "70001", companyA.ID)
	workerA2, _ := seedWorker(t, "70002", companyA.ID)
	workerB1, tokenB1 := seedWorker(t, "70003", companyB.ID)

	tr := seedTraining(t, "Fire Watch", 70, 0, 2, 1)
	seedEnrollment(t, workerA1.ID, tr.ID)
	seedEnrollment(t, workerA2.ID, tr.ID)
	seedEnrollment(t, workerB1.ID, tr.ID)

	// Worker A1 passes, worker B1 fails
	quizPath := fmt.Sprintf("/api/worker/trainings/%d/submit-quiz", tr.ID)
	status, _ := doJSON(t, app, "POST", quizPath, tokenA1, fiber.Map{"answers": quizAnswers(t, tr.ID, 1)})
	require.Equal(t, fiber.StatusOK, status)
	status, _ = doJSON(t, app, "POST", quizPath, tokenB1, fiber.Map{"answers": quizAnswers(t, tr.ID, 0)})
	require.Equal(t, fiber.StatusOK, status)

	status, env := doJSON(t, app, "GET", "/api/admin/dashboard", superToken, nil)
	require.Equal(t, fiber.StatusOK, status)

	var data dashboardData
	require.NoError(t, json.Unmarshal(env.Data, &data))

	assert.Equal(t, 3, data.TotalWorkers)
	assert.EqualValues(t, 1, data.ActiveCertificates)
	require.Len(t, data.Companies, 2)
	require.Len(t, data.Trainings, 1)

	for _, cs := range data.Companies {
		switch cs.CompanyID {
		case companyA.ID:
			assert.Equal(t, 2, cs.Workers)
			assert.Equal(t, 2, cs.Enrollments)
			assert.Equal(t, 1, cs.Completed)
		case companyB.ID:
			assert.Equal(t, 1, cs.Workers)
			assert.Equal(t, 1, cs.Enrollments)
			assert.Equal(t, 1, cs.Failed)
		default:
			t.Fatalf("unexpected company %d in dashboard", cs.CompanyID)
		}
	}

	ts := data.Trainings[0]
	assert.Equal(t, tr.ID, ts.TrainingID)
	assert.Equal(t, 3, ts.Enrollments)
	assert.Equal(t, 1, ts.Completed)
	assert.Equal(t, 2, ts.ByCompany[companyA.ID].Enrollments)
	assert.Equal(t, 1, ts.ByCompany[companyA.ID].Completed)
	assert.Equal(t, 1, ts.ByCompany[companyB.ID].Enrollments)
}

func TestDashboardCompanyScoped(t *testing.T) {
	app := setupApp(t)
	companyA := seedCompany(t, "acme")
	companyB := seedCompany(t, "globex")
	companyToken := seedCompanyAdmin(t, companyA.ID)

	workerA, _ := seedWorker(t, "70010", companyA.ID)
	workerB, _ := seedWorker(t, "70011", companyB.ID)
	tr := seedTraining(t, "Eye Protection", 70, 0, 1, 0)
	seedEnrollment(t, workerA.ID, tr.ID)
	seedEnrollment(t, workerB.ID, tr.ID)

	status, env := doJSON(t, app, "GET", "/api/admin/dashboard", companyToken, nil)
	require.Equal(t, fiber.StatusOK, status)

	var data dashboardData
	require.NoError(t, json.Unmarshal(env.Data, &data))

	assert.Equal(t, 1, data.TotalWorkers)
	require.Len(t, data.Companies, 1)
	assert.Equal(t, companyA.ID, data.Companies[0].CompanyID)

	// The other company's enrollment never leaks into the aggregates
	require.Len(t, data.Trainings, 1)
	assert.Equal(t, 1, data.Trainings[0].Enrollments)
	_, present := data.Trainings[0].ByCompany[companyB.ID]
	assert.False(t, present)
}
