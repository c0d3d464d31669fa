package trainingController

import (
	"wst/database"
	"wst/lifecycle"
	"wst/middleware"
	"wst/models"
	"wst/models/training"

	"github.com/gofiber/fiber/v2"
)

type companyStats struct {
	CompanyID   uint   `json:"company_id"`
	CompanyName string `json:"company_name"`
	Workers     int    `json:"workers"`
	Enrollments int    `json:"enrollments"`
	Completed   int    `json:"completed"`
	InProgress  int    `json:"in_progress"`
	Failed      int    `json:"failed"`
}

type trainingStats struct {
	TrainingID    uint                  `json:"training_id"`
	TrainingTitle string                `json:"training_title"`
	Enrollments   int                   `json:"enrollments"`
	Completed     int                   `json:"completed"`
	ByCompany     map[uint]*companyBars `json:"by_company"`
}

type companyBars struct {
	Enrollments int `json:"enrollments"`
	Completed   int `json:"completed"`
}

// AdminDashboardStats folds the enrollment set into per-company and
// per-training aggregates. The full relevant collection is loaded into
// memory on every request; there is no materialized view.
func AdminDashboardStats(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	scope := middleware.CompanyScope(admin)

	workerQuery := db.Where("is_deleted = ?", false)
	if scope != nil {
		workerQuery = workerQuery.Where("company_id = ?", *scope)
	}
	var workers []models.Worker
	if err := workerQuery.Find(&workers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard data!", nil)
	}

	workerCompany := make(map[uint]uint, len(workers))
	for _, w := range workers {
		workerCompany[w.ID] = w.CompanyID
	}

	var enrollments []training.Enrollment
	if err := db.Where("is_deleted = ?", false).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard data!", nil)
	}

	var companies []models.Company
	companyQuery := db.Where("is_deleted = ?", false)
	if scope != nil {
		companyQuery = companyQuery.Where("id = ?", *scope)
	}
	companyQuery.Find(&companies)

	companyName := make(map[uint]string, len(companies))
	for _, co := range companies {
		companyName[co.ID] = co.Name
	}

	var trainings []training.Training
	db.Where("is_deleted = ?", false).Find(&trainings)

	trainingTitle := make(map[uint]string, len(trainings))
	for _, tr := range trainings {
		trainingTitle[tr.ID] = tr.Title
	}

	perCompany := make(map[uint]*companyStats)
	for _, w := range workers {
		cs, ok := perCompany[w.CompanyID]
		if !ok {
			cs = &companyStats{CompanyID: w.CompanyID, CompanyName: companyName[w.CompanyID]}
			perCompany[w.CompanyID] = cs
		}
		cs.Workers++
	}

	perTraining := make(map[uint]*trainingStats)

	for i := range enrollments {
		e := &enrollments[i]

		companyID, known := workerCompany[e.WorkerID]
		if !known {
			// Worker outside the admin's scope (or deleted)
			continue
		}

		state := lifecycle.EnrollmentState(e)

		cs := perCompany[companyID]
		if cs == nil {
			cs = &companyStats{CompanyID: companyID, CompanyName: companyName[companyID]}
			perCompany[companyID] = cs
		}
		cs.Enrollments++
		switch state {
		case lifecycle.StateCompleted:
			cs.Completed++
		case lifecycle.StateInProgress:
			cs.InProgress++
		case lifecycle.StateFailed:
			cs.Failed++
		}

		ts := perTraining[e.TrainingID]
		if ts == nil {
			ts = &trainingStats{
				TrainingID:    e.TrainingID,
				TrainingTitle: trainingTitle[e.TrainingID],
				ByCompany:     make(map[uint]*companyBars),
			}
			perTraining[e.TrainingID] = ts
		}
		ts.Enrollments++

		bars := ts.ByCompany[companyID]
		if bars == nil {
			bars = &companyBars{}
			ts.ByCompany[companyID] = bars
		}
		bars.Enrollments++

		if state == lifecycle.StateCompleted {
			ts.Completed++
			bars.Completed++
		}
	}

	companyList := make([]*companyStats, 0, len(perCompany))
	for _, cs := range perCompany {
		companyList = append(companyList, cs)
	}
	trainingList := make([]*trainingStats, 0, len(perTraining))
	for _, ts := range perTraining {
		trainingList = append(trainingList, ts)
	}

	var certCount int64
	certQuery := db.Model(&training.Certificate{}).Where("is_revoked = ? AND is_deleted = ?", false, false)
	if scope != nil {
		certQuery = certQuery.Joins("JOIN workers ON workers.id = certificates.worker_id").
			Where("workers.company_id = ?", *scope)
	}
	certQuery.Count(&certCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard statistics.", fiber.Map{
		"companies":           companyList,
		"trainings":           trainingList,
		"total_workers":       len(workers),
		"active_certificates": certCount,
	})
}
