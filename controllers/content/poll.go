package contentController

import (
	"wst/database"
	"wst/middleware"
	"wst/models"
	pollModels "wst/models/poll"

	"github.com/gofiber/fiber/v2"
)

// AdminListPolls returns polls; company admins see their own company's
// polls plus global ones.
func AdminListPolls(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db.Where("is_deleted = ?", false).Preload("Options", "is_deleted = ?", false)
	if scope := middleware.CompanyScope(admin); scope != nil {
		db = db.Where("company_id = ? OR company_id IS NULL", *scope)
	}

	var polls []pollModels.Poll
	if err := db.Order("created_at desc").Find(&polls).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch polls!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Polls fetched successfully.", polls)
}

// AdminCreatePoll creates a poll with its options. Company admins publish
// to their own company only.
func AdminCreatePoll(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPoll").(*struct {
		Question  string   `json:"question"`
		CompanyID *uint    `json:"company_id"`
		Options   []string `json:"options"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	companyID := reqData.CompanyID
	if scope := middleware.CompanyScope(admin); scope != nil {
		companyID = scope
	}

	poll := pollModels.Poll{
		Question:  reqData.Question,
		CompanyID: companyID,
		IsActive:  true,
		CreatedBy: admin.ID,
	}

	tx := database.Database.Db.Begin()

	if err := tx.Create(&poll).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create poll!", nil)
	}

	for i, text := range reqData.Options {
		option := pollModels.PollOption{
			PollID:     poll.ID,
			Text:       text,
			OrderIndex: i,
		}
		if err := tx.Create(&option).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create poll!", nil)
		}
		poll.Options = append(poll.Options, option)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Poll created successfully.", poll)
}

// AdminDeletePoll soft-deletes a poll.
func AdminDeletePoll(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	pollID := c.Locals("pollID").(int)

	var poll pollModels.Poll
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", pollID, false).First(&poll).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Poll not found!", nil)
	}

	if scope := middleware.CompanyScope(admin); scope != nil {
		if poll.CompanyID == nil || *poll.CompanyID != *scope {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}
	}

	if err := database.Database.Db.Model(&poll).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete poll!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Poll deleted successfully.", nil)
}

// AdminPollResults folds the responses of one poll into a per-option
// per-company breakdown, in memory.
func AdminPollResults(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(*models.Admin)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	pollID := c.Locals("pollID").(int)

	db := database.Database.Db

	var poll pollModels.Poll
	if err := db.Where("id = ? AND is_deleted = ?", pollID, false).Preload("Options", "is_deleted = ?", false).First(&poll).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Poll not found!", nil)
	}

	var responses []pollModels.PollResponse
	if err := db.Where("poll_id = ? AND is_deleted = ?", pollID, false).Find(&responses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch poll results!", nil)
	}

	var workers []models.Worker
	workerQuery := db.Where("is_deleted = ?", false)
	if scope := middleware.CompanyScope(admin); scope != nil {
		workerQuery = workerQuery.Where("company_id = ?", *scope)
	}
	workerQuery.Find(&workers)

	workerCompany := make(map[uint]uint, len(workers))
	for _, w := range workers {
		workerCompany[w.ID] = w.CompanyID
	}

	type optionResult struct {
		OptionID  uint         `json:"option_id"`
		Text      string       `json:"text"`
		Total     int          `json:"total"`
		ByCompany map[uint]int `json:"by_company"`
	}

	results := make(map[uint]*optionResult, len(poll.Options))
	for _, opt := range poll.Options {
		results[opt.ID] = &optionResult{
			OptionID:  opt.ID,
			Text:      opt.Text,
			ByCompany: make(map[uint]int),
		}
	}

	for _, r := range responses {
		companyID, known := workerCompany[r.WorkerID]
		if !known {
			// Outside the admin's scope
			continue
		}
		or := results[r.OptionID]
		if or == nil {
			continue
		}
		or.Total++
		or.ByCompany[companyID]++
	}

	resultList := make([]*optionResult, 0, len(poll.Options))
	for _, opt := range poll.Options {
		resultList = append(resultList, results[opt.ID])
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Poll results.", fiber.Map{
		"poll":    poll,
		"results": resultList,
	})
}

// WorkerListPolls returns active polls visible to the worker, with a flag
// marking ones they already answered.
func WorkerListPolls(c *fiber.Ctx) error {
	worker, ok := c.Locals("worker").(*models.Worker)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var polls []pollModels.Poll
	if err := database.Database.Db.
		Where("is_deleted = ? AND is_active = ? AND (company_id = ? OR company_id IS NULL)", false, true, worker.CompanyID).
		Preload("Options", "is_deleted = ?", false).
		Order("created_at desc").Find(&polls).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch polls!", nil)
	}

	var answered []pollModels.PollResponse
	database.Database.Db.Where("worker_id = ? AND is_deleted = ?", worker.ID, false).Find(&answered)

	answeredSet := make(map[uint]uint, len(answered))
	for _, r := range answered {
		answeredSet[r.PollID] = r.OptionID
	}

	result := make([]fiber.Map, len(polls))
	for i, p := range polls {
		optionID, done := answeredSet[p.ID]
		entry := fiber.Map{
			"poll":     p,
			"answered": done,
		}
		if done {
			entry["selected_option_id"] = optionID
		}
		result[i] = entry
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Polls fetched successfully.", result)
}

// WorkerVote records a worker's poll response; one vote per poll.
func WorkerVote(c *fiber.Ctx) error {
	worker, ok := c.Locals("worker").(*models.Worker)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	pollID := c.Locals("pollID").(int)

	reqData, ok := c.Locals("validatedVote").(*struct {
		OptionID uint `json:"option_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var poll pollModels.Poll
	if err := db.Where("id = ? AND is_active = ? AND is_deleted = ?", pollID, true, false).First(&poll).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Poll not found or not active!", nil)
	}

	// Poll must be visible to the worker
	if poll.CompanyID != nil && *poll.CompanyID != worker.CompanyID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	var option pollModels.PollOption
	if err := db.Where("id = ? AND poll_id = ? AND is_deleted = ?", reqData.OptionID, poll.ID, false).First(&option).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Option not found!", nil)
	}

	if err := db.Where("poll_id = ? AND worker_id = ? AND is_deleted = ?", poll.ID, worker.ID, false).First(&pollModels.PollResponse{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already voted in this poll!", nil)
	}

	response := pollModels.PollResponse{
		PollID:   poll.ID,
		WorkerID: worker.ID,
		OptionID: option.ID,
	}

	if err := db.Create(&response).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record vote!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Vote recorded.", response)
}
