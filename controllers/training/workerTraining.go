package trainingController

import (
	"encoding/json"
	"log"
	"time"
	"wst/database"
	"wst/lifecycle"
	"wst/middleware"
	"wst/models"
	"wst/models/training"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// GetAssignedTrainings lists the worker's enrollments with their trainings
// and derived states.
func GetAssignedTrainings(c *fiber.Ctx) error {
	worker, ok := c.Locals("worker").(*models.Worker)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []training.Enrollment
	if err := database.Database.Db.Where("worker_id = ? AND is_deleted = ?", worker.ID, false).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch trainings!", nil)
	}

	result := make([]fiber.Map, 0, len(enrollments))
	for i := range enrollments {
		var tr training.Training
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", enrollments[i].TrainingID, false).First(&tr).Error; err != nil {
			continue
		}
		result = append(result, fiber.Map{
			"enrollment": enrollments[i],
			"training":   tr,
			"state":      lifecycle.EnrollmentState(&enrollments[i]),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainings fetched successfully.", result)
}

// GetTrainingDetail returns a training's slides and questions for an
// enrolled worker. Correct-answer flags are stripped from the options.
func GetTrainingDetail(c *fiber.Ctx) error {
	worker, ok := c.Locals("worker").(*models.Worker)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	trainingID := c.Locals("trainingID").(int)

	var enrollment training.Enrollment
	if err := database.Database.Db.Where("worker_id = ? AND training_id = ? AND is_deleted = ?", worker.ID, trainingID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this training!", nil)
	}

	var tr training.Training
	if err := database.Database.Db.Where("id = ? AND is_active = ? AND is_deleted = ?", trainingID, true, false).First(&tr).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found or not active!", nil)
	}

	var slides []training.TrainingSlide
	database.Database.Db.Where("training_id = ? AND is_deleted = ?", tr.ID, false).Order("order_index asc").Find(&slides)

	var questions []training.TrainingQuestion
	database.Database.Db.Where("training_id = ? AND is_deleted = ?", tr.ID, false).Order("order_index asc").Preload("Options", "is_deleted = ?", false).Find(&questions)

	// Workers never see which option is correct
	type optionView struct {
		ID   uint   `json:"id"`
		Text string `json:"text"`
	}
	type questionView struct {
		ID      uint         `json:"id"`
		Text    string       `json:"text"`
		Options []optionView `json:"options"`
	}

	questionViews := make([]questionView, len(questions))
	for i, q := range questions {
		qv := questionView{ID: q.ID, Text: q.Text}
		for _, o := range q.Options {
			qv.Options = append(qv.Options, optionView{ID: o.ID, Text: o.Text})
		}
		questionViews[i] = qv
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training fetched successfully.", fiber.Map{
		"training":   tr,
		"slides":     slides,
		"questions":  questionViews,
		"enrollment": enrollment,
		"state":      lifecycle.EnrollmentState(&enrollment),
	})
}

// TrackProgress records that the worker viewed a slide. Progress is
// monotonic: tracking an earlier slide never decreases it.
func TrackProgress(c *fiber.Ctx) error {
	worker, ok := c.Locals("worker").(*models.Worker)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	trainingID := c.Locals("trainingID").(int)

	reqData, ok := c.Locals("validatedTrack").(*struct {
		SlideIndex *int `json:"slide_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	slideIndex := *reqData.SlideIndex

	var enrollment training.Enrollment
	if err := database.Database.Db.Where("worker_id = ? AND training_id = ? AND is_deleted = ?", worker.ID, trainingID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this training!", nil)
	}

	var totalSlides int64
	database.Database.Db.Model(&training.TrainingSlide{}).Where("training_id = ? AND is_deleted = ?", trainingID, false).Count(&totalSlides)

	if int64(slideIndex) >= totalSlides {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Slide index out of range!", nil)
	}

	// Union the viewed-slides set
	viewed := []int{}
	if len(enrollment.ViewedSlides) > 0 {
		if err := json.Unmarshal(enrollment.ViewedSlides, &viewed); err != nil {
			log.Printf("Error decoding viewed slides for enrollment %d: %v", enrollment.ID, err)
			viewed = []int{}
		}
	}
	seen := false
	for _, v := range viewed {
		if v == slideIndex {
			seen = true
			break
		}
	}
	if !seen {
		viewed = append(viewed, slideIndex)
	}
	viewedJSON, _ := json.Marshal(viewed)
	enrollment.ViewedSlides = datatypes.JSON(viewedJSON)

	// Monotonic: never move the slide cursor or progress backwards
	if slideIndex > enrollment.CurrentSlide {
		enrollment.CurrentSlide = slideIndex
	}
	if !enrollment.IsPassed {
		progress := lifecycle.SlideProgress(enrollment.CurrentSlide, int(totalSlides))
		if progress > enrollment.Progress {
			enrollment.Progress = progress
		}
	}

	if err := database.Database.Db.Save(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to track progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress tracked.", fiber.Map{
		"enrollment": enrollment,
		"state":      lifecycle.EnrollmentState(&enrollment),
	})
}

// SubmitQuiz grades the worker's answers. Attempts increment on every
// submission; a pass finishes the enrollment and issues the certificate.
func SubmitQuiz(c *fiber.Ctx) error {
	worker, ok := c.Locals("worker").(*models.Worker)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	trainingID := c.Locals("trainingID").(int)

	reqData, ok := c.Locals("validatedQuiz").(*struct {
		Answers map[uint]uint `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var enrollment training.Enrollment
	if err := db.Where("worker_id = ? AND training_id = ? AND is_deleted = ?", worker.ID, trainingID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this training!", nil)
	}

	// A recorded pass is final until the enrollment is reset or re-enrolled;
	// without this a failing resubmission would contradict the certificate.
	if enrollment.IsPassed {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Training already completed!", nil)
	}

	var tr training.Training
	if err := db.Where("id = ? AND is_active = ? AND is_deleted = ?", trainingID, true, false).First(&tr).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found or not active!", nil)
	}

	var questions []training.TrainingQuestion
	db.Where("training_id = ? AND is_deleted = ?", tr.ID, false).Preload("Options", "is_deleted = ?", false).Find(&questions)

	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This training has no quiz!", nil)
	}

	result := lifecycle.ScoreQuiz(questions, reqData.Answers, tr.PassingScore)

	enrollment.Attempts++
	enrollment.Score = result.Score
	enrollment.IsPassed = result.Passed
	if result.Passed {
		enrollment.Progress = 100
		now := time.Now()
		enrollment.CompletedAt = &now
	}

	if err := db.Save(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	var cert *training.Certificate
	if result.Passed {
		var err error
		cert, err = issueCertificate(db, &enrollment, &tr)
		if err != nil {
			log.Printf("Error issuing certificate for enrollment %d: %v", enrollment.ID, err)
		}
	}

	response := fiber.Map{
		"score":         result.Score,
		"correct_count": result.CorrectCount,
		"total_count":   result.TotalCount,
		"passed":        result.Passed,
		"attempts":      enrollment.Attempts,
		"state":         lifecycle.EnrollmentState(&enrollment),
	}
	if cert != nil {
		response["certificate"] = cert
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted.", response)
}

// CompleteWithoutQuiz finishes a training that has no questions.
func CompleteWithoutQuiz(c *fiber.Ctx) error {
	worker, ok := c.Locals("worker").(*models.Worker)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	trainingID := c.Locals("trainingID").(int)

	db := database.Database.Db

	var enrollment training.Enrollment
	if err := db.Where("worker_id = ? AND training_id = ? AND is_deleted = ?", worker.ID, trainingID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this training!", nil)
	}

	var tr training.Training
	if err := db.Where("id = ? AND is_active = ? AND is_deleted = ?", trainingID, true, false).First(&tr).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found or not active!", nil)
	}

	var questionCount int64
	db.Model(&training.TrainingQuestion{}).Where("training_id = ? AND is_deleted = ?", tr.ID, false).Count(&questionCount)

	if questionCount > 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This training has a quiz; submit it to complete!", nil)
	}

	now := time.Now()
	enrollment.IsPassed = true
	enrollment.Score = 100
	enrollment.Progress = 100
	enrollment.CompletedAt = &now

	if err := db.Save(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete training!", nil)
	}

	cert, err := issueCertificate(db, &enrollment, &tr)
	if err != nil {
		log.Printf("Error issuing certificate for enrollment %d: %v", enrollment.ID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training completed.", fiber.Map{
		"enrollment":  enrollment,
		"state":       lifecycle.EnrollmentState(&enrollment),
		"certificate": cert,
	})
}

// ReEnroll restarts an expired training: allowed only once the pair's
// unrevoked certificate has expired. Resets the enrollment and revokes
// the certificate.
func ReEnroll(c *fiber.Ctx) error {
	worker, ok := c.Locals("worker").(*models.Worker)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	trainingID := c.Locals("trainingID").(int)

	db := database.Database.Db

	var enrollment training.Enrollment
	if err := db.Where("worker_id = ? AND training_id = ? AND is_deleted = ?", worker.ID, trainingID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this training!", nil)
	}

	var cert training.Certificate
	if err := db.Where("worker_id = ? AND training_id = ? AND is_revoked = ? AND is_deleted = ?", worker.ID, trainingID, false, false).First(&cert).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No certificate to renew!", nil)
	}

	if !lifecycle.CanReEnroll(&cert, time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Your certificate is still valid!", nil)
	}

	if err := resetEnrollment(db, &enrollment); err != nil {
		log.Printf("Error resetting enrollment %d: %v", enrollment.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to re-enroll!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Re-enrolled successfully.", fiber.Map{
		"enrollment": enrollment,
		"state":      lifecycle.EnrollmentState(&enrollment),
	})
}
