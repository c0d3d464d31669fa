package trainingController

import (
	"log"
	"time"
	"wst/database"
	"wst/lifecycle"
	"wst/middleware"
	"wst/models/training"
	trainingValidator "wst/validators/training"

	"github.com/gofiber/fiber/v2"
)

// AdminListTrainings returns all trainings; soft-deleted ones are included
// when include_deleted is set.
func AdminListTrainings(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&training.Training{})
	if c.Query("include_deleted") != "true" {
		db = db.Where("is_deleted = ?", false)
	}

	var trainings []training.Training
	if err := db.Order("created_at desc").Find(&trainings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch trainings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainings fetched successfully.", trainings)
}

// AdminGetTraining returns one training with slides and questions.
func AdminGetTraining(c *fiber.Ctx) error {
	trainingID := c.Locals("trainingID").(int)

	var tr training.Training
	if err := database.Database.Db.Where("id = ?", trainingID).First(&tr).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found!", nil)
	}

	var slides []training.TrainingSlide
	database.Database.Db.Where("training_id = ? AND is_deleted = ?", tr.ID, false).Order("order_index asc").Find(&slides)

	var questions []training.TrainingQuestion
	database.Database.Db.Where("training_id = ? AND is_deleted = ?", tr.ID, false).Order("order_index asc").Preload("Options", "is_deleted = ?", false).Find(&questions)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training fetched successfully.", fiber.Map{
		"training":  tr,
		"slides":    slides,
		"questions": questions,
	})
}

// AdminCreateTraining creates a training with its slides and questions in
// one request. Super-admin only (training authoring capability).
func AdminCreateTraining(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTrainingCreate").(*trainingValidator.TrainingPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	tr := training.Training{
		Title:          reqData.Title,
		Description:    reqData.Description,
		PassingScore:   reqData.PassingScore,
		ValidityPeriod: reqData.ValidityPeriod,
		IsMandatory:    reqData.IsMandatory,
		IsActive:       true,
	}

	tx := database.Database.Db.Begin()

	if err := tx.Create(&tr).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving training: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create training!", nil)
	}

	for i, s := range reqData.Slides {
		slide := training.TrainingSlide{
			TrainingID: tr.ID,
			Title:      s.Title,
			Content:    s.Content,
			FileURL:    s.FileURL,
			OrderIndex: i,
		}
		if err := tx.Create(&slide).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create training!", nil)
		}
	}

	for i, q := range reqData.Questions {
		question := training.TrainingQuestion{
			TrainingID: tr.ID,
			Text:       q.Text,
			OrderIndex: i,
		}
		if err := tx.Create(&question).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create training!", nil)
		}
		for j, o := range q.Options {
			option := training.QuestionOption{
				QuestionID: question.ID,
				Text:       o.Text,
				IsCorrect:  o.IsCorrect,
				OrderIndex: j,
			}
			if err := tx.Create(&option).Error; err != nil {
				tx.Rollback()
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create training!", nil)
			}
		}
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Training created successfully.", tr)
}

// AdminUpdateTraining updates a training's top-level fields. Editing the
// validity period recomputes the expiry of every unrevoked certificate of
// this training from that certificate's own issue date, including ones
// already expired.
func AdminUpdateTraining(c *fiber.Ctx) error {
	trainingID := c.Locals("trainingID").(int)

	reqData, ok := c.Locals("validatedTrainingUpdate").(*struct {
		Title          *string `json:"title"`
		Description    *string `json:"description"`
		PassingScore   *int    `json:"passing_score"`
		ValidityPeriod *int    `json:"validity_period"`
		IsMandatory    *bool   `json:"is_mandatory"`
		IsActive       *bool   `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var tr training.Training
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", trainingID, false).First(&tr).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found!", nil)
	}

	validityChanged := reqData.ValidityPeriod != nil && *reqData.ValidityPeriod != tr.ValidityPeriod

	if reqData.Title != nil {
		tr.Title = *reqData.Title
	}
	if reqData.Description != nil {
		tr.Description = *reqData.Description
	}
	if reqData.PassingScore != nil {
		tr.PassingScore = *reqData.PassingScore
	}
	if reqData.ValidityPeriod != nil {
		tr.ValidityPeriod = *reqData.ValidityPeriod
	}
	if reqData.IsMandatory != nil {
		tr.IsMandatory = *reqData.IsMandatory
	}
	if reqData.IsActive != nil {
		tr.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&tr).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update training!", nil)
	}

	recomputed := 0
	if validityChanged {
		var certs []training.Certificate
		database.Database.Db.Where("training_id = ? AND is_revoked = ? AND is_deleted = ?", tr.ID, false, false).Find(&certs)

		for i := range certs {
			certs[i].ExpiresAt = lifecycle.ComputeExpiry(certs[i].IssuedAt, tr.ValidityPeriod)
			if err := database.Database.Db.Model(&certs[i]).Update("expires_at", certs[i].ExpiresAt).Error; err != nil {
				log.Printf("Error recomputing expiry for certificate %s: %v", certs[i].CertificateNumber, err)
				continue
			}
			recomputed++
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training updated successfully.", fiber.Map{
		"training":                tr,
		"certificates_recomputed": recomputed,
	})
}

// AdminDeleteTraining soft-deletes a training so it can be restored later.
func AdminDeleteTraining(c *fiber.Ctx) error {
	trainingID := c.Locals("trainingID").(int)

	var tr training.Training
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", trainingID, false).First(&tr).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found!", nil)
	}

	now := time.Now()
	tr.IsDeleted = true
	tr.IsActive = false
	tr.DeletedDate = &now

	if err := database.Database.Db.Save(&tr).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete training!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training deleted successfully.", nil)
}

// AdminRestoreTraining restores a soft-deleted training.
func AdminRestoreTraining(c *fiber.Ctx) error {
	trainingID := c.Locals("trainingID").(int)

	var tr training.Training
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", trainingID, true).First(&tr).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Deleted training not found!", nil)
	}

	tr.IsDeleted = false
	tr.DeletedDate = nil

	if err := database.Database.Db.Save(&tr).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to restore training!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training restored successfully.", tr)
}

// AdminPurgeTraining permanently removes a soft-deleted training together
// with its slides, questions and options. Enrollments and certificates are
// kept as historical records.
func AdminPurgeTraining(c *fiber.Ctx) error {
	trainingID := c.Locals("trainingID").(int)

	var tr training.Training
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", trainingID, true).First(&tr).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Deleted training not found!", nil)
	}

	tx := database.Database.Db.Begin()

	var questions []training.TrainingQuestion
	tx.Where("training_id = ?", tr.ID).Find(&questions)
	for _, q := range questions {
		if err := tx.Unscoped().Where("question_id = ?", q.ID).Delete(&training.QuestionOption{}).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete training!", nil)
		}
	}
	if err := tx.Unscoped().Where("training_id = ?", tr.ID).Delete(&training.TrainingQuestion{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete training!", nil)
	}
	if err := tx.Unscoped().Where("training_id = ?", tr.ID).Delete(&training.TrainingSlide{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete training!", nil)
	}
	if err := tx.Unscoped().Delete(&tr).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete training!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training permanently deleted.", nil)
}
