package training

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Enrollment tracks one worker's attempt at one training. The pair is
// unique; re-enrollment after certificate expiry resets this record in
// place instead of creating a second row.
type Enrollment struct {
	gorm.Model
	WorkerID     uint           `json:"worker_id" gorm:"uniqueIndex:idx_worker_training;not null"`
	TrainingID   uint           `json:"training_id" gorm:"uniqueIndex:idx_worker_training;not null"`
	Progress     int            `json:"progress" gorm:"default:0"` // 0-100
	CurrentSlide int            `json:"current_slide" gorm:"default:0"`
	ViewedSlides datatypes.JSON `json:"viewed_slides"` // JSON array of slide indexes
	IsPassed     bool           `json:"is_passed" gorm:"default:false"`
	Score        int            `json:"score" gorm:"default:0"`
	Attempts     int            `json:"attempts" gorm:"default:0"`
	CompletedAt  *time.Time     `json:"completed_at"`
	IsDeleted    bool           `json:"-" gorm:"default:false"`
}
