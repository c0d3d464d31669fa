package training

import (
	"time"

	"gorm.io/gorm"
)

// Training is a slide deck plus an optional quiz. ValidityPeriod is the
// number of months an issued certificate remains valid; 0 means the
// certificate never expires.
type Training struct {
	gorm.Model
	Title          string     `json:"title" gorm:"not null"`
	Description    string     `json:"description"`
	PassingScore   int        `json:"passing_score" gorm:"default:70"`  // 0-100
	ValidityPeriod int        `json:"validity_period" gorm:"default:0"` // months, 0 = never expires
	IsMandatory    bool       `json:"is_mandatory" gorm:"default:false"`
	IsActive       bool       `json:"is_active" gorm:"default:true"`
	IsDeleted      bool       `json:"is_deleted" gorm:"default:false"`
	DeletedDate    *time.Time `json:"deleted_date"` // soft-delete timestamp, allows restore
}

// TrainingSlide is one page of a training's deck, ordered by OrderIndex.
type TrainingSlide struct {
	gorm.Model
	TrainingID uint   `json:"training_id" gorm:"index;not null"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	FileURL    string `json:"file_url"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}

// TrainingQuestion is a multiple choice quiz question. Exactly one of its
// options is expected to be marked correct; this is assumed, not enforced.
type TrainingQuestion struct {
	gorm.Model
	TrainingID uint             `json:"training_id" gorm:"index;not null"`
	Text       string           `json:"text" gorm:"not null"`
	OrderIndex int              `json:"order_index" gorm:"default:0"`
	Options    []QuestionOption `json:"options" gorm:"foreignKey:QuestionID"`
	IsDeleted  bool             `json:"-" gorm:"default:false"`
}

// QuestionOption is one answer choice of a question.
type QuestionOption struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	Text       string `json:"text" gorm:"not null"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}
