package poll

import "gorm.io/gorm"

// Poll is a single-question survey. CompanyID nil means global.
type Poll struct {
	gorm.Model
	Question  string       `json:"question" gorm:"not null"`
	CompanyID *uint        `json:"company_id" gorm:"index"`
	IsActive  bool         `json:"is_active" gorm:"default:true"`
	Options   []PollOption `json:"options" gorm:"foreignKey:PollID"`
	CreatedBy uint         `json:"created_by"`
	IsDeleted bool         `json:"-" gorm:"default:false"`
}

// PollOption is one answer choice of a poll.
type PollOption struct {
	gorm.Model
	PollID     uint   `json:"poll_id" gorm:"index;not null"`
	Text       string `json:"text" gorm:"not null"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}

// PollResponse records one worker's vote; one response per worker per poll.
type PollResponse struct {
	gorm.Model
	PollID    uint `json:"poll_id" gorm:"uniqueIndex:idx_poll_worker;not null"`
	WorkerID  uint `json:"worker_id" gorm:"uniqueIndex:idx_poll_worker;not null"`
	OptionID  uint `json:"option_id" gorm:"index;not null"`
	IsDeleted bool `json:"-" gorm:"default:false"`
}
