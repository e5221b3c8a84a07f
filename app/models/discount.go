package models

import "time"

// Discount is a per-student concession on one fee type for one session.
// Keyed by (student, fee type, session); re-importing updates the value
// instead of duplicating.
type Discount struct {
	ID            string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID     string       `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	FeeTypeID     string       `json:"fee_type_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SessionID     string       `json:"session_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	DiscountType  DiscountType `json:"discount_type" gorm:"not null;type:varchar(20)" validate:"required"`
	DiscountValue float64      `json:"discount_value" gorm:"not null;type:numeric"`
	Remarks       *string      `json:"remarks,omitempty" gorm:"type:text"`
	CreatedAt     time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}
