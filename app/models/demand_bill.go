package models

import "time"

// DemandBill represents one outstanding fee charge raised against a
// student. BillNo is the natural key; duplicates are rejected outright.
type DemandBill struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	BillNo     string     `json:"bill_no" gorm:"uniqueIndex;not null" validate:"required"`
	StudentID  string     `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SessionID  string     `json:"session_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	FeeTypeID  string     `json:"fee_type_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	BillDate   time.Time  `json:"bill_date" gorm:"not null;type:date" validate:"required"`
	DueDate    *time.Time `json:"due_date,omitempty" gorm:"type:date"`
	Amount     float64    `json:"amount" gorm:"not null;type:numeric"`
	Discount   float64    `json:"discount" gorm:"type:numeric;default:0"`
	LateFee    float64    `json:"late_fee" gorm:"type:numeric;default:0"`
	NetAmount  float64    `json:"net_amount" gorm:"not null;type:numeric"`
	PaidAmount float64    `json:"paid_amount" gorm:"type:numeric;default:0"`
	Status     BillStatus `json:"status" gorm:"not null;default:'unpaid';index;type:varchar(20)"`
	Remarks    *string    `json:"remarks,omitempty" gorm:"type:text"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}
