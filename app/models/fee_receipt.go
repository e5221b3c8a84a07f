package models

import "time"

// FeeReceipt represents one payment receipt. A receipt may carry several
// line items (one per fee type); TotalAmount is the sum of the line item
// net amounts. ReceiptNo is the natural key.
type FeeReceipt struct {
	ID          string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ReceiptNo   string      `json:"receipt_no" gorm:"uniqueIndex;not null" validate:"required"`
	StudentID   string      `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SessionID   string      `json:"session_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ReceiptDate time.Time   `json:"receipt_date" gorm:"not null;index;type:date" validate:"required"`
	PaymentMode PaymentMode `json:"payment_mode" gorm:"not null;type:varchar(20)" validate:"required"`
	TotalAmount float64     `json:"total_amount" gorm:"not null;type:numeric" validate:"required"`
	Remarks     *string     `json:"remarks,omitempty" gorm:"type:text"`
	CreatedAt   time.Time   `json:"created_at" gorm:"autoCreateTime"`

	Items []*FeeReceiptItem `json:"items,omitempty" gorm:"foreignKey:ReceiptID;references:ID"`
}

// FeeReceiptItem is one fee-type line on a receipt.
type FeeReceiptItem struct {
	ID        string  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ReceiptID string  `json:"receipt_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	FeeTypeID string  `json:"fee_type_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Amount    float64 `json:"amount" gorm:"not null;type:numeric"`
	Discount  float64 `json:"discount" gorm:"type:numeric;default:0"`
	NetAmount float64 `json:"net_amount" gorm:"not null;type:numeric"`
}
