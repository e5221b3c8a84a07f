package models

import "time"

// AcademicHistory records which class/section a student belonged to in a
// given session. Keyed by (student, session); upserted on re-import.
type AcademicHistory struct {
	ID         string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID  string        `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SessionID  string        `json:"session_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ClassName  string        `json:"class_name" gorm:"not null" validate:"required"`
	Section    string        `json:"section" gorm:"not null" validate:"required"`
	RollNumber *int          `json:"roll_number,omitempty"`
	Status     StudentStatus `json:"status" gorm:"not null;default:'active';type:varchar(20)"`
	CreatedAt  time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}
