package models

import "time"

// AcademicSession represents an academic session (e.g. "2024-25").
// Exactly one session is flagged current at a time; it is the default
// assignment for imported students and bills.
type AcademicSession struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name      string     `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	StartDate time.Time  `json:"start_date" gorm:"not null;type:date"`
	EndDate   time.Time  `json:"end_date" gorm:"not null;type:date"`
	IsCurrent bool       `json:"is_current" gorm:"default:false;index"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// IsCurrentByDate checks if the session is current based on today's date.
func (s *AcademicSession) IsCurrentByDate() bool {
	now := time.Now()
	return now.After(s.StartDate) && now.Before(s.EndDate)
}
