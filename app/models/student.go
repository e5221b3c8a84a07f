package models

import "time"

// Student represents an enrolled student. StudentID is the natural key
// (globally unique admission number); ID is the surrogate key. Roll
// number is unique within (session, class, section) when present.
type Student struct {
	ID            string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID     string        `json:"student_id" gorm:"uniqueIndex;not null" validate:"required"`
	Name          string        `json:"name" gorm:"not null" validate:"required"`
	FatherName    *string       `json:"father_name,omitempty"`
	MotherName    *string       `json:"mother_name,omitempty"`
	DateOfBirth   *time.Time    `json:"date_of_birth,omitempty" gorm:"type:date"`
	Gender        *Gender       `json:"gender,omitempty" gorm:"type:varchar(10)"`
	ClassName     string        `json:"class_name" gorm:"not null;index" validate:"required"`
	Section       string        `json:"section" gorm:"not null" validate:"required"`
	RollNumber    *int          `json:"roll_number,omitempty"`
	AdmissionDate *time.Time    `json:"admission_date,omitempty" gorm:"type:date"`
	Address       *string       `json:"address,omitempty" gorm:"type:text"`
	Phone         *string       `json:"phone,omitempty" gorm:"type:varchar(20)"`
	Status        StudentStatus `json:"status" gorm:"not null;default:'active';type:varchar(20)"`
	SessionID     string        `json:"session_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`

	// Optional identity and guardian details
	AadharNumber     *string `json:"aadhar_number,omitempty" gorm:"uniqueIndex"`
	Email            *string `json:"email,omitempty"`
	BloodGroup       *string `json:"blood_group,omitempty" gorm:"type:varchar(5)"`
	Category         *string `json:"category,omitempty"`
	Religion         *string `json:"religion,omitempty"`
	Nationality      *string `json:"nationality,omitempty"`
	PreviousSchool   *string `json:"previous_school,omitempty"`
	FatherPhone      *string `json:"father_phone,omitempty" gorm:"type:varchar(20)"`
	FatherOccupation *string `json:"father_occupation,omitempty"`
	MotherPhone      *string `json:"mother_phone,omitempty" gorm:"type:varchar(20)"`
	MotherOccupation *string `json:"mother_occupation,omitempty"`
	GuardianName     *string `json:"guardian_name,omitempty"`
	GuardianPhone    *string `json:"guardian_phone,omitempty" gorm:"type:varchar(20)"`
	GuardianRelation *string `json:"guardian_relation,omitempty"`

	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Session *AcademicSession `json:"session,omitempty" gorm:"foreignKey:SessionID;references:ID"`
}
