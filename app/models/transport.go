package models

import "time"

// TransportRoute represents a bus route identified by a short code.
type TransportRoute struct {
	ID        string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Code      string       `json:"code" gorm:"uniqueIndex;not null" validate:"required"`
	Name      string       `json:"name" gorm:"not null" validate:"required"`
	IsActive  bool         `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
	Stops     []*RouteStop `json:"stops,omitempty" gorm:"foreignKey:RouteID;references:ID"`
}

// RouteStop represents a named stop on a transport route.
type RouteStop struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	RouteID   string    `json:"route_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	Fare      float64   `json:"fare" gorm:"type:numeric;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TransportAssignment links a student to a route/stop for a session.
type TransportAssignment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	RouteID   string    `json:"route_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StopID    *string   `json:"stop_id,omitempty" gorm:"index;type:uuid"`
	SessionID string    `json:"session_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
