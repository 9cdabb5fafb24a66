package domain

import (
	"time"

	"github.com/google/uuid"
)

type College struct {
	ID           uuid.UUID `json:"college_id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CollegeSummary struct {
	College
	TotalEvents    int `json:"total_events"`
	TotalStudents  int `json:"total_students"`
	UpcomingEvents int `json:"upcoming_events"`
}
