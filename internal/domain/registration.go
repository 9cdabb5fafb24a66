package domain

import (
	"time"

	"github.com/google/uuid"
)

type RegistrationStatus string

const (
	RegistrationRegistered RegistrationStatus = "registered"
	RegistrationCancelled  RegistrationStatus = "cancelled"
)

const DefaultCancellationReason = "Cancelled by user"

type Registration struct {
	ID                 uuid.UUID          `json:"registration_id"`
	EventID            uuid.UUID          `json:"event_id"`
	StudentID          uuid.UUID          `json:"student_id"`
	Status             RegistrationStatus `json:"status"`
	RegisteredAt       time.Time          `json:"registered_at"`
	CancelledAt        *time.Time         `json:"cancelled_at,omitempty"`
	CancellationReason string             `json:"cancellation_reason,omitempty"`
}

// AdmissionSnapshot is the state of an event read under its row lock.
type AdmissionSnapshot struct {
	Event             Event
	RegisteredCount   int
	AlreadyRegistered bool
}

// AdmissionDecider accepts or rejects an admission given a snapshot. A nil result admits.
type AdmissionDecider func(snap AdmissionSnapshot) error

type RegistrationSearchResult struct {
	RegistrationID   uuid.UUID          `json:"registration_id"`
	EventID          uuid.UUID          `json:"event_id"`
	StudentID        uuid.UUID          `json:"student_id"`
	RegisteredAt     time.Time          `json:"registered_at"`
	Status           RegistrationStatus `json:"status"`
	StudentName      string             `json:"student_name"`
	StudentEmail     string             `json:"student_email"`
	StudentNumber    string             `json:"student_number"`
	EventName        string             `json:"event_name"`
	EventType        EventType          `json:"event_type"`
	StartAt          time.Time          `json:"start_datetime"`
	CollegeName      string             `json:"college_name"`
	AttendanceID     *uuid.UUID         `json:"attendance_id"`
	CheckedInAt      *time.Time         `json:"checked_in_at"`
	AttendanceStatus string             `json:"attendance_status"`
}
