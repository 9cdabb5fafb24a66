package domain

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID            uuid.UUID `json:"student_id"`
	CollegeID     uuid.UUID `json:"college_id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	StudentNumber string    `json:"student_number"`
	Phone         string    `json:"phone,omitempty"`
	YearOfStudy   *int      `json:"year_of_study"`
	Department    string    `json:"department,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type StudentWithCollege struct {
	Student
	CollegeName        string `json:"college_name"`
	CollegeCode        string `json:"college_code"`
	TotalRegistrations int    `json:"total_registrations"`
	EventsAttended     int    `json:"events_attended"`
}

type StudentRegistration struct {
	RegistrationID   uuid.UUID          `json:"registration_id"`
	EventID          uuid.UUID          `json:"event_id"`
	RegisteredAt     time.Time          `json:"registered_at"`
	Status           RegistrationStatus `json:"status"`
	EventName        string             `json:"event_name"`
	EventType        EventType          `json:"event_type"`
	StartAt          time.Time          `json:"start_datetime"`
	EndAt            time.Time          `json:"end_datetime"`
	Location         string             `json:"location,omitempty"`
	CollegeName      string             `json:"college_name"`
	AttendanceID     *uuid.UUID         `json:"attendance_id"`
	CheckedInAt      *time.Time         `json:"checked_in_at"`
	FeedbackRating   *int               `json:"feedback_rating"`
	FeedbackComment  *string            `json:"feedback_comment"`
	AttendanceStatus string             `json:"attendance_status"`
}

type AvailableEvent struct {
	EventID              uuid.UUID  `json:"event_id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Type                 EventType  `json:"event_type"`
	StartAt              time.Time  `json:"start_datetime"`
	EndAt                time.Time  `json:"end_datetime"`
	Location             string     `json:"location,omitempty"`
	MaxCapacity          *int       `json:"max_capacity"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
	CollegeName          string     `json:"college_name"`
	CollegeCode          string     `json:"college_code"`
	CurrentRegistrations int        `json:"current_registrations"`
	StudentStatus        string     `json:"student_status"`
}

type PendingFeedback struct {
	AttendanceID   uuid.UUID `json:"attendance_id"`
	RegistrationID uuid.UUID `json:"registration_id"`
	EventID        uuid.UUID `json:"event_id"`
	EventName      string    `json:"event_name"`
	EventType      EventType `json:"event_type"`
	StartAt        time.Time `json:"start_datetime"`
	EndAt          time.Time `json:"end_datetime"`
	CollegeName    string    `json:"college_name"`
	CheckedInAt    time.Time `json:"checked_in_at"`
}
