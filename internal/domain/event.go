package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTypeWorkshop  EventType = "workshop"
	EventTypeHackathon EventType = "hackathon"
	EventTypeTechTalk  EventType = "tech_talk"
	EventTypeFest      EventType = "fest"
)

var EventTypes = []EventType{EventTypeHackathon, EventTypeWorkshop, EventTypeTechTalk, EventTypeFest}

func (t EventType) IsValid() bool {
	for _, v := range EventTypes {
		if t == v {
			return true
		}
	}

	return false
}

type EventStatus string

const (
	EventStatusActive    EventStatus = "active"
	EventStatusCancelled EventStatus = "cancelled"
)

type Event struct {
	ID                   uuid.UUID   `json:"event_id"`
	CollegeID            uuid.UUID   `json:"college_id"`
	Title                string      `json:"title"`
	Description          string      `json:"description"`
	Type                 EventType   `json:"event_type"`
	StartAt              time.Time   `json:"start_datetime"`
	EndAt                time.Time   `json:"end_datetime"`
	Location             string      `json:"location,omitempty"`
	MaxCapacity          *int        `json:"max_capacity"`
	RegistrationDeadline *time.Time  `json:"registration_deadline"`
	Status               EventStatus `json:"status"`
	CreatedBy            string      `json:"created_by"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

// Phase reports whether the event is upcoming, ongoing or completed at now.
func (e Event) Phase(now time.Time) string {
	switch {
	case now.Before(e.StartAt):
		return "upcoming"
	case !now.After(e.EndAt):
		return "ongoing"
	default:
		return "completed"
	}
}

type EventFilter struct {
	CollegeID *uuid.UUID
	Type      EventType
	Status    EventStatus
}

type EventDetail struct {
	Event
	CollegeName          string   `json:"college_name"`
	CollegeCode          string   `json:"college_code"`
	RegistrationCount    int      `json:"registration_count"`
	AttendanceCount      int      `json:"attendance_count"`
	FeedbackCount        int      `json:"feedback_count"`
	AvgRating            *float64 `json:"avg_rating"`
	AttendancePercentage float64  `json:"attendance_percentage"`
}

type EventStats struct {
	EventID                uuid.UUID  `json:"event_id"`
	Title                  string     `json:"title"`
	Type                   EventType  `json:"event_type"`
	StartAt                time.Time  `json:"start_datetime"`
	EndAt                  time.Time  `json:"end_datetime"`
	MaxCapacity            *int       `json:"max_capacity"`
	Location               string     `json:"location,omitempty"`
	CollegeName            string     `json:"college_name"`
	CollegeCode            string     `json:"college_code"`
	TotalRegistrations     int        `json:"total_registrations"`
	CancelledRegistrations int        `json:"cancelled_registrations"`
	TotalAttendance        int        `json:"total_attendance"`
	FeedbackCount          int        `json:"feedback_count"`
	AvgRating              *float64   `json:"avg_rating"`
	RatingDistribution     [5]int     `json:"rating_distribution"`
	AttendancePercentage   float64    `json:"attendance_percentage"`
	CapacityUtilization    *float64   `json:"capacity_utilization"`
	FeedbackResponseRate   float64    `json:"feedback_response_rate"`
	Phase                  string     `json:"event_status"`
	GeneratedAt            time.Time  `json:"generated_at"`
	Deadline               *time.Time `json:"registration_deadline,omitempty"`
}

// Derive fills the percentages and phase from the raw counts.
func (s *EventStats) Derive(now time.Time) {
	s.AttendancePercentage = Percentage(s.TotalAttendance, s.TotalRegistrations)
	s.FeedbackResponseRate = Percentage(s.FeedbackCount, s.TotalAttendance)
	if s.MaxCapacity != nil && *s.MaxCapacity > 0 {
		u := Percentage(s.TotalRegistrations, *s.MaxCapacity)
		s.CapacityUtilization = &u
	}
	s.Phase = Event{StartAt: s.StartAt, EndAt: s.EndAt}.Phase(now)
	s.GeneratedAt = now
}
