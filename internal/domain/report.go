package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	LevelHighlyActive     = "highly_active"
	LevelActive           = "active"
	LevelModeratelyActive = "moderately_active"
	LevelInactive         = "inactive"
)

// ParticipationLevel buckets a student by how many events they attended.
func ParticipationLevel(attended int) string {
	switch {
	case attended >= 5:
		return LevelHighlyActive
	case attended >= 3:
		return LevelActive
	case attended >= 1:
		return LevelModeratelyActive
	default:
		return LevelInactive
	}
}

func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Percentage returns part/total*100 rounded to 2 decimals, 0 when total is 0.
func Percentage(part, total int) float64 {
	if total <= 0 {
		return 0
	}

	return RoundTo2(float64(part) * 100 / float64(total))
}

type EventPopularity struct {
	EventID              uuid.UUID `json:"event_id"`
	Title                string    `json:"title"`
	Type                 EventType `json:"event_type"`
	CollegeName          string    `json:"college_name"`
	RegistrationCount    int       `json:"registration_count"`
	AttendanceCount      int       `json:"attendance_count"`
	AvgRating            *float64  `json:"avg_rating"`
	AttendancePercentage float64   `json:"attendance_percentage"`
}

type StudentParticipation struct {
	StudentID          uuid.UUID `json:"student_id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	StudentNumber      string    `json:"student_number"`
	CollegeName        string    `json:"college_name"`
	EventsRegistered   int       `json:"events_registered"`
	EventsAttended     int       `json:"events_attended"`
	AvgRatingGiven     *float64  `json:"avg_rating_given"`
	AttendanceRate     float64   `json:"attendance_rate"`
	ParticipationLevel string    `json:"participation_level"`
}

type CollegePerformance struct {
	CollegeID            uuid.UUID `json:"college_id"`
	Name                 string    `json:"name"`
	Code                 string    `json:"code"`
	TotalEvents          int       `json:"total_events"`
	TotalStudents        int       `json:"total_students"`
	TotalRegistrations   int       `json:"total_registrations"`
	TotalAttendance      int       `json:"total_attendance"`
	AvgRating            *float64  `json:"avg_rating"`
	AttendancePercentage float64   `json:"attendance_percentage"`
}

type SystemOverview struct {
	TotalColleges      int      `json:"total_colleges"`
	TotalEvents        int      `json:"total_events"`
	ActiveEvents       int      `json:"active_events"`
	UpcomingEvents     int      `json:"upcoming_events"`
	TotalStudents      int      `json:"total_students"`
	TotalRegistrations int      `json:"total_registrations"`
	TotalAttendance    int      `json:"total_attendance"`
	TotalFeedback      int      `json:"total_feedback"`
	AvgRating          *float64 `json:"avg_rating"`
	AttendanceRate     float64  `json:"attendance_rate"`
}

type EventTypeAnalytics struct {
	Type                  EventType `json:"event_type"`
	TotalEvents           int       `json:"total_events"`
	TotalRegistrations    int       `json:"total_registrations"`
	TotalAttendance       int       `json:"total_attendance"`
	AvgRating             *float64  `json:"avg_rating"`
	AvgRegistrationsEvent float64   `json:"avg_registrations_per_event"`
	AttendancePercentage  float64   `json:"attendance_percentage"`
}

type ActiveStudent struct {
	StudentID      uuid.UUID `json:"student_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	CollegeName    string    `json:"college_name"`
	EventsAttended int       `json:"events_attended"`
	AvgRatingGiven *float64  `json:"avg_rating_given"`
}

// FilteredEventReport is one active event in the filtered report. Only the events
// report type exists.
type FilteredEventReport struct {
	EventID              uuid.UUID `json:"event_id"`
	EventName            string    `json:"event_name"`
	Type                 EventType `json:"event_type"`
	CollegeName          string    `json:"college_name"`
	StartAt              time.Time `json:"start_datetime"`
	MaxCapacity          *int      `json:"max_capacity"`
	Registrations        int       `json:"registrations"`
	Attendance           int       `json:"attendance"`
	AttendancePercentage float64   `json:"attendance_percentage"`
	AvgRating            *float64  `json:"avg_rating"`
}

const ReportTypeEvents = "events"
