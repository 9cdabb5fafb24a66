package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventPopularityRow struct {
	EventID           uuid.UUID
	Title             string
	EventType         string
	CollegeName       string
	RegistrationCount int
	AttendanceCount   int
	AvgRating         *float64
}

type StudentParticipationRow struct {
	StudentID        uuid.UUID
	Name             string
	Email            string
	StudentNumber    string
	CollegeName      string
	EventsRegistered int
	EventsAttended   int
	AvgRatingGiven   *float64
}

type CollegePerformanceRow struct {
	CollegeID          uuid.UUID
	Name               string
	Code               string
	TotalEvents        int
	TotalStudents      int
	TotalRegistrations int
	TotalAttendance    int
	AvgRating          *float64
}

type SystemOverviewRow struct {
	TotalColleges      int
	TotalEvents        int
	ActiveEvents       int
	UpcomingEvents     int
	TotalStudents      int
	TotalRegistrations int
	TotalAttendance    int
	TotalFeedback      int
	AvgRating          *float64
}

type EventTypeRow struct {
	EventType          string
	TotalEvents        int
	TotalRegistrations int
	TotalAttendance    int
	AvgRating          *float64
}

type ActiveStudentRow struct {
	StudentID      uuid.UUID
	Name           string
	Email          string
	CollegeName    string
	EventsAttended int
	AvgRatingGiven *float64
}

type FilteredEventRow struct {
	EventID       uuid.UUID
	EventName     string
	EventType     string
	CollegeName   string
	StartDatetime time.Time
	MaxCapacity   *int
	Registrations int
	Attendance    int
	AvgRating     *float64
}

// ReportDAO runs read-only aggregation queries. Each report runs in its own
// read-only transaction at READ COMMITTED.
type ReportDAO struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewReportDAO(db *gorm.DB, timeout time.Duration) *ReportDAO {
	return &ReportDAO{
		db:      db,
		timeout: timeout,
	}
}

func (d *ReportDAO) read(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Raw(query, args...).Scan(dest).Error
	}, &sql.TxOptions{Isolation: sql.LevelReadCommitted, ReadOnly: true})

	return classify(err)
}

func (d *ReportDAO) EventPopularity(ctx context.Context) ([]EventPopularityRow, error) {
	var rows []EventPopularityRow
	err := d.read(ctx, &rows, `
		SELECT e.event_id, e.title, e.event_type, c.name AS college_name,
			COUNT(DISTINCT CASE WHEN r.status = 'registered' THEN r.registration_id END) AS registration_count,
			COUNT(DISTINCT a.attendance_id) AS attendance_count,
			ROUND(AVG(a.feedback_rating), 2)::float8 AS avg_rating
		FROM events e
		JOIN colleges c ON e.college_id = c.college_id
		LEFT JOIN registrations r ON e.event_id = r.event_id
		LEFT JOIN attendance a ON r.registration_id = a.registration_id
		WHERE e.status = 'active'
		GROUP BY e.event_id, c.name
		ORDER BY registration_count DESC, e.start_datetime ASC`)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (d *ReportDAO) StudentParticipation(ctx context.Context) ([]StudentParticipationRow, error) {
	var rows []StudentParticipationRow
	err := d.read(ctx, &rows, `
		SELECT s.student_id, s.name, s.email, s.student_number, c.name AS college_name,
			COUNT(DISTINCT CASE WHEN r.status = 'registered' THEN r.registration_id END) AS events_registered,
			COUNT(DISTINCT a.attendance_id) AS events_attended,
			ROUND(AVG(a.feedback_rating), 2)::float8 AS avg_rating_given
		FROM students s
		JOIN colleges c ON s.college_id = c.college_id
		LEFT JOIN registrations r ON s.student_id = r.student_id
		LEFT JOIN attendance a ON r.registration_id = a.registration_id
		WHERE s.is_active = TRUE
		GROUP BY s.student_id, c.name
		ORDER BY events_attended DESC, events_registered DESC, s.name ASC`)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (d *ReportDAO) CollegePerformance(ctx context.Context) ([]CollegePerformanceRow, error) {
	var rows []CollegePerformanceRow
	err := d.read(ctx, &rows, `
		SELECT c.college_id, c.name, c.code,
			COUNT(DISTINCT e.event_id) AS total_events,
			COUNT(DISTINCT s.student_id) AS total_students,
			COUNT(DISTINCT CASE WHEN r.status = 'registered' THEN r.registration_id END) AS total_registrations,
			COUNT(DISTINCT a.attendance_id) AS total_attendance,
			ROUND(AVG(a.feedback_rating), 2)::float8 AS avg_rating
		FROM colleges c
		LEFT JOIN events e ON c.college_id = e.college_id AND e.status = 'active'
		LEFT JOIN students s ON c.college_id = s.college_id AND s.is_active = TRUE
		LEFT JOIN registrations r ON e.event_id = r.event_id
		LEFT JOIN attendance a ON r.registration_id = a.registration_id
		GROUP BY c.college_id
		ORDER BY avg_rating DESC NULLS LAST, c.name ASC`)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (d *ReportDAO) SystemOverview(ctx context.Context, now time.Time) (SystemOverviewRow, error) {
	var row SystemOverviewRow
	err := d.read(ctx, &row, `
		SELECT
			(SELECT COUNT(*) FROM colleges) AS total_colleges,
			(SELECT COUNT(*) FROM events) AS total_events,
			(SELECT COUNT(*) FROM events WHERE status = 'active') AS active_events,
			(SELECT COUNT(*) FROM events WHERE status = 'active' AND start_datetime > ?) AS upcoming_events,
			(SELECT COUNT(*) FROM students WHERE is_active = TRUE) AS total_students,
			(SELECT COUNT(*) FROM registrations WHERE status = 'registered') AS total_registrations,
			(SELECT COUNT(*) FROM attendance) AS total_attendance,
			(SELECT COUNT(*) FROM attendance WHERE feedback_rating IS NOT NULL) AS total_feedback,
			(SELECT ROUND(AVG(feedback_rating), 2)::float8 FROM attendance) AS avg_rating`, now)
	if err != nil {
		return SystemOverviewRow{}, err
	}

	return row, nil
}

func (d *ReportDAO) EventTypeAnalytics(ctx context.Context) ([]EventTypeRow, error) {
	var rows []EventTypeRow
	err := d.read(ctx, &rows, `
		SELECT e.event_type,
			COUNT(DISTINCT e.event_id) AS total_events,
			COUNT(DISTINCT CASE WHEN r.status = 'registered' THEN r.registration_id END) AS total_registrations,
			COUNT(DISTINCT a.attendance_id) AS total_attendance,
			ROUND(AVG(a.feedback_rating), 2)::float8 AS avg_rating
		FROM events e
		LEFT JOIN registrations r ON e.event_id = r.event_id
		LEFT JOIN attendance a ON r.registration_id = a.registration_id
		WHERE e.status = 'active'
		GROUP BY e.event_type
		ORDER BY avg_rating DESC NULLS LAST, e.event_type ASC`)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (d *ReportDAO) TopActiveStudents(ctx context.Context, limit int) ([]ActiveStudentRow, error) {
	var rows []ActiveStudentRow
	err := d.read(ctx, &rows, `
		SELECT s.student_id, s.name, s.email, c.name AS college_name,
			COUNT(DISTINCT a.attendance_id) AS events_attended,
			ROUND(AVG(a.feedback_rating), 2)::float8 AS avg_rating_given
		FROM students s
		JOIN colleges c ON s.college_id = c.college_id
		JOIN registrations r ON s.student_id = r.student_id
		JOIN attendance a ON r.registration_id = a.registration_id
		WHERE s.is_active = TRUE
		GROUP BY s.student_id, c.name
		ORDER BY events_attended DESC, avg_rating_given DESC NULLS LAST, s.name ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// FilteredEvents reports on active events, optionally narrowed to one college and one
// event type. filter.Status is ignored.
func (d *ReportDAO) FilteredEvents(ctx context.Context, filter EventFilter) ([]FilteredEventRow, error) {
	query := `
		SELECT e.event_id, e.title AS event_name, e.event_type, c.name AS college_name,
			e.start_datetime, e.max_capacity,
			COUNT(DISTINCT CASE WHEN r.status = 'registered' THEN r.registration_id END) AS registrations,
			COUNT(DISTINCT a.attendance_id) AS attendance,
			ROUND(AVG(a.feedback_rating), 2)::float8 AS avg_rating
		FROM events e
		JOIN colleges c ON e.college_id = c.college_id
		LEFT JOIN registrations r ON e.event_id = r.event_id
		LEFT JOIN attendance a ON r.registration_id = a.registration_id
		WHERE e.status = 'active'`
	var args []interface{}
	if filter.CollegeID != nil {
		query += ` AND e.college_id = ?`
		args = append(args, *filter.CollegeID)
	}
	if filter.EventType != "" {
		query += ` AND e.event_type = ?`
		args = append(args, filter.EventType)
	}
	query += `
		GROUP BY e.event_id, c.name
		ORDER BY e.start_datetime DESC`

	var rows []FilteredEventRow
	if err := d.read(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	return rows, nil
}
