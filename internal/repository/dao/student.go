package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	ID            uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey"`
	CollegeID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_students_college_number,priority:1"`
	Email         string    `gorm:"size:255;not null;uniqueIndex:uq_students_email"`
	Name          string    `gorm:"size:200;not null"`
	StudentNumber string    `gorm:"size:50;not null;uniqueIndex:uq_students_college_number,priority:2"`
	Phone         string    `gorm:"size:20"`
	YearOfStudy   *int      `gorm:"check:chk_students_year,year_of_study BETWEEN 1 AND 4"`
	Department    string    `gorm:"size:100"`
	IsActive      bool      `gorm:"not null;default:true;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type StudentWithCollege struct {
	Student
	CollegeName        string
	CollegeCode        string
	TotalRegistrations int
	EventsAttended     int
}

type StudentRegistration struct {
	RegistrationID   uuid.UUID
	EventID          uuid.UUID
	RegisteredAt     time.Time
	Status           string
	EventName        string
	EventType        string
	StartDatetime    time.Time
	EndDatetime      time.Time
	Location         string
	CollegeName      string
	AttendanceID     *uuid.UUID
	CheckedInAt      *time.Time
	FeedbackRating   *int
	FeedbackComment  *string
	AttendanceStatus string
}

type AvailableEvent struct {
	EventID              uuid.UUID
	Title                string
	Description          string
	EventType            string
	StartDatetime        time.Time
	EndDatetime          time.Time
	Location             string
	MaxCapacity          *int
	RegistrationDeadline *time.Time
	CollegeName          string
	CollegeCode          string
	CurrentRegistrations int
	StudentStatus        string
}

type PendingFeedback struct {
	AttendanceID   uuid.UUID
	RegistrationID uuid.UUID
	EventID        uuid.UUID
	EventName      string
	EventType      string
	StartDatetime  time.Time
	EndDatetime    time.Time
	CollegeName    string
	CheckedInAt    time.Time
}

type StudentDAO struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewStudentDAO(db *gorm.DB, timeout time.Duration) *StudentDAO {
	return &StudentDAO{
		db:      db,
		timeout: timeout,
	}
}

func (d *StudentDAO) Insert(ctx context.Context, student Student) (Student, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}
	student.IsActive = true

	result := d.db.WithContext(ctx).Create(&student)
	if result.Error != nil {
		return Student{}, classify(result.Error)
	}

	return student, nil
}

func (d *StudentDAO) FindByID(ctx context.Context, id uuid.UUID) (Student, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	var student Student
	result := d.db.WithContext(ctx).First(&student, "student_id = ?", id)
	if result.Error != nil {
		return Student{}, notFound(result.Error, ErrStudentNotFound)
	}

	return student, nil
}

const studentWithCollegeSelect = `
	SELECT s.*, c.name AS college_name, c.code AS college_code,
		COUNT(DISTINCT r.registration_id) AS total_registrations,
		COUNT(DISTINCT a.attendance_id) AS events_attended
	FROM students s
	JOIN colleges c ON s.college_id = c.college_id
	LEFT JOIN registrations r ON s.student_id = r.student_id AND r.status = 'registered'
	LEFT JOIN attendance a ON r.registration_id = a.registration_id
	WHERE s.is_active = TRUE`

// FindAll lists active students, optionally restricted to one college.
func (d *StudentDAO) FindAll(ctx context.Context, collegeID *uuid.UUID) ([]StudentWithCollege, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	query := studentWithCollegeSelect
	var args []interface{}
	if collegeID != nil {
		query += ` AND s.college_id = ?`
		args = append(args, *collegeID)
	}
	query += ` GROUP BY s.student_id, c.name, c.code ORDER BY c.name ASC, s.name ASC`

	var students []StudentWithCollege
	result := d.db.WithContext(ctx).Raw(query, args...).Scan(&students)
	if result.Error != nil {
		return nil, classify(result.Error)
	}

	return students, nil
}

func (d *StudentDAO) Search(ctx context.Context, term string, limit int) ([]StudentWithCollege, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	pattern := containsPattern(term)
	var students []StudentWithCollege
	result := d.db.WithContext(ctx).Raw(studentWithCollegeSelect+`
		AND (s.name ILIKE ? ESCAPE '\' OR s.email ILIKE ? ESCAPE '\' OR s.student_number ILIKE ? ESCAPE '\')
		GROUP BY s.student_id, c.name, c.code
		ORDER BY s.name ASC
		LIMIT ?`, pattern, pattern, pattern, limit).
		Scan(&students)
	if result.Error != nil {
		return nil, classify(result.Error)
	}

	return students, nil
}

// FindActiveByEmail looks up an active student by exact email. Callers normalise the address.
func (d *StudentDAO) FindActiveByEmail(ctx context.Context, email string) (StudentWithCollege, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	var student StudentWithCollege
	result := d.db.WithContext(ctx).Raw(studentWithCollegeSelect+`
		AND s.email = ?
		GROUP BY s.student_id, c.name, c.code`, email).
		Scan(&student)
	if result.Error != nil {
		return StudentWithCollege{}, classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return StudentWithCollege{}, ErrStudentNotFound
	}

	return student, nil
}

// Deactivate soft-deletes an active student. Unknown or inactive students give ErrStudentNotFound.
func (d *StudentDAO) Deactivate(ctx context.Context, id uuid.UUID, now time.Time) error {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	result := d.db.WithContext(ctx).Model(&Student{}).
		Where("student_id = ? AND is_active = TRUE", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": now,
		})
	if result.Error != nil {
		return classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStudentNotFound
	}

	return nil
}

func (d *StudentDAO) FindRegistrations(ctx context.Context, studentID uuid.UUID) ([]StudentRegistration, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	var rows []StudentRegistration
	result := d.db.WithContext(ctx).Raw(`
		SELECT r.registration_id, r.event_id, r.registered_at, r.status,
			e.title AS event_name, e.event_type, e.start_datetime, e.end_datetime, e.location,
			c.name AS college_name,
			a.attendance_id, a.checked_in_at, a.feedback_rating, a.feedback_comment,
			CASE WHEN a.attendance_id IS NOT NULL THEN 'attended' ELSE 'not_attended' END AS attendance_status
		FROM registrations r
		JOIN events e ON r.event_id = e.event_id
		JOIN colleges c ON e.college_id = c.college_id
		LEFT JOIN attendance a ON r.registration_id = a.registration_id
		WHERE r.student_id = ?
		ORDER BY e.start_datetime DESC`, studentID).
		Scan(&rows)
	if result.Error != nil {
		return nil, classify(result.Error)
	}

	return rows, nil
}

// FindAvailableEvents lists active, upcoming events whose deadline has not passed,
// flagging the ones the student already holds a registration for.
func (d *StudentDAO) FindAvailableEvents(ctx context.Context, studentID uuid.UUID, now time.Time) ([]AvailableEvent, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	var rows []AvailableEvent
	result := d.db.WithContext(ctx).Raw(`
		SELECT e.event_id, e.title, e.description, e.event_type, e.start_datetime, e.end_datetime,
			e.location, e.max_capacity, e.registration_deadline,
			c.name AS college_name, c.code AS college_code,
			COUNT(DISTINCT CASE WHEN r.status = 'registered' THEN r.registration_id END) AS current_registrations,
			CASE WHEN BOOL_OR(r.student_id = ? AND r.status = 'registered') THEN 'registered' ELSE 'available' END AS student_status
		FROM events e
		JOIN colleges c ON e.college_id = c.college_id
		LEFT JOIN registrations r ON e.event_id = r.event_id
		WHERE e.status = 'active'
			AND e.start_datetime > ?
			AND (e.registration_deadline IS NULL OR e.registration_deadline >= ?)
		GROUP BY e.event_id, c.name, c.code
		ORDER BY e.start_datetime ASC`, studentID, now, now).
		Scan(&rows)
	if result.Error != nil {
		return nil, classify(result.Error)
	}

	return rows, nil
}

func (d *StudentDAO) FindPendingFeedback(ctx context.Context, studentID uuid.UUID, now time.Time) ([]PendingFeedback, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	var rows []PendingFeedback
	result := d.db.WithContext(ctx).Raw(`
		SELECT a.attendance_id, r.registration_id, e.event_id,
			e.title AS event_name, e.event_type, e.start_datetime, e.end_datetime,
			c.name AS college_name, a.checked_in_at
		FROM attendance a
		JOIN registrations r ON a.registration_id = r.registration_id
		JOIN events e ON r.event_id = e.event_id
		JOIN colleges c ON e.college_id = c.college_id
		WHERE r.student_id = ?
			AND a.feedback_rating IS NULL
			AND e.end_datetime < ?
		ORDER BY e.end_datetime DESC`, studentID, now).
		Scan(&rows)
	if result.Error != nil {
		return nil, classify(result.Error)
	}

	return rows, nil
}
