package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yizeng/campus-events/internal/domain"
)

type Registration struct {
	ID                 uuid.UUID `gorm:"column:registration_id;type:uuid;primaryKey"`
	EventID            uuid.UUID `gorm:"type:uuid;not null;index"`
	StudentID          uuid.UUID `gorm:"type:uuid;not null;index"`
	RegisteredAt       time.Time `gorm:"not null"`
	Status             string    `gorm:"size:20;not null;default:registered;check:chk_registrations_status,status IN ('registered','cancelled')"`
	CancelledAt        *time.Time
	CancellationReason string
}

// AdmissionSnapshot is read inside the admission transaction while the event row is locked.
type AdmissionSnapshot struct {
	Event             Event
	RegisteredCount   int
	AlreadyRegistered bool
}

type RegistrationSearchResult struct {
	RegistrationID   uuid.UUID
	EventID          uuid.UUID
	StudentID        uuid.UUID
	RegisteredAt     time.Time
	Status           string
	StudentName      string
	StudentEmail     string
	StudentNumber    string
	EventName        string
	EventType        string
	StartDatetime    time.Time
	CollegeName      string
	AttendanceID     *uuid.UUID
	CheckedInAt      *time.Time
	AttendanceStatus string
}

type RegistrationDAO struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewRegistrationDAO(db *gorm.DB, timeout time.Duration) *RegistrationDAO {
	return &RegistrationDAO{
		db:      db,
		timeout: timeout,
	}
}

// Admit runs one admission attempt in a single transaction. The event row is
// locked with SELECT ... FOR UPDATE, so concurrent attempts for the same event
// are serialised and the registered-count handed to decide cannot go stale
// before the insert. The partial unique index on (event_id, student_id) still
// rejects duplicate pairs that slip past decide.
func (d *RegistrationDAO) Admit(
	ctx context.Context,
	eventID, studentID uuid.UUID,
	now time.Time,
	decide func(AdmissionSnapshot) error,
) (Registration, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	var created Registration
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&event, "event_id = ?", eventID).Error; err != nil {
			return notFound(err, ErrEventNotFound)
		}

		var activeStudents int64
		if err := tx.Model(&Student{}).
			Where("student_id = ? AND is_active = TRUE", studentID).
			Count(&activeStudents).Error; err != nil {
			return classify(err)
		}
		if activeStudents == 0 {
			return ErrStudentNotFound
		}

		var registered int64
		if err := tx.Model(&Registration{}).
			Where("event_id = ? AND status = ?", eventID, string(domain.RegistrationRegistered)).
			Count(&registered).Error; err != nil {
			return classify(err)
		}

		var existing int64
		if err := tx.Model(&Registration{}).
			Where("event_id = ? AND student_id = ? AND status = ?", eventID, studentID, string(domain.RegistrationRegistered)).
			Count(&existing).Error; err != nil {
			return classify(err)
		}

		snap := AdmissionSnapshot{
			Event:             event,
			RegisteredCount:   int(registered),
			AlreadyRegistered: existing > 0,
		}
		if err := decide(snap); err != nil {
			return err
		}

		created = Registration{
			ID:           uuid.New(),
			EventID:      eventID,
			StudentID:    studentID,
			RegisteredAt: now,
			Status:       string(domain.RegistrationRegistered),
		}
		if err := tx.Create(&created).Error; err != nil {
			return classify(err)
		}

		return nil
	})
	if err != nil {
		return Registration{}, classify(err)
	}

	return created, nil
}

// Cancel flips a registered row to cancelled. Re-cancelling is rejected with
// ErrRegistrationNotFound, the same as an unknown id.
func (d *RegistrationDAO) Cancel(ctx context.Context, id uuid.UUID, reason string, now time.Time) (Registration, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	var cancelled Registration
	result := d.db.WithContext(ctx).Model(&cancelled).
		Clauses(clause.Returning{}).
		Where("registration_id = ? AND status = ?", id, string(domain.RegistrationRegistered)).
		Updates(map[string]interface{}{
			"status":              string(domain.RegistrationCancelled),
			"cancelled_at":        now,
			"cancellation_reason": reason,
		})
	if result.Error != nil {
		return Registration{}, classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return Registration{}, ErrRegistrationNotFound
	}

	return cancelled, nil
}

// Search looks up active registrations by student name, email or event title.
func (d *RegistrationDAO) Search(ctx context.Context, term string, limit int) ([]RegistrationSearchResult, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	pattern := containsPattern(term)
	var rows []RegistrationSearchResult
	result := d.db.WithContext(ctx).Raw(`
		SELECT r.registration_id, r.event_id, r.student_id, r.registered_at, r.status,
			s.name AS student_name, s.email AS student_email, s.student_number,
			e.title AS event_name, e.event_type, e.start_datetime,
			c.name AS college_name,
			a.attendance_id, a.checked_in_at,
			CASE WHEN a.attendance_id IS NOT NULL THEN 'checked_in' ELSE 'not_checked_in' END AS attendance_status
		FROM registrations r
		JOIN students s ON r.student_id = s.student_id
		JOIN events e ON r.event_id = e.event_id
		JOIN colleges c ON e.college_id = c.college_id
		LEFT JOIN attendance a ON r.registration_id = a.registration_id
		WHERE r.status = 'registered'
			AND (s.name ILIKE ? ESCAPE '\' OR s.email ILIKE ? ESCAPE '\' OR e.title ILIKE ? ESCAPE '\')
		ORDER BY r.registered_at DESC
		LIMIT ?`, pattern, pattern, pattern, limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, classify(result.Error)
	}

	return rows, nil
}
