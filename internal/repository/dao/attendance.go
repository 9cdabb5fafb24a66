package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yizeng/campus-events/internal/domain"
)

type Attendance struct {
	ID                  uuid.UUID `gorm:"column:attendance_id;type:uuid;primaryKey"`
	RegistrationID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_registration"`
	CheckedInAt         time.Time `gorm:"not null"`
	CheckInMethod       string    `gorm:"size:20;not null;default:manual;check:chk_attendance_method,check_in_method IN ('manual','qr_code','rfid')"`
	FeedbackRating      *int      `gorm:"check:chk_attendance_rating,feedback_rating BETWEEN 1 AND 5"`
	FeedbackComment     *string
	FeedbackSubmittedAt *time.Time
}

func (Attendance) TableName() string {
	return "attendance"
}

type AttendanceDAO struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewAttendanceDAO(db *gorm.DB, timeout time.Duration) *AttendanceDAO {
	return &AttendanceDAO{
		db:      db,
		timeout: timeout,
	}
}

// Insert checks a registration in. The registration row is locked so a
// concurrent cancel cannot slip between the status check and the insert.
func (d *AttendanceDAO) Insert(ctx context.Context, registrationID uuid.UUID, method string, now time.Time) (Attendance, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	var created Attendance
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var registration Registration
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&registration, "registration_id = ? AND status = ?", registrationID, string(domain.RegistrationRegistered)).
			Error; err != nil {
			return notFound(err, ErrRegistrationNotFound)
		}

		var existing int64
		if err := tx.Model(&Attendance{}).
			Where("registration_id = ?", registrationID).
			Count(&existing).Error; err != nil {
			return classify(err)
		}
		if existing > 0 {
			return ErrAlreadyCheckedIn
		}

		created = Attendance{
			ID:             uuid.New(),
			RegistrationID: registrationID,
			CheckedInAt:    now,
			CheckInMethod:  method,
		}
		if err := tx.Create(&created).Error; err != nil {
			return classify(err)
		}

		return nil
	})
	if err != nil {
		return Attendance{}, classify(err)
	}

	return created, nil
}

// UpdateFeedback overwrites the rating and comment of an attendance row.
func (d *AttendanceDAO) UpdateFeedback(
	ctx context.Context,
	attendanceID uuid.UUID,
	rating int,
	comment *string,
	now time.Time,
) (Attendance, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	var updated Attendance
	result := d.db.WithContext(ctx).Model(&updated).
		Clauses(clause.Returning{}).
		Where("attendance_id = ?", attendanceID).
		Updates(map[string]interface{}{
			"feedback_rating":       rating,
			"feedback_comment":      comment,
			"feedback_submitted_at": now,
		})
	if result.Error != nil {
		return Attendance{}, classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return Attendance{}, ErrAttendanceNotFound
	}

	return updated, nil
}
