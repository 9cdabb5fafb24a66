package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yizeng/campus-events/internal/domain"
)

var ErrCapacityBelowRegistered = domain.ErrCapacityBelowRegistered

type Event struct {
	ID                   uuid.UUID `gorm:"column:event_id;type:uuid;primaryKey"`
	CollegeID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Title                string    `gorm:"size:200;not null"`
	Description          string
	EventType            string    `gorm:"size:20;not null;check:chk_events_type,event_type IN ('workshop','hackathon','tech_talk','fest')"`
	StartDatetime        time.Time `gorm:"not null"`
	EndDatetime          time.Time `gorm:"not null;check:chk_events_dates,end_datetime > start_datetime"`
	Location             string    `gorm:"size:300"`
	MaxCapacity          *int      `gorm:"check:chk_events_capacity,max_capacity > 0"`
	RegistrationDeadline *time.Time
	Status               string `gorm:"size:20;not null;default:active;index"`
	CreatedBy            string `gorm:"size:100"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type EventDetail struct {
	Event
	CollegeName       string
	CollegeCode       string
	RegistrationCount int
	AttendanceCount   int
	FeedbackCount     int
	AvgRating         *float64
}

type EventStats struct {
	EventID                uuid.UUID
	Title                  string
	EventType              string
	StartDatetime          time.Time
	EndDatetime            time.Time
	MaxCapacity            *int
	Location               string
	RegistrationDeadline   *time.Time
	CollegeName            string
	CollegeCode            string
	TotalRegistrations     int
	CancelledRegistrations int
	TotalAttendance        int
	FeedbackCount          int
	AvgRating              *float64
	RatingOneCount         int
	RatingTwoCount         int
	RatingThreeCount       int
	RatingFourCount        int
	RatingFiveCount        int
}

type EventFilter struct {
	CollegeID *uuid.UUID
	EventType string
	Status    string
}

type EventDAO struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewEventDAO(db *gorm.DB, timeout time.Duration) *EventDAO {
	return &EventDAO{
		db:      db,
		timeout: timeout,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Status == "" {
		event.Status = string(domain.EventStatusActive)
	}

	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, classify(result.Error)
	}

	return event, nil
}

const eventDetailSelect = `
	SELECT e.*, c.name AS college_name, c.code AS college_code,
		COUNT(DISTINCT CASE WHEN r.status = 'registered' THEN r.registration_id END) AS registration_count,
		COUNT(DISTINCT a.attendance_id) AS attendance_count,
		COUNT(DISTINCT CASE WHEN a.feedback_rating IS NOT NULL THEN a.attendance_id END) AS feedback_count,
		ROUND(AVG(a.feedback_rating), 2)::float8 AS avg_rating
	FROM events e
	JOIN colleges c ON e.college_id = c.college_id
	LEFT JOIN registrations r ON e.event_id = r.event_id
	LEFT JOIN attendance a ON r.registration_id = a.registration_id`

func (d *EventDAO) FindAll(ctx context.Context, filter EventFilter) ([]EventDetail, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	query := eventDetailSelect + ` WHERE 1 = 1`
	var args []interface{}
	if filter.CollegeID != nil {
		query += ` AND e.college_id = ?`
		args = append(args, *filter.CollegeID)
	}
	if filter.EventType != "" {
		query += ` AND e.event_type = ?`
		args = append(args, filter.EventType)
	}
	if filter.Status != "" {
		query += ` AND e.status = ?`
		args = append(args, filter.Status)
	}
	query += ` GROUP BY e.event_id, c.name, c.code ORDER BY e.start_datetime ASC`

	var events []EventDetail
	result := d.db.WithContext(ctx).Raw(query, args...).Scan(&events)
	if result.Error != nil {
		return nil, classify(result.Error)
	}

	return events, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uuid.UUID) (EventDetail, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	var event EventDetail
	result := d.db.WithContext(ctx).
		Raw(eventDetailSelect+` WHERE e.event_id = ? GROUP BY e.event_id, c.name, c.code`, id).
		Scan(&event)
	if result.Error != nil {
		return EventDetail{}, classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return EventDetail{}, ErrEventNotFound
	}

	return event, nil
}

// Update replaces the mutable fields of an event. The event row is locked so the
// capacity check and the write see the same registered-count as admissions do.
func (d *EventDAO) Update(ctx context.Context, event Event) (Event, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	var updated Event
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&current, "event_id = ?", event.ID).Error; err != nil {
			return notFound(err, ErrEventNotFound)
		}

		if event.MaxCapacity != nil {
			var registered int64
			if err := tx.Model(&Registration{}).
				Where("event_id = ? AND status = ?", event.ID, string(domain.RegistrationRegistered)).
				Count(&registered).Error; err != nil {
				return classify(err)
			}
			if int64(*event.MaxCapacity) < registered {
				return ErrCapacityBelowRegistered
			}
		}

		if err := tx.Model(&current).Updates(map[string]interface{}{
			"title":                 event.Title,
			"description":           event.Description,
			"event_type":            event.EventType,
			"start_datetime":        event.StartDatetime,
			"end_datetime":          event.EndDatetime,
			"location":              event.Location,
			"max_capacity":          event.MaxCapacity,
			"registration_deadline": event.RegistrationDeadline,
		}).Error; err != nil {
			return classify(err)
		}

		if err := tx.First(&updated, "event_id = ?", event.ID).Error; err != nil {
			return classify(err)
		}

		return nil
	})
	if err != nil {
		return Event{}, classify(err)
	}

	return updated, nil
}

// Cancel moves an active event to cancelled. Cancelled or missing events give ErrEventNotFound.
func (d *EventDAO) Cancel(ctx context.Context, id uuid.UUID, now time.Time) (Event, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	var cancelled Event
	result := d.db.WithContext(ctx).Model(&cancelled).
		Clauses(clause.Returning{}).
		Where("event_id = ? AND status = ?", id, string(domain.EventStatusActive)).
		Updates(map[string]interface{}{
			"status":     string(domain.EventStatusCancelled),
			"updated_at": now,
		})
	if result.Error != nil {
		return Event{}, classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return Event{}, ErrEventNotFound
	}

	return cancelled, nil
}

func (d *EventDAO) Stats(ctx context.Context, id uuid.UUID) (EventStats, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	var stats EventStats
	result := d.db.WithContext(ctx).Raw(`
		SELECT e.event_id, e.title, e.event_type, e.start_datetime, e.end_datetime,
			e.max_capacity, e.location, e.registration_deadline,
			c.name AS college_name, c.code AS college_code,
			COUNT(DISTINCT CASE WHEN r.status = 'registered' THEN r.registration_id END) AS total_registrations,
			COUNT(DISTINCT CASE WHEN r.status = 'cancelled' THEN r.registration_id END) AS cancelled_registrations,
			COUNT(DISTINCT a.attendance_id) AS total_attendance,
			COUNT(DISTINCT CASE WHEN a.feedback_rating IS NOT NULL THEN a.attendance_id END) AS feedback_count,
			ROUND(AVG(a.feedback_rating), 2)::float8 AS avg_rating,
			COUNT(CASE WHEN a.feedback_rating = 1 THEN 1 END) AS rating_one_count,
			COUNT(CASE WHEN a.feedback_rating = 2 THEN 1 END) AS rating_two_count,
			COUNT(CASE WHEN a.feedback_rating = 3 THEN 1 END) AS rating_three_count,
			COUNT(CASE WHEN a.feedback_rating = 4 THEN 1 END) AS rating_four_count,
			COUNT(CASE WHEN a.feedback_rating = 5 THEN 1 END) AS rating_five_count
		FROM events e
		JOIN colleges c ON e.college_id = c.college_id
		LEFT JOIN registrations r ON e.event_id = r.event_id
		LEFT JOIN attendance a ON r.registration_id = a.registration_id
		WHERE e.event_id = ?
		GROUP BY e.event_id, c.name, c.code`, id).
		Scan(&stats)
	if result.Error != nil {
		return EventStats{}, classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return EventStats{}, ErrEventNotFound
	}

	return stats, nil
}
