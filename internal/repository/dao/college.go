package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type College struct {
	ID           uuid.UUID `gorm:"column:college_id;type:uuid;primaryKey"`
	Name         string    `gorm:"size:200;not null"`
	Code         string    `gorm:"size:10;not null;uniqueIndex:uq_colleges_code"`
	Address      string
	City         string `gorm:"size:100"`
	State        string `gorm:"size:100"`
	ContactEmail string `gorm:"size:255"`
	Phone        string `gorm:"size:20"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CollegeSummary struct {
	College
	TotalEvents    int
	TotalStudents  int
	UpcomingEvents int
}

type CollegeDAO struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewCollegeDAO(db *gorm.DB, timeout time.Duration) *CollegeDAO {
	return &CollegeDAO{
		db:      db,
		timeout: timeout,
	}
}

func (d *CollegeDAO) Insert(ctx context.Context, college College) (College, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	if college.ID == uuid.Nil {
		college.ID = uuid.New()
	}

	result := d.db.WithContext(ctx).Create(&college)
	if result.Error != nil {
		return College{}, classify(result.Error)
	}

	return college, nil
}

const collegeSummarySelect = `
	SELECT c.*,
		COUNT(DISTINCT e.event_id) AS total_events,
		COUNT(DISTINCT s.student_id) AS total_students,
		COUNT(DISTINCT CASE WHEN e.start_datetime > ? THEN e.event_id END) AS upcoming_events
	FROM colleges c
	LEFT JOIN events e ON c.college_id = e.college_id AND e.status = 'active'
	LEFT JOIN students s ON c.college_id = s.college_id AND s.is_active = TRUE`

func (d *CollegeDAO) FindAll(ctx context.Context, now time.Time) ([]CollegeSummary, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	var colleges []CollegeSummary
	result := d.db.WithContext(ctx).
		Raw(collegeSummarySelect+` GROUP BY c.college_id ORDER BY c.name ASC`, now).
		Scan(&colleges)
	if result.Error != nil {
		return nil, classify(result.Error)
	}

	return colleges, nil
}

func (d *CollegeDAO) FindByID(ctx context.Context, id uuid.UUID, now time.Time) (CollegeSummary, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	var college CollegeSummary
	result := d.db.WithContext(ctx).
		Raw(collegeSummarySelect+` WHERE c.college_id = ? GROUP BY c.college_id`, now, id).
		Scan(&college)
	if result.Error != nil {
		return CollegeSummary{}, classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return CollegeSummary{}, ErrCollegeNotFound
	}

	return college, nil
}

func (d *CollegeDAO) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	var count int64
	result := d.db.WithContext(ctx).Model(&College{}).Where("college_id = ?", id).Count(&count)
	if result.Error != nil {
		return false, classify(result.Error)
	}

	return count > 0, nil
}
