package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yizeng/campus-events/internal/domain"
	"github.com/yizeng/campus-events/internal/repository/dao"
)

type AttendanceDAO interface {
	Insert(ctx context.Context, registrationID uuid.UUID, method string, now time.Time) (dao.Attendance, error)
	UpdateFeedback(ctx context.Context, attendanceID uuid.UUID, rating int, comment *string, now time.Time) (dao.Attendance, error)
}

type AttendanceRepository struct {
	dao AttendanceDAO
}

func NewAttendanceRepository(dao AttendanceDAO) *AttendanceRepository {
	return &AttendanceRepository{
		dao: dao,
	}
}

func (r *AttendanceRepository) Create(
	ctx context.Context,
	registrationID uuid.UUID,
	method domain.CheckInMethod,
	now time.Time,
) (domain.Attendance, error) {
	created, err := r.dao.Insert(ctx, registrationID, string(method), now)
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *AttendanceRepository) SaveFeedback(ctx context.Context, attendanceID uuid.UUID, feedback domain.Feedback) (domain.Attendance, error) {
	var comment *string
	if feedback.Comment != "" {
		comment = &feedback.Comment
	}

	updated, err := r.dao.UpdateFeedback(ctx, attendanceID, feedback.Rating.Int(), comment, feedback.SubmittedAt)
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("r.dao.UpdateFeedback -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *AttendanceRepository) daoToDomain(a dao.Attendance) domain.Attendance {
	return domain.Attendance{
		ID:                  a.ID,
		RegistrationID:      a.RegistrationID,
		CheckedInAt:         a.CheckedInAt,
		Method:              domain.CheckInMethod(a.CheckInMethod),
		FeedbackRating:      a.FeedbackRating,
		FeedbackComment:     a.FeedbackComment,
		FeedbackSubmittedAt: a.FeedbackSubmittedAt,
	}
}
