package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yizeng/campus-events/internal/domain"
)

type AttendanceRepository interface {
	Create(ctx context.Context, registrationID uuid.UUID, method domain.CheckInMethod, now time.Time) (domain.Attendance, error)
	SaveFeedback(ctx context.Context, attendanceID uuid.UUID, feedback domain.Feedback) (domain.Attendance, error)
}

type AttendanceService struct {
	repo AttendanceRepository
	now  func() time.Time
}

func NewAttendanceService(repo AttendanceRepository) *AttendanceService {
	return &AttendanceService{
		repo: repo,
		now:  time.Now,
	}
}

// MarkAttendance checks a registered student in. Each registration can be checked in once.
func (s *AttendanceService) MarkAttendance(
	ctx context.Context,
	registrationID uuid.UUID,
	method domain.CheckInMethod,
) (domain.Attendance, error) {
	if method == "" {
		method = domain.CheckInManual
	}
	if !method.IsValid() {
		return domain.Attendance{}, domain.NewValidationError(fmt.Errorf("invalid check-in method %q", method))
	}

	attendance, err := s.repo.Create(ctx, registrationID, method, s.now())
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return attendance, nil
}

// SubmitFeedback overwrites any earlier rating and comment on the attendance record.
func (s *AttendanceService) SubmitFeedback(
	ctx context.Context,
	attendanceID uuid.UUID,
	rating int,
	comment string,
) (domain.Attendance, error) {
	r, err := domain.NewRating(rating)
	if err != nil {
		return domain.Attendance{}, err
	}

	attendance, err := s.repo.SaveFeedback(ctx, attendanceID, domain.Feedback{
		Rating:      r,
		Comment:     strings.TrimSpace(comment),
		SubmittedAt: s.now(),
	})
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("s.repo.SaveFeedback -> %w", err)
	}

	return attendance, nil
}
