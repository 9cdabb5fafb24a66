package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/yizeng/campus-events/internal/domain"
	"github.com/yizeng/campus-events/internal/repository/dao"
)

type ReportDAO interface {
	EventPopularity(ctx context.Context) ([]dao.EventPopularityRow, error)
	StudentParticipation(ctx context.Context) ([]dao.StudentParticipationRow, error)
	CollegePerformance(ctx context.Context) ([]dao.CollegePerformanceRow, error)
	SystemOverview(ctx context.Context, now time.Time) (dao.SystemOverviewRow, error)
	EventTypeAnalytics(ctx context.Context) ([]dao.EventTypeRow, error)
	TopActiveStudents(ctx context.Context, limit int) ([]dao.ActiveStudentRow, error)
	FilteredEvents(ctx context.Context, filter dao.EventFilter) ([]dao.FilteredEventRow, error)
}

// ReportRepository turns aggregate rows into report values. Percentages and
// participation levels are derived here so every report computes them the same way.
type ReportRepository struct {
	dao ReportDAO
}

func NewReportRepository(dao ReportDAO) *ReportRepository {
	return &ReportRepository{
		dao: dao,
	}
}

func (r *ReportRepository) EventPopularity(ctx context.Context) ([]domain.EventPopularity, error) {
	rows, err := r.dao.EventPopularity(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.EventPopularity -> %w", err)
	}

	report := make([]domain.EventPopularity, 0, len(rows))
	for _, row := range rows {
		report = append(report, domain.EventPopularity{
			EventID:              row.EventID,
			Title:                row.Title,
			Type:                 domain.EventType(row.EventType),
			CollegeName:          row.CollegeName,
			RegistrationCount:    row.RegistrationCount,
			AttendanceCount:      row.AttendanceCount,
			AvgRating:            row.AvgRating,
			AttendancePercentage: domain.Percentage(row.AttendanceCount, row.RegistrationCount),
		})
	}

	return report, nil
}

func (r *ReportRepository) StudentParticipation(ctx context.Context) ([]domain.StudentParticipation, error) {
	rows, err := r.dao.StudentParticipation(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.StudentParticipation -> %w", err)
	}

	report := make([]domain.StudentParticipation, 0, len(rows))
	for _, row := range rows {
		report = append(report, domain.StudentParticipation{
			StudentID:          row.StudentID,
			Name:               row.Name,
			Email:              row.Email,
			StudentNumber:      row.StudentNumber,
			CollegeName:        row.CollegeName,
			EventsRegistered:   row.EventsRegistered,
			EventsAttended:     row.EventsAttended,
			AvgRatingGiven:     row.AvgRatingGiven,
			AttendanceRate:     domain.Percentage(row.EventsAttended, row.EventsRegistered),
			ParticipationLevel: domain.ParticipationLevel(row.EventsAttended),
		})
	}

	return report, nil
}

func (r *ReportRepository) CollegePerformance(ctx context.Context) ([]domain.CollegePerformance, error) {
	rows, err := r.dao.CollegePerformance(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CollegePerformance -> %w", err)
	}

	report := make([]domain.CollegePerformance, 0, len(rows))
	for _, row := range rows {
		report = append(report, domain.CollegePerformance{
			CollegeID:            row.CollegeID,
			Name:                 row.Name,
			Code:                 row.Code,
			TotalEvents:          row.TotalEvents,
			TotalStudents:        row.TotalStudents,
			TotalRegistrations:   row.TotalRegistrations,
			TotalAttendance:      row.TotalAttendance,
			AvgRating:            row.AvgRating,
			AttendancePercentage: domain.Percentage(row.TotalAttendance, row.TotalRegistrations),
		})
	}

	return report, nil
}

func (r *ReportRepository) SystemOverview(ctx context.Context, now time.Time) (domain.SystemOverview, error) {
	row, err := r.dao.SystemOverview(ctx, now)
	if err != nil {
		return domain.SystemOverview{}, fmt.Errorf("r.dao.SystemOverview -> %w", err)
	}

	return domain.SystemOverview{
		TotalColleges:      row.TotalColleges,
		TotalEvents:        row.TotalEvents,
		ActiveEvents:       row.ActiveEvents,
		UpcomingEvents:     row.UpcomingEvents,
		TotalStudents:      row.TotalStudents,
		TotalRegistrations: row.TotalRegistrations,
		TotalAttendance:    row.TotalAttendance,
		TotalFeedback:      row.TotalFeedback,
		AvgRating:          row.AvgRating,
		AttendanceRate:     domain.Percentage(row.TotalAttendance, row.TotalRegistrations),
	}, nil
}

func (r *ReportRepository) EventTypeAnalytics(ctx context.Context) ([]domain.EventTypeAnalytics, error) {
	rows, err := r.dao.EventTypeAnalytics(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.EventTypeAnalytics -> %w", err)
	}

	report := make([]domain.EventTypeAnalytics, 0, len(rows))
	for _, row := range rows {
		var perEvent float64
		if row.TotalEvents > 0 {
			perEvent = domain.RoundTo2(float64(row.TotalRegistrations) / float64(row.TotalEvents))
		}
		report = append(report, domain.EventTypeAnalytics{
			Type:                  domain.EventType(row.EventType),
			TotalEvents:           row.TotalEvents,
			TotalRegistrations:    row.TotalRegistrations,
			TotalAttendance:       row.TotalAttendance,
			AvgRating:             row.AvgRating,
			AvgRegistrationsEvent: perEvent,
			AttendancePercentage:  domain.Percentage(row.TotalAttendance, row.TotalRegistrations),
		})
	}

	return report, nil
}

func (r *ReportRepository) TopActiveStudents(ctx context.Context, limit int) ([]domain.ActiveStudent, error) {
	rows, err := r.dao.TopActiveStudents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.TopActiveStudents -> %w", err)
	}

	report := make([]domain.ActiveStudent, 0, len(rows))
	for _, row := range rows {
		report = append(report, domain.ActiveStudent{
			StudentID:      row.StudentID,
			Name:           row.Name,
			Email:          row.Email,
			CollegeName:    row.CollegeName,
			EventsAttended: row.EventsAttended,
			AvgRatingGiven: row.AvgRatingGiven,
		})
	}

	return report, nil
}

func (r *ReportRepository) FilteredEvents(ctx context.Context, filter domain.EventFilter) ([]domain.FilteredEventReport, error) {
	rows, err := r.dao.FilteredEvents(ctx, dao.EventFilter{
		CollegeID: filter.CollegeID,
		EventType: string(filter.Type),
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.FilteredEvents -> %w", err)
	}

	report := make([]domain.FilteredEventReport, 0, len(rows))
	for _, row := range rows {
		report = append(report, domain.FilteredEventReport{
			EventID:              row.EventID,
			EventName:            row.EventName,
			Type:                 domain.EventType(row.EventType),
			CollegeName:          row.CollegeName,
			StartAt:              row.StartDatetime,
			MaxCapacity:          row.MaxCapacity,
			Registrations:        row.Registrations,
			Attendance:           row.Attendance,
			AttendancePercentage: domain.Percentage(row.Attendance, row.Registrations),
			AvgRating:            row.AvgRating,
		})
	}

	return report, nil
}
