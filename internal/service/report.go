package service

import (
	"context"
	"fmt"
	"time"

	"github.com/yizeng/campus-events/internal/domain"
)

const (
	defaultTopStudents = 3
	maxTopStudents     = 50
)

type ReportRepository interface {
	EventPopularity(ctx context.Context) ([]domain.EventPopularity, error)
	StudentParticipation(ctx context.Context) ([]domain.StudentParticipation, error)
	CollegePerformance(ctx context.Context) ([]domain.CollegePerformance, error)
	SystemOverview(ctx context.Context, now time.Time) (domain.SystemOverview, error)
	EventTypeAnalytics(ctx context.Context) ([]domain.EventTypeAnalytics, error)
	TopActiveStudents(ctx context.Context, limit int) ([]domain.ActiveStudent, error)
	FilteredEvents(ctx context.Context, filter domain.EventFilter) ([]domain.FilteredEventReport, error)
}

type ReportService struct {
	repo ReportRepository
	now  func() time.Time
}

func NewReportService(repo ReportRepository) *ReportService {
	return &ReportService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *ReportService) EventPopularity(ctx context.Context) ([]domain.EventPopularity, error) {
	report, err := s.repo.EventPopularity(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.EventPopularity -> %w", err)
	}

	return report, nil
}

func (s *ReportService) StudentParticipation(ctx context.Context) ([]domain.StudentParticipation, error) {
	report, err := s.repo.StudentParticipation(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.StudentParticipation -> %w", err)
	}

	return report, nil
}

func (s *ReportService) CollegePerformance(ctx context.Context) ([]domain.CollegePerformance, error) {
	report, err := s.repo.CollegePerformance(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.CollegePerformance -> %w", err)
	}

	return report, nil
}

func (s *ReportService) SystemOverview(ctx context.Context) (domain.SystemOverview, error) {
	report, err := s.repo.SystemOverview(ctx, s.now())
	if err != nil {
		return domain.SystemOverview{}, fmt.Errorf("s.repo.SystemOverview -> %w", err)
	}

	return report, nil
}

func (s *ReportService) EventTypeAnalytics(ctx context.Context) ([]domain.EventTypeAnalytics, error) {
	report, err := s.repo.EventTypeAnalytics(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.EventTypeAnalytics -> %w", err)
	}

	return report, nil
}

// TopActiveStudents ranks students by attended events. limit is clamped to [1, 50]
// and defaults to 3.
func (s *ReportService) TopActiveStudents(ctx context.Context, limit int) ([]domain.ActiveStudent, error) {
	switch {
	case limit <= 0:
		limit = defaultTopStudents
	case limit > maxTopStudents:
		limit = maxTopStudents
	}

	report, err := s.repo.TopActiveStudents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.TopActiveStudents -> %w", err)
	}

	return report, nil
}

// FilteredReport builds the report named by reportType. Only domain.ReportTypeEvents
// is known; an empty type means events.
func (s *ReportService) FilteredReport(ctx context.Context, reportType string, filter domain.EventFilter) ([]domain.FilteredEventReport, error) {
	if reportType == "" {
		reportType = domain.ReportTypeEvents
	}
	if reportType != domain.ReportTypeEvents {
		return nil, domain.NewValidationError(fmt.Errorf("invalid report type %q", reportType))
	}

	report, err := s.repo.FilteredEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FilteredEvents -> %w", err)
	}

	return report, nil
}
