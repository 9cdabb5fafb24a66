package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yizeng/campus-events/internal/domain"
)

type CollegeRepository interface {
	Create(ctx context.Context, college domain.College) (domain.College, error)
	FindAll(ctx context.Context, now time.Time) ([]domain.CollegeSummary, error)
	FindByID(ctx context.Context, id uuid.UUID, now time.Time) (domain.CollegeSummary, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type CollegeService struct {
	repo      CollegeRepository
	eventRepo EventRepository
	now       func() time.Time
}

func NewCollegeService(repo CollegeRepository, eventRepo EventRepository) *CollegeService {
	return &CollegeService{
		repo:      repo,
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

func (s *CollegeService) CreateCollege(ctx context.Context, college domain.College) (domain.College, error) {
	college.Name = strings.TrimSpace(college.Name)
	college.Code = strings.ToUpper(strings.TrimSpace(college.Code))

	created, err := s.repo.Create(ctx, college)
	if err != nil {
		return domain.College{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CollegeService) ListColleges(ctx context.Context) ([]domain.CollegeSummary, error) {
	colleges, err := s.repo.FindAll(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return colleges, nil
}

func (s *CollegeService) GetCollege(ctx context.Context, id uuid.UUID) (domain.CollegeSummary, error) {
	college, err := s.repo.FindByID(ctx, id, s.now())
	if err != nil {
		return domain.CollegeSummary{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return college, nil
}

// ListCollegeEvents returns the active events of a college.
func (s *CollegeService) ListCollegeEvents(ctx context.Context, id uuid.UUID) ([]domain.EventDetail, error) {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Exists -> %w", err)
	}
	if !ok {
		return nil, domain.ErrCollegeNotFound
	}

	events, err := s.eventRepo.FindAll(ctx, domain.EventFilter{
		CollegeID: &id,
		Status:    domain.EventStatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("s.eventRepo.FindAll -> %w", err)
	}

	return events, nil
}
