package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yizeng/campus-events/internal/domain"
)

const defaultCreatedBy = "System"

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindAll(ctx context.Context, filter domain.EventFilter) ([]domain.EventDetail, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.EventDetail, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	Cancel(ctx context.Context, id uuid.UUID, now time.Time) (domain.Event, error)
	Stats(ctx context.Context, id uuid.UUID) (domain.EventStats, error)
}

type EventService struct {
	repo EventRepository
	now  func() time.Time
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	event.Title = strings.TrimSpace(event.Title)
	event.Status = domain.EventStatusActive
	if strings.TrimSpace(event.CreatedBy) == "" {
		event.CreatedBy = defaultCreatedBy
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// ListEvents lists events matching filter. Without an explicit status only active events are listed.
func (s *EventService) ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.EventDetail, error) {
	if filter.Status == "" {
		filter.Status = domain.EventStatusActive
	}

	events, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return events, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uuid.UUID) (domain.EventDetail, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.EventDetail{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

// UpdateEvent replaces the mutable fields of an event. Lowering the capacity
// below the current number of registrations is rejected.
func (s *EventService) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	event.Title = strings.TrimSpace(event.Title)

	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *EventService) CancelEvent(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	cancelled, err := s.repo.Cancel(ctx, id, s.now())
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Cancel -> %w", err)
	}

	return cancelled, nil
}

func (s *EventService) GetEventStats(ctx context.Context, id uuid.UUID) (domain.EventStats, error) {
	stats, err := s.repo.Stats(ctx, id)
	if err != nil {
		return domain.EventStats{}, fmt.Errorf("s.repo.Stats -> %w", err)
	}

	stats.Derive(s.now())

	return stats, nil
}
