package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yizeng/campus-events/internal/domain"
	"github.com/yizeng/campus-events/internal/repository/dao"
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindAll(ctx context.Context, filter dao.EventFilter) ([]dao.EventDetail, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.EventDetail, error)
	Update(ctx context.Context, event dao.Event) (dao.Event, error)
	Cancel(ctx context.Context, id uuid.UUID, now time.Time) (dao.Event, error)
	Stats(ctx context.Context, id uuid.UUID) (dao.EventStats, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, eventDomainToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return eventDAOToDomain(created), nil
}

func (r *EventRepository) FindAll(ctx context.Context, filter domain.EventFilter) ([]domain.EventDetail, error) {
	found, err := r.dao.FindAll(ctx, dao.EventFilter{
		CollegeID: filter.CollegeID,
		EventType: string(filter.Type),
		Status:    string(filter.Status),
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	events := make([]domain.EventDetail, 0, len(found))
	for _, e := range found {
		events = append(events, r.detailToDomain(e))
	}

	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.EventDetail, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.EventDetail{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.detailToDomain(found), nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	updated, err := r.dao.Update(ctx, eventDomainToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return eventDAOToDomain(updated), nil
}

func (r *EventRepository) Cancel(ctx context.Context, id uuid.UUID, now time.Time) (domain.Event, error) {
	cancelled, err := r.dao.Cancel(ctx, id, now)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Cancel -> %w", err)
	}

	return eventDAOToDomain(cancelled), nil
}

func (r *EventRepository) Stats(ctx context.Context, id uuid.UUID) (domain.EventStats, error) {
	s, err := r.dao.Stats(ctx, id)
	if err != nil {
		return domain.EventStats{}, fmt.Errorf("r.dao.Stats -> %w", err)
	}

	return domain.EventStats{
		EventID:                s.EventID,
		Title:                  s.Title,
		Type:                   domain.EventType(s.EventType),
		StartAt:                s.StartDatetime,
		EndAt:                  s.EndDatetime,
		MaxCapacity:            s.MaxCapacity,
		Location:               s.Location,
		Deadline:               s.RegistrationDeadline,
		CollegeName:            s.CollegeName,
		CollegeCode:            s.CollegeCode,
		TotalRegistrations:     s.TotalRegistrations,
		CancelledRegistrations: s.CancelledRegistrations,
		TotalAttendance:        s.TotalAttendance,
		FeedbackCount:          s.FeedbackCount,
		AvgRating:              s.AvgRating,
		RatingDistribution: [5]int{
			s.RatingOneCount,
			s.RatingTwoCount,
			s.RatingThreeCount,
			s.RatingFourCount,
			s.RatingFiveCount,
		},
	}, nil
}

func (r *EventRepository) detailToDomain(e dao.EventDetail) domain.EventDetail {
	return domain.EventDetail{
		Event:                eventDAOToDomain(e.Event),
		CollegeName:          e.CollegeName,
		CollegeCode:          e.CollegeCode,
		RegistrationCount:    e.RegistrationCount,
		AttendanceCount:      e.AttendanceCount,
		FeedbackCount:        e.FeedbackCount,
		AvgRating:            e.AvgRating,
		AttendancePercentage: domain.Percentage(e.AttendanceCount, e.RegistrationCount),
	}
}

func eventDomainToDAO(e domain.Event) dao.Event {
	return dao.Event{
		ID:                   e.ID,
		CollegeID:            e.CollegeID,
		Title:                e.Title,
		Description:          e.Description,
		EventType:            string(e.Type),
		StartDatetime:        e.StartAt,
		EndDatetime:          e.EndAt,
		Location:             e.Location,
		MaxCapacity:          e.MaxCapacity,
		RegistrationDeadline: e.RegistrationDeadline,
		Status:               string(e.Status),
		CreatedBy:            e.CreatedBy,
	}
}

func eventDAOToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:                   e.ID,
		CollegeID:            e.CollegeID,
		Title:                e.Title,
		Description:          e.Description,
		Type:                 domain.EventType(e.EventType),
		StartAt:              e.StartDatetime,
		EndAt:                e.EndDatetime,
		Location:             e.Location,
		MaxCapacity:          e.MaxCapacity,
		RegistrationDeadline: e.RegistrationDeadline,
		Status:               domain.EventStatus(e.Status),
		CreatedBy:            e.CreatedBy,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}
