package request

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"

	"github.com/yizeng/campus-events/internal/domain"
)

// startGracePeriod is how far in the past an event may start.
const startGracePeriod = time.Hour

var eventTypeRule = validation.In(
	string(domain.EventTypeHackathon),
	string(domain.EventTypeWorkshop),
	string(domain.EventTypeTechTalk),
	string(domain.EventTypeFest),
).Error("must be one of: hackathon, workshop, tech_talk, fest")

var eventStatusRule = validation.In(
	string(domain.EventStatusActive),
	string(domain.EventStatusCancelled),
).Error("must be one of: active, cancelled")

// EventFields are the mutable fields of an event, shared by create and update.
type EventFields struct {
	Title                string `json:"title" example:"Intro to Go"`
	Description          string `json:"description"`
	EventType            string `json:"event_type" example:"workshop"`
	StartDatetime        string `json:"start_datetime" example:"2026-11-02T10:00:00Z"`
	EndDatetime          string `json:"end_datetime" example:"2026-11-02T12:00:00Z"`
	Location             string `json:"location"`
	MaxCapacity          *int   `json:"max_capacity" example:"50"`
	RegistrationDeadline string `json:"registration_deadline" example:"2026-11-01T18:00:00Z"`
	CreatedBy            string `json:"created_by"`
}

// Normalize sanitizes free text. Call it before ValidateAt so length checks see what
// will be stored.
func (f *EventFields) Normalize() {
	f.Title = sanitize(f.Title)
	f.Description = sanitize(f.Description)
	f.EventType = strings.TrimSpace(f.EventType)
	f.Location = sanitize(f.Location)
	f.CreatedBy = sanitize(f.CreatedBy)
}

func (f *EventFields) validateAt(now time.Time) error {
	err := validation.ValidateStruct(
		f,
		validation.Field(&f.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&f.EventType, validation.Required, eventTypeRule),
		validation.Field(&f.StartDatetime, validation.Required, timestampRule),
		validation.Field(&f.EndDatetime, validation.Required, timestampRule),
		validation.Field(&f.RegistrationDeadline, timestampRule),
		validation.Field(&f.MaxCapacity, intRange(1, 10000)),
		validation.Field(&f.Location, validation.Length(0, 300)),
		validation.Field(&f.Description, validation.Length(0, 2000)),
	)
	if err != nil {
		return err
	}

	start, _ := parseTimestamp(f.StartDatetime)
	end, _ := parseTimestamp(f.EndDatetime)

	if !end.After(start) {
		return validation.Errors{"end_datetime": errors.New("must be after start_datetime")}
	}
	if start.Before(now.Add(-startGracePeriod)) {
		return validation.Errors{"start_datetime": errors.New("cannot be in the past")}
	}
	if f.RegistrationDeadline != "" {
		deadline, _ := parseTimestamp(f.RegistrationDeadline)
		if deadline.After(start) {
			return validation.Errors{"registration_deadline": errors.New("must not be after start_datetime")}
		}
	}

	return nil
}

// event assumes validateAt has passed.
func (f *EventFields) event() domain.Event {
	start, _ := parseTimestamp(f.StartDatetime)
	end, _ := parseTimestamp(f.EndDatetime)

	e := domain.Event{
		Title:       f.Title,
		Description: f.Description,
		Type:        domain.EventType(f.EventType),
		StartAt:     start,
		EndAt:       end,
		Location:    f.Location,
		MaxCapacity: f.MaxCapacity,
		CreatedBy:   f.CreatedBy,
	}
	if f.RegistrationDeadline != "" {
		deadline, _ := parseTimestamp(f.RegistrationDeadline)
		e.RegistrationDeadline = &deadline
	}

	return e
}

type CreateEventRequest struct {
	CollegeID string `json:"college_id" example:"1b4e28ba-2fa1-11d2-883f-0016d3cca427"`
	EventFields
}

func (req *CreateEventRequest) Normalize() {
	req.CollegeID = strings.TrimSpace(req.CollegeID)
	req.EventFields.Normalize()
}

func (req *CreateEventRequest) ValidateAt(now time.Time) error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.CollegeID, validation.Required, uuidRule),
	)
	if err != nil {
		return err
	}

	return req.EventFields.validateAt(now)
}

func (req *CreateEventRequest) ToDomain() domain.Event {
	e := req.EventFields.event()
	e.CollegeID = uuid.MustParse(req.CollegeID)

	return e
}

// UpdateEventRequest replaces every mutable field. The owning college cannot change.
type UpdateEventRequest struct {
	EventFields
}

func (req *UpdateEventRequest) ValidateAt(now time.Time) error {
	return req.EventFields.validateAt(now)
}

func (req *UpdateEventRequest) ToDomain(id uuid.UUID) domain.Event {
	e := req.EventFields.event()
	e.ID = id

	return e
}

type ListEventsQuery struct {
	CollegeID string `form:"college_id"`
	EventType string `form:"event_type"`
	Status    string `form:"status"`
}

func (q *ListEventsQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.CollegeID, uuidRule),
		validation.Field(&q.EventType, eventTypeRule),
		validation.Field(&q.Status, eventStatusRule),
	)
}

func (q *ListEventsQuery) ToDomain() domain.EventFilter {
	filter := domain.EventFilter{
		Type:   domain.EventType(strings.TrimSpace(q.EventType)),
		Status: domain.EventStatus(strings.TrimSpace(q.Status)),
	}
	if q.CollegeID != "" {
		id := uuid.MustParse(q.CollegeID)
		filter.CollegeID = &id
	}

	return filter
}

// ReportFilterQuery selects the filtered report. Type defaults to events.
type ReportFilterQuery struct {
	CollegeID string `form:"college_id"`
	EventType string `form:"event_type"`
	Type      string `form:"type"`
}

func (q *ReportFilterQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.CollegeID, uuidRule),
		validation.Field(&q.EventType, eventTypeRule),
		validation.Field(&q.Type, validation.In(domain.ReportTypeEvents).Error("invalid report type")),
	)
}

func (q *ReportFilterQuery) ReportType() string {
	if q.Type == "" {
		return domain.ReportTypeEvents
	}

	return q.Type
}

func (q *ReportFilterQuery) ToDomain() domain.EventFilter {
	filter := domain.EventFilter{Type: domain.EventType(q.EventType)}
	if q.CollegeID != "" {
		id := uuid.MustParse(q.CollegeID)
		filter.CollegeID = &id
	}

	return filter
}
