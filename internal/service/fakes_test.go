package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yizeng/campus-events/internal/domain"
)

// fakeRegistrationRepo serialises Admit with a mutex, the way the row lock on
// the event serialises admissions in Postgres.
type fakeRegistrationRepo struct {
	mu            sync.Mutex
	events        map[uuid.UUID]domain.Event
	students      map[uuid.UUID]bool
	registrations map[uuid.UUID]*domain.Registration
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{
		events:        map[uuid.UUID]domain.Event{},
		students:      map[uuid.UUID]bool{},
		registrations: map[uuid.UUID]*domain.Registration{},
	}
}

func (f *fakeRegistrationRepo) addEvent(e domain.Event) domain.Event {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Status == "" {
		e.Status = domain.EventStatusActive
	}
	f.events[e.ID] = e

	return e
}

func (f *fakeRegistrationRepo) addStudent() uuid.UUID {
	id := uuid.New()
	f.students[id] = true

	return id
}

func (f *fakeRegistrationRepo) registeredCount(eventID uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, r := range f.registrations {
		if r.EventID == eventID && r.Status == domain.RegistrationRegistered {
			n++
		}
	}

	return n
}

func (f *fakeRegistrationRepo) Admit(
	_ context.Context,
	eventID, studentID uuid.UUID,
	now time.Time,
	decide domain.AdmissionDecider,
) (domain.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	event, ok := f.events[eventID]
	if !ok {
		return domain.Registration{}, domain.ErrEventNotFound
	}
	if !f.students[studentID] {
		return domain.Registration{}, domain.ErrStudentNotFound
	}

	snap := domain.AdmissionSnapshot{Event: event}
	for _, r := range f.registrations {
		if r.EventID != eventID || r.Status != domain.RegistrationRegistered {
			continue
		}
		snap.RegisteredCount++
		if r.StudentID == studentID {
			snap.AlreadyRegistered = true
		}
	}

	if err := decide(snap); err != nil {
		return domain.Registration{}, err
	}

	reg := &domain.Registration{
		ID:           uuid.New(),
		EventID:      eventID,
		StudentID:    studentID,
		Status:       domain.RegistrationRegistered,
		RegisteredAt: now,
	}
	f.registrations[reg.ID] = reg

	return *reg, nil
}

func (f *fakeRegistrationRepo) Cancel(_ context.Context, id uuid.UUID, reason string, now time.Time) (domain.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	reg, ok := f.registrations[id]
	if !ok || reg.Status != domain.RegistrationRegistered {
		return domain.Registration{}, domain.ErrRegistrationNotFound
	}
	reg.Status = domain.RegistrationCancelled
	reg.CancelledAt = &now
	reg.CancellationReason = reason

	return *reg, nil
}

func (f *fakeRegistrationRepo) Search(context.Context, string, int) ([]domain.RegistrationSearchResult, error) {
	return nil, nil
}

type fakeAttendanceRepo struct {
	mu             sync.Mutex
	registered     map[uuid.UUID]bool
	byRegistration map[uuid.UUID]uuid.UUID
	attendance     map[uuid.UUID]*domain.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		registered:     map[uuid.UUID]bool{},
		byRegistration: map[uuid.UUID]uuid.UUID{},
		attendance:     map[uuid.UUID]*domain.Attendance{},
	}
}

func (f *fakeAttendanceRepo) Create(
	_ context.Context,
	registrationID uuid.UUID,
	method domain.CheckInMethod,
	now time.Time,
) (domain.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.registered[registrationID] {
		return domain.Attendance{}, domain.ErrRegistrationNotFound
	}
	if _, ok := f.byRegistration[registrationID]; ok {
		return domain.Attendance{}, domain.ErrAlreadyCheckedIn
	}

	a := &domain.Attendance{
		ID:             uuid.New(),
		RegistrationID: registrationID,
		CheckedInAt:    now,
		Method:         method,
	}
	f.attendance[a.ID] = a
	f.byRegistration[registrationID] = a.ID

	return *a, nil
}

func (f *fakeAttendanceRepo) SaveFeedback(_ context.Context, attendanceID uuid.UUID, feedback domain.Feedback) (domain.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.attendance[attendanceID]
	if !ok {
		return domain.Attendance{}, domain.ErrAttendanceNotFound
	}

	rating := feedback.Rating.Int()
	comment := feedback.Comment
	submitted := feedback.SubmittedAt
	a.FeedbackRating = &rating
	a.FeedbackComment = &comment
	a.FeedbackSubmittedAt = &submitted

	return *a, nil
}

type fakeEventRepo struct {
	lastFilter domain.EventFilter
	created    domain.Event
	stats      domain.EventStats
	err        error
}

func (f *fakeEventRepo) Create(_ context.Context, event domain.Event) (domain.Event, error) {
	event.ID = uuid.New()
	f.created = event

	return event, f.err
}

func (f *fakeEventRepo) FindAll(_ context.Context, filter domain.EventFilter) ([]domain.EventDetail, error) {
	f.lastFilter = filter

	return []domain.EventDetail{}, f.err
}

func (f *fakeEventRepo) FindByID(context.Context, uuid.UUID) (domain.EventDetail, error) {
	return domain.EventDetail{}, f.err
}

func (f *fakeEventRepo) Update(_ context.Context, event domain.Event) (domain.Event, error) {
	return event, f.err
}

func (f *fakeEventRepo) Cancel(_ context.Context, id uuid.UUID, _ time.Time) (domain.Event, error) {
	return domain.Event{ID: id, Status: domain.EventStatusCancelled}, f.err
}

func (f *fakeEventRepo) Stats(context.Context, uuid.UUID) (domain.EventStats, error) {
	return f.stats, f.err
}

type fakeCollegeRepo struct {
	known   map[uuid.UUID]bool
	created domain.College
}

func (f *fakeCollegeRepo) Create(_ context.Context, college domain.College) (domain.College, error) {
	college.ID = uuid.New()
	f.created = college

	return college, nil
}

func (f *fakeCollegeRepo) FindAll(context.Context, time.Time) ([]domain.CollegeSummary, error) {
	return nil, nil
}

func (f *fakeCollegeRepo) FindByID(_ context.Context, id uuid.UUID, _ time.Time) (domain.CollegeSummary, error) {
	if !f.known[id] {
		return domain.CollegeSummary{}, domain.ErrCollegeNotFound
	}

	return domain.CollegeSummary{College: domain.College{ID: id}}, nil
}

func (f *fakeCollegeRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.known[id], nil
}

type fakeStudentRepo struct {
	known   map[uuid.UUID]bool
	created domain.Student
}

func (f *fakeStudentRepo) Create(_ context.Context, student domain.Student) (domain.Student, error) {
	student.ID = uuid.New()
	student.IsActive = true
	f.created = student

	return student, nil
}

func (f *fakeStudentRepo) FindByID(_ context.Context, id uuid.UUID) (domain.Student, error) {
	if !f.known[id] {
		return domain.Student{}, domain.ErrStudentNotFound
	}

	return domain.Student{ID: id, IsActive: true}, nil
}

func (f *fakeStudentRepo) FindAll(context.Context, *uuid.UUID) ([]domain.StudentWithCollege, error) {
	return nil, nil
}

func (f *fakeStudentRepo) Search(context.Context, string, int) ([]domain.StudentWithCollege, error) {
	return nil, nil
}

func (f *fakeStudentRepo) FindActiveByEmail(_ context.Context, email string) (domain.StudentWithCollege, error) {
	if email != f.created.Email {
		return domain.StudentWithCollege{}, domain.ErrStudentNotFound
	}

	return domain.StudentWithCollege{Student: f.created, CollegeName: "Test University", CollegeCode: "TU"}, nil
}

func (f *fakeStudentRepo) Deactivate(_ context.Context, id uuid.UUID, _ time.Time) error {
	if !f.known[id] {
		return domain.ErrStudentNotFound
	}
	delete(f.known, id)

	return nil
}

func (f *fakeStudentRepo) FindRegistrations(context.Context, uuid.UUID) ([]domain.StudentRegistration, error) {
	return []domain.StudentRegistration{}, nil
}

func (f *fakeStudentRepo) FindAvailableEvents(context.Context, uuid.UUID, time.Time) ([]domain.AvailableEvent, error) {
	return []domain.AvailableEvent{}, nil
}

func (f *fakeStudentRepo) FindPendingFeedback(context.Context, uuid.UUID, time.Time) ([]domain.PendingFeedback, error) {
	return []domain.PendingFeedback{}, nil
}

type fakeReportRepo struct {
	lastLimit  int
	lastFilter *domain.EventFilter
}

func (f *fakeReportRepo) EventPopularity(context.Context) ([]domain.EventPopularity, error) {
	return nil, nil
}

func (f *fakeReportRepo) StudentParticipation(context.Context) ([]domain.StudentParticipation, error) {
	return nil, nil
}

func (f *fakeReportRepo) CollegePerformance(context.Context) ([]domain.CollegePerformance, error) {
	return nil, nil
}

func (f *fakeReportRepo) SystemOverview(context.Context, time.Time) (domain.SystemOverview, error) {
	return domain.SystemOverview{}, nil
}

func (f *fakeReportRepo) EventTypeAnalytics(context.Context) ([]domain.EventTypeAnalytics, error) {
	return nil, nil
}

func (f *fakeReportRepo) TopActiveStudents(_ context.Context, limit int) ([]domain.ActiveStudent, error) {
	f.lastLimit = limit

	return nil, nil
}

func intPtr(v int) *int {
	return &v
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func (f *fakeReportRepo) FilteredEvents(_ context.Context, filter domain.EventFilter) ([]domain.FilteredEventReport, error) {
	f.lastFilter = &filter

	return []domain.FilteredEventReport{}, nil
}
