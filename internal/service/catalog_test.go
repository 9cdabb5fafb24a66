package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yizeng/campus-events/internal/domain"
)

func TestEventService(t *testing.T) {
	ctx := context.Background()

	t.Run("create defaults", func(t *testing.T) {
		repo := &fakeEventRepo{}
		svc := NewEventService(repo)

		created, err := svc.CreateEvent(ctx, domain.Event{Title: "  Go Workshop "})
		require.NoError(t, err)
		assert.Equal(t, "Go Workshop", created.Title)
		assert.Equal(t, "System", created.CreatedBy)
		assert.Equal(t, domain.EventStatusActive, created.Status)
	})

	t.Run("list defaults to active", func(t *testing.T) {
		repo := &fakeEventRepo{}
		svc := NewEventService(repo)

		_, err := svc.ListEvents(ctx, domain.EventFilter{Type: domain.EventTypeFest})
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusActive, repo.lastFilter.Status)
		assert.Equal(t, domain.EventTypeFest, repo.lastFilter.Type)

		_, err = svc.ListEvents(ctx, domain.EventFilter{Status: domain.EventStatusCancelled})
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusCancelled, repo.lastFilter.Status)
	})

	t.Run("stats are derived", func(t *testing.T) {
		repo := &fakeEventRepo{stats: domain.EventStats{
			StartAt:            testNow.Add(-time.Hour),
			EndAt:              testNow.Add(time.Hour),
			TotalRegistrations: 4,
			TotalAttendance:    3,
			FeedbackCount:      3,
		}}
		svc := NewEventService(repo)
		svc.now = func() time.Time { return testNow }

		stats, err := svc.GetEventStats(ctx, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, 75.0, stats.AttendancePercentage)
		assert.Equal(t, 100.0, stats.FeedbackResponseRate)
		assert.Equal(t, "ongoing", stats.Phase)
		assert.Nil(t, stats.CapacityUtilization)
	})

	t.Run("errors keep their kind", func(t *testing.T) {
		repo := &fakeEventRepo{err: domain.ErrCapacityBelowRegistered}
		svc := NewEventService(repo)

		_, err := svc.UpdateEvent(ctx, domain.Event{ID: uuid.New(), MaxCapacity: intPtr(1)})
		assert.ErrorIs(t, err, domain.ErrCapacityBelowRegistered)
		assert.Equal(t, domain.KindBusinessRule, domain.KindOf(err))
	})
}

func TestCollegeService(t *testing.T) {
	ctx := context.Background()
	known := uuid.New()
	repo := &fakeCollegeRepo{known: map[uuid.UUID]bool{known: true}}
	events := &fakeEventRepo{}
	svc := NewCollegeService(repo, events)

	created, err := svc.CreateCollege(ctx, domain.College{Name: " Tech Institute ", Code: "ti01"})
	require.NoError(t, err)
	assert.Equal(t, "TI01", created.Code)
	assert.Equal(t, "Tech Institute", created.Name)

	_, err = svc.ListCollegeEvents(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrCollegeNotFound)

	_, err = svc.ListCollegeEvents(ctx, known)
	require.NoError(t, err)
	require.NotNil(t, events.lastFilter.CollegeID)
	assert.Equal(t, known, *events.lastFilter.CollegeID)
	assert.Equal(t, domain.EventStatusActive, events.lastFilter.Status)

	_, err = svc.GetCollege(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrCollegeNotFound)
}

func TestStudentService(t *testing.T) {
	ctx := context.Background()
	known := uuid.New()
	repo := &fakeStudentRepo{known: map[uuid.UUID]bool{known: true}}
	svc := NewStudentService(repo)

	created, err := svc.CreateStudent(ctx, domain.Student{Email: " Ada.Lovelace@Example.COM ", Name: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "ada.lovelace@example.com", created.Email)

	_, err = svc.ListRegistrations(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrStudentNotFound)

	regs, err := svc.ListRegistrations(ctx, known)
	require.NoError(t, err)
	assert.Empty(t, regs)

	require.NoError(t, svc.DeactivateStudent(ctx, known))
	assert.ErrorIs(t, svc.DeactivateStudent(ctx, known), domain.ErrStudentNotFound)
}

func TestReportService_TopActiveStudents(t *testing.T) {
	ctx := context.Background()
	repo := &fakeReportRepo{}
	svc := NewReportService(repo)

	tests := []struct {
		in   int
		want int
	}{
		{0, 3},
		{-2, 3},
		{10, 10},
		{500, 50},
	}
	for _, tt := range tests {
		_, err := svc.TopActiveStudents(ctx, tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, repo.lastLimit, "limit=%d", tt.in)
	}
}

func TestStudentService_FindByEmail(t *testing.T) {
	ctx := context.Background()
	repo := &fakeStudentRepo{}
	svc := NewStudentService(repo)

	_, err := svc.CreateStudent(ctx, domain.Student{Email: "grace@tu.edu", Name: "Grace"})
	require.NoError(t, err)

	found, err := svc.FindByEmail(ctx, "  Grace@TU.edu ")
	require.NoError(t, err)
	assert.Equal(t, "grace@tu.edu", found.Email)
	assert.Equal(t, "TU", found.CollegeCode)

	_, err = svc.FindByEmail(ctx, "other@tu.edu")
	assert.ErrorIs(t, err, domain.ErrStudentNotFound)

	_, err = svc.FindByEmail(ctx, "   ")
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestReportService_FilteredReport(t *testing.T) {
	ctx := context.Background()
	repo := &fakeReportRepo{}
	svc := NewReportService(repo)
	collegeID := uuid.New()
	filter := domain.EventFilter{CollegeID: &collegeID, Type: domain.EventTypeHackathon}

	report, err := svc.FilteredReport(ctx, "", filter)
	require.NoError(t, err)
	assert.NotNil(t, report)
	require.NotNil(t, repo.lastFilter)
	assert.Equal(t, filter, *repo.lastFilter)

	repo.lastFilter = nil
	_, err = svc.FilteredReport(ctx, "students", filter)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	assert.Nil(t, repo.lastFilter)
}
