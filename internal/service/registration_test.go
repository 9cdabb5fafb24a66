package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yizeng/campus-events/internal/domain"
)

var testNow = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

func newTestRegistrationService() (*RegistrationService, *fakeRegistrationRepo) {
	repo := newFakeRegistrationRepo()
	svc := NewRegistrationService(repo)
	svc.now = func() time.Time { return testNow }

	return svc, repo
}

func TestDecideAdmission(t *testing.T) {
	active := domain.Event{Status: domain.EventStatusActive}

	withDeadline := func(e domain.Event, d time.Time) domain.Event {
		e.RegistrationDeadline = &d
		return e
	}
	withCapacity := func(e domain.Event, c int) domain.Event {
		e.MaxCapacity = &c
		return e
	}

	tests := []struct {
		name    string
		snap    domain.AdmissionSnapshot
		wantErr error
	}{
		{
			name: "open event",
			snap: domain.AdmissionSnapshot{Event: active},
		},
		{
			name:    "cancelled event",
			snap:    domain.AdmissionSnapshot{Event: domain.Event{Status: domain.EventStatusCancelled}},
			wantErr: domain.ErrEventInactive,
		},
		{
			name: "deadline equal to now is admissible",
			snap: domain.AdmissionSnapshot{Event: withDeadline(active, testNow)},
		},
		{
			name:    "deadline one nanosecond ago",
			snap:    domain.AdmissionSnapshot{Event: withDeadline(active, testNow.Add(-time.Nanosecond))},
			wantErr: domain.ErrDeadlinePassed,
		},
		{
			name: "one slot left",
			snap: domain.AdmissionSnapshot{Event: withCapacity(active, 3), RegisteredCount: 2},
		},
		{
			name:    "full",
			snap:    domain.AdmissionSnapshot{Event: withCapacity(active, 3), RegisteredCount: 3},
			wantErr: domain.ErrCapacityExceeded,
		},
		{
			name:    "already registered",
			snap:    domain.AdmissionSnapshot{Event: active, RegisteredCount: 1, AlreadyRegistered: true},
			wantErr: domain.ErrDuplicateRegistration,
		},
		{
			name: "status is checked before deadline",
			snap: domain.AdmissionSnapshot{Event: withDeadline(
				domain.Event{Status: domain.EventStatusCancelled}, testNow.Add(-time.Hour),
			)},
			wantErr: domain.ErrEventInactive,
		},
		{
			name: "deadline is checked before capacity",
			snap: domain.AdmissionSnapshot{
				Event:           withCapacity(withDeadline(active, testNow.Add(-time.Hour)), 1),
				RegisteredCount: 1,
			},
			wantErr: domain.ErrDeadlinePassed,
		},
		{
			name: "capacity is checked before duplicate",
			snap: domain.AdmissionSnapshot{
				Event:             withCapacity(active, 1),
				RegisteredCount:   1,
				AlreadyRegistered: true,
			},
			wantErr: domain.ErrCapacityExceeded,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := decideAdmission(tt.snap, testNow)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistrationService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown event", func(t *testing.T) {
		svc, repo := newTestRegistrationService()
		student := repo.addStudent()

		_, err := svc.Register(ctx, uuid.New(), student)
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})

	t.Run("stamps the server time", func(t *testing.T) {
		svc, repo := newTestRegistrationService()
		event := repo.addEvent(domain.Event{})
		student := repo.addStudent()

		reg, err := svc.Register(ctx, event.ID, student)
		require.NoError(t, err)
		assert.Equal(t, testNow, reg.RegisteredAt)
		assert.Equal(t, domain.RegistrationRegistered, reg.Status)
	})

	t.Run("rejection writes nothing", func(t *testing.T) {
		svc, repo := newTestRegistrationService()
		event := repo.addEvent(domain.Event{RegistrationDeadline: timePtr(testNow.Add(-time.Minute))})
		student := repo.addStudent()

		_, err := svc.Register(ctx, event.ID, student)
		assert.ErrorIs(t, err, domain.ErrDeadlinePassed)
		assert.Equal(t, 0, repo.registeredCount(event.ID))
	})

	t.Run("second registration of the same pair", func(t *testing.T) {
		svc, repo := newTestRegistrationService()
		event := repo.addEvent(domain.Event{})
		student := repo.addStudent()

		_, err := svc.Register(ctx, event.ID, student)
		require.NoError(t, err)

		_, err = svc.Register(ctx, event.ID, student)
		assert.ErrorIs(t, err, domain.ErrDuplicateRegistration)
		assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	})

	t.Run("re-registering after cancel creates a new registration", func(t *testing.T) {
		svc, repo := newTestRegistrationService()
		event := repo.addEvent(domain.Event{})
		student := repo.addStudent()

		first, err := svc.Register(ctx, event.ID, student)
		require.NoError(t, err)
		_, err = svc.Cancel(ctx, first.ID, "")
		require.NoError(t, err)

		second, err := svc.Register(ctx, event.ID, student)
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, 1, repo.registeredCount(event.ID))
	})
}

func TestRegistrationService_CapacityScenario(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestRegistrationService()
	event := repo.addEvent(domain.Event{
		MaxCapacity:          intPtr(2),
		RegistrationDeadline: timePtr(testNow.Add(time.Hour)),
	})
	a, b, c := repo.addStudent(), repo.addStudent(), repo.addStudent()

	regA, err := svc.Register(ctx, event.ID, a)
	require.NoError(t, err)
	_, err = svc.Register(ctx, event.ID, b)
	require.NoError(t, err)

	_, err = svc.Register(ctx, event.ID, c)
	require.ErrorIs(t, err, domain.ErrCapacityExceeded)

	_, err = svc.Cancel(ctx, regA.ID, "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, event.ID, c)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.registeredCount(event.ID))
}

func TestRegistrationService_ConcurrentAdmissions(t *testing.T) {
	const (
		capacity = 5
		attempts = 40
	)

	ctx := context.Background()
	svc, repo := newTestRegistrationService()
	event := repo.addEvent(domain.Event{MaxCapacity: intPtr(capacity)})

	students := make([]uuid.UUID, attempts)
	for i := range students {
		students[i] = repo.addStudent()
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for _, student := range students {
		wg.Add(1)
		go func(student uuid.UUID) {
			defer wg.Done()

			_, err := svc.Register(ctx, event.ID, student)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrCapacityExceeded), errors.Is(err, domain.ErrDuplicateRegistration):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(student)
	}
	wg.Wait()

	assert.Equal(t, capacity, succeeded)
	assert.Equal(t, attempts-capacity, rejected)
	assert.Equal(t, capacity, repo.registeredCount(event.ID))
}

func TestRegistrationService_Cancel(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestRegistrationService()
	event := repo.addEvent(domain.Event{})
	student := repo.addStudent()

	reg, err := svc.Register(ctx, event.ID, student)
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, reg.ID, "  ")
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationCancelled, cancelled.Status)
	assert.Equal(t, domain.DefaultCancellationReason, cancelled.CancellationReason)
	require.NotNil(t, cancelled.CancelledAt)
	assert.Equal(t, testNow, *cancelled.CancelledAt)

	_, err = svc.Cancel(ctx, reg.ID, "again")
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)

	_, err = svc.Cancel(ctx, uuid.New(), "")
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}
