package dao

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yizeng/campus-events/internal/domain"
)

const testTimeout = 10 * time.Second

// testDB stays nil when Docker is unavailable or -short is set; tests then skip.
var testDB *gorm.DB

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	pool, err := dockertest.NewPool("")
	if err == nil {
		err = pool.Client.Ping()
	}
	if err != nil {
		log.Printf("docker unavailable, skipping database tests: %v", err)
		os.Exit(m.Run())
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_DB=campus_events_test",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start postgres: %v", err)
	}
	_ = resource.Expire(120)

	dsn := fmt.Sprintf(
		"host=localhost port=%s user=postgres password=postgres dbname=campus_events_test sslmode=disable",
		resource.GetPort("5432/tcp"),
	)

	pool.MaxWait = time.Minute
	if err = pool.Retry(func() error {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err = sqlDB.Ping(); err != nil {
			return err
		}
		testDB = db
		return nil
	}); err != nil {
		_ = pool.Purge(resource)
		log.Fatalf("could not connect to postgres: %v", err)
	}

	if err = dropAllTables(testDB); err != nil {
		log.Fatalf("dropAllTables: %v", err)
	}
	if err = InitTables(testDB); err != nil {
		log.Fatalf("InitTables: %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Printf("could not purge postgres: %v", err)
	}

	os.Exit(code)
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testDB == nil {
		t.Skip("postgres container not available")
	}
	require.NoError(t, ClearData(testDB))

	return testDB
}

type fixture struct {
	t       *testing.T
	ctx     context.Context
	college College
}

func newFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()

	ctx := context.Background()
	college, err := NewCollegeDAO(db, testTimeout).Insert(ctx, College{Name: "Test University", Code: "TU"})
	require.NoError(t, err)

	return &fixture{t: t, ctx: ctx, college: college}
}

func (f *fixture) event(db *gorm.DB, capacity *int) Event {
	f.t.Helper()

	start := time.Now().UTC().Add(48 * time.Hour)
	event, err := NewEventDAO(db, testTimeout).Insert(f.ctx, Event{
		CollegeID:     f.college.ID,
		Title:         "Intro to Go",
		EventType:     string(domain.EventTypeWorkshop),
		StartDatetime: start,
		EndDatetime:   start.Add(2 * time.Hour),
		MaxCapacity:   capacity,
	})
	require.NoError(f.t, err)

	return event
}

func (f *fixture) students(db *gorm.DB, n int) []Student {
	f.t.Helper()

	studentDAO := NewStudentDAO(db, testTimeout)
	students := make([]Student, 0, n)
	for i := 0; i < n; i++ {
		s, err := studentDAO.Insert(f.ctx, Student{
			CollegeID:     f.college.ID,
			Email:         fmt.Sprintf("student%d@tu.edu", i),
			Name:          fmt.Sprintf("Student %d", i),
			StudentNumber: fmt.Sprintf("TU%03d", i),
		})
		require.NoError(f.t, err)
		students = append(students, s)
	}

	return students
}

func admitAll(AdmissionSnapshot) error {
	return nil
}

func capacityDecider(snap AdmissionSnapshot) error {
	if snap.AlreadyRegistered {
		return ErrDuplicateRegistration
	}
	if snap.Event.MaxCapacity != nil && snap.RegisteredCount >= *snap.Event.MaxCapacity {
		return domain.ErrCapacityExceeded
	}

	return nil
}

func TestRegistrationDAO_Admit(t *testing.T) {
	db := setupDB(t)
	f := newFixture(t, db)
	regDAO := NewRegistrationDAO(db, testTimeout)
	now := time.Now().UTC()

	t.Run("partial unique index frees the pair after cancel", func(t *testing.T) {
		event := f.event(db, nil)
		student := f.students(db, 1)[0]

		first, err := regDAO.Admit(f.ctx, event.ID, student.ID, now, admitAll)
		require.NoError(t, err)

		_, err = regDAO.Admit(f.ctx, event.ID, student.ID, now, admitAll)
		assert.ErrorIs(t, err, ErrDuplicateRegistration)

		_, err = regDAO.Cancel(f.ctx, first.ID, "sick", now)
		require.NoError(t, err)

		second, err := regDAO.Admit(f.ctx, event.ID, student.ID, now, admitAll)
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("unknown event and student", func(t *testing.T) {
		require.NoError(t, ClearData(db))
		f = newFixture(t, db)
		event := f.event(db, nil)
		student := f.students(db, 1)[0]

		_, err := regDAO.Admit(f.ctx, uuid.New(), student.ID, now, admitAll)
		assert.ErrorIs(t, err, ErrEventNotFound)

		_, err = regDAO.Admit(f.ctx, event.ID, uuid.New(), now, admitAll)
		assert.ErrorIs(t, err, ErrStudentNotFound)

		require.NoError(t, NewStudentDAO(db, testTimeout).Deactivate(f.ctx, student.ID, now))
		_, err = regDAO.Admit(f.ctx, event.ID, student.ID, now, admitAll)
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})

	t.Run("decider rejection writes nothing", func(t *testing.T) {
		require.NoError(t, ClearData(db))
		f = newFixture(t, db)
		event := f.event(db, nil)
		student := f.students(db, 1)[0]

		_, err := regDAO.Admit(f.ctx, event.ID, student.ID, now, func(AdmissionSnapshot) error {
			return domain.ErrDeadlinePassed
		})
		assert.ErrorIs(t, err, domain.ErrDeadlinePassed)

		var count int64
		require.NoError(t, db.Model(&Registration{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestRegistrationDAO_Admit_Concurrent(t *testing.T) {
	db := setupDB(t)
	f := newFixture(t, db)
	regDAO := NewRegistrationDAO(db, testTimeout)

	const capacity, attempts = 5, 20
	c := capacity
	event := f.event(db, &c)
	students := f.students(db, attempts)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		admitted  int
		rejected  int
		unexpects []error
	)
	for _, s := range students {
		wg.Add(1)
		go func(studentID uuid.UUID) {
			defer wg.Done()

			_, err := regDAO.Admit(f.ctx, event.ID, studentID, time.Now().UTC(), capacityDecider)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				admitted++
			case errors.Is(err, domain.ErrCapacityExceeded):
				rejected++
			default:
				unexpects = append(unexpects, err)
			}
		}(s.ID)
	}
	wg.Wait()

	assert.Empty(t, unexpects)
	assert.Equal(t, capacity, admitted)
	assert.Equal(t, attempts-capacity, rejected)

	var count int64
	require.NoError(t, db.Model(&Registration{}).
		Where("event_id = ? AND status = ?", event.ID, string(domain.RegistrationRegistered)).
		Count(&count).Error)
	assert.EqualValues(t, capacity, count)
}

func TestRegistrationDAO_Cancel(t *testing.T) {
	db := setupDB(t)
	f := newFixture(t, db)
	regDAO := NewRegistrationDAO(db, testTimeout)
	now := time.Now().UTC()

	event := f.event(db, nil)
	student := f.students(db, 1)[0]
	reg, err := regDAO.Admit(f.ctx, event.ID, student.ID, now, admitAll)
	require.NoError(t, err)

	cancelled, err := regDAO.Cancel(f.ctx, reg.ID, "Schedule conflict", now)
	require.NoError(t, err)
	assert.Equal(t, string(domain.RegistrationCancelled), cancelled.Status)
	assert.Equal(t, "Schedule conflict", cancelled.CancellationReason)
	require.NotNil(t, cancelled.CancelledAt)

	_, err = regDAO.Cancel(f.ctx, reg.ID, "again", now)
	assert.ErrorIs(t, err, ErrRegistrationNotFound)

	_, err = regDAO.Cancel(f.ctx, uuid.New(), "", now)
	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}

func TestAttendanceDAO(t *testing.T) {
	db := setupDB(t)
	f := newFixture(t, db)
	regDAO := NewRegistrationDAO(db, testTimeout)
	attDAO := NewAttendanceDAO(db, testTimeout)
	now := time.Now().UTC()

	event := f.event(db, nil)
	students := f.students(db, 5)

	var attendance []Attendance
	for _, s := range students[:4] {
		reg, err := regDAO.Admit(f.ctx, event.ID, s.ID, now, admitAll)
		require.NoError(t, err)

		att, err := attDAO.Insert(f.ctx, reg.ID, string(domain.CheckInQRCode), now)
		require.NoError(t, err)
		attendance = append(attendance, att)

		if s.ID == students[0].ID {
			_, err = attDAO.Insert(f.ctx, reg.ID, string(domain.CheckInManual), now)
			assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
		}
	}

	t.Run("cancelled registration cannot check in", func(t *testing.T) {
		reg, err := regDAO.Admit(f.ctx, event.ID, students[4].ID, now, admitAll)
		require.NoError(t, err)
		_, err = regDAO.Cancel(f.ctx, reg.ID, "", now)
		require.NoError(t, err)

		_, err = attDAO.Insert(f.ctx, reg.ID, string(domain.CheckInManual), now)
		assert.ErrorIs(t, err, ErrRegistrationNotFound)
	})

	t.Run("feedback is overwritten", func(t *testing.T) {
		first, second := "ok", "better than expected"
		_, err := attDAO.UpdateFeedback(f.ctx, attendance[0].ID, 3, &first, now)
		require.NoError(t, err)

		updated, err := attDAO.UpdateFeedback(f.ctx, attendance[0].ID, 5, &second, now)
		require.NoError(t, err)
		require.NotNil(t, updated.FeedbackRating)
		assert.Equal(t, 5, *updated.FeedbackRating)
		assert.Equal(t, second, *updated.FeedbackComment)
	})

	t.Run("rating outside the check constraint", func(t *testing.T) {
		_, err := attDAO.UpdateFeedback(f.ctx, attendance[1].ID, 6, nil, now)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})

	t.Run("unknown attendance", func(t *testing.T) {
		_, err := attDAO.UpdateFeedback(f.ctx, uuid.New(), 4, nil, now)
		assert.ErrorIs(t, err, ErrAttendanceNotFound)
	})

	t.Run("stats average ignores missing ratings", func(t *testing.T) {
		_, err := attDAO.UpdateFeedback(f.ctx, attendance[1].ID, 4, nil, now)
		require.NoError(t, err)
		_, err = attDAO.UpdateFeedback(f.ctx, attendance[2].ID, 5, nil, now)
		require.NoError(t, err)

		stats, err := NewEventDAO(db, testTimeout).Stats(f.ctx, event.ID)
		require.NoError(t, err)

		assert.Equal(t, 4, stats.TotalRegistrations)
		assert.Equal(t, 1, stats.CancelledRegistrations)
		assert.Equal(t, 4, stats.TotalAttendance)
		assert.Equal(t, 3, stats.FeedbackCount)
		require.NotNil(t, stats.AvgRating)
		assert.InDelta(t, 4.67, *stats.AvgRating, 0.001)
		assert.Equal(t, 2, stats.RatingFiveCount)
		assert.Equal(t, 1, stats.RatingFourCount)
	})
}

func TestCollegeDAO_Insert_DuplicateCode(t *testing.T) {
	db := setupDB(t)
	collegeDAO := NewCollegeDAO(db, testTimeout)
	ctx := context.Background()

	_, err := collegeDAO.Insert(ctx, College{Name: "First", Code: "DUP"})
	require.NoError(t, err)

	_, err = collegeDAO.Insert(ctx, College{Name: "Second", Code: "DUP"})
	assert.ErrorIs(t, err, ErrCollegeCodeExists)
}

func TestStudentDAO_Insert_Conflicts(t *testing.T) {
	db := setupDB(t)
	f := newFixture(t, db)
	studentDAO := NewStudentDAO(db, testTimeout)

	_, err := studentDAO.Insert(f.ctx, Student{CollegeID: f.college.ID, Email: "a@tu.edu", Name: "A", StudentNumber: "TU1"})
	require.NoError(t, err)

	_, err = studentDAO.Insert(f.ctx, Student{CollegeID: f.college.ID, Email: "a@tu.edu", Name: "B", StudentNumber: "TU2"})
	assert.ErrorIs(t, err, ErrStudentEmailExists)

	_, err = studentDAO.Insert(f.ctx, Student{CollegeID: f.college.ID, Email: "c@tu.edu", Name: "C", StudentNumber: "TU1"})
	assert.ErrorIs(t, err, ErrStudentNumberExists)

	_, err = studentDAO.Insert(f.ctx, Student{CollegeID: uuid.New(), Email: "d@tu.edu", Name: "D", StudentNumber: "X1"})
	assert.ErrorIs(t, err, ErrCollegeNotFound)
}

func TestStudentDAO_Search_Wildcards(t *testing.T) {
	db := setupDB(t)
	f := newFixture(t, db)
	f.students(db, 3)
	studentDAO := NewStudentDAO(db, testTimeout)

	found, err := studentDAO.Search(f.ctx, "_", 10)
	require.NoError(t, err)
	assert.Empty(t, found)

	found, err = studentDAO.Search(f.ctx, "%", 10)
	require.NoError(t, err)
	assert.Empty(t, found)

	found, err = studentDAO.Search(f.ctx, "student1@", 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Student 1", found[0].Name)
}

func TestStudentDAO_FindActiveByEmail(t *testing.T) {
	db := setupDB(t)
	f := newFixture(t, db)
	students := f.students(db, 2)
	studentDAO := NewStudentDAO(db, testTimeout)

	found, err := studentDAO.FindActiveByEmail(f.ctx, "student0@tu.edu")
	require.NoError(t, err)
	assert.Equal(t, students[0].ID, found.ID)
	assert.Equal(t, "Test University", found.CollegeName)
	assert.Equal(t, "TU", found.CollegeCode)

	require.NoError(t, studentDAO.Deactivate(f.ctx, students[1].ID, time.Now()))
	_, err = studentDAO.FindActiveByEmail(f.ctx, "student1@tu.edu")
	assert.ErrorIs(t, err, ErrStudentNotFound)

	_, err = studentDAO.FindActiveByEmail(f.ctx, "nobody@tu.edu")
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestReportDAO_FilteredEvents(t *testing.T) {
	db := setupDB(t)
	f := newFixture(t, db)
	event := f.event(db, nil)
	students := f.students(db, 2)
	regDAO := NewRegistrationDAO(db, testTimeout)
	reportDAO := NewReportDAO(db, testTimeout)
	now := time.Now().UTC()

	_, err := regDAO.Admit(f.ctx, event.ID, students[0].ID, now, admitAll)
	require.NoError(t, err)
	cancelled, err := regDAO.Admit(f.ctx, event.ID, students[1].ID, now, admitAll)
	require.NoError(t, err)
	_, err = regDAO.Cancel(f.ctx, cancelled.ID, "sick", now)
	require.NoError(t, err)

	rows, err := reportDAO.FilteredEvents(f.ctx, EventFilter{CollegeID: &f.college.ID, EventType: string(domain.EventTypeWorkshop)})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, event.ID, rows[0].EventID)
	assert.Equal(t, "Intro to Go", rows[0].EventName)
	assert.Equal(t, "Test University", rows[0].CollegeName)
	assert.Equal(t, 1, rows[0].Registrations)
	assert.Equal(t, 0, rows[0].Attendance)
	assert.Nil(t, rows[0].AvgRating)

	rows, err = reportDAO.FilteredEvents(f.ctx, EventFilter{EventType: string(domain.EventTypeHackathon)})
	require.NoError(t, err)
	assert.Empty(t, rows)

	other := uuid.New()
	rows, err = reportDAO.FilteredEvents(f.ctx, EventFilter{CollegeID: &other})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
