// Command seed fills the database with sample colleges, students, events and activity.
// Everything goes through the service layer so the same admission rules apply.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"go.uber.org/zap"

	"github.com/yizeng/campus-events/cmd/app"
	"github.com/yizeng/campus-events/internal/config"
	"github.com/yizeng/campus-events/internal/domain"
	"github.com/yizeng/campus-events/internal/logger"
	"github.com/yizeng/campus-events/internal/repository"
	"github.com/yizeng/campus-events/internal/repository/dao"
	"github.com/yizeng/campus-events/internal/service"
)

type sampleEvent struct {
	title       string
	eventType   domain.EventType
	description string
	location    string
	capacity    int
	hours       int
}

var (
	colleges = []domain.College{
		{Name: "Massachusetts Institute of Technology", Code: "MIT", Address: "77 Massachusetts Ave", City: "Cambridge", State: "MA", ContactEmail: "events@mit.edu", Phone: "+1-617-253-1000"},
		{Name: "Stanford University", Code: "STAN", Address: "450 Serra Mall", City: "Stanford", State: "CA", ContactEmail: "events@stanford.edu", Phone: "+1-650-723-2300"},
		{Name: "University of California Berkeley", Code: "UCB", Address: "110 Sproul Hall", City: "Berkeley", State: "CA", ContactEmail: "events@berkeley.edu", Phone: "+1-510-642-6000"},
		{Name: "Carnegie Mellon University", Code: "CMU", Address: "5000 Forbes Ave", City: "Pittsburgh", State: "PA", ContactEmail: "events@cmu.edu", Phone: "+1-412-268-2000"},
		{Name: "Georgia Institute of Technology", Code: "GT", Address: "North Ave NW", City: "Atlanta", State: "GA", ContactEmail: "events@gatech.edu", Phone: "+1-404-894-2000"},
	}

	firstNames  = []string{"Alex", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Avery", "Quinn", "Jamie", "Drew", "Cameron", "Reese"}
	lastNames   = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Martinez", "Lee", "Walker", "Young"}
	departments = []string{"Computer Science", "Electrical Engineering", "Mechanical Engineering", "Mathematics", "Physics", "Data Science"}

	events = []sampleEvent{
		{"Introduction to Machine Learning", domain.EventTypeWorkshop, "Hands-on session covering supervised learning basics.", "Engineering Building Room 101", 40, 3},
		{"24h Innovation Hackathon", domain.EventTypeHackathon, "Build a working prototype in 24 hours with your team.", "Student Center Main Hall", 120, 24},
		{"Cloud Native Architecture", domain.EventTypeTechTalk, "Industry speakers on running services at scale.", "Auditorium A", 200, 2},
		{"Spring Tech Fest", domain.EventTypeFest, "Demos, games and talks across the campus.", "Campus Green", 500, 8},
		{"Web Development Bootcamp", domain.EventTypeWorkshop, "From HTML to deployed web applications.", "Computer Lab 3", 30, 4},
		{"Cybersecurity Deep Dive", domain.EventTypeTechTalk, "Threat modelling and incident response in practice.", "Lecture Hall B", 150, 2},
		{"Sustainability Hackathon", domain.EventTypeHackathon, "Software for a greener campus.", "Innovation Hub", 80, 12},
		{"Data Visualization Workshop", domain.EventTypeWorkshop, "Telling stories with charts and dashboards.", "Library Seminar Room", 25, 3},
	}

	comments = []string{
		"Great event, learned a lot!",
		"Very well organized.",
		"The speakers were excellent.",
		"Could use more hands-on activities.",
		"Loved the networking opportunities.",
		"A bit too long but informative.",
		"Would definitely attend again.",
		"",
	}

	ratingWeights = []int{2, 5, 15, 35, 43}
	methods       = []domain.CheckInMethod{domain.CheckInManual, domain.CheckInQRCode, domain.CheckInRFID}
	methodWeights = []int{60, 30, 10}
)

type services struct {
	college      *service.CollegeService
	student      *service.StudentService
	event        *service.EventService
	registration *service.RegistrationService
	attendance   *service.AttendanceService
}

type summary struct {
	colleges, students, events, registrations, cancellations, attendance, feedback int
}

func main() {
	configPath := flag.String("config", "./cmd/app/config.yml", "path to the config file")
	reset := flag.Bool("reset", false, "delete existing rows before seeding")
	randSeed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	if err := run(*configPath, *reset, *randSeed); err != nil {
		panic(err)
	}
}

func run(configPath string, reset bool, randSeed int64) error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment, conf.API.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	db, err := app.OpenDB(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if reset {
		if err = dao.ClearData(db); err != nil {
			return fmt.Errorf("dao.ClearData -> %w", err)
		}
		zap.L().Info("cleared existing data")
	}

	timeout := conf.Postgres.AcquireTimeout
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db, timeout))
	svc := services{
		college:      service.NewCollegeService(repository.NewCollegeRepository(dao.NewCollegeDAO(db, timeout)), eventRepo),
		student:      service.NewStudentService(repository.NewStudentRepository(dao.NewStudentDAO(db, timeout))),
		event:        service.NewEventService(eventRepo),
		registration: service.NewRegistrationService(repository.NewRegistrationRepository(dao.NewRegistrationDAO(db, timeout))),
		attendance:   service.NewAttendanceService(repository.NewAttendanceRepository(dao.NewAttendanceDAO(db, timeout))),
	}

	s := &seeder{
		svc: svc,
		rnd: rand.New(rand.NewSource(randSeed)),
		now: time.Now().UTC(),
	}
	if err = s.seed(context.Background()); err != nil {
		return err
	}

	zap.L().Info("seeding finished",
		zap.Int64("seed", randSeed),
		zap.Int("colleges", s.sum.colleges),
		zap.Int("students", s.sum.students),
		zap.Int("events", s.sum.events),
		zap.Int("registrations", s.sum.registrations),
		zap.Int("cancellations", s.sum.cancellations),
		zap.Int("attendance", s.sum.attendance),
		zap.Int("feedback", s.sum.feedback),
	)

	return nil
}

type seeder struct {
	svc services
	rnd *rand.Rand
	now time.Time
	sum summary
}

func (s *seeder) seed(ctx context.Context) error {
	eventIndex := 0
	for _, c := range colleges {
		college, err := s.svc.college.CreateCollege(ctx, c)
		if err != nil {
			if domain.KindOf(err) == domain.KindConflict {
				zap.L().Warn("college exists, skipping", zap.String("code", c.Code))
				continue
			}
			return fmt.Errorf("s.svc.college.CreateCollege -> %w", err)
		}
		s.sum.colleges++

		students, err := s.seedStudents(ctx, college)
		if err != nil {
			return err
		}

		for i := 0; i < 2; i++ {
			sample := events[eventIndex%len(events)]
			eventIndex++

			event, err := s.seedEvent(ctx, college, sample, eventIndex)
			if err != nil {
				return err
			}
			if err = s.seedActivity(ctx, event, students); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *seeder) seedStudents(ctx context.Context, college domain.College) ([]domain.Student, error) {
	count := 7 + s.rnd.Intn(2)
	students := make([]domain.Student, 0, count)

	for i := 1; i <= count; i++ {
		first := firstNames[s.rnd.Intn(len(firstNames))]
		last := lastNames[s.rnd.Intn(len(lastNames))]
		year := 1 + s.rnd.Intn(4)

		student, err := s.svc.student.CreateStudent(ctx, domain.Student{
			CollegeID:     college.ID,
			Email:         fmt.Sprintf("%s.%s@%s.edu", strings.ToLower(first), strings.ToLower(last), strings.ToLower(college.Code)),
			Name:          first + " " + last,
			StudentNumber: fmt.Sprintf("%s%03d", college.Code, i),
			YearOfStudy:   &year,
			Department:    departments[s.rnd.Intn(len(departments))],
		})
		if err != nil {
			if domain.KindOf(err) == domain.KindConflict {
				continue
			}
			return nil, fmt.Errorf("s.svc.student.CreateStudent -> %w", err)
		}

		students = append(students, student)
		s.sum.students++
	}

	return students, nil
}

func (s *seeder) seedEvent(ctx context.Context, college domain.College, sample sampleEvent, n int) (domain.Event, error) {
	start := s.now.AddDate(0, 0, 5+n).Truncate(time.Hour)
	deadline := start.Add(-24 * time.Hour)
	capacity := sample.capacity

	event, err := s.svc.event.CreateEvent(ctx, domain.Event{
		CollegeID:            college.ID,
		Title:                sample.title,
		Description:          sample.description,
		Type:                 sample.eventType,
		StartAt:              start,
		EndAt:                start.Add(time.Duration(sample.hours) * time.Hour),
		Location:             sample.location,
		MaxCapacity:          &capacity,
		RegistrationDeadline: &deadline,
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.svc.event.CreateEvent -> %w", err)
	}
	s.sum.events++

	return event, nil
}

// seedActivity registers a share of the students, cancels some of them and records
// attendance and feedback for the rest.
func (s *seeder) seedActivity(ctx context.Context, event domain.Event, students []domain.Student) error {
	target := len(students) * (30 + s.rnd.Intn(51)) / 100
	if event.MaxCapacity != nil && target > *event.MaxCapacity {
		target = *event.MaxCapacity
	}

	var active []domain.Registration
	for _, i := range s.rnd.Perm(len(students))[:target] {
		reg, err := s.svc.registration.Register(ctx, event.ID, students[i].ID)
		if err != nil {
			if domain.KindOf(err) == domain.KindBusinessRule || domain.KindOf(err) == domain.KindConflict {
				zap.L().Debug("registration rejected", zap.Error(err))
				continue
			}
			return fmt.Errorf("s.svc.registration.Register -> %w", err)
		}
		s.sum.registrations++

		if s.rnd.Intn(100) < 10 {
			if _, err = s.svc.registration.Cancel(ctx, reg.ID, "Schedule conflict"); err != nil {
				return fmt.Errorf("s.svc.registration.Cancel -> %w", err)
			}
			s.sum.cancellations++
			continue
		}
		active = append(active, reg)
	}

	attendRate := 60 + s.rnd.Intn(26)
	for _, reg := range active {
		if s.rnd.Intn(100) >= attendRate {
			continue
		}

		attendance, err := s.svc.attendance.MarkAttendance(ctx, reg.ID, methods[s.weighted(methodWeights)])
		if err != nil {
			return fmt.Errorf("s.svc.attendance.MarkAttendance -> %w", err)
		}
		s.sum.attendance++

		if s.rnd.Intn(100) >= 70 {
			continue
		}

		rating := s.weighted(ratingWeights) + domain.MinRating
		comment := comments[s.rnd.Intn(len(comments))]
		if _, err = s.svc.attendance.SubmitFeedback(ctx, attendance.ID, rating, comment); err != nil {
			return fmt.Errorf("s.svc.attendance.SubmitFeedback -> %w", err)
		}
		s.sum.feedback++
	}

	return nil
}

// weighted returns an index into weights picked in proportion to its value.
func (s *seeder) weighted(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}

	r := s.rnd.Intn(total)
	for i, w := range weights {
		if r < w {
			return i
		}
		r -= w
	}

	return len(weights) - 1
}
