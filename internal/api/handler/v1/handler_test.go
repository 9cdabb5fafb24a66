package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yizeng/campus-events/internal/api/handler/v1/response"
	"github.com/yizeng/campus-events/internal/domain"
)

var testNow = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(requestid.New())

	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func decodeErr(t *testing.T, rec *httptest.ResponseRecorder) response.Err {
	t.Helper()

	var e response.Err
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))

	return e
}

type stubRegistrationService struct {
	RegistrationService
	register func(eventID, studentID uuid.UUID) (domain.Registration, error)
	cancel   func(id uuid.UUID, reason string) (domain.Registration, error)
}

func (s *stubRegistrationService) Register(_ context.Context, eventID, studentID uuid.UUID) (domain.Registration, error) {
	return s.register(eventID, studentID)
}

func (s *stubRegistrationService) Cancel(_ context.Context, id uuid.UUID, reason string) (domain.Registration, error) {
	return s.cancel(id, reason)
}

func TestRegistrationHandler_HandleRegister(t *testing.T) {
	eventID, studentID := uuid.New(), uuid.New()
	validBody := map[string]string{"event_id": eventID.String(), "student_id": studentID.String()}

	tests := []struct {
		name       string
		body       any
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{"registered", validBody, nil, http.StatusCreated, ""},
		{"at capacity", validBody, domain.ErrCapacityExceeded, http.StatusBadRequest, "capacity_exceeded"},
		{"deadline passed", validBody, domain.ErrDeadlinePassed, http.StatusBadRequest, "deadline_passed"},
		{"already registered", validBody, domain.ErrDuplicateRegistration, http.StatusConflict, "duplicate_registration"},
		{"unknown event", validBody, domain.ErrEventNotFound, http.StatusNotFound, "event_not_found"},
		{"storage busy", validBody, domain.ErrStorageUnavailable, http.StatusServiceUnavailable, "storage_unavailable"},
		{"malformed id", map[string]string{"event_id": "nope", "student_id": studentID.String()}, nil, http.StatusBadRequest, "validation_error"},
		{"missing student", map[string]string{"event_id": eventID.String()}, nil, http.StatusBadRequest, "validation_error"},
		{"broken json", "{", nil, http.StatusBadRequest, "validation_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			svc := &stubRegistrationService{
				register: func(e, s uuid.UUID) (domain.Registration, error) {
					called = true
					assert.Equal(t, eventID, e)
					assert.Equal(t, studentID, s)
					if tt.svcErr != nil {
						return domain.Registration{}, tt.svcErr
					}
					return domain.Registration{ID: uuid.New(), EventID: e, StudentID: s, Status: domain.RegistrationRegistered}, nil
				},
			}
			r := newRouter()
			h := NewRegistrationHandler(svc)
			r.POST("/registrations", h.HandleRegister)
			r.POST("/register", h.HandleRegister)

			rec := doRequest(t, r, http.MethodPost, "/registrations", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode == "" {
				var reg domain.Registration
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reg))
				assert.Equal(t, domain.RegistrationRegistered, reg.Status)
				return
			}
			assert.Equal(t, tt.wantCode, decodeErr(t, rec).Code)
			if tt.wantCode == "validation_error" {
				assert.False(t, called)
			}
		})
	}

	t.Run("alias route", func(t *testing.T) {
		svc := &stubRegistrationService{
			register: func(e, s uuid.UUID) (domain.Registration, error) {
				return domain.Registration{ID: uuid.New(), EventID: e, StudentID: s}, nil
			},
		}
		r := newRouter()
		r.POST("/register", NewRegistrationHandler(svc).HandleRegister)

		rec := doRequest(t, r, http.MethodPost, "/register", validBody)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("storage busy sets retry header", func(t *testing.T) {
		svc := &stubRegistrationService{
			register: func(uuid.UUID, uuid.UUID) (domain.Registration, error) {
				return domain.Registration{}, domain.ErrStorageUnavailable
			},
		}
		r := newRouter()
		r.POST("/registrations", NewRegistrationHandler(svc).HandleRegister)

		rec := doRequest(t, r, http.MethodPost, "/registrations", validBody)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	})
}

func TestRegistrationHandler_HandleCancelRegistration(t *testing.T) {
	regID := uuid.New()

	newCancelRouter := func(gotReason *string, err error) *gin.Engine {
		svc := &stubRegistrationService{
			cancel: func(id uuid.UUID, reason string) (domain.Registration, error) {
				*gotReason = reason
				if err != nil {
					return domain.Registration{}, err
				}
				return domain.Registration{ID: id, Status: domain.RegistrationCancelled, CancellationReason: reason}, nil
			},
		}
		r := newRouter()
		r.DELETE("/registrations/:registrationID", NewRegistrationHandler(svc).HandleCancelRegistration)

		return r
	}

	t.Run("empty body", func(t *testing.T) {
		var reason string
		rec := doRequest(t, newCancelRouter(&reason, nil), http.MethodDelete, "/registrations/"+regID.String(), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, reason)
	})

	t.Run("reason is sanitized", func(t *testing.T) {
		var reason string
		rec := doRequest(t, newCancelRouter(&reason, nil), http.MethodDelete, "/registrations/"+regID.String(),
			map[string]string{"reason": "  <b>Sick</b> "})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Sick", reason)
	})

	t.Run("already cancelled", func(t *testing.T) {
		var reason string
		rec := doRequest(t, newCancelRouter(&reason, domain.ErrRegistrationNotFound), http.MethodDelete, "/registrations/"+regID.String(), nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "registration_not_found", decodeErr(t, rec).Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		var reason string
		rec := doRequest(t, newCancelRouter(&reason, nil), http.MethodDelete, "/registrations/42", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid registrationID format", decodeErr(t, rec).ErrorText)
	})
}

type stubAttendanceService struct {
	markAttendance func(id uuid.UUID, method domain.CheckInMethod) (domain.Attendance, error)
	submitFeedback func(id uuid.UUID, rating int, comment string) (domain.Attendance, error)
}

func (s *stubAttendanceService) MarkAttendance(_ context.Context, id uuid.UUID, method domain.CheckInMethod) (domain.Attendance, error) {
	return s.markAttendance(id, method)
}

func (s *stubAttendanceService) SubmitFeedback(_ context.Context, id uuid.UUID, rating int, comment string) (domain.Attendance, error) {
	return s.submitFeedback(id, rating, comment)
}

func TestAttendanceHandler(t *testing.T) {
	regID, attID := uuid.New(), uuid.New()

	svc := &stubAttendanceService{
		markAttendance: func(id uuid.UUID, method domain.CheckInMethod) (domain.Attendance, error) {
			if id != regID {
				return domain.Attendance{}, domain.ErrRegistrationNotFound
			}
			return domain.Attendance{ID: attID, RegistrationID: id, Method: method}, nil
		},
		submitFeedback: func(id uuid.UUID, rating int, comment string) (domain.Attendance, error) {
			if _, err := domain.NewRating(rating); err != nil {
				return domain.Attendance{}, err
			}
			return domain.Attendance{ID: id, FeedbackRating: &rating, FeedbackComment: &comment}, nil
		},
	}
	r := newRouter()
	h := NewAttendanceHandler(svc)
	r.POST("/attendance", h.HandleMarkAttendance)
	r.POST("/feedback", h.HandleSubmitFeedback)

	t.Run("check in", func(t *testing.T) {
		rec := doRequest(t, r, http.MethodPost, "/attendance", map[string]string{
			"registration_id": regID.String(),
			"check_in_method": "qr_code",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
		var att domain.Attendance
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &att))
		assert.Equal(t, domain.CheckInQRCode, att.Method)
	})

	t.Run("unknown check-in method", func(t *testing.T) {
		rec := doRequest(t, r, http.MethodPost, "/attendance", map[string]string{
			"registration_id": regID.String(),
			"check_in_method": "nfc",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown registration", func(t *testing.T) {
		rec := doRequest(t, r, http.MethodPost, "/attendance", map[string]string{"registration_id": uuid.NewString()})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("feedback ratings", func(t *testing.T) {
		for _, rating := range []int{0, 6} {
			rec := doRequest(t, r, http.MethodPost, "/feedback", map[string]any{
				"attendance_id": attID.String(),
				"rating":        rating,
			})

			assert.Equal(t, http.StatusBadRequest, rec.Code, "rating %d", rating)
			assert.Equal(t, "invalid_rating", decodeErr(t, rec).Code, "rating %d", rating)
		}

		rec := doRequest(t, r, http.MethodPost, "/feedback", map[string]any{
			"attendance_id": attID.String(),
			"rating":        5,
			"comment":       "Great session",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("feedback without rating", func(t *testing.T) {
		rec := doRequest(t, r, http.MethodPost, "/feedback", map[string]any{"attendance_id": attID.String()})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "validation_error", decodeErr(t, rec).Code)
	})
}

type stubEventService struct {
	EventService
	created []domain.Event
}

func (s *stubEventService) CreateEvent(_ context.Context, event domain.Event) (domain.Event, error) {
	event.ID = uuid.New()
	event.Status = domain.EventStatusActive
	s.created = append(s.created, event)

	return event, nil
}

func TestEventHandler_HandleCreateEvent(t *testing.T) {
	collegeID := uuid.New()
	body := func(start, end, deadline string) map[string]any {
		return map[string]any{
			"college_id":            collegeID.String(),
			"title":                 "Intro to Go",
			"event_type":            "workshop",
			"start_datetime":        start,
			"end_datetime":          end,
			"registration_deadline": deadline,
			"max_capacity":          50,
		}
	}

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
	}{
		{"valid", body("2026-05-12T10:00:00Z", "2026-05-12T12:00:00Z", "2026-05-11T18:00:00Z"), http.StatusCreated},
		{"naive timestamps", body("2026-05-12T10:00:00", "2026-05-12T12:00", ""), http.StatusCreated},
		{"end before start", body("2026-05-12T10:00:00Z", "2026-05-12T09:00:00Z", ""), http.StatusBadRequest},
		{"start too far in the past", body("2026-05-10T07:30:00Z", "2026-05-10T12:00:00Z", ""), http.StatusBadRequest},
		{"deadline after start", body("2026-05-12T10:00:00Z", "2026-05-12T12:00:00Z", "2026-05-12T11:00:00Z"), http.StatusBadRequest},
		{"bad timestamp", body("next tuesday", "2026-05-12T12:00:00Z", ""), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubEventService{}
			h := NewEventHandler(svc)
			h.now = func() time.Time { return testNow }
			r := newRouter()
			r.POST("/events", h.HandleCreateEvent)

			rec := doRequest(t, r, http.MethodPost, "/events", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus == http.StatusCreated {
				require.Len(t, svc.created, 1)
				assert.Equal(t, collegeID, svc.created[0].CollegeID)
			} else {
				assert.Empty(t, svc.created)
			}
		})
	}
}

type stubReportService struct {
	ReportService
	gotLimit  int
	gotType   string
	gotFilter *domain.EventFilter
}

func (s *stubReportService) FilteredReport(_ context.Context, reportType string, filter domain.EventFilter) ([]domain.FilteredEventReport, error) {
	s.gotType = reportType
	s.gotFilter = &filter

	return []domain.FilteredEventReport{}, nil
}

func (s *stubReportService) TopActiveStudents(_ context.Context, limit int) ([]domain.ActiveStudent, error) {
	s.gotLimit = limit

	return []domain.ActiveStudent{}, nil
}

func TestReportHandler_HandleTopActiveStudents(t *testing.T) {
	tests := []struct {
		query      string
		wantStatus int
		wantLimit  int
	}{
		{"", http.StatusOK, 0},
		{"?limit=10", http.StatusOK, 10},
		{"?limit=-1", http.StatusOK, -1},
		{"?limit=ten", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(strconv.Quote(tt.query), func(t *testing.T) {
			svc := &stubReportService{}
			r := newRouter()
			r.GET("/reports/top-active-students", NewReportHandler(svc).HandleTopActiveStudents)

			rec := doRequest(t, r, http.MethodGet, "/reports/top-active-students"+tt.query, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLimit, svc.gotLimit)
		})
	}
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error {
	return f(ctx)
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name         string
		pingErr      error
		wantStatus   int
		wantDatabase string
	}{
		{"connected", nil, http.StatusOK, "connected"},
		{"disconnected", errors.New("connection refused"), http.StatusServiceUnavailable, "disconnected"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(pingerFunc(func(context.Context) error { return tt.pingErr }))
			h.now = func() time.Time { return testNow }
			r := newRouter()
			r.GET("/health", h.HandleHealth)

			rec := doRequest(t, r, http.MethodGet, "/health", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body response.Health
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantDatabase, body.Database)
			assert.True(t, testNow.Equal(body.Timestamp))
		})
	}
}

type stubStudentService struct {
	StudentService
	deactivated []uuid.UUID
	gotEmail    string
}

func (s *stubStudentService) FindByEmail(_ context.Context, email string) (domain.StudentWithCollege, error) {
	s.gotEmail = email
	if email != "ada@tu.edu" {
		return domain.StudentWithCollege{}, domain.ErrStudentNotFound
	}

	return domain.StudentWithCollege{
		Student:     domain.Student{ID: uuid.New(), Email: email, Name: "Ada", IsActive: true},
		CollegeName: "Test University",
		CollegeCode: "TU",
	}, nil
}

func (s *stubStudentService) DeactivateStudent(_ context.Context, id uuid.UUID) error {
	for _, d := range s.deactivated {
		if d == id {
			return domain.ErrStudentNotFound
		}
	}
	s.deactivated = append(s.deactivated, id)

	return nil
}

func TestStudentHandler_HandleDeactivateStudent(t *testing.T) {
	svc := &stubStudentService{}
	r := newRouter()
	r.DELETE("/students/:studentID", NewStudentHandler(svc).HandleDeactivateStudent)
	id := uuid.New()

	rec := doRequest(t, r, http.MethodDelete, "/students/"+id.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, r, http.MethodDelete, "/students/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, r, http.MethodDelete, "/students/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportHandler_HandleFilteredReport(t *testing.T) {
	collegeID := uuid.New()

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantType   string
		wantFilter *domain.EventFilter
	}{
		{"defaults to events", "", http.StatusOK, "events", &domain.EventFilter{}},
		{"explicit events", "?type=events&event_type=fest", http.StatusOK, "events", &domain.EventFilter{Type: domain.EventTypeFest}},
		{"upper-case college id", "?college_id=" + strings.ToUpper(collegeID.String()), http.StatusOK, "events", &domain.EventFilter{CollegeID: &collegeID}},
		{"unknown report type", "?type=students", http.StatusBadRequest, "", nil},
		{"bad college id", "?college_id=42", http.StatusBadRequest, "", nil},
		{"unknown event type", "?event_type=meetup", http.StatusBadRequest, "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubReportService{}
			r := newRouter()
			r.GET("/reports/filter", NewReportHandler(svc).HandleFilteredReport)

			rec := doRequest(t, r, http.MethodGet, "/reports/filter"+tt.query, nil)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantType, svc.gotType)
			assert.Equal(t, tt.wantFilter, svc.gotFilter)
		})
	}
}

func TestStudentHandler_HandleStudentLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantEmail  string
	}{
		{"found", map[string]string{"email": "  ADA@tu.edu "}, http.StatusOK, "ada@tu.edu"},
		{"unknown", map[string]string{"email": "bob@tu.edu"}, http.StatusNotFound, "bob@tu.edu"},
		{"empty", map[string]string{"email": "  "}, http.StatusBadRequest, ""},
		{"malformed", map[string]string{"email": "ada"}, http.StatusBadRequest, ""},
		{"bad json", "{", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubStudentService{}
			r := newRouter()
			r.POST("/students/login", NewStudentHandler(svc).HandleStudentLogin)

			rec := doRequest(t, r, http.MethodPost, "/students/login", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantEmail, svc.gotEmail)
			if tt.wantStatus == http.StatusOK {
				var body domain.StudentWithCollege
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "TU", body.CollegeCode)
			}
			if tt.wantStatus == http.StatusNotFound {
				assert.Equal(t, "student_not_found", decodeErr(t, rec).Code)
			}
		})
	}
}

type stubCollegeService struct {
	CollegeService
	created []domain.College
}

func (s *stubCollegeService) CreateCollege(_ context.Context, college domain.College) (domain.College, error) {
	college.ID = uuid.New()
	s.created = append(s.created, college)

	return college, nil
}

func TestCollegeHandler_HandleCreateCollege(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]string
		wantStatus int
		wantName   string
		wantCode   string
	}{
		{"valid", map[string]string{"name": " <i>Tech</i> Institute ", "code": "ti01"}, http.StatusCreated, "Tech Institute", "TI01"},
		{"markup-only name", map[string]string{"name": "<b></b>", "code": "TI"}, http.StatusBadRequest, "", ""},
		{"bad code", map[string]string{"name": "Tech", "code": "T-1"}, http.StatusBadRequest, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubCollegeService{}
			r := newRouter()
			r.POST("/colleges", NewCollegeHandler(svc).HandleCreateCollege)

			rec := doRequest(t, r, http.MethodPost, "/colleges", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusCreated {
				assert.Empty(t, svc.created)
				return
			}
			require.Len(t, svc.created, 1)
			assert.Equal(t, tt.wantName, svc.created[0].Name)
			assert.Equal(t, tt.wantCode, svc.created[0].Code)
		})
	}
}
