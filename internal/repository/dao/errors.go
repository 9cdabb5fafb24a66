package dao

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/yizeng/campus-events/internal/domain"
)

var (
	ErrCollegeNotFound       = domain.ErrCollegeNotFound
	ErrEventNotFound         = domain.ErrEventNotFound
	ErrStudentNotFound       = domain.ErrStudentNotFound
	ErrRegistrationNotFound  = domain.ErrRegistrationNotFound
	ErrAttendanceNotFound    = domain.ErrAttendanceNotFound
	ErrDuplicateRegistration = domain.ErrDuplicateRegistration
	ErrAlreadyCheckedIn      = domain.ErrAlreadyCheckedIn
	ErrCollegeCodeExists     = domain.ErrCollegeCodeExists
	ErrStudentEmailExists    = domain.ErrStudentEmailExists
	ErrStudentNumberExists   = domain.ErrStudentNumberExists
	ErrStorageUnavailable    = domain.ErrStorageUnavailable
)

// Unique index names. They double as the keys classify uses to pick a sentinel.
const (
	uqCollegesCode            = "uq_colleges_code"
	uqStudentsEmail           = "uq_students_email"
	uqStudentsCollegeNumber   = "uq_students_college_number"
	uqRegistrationsActivePair = "uq_registrations_event_student_active"
	uqAttendanceRegistration  = "uq_attendance_registration"
)

var uniqueViolations = map[string]error{
	uqCollegesCode:            ErrCollegeCodeExists,
	uqStudentsEmail:           ErrStudentEmailExists,
	uqStudentsCollegeNumber:   ErrStudentNumberExists,
	uqRegistrationsActivePair: ErrDuplicateRegistration,
	uqAttendanceRegistration:  ErrAlreadyCheckedIn,
}

// Foreign keys are named fk_<table>_<relation> by gorm, so the suffix tells which parent is missing.
var foreignKeyViolations = []struct {
	suffix string
	err    error
}{
	{"_college", ErrCollegeNotFound},
	{"_event", ErrEventNotFound},
	{"_student", ErrStudentNotFound},
	{"_registration", ErrRegistrationNotFound},
}

// classify turns driver and pool errors into domain sentinels. Anything it does
// not recognise is returned untouched and ends up as an unexpected error.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := domain.AsError(err); ok {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		pgconn.Timeout(err) {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch {
	case pgErr.Code == pgerrcode.UniqueViolation:
		if sentinel, ok := uniqueViolations[pgErr.ConstraintName]; ok {
			return sentinel
		}
	case pgErr.Code == pgerrcode.ForeignKeyViolation:
		for _, fk := range foreignKeyViolations {
			if strings.HasSuffix(pgErr.ConstraintName, fk.suffix) {
				return fk.err
			}
		}
	case pgErr.Code == pgerrcode.CheckViolation:
		return domain.NewValidationError(fmt.Errorf("constraint %s violated", pgErr.ConstraintName))
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsOperatorIntervention(pgErr.Code),
		pgErr.Code == pgerrcode.TooManyConnections:
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return err
}

// notFound maps gorm.ErrRecordNotFound to the given sentinel and classifies the rest.
func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}

	return classify(err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a user search term into an ILIKE substring pattern. Wildcards
// in term match literally, paired with ESCAPE '\' in the query.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// withTimeout bounds a single DAO call, so waiting on an exhausted pool gives up
// instead of hanging the request.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, d)
}
