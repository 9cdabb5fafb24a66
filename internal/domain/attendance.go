package domain

import (
	"time"

	"github.com/google/uuid"
)

type CheckInMethod string

const (
	CheckInManual CheckInMethod = "manual"
	CheckInQRCode CheckInMethod = "qr_code"
	CheckInRFID   CheckInMethod = "rfid"
)

var CheckInMethods = []CheckInMethod{CheckInManual, CheckInQRCode, CheckInRFID}

func (m CheckInMethod) IsValid() bool {
	for _, v := range CheckInMethods {
		if m == v {
			return true
		}
	}

	return false
}

const (
	MinRating = 1
	MaxRating = 5
)

// Rating is a feedback score in [MinRating, MaxRating]. Build it with NewRating.
type Rating struct {
	v int
}

func NewRating(v int) (Rating, error) {
	if v < MinRating || v > MaxRating {
		return Rating{}, ErrInvalidRating
	}

	return Rating{v: v}, nil
}

func (r Rating) Int() int {
	return r.v
}

type Attendance struct {
	ID                  uuid.UUID     `json:"attendance_id"`
	RegistrationID      uuid.UUID     `json:"registration_id"`
	CheckedInAt         time.Time     `json:"checked_in_at"`
	Method              CheckInMethod `json:"check_in_method"`
	FeedbackRating      *int          `json:"feedback_rating"`
	FeedbackComment     *string       `json:"feedback_comment"`
	FeedbackSubmittedAt *time.Time    `json:"feedback_submitted_at"`
}

// Feedback is what a submission overwrites on an Attendance.
type Feedback struct {
	Rating      Rating
	Comment     string
	SubmittedAt time.Time
}
