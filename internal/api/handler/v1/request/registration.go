package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"

	"github.com/yizeng/campus-events/internal/domain"
)

type RegisterRequest struct {
	EventID   string `json:"event_id" example:"1b4e28ba-2fa1-11d2-883f-0016d3cca427"`
	StudentID string `json:"student_id" example:"6a2f41a3-c54c-fce8-32d2-0324e1c32e22"`
}

func (req *RegisterRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required, uuidRule),
		validation.Field(&req.StudentID, validation.Required, uuidRule),
	)
}

func (req *RegisterRequest) IDs() (eventID, studentID uuid.UUID) {
	return uuid.MustParse(req.EventID), uuid.MustParse(req.StudentID)
}

type CancelRegistrationRequest struct {
	Reason string `json:"reason" example:"Schedule conflict"`
}

func (req *CancelRegistrationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Reason, validation.Length(0, 500)),
	)
}

func (req *CancelRegistrationRequest) SanitizedReason() string {
	return sanitize(req.Reason)
}

type AttendanceRequest struct {
	RegistrationID string `json:"registration_id" example:"1b4e28ba-2fa1-11d2-883f-0016d3cca427"`
	CheckInMethod  string `json:"check_in_method" example:"qr_code"`
}

func (req *AttendanceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.RegistrationID, validation.Required, uuidRule),
		validation.Field(&req.CheckInMethod, validation.In(
			string(domain.CheckInManual),
			string(domain.CheckInQRCode),
			string(domain.CheckInRFID),
		).Error("must be one of: manual, qr_code, rfid")),
	)
}

func (req *AttendanceRequest) ToDomain() (uuid.UUID, domain.CheckInMethod) {
	return uuid.MustParse(req.RegistrationID), domain.CheckInMethod(req.CheckInMethod)
}

// FeedbackRequest leaves the 1 to 5 range check to domain.NewRating.
type FeedbackRequest struct {
	AttendanceID string `json:"attendance_id" example:"1b4e28ba-2fa1-11d2-883f-0016d3cca427"`
	Rating       *int   `json:"rating" example:"5"`
	Comment      string `json:"comment" example:"Great hands-on session"`
}

func (req *FeedbackRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.AttendanceID, validation.Required, uuidRule),
		validation.Field(&req.Rating, validation.NotNil),
		validation.Field(&req.Comment, validation.Length(0, 1000), commentRule),
	)
}

func (req *FeedbackRequest) ToDomain() (attendanceID uuid.UUID, rating int, comment string) {
	return uuid.MustParse(req.AttendanceID), *req.Rating, sanitize(req.Comment)
}
