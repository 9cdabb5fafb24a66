package request

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"

	"github.com/yizeng/campus-events/internal/domain"
)

type CreateStudentRequest struct {
	CollegeID     string `json:"college_id" example:"1b4e28ba-2fa1-11d2-883f-0016d3cca427"`
	Email         string `json:"email" example:"ada@example.edu"`
	Name          string `json:"name" example:"Ada Lovelace"`
	StudentNumber string `json:"student_number" example:"CS2026001"`
	Phone         string `json:"phone"`
	YearOfStudy   *int   `json:"year_of_study" example:"2"`
	Department    string `json:"department"`
}

func (req *CreateStudentRequest) Normalize() {
	req.CollegeID = strings.TrimSpace(req.CollegeID)
	req.Email = strings.TrimSpace(req.Email)
	req.Name = sanitize(req.Name)
	req.StudentNumber = sanitize(req.StudentNumber)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Department = sanitize(req.Department)
}

func (req *CreateStudentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CollegeID, validation.Required, uuidRule),
		validation.Field(&req.Email, validation.Required, emailRule),
		validation.Field(&req.Name, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.StudentNumber, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Phone, phoneRule),
		validation.Field(&req.YearOfStudy, intRange(1, 4)),
		validation.Field(&req.Department, validation.Length(0, 100)),
	)
}

func (req *CreateStudentRequest) ToDomain() domain.Student {
	return domain.Student{
		CollegeID:     uuid.MustParse(req.CollegeID),
		Email:         req.Email,
		Name:          req.Name,
		StudentNumber: req.StudentNumber,
		Phone:         req.Phone,
		YearOfStudy:   req.YearOfStudy,
		Department:    req.Department,
	}
}

type ListStudentsQuery struct {
	CollegeID string `form:"college_id"`
}

func (q *ListStudentsQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.CollegeID, uuidRule),
	)
}

func (q *ListStudentsQuery) CollegeIDOrNil() *uuid.UUID {
	if q.CollegeID == "" {
		return nil
	}
	id := uuid.MustParse(q.CollegeID)

	return &id
}

type SearchQuery struct {
	Q string `form:"q"`
}

func (q *SearchQuery) Normalize() {
	q.Q = strings.TrimSpace(q.Q)
}

func (q *SearchQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.Q, validation.Required, validation.Length(2, 100)),
	)
}

// StudentLookupRequest identifies a student by the email they registered with.
type StudentLookupRequest struct {
	Email string `json:"email" example:"ada@example.edu"`
}

func (req *StudentLookupRequest) Normalize() {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
}

func (req *StudentLookupRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, emailRule),
	)
}
