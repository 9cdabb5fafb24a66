package request

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/yizeng/campus-events/internal/domain"
)

type CreateCollegeRequest struct {
	Name         string `json:"name" example:"Institute of Technology"`
	Code         string `json:"code" example:"IOT"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ContactEmail string `json:"contact_email"`
	Phone        string `json:"phone"`
}

// Normalize sanitizes free text and upper-cases the code. Call it before Validate so
// the checks see what will be stored.
func (req *CreateCollegeRequest) Normalize() {
	req.Name = sanitize(req.Name)
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	req.Address = sanitize(req.Address)
	req.City = sanitize(req.City)
	req.State = sanitize(req.State)
	req.ContactEmail = strings.TrimSpace(req.ContactEmail)
	req.Phone = strings.TrimSpace(req.Phone)
}

func (req *CreateCollegeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Code, validation.Required, validation.Length(2, 10),
			validation.Match(collegeCodeRegexp).Error("must contain only letters and numbers")),
		validation.Field(&req.ContactEmail, is.Email),
		validation.Field(&req.Phone, phoneRule),
	)
}

func (req *CreateCollegeRequest) ToDomain() domain.College {
	return domain.College{
		Name:         req.Name,
		Code:         req.Code,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
	}
}
