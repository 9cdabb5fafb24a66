package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yizeng/campus-events/internal/domain"
	"github.com/yizeng/campus-events/internal/repository/dao"
)

type StudentDAO interface {
	Insert(ctx context.Context, student dao.Student) (dao.Student, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Student, error)
	FindAll(ctx context.Context, collegeID *uuid.UUID) ([]dao.StudentWithCollege, error)
	Search(ctx context.Context, term string, limit int) ([]dao.StudentWithCollege, error)
	FindActiveByEmail(ctx context.Context, email string) (dao.StudentWithCollege, error)
	Deactivate(ctx context.Context, id uuid.UUID, now time.Time) error
	FindRegistrations(ctx context.Context, studentID uuid.UUID) ([]dao.StudentRegistration, error)
	FindAvailableEvents(ctx context.Context, studentID uuid.UUID, now time.Time) ([]dao.AvailableEvent, error)
	FindPendingFeedback(ctx context.Context, studentID uuid.UUID, now time.Time) ([]dao.PendingFeedback, error)
}

type StudentRepository struct {
	dao StudentDAO
}

func NewStudentRepository(dao StudentDAO) *StudentRepository {
	return &StudentRepository{
		dao: dao,
	}
}

func (r *StudentRepository) Create(ctx context.Context, student domain.Student) (domain.Student, error) {
	created, err := r.dao.Insert(ctx, dao.Student{
		CollegeID:     student.CollegeID,
		Email:         student.Email,
		Name:          student.Name,
		StudentNumber: student.StudentNumber,
		Phone:         student.Phone,
		YearOfStudy:   student.YearOfStudy,
		Department:    student.Department,
	})
	if err != nil {
		return domain.Student{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Student, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Student{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *StudentRepository) FindAll(ctx context.Context, collegeID *uuid.UUID) ([]domain.StudentWithCollege, error) {
	found, err := r.dao.FindAll(ctx, collegeID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.withCollegeToDomain(found), nil
}

func (r *StudentRepository) Search(ctx context.Context, term string, limit int) ([]domain.StudentWithCollege, error) {
	found, err := r.dao.Search(ctx, term, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Search -> %w", err)
	}

	return r.withCollegeToDomain(found), nil
}

func (r *StudentRepository) FindActiveByEmail(ctx context.Context, email string) (domain.StudentWithCollege, error) {
	found, err := r.dao.FindActiveByEmail(ctx, email)
	if err != nil {
		return domain.StudentWithCollege{}, fmt.Errorf("r.dao.FindActiveByEmail -> %w", err)
	}

	return r.withCollegeToDomain([]dao.StudentWithCollege{found})[0], nil
}

func (r *StudentRepository) Deactivate(ctx context.Context, id uuid.UUID, now time.Time) error {
	if err := r.dao.Deactivate(ctx, id, now); err != nil {
		return fmt.Errorf("r.dao.Deactivate -> %w", err)
	}

	return nil
}

func (r *StudentRepository) FindRegistrations(ctx context.Context, studentID uuid.UUID) ([]domain.StudentRegistration, error) {
	found, err := r.dao.FindRegistrations(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRegistrations -> %w", err)
	}

	registrations := make([]domain.StudentRegistration, 0, len(found))
	for _, row := range found {
		registrations = append(registrations, domain.StudentRegistration{
			RegistrationID:   row.RegistrationID,
			EventID:          row.EventID,
			RegisteredAt:     row.RegisteredAt,
			Status:           domain.RegistrationStatus(row.Status),
			EventName:        row.EventName,
			EventType:        domain.EventType(row.EventType),
			StartAt:          row.StartDatetime,
			EndAt:            row.EndDatetime,
			Location:         row.Location,
			CollegeName:      row.CollegeName,
			AttendanceID:     row.AttendanceID,
			CheckedInAt:      row.CheckedInAt,
			FeedbackRating:   row.FeedbackRating,
			FeedbackComment:  row.FeedbackComment,
			AttendanceStatus: row.AttendanceStatus,
		})
	}

	return registrations, nil
}

func (r *StudentRepository) FindAvailableEvents(ctx context.Context, studentID uuid.UUID, now time.Time) ([]domain.AvailableEvent, error) {
	found, err := r.dao.FindAvailableEvents(ctx, studentID, now)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAvailableEvents -> %w", err)
	}

	events := make([]domain.AvailableEvent, 0, len(found))
	for _, row := range found {
		events = append(events, domain.AvailableEvent{
			EventID:              row.EventID,
			Title:                row.Title,
			Description:          row.Description,
			Type:                 domain.EventType(row.EventType),
			StartAt:              row.StartDatetime,
			EndAt:                row.EndDatetime,
			Location:             row.Location,
			MaxCapacity:          row.MaxCapacity,
			RegistrationDeadline: row.RegistrationDeadline,
			CollegeName:          row.CollegeName,
			CollegeCode:          row.CollegeCode,
			CurrentRegistrations: row.CurrentRegistrations,
			StudentStatus:        row.StudentStatus,
		})
	}

	return events, nil
}

func (r *StudentRepository) FindPendingFeedback(ctx context.Context, studentID uuid.UUID, now time.Time) ([]domain.PendingFeedback, error) {
	found, err := r.dao.FindPendingFeedback(ctx, studentID, now)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPendingFeedback -> %w", err)
	}

	pending := make([]domain.PendingFeedback, 0, len(found))
	for _, row := range found {
		pending = append(pending, domain.PendingFeedback{
			AttendanceID:   row.AttendanceID,
			RegistrationID: row.RegistrationID,
			EventID:        row.EventID,
			EventName:      row.EventName,
			EventType:      domain.EventType(row.EventType),
			StartAt:        row.StartDatetime,
			EndAt:          row.EndDatetime,
			CollegeName:    row.CollegeName,
			CheckedInAt:    row.CheckedInAt,
		})
	}

	return pending, nil
}

func (r *StudentRepository) daoToDomain(s dao.Student) domain.Student {
	return domain.Student{
		ID:            s.ID,
		CollegeID:     s.CollegeID,
		Email:         s.Email,
		Name:          s.Name,
		StudentNumber: s.StudentNumber,
		Phone:         s.Phone,
		YearOfStudy:   s.YearOfStudy,
		Department:    s.Department,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (r *StudentRepository) withCollegeToDomain(rows []dao.StudentWithCollege) []domain.StudentWithCollege {
	students := make([]domain.StudentWithCollege, 0, len(rows))
	for _, row := range rows {
		students = append(students, domain.StudentWithCollege{
			Student:            r.daoToDomain(row.Student),
			CollegeName:        row.CollegeName,
			CollegeCode:        row.CollegeCode,
			TotalRegistrations: row.TotalRegistrations,
			EventsAttended:     row.EventsAttended,
		})
	}

	return students
}
