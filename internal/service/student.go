package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yizeng/campus-events/internal/domain"
)

type StudentRepository interface {
	Create(ctx context.Context, student domain.Student) (domain.Student, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.Student, error)
	FindAll(ctx context.Context, collegeID *uuid.UUID) ([]domain.StudentWithCollege, error)
	Search(ctx context.Context, term string, limit int) ([]domain.StudentWithCollege, error)
	FindActiveByEmail(ctx context.Context, email string) (domain.StudentWithCollege, error)
	Deactivate(ctx context.Context, id uuid.UUID, now time.Time) error
	FindRegistrations(ctx context.Context, studentID uuid.UUID) ([]domain.StudentRegistration, error)
	FindAvailableEvents(ctx context.Context, studentID uuid.UUID, now time.Time) ([]domain.AvailableEvent, error)
	FindPendingFeedback(ctx context.Context, studentID uuid.UUID, now time.Time) ([]domain.PendingFeedback, error)
}

type StudentService struct {
	repo StudentRepository
	now  func() time.Time
}

func NewStudentService(repo StudentRepository) *StudentService {
	return &StudentService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *StudentService) CreateStudent(ctx context.Context, student domain.Student) (domain.Student, error) {
	student.Email = strings.ToLower(strings.TrimSpace(student.Email))
	student.Name = strings.TrimSpace(student.Name)
	student.StudentNumber = strings.TrimSpace(student.StudentNumber)

	created, err := s.repo.Create(ctx, student)
	if err != nil {
		return domain.Student{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *StudentService) ListStudents(ctx context.Context, collegeID *uuid.UUID) ([]domain.StudentWithCollege, error) {
	students, err := s.repo.FindAll(ctx, collegeID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return students, nil
}

func (s *StudentService) SearchStudents(ctx context.Context, term string) ([]domain.StudentWithCollege, error) {
	students, err := s.repo.Search(ctx, strings.TrimSpace(term), searchLimit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Search -> %w", err)
	}

	return students, nil
}

// FindByEmail resolves the active student behind a login email. Emails are stored
// lowercased, so the lookup normalises the same way CreateStudent does.
func (s *StudentService) FindByEmail(ctx context.Context, email string) (domain.StudentWithCollege, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return domain.StudentWithCollege{}, domain.NewValidationError(errors.New("email is required"))
	}

	student, err := s.repo.FindActiveByEmail(ctx, email)
	if err != nil {
		return domain.StudentWithCollege{}, fmt.Errorf("s.repo.FindActiveByEmail -> %w", err)
	}

	return student, nil
}

func (s *StudentService) DeactivateStudent(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Deactivate(ctx, id, s.now()); err != nil {
		return fmt.Errorf("s.repo.Deactivate -> %w", err)
	}

	return nil
}

func (s *StudentService) ListRegistrations(ctx context.Context, studentID uuid.UUID) ([]domain.StudentRegistration, error) {
	if _, err := s.repo.FindByID(ctx, studentID); err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	registrations, err := s.repo.FindRegistrations(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindRegistrations -> %w", err)
	}

	return registrations, nil
}

func (s *StudentService) ListAvailableEvents(ctx context.Context, studentID uuid.UUID) ([]domain.AvailableEvent, error) {
	if _, err := s.repo.FindByID(ctx, studentID); err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	events, err := s.repo.FindAvailableEvents(ctx, studentID, s.now())
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAvailableEvents -> %w", err)
	}

	return events, nil
}

func (s *StudentService) ListPendingFeedback(ctx context.Context, studentID uuid.UUID) ([]domain.PendingFeedback, error) {
	if _, err := s.repo.FindByID(ctx, studentID); err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	pending, err := s.repo.FindPendingFeedback(ctx, studentID, s.now())
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPendingFeedback -> %w", err)
	}

	return pending, nil
}
