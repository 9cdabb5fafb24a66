package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yizeng/campus-events/internal/domain"
)

const searchLimit = 50

type RegistrationRepository interface {
	Admit(ctx context.Context, eventID, studentID uuid.UUID, now time.Time, decide domain.AdmissionDecider) (domain.Registration, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string, now time.Time) (domain.Registration, error)
	Search(ctx context.Context, term string, limit int) ([]domain.RegistrationSearchResult, error)
}

type RegistrationService struct {
	repo RegistrationRepository
	now  func() time.Time
}

func NewRegistrationService(repo RegistrationRepository) *RegistrationService {
	return &RegistrationService{
		repo: repo,
		now:  time.Now,
	}
}

// Register admits a student to an event. The repository reads the event state
// under a row lock and the admission rules run against that snapshot, so every
// rejection comes back as its own domain error and leaves nothing written.
func (s *RegistrationService) Register(ctx context.Context, eventID, studentID uuid.UUID) (domain.Registration, error) {
	now := s.now()

	registration, err := s.repo.Admit(ctx, eventID, studentID, now, func(snap domain.AdmissionSnapshot) error {
		return decideAdmission(snap, now)
	})
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.Admit -> %w", err)
	}

	return registration, nil
}

// decideAdmission applies the admission rules in order: status, deadline,
// capacity, duplicate. A deadline equal to now is still open.
func decideAdmission(snap domain.AdmissionSnapshot, now time.Time) error {
	event := snap.Event

	if event.Status != domain.EventStatusActive {
		return domain.ErrEventInactive
	}

	if event.RegistrationDeadline != nil && now.After(*event.RegistrationDeadline) {
		return domain.ErrDeadlinePassed
	}

	if event.MaxCapacity != nil && snap.RegisteredCount >= *event.MaxCapacity {
		return domain.ErrCapacityExceeded
	}

	if snap.AlreadyRegistered {
		return domain.ErrDuplicateRegistration
	}

	return nil
}

func (s *RegistrationService) Cancel(ctx context.Context, registrationID uuid.UUID, reason string) (domain.Registration, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = domain.DefaultCancellationReason
	}

	cancelled, err := s.repo.Cancel(ctx, registrationID, reason, s.now())
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.Cancel -> %w", err)
	}

	return cancelled, nil
}

func (s *RegistrationService) Search(ctx context.Context, term string) ([]domain.RegistrationSearchResult, error) {
	results, err := s.repo.Search(ctx, strings.TrimSpace(term), searchLimit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Search -> %w", err)
	}

	return results, nil
}
