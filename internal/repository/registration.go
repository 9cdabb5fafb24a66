package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yizeng/campus-events/internal/domain"
	"github.com/yizeng/campus-events/internal/repository/dao"
)

type RegistrationDAO interface {
	Admit(ctx context.Context, eventID, studentID uuid.UUID, now time.Time, decide func(dao.AdmissionSnapshot) error) (dao.Registration, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string, now time.Time) (dao.Registration, error)
	Search(ctx context.Context, term string, limit int) ([]dao.RegistrationSearchResult, error)
}

type RegistrationRepository struct {
	dao RegistrationDAO
}

func NewRegistrationRepository(dao RegistrationDAO) *RegistrationRepository {
	return &RegistrationRepository{
		dao: dao,
	}
}

// Admit reads an admission snapshot under the event lock, hands it to decide
// and inserts the registration only when decide returns nil.
func (r *RegistrationRepository) Admit(
	ctx context.Context,
	eventID, studentID uuid.UUID,
	now time.Time,
	decide domain.AdmissionDecider,
) (domain.Registration, error) {
	created, err := r.dao.Admit(ctx, eventID, studentID, now, func(snap dao.AdmissionSnapshot) error {
		return decide(domain.AdmissionSnapshot{
			Event:             eventDAOToDomain(snap.Event),
			RegisteredCount:   snap.RegisteredCount,
			AlreadyRegistered: snap.AlreadyRegistered,
		})
	})
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.Admit -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *RegistrationRepository) Cancel(ctx context.Context, id uuid.UUID, reason string, now time.Time) (domain.Registration, error) {
	cancelled, err := r.dao.Cancel(ctx, id, reason, now)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.Cancel -> %w", err)
	}

	return r.daoToDomain(cancelled), nil
}

func (r *RegistrationRepository) Search(ctx context.Context, term string, limit int) ([]domain.RegistrationSearchResult, error) {
	found, err := r.dao.Search(ctx, term, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Search -> %w", err)
	}

	results := make([]domain.RegistrationSearchResult, 0, len(found))
	for _, row := range found {
		results = append(results, domain.RegistrationSearchResult{
			RegistrationID:   row.RegistrationID,
			EventID:          row.EventID,
			StudentID:        row.StudentID,
			RegisteredAt:     row.RegisteredAt,
			Status:           domain.RegistrationStatus(row.Status),
			StudentName:      row.StudentName,
			StudentEmail:     row.StudentEmail,
			StudentNumber:    row.StudentNumber,
			EventName:        row.EventName,
			EventType:        domain.EventType(row.EventType),
			StartAt:          row.StartDatetime,
			CollegeName:      row.CollegeName,
			AttendanceID:     row.AttendanceID,
			CheckedInAt:      row.CheckedInAt,
			AttendanceStatus: row.AttendanceStatus,
		})
	}

	return results, nil
}

func (r *RegistrationRepository) daoToDomain(reg dao.Registration) domain.Registration {
	return domain.Registration{
		ID:                 reg.ID,
		EventID:            reg.EventID,
		StudentID:          reg.StudentID,
		Status:             domain.RegistrationStatus(reg.Status),
		RegisteredAt:       reg.RegisteredAt,
		CancelledAt:        reg.CancelledAt,
		CancellationReason: reg.CancellationReason,
	}
}
