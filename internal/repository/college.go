package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yizeng/campus-events/internal/domain"
	"github.com/yizeng/campus-events/internal/repository/dao"
)

type CollegeDAO interface {
	Insert(ctx context.Context, college dao.College) (dao.College, error)
	FindAll(ctx context.Context, now time.Time) ([]dao.CollegeSummary, error)
	FindByID(ctx context.Context, id uuid.UUID, now time.Time) (dao.CollegeSummary, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type CollegeRepository struct {
	dao CollegeDAO
}

func NewCollegeRepository(dao CollegeDAO) *CollegeRepository {
	return &CollegeRepository{
		dao: dao,
	}
}

func (r *CollegeRepository) Create(ctx context.Context, college domain.College) (domain.College, error) {
	created, err := r.dao.Insert(ctx, dao.College{
		Name:         college.Name,
		Code:         college.Code,
		Address:      college.Address,
		City:         college.City,
		State:        college.State,
		ContactEmail: college.ContactEmail,
		Phone:        college.Phone,
	})
	if err != nil {
		return domain.College{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CollegeRepository) FindAll(ctx context.Context, now time.Time) ([]domain.CollegeSummary, error) {
	found, err := r.dao.FindAll(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	colleges := make([]domain.CollegeSummary, 0, len(found))
	for _, c := range found {
		colleges = append(colleges, r.summaryToDomain(c))
	}

	return colleges, nil
}

func (r *CollegeRepository) FindByID(ctx context.Context, id uuid.UUID, now time.Time) (domain.CollegeSummary, error) {
	found, err := r.dao.FindByID(ctx, id, now)
	if err != nil {
		return domain.CollegeSummary{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.summaryToDomain(found), nil
}

func (r *CollegeRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := r.dao.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.dao.Exists -> %w", err)
	}

	return ok, nil
}

func (r *CollegeRepository) daoToDomain(c dao.College) domain.College {
	return domain.College{
		ID:           c.ID,
		Name:         c.Name,
		Code:         c.Code,
		Address:      c.Address,
		City:         c.City,
		State:        c.State,
		ContactEmail: c.ContactEmail,
		Phone:        c.Phone,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (r *CollegeRepository) summaryToDomain(c dao.CollegeSummary) domain.CollegeSummary {
	return domain.CollegeSummary{
		College:        r.daoToDomain(c.College),
		TotalEvents:    c.TotalEvents,
		TotalStudents:  c.TotalStudents,
		UpcomingEvents: c.UpcomingEvents,
	}
}
