package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pointspace/pointspace-api/internal/domain"
	"github.com/pointspace/pointspace-api/internal/repository/dao"
)

var (
	ErrStudentNotFound = dao.ErrStudentNotFound
	ErrMissingNotFound = dao.ErrMissingNotFound
)

type StudentDAO interface {
	Insert(ctx context.Context, student dao.Student) (dao.Student, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Student, error)
	FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]dao.Student, error)
	FindByGroupIDs(ctx context.Context, spaceID uuid.UUID, groupIDs []uuid.UUID) ([]dao.Student, error)
	Update(ctx context.Context, student dao.Student) (dao.Student, error)
	Delete(ctx context.Context, id uuid.UUID) error
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
	created, err := r.dao.Insert(ctx, r.domainToDAO(student))
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

func (r *StudentRepository) FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]domain.Student, error) {
	found, err := r.dao.FindBySpaceID(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBySpaceID -> %w", err)
	}

	return r.daosToDomains(found), nil
}

func (r *StudentRepository) FindByGroupIDs(ctx context.Context, spaceID uuid.UUID, groupIDs []uuid.UUID) ([]domain.Student, error) {
	found, err := r.dao.FindByGroupIDs(ctx, spaceID, groupIDs)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByGroupIDs -> %w", err)
	}

	return r.daosToDomains(found), nil
}

func (r *StudentRepository) Update(ctx context.Context, student domain.Student) (domain.Student, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(student))
	if err != nil {
		return domain.Student{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *StudentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *StudentRepository) domainToDAO(s domain.Student) dao.Student {
	return dao.Student{
		ID:        s.ID,
		Name:      s.Name,
		DOB:       s.DOB,
		Gender:    s.Gender,
		ImagePath: s.ImagePath,
		Embedding: s.Embedding,
		GroupID:   s.GroupID,
		MentorID:  s.MentorID,
		SpaceID:   s.SpaceID,
	}
}

func (r *StudentRepository) daoToDomain(s dao.Student) domain.Student {
	return domain.Student{
		ID:        s.ID,
		Name:      s.Name,
		DOB:       s.DOB,
		Gender:    s.Gender,
		ImagePath: s.ImagePath,
		Embedding: s.Embedding,
		GroupID:   s.GroupID,
		MentorID:  s.MentorID,
		SpaceID:   s.SpaceID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (r *StudentRepository) daosToDomains(found []dao.Student) []domain.Student {
	students := make([]domain.Student, 0, len(found))
	for _, s := range found {
		students = append(students, r.daoToDomain(s))
	}

	return students
}

type MissingDAO interface {
	Insert(ctx context.Context, missing dao.Missing) (dao.Missing, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Missing, error)
	FindByStudentID(ctx context.Context, studentID uuid.UUID) ([]dao.Missing, error)
	FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]dao.Missing, error)
	Update(ctx context.Context, missing dao.Missing) (dao.Missing, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type MissingRepository struct {
	dao MissingDAO
}

func NewMissingRepository(dao MissingDAO) *MissingRepository {
	return &MissingRepository{
		dao: dao,
	}
}

func (r *MissingRepository) Create(ctx context.Context, missing domain.Missing) (domain.Missing, error) {
	created, err := r.dao.Insert(ctx, dao.Missing{
		StudentID: missing.StudentID,
		Date:      missing.Date,
		Type:      missing.Type,
		Notes:     missing.Notes,
		Persons:   missing.Persons,
		SpaceID:   missing.SpaceID,
	})
	if err != nil {
		return domain.Missing{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *MissingRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Missing, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Missing{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *MissingRepository) FindByStudentID(ctx context.Context, studentID uuid.UUID) ([]domain.Missing, error) {
	found, err := r.dao.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByStudentID -> %w", err)
	}

	missings := make([]domain.Missing, 0, len(found))
	for _, m := range found {
		missings = append(missings, r.daoToDomain(m))
	}

	return missings, nil
}

func (r *MissingRepository) FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]domain.Missing, error) {
	found, err := r.dao.FindBySpaceID(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBySpaceID -> %w", err)
	}

	missings := make([]domain.Missing, 0, len(found))
	for _, m := range found {
		missings = append(missings, r.daoToDomain(m))
	}

	return missings, nil
}

func (r *MissingRepository) Update(ctx context.Context, missing domain.Missing) (domain.Missing, error) {
	updated, err := r.dao.Update(ctx, dao.Missing{
		ID:      missing.ID,
		Date:    missing.Date,
		Type:    missing.Type,
		Notes:   missing.Notes,
		Persons: missing.Persons,
	})
	if err != nil {
		return domain.Missing{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *MissingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *MissingRepository) daoToDomain(m dao.Missing) domain.Missing {
	return domain.Missing{
		ID:        m.ID,
		StudentID: m.StudentID,
		Date:      m.Date,
		Type:      m.Type,
		Notes:     m.Notes,
		Persons:   m.Persons,
		SpaceID:   m.SpaceID,
		CreatedAt: m.CreatedAt,
	}
}
