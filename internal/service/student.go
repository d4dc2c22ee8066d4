package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pointspace/pointspace-api/internal/domain"
	"github.com/pointspace/pointspace-api/internal/repository"
)

var ErrStudentNotFound = repository.ErrStudentNotFound

type StudentRepository interface {
	Create(ctx context.Context, student domain.Student) (domain.Student, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.Student, error)
	FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]domain.Student, error)
	FindByGroupIDs(ctx context.Context, spaceID uuid.UUID, groupIDs []uuid.UUID) ([]domain.Student, error)
	Update(ctx context.Context, student domain.Student) (domain.Student, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type StudentService struct {
	repo      StudentRepository
	groupRepo GroupRepository
}

func NewStudentService(repo StudentRepository, groupRepo GroupRepository) *StudentService {
	return &StudentService{
		repo:      repo,
		groupRepo: groupRepo,
	}
}

// GetStudents lists a space's students. With a group filter the result covers
// that group and its whole subtree, so selecting a parent group includes
// every nested sub-group's students.
func (s *StudentService) GetStudents(ctx context.Context, spaceID uuid.UUID, groupFilter *uuid.UUID) ([]domain.Student, error) {
	if groupFilter == nil {
		students, err := s.repo.FindBySpaceID(ctx, spaceID)
		if err != nil {
			return nil, fmt.Errorf("s.repo.FindBySpaceID -> %w", err)
		}

		return students, nil
	}

	groups, err := s.groupRepo.FindBySpaceID(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("s.groupRepo.FindBySpaceID -> %w", err)
	}

	students, err := s.repo.FindByGroupIDs(ctx, spaceID, domain.SubtreeIDs(groups, *groupFilter))
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByGroupIDs -> %w", err)
	}

	return students, nil
}

func (s *StudentService) GetStudent(ctx context.Context, id uuid.UUID) (domain.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Student{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return student, nil
}

func (s *StudentService) CreateStudent(ctx context.Context, student domain.Student) (domain.Student, error) {
	created, err := s.repo.Create(ctx, student)
	if err != nil {
		return domain.Student{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *StudentService) UpdateStudent(ctx context.Context, student domain.Student) (domain.Student, error) {
	current, err := s.repo.FindByID(ctx, student.ID)
	if err != nil {
		return domain.Student{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if current.SpaceID != student.SpaceID {
		return domain.Student{}, ErrStudentNotFound
	}

	updated, err := s.repo.Update(ctx, student)
	if err != nil {
		return domain.Student{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *StudentService) DeleteStudent(ctx context.Context, spaceID, id uuid.UUID) error {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if student.SpaceID != spaceID {
		return ErrStudentNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
