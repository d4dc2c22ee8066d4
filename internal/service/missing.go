package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pointspace/pointspace-api/internal/domain"
	"github.com/pointspace/pointspace-api/internal/repository"
)

var ErrMissingNotFound = repository.ErrMissingNotFound

type MissingRepository interface {
	Create(ctx context.Context, missing domain.Missing) (domain.Missing, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.Missing, error)
	FindByStudentID(ctx context.Context, studentID uuid.UUID) ([]domain.Missing, error)
	FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]domain.Missing, error)
	Update(ctx context.Context, missing domain.Missing) (domain.Missing, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type MissingService struct {
	repo MissingRepository
}

func NewMissingService(repo MissingRepository) *MissingService {
	return &MissingService{
		repo: repo,
	}
}

func (s *MissingService) GetMissings(ctx context.Context, spaceID uuid.UUID, studentID *uuid.UUID) ([]domain.Missing, error) {
	if studentID != nil {
		missings, err := s.repo.FindByStudentID(ctx, *studentID)
		if err != nil {
			return nil, fmt.Errorf("s.repo.FindByStudentID -> %w", err)
		}

		return missings, nil
	}

	missings, err := s.repo.FindBySpaceID(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindBySpaceID -> %w", err)
	}

	return missings, nil
}

func (s *MissingService) CreateMissing(ctx context.Context, missing domain.Missing) (domain.Missing, error) {
	created, err := s.repo.Create(ctx, missing)
	if err != nil {
		return domain.Missing{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *MissingService) UpdateMissing(ctx context.Context, missing domain.Missing) (domain.Missing, error) {
	current, err := s.repo.FindByID(ctx, missing.ID)
	if err != nil {
		return domain.Missing{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if current.SpaceID != missing.SpaceID {
		return domain.Missing{}, ErrMissingNotFound
	}

	updated, err := s.repo.Update(ctx, missing)
	if err != nil {
		return domain.Missing{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *MissingService) DeleteMissing(ctx context.Context, spaceID, id uuid.UUID) error {
	missing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if missing.SpaceID != spaceID {
		return ErrMissingNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
