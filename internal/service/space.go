package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pointspace/pointspace-api/internal/domain"
	"github.com/pointspace/pointspace-api/internal/repository"
)

var (
	ErrSpaceNotFound     = repository.ErrSpaceNotFound
	ErrSpaceAccessDenied = errors.New("profile has no access to this space")
)

type SpaceRepository interface {
	Create(ctx context.Context, space domain.Space, profileID uuid.UUID) (domain.Space, error)
	FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]domain.Space, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.Space, error)
	IsMember(ctx context.Context, profileID, spaceID uuid.UUID) (bool, error)
}

type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (domain.Profile, error)
}

type SpaceService struct {
	repo        SpaceRepository
	profileRepo ProfileRepository
}

func NewSpaceService(repo SpaceRepository, profileRepo ProfileRepository) *SpaceService {
	return &SpaceService{
		repo:        repo,
		profileRepo: profileRepo,
	}
}

// CreateSpace creates a space with the caller enrolled as its first admin.
func (s *SpaceService) CreateSpace(ctx context.Context, space domain.Space, profileID uuid.UUID) (domain.Space, error) {
	created, err := s.repo.Create(ctx, space, profileID)
	if err != nil {
		return domain.Space{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *SpaceService) GetSpaces(ctx context.Context, profileID uuid.UUID) ([]domain.Space, error) {
	spaces, err := s.repo.FindByProfileID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByProfileID -> %w", err)
	}

	return spaces, nil
}

func (s *SpaceService) GetProfile(ctx context.Context, profileID uuid.UUID) (domain.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("s.profileRepo.FindByID -> %w", err)
	}

	return profile, nil
}

// VerifyAccess rejects callers who are not members of the space. Every
// space-scoped operation goes through this check.
func (s *SpaceService) VerifyAccess(ctx context.Context, profileID, spaceID uuid.UUID) error {
	ok, err := s.repo.IsMember(ctx, profileID, spaceID)
	if err != nil {
		return fmt.Errorf("s.repo.IsMember -> %w", err)
	}
	if !ok {
		return ErrSpaceAccessDenied
	}

	return nil
}
