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
	ErrGroupNotFound = repository.ErrGroupNotFound

	// ErrCyclicParent rejects a reparent that would make a group its own
	// ancestor.
	ErrCyclicParent = errors.New("group cannot be moved under one of its own descendants")

	// ErrGroupNotEmpty rejects deletion while child groups or students still
	// reference the group.
	ErrGroupNotEmpty = errors.New("group still has child groups or students")
)

type GroupRepository interface {
	Create(ctx context.Context, group domain.Group) (domain.Group, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.Group, error)
	FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]domain.Group, error)
	Update(ctx context.Context, group domain.Group) (domain.Group, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountChildren(ctx context.Context, id uuid.UUID) (int64, error)
	CountStudents(ctx context.Context, id uuid.UUID) (int64, error)
	FindWithPointsBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]domain.GroupPoints, error)
}

type GroupService struct {
	repo GroupRepository
}

func NewGroupService(repo GroupRepository) *GroupService {
	return &GroupService{
		repo: repo,
	}
}

func (s *GroupService) GetGroups(ctx context.Context, spaceID uuid.UUID) ([]domain.Group, error) {
	groups, err := s.repo.FindBySpaceID(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindBySpaceID -> %w", err)
	}

	return groups, nil
}

func (s *GroupService) GetGroupsWithPoints(ctx context.Context, spaceID uuid.UUID) ([]domain.GroupPoints, error) {
	points, err := s.repo.FindWithPointsBySpaceID(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindWithPointsBySpaceID -> %w", err)
	}

	return points, nil
}

func (s *GroupService) CreateGroup(ctx context.Context, group domain.Group) (domain.Group, error) {
	if group.ParentID != nil {
		parent, err := s.repo.FindByID(ctx, *group.ParentID)
		if err != nil {
			return domain.Group{}, fmt.Errorf("s.repo.FindByID -> %w", err)
		}
		if parent.SpaceID != group.SpaceID {
			return domain.Group{}, ErrGroupNotFound
		}
	}

	created, err := s.repo.Create(ctx, group)
	if err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpdateGroup renames and/or reparents a group. A new parent must live in the
// same space and must not be the group itself or one of its descendants,
// keeping the parent graph acyclic at write time.
func (s *GroupService) UpdateGroup(ctx context.Context, group domain.Group) (domain.Group, error) {
	current, err := s.repo.FindByID(ctx, group.ID)
	if err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if current.SpaceID != group.SpaceID {
		return domain.Group{}, ErrGroupNotFound
	}

	if group.ParentID != nil {
		if *group.ParentID == group.ID {
			return domain.Group{}, ErrCyclicParent
		}

		groups, err := s.repo.FindBySpaceID(ctx, current.SpaceID)
		if err != nil {
			return domain.Group{}, fmt.Errorf("s.repo.FindBySpaceID -> %w", err)
		}

		parentInSpace := false
		for _, g := range groups {
			if g.ID == *group.ParentID {
				parentInSpace = true
				break
			}
		}
		if !parentInSpace {
			return domain.Group{}, ErrGroupNotFound
		}

		if domain.IsDescendant(groups, group.ID, *group.ParentID) {
			return domain.Group{}, ErrCyclicParent
		}
	}

	updated, err := s.repo.Update(ctx, group)
	if err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *GroupService) DeleteGroup(ctx context.Context, spaceID, id uuid.UUID) error {
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if group.SpaceID != spaceID {
		return ErrGroupNotFound
	}

	children, err := s.repo.CountChildren(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.CountChildren -> %w", err)
	}
	if children > 0 {
		return ErrGroupNotEmpty
	}

	students, err := s.repo.CountStudents(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.CountStudents -> %w", err)
	}
	if students > 0 {
		return ErrGroupNotEmpty
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
