package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pointspace/pointspace-api/internal/domain"
	"github.com/pointspace/pointspace-api/internal/repository"
)

var ErrActivityNotFound = repository.ErrActivityNotFound

type ActivityRepository interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.Activity, error)
	FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]domain.Activity, error)
	FindByEventID(ctx context.Context, eventID uuid.UUID) ([]domain.Activity, error)
	Update(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindPointsBySpaceID(ctx context.Context, spaceID uuid.UUID, activityID, groupID *uuid.UUID) ([]domain.ActivityGroupPoints, error)
}

type ActivityService struct {
	repo   ActivityRepository
	ledger LedgerRepository
}

func NewActivityService(repo ActivityRepository, ledger LedgerRepository) *ActivityService {
	return &ActivityService{
		repo:   repo,
		ledger: ledger,
	}
}

func (s *ActivityService) GetActivities(ctx context.Context, spaceID uuid.UUID, eventID *uuid.UUID) ([]domain.Activity, error) {
	if eventID != nil {
		activities, err := s.repo.FindByEventID(ctx, *eventID)
		if err != nil {
			return nil, fmt.Errorf("s.repo.FindByEventID -> %w", err)
		}

		return activities, nil
	}

	activities, err := s.repo.FindBySpaceID(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindBySpaceID -> %w", err)
	}

	return activities, nil
}

func (s *ActivityService) CreateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	created, err := s.repo.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ActivityService) UpdateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	current, err := s.repo.FindByID(ctx, activity.ID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if current.SpaceID != activity.SpaceID {
		return domain.Activity{}, ErrActivityNotFound
	}

	updated, err := s.repo.Update(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ActivityService) DeleteActivity(ctx context.Context, spaceID, id uuid.UUID) error {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if activity.SpaceID != spaceID {
		return ErrActivityNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// SetGroupPoints sets one group's score for one activity, idempotently per
// (activity, group) pair. Other groups' scores for the activity are
// untouched; pairs never scored read as zero.
func (s *ActivityService) SetGroupPoints(ctx context.Context, spaceID, activityID, groupID uuid.UUID, points int, comment *string, profileID uuid.UUID) error {
	activity, err := s.repo.FindByID(ctx, activityID)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if activity.SpaceID != spaceID {
		return ErrActivityNotFound
	}

	err = s.ledger.SetActivityGroupPoints(ctx, domain.ActivityGroup{
		ActivityID: activityID,
		GroupID:    groupID,
		Points:     points,
	}, comment, profileID)
	if err != nil {
		return fmt.Errorf("s.ledger.SetActivityGroupPoints -> %w", err)
	}

	return nil
}

func (s *ActivityService) GetPoints(ctx context.Context, spaceID uuid.UUID, activityID, groupID *uuid.UUID) ([]domain.ActivityGroupPoints, error) {
	points, err := s.repo.FindPointsBySpaceID(ctx, spaceID, activityID, groupID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPointsBySpaceID -> %w", err)
	}

	return points, nil
}
