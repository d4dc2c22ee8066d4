package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pointspace/pointspace-api/internal/domain"
	"github.com/pointspace/pointspace-api/internal/repository/dao"
)

var ErrActivityNotFound = dao.ErrActivityNotFound

type ActivityDAO interface {
	Insert(ctx context.Context, activity dao.Activity) (dao.Activity, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Activity, error)
	FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]dao.Activity, error)
	FindByEventID(ctx context.Context, eventID uuid.UUID) ([]dao.Activity, error)
	Update(ctx context.Context, activity dao.Activity) (dao.Activity, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindPointsBySpaceID(ctx context.Context, spaceID uuid.UUID, activityID, groupID *uuid.UUID) ([]dao.ActivityPointsRow, error)
}

type ActivityRepository struct {
	dao ActivityDAO
}

func NewActivityRepository(dao ActivityDAO) *ActivityRepository {
	return &ActivityRepository{
		dao: dao,
	}
}

func (r *ActivityRepository) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	created, err := r.dao.Insert(ctx, dao.Activity{
		Name:        activity.Name,
		Description: activity.Description,
		EventID:     activity.EventID,
		SpaceID:     activity.SpaceID,
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ActivityRepository) FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]domain.Activity, error) {
	found, err := r.dao.FindBySpaceID(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBySpaceID -> %w", err)
	}

	return r.daosToDomains(found), nil
}

func (r *ActivityRepository) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]domain.Activity, error) {
	found, err := r.dao.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}

	return r.daosToDomains(found), nil
}

func (r *ActivityRepository) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	updated, err := r.dao.Update(ctx, dao.Activity{
		ID:          activity.ID,
		Name:        activity.Name,
		Description: activity.Description,
		EventID:     activity.EventID,
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ActivityRepository) FindPointsBySpaceID(ctx context.Context, spaceID uuid.UUID, activityID, groupID *uuid.UUID) ([]domain.ActivityGroupPoints, error) {
	rows, err := r.dao.FindPointsBySpaceID(ctx, spaceID, activityID, groupID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPointsBySpaceID -> %w", err)
	}

	points := make([]domain.ActivityGroupPoints, 0, len(rows))
	for _, row := range rows {
		points = append(points, domain.ActivityGroupPoints{
			ActivityID:   row.ActivityID,
			ActivityName: row.ActivityName,
			GroupID:      row.GroupID,
			GroupName:    row.GroupName,
			Points:       row.Points,
		})
	}

	return points, nil
}

func (r *ActivityRepository) daoToDomain(a dao.Activity) domain.Activity {
	return domain.Activity{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		EventID:     a.EventID,
		SpaceID:     a.SpaceID,
		CreatedAt:   a.CreatedAt,
	}
}

func (r *ActivityRepository) daosToDomains(found []dao.Activity) []domain.Activity {
	activities := make([]domain.Activity, 0, len(found))
	for _, a := range found {
		activities = append(activities, r.daoToDomain(a))
	}

	return activities
}
