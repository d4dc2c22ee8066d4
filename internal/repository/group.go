package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pointspace/pointspace-api/internal/domain"
	"github.com/pointspace/pointspace-api/internal/repository/dao"
)

var ErrGroupNotFound = dao.ErrGroupNotFound

type GroupDAO interface {
	Insert(ctx context.Context, group dao.Group) (dao.Group, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Group, error)
	FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]dao.Group, error)
	Update(ctx context.Context, group dao.Group) (dao.Group, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountChildren(ctx context.Context, id uuid.UUID) (int64, error)
	CountStudents(ctx context.Context, id uuid.UUID) (int64, error)
	FindWithPointsBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]dao.GroupPointsRow, error)
}

type GroupRepository struct {
	dao GroupDAO
}

func NewGroupRepository(dao GroupDAO) *GroupRepository {
	return &GroupRepository{
		dao: dao,
	}
}

func (r *GroupRepository) Create(ctx context.Context, group domain.Group) (domain.Group, error) {
	created, err := r.dao.Insert(ctx, dao.Group{
		Name:     group.Name,
		ParentID: group.ParentID,
		SpaceID:  group.SpaceID,
	})
	if err != nil {
		return domain.Group{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *GroupRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Group, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Group{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *GroupRepository) FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]domain.Group, error) {
	found, err := r.dao.FindBySpaceID(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBySpaceID -> %w", err)
	}

	groups := make([]domain.Group, 0, len(found))
	for _, g := range found {
		groups = append(groups, r.daoToDomain(g))
	}

	return groups, nil
}

func (r *GroupRepository) Update(ctx context.Context, group domain.Group) (domain.Group, error) {
	updated, err := r.dao.Update(ctx, dao.Group{
		ID:       group.ID,
		Name:     group.Name,
		ParentID: group.ParentID,
	})
	if err != nil {
		return domain.Group{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *GroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *GroupRepository) CountChildren(ctx context.Context, id uuid.UUID) (int64, error) {
	count, err := r.dao.CountChildren(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountChildren -> %w", err)
	}

	return count, nil
}

func (r *GroupRepository) CountStudents(ctx context.Context, id uuid.UUID) (int64, error) {
	count, err := r.dao.CountStudents(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountStudents -> %w", err)
	}

	return count, nil
}

func (r *GroupRepository) FindWithPointsBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]domain.GroupPoints, error) {
	rows, err := r.dao.FindWithPointsBySpaceID(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindWithPointsBySpaceID -> %w", err)
	}

	points := make([]domain.GroupPoints, 0, len(rows))
	for _, row := range rows {
		points = append(points, domain.GroupPoints{
			GroupID:     row.GroupID,
			GroupName:   row.GroupName,
			TotalPoints: row.TotalPoints,
		})
	}

	return points, nil
}

func (r *GroupRepository) daoToDomain(g dao.Group) domain.Group {
	return domain.Group{
		ID:        g.ID,
		Name:      g.Name,
		ParentID:  g.ParentID,
		SpaceID:   g.SpaceID,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}
