package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pointspace/pointspace-api/internal/domain"
	"github.com/pointspace/pointspace-api/internal/repository/dao"
)

var (
	ErrProfileEmailExists = dao.ErrProfileEmailExists
	ErrProfileNotFound    = dao.ErrProfileNotFound
	ErrSpaceNotFound      = dao.ErrSpaceNotFound
)

type ProfileDAO interface {
	Insert(ctx context.Context, profile dao.Profile) (dao.Profile, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Profile, error)
	FindByEmail(ctx context.Context, email string) (dao.Profile, error)
}

type ProfileRepository struct {
	dao ProfileDAO
}

func NewProfileRepository(dao ProfileDAO) *ProfileRepository {
	return &ProfileRepository{
		dao: dao,
	}
}

func (r *ProfileRepository) Create(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	created, err := r.dao.Insert(ctx, dao.Profile{
		Email:    profile.Email,
		Password: profile.Password,
		Name:     profile.Name,
	})
	if err != nil {
		return domain.Profile{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Profile, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (domain.Profile, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ProfileRepository) daoToDomain(p dao.Profile) domain.Profile {
	return domain.Profile{
		ID:        p.ID,
		Email:     p.Email,
		Password:  p.Password,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type SpaceDAO interface {
	InsertWithMembership(ctx context.Context, space dao.Space, profileID uuid.UUID) (dao.Space, error)
	FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]dao.Space, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Space, error)
	IsMember(ctx context.Context, profileID, spaceID uuid.UUID) (bool, error)
}

type SpaceRepository struct {
	dao SpaceDAO
}

func NewSpaceRepository(dao SpaceDAO) *SpaceRepository {
	return &SpaceRepository{
		dao: dao,
	}
}

func (r *SpaceRepository) Create(ctx context.Context, space domain.Space, profileID uuid.UUID) (domain.Space, error) {
	created, err := r.dao.InsertWithMembership(ctx, dao.Space{Name: space.Name}, profileID)
	if err != nil {
		return domain.Space{}, fmt.Errorf("r.dao.InsertWithMembership -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SpaceRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]domain.Space, error) {
	found, err := r.dao.FindByProfileID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByProfileID -> %w", err)
	}

	spaces := make([]domain.Space, 0, len(found))
	for _, s := range found {
		spaces = append(spaces, r.daoToDomain(s))
	}

	return spaces, nil
}

func (r *SpaceRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Space, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Space{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SpaceRepository) IsMember(ctx context.Context, profileID, spaceID uuid.UUID) (bool, error) {
	ok, err := r.dao.IsMember(ctx, profileID, spaceID)
	if err != nil {
		return false, fmt.Errorf("r.dao.IsMember -> %w", err)
	}

	return ok, nil
}

func (r *SpaceRepository) daoToDomain(s dao.Space) domain.Space {
	return domain.Space{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
