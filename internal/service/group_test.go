package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointspace/pointspace-api/internal/domain"
)

func TestGroupService_UpdateGroup(t *testing.T) {
	ctx := context.Background()
	spaceID := uuid.New()

	parent := domain.Group{ID: uuid.New(), Name: "parent", SpaceID: spaceID}
	child := domain.Group{ID: uuid.New(), Name: "child", ParentID: &parent.ID, SpaceID: spaceID}
	grandchild := domain.Group{ID: uuid.New(), Name: "grandchild", ParentID: &child.ID, SpaceID: spaceID}

	newService := func() *GroupService {
		return NewGroupService(newFakeGroupRepo(parent, child, grandchild))
	}

	t.Run("rename keeps the parent", func(t *testing.T) {
		svc := newService()

		updated, err := svc.UpdateGroup(ctx, domain.Group{
			ID:       child.ID,
			Name:     "renamed",
			ParentID: &parent.ID,
			SpaceID:  spaceID,
		})
		require.NoError(t, err)
		assert.Equal(t, "renamed", updated.Name)
	})

	t.Run("cannot become its own parent", func(t *testing.T) {
		svc := newService()

		_, err := svc.UpdateGroup(ctx, domain.Group{
			ID:       child.ID,
			Name:     child.Name,
			ParentID: &child.ID,
			SpaceID:  spaceID,
		})
		assert.ErrorIs(t, err, ErrCyclicParent)
	})

	t.Run("cannot move under its own descendant", func(t *testing.T) {
		svc := newService()

		_, err := svc.UpdateGroup(ctx, domain.Group{
			ID:       parent.ID,
			Name:     parent.Name,
			ParentID: &grandchild.ID,
			SpaceID:  spaceID,
		})
		assert.ErrorIs(t, err, ErrCyclicParent)
	})

	t.Run("parent must live in the same space", func(t *testing.T) {
		svc := newService()
		foreign := uuid.New()

		_, err := svc.UpdateGroup(ctx, domain.Group{
			ID:       child.ID,
			Name:     child.Name,
			ParentID: &foreign,
			SpaceID:  spaceID,
		})
		assert.ErrorIs(t, err, ErrGroupNotFound)
	})

	t.Run("group from another space reads as not found", func(t *testing.T) {
		svc := newService()

		_, err := svc.UpdateGroup(ctx, domain.Group{
			ID:      child.ID,
			Name:    child.Name,
			SpaceID: uuid.New(),
		})
		assert.ErrorIs(t, err, ErrGroupNotFound)
	})
}

func TestGroupService_DeleteGroup(t *testing.T) {
	ctx := context.Background()
	spaceID := uuid.New()

	parent := domain.Group{ID: uuid.New(), Name: "parent", SpaceID: spaceID}
	child := domain.Group{ID: uuid.New(), Name: "child", ParentID: &parent.ID, SpaceID: spaceID}

	t.Run("rejected while child groups exist", func(t *testing.T) {
		svc := NewGroupService(newFakeGroupRepo(parent, child))

		err := svc.DeleteGroup(ctx, spaceID, parent.ID)
		assert.ErrorIs(t, err, ErrGroupNotEmpty)
	})

	t.Run("rejected while students remain", func(t *testing.T) {
		repo := newFakeGroupRepo(parent, child)
		repo.students[child.ID] = 2
		svc := NewGroupService(repo)

		err := svc.DeleteGroup(ctx, spaceID, child.ID)
		assert.ErrorIs(t, err, ErrGroupNotEmpty)
	})

	t.Run("empty leaf deletes", func(t *testing.T) {
		repo := newFakeGroupRepo(parent, child)
		svc := NewGroupService(repo)

		err := svc.DeleteGroup(ctx, spaceID, child.ID)
		require.NoError(t, err)

		_, err = repo.FindByID(ctx, child.ID)
		assert.ErrorIs(t, err, ErrGroupNotFound)
	})

	t.Run("foreign space reads as not found", func(t *testing.T) {
		svc := NewGroupService(newFakeGroupRepo(parent, child))

		err := svc.DeleteGroup(ctx, uuid.New(), child.ID)
		assert.ErrorIs(t, err, ErrGroupNotFound)
	})
}

func TestGroupService_CreateGroup(t *testing.T) {
	ctx := context.Background()
	spaceID := uuid.New()
	parent := domain.Group{ID: uuid.New(), Name: "parent", SpaceID: spaceID}

	t.Run("parent from another space is rejected", func(t *testing.T) {
		svc := NewGroupService(newFakeGroupRepo(parent))

		_, err := svc.CreateGroup(ctx, domain.Group{
			Name:     "intruder",
			ParentID: &parent.ID,
			SpaceID:  uuid.New(),
		})
		assert.ErrorIs(t, err, ErrGroupNotFound)
	})

	t.Run("root group needs no parent", func(t *testing.T) {
		svc := NewGroupService(newFakeGroupRepo())

		created, err := svc.CreateGroup(ctx, domain.Group{Name: "root", SpaceID: spaceID})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
	})
}
