package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// three-level chain a -> b -> c plus an unrelated root.
func chainGroups() (a, b, c, other Group, all []Group) {
	a = Group{ID: uuid.New(), Name: "a"}
	b = Group{ID: uuid.New(), Name: "b", ParentID: &a.ID}
	c = Group{ID: uuid.New(), Name: "c", ParentID: &b.ID}
	other = Group{ID: uuid.New(), Name: "other"}

	return a, b, c, other, []Group{a, b, c, other}
}

func TestIsDescendant(t *testing.T) {
	a, b, c, other, groups := chainGroups()

	t.Run("direct child", func(t *testing.T) {
		assert.True(t, IsDescendant(groups, a.ID, b.ID))
	})

	t.Run("transitive descendant", func(t *testing.T) {
		assert.True(t, IsDescendant(groups, a.ID, c.ID))
	})

	t.Run("a group is never its own descendant", func(t *testing.T) {
		assert.False(t, IsDescendant(groups, a.ID, a.ID))
	})

	t.Run("ancestor is not a descendant", func(t *testing.T) {
		assert.False(t, IsDescendant(groups, c.ID, a.ID))
	})

	t.Run("unrelated root", func(t *testing.T) {
		assert.False(t, IsDescendant(groups, a.ID, other.ID))
	})

	t.Run("unknown start group", func(t *testing.T) {
		assert.False(t, IsDescendant(groups, a.ID, uuid.New()))
	})

	t.Run("dangling parent reference terminates", func(t *testing.T) {
		missing := uuid.New()
		orphan := Group{ID: uuid.New(), ParentID: &missing}
		assert.False(t, IsDescendant([]Group{orphan}, a.ID, orphan.ID))
	})
}

func TestSubtreeIDs(t *testing.T) {
	a, b, c, other, groups := chainGroups()

	t.Run("covers the root and every descendant", func(t *testing.T) {
		assert.ElementsMatch(t, []uuid.UUID{a.ID, b.ID, c.ID}, SubtreeIDs(groups, a.ID))
	})

	t.Run("leaf subtree is just the leaf", func(t *testing.T) {
		assert.Equal(t, []uuid.UUID{c.ID}, SubtreeIDs(groups, c.ID))
	})

	t.Run("excludes unrelated groups", func(t *testing.T) {
		assert.NotContains(t, SubtreeIDs(groups, a.ID), other.ID)
	})
}

func TestLegalParents(t *testing.T) {
	a, b, c, other, groups := chainGroups()

	t.Run("excludes self and descendants", func(t *testing.T) {
		legal := LegalParents(groups, a.ID)
		assert.ElementsMatch(t, []Group{other}, legal)
	})

	t.Run("leaf can move anywhere else", func(t *testing.T) {
		legal := LegalParents(groups, c.ID)
		assert.ElementsMatch(t, []Group{a, b, other}, legal)
	})
}
