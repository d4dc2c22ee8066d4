package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventIsActiveAt(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	t.Run("no dates means always active", func(t *testing.T) {
		assert.True(t, Event{}.IsActiveAt(now))
	})

	t.Run("inside the range", func(t *testing.T) {
		e := Event{StartDate: &yesterday, EndDate: &tomorrow}
		assert.True(t, e.IsActiveAt(now))
	})

	t.Run("before the start", func(t *testing.T) {
		e := Event{StartDate: &tomorrow}
		assert.False(t, e.IsActiveAt(now))
	})

	t.Run("after the end", func(t *testing.T) {
		e := Event{EndDate: &yesterday}
		assert.False(t, e.IsActiveAt(now))
	})

	t.Run("open-ended start", func(t *testing.T) {
		e := Event{StartDate: &yesterday}
		assert.True(t, e.IsActiveAt(now))
	})

	t.Run("boundaries are inclusive", func(t *testing.T) {
		e := Event{StartDate: &now, EndDate: &now}
		assert.True(t, e.IsActiveAt(now))
	})
}

func TestEventTypeFindExtraPointCategory(t *testing.T) {
	eventType := EventType{
		ExtraPoints: []ExtraPointCategory{
			{Name: "homework", UnitPoints: 2, MaxUnits: 3},
		},
	}

	cat, ok := eventType.FindExtraPointCategory("homework")
	assert.True(t, ok)
	assert.Equal(t, 2, cat.UnitPoints)

	_, ok = eventType.FindExtraPointCategory("retired")
	assert.False(t, ok)
}
